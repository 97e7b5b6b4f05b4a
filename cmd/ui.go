package cmd

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jonandersen/stocksearch/internal/tui"
)

// uiOptions holds dependencies for the ui command.
type uiOptions struct {
	isTerminal func() bool
	run        func(tea.Model) error
}

func defaultUIOptions() uiOptions {
	return uiOptions{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		run: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// newUICmd creates the ui command with the given options.
func newUICmd(opts uiOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive stock search widget",
		Long: `Launch the interactive stock search widget.

Type a ticker symbol and press enter to look it up. Results are shown in two
tabs: Company Outlook and Stock Summary.

Keyboard shortcuts:
  enter          Search
  ctrl+l         Clear the input and results
  tab/shift+tab  Switch result tab
  f1/f2          Company Outlook / Stock Summary
  esc            Cancel a running search
  ctrl+c         Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts)
		},
	}

	cmd.SilenceUsage = true

	return cmd
}

func runUI(opts uiOptions) error {
	if !opts.isTerminal() {
		return errors.New("ui requires an interactive terminal\nUse 'stocksearch lookup TICKER' in scripts")
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	env.logger.Info("ui started", "base_url", env.cfg.BaseURL)
	err = opts.run(tui.New(env.client, env.logger))
	env.logger.Info("ui stopped", "error", err)
	return err
}

func init() {
	opts := defaultUIOptions()
	uiCmd := newUICmd(opts)
	rootCmd.AddCommand(uiCmd)

	// The widget is what runs when no subcommand is given
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runUI(opts)
	}
}
