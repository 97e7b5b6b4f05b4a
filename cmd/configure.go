package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonandersen/stocksearch/internal/config"
	"github.com/jonandersen/stocksearch/internal/output"
)

// prompter abstracts interactive line input for testing.
type prompter interface {
	ReadLine(prompt string) (string, error)
}

// terminalPrompter implements prompter using stdin.
type terminalPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func newTerminalPrompter(r io.Reader, w io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: bufio.NewReader(r), writer: w}
}

// ReadLine prints prompt and returns the next line without surrounding
// whitespace. End of input yields an empty line.
func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.writer, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// configureOptions holds dependencies for the configure command.
type configureOptions struct {
	configPath func() string
	prompt     prompter
	jsonMode   func() bool
}

// newConfigureCmd creates the configure command with the given options.
func newConfigureCmd(opts configureOptions) *cobra.Command {
	var (
		baseURL string
		timeout int
		show    bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the backend connection",
		Long: `Configure where stock data is fetched from.

You will be prompted for the backend base URL and the request timeout.
Press enter to keep the current value. Flags skip the matching prompt.

Example:
  stocksearch configure
  stocksearch configure --base-url https://stocks.example.com --timeout 10
  stocksearch configure --show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath()
			if show {
				return runShowConfiguration(cmd, opts, path)
			}

			var flagURL *string
			if cmd.Flags().Changed("base-url") {
				flagURL = &baseURL
			}
			var flagTimeout *int
			if cmd.Flags().Changed("timeout") {
				flagTimeout = &timeout
			}
			return runConfigure(cmd, opts, path, flagURL, flagTimeout)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Backend base URL")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Request timeout in seconds")
	cmd.Flags().BoolVar(&show, "show", false, "Print the current configuration and exit")

	// Don't show usage info on validation errors - just show the error
	cmd.SilenceUsage = true

	return cmd
}

// runConfigure prompts for each value not given by flag, then validates and
// saves the result.
func runConfigure(cmd *cobra.Command, opts configureOptions, path string, baseURL *string, timeout *int) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if baseURL != nil {
		cfg.BaseURL = *baseURL
	} else {
		answer, err := opts.prompt.ReadLine(fmt.Sprintf("Backend base URL [%s]: ", cfg.BaseURL))
		if err != nil {
			return fmt.Errorf("failed to read base URL: %w", err)
		}
		if answer != "" {
			cfg.BaseURL = answer
		}
	}

	if timeout != nil {
		cfg.RequestTimeoutSeconds = *timeout
	} else {
		answer, err := opts.prompt.ReadLine(fmt.Sprintf("Request timeout in seconds [%d]: ", cfg.RequestTimeoutSeconds))
		if err != nil {
			return fmt.Errorf("failed to read timeout: %w", err)
		}
		if answer != "" {
			secs, err := strconv.Atoi(answer)
			if err != nil {
				return fmt.Errorf("invalid timeout %q: must be a whole number of seconds", answer)
			}
			cfg.RequestTimeoutSeconds = secs
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}

// runShowConfiguration prints the stored configuration.
func runShowConfiguration(cmd *cobra.Command, opts configureOptions, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logTarget := cfg.LogFile
	if logTarget == "" {
		logTarget = "(disabled)"
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode())
	return formatter.Table([]string{"Setting", "Value"}, [][]string{
		{"config_file", path},
		{"base_url", cfg.BaseURL},
		{"request_timeout_seconds", strconv.Itoa(cfg.RequestTimeoutSeconds)},
		{"log_file", logTarget},
	})
}

func init() {
	configureCmd := newConfigureCmd(configureOptions{
		configPath: resolveConfigPath,
		prompt:     newTerminalPrompter(os.Stdin, os.Stdout),
		jsonMode:   GetJSONMode,
	})
	rootCmd.AddCommand(configureCmd)
}
