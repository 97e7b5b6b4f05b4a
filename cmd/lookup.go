package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonandersen/stocksearch/internal/output"
	"github.com/jonandersen/stocksearch/internal/widget"
	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

// stockDataService is the part of the API client the lookup command uses.
type stockDataService interface {
	GetStockData(ctx context.Context, ticker string) (*stockapi.Snapshot, error)
}

// lookupOptions holds dependencies for the lookup command.
type lookupOptions struct {
	service  stockDataService
	jsonMode bool
}

const (
	lookupUse   = "lookup TICKER"
	lookupShort = "Look up a single ticker"
	lookupLong  = `Look up company information and the latest price for one ticker.

The output has the same two sections as the interactive widget: Company
Outlook and Stock Summary.

Examples:
  stocksearch lookup AAPL          # Look up Apple
  stocksearch lookup msft --json   # Output the display fields as JSON`
)

// newLookupCmd creates the lookup command with the given options.
func newLookupCmd(opts lookupOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   lookupUse,
		Short: lookupShort,
		Long:  lookupLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args[0])
		},
	}

	cmd.SilenceUsage = true

	return cmd
}

// runLookup drives a widget controller through one submit/complete cycle so
// that the command and the TUI share validation and message resolution.
func runLookup(cmd *cobra.Command, opts lookupOptions, ticker string) error {
	c := widget.NewController()
	c.SetInput(ticker)

	req, ok := c.Submit()
	if !ok {
		return fmt.Errorf("ticker symbol is required: %s", c.Alert())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	snap, err := opts.service.GetStockData(ctx, req.Ticker)
	c.Complete(widget.Result{Seq: req.Seq, Snapshot: snap, Err: err})

	d := widget.Project(c)
	switch {
	case d.ErrorVisible:
		return errors.New(d.ErrorMessage)
	case !d.ResultVisible:
		// Only a cancelled request leaves the widget without a result
		return fmt.Errorf("lookup cancelled: %w", err)
	}

	formatter := output.New(cmd.OutOrStdout(), opts.jsonMode)
	if opts.jsonMode {
		return formatter.Print(d.Fields)
	}
	return printFields(formatter, d.Fields)
}

func printFields(f *output.Formatter, fields widget.Fields) error {
	outlook := [][2]string{
		{"Company Name", fields.CompanyName},
		{"Stock Ticker Symbol", fields.CompanyTicker},
		{"Stock Exchange Code", fields.ExchangeCode},
		{"Company Start Date", fields.StartDate},
		{"Description", fields.Description},
	}
	summary := [][2]string{
		{"Stock Ticker Symbol", fields.StockTicker},
		{"Trading Day", fields.TradingDay},
		{"Previous Closing Price", fields.PrevClose},
		{"Opening Price", fields.OpeningPrice},
		{"High Price", fields.HighPrice},
		{"Low Price", fields.LowPrice},
		{"Last Price", fields.LastPrice},
		{"Change", withDirection(fields.Change, fields.ChangeDirection)},
		{"Change Percent", withDirection(fields.ChangePercent, fields.ChangeDirection)},
		{"Number of Shares Traded", fields.Volume},
	}

	sections := []struct {
		tab  widget.Tab
		rows [][2]string
	}{
		{widget.TabCompanyOutlook, outlook},
		{widget.TabStockSummary, summary},
	}

	for i, s := range sections {
		if i > 0 {
			if err := f.Blank(); err != nil {
				return err
			}
		}
		if err := f.Heading(s.tab.Title()); err != nil {
			return err
		}
		if err := f.KeyValues(s.rows); err != nil {
			return err
		}
	}
	return nil
}

func withDirection(value string, dir widget.Direction) string {
	if arrow := dir.Arrow(); arrow != "" {
		return value + " " + arrow
	}
	return value
}

func init() {
	lookupCmd := &cobra.Command{
		Use:   lookupUse,
		Short: lookupShort,
		Long:  lookupLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			opts := lookupOptions{
				service:  env.client,
				jsonMode: GetJSONMode(),
			}
			err = runLookup(cmd, opts, args[0])
			if err != nil {
				env.logger.Warn("lookup failed", "ticker", args[0], "error", err)
			}
			return err
		},
	}

	lookupCmd.SilenceUsage = true

	rootCmd.AddCommand(lookupCmd)
}
