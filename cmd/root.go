package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

// Persistent flags shared by every subcommand.
var (
	jsonOutput bool
	configFile string
	logFile    string
	debugLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "stocksearch",
	Short: "Look up a stock ticker",
	Long: `Look up company information and the latest price for a stock ticker.

Run without a subcommand to open the interactive search widget, or use
"stocksearch lookup TICKER" for a one-shot lookup.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/stocksearch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Include debug lines in the log file")
}

// GetJSONMode returns whether JSON output mode is enabled.
func GetJSONMode() bool {
	return jsonOutput
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
