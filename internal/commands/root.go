package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "futureinsight",
	Short: "Historical market data viewer",
	Long: `A historical market data viewer built with Go, turning a symbol list and
a date range into normalized daily OHLCV tables, range extrema and
candlestick charts.

Features:
• Daily OHLCV history from Yahoo Finance or Binance
• Normalized flat column labels regardless of the source shape
• Range high/low detection with first-occurrence dates
• Candlestick chart payloads with ATH/ATL reference lines
• CSV export per symbol, via the API or straight to disk`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
