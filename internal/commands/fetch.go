package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kinur1/FutureInsight/internal/provider"
	"github.com/kinur1/FutureInsight/internal/symbols"
	"github.com/kinur1/FutureInsight/internal/viewer"
	"github.com/kinur1/FutureInsight/pkg/config"
	"github.com/kinur1/FutureInsight/pkg/models"
)

var (
	fetchSymbols string
	fetchStart   string
	fetchEnd     string
	fetchOutput  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch daily history and export CSV files",
	Long: `Fetch daily OHLCV history for one or more symbols and write each
symbol's normalized table to a CSV file.

Examples:
  # Fetch the configured default symbols over the default lookback
  futureinsight fetch

  # Fetch one year of BTC-USD and ETH-USD into ./data
  futureinsight fetch --symbols BTC-USD,ETH-USD --start 2023-01-01 --end 2023-12-31 --output ./data`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchSymbols, "symbols", "", "Comma-separated symbols (defaults to VIEWER_DEFAULT_SYMBOLS)")
	fetchCmd.Flags().StringVar(&fetchStart, "start", "", "Start date (YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&fetchEnd, "end", "", "End date (YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", ".", "Directory to write CSV files into")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Load .env file first
	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("Note: .env file not loaded: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	// Resolve symbols
	text := fetchSymbols
	if text == "" {
		text = cfg.Viewer.DefaultSymbols
	}
	syms := symbols.Parse(text)
	if len(syms) == 0 {
		return fmt.Errorf("no symbols to fetch")
	}

	// Resolve date range
	rng := models.DefaultRange(cfg.Viewer.LookbackDays)
	if fetchStart != "" {
		if rng.Start, err = models.ParseDate(fetchStart); err != nil {
			return err
		}
	}
	if fetchEnd != "" {
		if rng.End, err = models.ParseDate(fetchEnd); err != nil {
			return err
		}
	}

	prov, err := provider.New(&cfg.Provider, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"symbols":  syms,
		"range":    rng.String(),
		"provider": prov.Name(),
	}).Info("Starting fetch")

	pipeline := viewer.New(prov, cfg.Viewer.CurrencyPrefix, log)
	report, err := pipeline.Run(context.Background(), syms, rng)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if err := os.MkdirAll(fetchOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, res := range report.Results {
		if res.CSV == "" {
			log.WithField("symbol", res.Symbol).Warn("Skipped, no table to export")
			continue
		}

		name := fmt.Sprintf("%s_%s_to_%s.csv",
			res.Symbol,
			rng.Start.Format(models.DateLayout),
			rng.End.Format(models.DateLayout))
		path := filepath.Join(fetchOutput, name)

		if err := os.WriteFile(path, []byte(res.CSV), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		rows := 0
		if res.Table != nil {
			rows = len(res.Table.Rows)
		}
		log.WithFields(logrus.Fields{
			"symbol": res.Symbol,
			"rows":   rows,
			"file":   path,
		}).Info("Exported CSV")
		written++

		if res.Extrema != nil {
			log.WithFields(logrus.Fields{
				"symbol": res.Symbol,
				"high":   fmt.Sprintf("%.4f (%s)", res.Extrema.High, res.Extrema.HighDate.Format(models.DateLayout)),
				"low":    fmt.Sprintf("%.4f (%s)", res.Extrema.Low, res.Extrema.LowDate.Format(models.DateLayout)),
			}).Info("Range extrema")
		}
	}

	log.WithFields(logrus.Fields{
		"requested": len(syms),
		"written":   written,
	}).Info("Fetch completed")

	if written == 0 {
		return fmt.Errorf("no data exported for any symbol")
	}

	return nil
}
