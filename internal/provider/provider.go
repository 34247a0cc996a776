package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/config"
)

// HistoryProvider fetches the daily bars of one symbol over a half-open
// date window. A table with zero rows is a valid result and means the
// provider had no data for the symbol in that window.
type HistoryProvider interface {
	// Name identifies the provider in logs and the config endpoint
	Name() string
	// DailyBars returns the bars in [start, end); end is exclusive
	DailyBars(ctx context.Context, symbol string, start, end time.Time) (*frame.RawTable, error)
}

// New creates the provider selected by cfg.Source
func New(cfg *config.ProviderConfig, logger *logrus.Logger) (HistoryProvider, error) {
	switch strings.ToLower(cfg.Source) {
	case "yahoo":
		return NewYahooProvider(cfg, logger), nil
	case "binance":
		return NewBinanceProvider(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider source %q (supported: yahoo, binance)", cfg.Source)
	}
}
