package provider

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/config"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// YahooProvider fetches daily bars from the Yahoo Finance chart API.
// Its tables carry symbol-qualified composite labels, an adjusted close
// series and a named Date index.
type YahooProvider struct {
	timeout time.Duration
	logger  *logrus.Entry
}

// NewYahooProvider creates a Yahoo Finance provider
func NewYahooProvider(cfg *config.ProviderConfig, logger *logrus.Logger) *YahooProvider {
	return &YahooProvider{
		timeout: cfg.RequestTimeout,
		logger:  logger.WithField("component", "yahoo-provider"),
	}
}

// Name identifies the provider
func (y *YahooProvider) Name() string {
	return "yahoo"
}

// DailyBars fetches the [start, end) daily bars for symbol
func (y *YahooProvider) DailyBars(ctx context.Context, symbol string, start, end time.Time) (*frame.RawTable, error) {
	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	}

	y.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"start":  start.Format(models.DateLayout),
		"end":    end.Format(models.DateLayout),
	}).Debug("Fetching daily bars")

	iter := chart.Get(params)

	var dates []time.Time
	var opens, highs, lows, closes, adjCloses, vols []float64
	for iter.Next() {
		bar := iter.Bar()
		dates = append(dates, barDate(bar.Timestamp))
		opens = append(opens, decimalFloat(bar.Open))
		highs = append(highs, decimalFloat(bar.High))
		lows = append(lows, decimalFloat(bar.Low))
		closes = append(closes, decimalFloat(bar.Close))
		adjCloses = append(adjCloses, decimalFloat(bar.AdjClose))
		vols = append(vols, float64(bar.Volume))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart request failed for %s: %w", symbol, err)
	}

	table := &frame.RawTable{IndexName: "Date", Index: dates}
	table.AddColumn(frame.Composite("Open", symbol), opens)
	table.AddColumn(frame.Composite("High", symbol), highs)
	table.AddColumn(frame.Composite("Low", symbol), lows)
	table.AddColumn(frame.Composite("Close", symbol), closes)
	table.AddColumn(frame.Composite("Adj Close", symbol), adjCloses)
	table.AddColumn(frame.Composite("Volume", symbol), vols)

	y.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"rows":   table.NumRows(),
	}).Debug("Fetched daily bars")

	return table, nil
}

// barDate collapses a bar's epoch timestamp to its UTC calendar date
func barDate(ts int) time.Time {
	t := time.Unix(int64(ts), 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// decimalFloat converts an API decimal to a table cell value
func decimalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
