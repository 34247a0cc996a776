package viewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/kinur1/FutureInsight/internal/analysis"
	"github.com/kinur1/FutureInsight/internal/chart"
	"github.com/kinur1/FutureInsight/internal/export"
	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/internal/provider"
	"github.com/kinur1/FutureInsight/pkg/logger"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// currencyPattern renders metric values with thousands separators and
// four fixed decimals.
const currencyPattern = "#,###.####"

// Pipeline runs the per-request viewer flow: fetch, normalize, analyze,
// compose and export, one symbol at a time. Symbols are processed
// strictly sequentially and independently; no shared state survives a
// request.
type Pipeline struct {
	provider provider.HistoryProvider
	currency string
	logger   *logrus.Logger
	log      *logrus.Entry
}

// New creates a pipeline over the given provider
func New(p provider.HistoryProvider, currency string, log *logrus.Logger) *Pipeline {
	return &Pipeline{
		provider: p,
		currency: currency,
		logger:   log,
		log:      logger.WithComponent(log, "viewer"),
	}
}

// Run validates the range and processes every symbol in order. An
// inverted range is fatal for the whole request; any per-symbol failure
// is recorded on that symbol's result and the batch continues.
func (p *Pipeline) Run(ctx context.Context, syms []string, r models.DateRange) (*Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	start, end := r.FetchWindow()
	report := &Report{
		Symbols:     syms,
		Range:       r,
		Provider:    p.provider.Name(),
		Loaded:      make([]string, 0, len(syms)),
		Results:     make([]SymbolReport, 0, len(syms)),
		GeneratedAt: time.Now().UTC(),
	}

	for _, sym := range syms {
		report.Results = append(report.Results, p.processSymbol(ctx, sym, start, end))
	}

	for _, res := range report.Results {
		if res.Status == StatusOK || res.Status == StatusTableOnly {
			report.Loaded = append(report.Loaded, res.Symbol)
		}
	}

	p.log.WithFields(logrus.Fields{
		"symbols": len(syms),
		"loaded":  len(report.Loaded),
		"range":   r.String(),
	}).Info("Processed view request")

	return report, nil
}

// processSymbol drives one symbol through the whole flow; a single
// fetch attempt, no retries.
func (p *Pipeline) processSymbol(ctx context.Context, sym string, start, end time.Time) SymbolReport {
	log := logger.WithSymbol(p.logger, sym)
	rep := SymbolReport{Symbol: sym}

	raw, err := p.provider.DailyBars(ctx, sym, start, end)
	if err != nil {
		log.WithError(err).Error("Failed to fetch daily bars")
		rep.Status = StatusError
		rep.Conditions = append(rep.Conditions, Condition{
			Kind:    ConditionFetchError,
			Level:   "error",
			Message: fmt.Sprintf("failed to fetch %s: %v", sym, err),
		})
		return rep
	}
	if raw.NumRows() == 0 {
		log.Warn("No data in selected range")
		rep.Status = StatusNoData
		rep.Conditions = append(rep.Conditions, Condition{
			Kind:    ConditionNoData,
			Level:   "warning",
			Message: fmt.Sprintf("no data found for %s", sym),
		})
		return rep
	}

	res := frame.Normalize(raw, sym)
	rep.Refs = res.OHLC
	rep.Table = tablePayload(res.Table)

	csvText, err := export.ToCSV(res.Table)
	if err != nil {
		log.WithError(err).Warn("Failed to build CSV export")
	} else {
		rep.CSV = csvText
	}

	if !res.Table.HasDate() {
		log.Warn("Date column not found")
		rep.Status = StatusTableOnly
		rep.Conditions = append(rep.Conditions, Condition{
			Kind:    ConditionMissingDate,
			Level:   "warning",
			Message: fmt.Sprintf("Date column not found for %s", sym),
		})
		return rep
	}

	if !res.OHLC.Complete() {
		missing := res.OHLC.Missing()
		log.WithField("missing", missing).Warn("Incomplete OHLC columns")
		rep.Status = StatusTableOnly
		rep.Conditions = append(rep.Conditions, Condition{
			Kind:  ConditionIncompleteOHLC,
			Level: "warning",
			Message: fmt.Sprintf("incomplete OHLC for %s (missing %s); available columns: %v",
				sym, strings.Join(missing, ", "), res.Table.Columns),
		})
		return rep
	}

	ex := analysis.Compute(res.Table, sym, res.OHLC.High, res.OHLC.Low)
	rep.Extrema = ex
	if ex != nil {
		rep.Metrics = p.metrics(ex)
	}
	rep.Chart = chart.Compose(sym, res.Table, res.OHLC, ex)
	rep.Status = StatusOK

	log.WithField("rows", res.Table.NumRows()).Debug("Symbol processed")
	return rep
}

// metrics renders the ATH/ATL metric cards
func (p *Pipeline) metrics(ex *analysis.Extrema) []Metric {
	return []Metric{
		{
			Label: "All-Time High (selected range)",
			Value: p.currency + humanize.FormatFloat(currencyPattern, ex.High),
			Help:  "Date: " + ex.HighDate.Format(models.DateLayout),
		},
		{
			Label: "All-Time Low (selected range)",
			Value: p.currency + humanize.FormatFloat(currencyPattern, ex.Low),
			Help:  "Date: " + ex.LowDate.Format(models.DateLayout),
		},
	}
}
