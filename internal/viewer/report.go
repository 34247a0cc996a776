package viewer

import (
	"time"

	"github.com/kinur1/FutureInsight/internal/analysis"
	"github.com/kinur1/FutureInsight/internal/chart"
	"github.com/kinur1/FutureInsight/internal/export"
	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// Per-symbol statuses
const (
	StatusOK        = "ok"
	StatusTableOnly = "table_only"
	StatusNoData    = "no_data"
	StatusError     = "error"
)

// ConditionKind classifies a per-symbol condition
type ConditionKind string

const (
	ConditionNoData         ConditionKind = "no_data"
	ConditionFetchError     ConditionKind = "fetch_error"
	ConditionMissingDate    ConditionKind = "missing_date"
	ConditionIncompleteOHLC ConditionKind = "incomplete_ohlc"
)

// Condition surfaces one per-symbol problem. Conditions never leak
// across symbols; each result owns its own list.
type Condition struct {
	Kind    ConditionKind `json:"kind"`
	Level   string        `json:"level"`
	Message string        `json:"message"`
}

// Metric is a labeled display value with a tooltip
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Help  string `json:"help"`
}

// TablePayload is the rendered form of a normalized table
type TablePayload struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SymbolReport is one symbol's independently-owned slice of the
// response. A table_only status still carries the table and CSV; only
// chart, extrema and metrics are withheld.
type SymbolReport struct {
	Symbol     string             `json:"symbol"`
	Status     string             `json:"status"`
	Table      *TablePayload      `json:"table,omitempty"`
	Refs       frame.FieldRefs    `json:"refs"`
	Extrema    *analysis.Extrema  `json:"extrema,omitempty"`
	Metrics    []Metric           `json:"metrics,omitempty"`
	Chart      *chart.Candlestick `json:"chart,omitempty"`
	CSV        string             `json:"csv,omitempty"`
	Conditions []Condition        `json:"conditions,omitempty"`
}

// Report is the per-request result collection. It is built from scratch
// for every request and never persisted.
type Report struct {
	Symbols     []string         `json:"symbols"`
	Range       models.DateRange `json:"range"`
	Provider    string           `json:"provider"`
	Loaded      []string         `json:"loaded"`
	Results     []SymbolReport   `json:"results"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func tablePayload(t *frame.Table) *TablePayload {
	return &TablePayload{Columns: t.Columns, Rows: export.Rows(t)}
}
