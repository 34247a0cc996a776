package frame

import (
	"time"
)

// RawTable is a per-symbol table of daily bars as a provider returns it:
// rows indexed by date, columns carrying possibly composite labels.
// IndexName names the date index and is empty when the index is unnamed.
type RawTable struct {
	IndexName string
	Index     []time.Time
	Labels    []Label
	Columns   [][]float64
}

// NumRows returns the number of rows
func (t *RawTable) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Index)
}

// AddColumn appends a column; values must align with the date index
func (t *RawTable) AddColumn(label Label, values []float64) {
	t.Labels = append(t.Labels, label)
	t.Columns = append(t.Columns, values)
}

// Table is the normalized, flat-keyed form of a RawTable: one row per
// trading date, the materialized index column first, numeric field
// columns after it in source order.
type Table struct {
	Columns []string
	Index   []time.Time
	Values  map[string][]float64
}

// IndexName returns the name of the materialized index column
func (t *Table) IndexName() string {
	if t == nil || len(t.Columns) == 0 {
		return ""
	}
	return t.Columns[0]
}

// HasDate reports whether a Date column could be established; tables
// without one are chart-ineligible but still displayable.
func (t *Table) HasDate() bool {
	return t.IndexName() == "Date"
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Index)
}

// Column returns the values of a numeric column, nil when absent
func (t *Table) Column(name string) []float64 {
	if t == nil {
		return nil
	}
	return t.Values[name]
}
