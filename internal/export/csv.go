package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// ToCSV serializes a normalized table as UTF-8 comma-delimited text:
// header row first, then rows in table order, no synthetic index
// column. Dates use the YYYY-MM-DD layout; numbers their shortest
// round-trip form.
func ToCSV(t *frame.Table) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range Rows(t) {
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// Rows renders the table body as strings in column order, the
// materialized index column leading each record.
func Rows(t *frame.Table) [][]string {
	rows := make([][]string, t.NumRows())
	for row := range rows {
		record := make([]string, len(t.Columns))
		record[0] = t.Index[row].Format(models.DateLayout)
		for i := 1; i < len(t.Columns); i++ {
			record[i] = floatStr(t.Values[t.Columns[i]][row])
		}
		rows[row] = record
	}
	return rows
}

// floatStr renders a value without trailing zero noise
func floatStr(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
