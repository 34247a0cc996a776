package analysis

import (
	"testing"
	"time"

	"github.com/kinur1/FutureInsight/internal/frame"
)

func buildTable(t *testing.T, indexName string, highs, lows []float64) *frame.Table {
	t.Helper()

	raw := &frame.RawTable{IndexName: indexName}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range highs {
		raw.Index = append(raw.Index, base.AddDate(0, 0, i))
	}
	if highs != nil {
		raw.AddColumn(frame.Flat("High"), highs)
	}
	if lows != nil {
		raw.AddColumn(frame.Flat("Low"), lows)
	}

	return frame.Normalize(raw, "BTC-USD").Table
}

func TestComputeFirstOccurrenceWins(t *testing.T) {
	table := buildTable(t, "Date",
		[]float64{10, 15, 15, 8},
		[]float64{5, 4, 4, 6},
	)

	ex := Compute(table, "BTC-USD", "High", "Low")
	if ex == nil {
		t.Fatal("expected extrema")
	}

	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if ex.High != 15 || !ex.HighDate.Equal(d2) {
		t.Errorf("high = %v @ %v, want 15 @ %v", ex.High, ex.HighDate, d2)
	}
	if ex.Low != 4 || !ex.LowDate.Equal(d2) {
		t.Errorf("low = %v @ %v, want 4 @ %v", ex.Low, ex.LowDate, d2)
	}
}

func TestComputeSingleRow(t *testing.T) {
	table := buildTable(t, "Date", []float64{42.5}, []float64{40.25})

	ex := Compute(table, "ETH-USD", "High", "Low")
	if ex == nil {
		t.Fatal("expected extrema")
	}
	if ex.High != 42.5 || ex.Low != 40.25 {
		t.Errorf("got high=%v low=%v", ex.High, ex.Low)
	}
}

func TestComputeUnresolvedColumn(t *testing.T) {
	table := buildTable(t, "Date", []float64{10, 12}, nil)

	if ex := Compute(table, "BTC-USD", "High", ""); ex != nil {
		t.Errorf("expected nil for unresolved low column, got %+v", ex)
	}
}

func TestComputeWithoutDateColumn(t *testing.T) {
	table := buildTable(t, "Timestamp", []float64{10}, []float64{5})

	if ex := Compute(table, "BTC-USD", "High", "Low"); ex != nil {
		t.Errorf("expected nil without Date column, got %+v", ex)
	}
}
