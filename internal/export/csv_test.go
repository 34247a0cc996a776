package export

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kinur1/FutureInsight/internal/frame"
)

func TestToCSVRoundTrip(t *testing.T) {
	raw := &frame.RawTable{
		IndexName: "Date",
		Index: []time.Time{
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	raw.AddColumn(frame.Flat("Open"), []float64{42000, 42500.5})
	raw.AddColumn(frame.Flat("Close"), []float64{42500.5, 43123.4567})

	table := frame.Normalize(raw, "BTC-USD").Table

	out, err := ToCSV(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable csv: %v", err)
	}

	want := [][]string{
		{"Date", "Open", "Close"},
		{"2024-01-02", "42000", "42500.5"},
		{"2024-01-03", "42500.5", "43123.4567"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestToCSVEmptyTable(t *testing.T) {
	raw := &frame.RawTable{IndexName: "Date"}
	raw.AddColumn(frame.Flat("Close"), nil)

	out, err := ToCSV(frame.Normalize(raw, "BTC-USD").Table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "Date,Close" {
		t.Errorf("output = %q, want header only", got)
	}
}
