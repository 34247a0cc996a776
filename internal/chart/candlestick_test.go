package chart

import (
	"testing"
	"time"

	"github.com/kinur1/FutureInsight/internal/analysis"
	"github.com/kinur1/FutureInsight/internal/frame"
)

func TestCompose(t *testing.T) {
	raw := &frame.RawTable{
		IndexName: "Date",
		Index: []time.Time{
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	raw.AddColumn(frame.Flat("Open"), []float64{10, 11})
	raw.AddColumn(frame.Flat("High"), []float64{12, 13})
	raw.AddColumn(frame.Flat("Low"), []float64{9, 10})
	raw.AddColumn(frame.Flat("Close"), []float64{11, 12})

	res := frame.Normalize(raw, "BTC-USD")
	ex := analysis.Compute(res.Table, "BTC-USD", res.OHLC.High, res.OHLC.Low)

	c := Compose("BTC-USD", res.Table, res.OHLC, ex)

	if c.Title != "BTC-USD Candlestick" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Template != "plotly_dark" || c.RangeSlider {
		t.Errorf("layout = %q rangeSlider=%v, want plotly_dark without slider", c.Template, c.RangeSlider)
	}
	if len(c.Dates) != 2 || c.Dates[0] != "2024-01-02" {
		t.Errorf("dates = %v", c.Dates)
	}
	if len(c.Lines) != 2 {
		t.Fatalf("lines = %d, want ATH and ATL", len(c.Lines))
	}
	if c.Lines[0].Label != "ATH" || c.Lines[0].Value != 13 || c.Lines[0].Dash != "dot" {
		t.Errorf("ath line = %+v", c.Lines[0])
	}
	if c.Lines[1].Label != "ATL" || c.Lines[1].Value != 9 || c.Lines[1].Position != "bottom left" {
		t.Errorf("atl line = %+v", c.Lines[1])
	}
}

func TestComposeWithoutExtrema(t *testing.T) {
	raw := &frame.RawTable{
		IndexName: "Date",
		Index:     []time.Time{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	raw.AddColumn(frame.Flat("Open"), []float64{10})
	raw.AddColumn(frame.Flat("High"), []float64{12})
	raw.AddColumn(frame.Flat("Low"), []float64{9})
	raw.AddColumn(frame.Flat("Close"), []float64{11})

	res := frame.Normalize(raw, "BTC-USD")
	c := Compose("BTC-USD", res.Table, res.OHLC, nil)

	if len(c.Lines) != 0 {
		t.Errorf("expected no reference lines, got %v", c.Lines)
	}
}
