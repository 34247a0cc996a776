package chart

import (
	"fmt"

	"github.com/kinur1/FutureInsight/internal/analysis"
	"github.com/kinur1/FutureInsight/internal/frame"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// Candlestick is the payload handed to the chart renderer: aligned
// date/OHLC series plus the layout the viewer applies verbatim.
type Candlestick struct {
	Symbol string    `json:"symbol"`
	Title  string    `json:"title"`
	Dates  []string  `json:"dates"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`

	IncreasingColor string `json:"increasing_color"`
	DecreasingColor string `json:"decreasing_color"`
	Template        string `json:"template"`
	XAxisTitle      string `json:"xaxis_title"`
	YAxisTitle      string `json:"yaxis_title"`
	RangeSlider     bool   `json:"range_slider"`

	Lines []RefLine `json:"lines,omitempty"`
}

// RefLine is a dashed horizontal reference line with its annotation
type RefLine struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
	Dash     string  `json:"dash"`
	Position string  `json:"position"`
}

// Compose builds the candlestick payload for one symbol from its
// normalized table and resolved field references. Extrema, when
// present, add the dashed ATH/ATL reference lines.
func Compose(symbol string, t *frame.Table, refs frame.FieldRefs, ex *analysis.Extrema) *Candlestick {
	c := &Candlestick{
		Symbol:          symbol,
		Title:           fmt.Sprintf("%s Candlestick", symbol),
		IncreasingColor: "green",
		DecreasingColor: "red",
		Template:        "plotly_dark",
		XAxisTitle:      "Date",
		YAxisTitle:      "Price",
		RangeSlider:     false,
		Open:            t.Column(refs.Open),
		High:            t.Column(refs.High),
		Low:             t.Column(refs.Low),
		Close:           t.Column(refs.Close),
	}

	c.Dates = make([]string, t.NumRows())
	for i, d := range t.Index {
		c.Dates[i] = d.Format(models.DateLayout)
	}

	if ex != nil {
		c.Lines = []RefLine{
			{Label: "ATH", Value: ex.High, Color: "green", Dash: "dot", Position: "top left"},
			{Label: "ATL", Value: ex.Low, Color: "red", Dash: "dot", Position: "bottom left"},
		}
	}

	return c
}
