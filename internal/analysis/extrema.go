package analysis

import (
	"math"
	"time"

	"github.com/kinur1/FutureInsight/internal/frame"
)

// Extrema holds the range extremes of one symbol's table in view: the
// maximum high and minimum low, each with the date of its first
// occurrence. Scoped to the selected range, not true all-time values.
type Extrema struct {
	Symbol   string    `json:"symbol"`
	High     float64   `json:"high"`
	HighDate time.Time `json:"high_date"`
	Low      float64   `json:"low"`
	LowDate  time.Time `json:"low_date"`
}

// Compute scans the resolved high and low columns for their extremes.
// It returns nil when either column reference is unresolved, the table
// has no Date column, or there are no rows. Ties keep the first
// occurrence in table order.
func Compute(t *frame.Table, symbol, highCol, lowCol string) *Extrema {
	if highCol == "" || lowCol == "" || !t.HasDate() || t.NumRows() == 0 {
		return nil
	}

	highs := t.Column(highCol)
	lows := t.Column(lowCol)
	if highs == nil || lows == nil {
		return nil
	}

	ex := &Extrema{
		Symbol: symbol,
		High:   math.Inf(-1),
		Low:    math.Inf(1),
	}

	for i, v := range highs {
		if v > ex.High {
			ex.High = v
			ex.HighDate = t.Index[i]
		}
	}
	for i, v := range lows {
		if v < ex.Low {
			ex.Low = v
			ex.LowDate = t.Index[i]
		}
	}

	return ex
}
