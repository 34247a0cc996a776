package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for inputs, labels and exports
const DateLayout = "2006-01-02"

// ErrInvertedRange indicates a range whose start is not strictly before its end
var ErrInvertedRange = errors.New("end date must be after start date")

// DateRange is a pair of calendar dates bounding the bars to view.
// Both dates are UTC midnights with no time-of-day component; End is
// inclusive at the fetch boundary.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DefaultRange returns the range ending today (UTC) and starting
// lookbackDays earlier.
func DefaultRange(lookbackDays int) DateRange {
	end := Today()
	return DateRange{Start: end.AddDate(0, 0, -lookbackDays), End: end}
}

// Today returns the current UTC calendar date at midnight
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date as a UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Validate rejects inverted ranges. A failure is fatal for the whole
// request; the caller must not fetch anything after it.
func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrInvertedRange
	}
	return nil
}

// FetchWindow returns the [startInclusive, endExclusive) window for the
// provider boundary. End is pushed forward one day so the bar on the
// user's end date is included.
func (r DateRange) FetchWindow() (time.Time, time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}
