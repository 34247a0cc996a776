package models

import (
	"errors"
	"testing"
	"time"
)

func TestDateRangeValidate(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"start before end", day, day.AddDate(0, 0, 1), false},
		{"equal dates", day, day, true},
		{"start after end", day.AddDate(0, 0, 1), day, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := DateRange{Start: tc.start, End: tc.end}.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvertedRange) {
					t.Fatalf("expected ErrInvertedRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDateRangeFetchWindow(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	start, end := r.FetchWindow()
	if !start.Equal(r.Start) {
		t.Errorf("window start = %v, want %v", start, r.Start)
	}

	// End date stays inclusive: the window must extend one day past it.
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("window end = %v, want %v", end, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("10/03/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDefaultRange(t *testing.T) {
	r := DefaultRange(365)
	if err := r.Validate(); err != nil {
		t.Fatalf("default range invalid: %v", err)
	}
	if got := r.End.AddDate(0, 0, -365); !got.Equal(r.Start) {
		t.Errorf("start = %v, want %v", r.Start, got)
	}
}
