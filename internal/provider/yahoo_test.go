package provider

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBarDate(t *testing.T) {
	// 2024-01-02 14:30:00 UTC
	ts := int(time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC).Unix())

	got := barDate(ts)
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("barDate = %v, want %v", got, want)
	}
}

func TestDecimalFloat(t *testing.T) {
	d := decimal.NewFromFloat(42000.5)
	if got := decimalFloat(d); got != 42000.5 {
		t.Errorf("decimalFloat = %v, want 42000.5", got)
	}
}
