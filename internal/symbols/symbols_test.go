package symbols

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed case with empty token", "btc-usd, , BNB-usd", []string{"BTC-USD", "BNB-USD"}},
		{"single symbol", "eth-usd", []string{"ETH-USD"}},
		{"surrounding whitespace", "  aapl ,msft  ", []string{"AAPL", "MSFT"}},
		{"duplicates preserved in order", "btc-usd,eth-usd,btc-usd", []string{"BTC-USD", "ETH-USD", "BTC-USD"}},
		{"empty input", "", nil},
		{"only separators and spaces", " , ,, ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
