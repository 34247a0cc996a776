package symbols

import (
	"strings"
)

// Parse splits free-text comma-separated input into normalized symbol
// identifiers: tokens are trimmed, empty tokens dropped, the remainder
// upper-cased. Input order is preserved and duplicates are kept; symbols
// are not validated against any registry, unknown ones simply fail at
// the fetch step.
func Parse(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p))
	}
	return out
}
