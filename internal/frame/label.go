package frame

import (
	"strings"
)

// Label identifies one raw table column. It is either flat (a single
// name) or composite (an ordered sequence of parts, typically field name
// plus symbol, as produced by providers that qualify columns when
// several symbols are fetched jointly).
type Label struct {
	name  string
	parts []string
}

// Flat returns a flat label
func Flat(name string) Label {
	return Label{name: name}
}

// Composite returns a composite label from its parts
func Composite(parts ...string) Label {
	return Label{parts: parts}
}

// IsComposite reports whether the label carries multiple parts
func (l Label) IsComposite() bool {
	return l.parts != nil
}

// Flatten collapses the label into a single string key. Composite parts
// are joined with underscores; empty parts are dropped rather than
// producing dangling separators, and an all-empty composite flattens to
// the empty string. Flat labels stringify as-is.
func (l Label) Flatten() string {
	if !l.IsComposite() {
		return l.name
	}

	kept := make([]string, 0, len(l.parts))
	for _, p := range l.parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "_")
}

func (l Label) String() string {
	return l.Flatten()
}
