package frame

// FieldRefs holds the resolved column references for the chart fields.
// An empty string marks a field whose candidates were all absent.
type FieldRefs struct {
	Open  string `json:"open,omitempty"`
	High  string `json:"high,omitempty"`
	Low   string `json:"low,omitempty"`
	Close string `json:"close,omitempty"`
}

// Complete reports whether all four chart fields resolved
func (r FieldRefs) Complete() bool {
	return r.Open != "" && r.High != "" && r.Low != "" && r.Close != ""
}

// Missing lists the field names that did not resolve
func (r FieldRefs) Missing() []string {
	var missing []string
	if r.Open == "" {
		missing = append(missing, "Open")
	}
	if r.High == "" {
		missing = append(missing, "High")
	}
	if r.Low == "" {
		missing = append(missing, "Low")
	}
	if r.Close == "" {
		missing = append(missing, "Close")
	}
	return missing
}

// Result carries one symbol's normalized table together with its
// resolved column references.
type Result struct {
	Symbol string
	Table  *Table
	// Close is the canonical close reference; it may fall back to an
	// adjusted-close column when no regular close is present.
	Close string
	// OHLC holds the chart field references.
	OHLC FieldRefs
}

// closeCandidates is the probe order for the canonical close reference.
// Symbol-qualified names win over bare ones, regular close over the
// adjusted variants; the first present column is chosen.
func closeCandidates(symbol string) []string {
	return []string{
		"Close_" + symbol,
		"Close",
		"Adj Close_" + symbol,
		"Adj Close",
	}
}

// fieldCandidates is the probe order for a chart field: the
// symbol-qualified name first, then the bare field name.
func fieldCandidates(field, symbol string) []string {
	return []string{field + "_" + symbol, field}
}

// Normalize turns a raw provider table into its flat-keyed form:
// column labels are flattened into single string keys, the date index
// is materialized as the leading column (an unnamed index surfaces as
// "index" and is renamed to Date when no Date column exists), and the
// close/OHLC references are resolved against the candidate tables.
func Normalize(raw *RawTable, symbol string) *Result {
	flat := make([]string, len(raw.Labels))
	for i, l := range raw.Labels {
		flat[i] = l.Flatten()
	}

	indexCol := raw.IndexName
	if indexCol == "" {
		indexCol = "index"
	}
	if indexCol == "index" && !contains(flat, "Date") {
		indexCol = "Date"
	}

	t := &Table{
		Columns: append([]string{indexCol}, flat...),
		Index:   raw.Index,
		Values:  make(map[string][]float64, len(flat)),
	}
	for i, name := range flat {
		t.Values[name] = raw.Columns[i]
	}

	return &Result{
		Symbol: symbol,
		Table:  t,
		Close:  t.firstPresent(closeCandidates(symbol)),
		OHLC: FieldRefs{
			Open:  t.firstPresent(fieldCandidates("Open", symbol)),
			High:  t.firstPresent(fieldCandidates("High", symbol)),
			Low:   t.firstPresent(fieldCandidates("Low", symbol)),
			Close: t.firstPresent(fieldCandidates("Close", symbol)),
		},
	}
}

// firstPresent returns the first candidate naming a column of the
// table, or "" when none does.
func (t *Table) firstPresent(candidates []string) string {
	for _, c := range candidates {
		if _, ok := t.Values[c]; ok {
			return c
		}
	}
	return ""
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
