package history

// RouteOTPTable maps route ids to a historical on-time percentage for a
// single reporting period (most recently a fiscal year).
type RouteOTPTable map[string]float64

// Matcher resolves an API route id against the table. The annual report uses
// line-level ids (C2, D8) while the API uses specific variants (C21, D80);
// matchers are tried in order until one hits.
type Matcher func(id string, t RouteOTPTable) (float64, bool)

// MatchExact hits only when the id is present verbatim.
func MatchExact(id string, t RouteOTPTable) (float64, bool) {
	otp, ok := t[id]
	return otp, ok
}

// MatchPrefix tries progressively shorter prefixes of the id, so a variant
// falls back to its line-level aggregate (C21 -> C2 -> C).
func MatchPrefix(id string, t RouteOTPTable) (float64, bool) {
	for length := len(id) - 1; length > 0; length-- {
		if otp, ok := t[id[:length]]; ok {
			return otp, true
		}
	}
	return 0, false
}

// DefaultMatchers is the standard strategy: exact first, then prefix.
var DefaultMatchers = []Matcher{MatchExact, MatchPrefix}

// Lookup resolves id with the default matcher chain.
func (t RouteOTPTable) Lookup(id string) (float64, bool) {
	return t.LookupWith(id, DefaultMatchers)
}

// LookupWith resolves id with a caller-supplied matcher chain.
func (t RouteOTPTable) LookupWith(id string, matchers []Matcher) (float64, bool) {
	for _, m := range matchers {
		if otp, ok := m(id, t); ok {
			return otp, true
		}
	}
	return 0, false
}
