package markup

// Case pairs a condition with the value used when it is the first truthy one.
type Case struct {
	When  bool
	Value any
}

// Cond is the stateless, single-call form of Conditions: it scans cases in
// order and returns the resolved value of the first truthy one. The optional
// trailing fallback distinguishes "no default" from an explicitly falsy
// default: with no fallback argument Cond returns nil when nothing matches,
// while an explicit nil or false fallback is returned exactly, uncoerced.
// Only the first fallback argument is considered.
//
// Unlike Conditions, the return value is the raw resolved payload rather
// than trusted text; embed it with From. Thunks in unselected cases are
// never invoked.
func Cond(cases []Case, fallback ...any) any {
	for _, cs := range cases {
		if cs.When {
			return resolve(cs.Value)
		}
	}
	if len(fallback) > 0 {
		return resolve(fallback[0])
	}
	return nil
}
