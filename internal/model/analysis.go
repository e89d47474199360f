package model

import "time"

// Analysis is the full per-request result: the annotated series, the
// recommendation reduced from its latest two bars, and the pivot levels
// derived from the latest bar. Request-scoped, never stored.
type Analysis struct {
	Symbol         string
	Bars           []AnnotatedBar
	Recommendation *Recommendation
	Pivots         PivotLevels
	FetchedAt      time.Time
}

// Latest returns the most recent annotated bar.
func (a *Analysis) Latest() AnnotatedBar {
	return a.Bars[len(a.Bars)-1]
}
