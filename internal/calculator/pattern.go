package calculator

import "SwingScope/internal/model"

// DetectPattern classifies the latest two bars as a bullish or bearish
// engulfing pattern, or none. All comparisons are strict; ambiguous shapes
// (equal opens/closes, partial engulfing) resolve to none. The two tags are
// mutually exclusive by construction.
func DetectPattern(latest, prev model.Bar) model.PatternTag {
	switch {
	case latest.Up() && prev.Down() && latest.Close > prev.Open && latest.Open < prev.Close:
		return model.PatternBullishEngulfing
	case latest.Down() && prev.Up() && latest.Close < prev.Open && latest.Open > prev.Close:
		return model.PatternBearishEngulfing
	default:
		return model.PatternNone
	}
}
