package calculator

import (
	"math"

	"SwingScope/internal/model"
)

// ATRSeries computes the Wilder-smoothed average true range over the given
// period. True range is max(high-low, |high-prevClose|, |low-prevClose|);
// the first bar has no prior close, so its true range is high-low only.
// The first period-1 entries are NaN (warm-up).
func ATRSeries(bars []model.Bar, period int) []float64 {
	out := nanSlice(len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}

	tr := make([]float64, len(bars))
	tr[0] = bars[0].High - bars[0].Low
	for i := 1; i < len(bars); i++ {
		hl := bars[i].High - bars[i].Low
		hc := math.Abs(bars[i].High - bars[i-1].Close)
		lc := math.Abs(bars[i].Low - bars[i-1].Close)
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	// Initial ATR: simple mean of the first `period` true ranges.
	var sum float64
	for i := 0; i < period; i++ {
		sum += tr[i]
	}
	atr := sum / float64(period)
	out[period-1] = atr

	for i := period; i < len(bars); i++ {
		atr = (atr*float64(period-1) + tr[i]) / float64(period)
		out[i] = atr
	}
	return out
}
