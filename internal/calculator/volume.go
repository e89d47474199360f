package calculator

import "SwingScope/internal/model"

// VolumeSMA computes the trailing simple moving average of volume over the
// given period. The first period-1 entries are NaN (warm-up).
func VolumeSMA(bars []model.Bar, period int) []float64 {
	out := nanSlice(len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}
	var sum float64
	for i, b := range bars {
		sum += float64(b.Volume)
		if i >= period {
			sum -= float64(bars[i-period].Volume)
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}
