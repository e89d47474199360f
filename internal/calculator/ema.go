package calculator

// EMA computes the exponential moving average of values with smoothing
// factor alpha = 2/(span+1), seeded with the first value:
//
//	ema[0] = values[0]
//	ema[i] = alpha*values[i] + (1-alpha)*ema[i-1]
//
// The result has the same length as the input and is defined from index 0.
func EMA(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
