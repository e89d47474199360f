package calculator

// MACDSeries computes the MACD line (EMA12 - EMA26 of the closes) and its
// signal line (EMA9 of the MACD line). Both are defined from index 0 because
// the EMAs are seeded with the first value.
func MACDSeries(closes []float64) (macd, signal []float64) {
	if len(closes) == 0 {
		return nil, nil
	}
	fast := EMA(closes, 12)
	slow := EMA(closes, 26)
	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}
	signal = EMA(macd, 9)
	return macd, signal
}
