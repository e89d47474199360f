package model

// AnnotatedBar is a Bar extended with computed indicator values.
// Indicator fields that have not warmed up yet are NaN.
type AnnotatedBar struct {
	Bar
	EMA10      float64
	EMA20      float64
	RSI        float64
	MACD       float64
	MACDSignal float64
	ATR        float64
	VolSMA20   float64
}
