package calculator

import (
	"errors"

	"SwingScope/internal/model"
)

// ErrNoData is returned when there are no bars to compute on.
var ErrNoData = errors.New("no bars in series")

// Indicator windows used across the engine.
const (
	EMAShortSpan = 10
	EMALongSpan  = 20
	RSIPeriod    = 14
	ATRPeriod    = 14
	VolSMAPeriod = 20
)

// Annotate computes all indicators over the series and returns one annotated
// bar per input bar. Indicator fields are NaN until their warm-up window has
// passed; no rounding is applied here.
func Annotate(bars []model.Bar) ([]model.AnnotatedBar, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	closes := extractCloses(bars)
	emaShort := EMA(closes, EMAShortSpan)
	emaLong := EMA(closes, EMALongSpan)
	rsi := RSISeries(closes, RSIPeriod)
	macd, signal := MACDSeries(closes)
	atr := ATRSeries(bars, ATRPeriod)
	volAvg := VolumeSMA(bars, VolSMAPeriod)

	out := make([]model.AnnotatedBar, len(bars))
	for i, b := range bars {
		out[i] = model.AnnotatedBar{
			Bar:        b,
			EMA10:      emaShort[i],
			EMA20:      emaLong[i],
			RSI:        rsi[i],
			MACD:       macd[i],
			MACDSignal: signal[i],
			ATR:        atr[i],
			VolSMA20:   volAvg[i],
		}
	}
	return out, nil
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
