package calculator

import "SwingScope/internal/model"

// Pivots computes the classical floor-trader pivot levels from a single
// bar's high, low and close. Pure function; Rn+Sn = 2*Pivot for n=1..3.
func Pivots(bar model.Bar) model.PivotLevels {
	p := (bar.High + bar.Low + bar.Close) / 3.0
	return model.PivotLevels{
		Pivot: p,
		R1:    2*p - bar.Low,
		S1:    2*p - bar.High,
		R2:    p + (bar.High - bar.Low),
		S2:    p - (bar.High - bar.Low),
		R3:    bar.High + 2*(p-bar.Low),
		S3:    bar.Low - 2*(bar.High-p),
	}
}
