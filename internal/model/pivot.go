package model

// PivotLevels holds the classical floor-trader pivot and its three
// resistance/support levels, derived from a single bar's high/low/close.
type PivotLevels struct {
	Pivot float64
	R1    float64
	R2    float64
	R3    float64
	S1    float64
	S2    float64
	S3    float64
}
