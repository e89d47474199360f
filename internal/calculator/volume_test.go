package calculator

import (
	"math"
	"testing"

	"SwingScope/internal/model"
)

func TestVolumeSMA(t *testing.T) {
	bars := make([]model.Bar, 25)
	for i := range bars {
		bars[i] = model.Bar{Volume: int64(1000 * (i + 1))}
	}
	avg := VolumeSMA(bars, 20)

	for i := 0; i < 19; i++ {
		if !math.IsNaN(avg[i]) {
			t.Errorf("avg[%d] = %v, want NaN during warm-up", i, avg[i])
		}
	}
	// avg[19] = mean of 1000..20000 = 10500
	if !almostEqual(avg[19], 10500) {
		t.Errorf("avg[19] = %v, want 10500", avg[19])
	}
	// avg[24] = mean of 6000..25000 = 15500
	if !almostEqual(avg[24], 15500) {
		t.Errorf("avg[24] = %v, want 15500", avg[24])
	}
}

func TestVolumeSMA_TooShort(t *testing.T) {
	bars := []model.Bar{{Volume: 100}, {Volume: 200}}
	for i, v := range VolumeSMA(bars, 20) {
		if !math.IsNaN(v) {
			t.Errorf("avg[%d] = %v, want NaN for short series", i, v)
		}
	}
}
