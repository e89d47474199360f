package model

import "time"

// Bar represents a single daily candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Up reports whether the bar closed above its open.
func (b Bar) Up() bool { return b.Close > b.Open }

// Down reports whether the bar closed below its open.
func (b Bar) Down() bool { return b.Close < b.Open }
