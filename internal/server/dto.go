package server

import (
	"math"
	"time"

	"SwingScope/internal/model"
)

// All rounding to two decimals happens here, at the presentation boundary.
// Indicator values that have not warmed up serialize as null.

type latestDTO struct {
	Date       string   `json:"date"`
	Open       float64  `json:"open"`
	High       float64  `json:"high"`
	Low        float64  `json:"low"`
	Close      float64  `json:"close"`
	Volume     int64    `json:"volume"`
	EMA10      *float64 `json:"ema10"`
	EMA20      *float64 `json:"ema20"`
	RSI        *float64 `json:"rsi"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	ATR        *float64 `json:"atr"`
	VolSMA20   *float64 `json:"vol_sma20"`
}

type ruleDTO struct {
	Name       string `json:"name"`
	Vote       string `json:"vote"`
	Commentary string `json:"commentary"`
}

type pivotsDTO struct {
	Pivot float64 `json:"pivot"`
	R1    float64 `json:"r1"`
	R2    float64 `json:"r2"`
	R3    float64 `json:"r3"`
	S1    float64 `json:"s1"`
	S2    float64 `json:"s2"`
	S3    float64 `json:"s3"`
}

type chartPoint struct {
	Date  string   `json:"date"`
	Close float64  `json:"close"`
	EMA10 *float64 `json:"ema10"`
	EMA20 *float64 `json:"ema20"`
}

type analysisResponse struct {
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	Latest    latestDTO    `json:"latest"`
	Signal    string       `json:"signal"`
	Strength  string       `json:"strength"`
	Pattern   string       `json:"pattern"`
	Rules     []ruleDTO    `json:"rules"`
	BuyVotes  int          `json:"buy_votes"`
	SellVotes int          `json:"sell_votes"`
	Stop      *float64     `json:"stop"`
	Pivots    pivotsDTO    `json:"pivots"`
	Chart     []chartPoint `json:"chart"`
	FetchedAt time.Time    `json:"fetched_at"`
}

type fundamentalRowDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type fundamentalsResponse struct {
	Symbol  string              `json:"symbol"`
	Rows    []fundamentalRowDTO `json:"rows"`
	Skipped int                 `json:"skipped"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// opt rounds a value to two decimals, mapping NaN to nil (JSON null).
func opt(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := round2(v)
	return &r
}

const dateLayout = "2006-01-02"

func toAnalysisResponse(a *model.Analysis, name string) analysisResponse {
	latest := a.Latest()
	rec := a.Recommendation

	rules := make([]ruleDTO, len(rec.Rules))
	for i, r := range rec.Rules {
		vote := string(r.Vote)
		if r.Vote == model.SignalHold {
			vote = "-"
		}
		rules[i] = ruleDTO{Name: r.Name, Vote: vote, Commentary: r.Commentary}
	}

	var stop *float64
	if rec.Stop != nil {
		r := round2(*rec.Stop)
		stop = &r
	}

	chart := make([]chartPoint, len(a.Bars))
	for i, b := range a.Bars {
		chart[i] = chartPoint{
			Date:  b.Time.Format(dateLayout),
			Close: round2(b.Close),
			EMA10: opt(b.EMA10),
			EMA20: opt(b.EMA20),
		}
	}

	return analysisResponse{
		Symbol: a.Symbol,
		Name:   name,
		Latest: latestDTO{
			Date:       latest.Time.Format(dateLayout),
			Open:       round2(latest.Open),
			High:       round2(latest.High),
			Low:        round2(latest.Low),
			Close:      round2(latest.Close),
			Volume:     latest.Volume,
			EMA10:      opt(latest.EMA10),
			EMA20:      opt(latest.EMA20),
			RSI:        opt(latest.RSI),
			MACD:       opt(latest.MACD),
			MACDSignal: opt(latest.MACDSignal),
			ATR:        opt(latest.ATR),
			VolSMA20:   opt(latest.VolSMA20),
		},
		Signal:    string(rec.Signal),
		Strength:  rec.Strength,
		Pattern:   string(rec.Pattern),
		Rules:     rules,
		BuyVotes:  rec.BuyVotes,
		SellVotes: rec.SellVotes,
		Stop:      stop,
		Pivots: pivotsDTO{
			Pivot: round2(a.Pivots.Pivot),
			R1:    round2(a.Pivots.R1),
			R2:    round2(a.Pivots.R2),
			R3:    round2(a.Pivots.R3),
			S1:    round2(a.Pivots.S1),
			S2:    round2(a.Pivots.S2),
			S3:    round2(a.Pivots.S3),
		},
		Chart:     chart,
		FetchedAt: a.FetchedAt,
	}
}

func toFundamentalsResponse(r *model.FundamentalsReport) fundamentalsResponse {
	rows := make([]fundamentalRowDTO, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = fundamentalRowDTO{Label: row.Label, Value: row.Value}
	}
	return fundamentalsResponse{Symbol: r.Symbol, Rows: rows, Skipped: r.Skipped}
}
