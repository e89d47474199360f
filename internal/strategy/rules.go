package strategy

import (
	"fmt"
	"math"

	"SwingScope/internal/calculator"
	"SwingScope/internal/model"
)

// Each rule casts at most one Buy or Sell vote. SignalHold means the rule
// abstained; abstentions are excluded from the vote total. A rule whose
// indicator has not warmed up (NaN) always abstains rather than voting on a
// phantom zero.

// ruleEMACross votes on the short EMA relative to the long EMA.
func ruleEMACross(latest model.AnnotatedBar) model.RuleVote {
	v := model.RuleVote{
		Name:       "EMA10/EMA20",
		Vote:       model.SignalHold,
		Commentary: fmt.Sprintf("EMA10=%.2f EMA20=%.2f", latest.EMA10, latest.EMA20),
	}
	if math.IsNaN(latest.EMA10) || math.IsNaN(latest.EMA20) {
		v.Commentary = "EMA unavailable"
		return v
	}
	if latest.EMA10 > latest.EMA20 {
		v.Vote = model.SignalBuy
	} else if latest.EMA10 < latest.EMA20 {
		v.Vote = model.SignalSell
	}
	return v
}

// ruleRSI votes Buy above 60 and Sell below 40 (strict); 40-60 is neutral.
func ruleRSI(latest model.AnnotatedBar) model.RuleVote {
	v := model.RuleVote{
		Name:       "RSI14",
		Vote:       model.SignalHold,
		Commentary: fmt.Sprintf("RSI=%.1f", latest.RSI),
	}
	if math.IsNaN(latest.RSI) {
		v.Commentary = "RSI warming up"
		return v
	}
	if latest.RSI > 60 {
		v.Vote = model.SignalBuy
	} else if latest.RSI < 40 {
		v.Vote = model.SignalSell
	}
	return v
}

// ruleMACD votes on the MACD line relative to its signal line.
func ruleMACD(latest model.AnnotatedBar) model.RuleVote {
	v := model.RuleVote{
		Name:       "MACD",
		Vote:       model.SignalHold,
		Commentary: fmt.Sprintf("MACD=%.3f signal=%.3f", latest.MACD, latest.MACDSignal),
	}
	if math.IsNaN(latest.MACD) || math.IsNaN(latest.MACDSignal) {
		v.Commentary = "MACD unavailable"
		return v
	}
	if latest.MACD > latest.MACDSignal {
		v.Vote = model.SignalBuy
	} else if latest.MACD < latest.MACDSignal {
		v.Vote = model.SignalSell
	}
	return v
}

// ruleVolume votes Buy when the latest volume exceeds its 20-day average.
// It never votes Sell; the asymmetry is intentional (volume only confirms
// strength, it does not signal weakness).
func ruleVolume(latest model.AnnotatedBar) model.RuleVote {
	v := model.RuleVote{
		Name:       "Volume",
		Vote:       model.SignalHold,
		Commentary: fmt.Sprintf("vol=%d avg20=%.0f", latest.Volume, latest.VolSMA20),
	}
	if math.IsNaN(latest.VolSMA20) {
		v.Commentary = "volume average warming up"
		return v
	}
	if float64(latest.Volume) > latest.VolSMA20 {
		v.Vote = model.SignalBuy
	}
	return v
}

// rulePattern votes on a two-bar engulfing pattern.
func rulePattern(latest, prev model.AnnotatedBar) (model.RuleVote, model.PatternTag) {
	tag := calculator.DetectPattern(latest.Bar, prev.Bar)
	v := model.RuleVote{
		Name:       "Candle",
		Vote:       model.SignalHold,
		Commentary: string(tag),
	}
	switch tag {
	case model.PatternBullishEngulfing:
		v.Vote = model.SignalBuy
	case model.PatternBearishEngulfing:
		v.Vote = model.SignalSell
	}
	return v, tag
}
