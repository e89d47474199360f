package strategy

import (
	"fmt"
	"math"

	"SwingScope/internal/model"
)

// stopATRMultiple sizes the suggested stop distance from the latest close.
const stopATRMultiple = 1.5

// strongThreshold is the winning-side vote fraction at or above which a
// Buy/Sell outcome is labelled "Strong". The boundary is inclusive.
const strongThreshold = 0.75

// Evaluate reduces the latest two annotated bars into a recommendation.
// Five independent rules each cast at most one Buy or Sell vote; the
// majority side wins, ties (including 0/0) are Hold.
func Evaluate(latest, prev model.AnnotatedBar) *model.Recommendation {
	patternVote, tag := rulePattern(latest, prev)
	rules := []model.RuleVote{
		ruleEMACross(latest),
		ruleRSI(latest),
		ruleMACD(latest),
		ruleVolume(latest),
		patternVote,
	}

	var buy, sell int
	for _, r := range rules {
		switch r.Vote {
		case model.SignalBuy:
			buy++
		case model.SignalSell:
			sell++
		}
	}

	rec := &model.Recommendation{
		Signal:    model.SignalHold,
		Pattern:   tag,
		Rules:     rules,
		BuyVotes:  buy,
		SellVotes: sell,
	}
	switch {
	case buy > sell:
		rec.Signal = model.SignalBuy
	case sell > buy:
		rec.Signal = model.SignalSell
	}

	rec.Strength = strengthLabel(rec.Signal, buy, sell)

	// Stop price only accompanies a directional call, and only once ATR
	// has warmed up.
	if rec.Signal != model.SignalHold && !math.IsNaN(latest.ATR) {
		var stop float64
		if rec.Signal == model.SignalBuy {
			stop = latest.Close - stopATRMultiple*latest.ATR
		} else {
			stop = latest.Close + stopATRMultiple*latest.ATR
		}
		rec.Stop = &stop
	}

	return rec
}

// strengthLabel formats the confidence label for the final signal.
// Hold is always "Neutral", even at 0/0 votes.
func strengthLabel(signal model.SignalType, buy, sell int) string {
	if signal == model.SignalHold {
		return "Neutral"
	}
	total := buy + sell
	winning := buy
	if signal == model.SignalSell {
		winning = sell
	}
	grade := "Weak"
	if float64(winning) >= strongThreshold*float64(total) {
		grade = "Strong"
	}
	return fmt.Sprintf("%s %s (%d/%d)", grade, signal, winning, total)
}
