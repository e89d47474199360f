package model

// SignalType is the final directional recommendation.
type SignalType string

const (
	SignalBuy  SignalType = "Buy"
	SignalSell SignalType = "Sell"
	SignalHold SignalType = "Hold"
)

// PatternTag identifies a two-bar candle pattern.
type PatternTag string

const (
	PatternNone             PatternTag = "None"
	PatternBullishEngulfing PatternTag = "Bullish Engulfing"
	PatternBearishEngulfing PatternTag = "Bearish Engulfing"
)

// RuleVote records how a single voting rule contributed to the recommendation.
type RuleVote struct {
	Name       string
	Vote       SignalType // SignalBuy, SignalSell, or SignalHold for abstain
	Commentary string
}

// Recommendation is the final output of the signal voter.
type Recommendation struct {
	Signal    SignalType
	Strength  string // e.g. "Strong Buy (4/5)", "Neutral" for Hold
	Pattern   PatternTag
	Rules     []RuleVote
	BuyVotes  int
	SellVotes int
	Stop      *float64 // unrounded; nil when Hold or ATR unavailable
}
