package decision

import (
	"github.com/lox/huholdembot/internal/state"
)

// planPostflop implements spec.md §4.8.2: the value/draw/semi-random bet
// branch when unopposed, and the raise/call/check-raise/bluff/fold branch
// when facing a bet.
func (e *Engine) planPostflop(c *DecisionContext) Decision {
	value := c.Strength.Normalized()
	drawEquity := c.Draws.Outs
	equity := minFloat(float64(drawEquity)/18.0, 1.0)
	boardPressure := 0.0
	switch c.Texture.Label {
	case "Wet":
		boardPressure = 0.12
	case "Dry":
		boardPressure = -0.05
	}
	agg := c.VillainProfile.Aggression

	if c.CallAmount == 0 {
		return e.betOrCheck(c, value, equity)
	}
	return e.raiseCallOrFold(c, value, equity, boardPressure, agg)
}

func (e *Engine) betOrCheck(c *DecisionContext, value, drawEquity float64) Decision {
	shouldBet := false
	switch {
	case value >= 0.78:
		shouldBet = true
	case drawEquity >= 0.5:
		shouldBet = true
	case value >= 0.65 && e.RNG.Float64() < 0.4:
		shouldBet = true
	}

	if shouldBet && (c.IsLegal(Bet) || c.IsLegal(RaiseTo)) {
		amount := e.sizeBet(c, value, drawEquity)
		action := Bet
		if !c.IsLegal(Bet) {
			action = RaiseTo
		}
		return Decision{Action: action, Amount: amount}
	}

	if c.IsLegal(Check) {
		return Decision{Action: Check}
	}
	return Decision{Action: Call}
}

func (e *Engine) raiseCallOrFold(c *DecisionContext, value, drawEquity, boardPressure, agg float64) Decision {
	if value >= 0.9 && c.IsLegal(RaiseTo) {
		amount := e.sizeBet(c, value, drawEquity)
		return Decision{Action: RaiseTo, Amount: amount}
	}

	aggPenalty := 0.0
	if agg > 1.2 {
		aggPenalty = 0.05
	}
	callThreshold := 0.44 + boardPressure - aggPenalty
	if callThreshold < 0.32 {
		callThreshold = 0.32
	}
	if value >= callThreshold || drawEquity >= 0.55 || c.EquityVsRange >= 0.55 {
		return Decision{Action: Call}
	}

	if e.checkRaiseTriggers(c, value, drawEquity, agg) && c.IsLegal(RaiseTo) {
		amount := e.sizeBet(c, value, drawEquity)
		return Decision{Action: RaiseTo, Amount: amount}
	}

	if e.bluffFires(c, boardPressure, agg) && c.IsLegal(RaiseTo) {
		amount := e.sizeBet(c, value, drawEquity)
		return Decision{Action: RaiseTo, Amount: amount}
	}

	if c.IsLegal(Fold) {
		return Decision{Action: Fold}
	}
	if c.IsLegal(Check) {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// checkRaiseTriggers implements spec.md §4.8.4's check-raise condition.
func (e *Engine) checkRaiseTriggers(c *DecisionContext, value, drawEquity, agg float64) bool {
	if value >= 0.75 {
		return true
	}
	if drawEquity >= 0.55 && agg > 1.1 {
		return true
	}
	if c.EffectiveStack > 0 && float64(c.Pot)/float64(c.EffectiveStack) > 0.45 && value >= 0.60 {
		return true
	}
	return false
}

// bluffFires implements spec.md §4.8.4's bluff-frequency formula and draw.
func (e *Engine) bluffFires(c *DecisionContext, boardPressure, agg float64) bool {
	freq := 0.12
	switch c.Texture.Label {
	case "Dry":
		freq += 0.25
	case "Wet":
		freq -= 0.10
	}
	switch {
	case agg > 1.5:
		freq += 0.20
	case agg < 0.7:
		freq += 0.15
	}
	if c.Position == state.InPosition {
		freq += 0.10
	}
	if c.EffectiveBB < 15 {
		freq += 0.10
	}
	switch c.Street {
	case state.Flop:
		freq += 0.05
	case state.Turn:
		freq += 0.10
	case state.River:
		freq += 0.15
	}
	if freq < 0.05 {
		freq = 0.05
	}
	if freq > 0.60 {
		freq = 0.60
	}
	return e.RNG.Float64() < freq
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
