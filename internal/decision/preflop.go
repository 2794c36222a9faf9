package decision

import (
	"github.com/lox/huholdembot/internal/analysis"
	"github.com/lox/huholdembot/internal/opponent"
	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/internal/state"
)

// planPreflop implements spec.md §4.8.1: short-stack push/fold, open-range,
// and facing-a-raise branches.
func (e *Engine) planPreflop(c *DecisionContext) Decision {
	if len(c.Hole) != 2 {
		return Decision{Action: Fold}
	}
	strength := analysis.PreflopStrength(c.Hole[0], c.Hole[1])
	profile := c.VillainProfile
	if profile.Classification == "" {
		profile = opponent.Description{Classification: opponent.TAG, Aggression: 1}
	}

	if c.EffectiveBB <= 12 {
		return e.shortStack(c, strength)
	}
	if c.CallAmount == 0 {
		return e.openUncontested(c, strength, profile)
	}
	return e.vsRaise(c, strength, profile)
}

// shortStack implements the push/fold branch (spec.md §4.8.1).
func (e *Engine) shortStack(c *DecisionContext, strength float64) Decision {
	ladder := e.Ladders.BTN
	if c.Role != state.RoleSB {
		ladder = e.Ladders.BB
	}

	pushRange := e.Ranges.Push(ladder, c.EffectiveBB)
	if pushRange.Contains(c.Hole[0], c.Hole[1]) && c.IsLegal(RaiseTo) {
		amount := c.HeroStack + c.HeroCommitted
		if c.MaxRaiseTo != nil {
			amount = *c.MaxRaiseTo
		}
		return Decision{Action: RaiseTo, Amount: amount}
	}

	if c.CallAmount > 0 {
		if strength >= 0.62 || (c.EquityVsRange > 0.55 && c.CallAmount <= c.HeroStack) {
			return Decision{Action: Call}
		}
		return Decision{Action: Fold}
	}
	if c.IsLegal(Check) {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// openUncontested implements the "no bet to face" branch (spec.md §4.8.1).
func (e *Engine) openUncontested(c *DecisionContext, strength float64, profile opponent.Description) Decision {
	var name ranges.Name
	if c.Role == state.RoleSB {
		if c.EffectiveBB <= 20 {
			name = ranges.HUSB20BB
		} else {
			name = ranges.HUBtn100BB
		}
	} else {
		name = ranges.HUBBDefend
	}
	openRange := e.Ranges.Get(name)

	shouldOpen := openRange.Contains(c.Hole[0], c.Hole[1])
	if !shouldOpen && (profile.Classification == opponent.LAG || profile.Classification == opponent.Maniac) {
		// 15% steal mix when out of range, drawn once per call site
		// (SPEC_FULL.md §9, open question 2).
		shouldOpen = e.RNG.Float64() < 0.15
	}

	if shouldOpen && c.IsLegal(RaiseTo) {
		bb := float64(e.BB)
		mult := 2.2
		if c.EffectiveBB > 25 {
			mult = 2.5
		}
		target := int(bb * mult)
		if c.MinRaiseTo != nil {
			target = *c.MinRaiseTo
		}
		if c.MaxRaiseTo != nil && target > *c.MaxRaiseTo {
			target = *c.MaxRaiseTo
		}
		return Decision{Action: RaiseTo, Amount: target}
	}

	if c.IsLegal(Check) {
		return Decision{Action: Check}
	}
	return Decision{Action: Call}
}

// vsRaise implements the "facing a raise" branch (spec.md §4.8.1).
func (e *Engine) vsRaise(c *DecisionContext, strength float64, profile opponent.Description) Decision {
	var threeBetName, defendBaseName ranges.Name
	if c.Role == state.RoleSB {
		threeBetName = ranges.HUSBThreeBet
		defendBaseName = ranges.HUSB20BB
	} else {
		threeBetName = ranges.HUBBThreeBet
		defendBaseName = ranges.HUBBDefend
	}
	threeBetRange := e.Ranges.Get(threeBetName)
	defendRange := e.Ranges.Get(defendBaseName).Union(threeBetRange)

	bb := float64(e.BB)

	if threeBetRange.Contains(c.Hole[0], c.Hole[1]) && c.IsLegal(RaiseTo) {
		capMult := 2.2
		if c.EffectiveBB > 40 {
			capMult = 3
		}
		a := float64(c.CallAmount) + bb*capMult
		ceilMult := 2.5
		if c.EffectiveBB > 60 {
			ceilMult = 3.5
		}
		b := float64(c.CallAmount) + bb*ceilMult
		target := a
		if c.MaxRaiseTo != nil {
			a = float64(*c.MaxRaiseTo)
		}
		if a < b {
			target = a
		} else {
			target = b
		}
		amount := int(target)
		if c.MaxRaiseTo != nil && amount > *c.MaxRaiseTo {
			amount = *c.MaxRaiseTo
		}
		return Decision{Action: RaiseTo, Amount: amount}
	}

	callThreshold := 0.52
	if profile.Aggression > 1.2 {
		callThreshold = 0.48
	}
	inDefendRange := defendRange.Contains(c.Hole[0], c.Hole[1])

	if c.IsLegal(Call) && (inDefendRange || strength >= callThreshold) {
		return Decision{Action: Call}
	}

	if c.IsLegal(RaiseTo) && c.EffectiveStack > 0 && float64(c.CallAmount)/float64(c.EffectiveStack) > 0.45 && strength >= 0.70 {
		amount := c.HeroStack + c.HeroCommitted
		if c.MaxRaiseTo != nil {
			amount = *c.MaxRaiseTo
		}
		return Decision{Action: RaiseTo, Amount: amount}
	}

	if c.IsLegal(Fold) {
		return Decision{Action: Fold}
	}
	return Decision{Action: Check}
}
