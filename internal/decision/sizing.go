package decision

import "github.com/lox/huholdembot/internal/state"

// sizeBet implements the bet-sizing table (spec.md §4.8.3): a base
// multiplier keyed by street and hand value, adjusted for draws, board
// texture, and opponent aggression, then lifted/capped to the legal range.
func (e *Engine) sizeBet(c *DecisionContext, value, drawEquity float64) int {
	spr := float64(c.EffectiveStack) / maxFloat(float64(c.Pot), 1)
	mult := baseMultiplier(c.Street, value, spr)

	if c.Draws.FlushDraw || c.Draws.StraightDraw {
		floor := 0.5 + drawEquity*0.3
		if floor > mult {
			mult = floor
		}
	}

	switch c.Texture.Label {
	case "Wet":
		mult += 0.15
	case "Dry":
		mult -= 0.10
	}

	agg := c.VillainProfile.Aggression
	switch {
	case agg > 1.3:
		mult *= 1.1
	case agg < 0.8:
		mult *= 0.9
	}

	amount := int(float64(c.Pot) * mult)

	minIncrement := c.MinRaiseIncrement
	if minIncrement < e.BB {
		minIncrement = e.BB
	}
	floor := c.CallAmount + minIncrement
	if c.MinRaiseTo != nil {
		floor = *c.MinRaiseTo
	}
	if amount < floor {
		amount = floor
	}
	if c.MaxRaiseTo != nil && amount > *c.MaxRaiseTo {
		amount = *c.MaxRaiseTo
	}
	if amount < floor {
		amount = floor
	}
	return amount
}

// baseMultiplier is the street/value table from spec.md §4.8.3.
func baseMultiplier(street state.Street, value, spr float64) float64 {
	switch street {
	case state.Flop:
		switch {
		case value >= 0.9:
			return minFloat(1.2, spr*0.8)
		case value >= 0.8:
			return 0.75
		default:
			return 0.50
		}
	case state.Turn:
		switch {
		case value >= 0.92:
			return minFloat(1.0, spr*0.6)
		case value >= 0.85:
			return 0.80
		default:
			return 0.55
		}
	default: // River and any later street
		switch {
		case value >= 0.95:
			return minFloat(0.9, spr*0.5)
		case value >= 0.88:
			return 0.75
		default:
			return 0.60
		}
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
