// Package decision implements the context builder, the preflop/postflop
// heuristic planners, bet sizing, bluff/check-raise heuristics, and
// sanitisation described in spec.md §4.7-§4.8.
package decision

import (
	"math/rand/v2"

	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/internal/state"
)

// Refiner optionally refines a seed decision under a wall-clock budget
// (spec.md §4.9). internal/mcts implements this; it is injected rather than
// imported directly so this package does not depend on it.
type Refiner interface {
	Refine(c *DecisionContext, seed Decision) Decision
}

// Engine selects an action using the position/stack/street-specific
// heuristics of spec.md §4.8, then optionally refines it via MCTS.
type Engine struct {
	Ranges  *ranges.Table
	Ladders ranges.PushFoldLadders
	BB      int
	RNG     *rand.Rand
	MCTS    Refiner
}

// NewEngine returns an Engine with the default push/fold ladders.
func NewEngine(table *ranges.Table, bb int, rng *rand.Rand) *Engine {
	return &Engine{
		Ranges:  table,
		Ladders: ranges.DefaultPushFoldLadders(),
		BB:      bb,
		RNG:     rng,
	}
}

// Decide implements spec.md §4.8's top level: preflop or postflop planner,
// sanitise, optionally refine via MCTS, sanitise again.
func (e *Engine) Decide(c *DecisionContext) Decision {
	var d Decision
	if c.Street == state.PreFlop {
		d = e.planPreflop(c)
	} else {
		d = e.planPostflop(c)
	}
	d = Sanitize(c, d)

	if e.MCTS != nil && e.shouldRefine(c, d) {
		d = e.MCTS.Refine(c, d)
		d = Sanitize(c, d)
	}

	return d
}

// shouldRefine implements the MCTS trigger condition (spec.md §4.9).
func (e *Engine) shouldRefine(c *DecisionContext, d Decision) bool {
	if c.TimeMs < 300 {
		return false
	}
	bigPot := (c.Street == state.Turn || c.Street == state.River) && c.Pot > 20*e.BB
	bigRaise := d.Action == RaiseTo && c.MaxRaiseTo != nil && *c.MaxRaiseTo > 20*e.BB
	return bigPot || bigRaise
}
