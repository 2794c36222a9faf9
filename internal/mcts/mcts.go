// Package mcts implements the UCB1, rollout-free action refinement
// described in spec.md §4.9: a small candidate action set is searched,
// closed-form rewards are estimated in place of rollouts, and the
// highest-mean-value candidate is returned as the refined decision.
package mcts

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/huholdembot/internal/decision"
)

const (
	maxIterations   = 800
	minBudget       = 150 * time.Millisecond
	explorationConst = 1.2
)

// node is one candidate action under search; depth-1, no tree expansion.
type node struct {
	action   decision.Action
	amount   int
	visits   int
	valueSum float64
}

func (n *node) mean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

func (n *node) ucb1(totalVisits int) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.mean() + explorationConst*math.Sqrt(math.Log(float64(totalVisits+1))/float64(n.visits))
}

// Searcher refines a seed decision with a time-budgeted UCB1 search
// (spec.md §4.9). It implements decision.Refiner.
type Searcher struct {
	RNG   *rand.Rand
	Clock quartz.Clock
	BB    int
}

// New returns a Searcher backed by a real clock.
func New(rng *rand.Rand, bb int) *Searcher {
	return &Searcher{RNG: rng, Clock: quartz.NewReal(), BB: bb}
}

// Refine implements decision.Refiner.
func (s *Searcher) Refine(c *decision.DecisionContext, seed decision.Decision) decision.Decision {
	candidates := s.candidates(c, seed)
	if len(candidates) <= 1 {
		return seed
	}

	budget := time.Duration(c.TimeMs-200) * time.Millisecond
	if budget < minBudget {
		budget = minBudget
	}
	deadline := s.Clock.Now().Add(budget)

	totalVisits := 0
	for i := 0; i < maxIterations && s.Clock.Now().Before(deadline); i++ {
		n := s.selectCandidate(candidates, totalVisits)
		reward := s.reward(c, n.action, n.amount)
		n.visits++
		n.valueSum += reward
		totalVisits++
	}

	best := candidates[0]
	for _, n := range candidates[1:] {
		if n.mean() > best.mean() {
			best = n
		}
	}
	return decision.Decision{Action: best.action, Amount: best.amount}
}

// candidates builds the UCB1 search's action set (spec.md §4.9): the seed,
// FOLD/CALL/CHECK when legal, and a small set of RAISE_TO targets, deduplicated.
func (s *Searcher) candidates(c *decision.DecisionContext, seed decision.Decision) []*node {
	var out []*node
	seen := make(map[string]bool)
	add := func(action decision.Action, amount int) {
		key := string(action)
		if action == decision.RaiseTo {
			key += ":" + itoa(amount)
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, &node{action: action, amount: amount})
	}

	add(seed.Action, seed.Amount)

	for _, a := range []decision.Action{decision.Fold, decision.Call, decision.Check} {
		if c.IsLegal(a) {
			add(a, 0)
		}
	}

	if c.IsLegal(decision.RaiseTo) {
		if c.MinRaiseTo != nil {
			add(decision.RaiseTo, *c.MinRaiseTo)
		}
		if c.MaxRaiseTo != nil {
			mid := c.Pot + c.CallAmount + s.BB
			if mid > *c.MaxRaiseTo {
				mid = *c.MaxRaiseTo
			}
			add(decision.RaiseTo, mid)
			add(decision.RaiseTo, *c.MaxRaiseTo)
		}
	}

	return out
}

// selectCandidate picks the highest-UCB1 candidate, with unvisited nodes
// taking priority (their score is +Inf).
func (s *Searcher) selectCandidate(candidates []*node, totalVisits int) *node {
	best := candidates[0]
	bestScore := best.ucb1(totalVisits)
	for _, n := range candidates[1:] {
		score := n.ucb1(totalVisits)
		if score > bestScore {
			best, bestScore = n, score
		}
	}
	return best
}

// reward estimates a closed-form EV for the chosen action (spec.md §4.9),
// in place of a rollout.
func (s *Searcher) reward(c *decision.DecisionContext, action decision.Action, amount int) float64 {
	equity := c.EquityVsRange
	pot := float64(c.Pot)
	call := float64(c.CallAmount)

	switch action {
	case decision.Fold:
		return -call
	case decision.Check:
		if c.CallAmount == 0 {
			return equity * pot
		}
		return equity * pot * 0.8
	case decision.Call:
		if c.CallAmount == 0 {
			return equity * pot
		}
		return equity*(pot+call) - (1-equity)*call
	case decision.Bet, decision.RaiseTo:
		return s.raiseReward(c, amount, equity, pot)
	default:
		return 0
	}
}

// raiseReward implements the RAISE_TO reward formula (spec.md §4.9): a
// fold-equity-weighted blend of "villain folds, hero wins the pot" and
// "villain calls, showdown equity decides."
func (s *Searcher) raiseReward(c *decision.DecisionContext, target int, equity, pot float64) float64 {
	heroInvest := float64(target - c.HeroCommitted)
	if heroInvest < 0 {
		heroInvest = 0
	}
	villainCommit := float64(target - c.VillainCommitted)
	if villainCommit < 0 {
		villainCommit = 0
	}
	if maxCommit := float64(c.VillainStack + c.VillainCommitted); villainCommit > maxCommit {
		villainCommit = maxCommit
	}

	vpip := c.VillainProfile.VPIP
	agg := c.VillainProfile.Aggression
	dryBonus := -0.05
	if c.Texture.Label == "Dry" {
		dryBonus = 0.1
	}
	foldProb := (0.6 - vpip) + 0.4/(agg+0.5) + dryBonus
	if foldProb < 0.05 {
		foldProb = 0.05
	}
	if foldProb > 0.9 {
		foldProb = 0.9
	}

	showdown := equity*(pot+heroInvest+villainCommit) - (1-equity)*heroInvest
	return foldProb*pot + (1-foldProb)*showdown
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
