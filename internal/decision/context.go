package decision

import (
	"math/rand/v2"

	"github.com/lox/huholdembot/internal/analysis"
	"github.com/lox/huholdembot/internal/opponent"
	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/internal/state"
	"github.com/lox/huholdembot/poker"
)

// Action is a wire action the engine may propose.
type Action string

const (
	Fold    Action = "FOLD"
	Check   Action = "CHECK"
	Call    Action = "CALL"
	Bet     Action = "BET"
	RaiseTo Action = "RAISE_TO"
)

// Decision is a proposed or final (action, amount) pair.
type Decision struct {
	Action Action
	Amount int
}

// ActPlayer is one entry in an "act" message's player list (spec.md §6).
type ActPlayer struct {
	Seat      int
	Stack     int
	Committed int
	Folded    bool
	AllIn     bool
	Team      string
}

// ActRequest is the decoded "act" message the context builder consumes
// (spec.md §6).
type ActRequest struct {
	HandID            string
	Seat              int
	Street            state.Street
	Community         []poker.Card
	Pot               int
	CallAmount         int
	MinRaiseTo        *int
	MaxRaiseTo        *int
	MinRaiseIncrement int
	Legal             []Action
	Hole              []poker.Card
	HeroStack         int
	HeroCommitted     int
	TimeMs            int
	Players           []ActPlayer
}

// DecisionContext is the self-contained snapshot the engine plans against
// (spec.md §4.7).
type DecisionContext struct {
	HandID string
	Seat   int
	Street state.Street

	Hole      []poker.Card
	Community []poker.Card

	Pot               int
	CallAmount        int
	MinRaiseTo        *int
	MaxRaiseTo        *int
	MinRaiseIncrement int
	Legal             []Action
	TimeMs            int

	HeroStack     int
	HeroCommitted int

	EffectiveStack int
	EffectiveBB    float64

	Texture  analysis.BoardTexture
	Draws    analysis.DrawFeatures
	Strength analysis.HandStrength

	Role     state.Role
	Position state.Position

	VillainSeat      int
	VillainProfile   opponent.Description
	VillainStack     int
	VillainCommitted int

	OpponentRange *ranges.Range
	EquityVsRange float64

	PotOdds     float64
	ImpliedOdds float64

	OpponentProfiles map[int]opponent.Description
}

// IsLegal reports whether an action is in the context's legal set.
func (c *DecisionContext) IsLegal(a Action) bool {
	for _, l := range c.Legal {
		if l == a {
			return true
		}
	}
	return false
}

// Builder synthesises a DecisionContext from the tracker, opponent model,
// and named-range table (spec.md §4.7).
type Builder struct {
	Tracker *state.Tracker
	Model   *opponent.Model
	Ranges  *ranges.Table
	RNG     *rand.Rand
	Trials  int
}

// NewBuilder returns a Builder with the default equity trial count.
func NewBuilder(tracker *state.Tracker, model *opponent.Model, table *ranges.Table, rng *rand.Rand) *Builder {
	return &Builder{Tracker: tracker, Model: model, Ranges: table, RNG: rng, Trials: analysis.DefaultEquityTrials}
}

// Build synthesises a DecisionContext for the given "act" request.
func (b *Builder) Build(req ActRequest) *DecisionContext {
	b.syncPlayers(req.Players)

	heroStack := req.HeroStack
	heroCommitted := req.HeroCommitted

	villainSeat, villainTotal, villainStack, villainCommitted := b.cheapestOpponent(req.Seat)
	effectiveStack := min(heroStack+heroCommitted, villainTotal)
	effectiveBB := 0.0
	if b.Tracker.Config.BB > 0 {
		effectiveBB = float64(effectiveStack) / float64(b.Tracker.Config.BB)
	}

	strength := analysis.EvaluateHand(req.Hole, req.Community)
	draws := analysis.DetectDraws(req.Hole, req.Community)
	texture := analysis.ClassifyBoard(req.Community)

	role := b.Tracker.RoleOf(req.Seat)
	position := b.Tracker.PositionOf(req.Seat, req.Street)

	villainRole := b.Tracker.RoleOf(villainSeat)
	villainAction := opponent.ActionCall
	if b.Tracker.Player(villainSeat) != nil && isRaisingAction(b.Tracker.Player(villainSeat).LastAction) {
		villainAction = opponent.ActionRaise
	}

	oppRange := b.Model.EstimatePreflopRange(villainSeat, opponent.Role(villainRole), villainAction)
	known := poker.NewHand(append(append([]poker.Card{}, req.Hole...), req.Community...)...)
	oppRange = opponent.PruneAgainst(oppRange, known.Cards())

	equity := analysis.EstimateEquityVsRange(req.Hole, req.Community, oppRange, b.Trials, b.RNG)

	potOdds := analysis.PotOdds(float64(req.CallAmount), float64(req.Pot))
	impliedOdds := analysis.ImpliedOdds(float64(req.CallAmount), float64(req.Pot), float64(effectiveStack))

	profiles := make(map[int]opponent.Description)
	for seat := range b.Tracker.Players() {
		profiles[seat] = b.Model.Get(seat).Describe()
	}

	return &DecisionContext{
		HandID:            req.HandID,
		Seat:              req.Seat,
		Street:            req.Street,
		Hole:              req.Hole,
		Community:         req.Community,
		Pot:               req.Pot,
		CallAmount:        req.CallAmount,
		MinRaiseTo:        req.MinRaiseTo,
		MaxRaiseTo:        req.MaxRaiseTo,
		MinRaiseIncrement: req.MinRaiseIncrement,
		Legal:             req.Legal,
		TimeMs:            req.TimeMs,
		HeroStack:         heroStack,
		HeroCommitted:     heroCommitted,
		EffectiveStack:    effectiveStack,
		EffectiveBB:       effectiveBB,
		Texture:           texture,
		Draws:             draws,
		Strength:          strength,
		Role:              role,
		Position:          position,
		VillainSeat:       villainSeat,
		VillainProfile:    profiles[villainSeat],
		VillainStack:      villainStack,
		VillainCommitted:  villainCommitted,
		OpponentRange:     oppRange,
		EquityVsRange:     equity,
		PotOdds:           potOdds,
		ImpliedOdds:       impliedOdds,
		OpponentProfiles:  profiles,
	}
}

func (b *Builder) syncPlayers(players []ActPlayer) {
	sync := make([]state.PlayerSync, len(players))
	for i, p := range players {
		sync[i] = state.PlayerSync{Seat: p.Seat, Stack: p.Stack, Committed: p.Committed, Folded: p.Folded, AllIn: p.AllIn}
	}
	b.Tracker.SyncFromAct(sync)
}

// cheapestOpponent returns the non-hero seat with the smallest stack+committed,
// along with its stack and committed amounts separately.
func (b *Builder) cheapestOpponent(hero int) (seat, stackPlusCommitted, stack, committed int) {
	best := -1
	bestTotal, bestStack, bestCommitted := 0, 0, 0
	for s, p := range b.Tracker.Players() {
		if s == hero {
			continue
		}
		total := p.Stack + p.Committed
		if best == -1 || total < bestTotal {
			best = s
			bestTotal = total
			bestStack = p.Stack
			bestCommitted = p.Committed
		}
	}
	return best, bestTotal, bestStack, bestCommitted
}

func isRaisingAction(action string) bool {
	return action == "BET" || action == "RAISE"
}
