// Package opponent implements the per-seat rolling counters, derived rates,
// archetype classification, and range estimation described in spec.md §4.4.
package opponent

import (
	"github.com/lox/huholdembot/internal/analysis"
	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/poker"
)

// Archetype is the categorical classification derived from VPIP (spec.md §3).
type Archetype string

const (
	Nit     Archetype = "NIT"
	TAG     Archetype = "TAG"
	LAG     Archetype = "LAG"
	Maniac  Archetype = "Maniac"
)

// Role is the heads-up seat role used to select a base range.
type Role string

const (
	RoleSB Role = "SB"
	RoleBB Role = "BB"
)

// PreflopAction distinguishes a raising action from a calling/checking one
// when selecting the base named range (spec.md §4.4).
type PreflopAction string

const (
	ActionRaise   PreflopAction = "RAISE"
	ActionThreeBet PreflopAction = "3BET"
	ActionCall    PreflopAction = "CALL"
	ActionCheck   PreflopAction = "CHECK"
)

func (a PreflopAction) isRaising() bool {
	return a == ActionRaise || a == ActionThreeBet
}

// Stats holds the per-seat counters named in spec.md §3, plus the derived
// rates and the cached estimated range.
type Stats struct {
	HandsSeen         int
	VoluntarilyPlayed int
	PreflopRaises     int
	BetsOrRaises      int
	Calls             int
	Showdowns         int
	ShowdownsWon      int
	FoldToCbet        int
	CbetOpportunities int

	rangeCache map[string]*ranges.Range
}

// VPIP = voluntarily_played / hands_seen.
func (s *Stats) VPIP() float64 {
	if s.HandsSeen == 0 {
		return 0
	}
	return float64(s.VoluntarilyPlayed) / float64(s.HandsSeen)
}

// PFR = preflop_raises / hands_seen.
func (s *Stats) PFR() float64 {
	if s.HandsSeen == 0 {
		return 0
	}
	return float64(s.PreflopRaises) / float64(s.HandsSeen)
}

// Aggression = bets_or_raises / max(1, calls).
func (s *Stats) Aggression() float64 {
	denom := s.Calls
	if denom < 1 {
		denom = 1
	}
	return float64(s.BetsOrRaises) / float64(denom)
}

// Classification buckets VPIP: NIT <0.15, TAG <0.27, LAG <0.40, else Maniac.
func (s *Stats) Classification() Archetype {
	vpip := s.VPIP()
	switch {
	case vpip < 0.15:
		return Nit
	case vpip < 0.27:
		return TAG
	case vpip < 0.40:
		return LAG
	default:
		return Maniac
	}
}

// EquityWeight is the shrink factor applied to opponent-range equity,
// keyed by archetype (spec.md §4.4).
func (s *Stats) EquityWeight() float64 {
	switch s.Classification() {
	case Nit:
		return 0.85
	case TAG:
		return 0.70
	case LAG:
		return 0.50
	default:
		return 0.30
	}
}

// Description is the snapshot returned by describe(seat) (spec.md §4.4).
type Description struct {
	VPIP           float64
	PFR            float64
	Aggression     float64
	Classification Archetype
}

// Describe returns the current VPIP, PFR, aggression, and classification.
func (s *Stats) Describe() Description {
	return Description{
		VPIP:           s.VPIP(),
		PFR:            s.PFR(),
		Aggression:     s.Aggression(),
		Classification: s.Classification(),
	}
}

// Model tracks Stats per seat and derives preflop ranges from them.
type Model struct {
	stats map[int]*Stats
	table *ranges.Table
}

// New returns an empty opponent model backed by the given named-range table.
func New(table *ranges.Table) *Model {
	return &Model{stats: make(map[int]*Stats), table: table}
}

// Get returns (creating if necessary) the Stats for a seat.
func (m *Model) Get(seat int) *Stats {
	s, ok := m.stats[seat]
	if !ok {
		s = &Stats{rangeCache: make(map[string]*ranges.Range)}
		m.stats[seat] = s
	}
	return s
}

// ObservePreflop increments hands_seen and the voluntary/raise counters.
func (m *Model) ObservePreflop(seat int, voluntarilyInPot, raised bool) {
	s := m.Get(seat)
	s.HandsSeen++
	if voluntarilyInPot {
		s.VoluntarilyPlayed++
	}
	if raised {
		s.PreflopRaises++
	}
}

// ObservePostflopAction bumps bets_or_raises or calls.
func (m *Model) ObservePostflopAction(seat int, aggressive bool) {
	s := m.Get(seat)
	if aggressive {
		s.BetsOrRaises++
	} else {
		s.Calls++
	}
}

// ObserveShowdown bumps showdowns and, if won, showdowns_won.
func (m *Model) ObserveShowdown(seat int, won bool) {
	s := m.Get(seat)
	s.Showdowns++
	if won {
		s.ShowdownsWon++
	}
}

// ObserveCbetOpportunity bumps cbet_opportunities and, if folded, fold_to_cbet.
func (m *Model) ObserveCbetOpportunity(seat int, folded bool) {
	s := m.Get(seat)
	s.CbetOpportunities++
	if folded {
		s.FoldToCbet++
	}
}

// EstimatePreflopRange picks a base named range keyed by (role, action),
// then tightens or loosens it by archetype (spec.md §4.4).
func (m *Model) EstimatePreflopRange(seat int, role Role, action PreflopAction) *ranges.Range {
	var base ranges.Name
	switch role {
	case RoleSB:
		if action.isRaising() {
			base = ranges.HUSBThreeBet
		} else {
			base = ranges.HUSBOpen
		}
	case RoleBB:
		if action.isRaising() {
			base = ranges.HUBBThreeBet
		} else {
			base = ranges.HUBBDefendCall
		}
	}

	key := string(role) + ":" + string(action)
	s := m.Get(seat)
	if cached, ok := s.rangeCache[key]; ok {
		return cached
	}

	r := m.table.Get(base)
	archetype := s.Classification()

	var tightened *ranges.Range
	switch archetype {
	case Nit:
		tightened = r.TopFraction(0.25, analysis.PreflopStrength)
	case TAG:
		tightened = r.TopFraction(0.40, analysis.PreflopStrength)
	case LAG:
		tightened = r.TopFraction(0.80, analysis.PreflopStrength)
	default: // Maniac
		fraction := s.VPIP() * 1.2
		if fraction < 0.3 {
			fraction = 0.3
		}
		if fraction > 1.0 {
			fraction = 1.0
		}
		tightened = r.TopFraction(fraction, analysis.PreflopStrength)
	}

	s.rangeCache[key] = tightened
	return tightened
}

// PruneAgainst removes combos touching any of the given cards (used by the
// context builder to keep an opponent range consistent with known cards).
func PruneAgainst(r *ranges.Range, dead []poker.Card) *ranges.Range {
	return r.RemoveCards(poker.NewHand(dead...))
}
