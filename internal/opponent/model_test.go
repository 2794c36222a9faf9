package opponent

import (
	"testing"

	"github.com/lox/huholdembot/internal/ranges"
)

func TestStatsDerivedRates(t *testing.T) {
	t.Parallel()
	m := New(ranges.DefaultTable())

	for i := 0; i < 10; i++ {
		m.ObservePreflop(2, i < 4, i < 2) // 4/10 VPIP, 2/10 PFR
	}
	s := m.Get(2)

	if got, want := s.VPIP(), 0.4; got != want {
		t.Errorf("VPIP = %v, want %v", got, want)
	}
	if got, want := s.PFR(), 0.2; got != want {
		t.Errorf("PFR = %v, want %v", got, want)
	}
}

func TestStatsAggressionFallsBackToBetsWhenNoCalls(t *testing.T) {
	t.Parallel()
	m := New(ranges.DefaultTable())
	m.ObservePostflopAction(1, true)
	m.ObservePostflopAction(1, true)
	s := m.Get(1)
	if got, want := s.Aggression(), 2.0; got != want {
		t.Errorf("Aggression with 0 calls = %v, want %v (falls back to bets/max(1,calls))", got, want)
	}
}

func TestStatsClassification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		vpip    float64
		want    Archetype
	}{
		{"nit", 0.10, Nit},
		{"tag", 0.20, TAG},
		{"lag", 0.35, LAG},
		{"maniac", 0.60, Maniac},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := New(ranges.DefaultTable())
			const hands = 100
			voluntary := int(tc.vpip * hands)
			for i := 0; i < hands; i++ {
				m.ObservePreflop(3, i < voluntary, false)
			}
			if got := m.Get(3).Classification(); got != tc.want {
				t.Errorf("Classification at VPIP~%.2f = %v, want %v", tc.vpip, got, tc.want)
			}
		})
	}
}

func TestEstimatePreflopRangeTightensByArchetype(t *testing.T) {
	t.Parallel()
	m := New(ranges.DefaultTable())
	// Make seat 1 a NIT (very low VPIP).
	for i := 0; i < 100; i++ {
		m.ObservePreflop(1, i < 5, false)
	}
	nitRange := m.EstimatePreflopRange(1, RoleSB, ActionRaise)

	m2 := New(ranges.DefaultTable())
	for i := 0; i < 100; i++ {
		m2.ObservePreflop(2, i < 35, false)
	}
	lagRange := m2.EstimatePreflopRange(2, RoleSB, ActionRaise)

	if nitRange.Size() >= lagRange.Size() {
		t.Errorf("NIT range size %d should be tighter than LAG range size %d", nitRange.Size(), lagRange.Size())
	}
}

func TestEstimatePreflopRangeCached(t *testing.T) {
	t.Parallel()
	m := New(ranges.DefaultTable())
	first := m.EstimatePreflopRange(1, RoleBB, ActionCall)
	second := m.EstimatePreflopRange(1, RoleBB, ActionCall)
	if first != second {
		t.Error("EstimatePreflopRange should cache and return the same range for the same (seat, role, action)")
	}
}
