package analysis

import "github.com/lox/huholdembot/poker"

// PreflopStrength implements the heuristic preflop hand-strength formula
// (spec.md §4.5). Symmetric in the two cards; monotone in the high rank
// when the low rank is fixed.
func PreflopStrength(c1, c2 poker.Card) float64 {
	r1, r2 := rankValue(c1.Rank()), rankValue(c2.Rank())
	high, low := r1, r2
	if low > high {
		high, low = low, high
	}
	pair := 0.0
	if c1.Rank() == c2.Rank() {
		pair = 1
	}
	suited := 0.0
	if c1.Suit() == c2.Suit() {
		suited = 1
	}
	gap := float64(high-low) - 1

	strength := 0.6*high/14 + 0.3*low/14 + 0.2*pair + 0.05*suited - 0.02*gap
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	return strength
}

// rankValue maps the poker package's 0-12 rank index to the 2-14 scale the
// formula is expressed in (Ace = 14).
func rankValue(rank uint8) float64 {
	if rank == poker.Ace {
		return 14
	}
	return float64(rank) + 2
}
