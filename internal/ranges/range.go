// Package ranges expands textual poker range notation ("22+", "A2s+",
// "KTo+") into concrete two-card combinations and holds the named range
// tables used by the preflop planner.
package ranges

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/huholdembot/poker"
)

// Range is a set of concrete two-card combos, each stored as the union
// bitset of its two cards.
type Range struct {
	combos map[poker.Hand]struct{}
}

// New returns an empty range.
func New() *Range {
	return &Range{combos: make(map[poker.Hand]struct{})}
}

// Parse builds a range from comma-separated notation, e.g. "22+,A2s+,KTo+".
func Parse(notation string) (*Range, error) {
	r := New()
	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addToken(part); err != nil {
			return nil, fmt.Errorf("range token %q: %w", part, err)
		}
	}
	return r, nil
}

// MustParse parses notation, panicking on error. For use with literal tables.
func MustParse(notation string) *Range {
	r, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Range) addToken(token string) error {
	if strings.HasSuffix(token, "+") {
		return r.addPlusToken(strings.TrimSuffix(token, "+"))
	}
	return r.addExactToken(token)
}

// addExactToken handles "RR" (pair) or "HLs"/"HLo" (suited/offsuit) tokens.
func (r *Range) addExactToken(token string) error {
	if len(token) < 2 || len(token) > 3 {
		return fmt.Errorf("invalid token %q", token)
	}
	r1, err := parseRank(token[0])
	if err != nil {
		return err
	}
	r2, err := parseRank(token[1])
	if err != nil {
		return err
	}

	if r1 == r2 {
		if len(token) == 3 {
			return fmt.Errorf("pocket pair %q cannot carry a suited/offsuit modifier", token)
		}
		r.addPair(r1)
		return nil
	}

	if len(token) == 2 {
		r.addSuited(r1, r2)
		r.addOffsuit(r1, r2)
		return nil
	}

	switch token[2] {
	case 's':
		r.addSuited(r1, r2)
	case 'o':
		r.addOffsuit(r1, r2)
	default:
		return fmt.Errorf("invalid modifier %q in %q", token[2:], token)
	}
	return nil
}

// addPlusToken handles "RR+" (all pairs >= R) or "HLs+"/"HLo+" (high card
// fixed, low card ranging from L up to, but not including, H).
func (r *Range) addPlusToken(base string) error {
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("invalid token %q+", base)
	}
	high, err := parseRank(base[0])
	if err != nil {
		return err
	}
	low, err := parseRank(base[1])
	if err != nil {
		return err
	}

	if high == low {
		for rank := high; rank <= 14; rank++ {
			r.addPair(rank)
		}
		return nil
	}

	suited, offsuit := true, true
	if len(base) == 3 {
		switch base[2] {
		case 's':
			offsuit = false
		case 'o':
			suited = false
		default:
			return fmt.Errorf("invalid modifier %q in %q+", base[2:], base)
		}
	}

	for rank := low; rank < high; rank++ {
		if suited {
			r.addSuited(high, rank)
		}
		if offsuit {
			r.addOffsuit(high, rank)
		}
	}
	return nil
}

func (r *Range) addPair(rank int) {
	pRank := uint8(rank - 2)
	for s1 := uint8(0); s1 < 4; s1++ {
		for s2 := s1 + 1; s2 < 4; s2++ {
			r.addCombo(poker.NewCard(pRank, s1), poker.NewCard(pRank, s2))
		}
	}
}

func (r *Range) addSuited(rank1, rank2 int) {
	p1, p2 := uint8(rank1-2), uint8(rank2-2)
	for s := uint8(0); s < 4; s++ {
		r.addCombo(poker.NewCard(p1, s), poker.NewCard(p2, s))
	}
}

func (r *Range) addOffsuit(rank1, rank2 int) {
	p1, p2 := uint8(rank1-2), uint8(rank2-2)
	for s1 := uint8(0); s1 < 4; s1++ {
		for s2 := uint8(0); s2 < 4; s2++ {
			if s1 != s2 {
				r.addCombo(poker.NewCard(p1, s1), poker.NewCard(p2, s2))
			}
		}
	}
}

func (r *Range) addCombo(c1, c2 poker.Card) {
	r.combos[poker.Hand(c1)|poker.Hand(c2)] = struct{}{}
}

// Contains reports whether the canonical two-card combo is in the range.
func (r *Range) Contains(c1, c2 poker.Card) bool {
	_, ok := r.combos[poker.Hand(c1)|poker.Hand(c2)]
	return ok
}

// Size returns the number of combos in the range.
func (r *Range) Size() int {
	return len(r.combos)
}

// Combos returns all combos as sorted Hand bitsets, for deterministic iteration.
func (r *Range) Combos() []poker.Hand {
	combos := make([]poker.Hand, 0, len(r.combos))
	for h := range r.combos {
		combos = append(combos, h)
	}
	slices.Sort(combos)
	return combos
}

// TopFraction sorts the range's combos by score (descending) and returns a
// new range holding the top ceil(n*fraction) combos (at least 1). The score
// function is injected so this package does not need to depend on the
// preflop-strength formula that lives in internal/analysis.
func (r *Range) TopFraction(fraction float64, score func(c1, c2 poker.Card) float64) *Range {
	type scored struct {
		c1, c2 poker.Card
		value  float64
	}
	all := make([]scored, 0, len(r.combos))
	for h := range r.combos {
		cards := h.Cards()
		if len(cards) != 2 {
			continue
		}
		all = append(all, scored{cards[0], cards[1], score(cards[0], cards[1])})
	}
	slices.SortFunc(all, func(a, b scored) int {
		switch {
		case a.value > b.value:
			return -1
		case a.value < b.value:
			return 1
		default:
			return 0
		}
	})

	n := int(float64(len(all))*fraction + 0.999999)
	if n < 1 {
		n = 1
	}
	if n > len(all) {
		n = len(all)
	}

	out := New()
	for _, s := range all[:n] {
		out.addCombo(s.c1, s.c2)
	}
	return out
}

// Union returns a new range containing every combo present in r or other.
func (r *Range) Union(other *Range) *Range {
	out := New()
	for h := range r.combos {
		out.combos[h] = struct{}{}
	}
	for h := range other.combos {
		out.combos[h] = struct{}{}
	}
	return out
}

// RemoveCards returns a new range with every combo touching any of the given
// cards removed (used to prune an opponent range against known cards).
func (r *Range) RemoveCards(dead poker.Hand) *Range {
	out := New()
	for h := range r.combos {
		if h&dead == 0 {
			out.combos[h] = struct{}{}
		}
	}
	return out
}

func parseRank(c byte) (int, error) {
	switch c {
	case '2':
		return 2, nil
	case '3':
		return 3, nil
	case '4':
		return 4, nil
	case '5':
		return 5, nil
	case '6':
		return 6, nil
	case '7':
		return 7, nil
	case '8':
		return 8, nil
	case '9':
		return 9, nil
	case 'T':
		return 10, nil
	case 'J':
		return 11, nil
	case 'Q':
		return 12, nil
	case 'K':
		return 13, nil
	case 'A':
		return 14, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", c)
	}
}
