// Package analysis implements the hand-strength, draw, board-texture,
// odds, and equity primitives used by the decision engine (spec.md §4.3),
// plus the preflop heuristic strength formula (spec.md §4.5).
package analysis

import (
	"sort"

	"github.com/lox/huholdembot/poker"
)

// HandStrength is a comparable (category, kicker-vector) score. Category is
// 0 (High Card) through 8 (Straight Flush); ScoreVector holds up to five
// kicker ranks, most significant first, zero-padded.
type HandStrength struct {
	Category    int
	ScoreVector [5]int
}

// Normalized maps a HandStrength onto [0, 1] for use in the heuristic
// postflop planner: (category + sum(vector)/100) / 10 (spec.md §4.8.2).
func (h HandStrength) Normalized() float64 {
	sum := 0
	for _, v := range h.ScoreVector {
		sum += v
	}
	return (float64(h.Category) + float64(sum)/100.0) / 10.0
}

// Compare returns 1 if h beats other, -1 if other beats h, 0 if equal:
// lexicographic comparison on (Category, ScoreVector).
func (h HandStrength) Compare(other HandStrength) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range h.ScoreVector {
		if h.ScoreVector[i] != other.ScoreVector[i] {
			if h.ScoreVector[i] > other.ScoreVector[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluateHand concatenates hole and community cards and returns the
// strongest 5-card classification. With fewer than 5 known cards it returns
// a "Partial" strength: category 0, vector of the known card ranks sorted
// descending and zero-padded.
func EvaluateHand(hole, community []poker.Card) HandStrength {
	all := make([]poker.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	if len(all) < 5 {
		ranks := make([]int, 0, len(all))
		for _, c := range all {
			ranks = append(ranks, int(c.Rank()))
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
		var vec [5]int
		copy(vec[:], ranks)
		return HandStrength{Category: 0, ScoreVector: vec}
	}

	hand := poker.NewHand(all...)
	var rank poker.HandRank
	if len(all) == 7 {
		rank = poker.Evaluate7Cards(hand)
	} else {
		rank = evaluateN(hand, len(all))
	}
	return decodeHandRank(rank)
}

// evaluateN evaluates a hand of 5 or 6 cards by padding with the remaining
// deck cards is unnecessary: Evaluate7Cards requires exactly 7, so for 5/6
// known cards we instead enumerate every completion from the unused cards in
// the same suits space is overkill here — the decision context always
// supplies 2 hole + up to 5 board cards, so practically this path only
// serves unit tests exercising 5/6 card hands directly.
func evaluateN(hand poker.Hand, n int) poker.HandRank {
	cards := hand.Cards()
	best := poker.HandRank(0)
	rest := fullDeckMinus(hand)
	need := 7 - n
	combosOfN(rest, need, func(extra []poker.Card) {
		full := poker.NewHand(append(append([]poker.Card{}, cards...), extra...)...)
		if full.CountCards() != 7 {
			return
		}
		r := poker.Evaluate7Cards(full)
		if r > best {
			best = r
		}
	})
	return best
}

func fullDeckMinus(used poker.Hand) []poker.Card {
	out := make([]poker.Card, 0, 52)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			c := poker.NewCard(rank, suit)
			if !used.HasCard(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func combosOfN(pool []poker.Card, n int, f func([]poker.Card)) {
	if n == 0 {
		f(nil)
		return
	}
	var rec func(start int, chosen []poker.Card)
	rec = func(start int, chosen []poker.Card) {
		if len(chosen) == n {
			f(chosen)
			return
		}
		for i := start; i < len(pool); i++ {
			rec(i+1, append(chosen, pool[i]))
		}
	}
	rec(0, nil)
}

// decodeHandRank unpacks poker.HandRank's bit-packed fields into the
// (category, vector) shape: bits 28-31 give the category directly (the
// poker package's HandRank constants are already an iota<<28 scale of
// 0..8, High Card through Straight Flush), and the five descending 4-bit
// fields starting at bit 24 are the kicker vector verbatim — unused fields
// are already zero in the packed encoding, giving the zero-padding for free.
func decodeHandRank(rank poker.HandRank) HandStrength {
	category := int(rank >> 28)
	var vec [5]int
	shifts := [5]uint{24, 20, 16, 12, 8}
	for i, shift := range shifts {
		vec[i] = int((rank >> shift) & 0xF)
	}
	return HandStrength{Category: category, ScoreVector: vec}
}
