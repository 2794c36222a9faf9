package analysis

import (
	"math/rand/v2"

	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/poker"
)

// DefaultEquityTrials is the default Monte-Carlo trial count (spec.md §4.3).
const DefaultEquityTrials = 400

// EstimateEquityVsRange runs a Monte-Carlo simulation of hero's hole cards
// against a sampled opponent hand drawn from opp (or two random cards if opp
// is empty), completing the board to 5 cards each trial (spec.md §4.3).
// Returns 0 when trials is 0.
func EstimateEquityVsRange(hole, community []poker.Card, opp *ranges.Range, trials int, rng *rand.Rand) float64 {
	if trials <= 0 {
		return 0
	}

	known := poker.NewHand(append(append([]poker.Card{}, hole...), community...)...)
	combos := opp.RemoveCards(known).Combos()

	score := 0.0
	for i := 0; i < trials; i++ {
		deck := fullDeckMinus(known)

		var villain [2]poker.Card
		if len(combos) > 0 {
			chosen := combos[rng.IntN(len(combos))]
			cards := chosen.Cards()
			villain[0], villain[1] = cards[0], cards[1]
			deck = removeCards(deck, villain[0], villain[1])
		} else {
			shuffle(deck, rng)
			villain[0], villain[1] = deck[0], deck[1]
			deck = deck[2:]
		}

		shuffle(deck, rng)
		needed := 5 - len(community)
		board := append(append([]poker.Card{}, community...), deck[:needed]...)

		heroHand := poker.NewHand(append(append([]poker.Card{}, hole...), board...)...)
		villainHand := poker.NewHand(append([]poker.Card{villain[0], villain[1]}, board...)...)

		heroRank := poker.Evaluate7Cards(heroHand)
		villainRank := poker.Evaluate7Cards(villainHand)

		switch poker.CompareHands(heroRank, villainRank) {
		case 1:
			score += 1
		case 0:
			score += 0.5
		}
	}

	return score / float64(trials)
}

func removeCards(deck []poker.Card, dead ...poker.Card) []poker.Card {
	out := deck[:0:0]
	for _, c := range deck {
		skip := false
		for _, d := range dead {
			if c == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

func shuffle(cards []poker.Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
