package analysis

import "github.com/lox/huholdembot/poker"

// BoardTexture describes how coordinated a community board is (spec.md §3).
type BoardTexture struct {
	Label            string // "Empty", "Dry", or "Wet"
	Paired           bool
	Monotone         bool
	StraightPossible bool
	HighCard         bool // undefined ("NA") for an empty board; callers should check Label first
}

// ClassifyBoard classifies the community cards. Label is "Wet" iff
// straight_possible ∨ monotone ∨ paired, else "Dry"; an empty board reports
// Label "Empty" with HighCard left false ("NA" per spec.md §4.3).
func ClassifyBoard(community []poker.Card) BoardTexture {
	if len(community) == 0 {
		return BoardTexture{Label: "Empty"}
	}

	hand := poker.NewHand(community...)

	paired := false
	var rankCounts [13]int
	for _, c := range community {
		rankCounts[c.Rank()]++
	}
	for _, count := range rankCounts {
		if count >= 2 {
			paired = true
			break
		}
	}

	monotone := false
	for suit := uint8(0); suit < 4; suit++ {
		if popcount16(hand.GetSuitMask(suit)) >= len(community) && len(community) >= 2 {
			monotone = true
			break
		}
	}

	straightPossible := isStraightPossible(hand.GetRankMask())

	highCard := false
	for _, c := range community {
		if c.Rank() >= poker.Ten {
			highCard = true
			break
		}
	}

	label := "Dry"
	if straightPossible || monotone || paired {
		label = "Wet"
	}

	return BoardTexture{
		Label:            label,
		Paired:           paired,
		Monotone:         monotone,
		StraightPossible: straightPossible,
		HighCard:         highCard,
	}
}

// isStraightPossible reports whether 5 connected ranks are present,
// including the wheel (A-2-3-4-5).
func isStraightPossible(mask uint16) bool {
	ranks := mask & 0x1FFF
	for _, w := range straightWindows() {
		if ranks&w == w {
			return true
		}
	}
	return false
}
