package analysis

import "github.com/lox/huholdembot/poker"

// DrawFeatures describes a hand's draw potential (spec.md §3).
type DrawFeatures struct {
	FlushDraw       bool
	BackdoorFlush   bool
	StraightDraw    bool
	BackdoorStraight bool
	ComboDraw       bool
	Outs            int
}

// DetectDraws counts suits and distinct ranks over hole ∪ community.
// "Backdoor" only applies when no full draw exists for the same category
// (spec.md §4.3).
func DetectDraws(hole, community []poker.Card) DrawFeatures {
	hand := poker.NewHand(append(append([]poker.Card{}, hole...), community...)...)

	var f DrawFeatures
	maxSuit := 0
	for suit := uint8(0); suit < 4; suit++ {
		count := popcount16(hand.GetSuitMask(suit))
		if count > maxSuit {
			maxSuit = count
		}
	}
	switch {
	case maxSuit >= 4:
		f.FlushDraw = true
	case maxSuit == 3:
		f.BackdoorFlush = true
	}

	f.StraightDraw, f.BackdoorStraight = detectStraightDraws(hand.GetRankMask())

	f.ComboDraw = f.FlushDraw && f.StraightDraw

	outs := 0
	switch {
	case f.FlushDraw:
		outs += 9
	case f.BackdoorFlush:
		outs += 4
	}
	switch {
	case f.StraightDraw:
		outs += 8
	case f.BackdoorStraight:
		outs += 4
	}
	f.Outs = outs

	return f
}

// windows enumerates every 5-rank span a straight can occupy, including the
// wheel (A-2-3-4-5), as bit masks over ranks 0-12 (ace duplicated at rank 12).
func straightWindows() [10]uint16 {
	var w [10]uint16
	w[0] = 1<<12 | 1<<0 | 1<<1 | 1<<2 | 1<<3 // wheel: A,2,3,4,5
	for low := 0; low <= 8; low++ {
		var m uint16
		for r := low; r < low+5; r++ {
			m |= 1 << uint(r)
		}
		w[low+1] = m
	}
	return w
}

// detectStraightDraws reports a literal run of 4 consecutive present ranks
// (an open-ended straight draw) or, only absent that, a run of 3 consecutive
// present ranks (a backdoor straight draw). Unlike classifyBoard's
// straight-possible check, gutshots (4-of-5 with a gap) don't count, and the
// ace only plays high here, matching the distilled Python's sorted-distinct
// consecutive-run scan.
func detectStraightDraws(mask uint16) (straightDraw, backdoorStraight bool) {
	ranks := mask & 0x1FFF // ranks 0-12 only; ignore the ace-high duplicate bit 13

	if hasConsecutiveRun(ranks, 4) {
		return true, false
	}
	return false, hasConsecutiveRun(ranks, 3)
}

// hasConsecutiveRun reports whether mask has n consecutive set bits with no
// gaps, starting anywhere in ranks 0-12.
func hasConsecutiveRun(mask uint16, n int) bool {
	var run uint16
	for i := 0; i < n; i++ {
		run |= 1 << uint(i)
	}
	for shift := 0; shift+n <= 13; shift++ {
		window := run << uint(shift)
		if mask&window == window {
			return true
		}
	}
	return false
}

func popcount16(v uint16) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
