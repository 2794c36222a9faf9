package analysis

import "testing"

func TestClassifyBoard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		community        []string
		label            string
		paired           bool
		monotone         bool
		straightPossible bool
	}{
		{
			name:      "empty board",
			community: nil,
			label:     "Empty",
		},
		{
			name:      "dry rainbow unpaired",
			community: []string{"Ks", "7d", "2c"},
			label:     "Dry",
		},
		{
			name:      "paired board is wet",
			community: []string{"Ks", "Kd", "2c"},
			label:     "Wet",
			paired:    true,
		},
		{
			name:      "monotone board is wet",
			community: []string{"Ks", "7s", "2s"},
			label:     "Wet",
			monotone:  true,
		},
		{
			name:             "straight-possible board is wet",
			community:        []string{"9h", "Td", "Jc", "Qs", "2d"},
			label:            "Wet",
			straightPossible: true,
		},
		{
			name:             "wheel straight-possible board is wet",
			community:        []string{"Ah", "2d", "3c", "4s", "9d"},
			label:            "Wet",
			straightPossible: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			community := cards(t, tc.community...)
			got := ClassifyBoard(community)
			if got.Label != tc.label {
				t.Errorf("Label = %q, want %q", got.Label, tc.label)
			}
			if got.Paired != tc.paired {
				t.Errorf("Paired = %v, want %v", got.Paired, tc.paired)
			}
			if got.Monotone != tc.monotone {
				t.Errorf("Monotone = %v, want %v", got.Monotone, tc.monotone)
			}
			if got.StraightPossible != tc.straightPossible {
				t.Errorf("StraightPossible = %v, want %v", got.StraightPossible, tc.straightPossible)
			}
			if tc.label == "Empty" && got.HighCard {
				t.Errorf("HighCard should be false (NA) for an empty board")
			}
		})
	}
}
