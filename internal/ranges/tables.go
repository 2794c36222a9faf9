package ranges

// Named range identifiers used by the preflop planner (spec.md §4.8.1),
// keyed into a static table rather than left as raw strings on the wire
// (spec.md Design Notes: "string-keyed ranges become an enum of named
// ranges indexing into a static table").
type Name string

const (
	HUBtn100BB        Name = "HU_BTN_100BB"
	HUSB20BB          Name = "HU_SB_20BB"
	HUBBDefend        Name = "HU_BB_DEFEND"
	HUSBOpen          Name = "HU_SB_OPEN"
	HUBBDefendCall    Name = "HU_BB_DEFEND_CALL"
	HUBBThreeBet      Name = "HU_BB_3BET"
	HUSBThreeBet      Name = "HU_SB_3BET"
	HUBtnVsBBThreeBet Name = "HU_BTN_VS_BB"
	HUBBVsBtnThreeBet Name = "HU_BB_VS_BTN"
)

// literal range token strings, ported from original_source/bots/strategic_bot/ranges.py's
// OPENING_RANGES and THREE_BET_RANGES dicts. Every non-pair token carries an
// explicit s/o suit flag (ranges.py's bare two-character "+" tokens, e.g.
// "AQ+", expand to nothing in its own _expand_token: stripping the trailing
// "+" leaves a 2-character string that matches neither its pair branch nor
// its 3-character suited/offsuit branch. The evident intent - AQ and better,
// both suited and offsuit - is ported here as the equivalent "AQs+,AQo+"
// pair of 3-character tokens.
var namedRangeTokens = map[Name]string{
	HUBtn100BB: "22+,A2s+,K4s+,Q6s+,J7s+,T7s+,97s+,87s,76s,65s," +
		"A2o+,K8o+,Q9o+,J9o+,T9o",
	HUSB20BB: "22+,A2s+,K6s+,Q8s+,J8s+,T8s+,98s," +
		"A9o+,KTo+,QJo",
	HUBBDefend: "22+,A2s+,K2s+,Q5s+,J7s+,T7s+,97s+,87s,76s," +
		"A5o+,K9o+,Q9o+,J9o+,T9o,98o",
	HUBBThreeBet:      "TT+,AQs+,AQo+,A5s+,KTs+,QTs+,JTs",
	HUSBThreeBet:      "TT+,AQs+,AQo+,A8s+,KTs+,QTs+,JTs",
	HUBtnVsBBThreeBet: "TT+,A8s+,KTs+,QTs+,JTs,AQo+",
	HUBBVsBtnThreeBet: "99+,A5s+,KTs+,QTs+,JTs,AQo+",
}

func init() {
	namedRangeTokens[HUSBOpen] = namedRangeTokens[HUSB20BB]
	namedRangeTokens[HUBBDefendCall] = namedRangeTokens[HUBBDefend]
}

// Table caches parsed named ranges, lazily resolving and memoising tokens.
type Table struct {
	cache map[Name]*Range
}

// DefaultTable returns a Table pre-loaded with the built-in heads-up range
// literals recovered from the distilled program's ranges.py.
func DefaultTable() *Table {
	return &Table{cache: make(map[Name]*Range)}
}

// Override replaces a named range's token string, re-parsing and
// overwriting any cached value (spec.md §4.8.1, SPEC_FULL.md §10.3:
// `--strategy-file` overrides).
func (t *Table) Override(name Name, tokens string) error {
	r, err := Parse(tokens)
	if err != nil {
		return err
	}
	namedRangeTokens[name] = tokens
	t.cache[name] = r
	return nil
}

// Get returns the named range, parsing and caching it on first use. Unknown
// names return an empty range rather than an error: a missing table entry is
// a design-time bug (spec.md §7), not a runtime condition to propagate.
func (t *Table) Get(name Name) *Range {
	if r, ok := t.cache[name]; ok {
		return r
	}
	tokens, ok := namedRangeTokens[name]
	if !ok {
		r := New()
		t.cache[name] = r
		return r
	}
	r, err := Parse(tokens)
	if err != nil {
		r = New()
	}
	t.cache[name] = r
	return r
}

// PushFoldRung is one entry in a stack-depth ladder: the push range to use
// once the effective stack is at or below ThresholdBB.
type PushFoldRung struct {
	ThresholdBB float64
	Tokens      string
}

// PushFoldLadders holds the BTN and BB push/fold ladders, ported from
// original_source/bots/strategic_bot/ranges.py's PUSH_FOLD_RANGES (rungs at
// 6bb and 10bb).
type PushFoldLadders struct {
	BTN []PushFoldRung
	BB  []PushFoldRung
}

// DefaultPushFoldLadders returns the built-in short-stack push/fold ladders.
func DefaultPushFoldLadders() PushFoldLadders {
	return PushFoldLadders{
		BTN: []PushFoldRung{
			{ThresholdBB: 6, Tokens: "22+,A2s+,K2s+,Q4s+,J5s+,T6s+,96s+,86s+," +
				"A2o+,K5o+,Q8o+,J8o+,T8o+,98o"},
			{ThresholdBB: 10, Tokens: "22+,A2s+,K6s+,Q8s+,J8s+,T8s+,A8o+,KTo+,QJo"},
		},
		BB: []PushFoldRung{
			{ThresholdBB: 6, Tokens: "22+,A2s+,K4s+,Q6s+,J7s+,T7s+,97s+,87s," +
				"A5o+,K9o+,Q9o+,J9o+"},
			{ThresholdBB: 10, Tokens: "33+,A2s+,K7s+,Q9s+,J9s+,T9s,A9o+,KJo+"},
		},
	}
}

// Push returns the push range for the given ladder at the given effective
// stack depth in big blinds: the first rung whose threshold is >= stackBB,
// or the widest (last) rung if the stack exceeds every threshold.
func (t *Table) Push(ladder []PushFoldRung, stackBB float64) *Range {
	for _, rung := range ladder {
		if stackBB <= rung.ThresholdBB {
			return t.parseRung(rung)
		}
	}
	if len(ladder) == 0 {
		return New()
	}
	return t.parseRung(ladder[len(ladder)-1])
}

func (t *Table) parseRung(rung PushFoldRung) *Range {
	key := Name("pushfold:" + rung.Tokens)
	if r, ok := t.cache[key]; ok {
		return r
	}
	r, err := Parse(rung.Tokens)
	if err != nil {
		r = New()
	}
	t.cache[key] = r
	return r
}
