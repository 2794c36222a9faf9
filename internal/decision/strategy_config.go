package decision

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/huholdembot/internal/ranges"
)

// StrategyConfig is the optional `--strategy-file` override of the built-in
// range/ladder literals (spec.md §4.8.1, SPEC_FULL.md §10.3). Every field is
// optional; an omitted block leaves the corresponding built-in table
// (internal/ranges.DefaultTable/DefaultPushFoldLadders) untouched.
type StrategyConfig struct {
	Ranges   []RangeOverride   `hcl:"range,block"`
	Ladders  []LadderOverride  `hcl:"ladder,block"`
}

// RangeOverride replaces one named range's token string, e.g.
//
//	range "HU_SB_OPEN" {
//	  tokens = "22+,A2+,K2+,..."
//	}
type RangeOverride struct {
	Name   string `hcl:"name,label"`
	Tokens string `hcl:"tokens"`
}

// LadderOverride replaces one push/fold ladder ("BTN" or "BB") wholesale
// with an ordered list of rungs.
type LadderOverride struct {
	Ladder string      `hcl:"ladder,label"`
	Rungs  []RungBlock `hcl:"rung,block"`
}

// RungBlock is one push/fold ladder rung.
type RungBlock struct {
	ThresholdBB float64 `hcl:"threshold_bb"`
	Tokens      string  `hcl:"tokens"`
}

// LoadStrategyFile parses an HCL strategy file. A missing path is not an
// error: the caller falls back to the built-in tables (spec.md §7 treats
// configuration absence as expected, not exceptional).
func LoadStrategyFile(path string) (*StrategyConfig, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse strategy file %s: %s", path, diags.Error())
	}

	var cfg StrategyConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode strategy file %s: %s", path, diags.Error())
	}
	return &cfg, nil
}

// Apply overrides the given table's named ranges and push/fold ladders in
// place. Called once at startup, before any decision is made, so the
// Engine never observes a partially-applied config.
func (cfg *StrategyConfig) Apply(table *ranges.Table, ladders *ranges.PushFoldLadders) error {
	if cfg == nil {
		return nil
	}
	for _, r := range cfg.Ranges {
		if err := table.Override(ranges.Name(r.Name), r.Tokens); err != nil {
			return fmt.Errorf("range %q: %w", r.Name, err)
		}
	}
	for _, l := range cfg.Ladders {
		rungs := make([]ranges.PushFoldRung, len(l.Rungs))
		for i, rung := range l.Rungs {
			rungs[i] = ranges.PushFoldRung{ThresholdBB: rung.ThresholdBB, Tokens: rung.Tokens}
		}
		switch l.Ladder {
		case "BTN":
			ladders.BTN = rungs
		case "BB":
			ladders.BB = rungs
		default:
			return fmt.Errorf("unknown ladder %q, want BTN or BB", l.Ladder)
		}
	}
	return nil
}
