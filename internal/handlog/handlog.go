// Package handlog persists finished hands to logs/hands/<hand_id>.jsonl
// (spec.md §6). It is an external collaborator, not part of the core
// decision pipeline: the bot loop hands it a frozen state.HandHistory at
// end_hand (spec.md §4.10).
package handlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/huholdembot/internal/state"
)

// Logger appends one JSON line per finished hand.
type Logger struct {
	dir string
}

// New returns a Logger writing under dir (default "logs/hands").
func New(dir string) *Logger {
	if dir == "" {
		dir = filepath.Join("logs", "hands")
	}
	return &Logger{dir: dir}
}

// record is the on-disk shape: HandHistory's fields plus a UTC ISO-8601
// timestamp (spec.md §6).
type record struct {
	HandID        string                        `json:"hand_id"`
	Button        int                           `json:"button"`
	StartStacks   map[int]int                   `json:"start_stacks"`
	BoardByStreet map[string][]string           `json:"board_by_street"`
	Actions       map[string][]actionRecordJSON `json:"actions"`
	Showdowns     []state.ShowdownRecord        `json:"showdowns"`
	Payouts       []state.PayoutRecord          `json:"payouts"`
	Eliminations  []int                         `json:"eliminations"`
	Timestamp     string                        `json:"timestamp"`
}

type actionRecordJSON struct {
	Seat           int    `json:"seat"`
	Action         string `json:"action"`
	Amount         *int   `json:"amount,omitempty"`
	PotBefore      int    `json:"pot_before"`
	StackBefore    int    `json:"stack_before"`
	ResultingStack int    `json:"resulting_stack"`
}

// LogHand appends h as one JSON line to logs/hands/<hand_id>.jsonl, creating
// the directory and file as needed.
func (l *Logger) LogHand(h *state.HandHistory) error {
	if h == nil {
		return nil
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", l.dir, err)
	}

	rec := record{
		HandID:        h.HandID,
		Button:        h.Button,
		StartStacks:   h.StartStacks,
		BoardByStreet: make(map[string][]string, len(h.BoardByStreet)),
		Actions:       make(map[string][]actionRecordJSON, len(h.Actions)),
		Showdowns:     h.Showdowns,
		Payouts:       h.Payouts,
		Eliminations:  h.Eliminations,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	for street, cards := range h.BoardByStreet {
		labels := make([]string, len(cards))
		for i, c := range cards {
			labels[i] = c.String()
		}
		rec.BoardByStreet[street.String()] = labels
	}
	for street, actions := range h.Actions {
		entries := make([]actionRecordJSON, len(actions))
		for i, a := range actions {
			entries[i] = actionRecordJSON{
				Seat:           a.Seat,
				Action:         a.Action,
				Amount:         a.Amount,
				PotBefore:      a.PotBefore,
				StackBefore:    a.StackBefore,
				ResultingStack: a.ResultingStack,
			}
		}
		rec.Actions[street.String()] = entries
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal hand %s: %w", h.HandID, err)
	}
	data = append(data, '\n')

	path := filepath.Join(l.dir, h.HandID+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
