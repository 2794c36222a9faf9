package bot

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func testBot(t *testing.T) *Bot {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New("team", "Hero", nil, logger, 1, nil)
}

func TestHandleWelcomeSetsSeatAndTableConfig(t *testing.T) {
	t.Parallel()
	b := testBot(t)
	raw, _ := json.Marshal(map[string]any{
		"seat":   1,
		"config": map[string]any{"seats": 2, "sb": 50, "bb": 100, "ante": 0},
	})

	if err := b.handleWelcome(raw); err != nil {
		t.Fatalf("handleWelcome failed: %v", err)
	}
	if b.tracker.HeroSeat != 1 {
		t.Errorf("HeroSeat = %d, want 1", b.tracker.HeroSeat)
	}
	if b.engine.BB != 100 {
		t.Errorf("engine.BB = %d, want 100", b.engine.BB)
	}
}

func TestHandleLobbyRegistersSeats(t *testing.T) {
	t.Parallel()
	b := testBot(t)
	raw, _ := json.Marshal(map[string]any{
		"players": []map[string]any{
			{"seat": 1, "team": "hero"},
			{"seat": 2, "team": "villain"},
		},
	})

	if err := b.handleLobby(raw); err != nil {
		t.Fatalf("handleLobby failed: %v", err)
	}
	if got := b.tracker.SeatLabel(2); got != "villain" {
		t.Errorf("seat 2 label = %q, want villain", got)
	}
}

func TestHandleStartHandOpensHand(t *testing.T) {
	t.Parallel()
	b := testBot(t)
	raw, _ := json.Marshal(map[string]any{
		"hand_id": "h1",
		"button":  1,
		"stacks": []map[string]any{
			{"seat": 1, "stack": 1000},
			{"seat": 2, "stack": 1000},
		},
	})

	if err := b.handleStartHand(raw); err != nil {
		t.Fatalf("handleStartHand failed: %v", err)
	}
	if b.tracker.Hand() == nil {
		t.Fatal("expected an open hand after start_hand")
	}
}

func TestHandleEndHandFinalizesAndLogsWhenLoggerPresent(t *testing.T) {
	t.Parallel()
	b := testBot(t)
	startRaw, _ := json.Marshal(map[string]any{
		"hand_id": "h1",
		"button":  1,
		"stacks": []map[string]any{
			{"seat": 1, "stack": 1000},
			{"seat": 2, "stack": 1000},
		},
	})
	if err := b.handleStartHand(startRaw); err != nil {
		t.Fatalf("handleStartHand failed: %v", err)
	}

	endRaw, _ := json.Marshal(map[string]any{"hand_id": "h1"})
	if err := b.handleEndHand(endRaw); err != nil {
		t.Fatalf("handleEndHand failed: %v", err)
	}
	if b.tracker.Hand() != nil {
		t.Error("hand should be released after end_hand")
	}
}

func TestDispatchRoutesKnownAndUnknownTypes(t *testing.T) {
	t.Parallel()
	b := testBot(t)

	done, err := b.dispatch("ab_status", json.RawMessage(`{}`))
	if done || err != nil {
		t.Errorf("ab_status dispatch = (%v, %v), want (false, nil)", done, err)
	}

	done, err = b.dispatch("match_end", json.RawMessage(`{}`))
	if !done || err != nil {
		t.Errorf("match_end dispatch = (%v, %v), want (true, nil)", done, err)
	}

	done, err = b.dispatch("something_new", json.RawMessage(`{}`))
	if done || err != nil {
		t.Errorf("unknown type dispatch = (%v, %v), want (false, nil)", done, err)
	}
}
