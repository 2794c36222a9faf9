package bot

import (
	"encoding/json"
	"fmt"

	"github.com/lox/huholdembot/internal/state"
	"github.com/lox/huholdembot/internal/transport"
	"github.com/lox/huholdembot/poker"
)

// handleEvent decodes an "event" message, applies it to the tracker, and
// for non-hero seats feeds the opponent model (spec.md §4.10).
func (b *Bot) handleEvent(raw json.RawMessage) error {
	var msg transport.EventMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("event: %w", err)
	}

	ev, err := decodeEvent(msg)
	if err != nil {
		b.logger.Warn("malformed event", "ev", msg.Ev, "err", err)
		return nil
	}

	streetBefore := b.tracker.Street
	b.tracker.HandleEvent(ev)

	if ev.Seat == b.tracker.HeroSeat {
		return nil
	}

	switch ev.Type {
	case "BET", "RAISE", "CALL":
		raised := ev.Type == "BET" || ev.Type == "RAISE"
		if streetBefore == state.PreFlop {
			b.model.ObservePreflop(ev.Seat, true, raised)
		} else {
			b.model.ObservePostflopAction(ev.Seat, raised)
		}
	case "SHOWDOWN":
		b.model.ObserveShowdown(ev.Seat, false)
	case "POT_AWARD":
		b.model.ObserveShowdown(ev.Seat, true)
	}

	return nil
}

// decodeEvent parses the wire "event" payload into a state.Event, parsing
// card labels with the poker package (spec.md §4.6).
func decodeEvent(msg transport.EventMessage) (state.Event, error) {
	ev := state.Event{
		Type:   msg.Ev,
		Seat:   msg.Seat,
		Amount: msg.Amount,
		Hand:   msg.Hand,
		Rank:   msg.Rank,
		SB:     msg.SB,
		BB:     msg.BB,
		SBSeat: msg.SBSeat,
		BBSeat: msg.BBSeat,
	}

	if len(msg.Cards) > 0 {
		cards, err := parseCards(msg.Cards)
		if err != nil {
			return ev, err
		}
		ev.Cards = cards
	}
	if msg.Card != nil {
		c, err := poker.ParseCard(*msg.Card)
		if err != nil {
			return ev, err
		}
		ev.Card = &c
	}

	return ev, nil
}

func parseCards(labels []string) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, len(labels))
	for _, l := range labels {
		c, err := poker.ParseCard(l)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
