package bot

import (
	"encoding/json"

	"github.com/lox/huholdembot/internal/decision"
	"github.com/lox/huholdembot/internal/state"
	"github.com/lox/huholdembot/internal/transport"
)

// handleAct decodes an "act" request, builds a decision context, and emits
// an action. Any decoding or decision-engine exception is caught here and
// replaced by the spec.md §4.10/§7 fallback: CHECK if legal, else CALL,
// else the first legal action (RAISE_TO seeded with min_raise_to), else
// FOLD. The session continues either way.
func (b *Bot) handleAct(raw json.RawMessage) {
	var msg transport.ActMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		b.logger.Warn("malformed act message", "err", err)
		return
	}

	action, amount := b.decideWithFallback(msg)
	if err := b.conn.SendAction(msg.HandID, action, amount); err != nil {
		b.logger.Error("send action failed", "hand_id", msg.HandID, "err", err)
	}
}

func (b *Bot) decideWithFallback(msg transport.ActMessage) (action string, amount *int) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("decision panic, falling back", "recover", r)
			action, amount = fallbackAction(msg)
		}
	}()

	req, err := buildActRequest(msg)
	if err != nil {
		b.logger.Warn("malformed act payload, falling back", "err", err)
		return fallbackAction(msg)
	}

	ctx := b.builder.Build(req)
	d := b.engine.Decide(ctx)

	if d.Action == decision.RaiseTo || d.Action == decision.Bet {
		amt := d.Amount
		return string(d.Action), &amt
	}
	return string(d.Action), nil
}

// fallbackAction implements the §4.10/§7 fallback using the raw legal list,
// independent of any decision context.
func fallbackAction(msg transport.ActMessage) (string, *int) {
	has := func(a string) bool {
		for _, l := range msg.Legal {
			if l == a {
				return true
			}
		}
		return false
	}

	switch {
	case has("CHECK"):
		return "CHECK", nil
	case has("CALL"):
		return "CALL", nil
	case len(msg.Legal) > 0:
		first := msg.Legal[0]
		if first == "RAISE_TO" && msg.MinRaiseTo != nil {
			amt := *msg.MinRaiseTo
			return first, &amt
		}
		return first, nil
	default:
		return "FOLD", nil
	}
}

// buildActRequest decodes an ActMessage into a decision.ActRequest,
// parsing card labels and the street/action/legal-action strings into the
// internal sum types (spec.md Design Notes).
func buildActRequest(msg transport.ActMessage) (decision.ActRequest, error) {
	community, err := parseCards(msg.Community)
	if err != nil {
		return decision.ActRequest{}, err
	}
	hole, err := parseCards(msg.You.Hole)
	if err != nil {
		return decision.ActRequest{}, err
	}

	legal := make([]decision.Action, 0, len(msg.Legal))
	for _, l := range msg.Legal {
		legal = append(legal, decision.Action(l))
	}

	players := make([]decision.ActPlayer, len(msg.Players))
	for i, p := range msg.Players {
		players[i] = decision.ActPlayer{
			Seat:      p.Seat,
			Stack:     p.Stack,
			Committed: p.Committed,
			Folded:    p.HasFolded,
			AllIn:     p.IsAllIn,
			Team:      p.Team,
		}
	}

	return decision.ActRequest{
		HandID:            msg.HandID,
		Seat:              msg.Seat,
		Street:            parseStreet(msg.Phase),
		Community:         community,
		Pot:               msg.Pot,
		CallAmount:        msg.CallAmount,
		MinRaiseTo:        msg.MinRaiseTo,
		MaxRaiseTo:        msg.MaxRaiseTo,
		MinRaiseIncrement: msg.MinRaiseIncrement,
		Legal:             legal,
		Hole:              hole,
		HeroStack:         msg.You.Stack,
		HeroCommitted:     msg.You.Committed,
		TimeMs:            msg.You.TimeMs,
		Players:           players,
	}, nil
}

func parseStreet(phase string) state.Street {
	switch phase {
	case "FLOP":
		return state.Flop
	case "TURN":
		return state.Turn
	case "RIVER":
		return state.River
	case "SHOWDOWN":
		return state.Showdown
	default:
		return state.PreFlop
	}
}
