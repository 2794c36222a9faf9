// Package bot implements the protocol dispatcher described in spec.md
// §4.10: a stateless switch over inbound message types that wires the
// tracker, opponent model, context builder, decision engine, and MCTS
// refiner to the external transport and hand logger.
package bot

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/huholdembot/internal/decision"
	"github.com/lox/huholdembot/internal/handlog"
	"github.com/lox/huholdembot/internal/mcts"
	"github.com/lox/huholdembot/internal/opponent"
	"github.com/lox/huholdembot/internal/randutil"
	"github.com/lox/huholdembot/internal/ranges"
	"github.com/lox/huholdembot/internal/state"
	"github.com/lox/huholdembot/internal/transport"
)

// Bot drives one session against a single connection: it dispatches
// inbound protocol messages onto the tracker/opponent-model/decision-engine
// pipeline and emits outbound actions (spec.md §4.10).
type Bot struct {
	Team string
	Label string

	conn    *transport.Conn
	logger  *log.Logger
	tracker *state.Tracker
	model   *opponent.Model
	table   *ranges.Table
	builder *decision.Builder
	engine  *decision.Engine
	hands   *handlog.Logger
}

// New wires a Bot from a dialed connection, seeded deterministically for
// reproducible equity/bluff/MCTS sampling (spec.md Design Notes).
func New(team, label string, conn *transport.Conn, logger *log.Logger, seed int64, hands *handlog.Logger) *Bot {
	table := ranges.DefaultTable()
	tracker := state.New()
	model := opponent.New(table)
	rng := randutil.New(seed)

	engine := decision.NewEngine(table, 0, rng)
	engine.MCTS = mcts.New(randutil.New(seed+1), 0)

	return &Bot{
		Team:    team,
		Label:   label,
		conn:    conn,
		logger:  logger,
		tracker: tracker,
		model:   model,
		table:   table,
		builder: decision.NewBuilder(tracker, model, table, rng),
		engine:  engine,
		hands:   hands,
	}
}

// Engine exposes the decision engine so the CLI can apply a parsed
// --strategy-file's ladder overrides before the first hand starts.
func (b *Bot) Engine() *decision.Engine {
	return b.engine
}

// Run sends the initial handshake and then dispatches inbound messages
// until match_end or the transport closes (spec.md §6, §5 "Cancellation").
func (b *Bot) Run() error {
	if err := b.conn.SendHello(b.Team, b.Label); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	for raw := range b.conn.Messages {
		var env transport.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			b.logger.Warn("malformed message", "err", err)
			continue
		}

		done, err := b.dispatch(env.Type, raw)
		if err != nil {
			b.logger.Error("dispatch error", "type", env.Type, "err", err)
			continue
		}
		if done {
			return nil
		}
	}
	return fmt.Errorf("transport closed")
}

func (b *Bot) dispatch(msgType string, raw json.RawMessage) (done bool, err error) {
	switch msgType {
	case "welcome":
		return false, b.handleWelcome(raw)
	case "lobby":
		return false, b.handleLobby(raw)
	case "start_hand":
		return false, b.handleStartHand(raw)
	case "event":
		return false, b.handleEvent(raw)
	case "act":
		b.handleAct(raw)
		return false, nil
	case "end_hand":
		return false, b.handleEndHand(raw)
	case "match_end":
		b.logger.Info("match ended")
		return true, nil
	case "ab_status", "error":
		b.logger.Info("informational message", "type", msgType)
		return false, nil
	default:
		b.logger.Warn("unknown message type", "type", msgType)
		return false, nil
	}
}

func (b *Bot) handleWelcome(raw json.RawMessage) error {
	var w transport.Welcome
	if err := json.Unmarshal(raw, &w); err != nil {
		return fmt.Errorf("welcome: %w", err)
	}
	b.tracker.SetSeat(w.Seat)
	b.tracker.UpdateTableConfig(state.TableConfig{
		Seats: w.Config.Seats,
		SB:    w.Config.SB,
		BB:    w.Config.BB,
		Ante:  w.Config.Ante,
	})
	b.engine.BB = w.Config.BB
	if searcher, ok := b.engine.MCTS.(*mcts.Searcher); ok {
		searcher.BB = w.Config.BB
	}
	return nil
}

func (b *Bot) handleLobby(raw json.RawMessage) error {
	var l transport.Lobby
	if err := json.Unmarshal(raw, &l); err != nil {
		return fmt.Errorf("lobby: %w", err)
	}
	for _, p := range l.Players {
		b.tracker.RegisterSeat(p.Seat, p.Team)
	}
	return nil
}

func (b *Bot) handleStartHand(raw json.RawMessage) error {
	var s transport.StartHand
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("start_hand: %w", err)
	}
	stacks := make(map[int]int, len(s.Stacks))
	for _, ss := range s.Stacks {
		stacks[ss.Seat] = ss.Stack
	}
	b.tracker.StartHand(s.HandID, s.Button, stacks)
	return nil
}

func (b *Bot) handleEndHand(raw json.RawMessage) error {
	var e transport.EndHand
	if err := json.Unmarshal(raw, &e); err != nil {
		return fmt.Errorf("end_hand: %w", err)
	}
	h := b.tracker.FinalizeHand()
	if b.hands != nil && h != nil {
		if err := b.hands.LogHand(h); err != nil {
			b.logger.Warn("hand log failed", "hand_id", e.HandID, "err", err)
		}
	}
	return nil
}
