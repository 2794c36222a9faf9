package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Conn is a bidirectional JSON-over-websocket connection (spec.md §6). One
// read-pump goroutine feeds Messages; the bot loop is otherwise a blocking
// request/decide/respond cycle, so no separate write pump is needed.
type Conn struct {
	ws     *websocket.Conn
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	Messages chan json.RawMessage
}

// Dial connects to serverURL and starts the read pump. Transport failures
// from the read pump close Messages and are returned from Wait (spec.md §7:
// "Transport failure — propagated and terminates the session").
func Dial(serverURL string, logger *log.Logger) (*Conn, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	ws, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	c := &Conn{
		ws:       ws,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		group:    group,
		Messages: make(chan json.RawMessage, 32),
	}

	group.Go(func() error { return c.readPump(gctx) })

	return c, nil
}

func (c *Conn) readPump(ctx context.Context) error {
	defer close(c.Messages)
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		select {
		case c.Messages <- raw:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// SendHello sends the initial handshake frame (spec.md §6).
func (c *Conn) SendHello(team, bot string) error {
	return c.send(Hello{Type: "hello", V: 1, Team: team, Bot: bot})
}

// SendAction sends an outbound action response (spec.md §6).
func (c *Conn) SendAction(handID, action string, amount *int) error {
	return c.send(ActionMessage{Type: "action", V: 1, HandID: handID, Action: action, Amount: amount})
}

func (c *Conn) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Close shuts the connection down and waits for the read pump to exit.
func (c *Conn) Close() error {
	c.cancel()
	_ = c.ws.Close()
	if err := c.group.Wait(); err != nil && c.ctx.Err() == nil {
		return err
	}
	return nil
}
