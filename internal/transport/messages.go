// Package transport implements the JSON-over-websocket framing described in
// spec.md §6: one frame in, one frame out, over a gorilla/websocket
// connection. Wire shapes are decoded into tagged records (spec.md Design
// Notes) rather than passed around as raw maps.
package transport

import "encoding/json"

// Envelope is the minimal shape every inbound frame carries: enough to
// dispatch on Type before decoding the type-specific payload.
type Envelope struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

// TableConfigWire is the "welcome" message's config object.
type TableConfigWire struct {
	Seats int `json:"seats"`
	SB    int `json:"sb"`
	BB    int `json:"bb"`
	Ante  int `json:"ante"`
}

// Welcome is the "welcome" inbound message (spec.md §6).
type Welcome struct {
	Seat   int             `json:"seat"`
	Config TableConfigWire `json:"config"`
}

// PlayerTeam is one entry in a "lobby" message's player list.
type PlayerTeam struct {
	Seat int    `json:"seat"`
	Team string `json:"team"`
}

// Lobby is the "lobby" inbound message.
type Lobby struct {
	Players []PlayerTeam `json:"players"`
}

// SeatStack is one seat/stack pair, used by "start_hand" and "end_hand".
type SeatStack struct {
	Seat  int `json:"seat"`
	Stack int `json:"stack"`
}

// StartHand is the "start_hand" inbound message.
type StartHand struct {
	HandID string      `json:"hand_id"`
	Button int         `json:"button"`
	Stacks []SeatStack `json:"stacks"`
}

// EventMessage is the "event" inbound message; Ev selects which of the
// remaining fields are populated (spec.md §6).
type EventMessage struct {
	Ev     string  `json:"ev"`
	Seat   int     `json:"seat"`
	Amount *int    `json:"amount,omitempty"`
	Cards  []string `json:"cards,omitempty"`
	Card   *string `json:"card,omitempty"`
	Hand   string  `json:"hand,omitempty"`
	Rank   string  `json:"rank,omitempty"`
	SB     *int    `json:"sb,omitempty"`
	BB     *int    `json:"bb,omitempty"`
	SBSeat *int    `json:"sb_seat,omitempty"`
	BBSeat *int    `json:"bb_seat,omitempty"`
}

// ActYou is the "act" message's "you" object.
type ActYou struct {
	Hole      []string `json:"hole"`
	Stack     int      `json:"stack"`
	Committed int      `json:"committed"`
	TimeMs    int      `json:"time_ms"`
}

// ActPlayerWire is one entry in an "act" message's player list.
type ActPlayerWire struct {
	Seat      int    `json:"seat"`
	Stack     int    `json:"stack"`
	Committed int    `json:"committed"`
	HasFolded bool   `json:"has_folded"`
	IsAllIn   bool   `json:"is_all_in"`
	Team      string `json:"team"`
}

// ActMessage is the "act" inbound message (spec.md §6): a request for a
// legal action within You.TimeMs milliseconds.
type ActMessage struct {
	HandID            string          `json:"hand_id"`
	Seat              int             `json:"seat"`
	Phase             string          `json:"phase"`
	Community         []string        `json:"community"`
	Pot               int             `json:"pot"`
	CallAmount        int             `json:"call_amount"`
	MinRaiseTo        *int            `json:"min_raise_to,omitempty"`
	MaxRaiseTo        *int            `json:"max_raise_to,omitempty"`
	MinRaiseIncrement int             `json:"min_raise_increment"`
	Legal             []string        `json:"legal"`
	You               ActYou         `json:"you"`
	Players           []ActPlayerWire `json:"players"`
}

// EndHand is the "end_hand" inbound message.
type EndHand struct {
	HandID string      `json:"hand_id"`
	Stacks []SeatStack `json:"stacks"`
}

// MatchEnd is the "match_end" inbound message.
type MatchEnd struct {
	Winner int `json:"winner"`
}

// Hello is the first outbound message, sent once on connect (spec.md §6).
type Hello struct {
	Type string `json:"type"`
	V    int    `json:"v"`
	Team string `json:"team"`
	Bot  string `json:"bot,omitempty"`
}

// ActionMessage is the outbound response to an "act" request (spec.md §6).
// Amount is present only for BET/RAISE_TO.
type ActionMessage struct {
	Type   string `json:"type"`
	V      int    `json:"v"`
	HandID string `json:"hand_id"`
	Action string `json:"action"`
	Amount *int   `json:"amount,omitempty"`
}
