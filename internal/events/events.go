package events

import (
	"encoding/json"
	"time"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeSessionCreated     = "session_created"
	TypeSessionClosed      = "session_closed"
	TypeClientDisconnected = "client_disconnected"
	TypeGameOver           = "game_over"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// SessionPayload is the payload for the session lifecycle events.
type SessionPayload struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason,omitempty"`
}

// GameOverPayload is the payload for the "game_over" event.
type GameOverPayload struct {
	SessionID string                          `json:"session_id"`
	Outcome   game.Outcome                    `json:"outcome"`
	Board     [game.BoardSize]game.PlayerMark `json:"board"`
	At        time.Time                       `json:"at"`
}

// NewEvent wraps payload into an Event.
func NewEvent(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Payload: raw}, nil
}
