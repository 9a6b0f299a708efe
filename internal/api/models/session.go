package models

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
)

// MoveRequest defines the structure for a human move request.
type MoveRequest struct {
	Cell int `json:"cell" binding:"required,min=1,max=9"`
}

// CreateSessionResponse is returned when a new session starts.
type CreateSessionResponse struct {
	SessionID string           `json:"session_id"`
	Token     string           `json:"token"`
	State     session.Snapshot `json:"state"`
}

// MoveResponse is the result of a human move plus the state to render next.
type MoveResponse struct {
	Result  *session.MoveResult `json:"result"`
	Message string              `json:"message,omitempty"`
	State   session.Snapshot    `json:"state"`
}
