package proto

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// Message types
const (
	TypeMove     = "move"
	TypeReset    = "reset"
	TypeUpdate   = "update"
	TypeGameOver = "game_over"
	TypeError    = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type string `json:"type" validate:"required,oneof=move reset"`
	Cell int    `json:"cell,omitempty" validate:"required_if=Type move,omitempty,cell"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type         string              `json:"type" validate:"required"`
	Reason       string              `json:"reason,omitempty"`
	SessionID    string              `json:"session_id,omitempty"`
	Board        [][]game.PlayerMark `json:"board,omitempty"`
	Available    []int               `json:"available,omitempty"`
	HumanCell    int                 `json:"human_cell,omitempty"`
	ComputerCell int                 `json:"computer_cell,omitempty"`
	Outcome      *game.Outcome       `json:"outcome,omitempty"`
	Message      string              `json:"message,omitempty"`
}

// OutcomeMessage is the text shown to the player when a game ends.
func OutcomeMessage(o game.Outcome) string {
	switch o.Status {
	case game.StatusWin:
		return "Player " + string(o.Winner) + " has won!"
	case game.StatusDraw:
		return "It's a draw!"
	default:
		return ""
	}
}
