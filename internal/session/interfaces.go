package session

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=session

// MoveChooser defines an agent that can pick the bot's next cell.
type MoveChooser interface {
	ChooseMove(board *game.Board) (int, error)
}

// Reporter is told about every finished game before the board is cleared.
type Reporter interface {
	ReportOutcome(ctx context.Context, sessionID string, outcome game.Outcome, board [game.BoardSize]game.PlayerMark) error
}
