package response

import (
	"errors"
	"net/http"

	"ctchen222/Tic-Tac-Toe-Solo/internal/auth"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
)

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidCell), errors.Is(err, game.ErrInvalidMark):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrCellOccupied):
		return http.StatusConflict
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
