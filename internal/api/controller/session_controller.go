package controller

import (
	"net/http"
	"strings"

	"ctchen222/Tic-Tac-Toe-Solo/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/auth"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"

	"github.com/gin-gonic/gin"
)

// SessionController handles session-related HTTP requests.
type SessionController struct {
	manager *session.Manager
	tokens  *auth.TokenIssuer
}

// NewSessionController creates a new SessionController.
func NewSessionController(manager *session.Manager, tokens *auth.TokenIssuer) *SessionController {
	return &SessionController{
		manager: manager,
		tokens:  tokens,
	}
}

// RequireToken rejects requests whose token was not issued for the :id session.
// The token comes from "Authorization: Bearer <token>" or the "token" query
// parameter, which browsers need for websocket upgrades.
func (sc *SessionController) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token = c.Query("token")
		}
		if err := sc.tokens.Verify(token, c.Param("id")); err != nil {
			response.FromError(c, err)
			return
		}
		c.Next()
	}
}

// Create starts a new session and hands out its token.
func (sc *SessionController) Create(c *gin.Context) {
	snap, err := sc.manager.Create(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := sc.tokens.Issue(snap.ID)
	if err != nil {
		_ = sc.manager.Delete(c.Request.Context(), snap.ID)
		response.FromError(c, err)
		return
	}

	response.CreatedResponse(c, models.CreateSessionResponse{
		SessionID: snap.ID,
		Token:     token,
		State:     snap,
	})
}

// State returns the current board of a session.
func (sc *SessionController) State(c *gin.Context) {
	snap, err := sc.manager.State(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, snap)
}

// Move applies a human move and the bot's reply.
func (sc *SessionController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	result, err := sc.manager.Move(c.Request.Context(), id, req.Cell)
	if err != nil {
		response.FromError(c, err)
		return
	}
	snap, err := sc.manager.State(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessResponse(c, models.MoveResponse{
		Result:  result,
		Message: proto.OutcomeMessage(result.Outcome),
		State:   snap,
	})
}

// Reset clears the board of a session.
func (sc *SessionController) Reset(c *gin.Context) {
	snap, err := sc.manager.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, snap)
}

// Delete closes a session.
func (sc *SessionController) Delete(c *gin.Context) {
	if err := sc.manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessResponse(c, gin.H{"message": "Session closed"})
}
