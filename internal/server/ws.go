package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/internal/validator"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleWebSocket upgrades the connection and plays the session over it until
// the client goes away. The token was already checked by RequireToken.
func (s *Server) handleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	snap, err := s.manager.State(sessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown session")
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}
	defer func() {
		conn.Close()
		s.manager.Disconnected(context.WithoutCancel(ctx), sessionID)
	}()

	if err := writeMessage(conn, stateMessage(proto.TypeUpdate, snap)); err != nil {
		slog.WarnContext(ctx, "failed to send initial state", "session.id", sessionID, "error", err)
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.WarnContext(ctx, "Player connection error", "session.id", sessionID, "error", err)
			}
			return
		}

		reply := s.handleMessage(ctx, sessionID, raw)
		if err := writeMessage(conn, reply); err != nil {
			slog.WarnContext(ctx, "error writing message to player", "session.id", sessionID, "error", err)
			return
		}
	}
}

// handleMessage turns one client message into the reply to send back.
func (s *Server) handleMessage(ctx context.Context, sessionID string, raw []byte) *proto.ServerToClientMessage {
	ctx, span := tracer.Start(ctx, "server.handleMessage", trace.WithAttributes(
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return errorMessage("malformed message")
	}
	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "session.id", sessionID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return errorMessage("invalid message: " + err.Error())
	}
	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeReset:
		snap, err := s.manager.Reset(ctx, sessionID)
		if err != nil {
			return errorMessage(err.Error())
		}
		return stateMessage(proto.TypeUpdate, snap)

	default:
		result, err := s.manager.Move(ctx, sessionID, message.Cell)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, session.ErrSessionNotFound) {
				return errorMessage("session closed")
			}
			return errorMessage(err.Error())
		}
		return s.resultMessage(sessionID, result)
	}
}

func (s *Server) resultMessage(sessionID string, result *session.MoveResult) *proto.ServerToClientMessage {
	board, _ := game.BoardFromCells(result.Board)
	outcome := result.Outcome
	msg := &proto.ServerToClientMessage{
		Type:         proto.TypeUpdate,
		SessionID:    sessionID,
		Board:        board.Rows(),
		HumanCell:    result.HumanCell,
		ComputerCell: result.ComputerCell,
		Outcome:      &outcome,
	}
	if outcome.IsTerminal() {
		msg.Type = proto.TypeGameOver
		msg.Message = proto.OutcomeMessage(outcome)
	}
	if snap, err := s.manager.State(sessionID); err == nil {
		msg.Available = snap.Available
	}
	return msg
}

func stateMessage(msgType string, snap session.Snapshot) *proto.ServerToClientMessage {
	board, _ := game.BoardFromCells(snap.Cells)
	outcome := snap.Outcome
	return &proto.ServerToClientMessage{
		Type:      msgType,
		SessionID: snap.ID,
		Board:     board.Rows(),
		Available: snap.Available,
		Outcome:   &outcome,
	}
}

func errorMessage(reason string) *proto.ServerToClientMessage {
	return &proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason}
}

func writeMessage(conn *websocket.Conn, msg *proto.ServerToClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
