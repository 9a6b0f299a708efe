package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("events")

// Publisher sends events to whoever is listening.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// RedisPublisher publishes events on a Redis Pub/Sub channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	now     func() time.Time
}

// NewRedisPublisher creates a publisher writing to EventsChannel.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		rdb:     rdb,
		channel: EventsChannel,
		now:     time.Now,
	}
}

// Publish marshals payload and publishes it.
func (p *RedisPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	ctx, span := tracer.Start(ctx, "events.Publish", trace.WithAttributes(
		attribute.String("event.type", eventType),
	))
	defer span.End()

	event, err := NewEvent(eventType, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling payload")
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	data, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling event")
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "event.type", eventType, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to publish event")
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// ReportOutcome publishes a game_over event for a finished game.
func (p *RedisPublisher) ReportOutcome(ctx context.Context, sessionID string, outcome game.Outcome, board [game.BoardSize]game.PlayerMark) error {
	return p.Publish(ctx, TypeGameOver, GameOverPayload{
		SessionID: sessionID,
		Outcome:   outcome,
		Board:     board,
		At:        p.now().UTC(),
	})
}
