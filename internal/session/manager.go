package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrSessionNotFound is returned for an unknown or evicted session id.
var ErrSessionNotFound = errors.New("session not found")

const defaultIdleTimeout = 30 * time.Minute

// ControllerFactory builds the controller for a new session.
type ControllerFactory func(id string) *Controller

// Manager owns one Controller per session. Moves within a session are
// serialized; different sessions never share state.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	factory     ControllerFactory
	publisher   events.Publisher
	idleTimeout time.Duration
	now         func() time.Time
	newID       func() string
}

type entry struct {
	mu       sync.Mutex
	ctrl     *Controller
	lastSeen time.Time
}

type ManagerOption func(*Manager)

func WithControllerFactory(factory ControllerFactory) ManagerOption {
	return func(m *Manager) {
		m.factory = factory
	}
}

// WithPublisher announces session lifecycle events.
func WithPublisher(publisher events.Publisher) ManagerOption {
	return func(m *Manager) {
		m.publisher = publisher
	}
}

// WithIdleTimeout sets how long an untouched session survives. Zero disables eviction.
func WithIdleTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.idleTimeout = d
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions:    make(map[string]*entry),
		idleTimeout: defaultIdleTimeout,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.factory == nil {
		m.factory = func(id string) *Controller {
			return NewController(id, WithChooser(bot.NewOpponent()))
		}
	}
	return m
}

// Create starts a new session and returns its initial state.
func (m *Manager) Create(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "session.Manager.Create")
	defer span.End()

	id := m.newID()
	ctrl := m.factory(id)

	m.mu.Lock()
	m.sessions[id] = &entry{ctrl: ctrl, lastSeen: m.now()}
	m.mu.Unlock()

	span.SetAttributes(attribute.String("session.id", id))
	slog.InfoContext(ctx, "session created", "session.id", id)
	m.publish(ctx, events.TypeSessionCreated, events.SessionPayload{SessionID: id})
	return ctrl.CurrentState(), nil
}

// State returns the current snapshot of a session.
func (m *Manager) State(id string) (Snapshot, error) {
	var snap Snapshot
	err := m.with(id, func(c *Controller) error {
		snap = c.CurrentState()
		return nil
	})
	return snap, err
}

// Move applies a human move to a session.
func (m *Manager) Move(ctx context.Context, id string, cell int) (*MoveResult, error) {
	ctx, span := tracer.Start(ctx, "session.Manager.Move", trace.WithAttributes(
		attribute.String("session.id", id),
		attribute.Int("move.cell", cell),
	))
	defer span.End()

	var result *MoveResult
	err := m.with(id, func(c *Controller) error {
		var err error
		result, err = c.ApplyHumanMove(ctx, cell)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move failed")
		return nil, err
	}
	return result, nil
}

// Reset clears the board of a session.
func (m *Manager) Reset(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := m.with(id, func(c *Controller) error {
		c.Reset(ctx)
		snap = c.CurrentState()
		return nil
	})
	return snap, err
}

// Delete closes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	slog.InfoContext(ctx, "session closed", "session.id", id)
	m.publish(ctx, events.TypeSessionClosed, events.SessionPayload{SessionID: id, Reason: "deleted"})
	return nil
}

// Disconnected announces that a live client of the session went away. The
// session itself stays open until deleted or pruned.
func (m *Manager) Disconnected(ctx context.Context, id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return
	}
	slog.InfoContext(ctx, "Client disconnected.", "session.id", id)
	m.publish(ctx, events.TypeClientDisconnected, events.SessionPayload{SessionID: id, Reason: "websocket closed"})
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Prune evicts sessions idle since before now minus the idle timeout and
// returns how many were removed.
func (m *Manager) Prune(ctx context.Context, now time.Time) int {
	if m.idleTimeout <= 0 {
		return 0
	}

	var evicted []string
	m.mu.Lock()
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := now.Sub(e.lastSeen) > m.idleTimeout
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	m.mu.Unlock()

	for _, id := range evicted {
		slog.InfoContext(ctx, "session exceeded idle timeout. Removing.", "session.id", id)
		m.publish(ctx, events.TypeSessionClosed, events.SessionPayload{SessionID: id, Reason: "idle"})
	}
	return len(evicted)
}

// Run prunes idle sessions until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	if m.idleTimeout <= 0 {
		return
	}
	interval := m.idleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	cleanupTicker := time.NewTicker(interval)
	defer cleanupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session cleanup stopping.")
			return
		case <-cleanupTicker.C:
			m.Prune(ctx, m.now())
		}
	}
}

// with runs fn on the session's controller while holding the session lock.
func (m *Manager) with(id string, fn func(c *Controller) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	return fn(e.ctrl)
}

func (m *Manager) publish(ctx context.Context, eventType string, payload any) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish session event", "event.type", eventType, "error", err)
	}
}
