package session

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")
)

// Phase is where the controller is in the human -> bot cycle.
type Phase string

const (
	PhaseAwaitingHumanMove Phase = "awaiting_human_move"
	// PhaseTerminal only lasts while an outcome is being reported.
	PhaseTerminal Phase = "terminal"
)

// MoveResult describes what happened after a human move.
type MoveResult struct {
	HumanCell    int                             `json:"human_cell"`
	ComputerCell int                             `json:"computer_cell,omitempty"`
	Outcome      game.Outcome                    `json:"outcome"`
	Board        [game.BoardSize]game.PlayerMark `json:"board"`
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	ID        string                          `json:"session_id"`
	Cells     [game.BoardSize]game.PlayerMark `json:"cells"`
	Available []int                           `json:"available"`
	Outcome   game.Outcome                    `json:"outcome"`
	Phase     Phase                           `json:"phase"`
	Stats     Stats                           `json:"stats"`
}

// Stats is the scoreboard of a controller. It lives as long as the controller.
type Stats struct {
	Games        int `json:"games"`
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
	Draws        int `json:"draws"`
}

// Controller runs one game session: the human plays X, the bot replies with O,
// and the board is cleared as soon as a game ends. It is not safe for
// concurrent use; Manager serializes access per session.
type Controller struct {
	id       string
	board    *game.Board
	chooser  MoveChooser
	reporter Reporter
	logger   *slog.Logger
	phase    Phase
	stats    Stats

	moveCounter    metric.Int64Counter
	outcomeCounter metric.Int64Counter
}

type Option func(*Controller)

// WithChooser sets the bot strategy. Defaults to bot.NewOpponent().
func WithChooser(chooser MoveChooser) Option {
	return func(c *Controller) {
		c.chooser = chooser
	}
}

// WithReporter sets who is told about finished games.
func WithReporter(reporter Reporter) Option {
	return func(c *Controller) {
		c.reporter = reporter
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller with an empty board waiting for the human.
func NewController(id string, opts ...Option) *Controller {
	c := &Controller{
		id:     id,
		board:  game.NewBoard(),
		logger: slog.Default(),
		phase:  PhaseAwaitingHumanMove,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.chooser == nil {
		c.chooser = bot.NewOpponent()
	}
	c.logger = c.logger.With("session.id", id)

	var err error
	if c.moveCounter, err = meter.Int64Counter("game.moves",
		metric.WithDescription("Marks placed on the board"),
	); err != nil {
		c.logger.Warn("failed to create move counter", "error", err)
	}
	if c.outcomeCounter, err = meter.Int64Counter("game.outcomes",
		metric.WithDescription("Finished games by outcome"),
	); err != nil {
		c.logger.Warn("failed to create outcome counter", "error", err)
	}
	return c
}

// ID returns the session id.
func (c *Controller) ID() string {
	return c.id
}

// ApplyHumanMove places X on cell and, if the game goes on, lets the bot answer.
// A finished game is reported and the board reset before returning, so the
// result always leaves the controller waiting for the next human move.
func (c *Controller) ApplyHumanMove(ctx context.Context, cell int) (*MoveResult, error) {
	ctx, span := tracer.Start(ctx, "session.ApplyHumanMove", trace.WithAttributes(
		attribute.String("session.id", c.id),
		attribute.Int("move.cell", cell),
	))
	defer span.End()

	before := c.board.Cells()
	if err := c.board.PlaceMark(cell, game.PlayerX); err != nil {
		c.logger.WarnContext(ctx, "rejected human move", "cell", cell, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return nil, err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	c.countMove(ctx, game.PlayerX)

	result := &MoveResult{HumanCell: cell}
	if outcome := c.board.Evaluate(); outcome.IsTerminal() {
		c.finish(ctx, result, outcome)
		return result, nil
	}

	if err := c.applyComputerMove(ctx, result); err != nil {
		// Undo the human mark so the board never holds a half-played turn.
		if restoreErr := c.board.Restore(before); restoreErr != nil {
			c.logger.ErrorContext(ctx, "failed to restore board", "error", restoreErr)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer move failed")
		return nil, err
	}
	return result, nil
}

// applyComputerMove lets the chooser pick a cell for O and checks the outcome.
func (c *Controller) applyComputerMove(ctx context.Context, result *MoveResult) error {
	ctx, span := tracer.Start(ctx, "session.applyComputerMove", trace.WithAttributes(
		attribute.String("session.id", c.id),
	))
	defer span.End()

	cell, err := c.chooser.ChooseMove(c.board)
	if err != nil {
		c.logger.ErrorContext(ctx, "bot could not choose a move", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bot could not choose a move")
		return fmt.Errorf("computer move: %w", err)
	}
	if err := c.board.PlaceMark(cell, game.PlayerO); err != nil {
		c.logger.ErrorContext(ctx, "bot chose an illegal cell", "cell", cell, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bot chose an illegal cell")
		return fmt.Errorf("computer move: %w", err)
	}
	span.SetAttributes(attribute.Int("move.cell", cell))
	c.countMove(ctx, game.PlayerO)
	result.ComputerCell = cell

	outcome := c.board.Evaluate()
	if outcome.IsTerminal() {
		c.finish(ctx, result, outcome)
		return nil
	}
	result.Outcome = outcome
	result.Board = c.board.Cells()
	return nil
}

// finish reports a terminal outcome and clears the board.
func (c *Controller) finish(ctx context.Context, result *MoveResult, outcome game.Outcome) {
	c.phase = PhaseTerminal
	result.Outcome = outcome
	result.Board = c.board.Cells()
	c.record(ctx, outcome)

	c.logger.InfoContext(ctx, "game finished", "outcome", outcome.String())
	if c.reporter != nil {
		if err := c.reporter.ReportOutcome(ctx, c.id, outcome, result.Board); err != nil {
			c.logger.WarnContext(ctx, "failed to report outcome", "outcome", outcome.String(), "error", err)
			trace.SpanFromContext(ctx).RecordError(err)
		}
	}

	c.board.Reset()
	c.phase = PhaseAwaitingHumanMove
}

// CurrentState returns a snapshot of the board.
func (c *Controller) CurrentState() Snapshot {
	return Snapshot{
		ID:        c.id,
		Cells:     c.board.Cells(),
		Available: c.board.AvailableCells(),
		Outcome:   c.board.Evaluate(),
		Phase:     c.phase,
		Stats:     c.stats,
	}
}

// Reset abandons the current game without counting it.
func (c *Controller) Reset(ctx context.Context) {
	c.board.Reset()
	c.phase = PhaseAwaitingHumanMove
	c.logger.InfoContext(ctx, "board reset")
}

// Stats returns the scoreboard.
func (c *Controller) Stats() Stats {
	return c.stats
}

func (c *Controller) record(ctx context.Context, outcome game.Outcome) {
	c.stats.Games++
	switch {
	case outcome.Status == game.StatusDraw:
		c.stats.Draws++
	case outcome.Winner == game.PlayerX:
		c.stats.HumanWins++
	case outcome.Winner == game.PlayerO:
		c.stats.ComputerWins++
	}
	if c.outcomeCounter != nil {
		c.outcomeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
	}
}

func (c *Controller) countMove(ctx context.Context, mark game.PlayerMark) {
	if c.moveCounter != nil {
		c.moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player", string(mark))))
	}
}
