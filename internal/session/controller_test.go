package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// scriptedChooser plays the given cells first, then defers to next.
type scriptedChooser struct {
	cells []int
	next  MoveChooser
}

func (s *scriptedChooser) ChooseMove(board *game.Board) (int, error) {
	if len(s.cells) > 0 {
		cell := s.cells[0]
		s.cells = s.cells[1:]
		return cell, nil
	}
	return s.next.ChooseMove(board)
}

func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger)}, opts...)
	return NewController("s1", opts...)
}

func checkInvariant(t *testing.T, snap Snapshot) {
	t.Helper()
	x, o := 0, 0
	for _, m := range snap.Cells {
		switch m {
		case game.PlayerX:
			x++
		case game.PlayerO:
			o++
		}
	}
	assert.Equal(t, game.BoardSize, x+o+len(snap.Available), "occupied(X)+occupied(O)+available")
}

func TestApplyHumanMove_ScenarioOne(t *testing.T) {
	c := newTestController(t, WithChooser(bot.NewSeededOpponent(3)))

	res, err := c.ApplyHumanMove(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, res.HumanCell)
	assert.NotZero(t, res.ComputerCell)
	assert.NotEqual(t, 5, res.ComputerCell)
	assert.Equal(t, game.StatusInProgress, res.Outcome.Status)

	snap := c.CurrentState()
	assert.Equal(t, game.PlayerX, snap.Cells[4])
	assert.Equal(t, game.PlayerO, snap.Cells[res.ComputerCell-1])
	assert.Len(t, snap.Available, 7)
	assert.Equal(t, PhaseAwaitingHumanMove, snap.Phase)
	assert.Equal(t, res.Board, snap.Cells)
	checkInvariant(t, snap)
}

func TestApplyHumanMove_ScenarioTwoBotBlocks(t *testing.T) {
	c := newTestController(t, WithChooser(&scriptedChooser{cells: []int{5}, next: bot.NewOpponent()}))
	ctx := context.Background()

	_, err := c.ApplyHumanMove(ctx, 1)
	require.NoError(t, err)
	res, err := c.ApplyHumanMove(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, res.ComputerCell)
	assert.Equal(t, game.StatusInProgress, res.Outcome.Status)
}

func TestApplyHumanMove_ScenarioThreeHumanWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := NewMockMoveChooser(ctrl)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(2, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(5, nil),
	)

	wantBoard := [game.BoardSize]game.PlayerMark{
		game.PlayerX, game.PlayerO, game.None,
		game.PlayerX, game.PlayerO, game.None,
		game.PlayerX, game.None, game.None,
	}
	wantOutcome := game.WinOutcome(game.PlayerX, game.WinLine{1, 4, 7})
	reporter.EXPECT().ReportOutcome(gomock.Any(), "s1", wantOutcome, wantBoard).Return(nil)

	c := newTestController(t, WithChooser(chooser), WithReporter(reporter))
	ctx := context.Background()

	for _, cell := range []int{1, 4} {
		res, err := c.ApplyHumanMove(ctx, cell)
		require.NoError(t, err)
		require.False(t, res.Outcome.IsTerminal())
	}

	res, err := c.ApplyHumanMove(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, game.StatusWin, res.Outcome.Status)
	assert.Equal(t, game.PlayerX, res.Outcome.Winner)
	assert.Zero(t, res.ComputerCell, "bot must not move after the human wins")
	assert.Equal(t, wantBoard, res.Board)

	// The board auto-resets.
	snap := c.CurrentState()
	assert.Equal(t, [game.BoardSize]game.PlayerMark{}, snap.Cells)
	assert.Len(t, snap.Available, game.BoardSize)
	assert.Equal(t, game.StatusInProgress, snap.Outcome.Status)
	assert.Equal(t, PhaseAwaitingHumanMove, snap.Phase)
	assert.Equal(t, Stats{Games: 1, HumanWins: 1}, c.Stats())
}

func TestApplyHumanMove_ScenarioFourDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := NewMockMoveChooser(ctrl)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(2, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(5, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(6, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(7, nil),
	)
	reporter.EXPECT().ReportOutcome(gomock.Any(), "s1", game.DrawOutcome(), gomock.Any()).Return(nil)

	c := newTestController(t, WithChooser(chooser), WithReporter(reporter))
	ctx := context.Background()

	var res *MoveResult
	var err error
	for _, cell := range []int{1, 3, 4, 8, 9} {
		res, err = c.ApplyHumanMove(ctx, cell)
		require.NoError(t, err)
		checkInvariant(t, c.CurrentState())
	}

	assert.Equal(t, game.StatusDraw, res.Outcome.Status)
	assert.Equal(t, [game.BoardSize]game.PlayerMark{
		game.PlayerX, game.PlayerO, game.PlayerX,
		game.PlayerX, game.PlayerO, game.PlayerO,
		game.PlayerO, game.PlayerX, game.PlayerX,
	}, res.Board)
	assert.Len(t, c.CurrentState().Available, game.BoardSize)
	assert.Equal(t, Stats{Games: 1, Draws: 1}, c.Stats())
}

func TestApplyHumanMove_ComputerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := NewMockMoveChooser(ctrl)
	reporter := NewMockReporter(ctrl)
	gomock.InOrder(
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(4, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(5, nil),
		chooser.EXPECT().ChooseMove(gomock.Any()).Return(6, nil),
	)
	reporter.EXPECT().ReportOutcome(gomock.Any(), "s1", game.WinOutcome(game.PlayerO, game.WinLine{4, 5, 6}), gomock.Any()).Return(nil)

	c := newTestController(t, WithChooser(chooser), WithReporter(reporter))
	ctx := context.Background()

	var res *MoveResult
	var err error
	for _, cell := range []int{1, 2, 9} {
		res, err = c.ApplyHumanMove(ctx, cell)
		require.NoError(t, err)
	}
	assert.Equal(t, 6, res.ComputerCell)
	assert.Equal(t, game.PlayerO, res.Outcome.Winner)
	assert.Equal(t, Stats{Games: 1, ComputerWins: 1}, c.Stats())
	assert.Len(t, c.CurrentState().Available, game.BoardSize)
}

func TestApplyHumanMove_RejectsOccupiedCell(t *testing.T) {
	c := newTestController(t, WithChooser(&scriptedChooser{cells: []int{1}}))
	ctx := context.Background()

	_, err := c.ApplyHumanMove(ctx, 5)
	require.NoError(t, err)
	before := c.CurrentState()

	for _, cell := range []int{5, 1} {
		_, err = c.ApplyHumanMove(ctx, cell)
		assert.ErrorIs(t, err, game.ErrCellOccupied)
		assert.Equal(t, before.Cells, c.CurrentState().Cells)
	}
}

func TestApplyHumanMove_RejectsInvalidCell(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := NewMockMoveChooser(ctrl) // never called
	c := newTestController(t, WithChooser(chooser))

	for _, cell := range []int{-3, 0, 10} {
		_, err := c.ApplyHumanMove(context.Background(), cell)
		assert.ErrorIs(t, err, game.ErrInvalidCell)
	}
	assert.Len(t, c.CurrentState().Available, game.BoardSize)
}

func TestApplyHumanMove_ChooserFailureRestoresBoard(t *testing.T) {
	tests := []struct {
		name    string
		cell    int
		err     error
		wantErr error
	}{
		{name: "No available move", err: bot.ErrNoAvailableMove, wantErr: bot.ErrNoAvailableMove},
		{name: "Occupied cell", cell: 5, wantErr: game.ErrCellOccupied},
		{name: "Out of range cell", cell: 12, wantErr: game.ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chooser := NewMockMoveChooser(ctrl)
			chooser.EXPECT().ChooseMove(gomock.Any()).Return(tt.cell, tt.err)

			c := newTestController(t, WithChooser(chooser))
			_, err := c.ApplyHumanMove(context.Background(), 5)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, [game.BoardSize]game.PlayerMark{}, c.CurrentState().Cells)
		})
	}
}

func TestApplyHumanMove_ReporterErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	reporter.EXPECT().ReportOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	c := newTestController(t, WithChooser(&scriptedChooser{cells: []int{4, 5}}), WithReporter(reporter))
	ctx := context.Background()
	for _, cell := range []int{1, 2} {
		_, err := c.ApplyHumanMove(ctx, cell)
		require.NoError(t, err)
	}
	res, err := c.ApplyHumanMove(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, game.StatusWin, res.Outcome.Status)
	assert.Len(t, c.CurrentState().Available, game.BoardSize)
}

func TestApplyHumanMove_InvariantHoldsOverManyGames(t *testing.T) {
	c := newTestController(t, WithChooser(bot.NewSeededOpponent(11)))
	human := bot.NewSeededOpponent(99)
	ctx := context.Background()

	games := 0
	for games < 50 {
		snap := c.CurrentState()
		checkInvariant(t, snap)
		require.False(t, snap.Outcome.IsTerminal(), "terminal state must never be observable")

		board, err := game.BoardFromCells(snap.Cells)
		require.NoError(t, err)
		cell := snap.Available[0]
		if pick, err := human.ChooseMove(board); err == nil {
			cell = pick
		}

		res, err := c.ApplyHumanMove(ctx, cell)
		require.NoError(t, err)
		if res.Outcome.IsTerminal() {
			games++
			assert.Len(t, c.CurrentState().Available, game.BoardSize)
		}
	}
	stats := c.Stats()
	assert.Equal(t, 50, stats.Games)
	assert.Equal(t, stats.Games, stats.HumanWins+stats.ComputerWins+stats.Draws)
}

func TestReset(t *testing.T) {
	c := newTestController(t, WithChooser(bot.NewSeededOpponent(5)))
	_, err := c.ApplyHumanMove(context.Background(), 1)
	require.NoError(t, err)

	c.Reset(context.Background())
	snap := c.CurrentState()
	assert.Len(t, snap.Available, game.BoardSize)
	assert.Equal(t, Stats{}, snap.Stats)

	c.Reset(context.Background())
	assert.Len(t, c.CurrentState().Available, game.BoardSize)
}

func TestNewControllerDefaultsToOpponent(t *testing.T) {
	c := NewController("default", WithLogger(discardLogger))
	assert.Equal(t, "default", c.ID())
	res, err := c.ApplyHumanMove(context.Background(), 5)
	require.NoError(t, err)
	assert.NotZero(t, res.ComputerCell)
}
