package bot

import (
	"errors"
	"math/rand/v2"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// ErrNoAvailableMove is returned when the bot is asked to move on a full board.
var ErrNoAvailableMove = errors.New("no available move")

// Opponent picks moves for the automated player. It blocks the human's
// immediate win and otherwise plays a random empty cell.
//
// An Opponent is not safe for concurrent use when built with WithSource;
// give each session its own.
type Opponent struct {
	mark      game.PlayerMark
	humanMark game.PlayerMark
	intN      func(n int) int
}

type Option func(*Opponent)

// WithSource makes the random fallback draw from src, e.g. a seeded PCG for tests.
func WithSource(src rand.Source) Option {
	return func(o *Opponent) {
		if src == nil {
			return
		}
		r := rand.New(src)
		o.intN = r.IntN
	}
}

// WithMarks overrides the default marks (bot O, human X).
func WithMarks(bot, human game.PlayerMark) Option {
	return func(o *Opponent) {
		o.mark = bot
		o.humanMark = human
	}
}

// NewOpponent creates an Opponent playing O against a human X.
func NewOpponent(opts ...Option) *Opponent {
	o := &Opponent{
		mark:      game.PlayerO,
		humanMark: game.PlayerX,
		intN:      rand.IntN,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewSeededOpponent is a shorthand for a reproducible Opponent.
func NewSeededOpponent(seed uint64) *Opponent {
	return NewOpponent(WithSource(rand.NewPCG(seed, seed)))
}

// Mark returns the mark the bot plays.
func (o *Opponent) Mark() game.PlayerMark {
	return o.mark
}
