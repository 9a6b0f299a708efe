package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
)

// ChooseMove returns the cell the bot wants to play. It does not touch the board.
func (o *Opponent) ChooseMove(board *game.Board) (int, error) {
	available := board.AvailableCells()
	if len(available) == 0 {
		return 0, ErrNoAvailableMove
	}

	// 1. Block: stop the human from completing a line on their next move
	if cell, ok := findBlockingMove(board, o.humanMark, o.mark); ok {
		return cell, nil
	}

	// 2. Random: every available cell is equally likely
	return available[o.intN(len(available))], nil
}

// FindBlockingMove reports the empty cell that would complete a line for human,
// scanning game.WinLines in order. Cells held by the other player never qualify.
func FindBlockingMove(board *game.Board, human game.PlayerMark) (int, bool) {
	return findBlockingMove(board, human, game.Opponent(human))
}

func findBlockingMove(board *game.Board, human, bot game.PlayerMark) (int, bool) {
	cells := board.Cells()
	for _, line := range game.WinLines {
		humanMarks := 0
		emptyCell := 0
		for _, cell := range line {
			switch cells[cell-1] {
			case human:
				humanMarks++
			case bot:
			default:
				emptyCell = cell
			}
		}
		if humanMarks == 2 && emptyCell != 0 {
			return emptyCell, true
		}
	}
	return 0, false
}
