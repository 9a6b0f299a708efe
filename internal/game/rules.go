package game

// WinLine is a triple of cell indices that wins the game when one player owns all three.
type WinLine [3]int

// WinLines enumerates rows, then columns, then diagonals. The order is relied on
// by the bot's blocking scan.
var WinLines = [8]WinLine{
	// Rows
	{1, 2, 3}, {4, 5, 6}, {7, 8, 9},
	// Columns
	{1, 4, 7}, {2, 5, 8}, {3, 6, 9},
	// Diagonals
	{1, 5, 9}, {3, 5, 7},
}

// Status is the coarse state of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is the evaluated result of a board. It is computed, never stored.
type Outcome struct {
	Status Status     `json:"status"`
	Winner PlayerMark `json:"winner,omitempty"`
	Line   *WinLine   `json:"line,omitempty"`
}

func InProgressOutcome() Outcome {
	return Outcome{Status: StatusInProgress}
}

func WinOutcome(winner PlayerMark, line WinLine) Outcome {
	return Outcome{Status: StatusWin, Winner: winner, Line: &line}
}

func DrawOutcome() Outcome {
	return Outcome{Status: StatusDraw}
}

// IsTerminal reports whether the game has ended.
func (o Outcome) IsTerminal() bool {
	return o.Status == StatusWin || o.Status == StatusDraw
}

func (o Outcome) String() string {
	if o.Status == StatusWin {
		return "win(" + string(o.Winner) + ")"
	}
	return string(o.Status)
}

// HasWon reports whether mark owns any complete line.
func (b *Board) HasWon(mark PlayerMark) bool {
	_, ok := b.WinningLine(mark)
	return ok
}

// WinningLine returns the first line in enumeration order fully owned by mark.
func (b *Board) WinningLine(mark PlayerMark) (WinLine, bool) {
	if !mark.Valid() {
		return WinLine{}, false
	}
	for _, line := range WinLines {
		if b.cells[line[0]-1] == mark && b.cells[line[1]-1] == mark && b.cells[line[2]-1] == mark {
			return line, true
		}
	}
	return WinLine{}, false
}

// IsDraw reports a full board where nobody has won.
func (b *Board) IsDraw() bool {
	// If there is a winner, it's not a draw
	if b.HasWon(PlayerX) || b.HasWon(PlayerO) {
		return false
	}
	return b.IsFull()
}

// Evaluate checks X, then O, then draw. A full board with a complete line is a win.
func (b *Board) Evaluate() Outcome {
	for _, mark := range [2]PlayerMark{PlayerX, PlayerO} {
		if line, ok := b.WinningLine(mark); ok {
			return WinOutcome(mark, line)
		}
	}
	if b.IsDraw() {
		return DrawOutcome()
	}
	return InProgressOutcome()
}
