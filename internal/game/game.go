package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks. X is always the human, O is always the bot.
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries, cells are numbered row-major.
	CellMin   = 1
	CellMax   = 9
	BoardSize = 9
)

// Valid reports whether m is a mark a player can place.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark.
func Opponent(m PlayerMark) PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// ValidCell reports whether cell is inside 1..9.
func ValidCell(cell int) bool {
	return cell >= CellMin && cell <= CellMax
}
