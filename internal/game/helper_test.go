package game

import "testing"

// mustBoard builds a board from a 9-character layout, '.' for empty.
func mustBoard(t *testing.T, layout string) *Board {
	t.Helper()
	if len(layout) != BoardSize {
		t.Fatalf("layout %q must have %d cells", layout, BoardSize)
	}
	var cells [BoardSize]PlayerMark
	for i, ch := range layout {
		switch ch {
		case 'X':
			cells[i] = PlayerX
		case 'O':
			cells[i] = PlayerO
		case '.':
			cells[i] = None
		default:
			t.Fatalf("unexpected character %q in layout", ch)
		}
	}
	b, err := BoardFromCells(cells)
	if err != nil {
		t.Fatalf("BoardFromCells() error = %v", err)
	}
	return b
}

func checkCountInvariant(t *testing.T, b *Board) {
	t.Helper()
	total := len(b.Occupied(PlayerX)) + len(b.Occupied(PlayerO)) + len(b.AvailableCells())
	if total != BoardSize {
		t.Errorf("occupied(X) + occupied(O) + available = %d, want %d", total, BoardSize)
	}
}
