package game

// Board holds the 9 cells of a game. The zero value is an empty board.
type Board struct {
	cells [BoardSize]PlayerMark
}

func NewBoard() *Board {
	return &Board{}
}

// CellOwner returns the mark occupying cell, or None if it is empty.
func (b *Board) CellOwner(cell int) (PlayerMark, error) {
	if !ValidCell(cell) {
		return None, &InvalidCellError{Cell: cell}
	}
	return b.cells[cell-1], nil
}

// PlaceMark puts mark on an empty cell. The board is left untouched on error.
func (b *Board) PlaceMark(cell int, mark PlayerMark) error {
	if !ValidCell(cell) {
		return &InvalidCellError{Cell: cell}
	}
	if !mark.Valid() {
		return ErrInvalidMark
	}
	if owner := b.cells[cell-1]; owner != None {
		return &CellOccupiedError{Cell: cell, Owner: owner}
	}

	b.cells[cell-1] = mark
	return nil
}

// AvailableCells returns the empty cells in ascending order.
func (b *Board) AvailableCells() []int {
	return b.Occupied(None)
}

// Occupied returns the cells owned by mark in ascending order.
// Occupied(None) is the same as AvailableCells.
func (b *Board) Occupied(mark PlayerMark) []int {
	cells := make([]int, 0, BoardSize)
	for i, owner := range b.cells {
		if owner == mark {
			cells = append(cells, i+1)
		}
	}
	return cells
}

// IsFull reports whether every cell has an owner.
func (b *Board) IsFull() bool {
	for _, owner := range b.cells {
		if owner == None {
			return false
		}
	}
	return true
}

// Cells returns a copy of the board. Index 0 holds cell 1.
func (b *Board) Cells() [BoardSize]PlayerMark {
	return b.cells
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = [BoardSize]PlayerMark{}
}

// BoardFromCells builds a board from a snapshot, rejecting unknown marks.
func BoardFromCells(cells [BoardSize]PlayerMark) (*Board, error) {
	b := NewBoard()
	if err := b.Restore(cells); err != nil {
		return nil, err
	}
	return b, nil
}

// Restore overwrites the board with a snapshot taken by Cells.
func (b *Board) Restore(cells [BoardSize]PlayerMark) error {
	for _, m := range cells {
		if m != None && !m.Valid() {
			return ErrInvalidMark
		}
	}
	b.cells = cells
	return nil
}

// Rows splits the board into three rows for rendering.
func (b *Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, 3)
	for r := range 3 {
		rows[r] = make([]PlayerMark, 3)
		for c := range 3 {
			rows[r][c] = b.cells[r*3+c]
		}
	}
	return rows
}
