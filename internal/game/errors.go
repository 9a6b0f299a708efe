package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCell  = errors.New("invalid cell")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrInvalidMark  = errors.New("invalid player mark")
)

// InvalidCellError is returned for a cell index outside 1..9.
type InvalidCellError struct {
	Cell int
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("cell %d is out of range(%d-%d)", e.Cell, CellMin, CellMax)
}

func (e *InvalidCellError) Unwrap() error {
	return ErrInvalidCell
}

// CellOccupiedError is returned when placing a mark on a cell that already has an owner.
type CellOccupiedError struct {
	Cell  int
	Owner PlayerMark
}

func (e *CellOccupiedError) Error() string {
	return fmt.Sprintf("cell %d already occupied by %s", e.Cell, e.Owner)
}

func (e *CellOccupiedError) Unwrap() error {
	return ErrCellOccupied
}
