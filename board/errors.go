package board

import (
	"errors"
	"fmt"
)

var (
	// ErrSpotOccupied is returned when a placement targets a cell that is
	// already set. Routine outcome during search, not a fault.
	ErrSpotOccupied = errors.New("spot occupied")

	// ErrNotInColorRegion is returned when a placement targets a cell outside
	// the supplied region mask. Checked before occupancy.
	ErrNotInColorRegion = errors.New("not in color region")

	// ErrInvalidShape is returned when constructing a board with non-positive
	// rows or cols.
	ErrInvalidShape = errors.New("rows and cols must be positive")
)

// ErrIndexOutOfBounds indicates a placement index at or beyond the board's
// cell count. This is a caller bug, not a routine search outcome.
type ErrIndexOutOfBounds struct {
	Index int
	Cells int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d (cells %d)", e.Index, e.Cells)
}

// ErrDimensionMismatch indicates a combine of boards with differing shapes.
// Boards are never padded or truncated to fit.
type ErrDimensionMismatch struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %dx%d, got %dx%d",
		e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// ErrTooManyCells indicates a requested shape whose cell count exceeds the
// fixed storage capacity.
type ErrTooManyCells struct {
	Rows, Cols int
}

func (e *ErrTooManyCells) Error() string {
	return fmt.Sprintf("too many cells: %dx%d exceeds capacity %d", e.Rows, e.Cols, MaxCells)
}
