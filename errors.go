package queens

import "github.com/hupe1980/queens/board"

// Routine placement outcomes. The solver treats these as "reject and
// continue"; they are only surfaced when the placement engine is driven
// directly.
var (
	// ErrSpotOccupied indicates a placement on an already-set cell.
	ErrSpotOccupied = board.ErrSpotOccupied

	// ErrNotInColorRegion indicates a placement outside the region mask.
	ErrNotInColorRegion = board.ErrNotInColorRegion
)

// Integration-bug errors. These indicate a caller mistake and are surfaced,
// never skipped.
type (
	// ErrIndexOutOfBounds indicates a placement index beyond the board.
	ErrIndexOutOfBounds = board.ErrIndexOutOfBounds

	// ErrDimensionMismatch indicates a combine of differently shaped boards.
	ErrDimensionMismatch = board.ErrDimensionMismatch

	// ErrTooManyCells indicates a grid exceeding the storage capacity.
	ErrTooManyCells = board.ErrTooManyCells
)
