package board

// Place attempts to put a marker at the given linear index and returns a new
// board with every cell the marker blocks set: the full row, the full column,
// the one-step diagonal neighbors, and the whole region mask. The receiver is
// never mutated.
//
// Outcomes:
//   - idx outside [0, rows*cols)            → *ErrIndexOutOfBounds
//   - non-empty region without bit idx      → ErrNotInColorRegion
//   - bit idx already set in b              → ErrSpotOccupied
//   - non-empty region of a different shape → *ErrDimensionMismatch
//
// An empty region mask disables the region checks entirely.
func (b Board) Place(idx int, region Board) (Board, error) {
	if idx < 0 || idx >= b.Cells() {
		return Board{}, &ErrIndexOutOfBounds{Index: idx, Cells: b.Cells()}
	}
	if !region.None() {
		// A wrong-shaped mask is an integration bug; report it as such
		// rather than as a routine region rejection.
		if !b.SameShape(region) {
			return Board{}, b.mismatch(region)
		}
		if !region.Test(idx) {
			return Board{}, ErrNotInColorRegion
		}
	}
	if b.Test(idx) {
		return Board{}, ErrSpotOccupied
	}

	out := b
	row, col := b.RowColOf(idx)
	out.SetRow(row, true)
	out.SetCol(col, true)
	out.SetDiagonals(row, col, true)
	if region.None() {
		return out, nil
	}
	return out.Or(region)
}
