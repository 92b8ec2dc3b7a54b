package puzzle

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/queens/board"
)

// Region is a named group of candidate cells, exactly one of which must hold
// a marker in a valid solution. Candidate indices are row-major linear
// indices, iterated in ascending order. Regions are immutable after
// construction.
type Region struct {
	symbol rune
	cells  *roaring.Bitmap
}

// NewRegion creates a region from a symbol and its candidate cell indices.
// Negative indices are ignored.
func NewRegion(symbol rune, indices ...int) Region {
	rb := roaring.New()
	for _, idx := range indices {
		if idx < 0 {
			continue
		}
		rb.Add(uint32(idx))
	}
	return Region{symbol: symbol, cells: rb}
}

// Symbol returns the region's identifying symbol.
func (r Region) Symbol() rune { return r.symbol }

// Len returns the number of candidate cells.
func (r Region) Len() int {
	if r.cells == nil {
		return 0
	}
	return int(r.cells.GetCardinality())
}

// Contains reports whether idx is a candidate cell of the region.
func (r Region) Contains(idx int) bool {
	return r.cells != nil && idx >= 0 && r.cells.Contains(uint32(idx))
}

// Candidates returns a lazy, restartable ascending sequence of the region's
// candidate cell indices.
func (r Region) Candidates() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.cells == nil {
			return
		}
		it := r.cells.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// CandidateList returns the candidate cell indices as an ascending slice.
func (r Region) CandidateList() []int {
	out := make([]int, 0, r.Len())
	for idx := range r.Candidates() {
		out = append(out, idx)
	}
	return out
}

// Mask builds a board-shaped mask with every candidate cell set, suitable
// as the region argument of board.Place. Fails if any candidate index falls
// outside the given shape.
func (r Region) Mask(rows, cols int) (board.Board, error) {
	b, err := board.New(rows, cols)
	if err != nil {
		return board.Board{}, err
	}
	for idx := range r.Candidates() {
		if idx >= b.Cells() {
			return board.Board{}, &board.ErrIndexOutOfBounds{Index: idx, Cells: b.Cells()}
		}
		b.Set(idx, true)
	}
	return b, nil
}
