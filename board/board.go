package board

import (
	"iter"
	"math/bits"
)

const (
	wordBits = 64
	numWords = 3

	// MaxCells is the fixed storage capacity in cells. Boards of any shape
	// are backed by the same [numWords]uint64 array; construction rejects
	// shapes whose cell count exceeds this bound.
	MaxCells = numWords * wordBits
)

// Board is a bit-packed rows×cols boolean grid. The zero value is an empty
// 0×0 board. Board is comparable; two boards are equal iff their shapes and
// cell contents match.
type Board struct {
	words      [numWords]uint64
	rows, cols uint8
}

// New creates an empty board of the given shape.
func New(rows, cols int) (Board, error) {
	if rows < 1 || cols < 1 {
		return Board{}, ErrInvalidShape
	}
	if rows*cols > MaxCells {
		return Board{}, &ErrTooManyCells{Rows: rows, Cols: cols}
	}
	return Board{rows: uint8(rows), cols: uint8(cols)}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures
// with known-good shapes.
func MustNew(rows, cols int) Board {
	b, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int { return int(b.rows) }

// Cols returns the number of columns.
func (b Board) Cols() int { return int(b.cols) }

// Cells returns the total cell count (rows*cols).
func (b Board) Cells() int { return int(b.rows) * int(b.cols) }

// SameShape reports whether both boards have identical rows and cols.
func (b Board) SameShape(o Board) bool {
	return b.rows == o.rows && b.cols == o.cols
}

// RowColOf decomposes a row-major linear index into (row, col).
func (b Board) RowColOf(idx int) (row, col int) {
	return idx / int(b.cols), idx % int(b.cols)
}

// Index composes (row, col) into a row-major linear index.
func (b Board) Index(row, col int) int {
	return row*int(b.cols) + col
}

// Test returns true if the cell at the given linear index is set.
// Out-of-range indices read as unset.
func (b Board) Test(idx int) bool {
	if idx < 0 || idx >= b.Cells() {
		return false
	}
	return b.words[idx>>6]&(1<<(idx&63)) != 0
}

// Get returns the cell value at (row, col). Out-of-range coordinates read
// as unset.
func (b Board) Get(row, col int) bool {
	if row < 0 || row >= int(b.rows) || col < 0 || col >= int(b.cols) {
		return false
	}
	return b.Test(b.Index(row, col))
}

// Set sets or clears the cell at the given linear index. Out-of-range
// indices are ignored.
func (b *Board) Set(idx int, v bool) {
	if idx < 0 || idx >= b.Cells() {
		return
	}
	w, m := idx>>6, uint64(1)<<(idx&63)
	if v {
		b.words[w] |= m
	} else {
		b.words[w] &^= m
	}
}

// Fill sets every cell to v. Fill(false) is the full reset used between
// solver combinations.
func (b *Board) Fill(v bool) {
	b.words = [numWords]uint64{}
	if v {
		b.orRange(0, b.Cells())
	}
}

// SetRow bulk-sets an entire row to v. The result depends only on the target
// row, not on current contents; the operation is idempotent.
func (b *Board) SetRow(row int, v bool) {
	if row < 0 || row >= int(b.rows) {
		return
	}
	if v {
		b.orRange(row*int(b.cols), int(b.cols))
	} else {
		b.clearRange(row*int(b.cols), int(b.cols))
	}
}

// SetCol bulk-sets an entire column to v.
func (b *Board) SetCol(col int, v bool) {
	if col < 0 || col >= int(b.cols) {
		return
	}
	for r := 0; r < int(b.rows); r++ {
		b.Set(b.Index(r, col), v)
	}
}

// SetDiagonals sets the up-to-four one-step diagonal neighbors of
// (row, col) to v, skipping neighbors that fall outside the grid.
func (b *Board) SetDiagonals(row, col int, v bool) {
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= int(b.rows) || c < 0 || c >= int(b.cols) {
			continue
		}
		b.Set(b.Index(r, c), v)
	}
}

// Row returns a lazy, restartable sequence of the cell values along the
// given row, in ascending column order.
func (b Board) Row(row int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if row < 0 || row >= int(b.rows) {
			return
		}
		for c := 0; c < int(b.cols); c++ {
			if !yield(b.Test(b.Index(row, c))) {
				return
			}
		}
	}
}

// Col returns a lazy, restartable sequence of the cell values along the
// given column, in ascending row order.
func (b Board) Col(col int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if col < 0 || col >= int(b.cols) {
			return
		}
		for r := 0; r < int(b.rows); r++ {
			if !yield(b.Test(b.Index(r, col))) {
				return
			}
		}
	}
}

// Ones returns a lazy, restartable ascending sequence of set linear indices.
// Empty words are skipped at word granularity.
func (b Board) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		cells := b.Cells()
		for w := 0; w < numWords; w++ {
			word := b.words[w]
			for word != 0 {
				idx := w*wordBits + bits.TrailingZeros64(word)
				if idx >= cells {
					return
				}
				if !yield(idx) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Count returns the number of set cells.
func (b Board) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// None reports whether no cell is set.
func (b Board) None() bool {
	return b.words == [numWords]uint64{}
}

// And returns the elementwise conjunction of both boards.
// Shapes must match exactly; boards are never truncated to fit.
func (b Board) And(o Board) (Board, error) {
	if !b.SameShape(o) {
		return Board{}, b.mismatch(o)
	}
	out := b
	for i := range out.words {
		out.words[i] &= o.words[i]
	}
	return out, nil
}

// Or returns the elementwise disjunction of both boards.
// Shapes must match exactly; boards are never padded to fit.
func (b Board) Or(o Board) (Board, error) {
	if !b.SameShape(o) {
		return Board{}, b.mismatch(o)
	}
	out := b
	for i := range out.words {
		out.words[i] |= o.words[i]
	}
	return out, nil
}

func (b Board) mismatch(o Board) error {
	return &ErrDimensionMismatch{
		WantRows: b.Rows(), WantCols: b.Cols(),
		GotRows: o.Rows(), GotCols: o.Cols(),
	}
}

// orRange sets the contiguous linear index range [from, from+n).
func (b *Board) orRange(from, n int) {
	for n > 0 {
		w, off := from>>6, from&63
		take := min(wordBits-off, n)
		mask := ^uint64(0)
		if take < wordBits {
			mask = (1<<take - 1)
		}
		b.words[w] |= mask << off
		from += take
		n -= take
	}
}

// clearRange clears the contiguous linear index range [from, from+n).
func (b *Board) clearRange(from, n int) {
	for n > 0 {
		w, off := from>>6, from&63
		take := min(wordBits-off, n)
		mask := ^uint64(0)
		if take < wordBits {
			mask = (1<<take - 1)
		}
		b.words[w] &^= mask << off
		from += take
		n -= take
	}
}
