package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveReach is an independent cell-by-cell model of everything a placement
// at idx blocks: the full row, the full column, the one-step diagonal
// neighbors, and the region mask, on top of the prior board contents.
func naiveReach(prior Board, idx int, region Board) Board {
	out := prior
	row, col := prior.RowColOf(idx)
	for c := 0; c < prior.Cols(); c++ {
		out.Set(out.Index(row, c), true)
	}
	for r := 0; r < prior.Rows(); r++ {
		out.Set(out.Index(r, col), true)
	}
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < prior.Rows() && c >= 0 && c < prior.Cols() {
			out.Set(out.Index(r, c), true)
		}
	}
	for cell := range region.Ones() {
		out.Set(cell, true)
	}
	return out
}

func regionOf(t *testing.T, rows, cols int, indices ...int) Board {
	t.Helper()
	b := MustNew(rows, cols)
	for _, idx := range indices {
		b.Set(idx, true)
	}
	return b
}

func TestPlace_BlocksFullReach(t *testing.T) {
	// Center, edge, and corner placements on an empty 8x8 board.
	for _, idx := range []int{0, 9, 18, 27, 36, 45, 54, 63} {
		b := MustNew(8, 8)
		got, err := b.Place(idx, Board{})
		require.NoError(t, err, "idx %d", idx)
		assert.Equal(t, naiveReach(b, idx, Board{}), got, "idx %d", idx)

		// No cell outside the reach union changes, and the receiver is
		// untouched.
		assert.True(t, b.None())
	}
}

func TestPlace_AccumulatesOverPriorPlacements(t *testing.T) {
	b := MustNew(8, 8)

	b1, err := b.Place(0, Board{})
	require.NoError(t, err)

	b2, err := b1.Place(10, Board{})
	require.NoError(t, err)
	assert.Equal(t, naiveReach(b1, 10, Board{}), b2)

	b3, err := b2.Place(63, Board{})
	require.NoError(t, err)
	assert.Equal(t, naiveReach(b2, 63, Board{}), b3)
}

func TestPlace_RegionMaskIsBlocked(t *testing.T) {
	b := MustNew(8, 8)

	region := regionOf(t, 8, 8, 10, 18, 33)
	got, err := b.Place(10, region)
	require.NoError(t, err)
	assert.Equal(t, naiveReach(b, 10, region), got)
	assert.True(t, got.Test(33), "region cell far from the marker must be blocked")
}

func TestPlace_IndexOutOfBounds(t *testing.T) {
	b := MustNew(8, 8)

	for _, idx := range []int{64, 100, -1} {
		_, err := b.Place(idx, Board{})
		var oob *ErrIndexOutOfBounds
		require.ErrorAs(t, err, &oob, "idx %d", idx)
		assert.Equal(t, 64, oob.Cells)
	}

	// Regardless of prior board state.
	full := MustNew(8, 8)
	full.Fill(true)
	_, err := full.Place(64, Board{})
	var oob *ErrIndexOutOfBounds
	require.ErrorAs(t, err, &oob)
}

func TestPlace_SpotOccupied(t *testing.T) {
	b := MustNew(8, 8)

	got, err := b.Place(0, Board{})
	require.NoError(t, err)

	// Placing at the same index twice yields SpotOccupied the second time.
	_, err = got.Place(0, Board{})
	require.ErrorIs(t, err, ErrSpotOccupied)

	// Any cell inside the first marker's reach is occupied too.
	_, err = got.Place(9, Board{})
	require.ErrorIs(t, err, ErrSpotOccupied)
}

func TestPlace_NotInColorRegion(t *testing.T) {
	b := MustNew(8, 8)

	region := regionOf(t, 8, 8, 2)
	_, err := b.Place(1, region)
	require.ErrorIs(t, err, ErrNotInColorRegion)

	// The region check precedes the occupancy check: cell 1 is free here,
	// and an occupied cell outside the region still reports the region.
	got, err := b.Place(2, region)
	require.NoError(t, err)
	_, err = got.Place(4, region) // occupied (row 0) and outside the region
	require.ErrorIs(t, err, ErrNotInColorRegion)
}

func TestPlace_EmptyRegionSkipsRegionChecks(t *testing.T) {
	b := MustNew(8, 8)
	_, err := b.Place(5, Board{})
	require.NoError(t, err)
}

func TestPlace_RegionDimensionMismatch(t *testing.T) {
	b := MustNew(8, 8)
	region := regionOf(t, 5, 5, 3)

	_, err := b.Place(3, region)
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
}

func BenchmarkPlaceEmpty(b *testing.B) {
	brd := MustNew(8, 8)
	for b.Loop() {
		_, _ = brd.Place(0, Board{})
	}
}

func BenchmarkPlaceWithRegion(b *testing.B) {
	brd := MustNew(8, 8)
	region := MustNew(8, 8)
	region.Set(2, true)
	region.Set(10, true)
	region.Set(20, true)
	for b.Loop() {
		_, _ = brd.Place(2, region)
	}
}
