package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/queens/puzzle"
)

func mustParse(t *testing.T, grid string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.Parse(grid)
	require.NoError(t, err)
	return p
}

// verifySolution checks the full constraint set on a found result: one
// chosen cell per region inside that region, pairwise distinct rows and
// columns, and no one-step diagonal adjacency.
func verifySolution(t *testing.T, p *puzzle.Puzzle, res Result) {
	t.Helper()

	require.Equal(t, OutcomeFound, res.Outcome)
	require.Len(t, res.Chosen, len(p.Regions))

	rows := make(map[int]bool)
	cols := make(map[int]bool)
	coords := make([][2]int, 0, len(res.Chosen))
	for i, idx := range res.Chosen {
		assert.True(t, p.Regions[i].Contains(idx),
			"chosen cell %d is outside region %q", idx, p.Regions[i].Symbol())
		r, c := idx/p.Cols, idx%p.Cols
		assert.False(t, rows[r], "row %d holds two markers", r)
		assert.False(t, cols[c], "col %d holds two markers", c)
		rows[r], cols[c] = true, true
		coords = append(coords, [2]int{r, c})

		assert.True(t, res.Board.Test(idx), "marker cell %d must be set in the result board", idx)
	}
	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			dr := coords[i][0] - coords[j][0]
			dc := coords[i][1] - coords[j][1]
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}
			assert.False(t, dr == 1 && dc == 1,
				"markers %v and %v touch diagonally", coords[i], coords[j])
		}
	}
}

func TestSolve_RowsAsRegions(t *testing.T) {
	p := mustParse(t, "11111 22222 33333 44444 55555")
	s, err := FromPuzzle(p)
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	verifySolution(t, p, res)

	// Enumeration is deterministic: first region slowest, candidates
	// ascending. The first valid assignment is columns (0,2,4,1,3).
	assert.Equal(t, []int{0, 7, 14, 16, 23}, res.Chosen)
	assert.Equal(t, uint64(359), res.Attempts)

	// Five markers cover every row and column, so the blocked-out result
	// board is completely full.
	assert.Equal(t, 25, res.Board.Count())
}

func TestSolve_ColsAsRegions(t *testing.T) {
	p := mustParse(t, "12345 12345 12345 12345 12345")
	s, err := FromPuzzle(p)
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	verifySolution(t, p, res)
}

func TestSolve_Actual8x8Board(t *testing.T) {
	p := mustParse(t, "11112333 11222344 11255346 77253344 73355334 77335344 87355333 77333333")
	s, err := FromPuzzle(p)
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	verifySolution(t, p, res)
}

func TestSolve_EmptyRegionMeansNoSolution(t *testing.T) {
	s, err := New(2, 2, []puzzle.Region{
		puzzle.NewRegion('a', 0, 1),
		puzzle.NewRegion('b'),
	})
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, uint64(0), res.Attempts)
}

func TestSolve_ExhaustionCountsFullProduct(t *testing.T) {
	// 2x2 with column regions: every combination shares a row or touches
	// diagonally, so all 2*2 attempts are examined and rejected.
	p := mustParse(t, "12 12")
	s, err := FromPuzzle(p)
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, uint64(4), res.Attempts)
}

func TestSolve_BudgetExceeded(t *testing.T) {
	p := mustParse(t, "11111 22222 33333 44444 55555")
	s, err := FromPuzzle(p, WithMaxAttempts(2))
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeBudgetExceeded, res.Outcome)
	assert.Equal(t, uint64(2), res.Attempts)
}

func TestSolve_BudgetEqualToProductStillProvesExhaustion(t *testing.T) {
	p := mustParse(t, "12 12")
	s, err := FromPuzzle(p, WithMaxAttempts(4))
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	// The product ran out exactly at the budget: this is a proof, not a
	// budget stop.
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, uint64(4), res.Attempts)
}

func TestSolve_ZeroRegionsIsVacuouslySolved(t *testing.T) {
	s, err := New(3, 3, nil)
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, res.Outcome)
	assert.Empty(t, res.Chosen)
	assert.Equal(t, uint64(1), res.Attempts)
	assert.True(t, res.Board.None())
}

func TestSolve_ContextCancellation(t *testing.T) {
	p := mustParse(t, "11111 22222 33333 44444 55555")
	s, err := FromPuzzle(p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_MoreRegionsThanRows(t *testing.T) {
	// Malformed shape: 3 regions on a 2x2 grid. Not rejected up front;
	// the per-cell checks make every combination fail.
	s, err := New(2, 2, []puzzle.Region{
		puzzle.NewRegion('a', 0),
		puzzle.NewRegion('b', 1),
		puzzle.NewRegion('c', 2),
	})
	require.NoError(t, err)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeExhausted, res.Outcome)
	assert.Equal(t, uint64(1), res.Attempts)
}

func TestSolve_CandidateOutsideGridRejectedUpFront(t *testing.T) {
	_, err := New(2, 2, []puzzle.Region{
		puzzle.NewRegion('a', 0, 99),
	})
	require.Error(t, err)
}

func TestSolve_ProgressCallback(t *testing.T) {
	p := mustParse(t, "11111 22222 33333 44444 55555")

	var calls int
	s, err := FromPuzzle(p,
		WithProgress(func(uint64) { calls++ }),
		WithProgressInterval(1), // nanosecond interval: fire every attempt
	)
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)
	assert.Greater(t, calls, 0)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "exhausted", OutcomeExhausted.String())
	assert.Equal(t, "budget exceeded", OutcomeBudgetExceeded.String())
}

func BenchmarkSolve8x8(b *testing.B) {
	p, err := puzzle.Parse("11112333 11222344 11255346 77253344 73355334 77335344 87355333 77333333")
	if err != nil {
		b.Fatal(err)
	}
	s, err := FromPuzzle(p)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	for b.Loop() {
		if _, err := s.Solve(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
