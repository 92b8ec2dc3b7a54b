package solver

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/time/rate"

	"github.com/hupe1980/queens/board"
	"github.com/hupe1980/queens/puzzle"
)

// ctxCheckMask controls how often the search loop consults ctx.Err:
// every 4096 combinations, so cancellation never adds per-combination cost.
const ctxCheckMask = 1<<12 - 1

// Outcome classifies how a solve run ended.
type Outcome int

const (
	// OutcomeFound means a valid full assignment was found.
	OutcomeFound Outcome = iota
	// OutcomeExhausted means the whole product was examined and no valid
	// assignment exists. This is an exhaustive proof of unsolvability.
	OutcomeExhausted
	// OutcomeBudgetExceeded means the caller-imposed attempt budget ran out
	// before the product was exhausted. Nothing is proven.
	OutcomeBudgetExceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeBudgetExceeded:
		return "budget exceeded"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of a solve run. Board and Chosen are only populated
// for OutcomeFound; Attempts is the number of combinations examined in all
// cases.
type Result struct {
	Outcome  Outcome
	Board    board.Board
	Chosen   []int
	Attempts uint64
}

// Solver enumerates all combinations of one candidate cell per region and
// validates each against the row, column, and one-step-diagonal constraints.
//
// Solver is not safe for concurrent use; it owns exactly one scratch board.
type Solver struct {
	rows, cols int
	candidates [][]int
	masks      []board.Board
	opts       options
}

// New creates a solver for the given grid shape and ordered regions.
// Region candidates outside the grid are rejected up front; everything else
// (region count vs. rows, overlapping regions) is left to the per-cell
// checks, so malformed inputs tend to fail quickly rather than error.
func New(rows, cols int, regions []puzzle.Region, optFns ...Option) (*Solver, error) {
	if _, err := board.New(rows, cols); err != nil {
		return nil, err
	}

	s := &Solver{
		rows:       rows,
		cols:       cols,
		candidates: make([][]int, 0, len(regions)),
		masks:      make([]board.Board, 0, len(regions)),
		opts:       applyOptions(optFns),
	}
	for _, region := range regions {
		mask, err := region.Mask(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("solver: region %q: %w", region.Symbol(), err)
		}
		s.candidates = append(s.candidates, region.CandidateList())
		s.masks = append(s.masks, mask)
	}
	return s, nil
}

// FromPuzzle creates a solver for a parsed puzzle.
func FromPuzzle(p *puzzle.Puzzle, optFns ...Option) (*Solver, error) {
	return New(p.Rows, p.Cols, p.Regions, optFns...)
}

// Solve runs the brute-force search and returns the first valid assignment,
// exhaustion, or a budget stop. The attempt counter is 1-based and
// increments exactly once per combination examined; on exhaustion it equals
// the product of the regions' candidate counts.
//
// Context cancellation is checked between combinations and surfaces as a
// non-nil error, distinct from both exhaustion and a budget stop.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	s.opts.logger.Debug("solve started",
		"rows", s.rows,
		"cols", s.cols,
		"regions", len(s.candidates),
	)

	scratch := board.MustNew(s.rows, s.cols)
	report := rate.Sometimes{Interval: s.opts.progressInterval}

	var attempts uint64
	for combo := range combinations(s.candidates) {
		if attempts&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Attempts: attempts}, err
			}
		}
		attempts++
		if s.opts.maxAttempts > 0 && attempts > s.opts.maxAttempts {
			s.opts.logger.Info("solve stopped at budget", "attempts", attempts-1)
			return Result{Outcome: OutcomeBudgetExceeded, Attempts: attempts - 1}, nil
		}
		if s.opts.progress != nil {
			report.Do(func() { s.opts.progress(attempts) })
		}

		if !validate(&scratch, combo) {
			continue
		}

		chosen := slices.Clone(combo)
		final, err := s.replay(chosen)
		if err != nil {
			return Result{Attempts: attempts}, err
		}
		s.opts.logger.Info("solution found", "attempts", attempts)
		return Result{Outcome: OutcomeFound, Board: final, Chosen: chosen, Attempts: attempts}, nil
	}

	s.opts.logger.Info("search exhausted", "attempts", attempts)
	return Result{Outcome: OutcomeExhausted, Attempts: attempts}, nil
}

// validate checks one full combination on the scratch board: every chosen
// cell must have no set one-step diagonal neighbor and no other set cell in
// its row or column. The first failing cell abandons the combination.
func validate(scratch *board.Board, combo []int) bool {
	scratch.Fill(false)
	for _, idx := range combo {
		scratch.Set(idx, true)
	}
	for _, idx := range combo {
		// Clear the cell under test so the line scans only see others.
		scratch.Set(idx, false)
		row, col := scratch.RowColOf(idx)
		if scratch.Get(row-1, col-1) || scratch.Get(row-1, col+1) ||
			scratch.Get(row+1, col-1) || scratch.Get(row+1, col+1) {
			return false
		}
		for v := range scratch.Row(row) {
			if v {
				return false
			}
		}
		for v := range scratch.Col(col) {
			if v {
				return false
			}
		}
		scratch.Set(idx, true)
	}
	return true
}

// replay drives an accepted combination through the placement engine to
// produce the fully blocked result board. A failure here means the regions
// were malformed (e.g. overlapping); it is surfaced, not skipped.
func (s *Solver) replay(chosen []int) (board.Board, error) {
	b := board.MustNew(s.rows, s.cols)
	var err error
	for i, idx := range chosen {
		if b, err = b.Place(idx, s.masks[i]); err != nil {
			return board.Board{}, fmt.Errorf("solver: replay of accepted combination: %w", err)
		}
	}
	return b, nil
}
