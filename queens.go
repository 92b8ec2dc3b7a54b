package queens

import (
	"context"

	"github.com/hupe1980/queens/puzzle"
	"github.com/hupe1980/queens/solver"
)

// Solve runs the brute-force search for a parsed puzzle.
func Solve(ctx context.Context, p *puzzle.Puzzle, optFns ...Option) (solver.Result, error) {
	o := applyOptions(optFns)

	s, err := solver.FromPuzzle(p, append(o.solverOpts, solver.WithLogger(o.logger.Logger))...)
	if err != nil {
		return solver.Result{}, err
	}

	result, err := s.Solve(ctx)
	o.logger.LogSolve(ctx, result.Outcome.String(), result.Attempts, err)
	return result, err
}

// SolveGrid parses a text-grid puzzle definition and solves it. The grid is
// whitespace-separated, one symbol per cell; identical symbols denote the
// same region:
//
//	result, err := queens.SolveGrid(ctx, "11111 22222 33333 44444 55555")
func SolveGrid(ctx context.Context, input string, optFns ...Option) (solver.Result, error) {
	o := applyOptions(optFns)

	p, err := puzzle.Parse(input)
	if err != nil {
		o.logger.LogParse(ctx, 0, 0, 0, err)
		return solver.Result{}, err
	}
	o.logger.LogParse(ctx, p.Rows, p.Cols, len(p.Regions), nil)

	return Solve(ctx, p, optFns...)
}
