// Package queens solves constraint-satisfaction placement puzzles: on an
// R×C grid partitioned into named regions, place exactly one marker per row,
// per column, and per region such that no two markers touch diagonally.
//
// # Quick Start
//
//	ctx := context.Background()
//	result, err := queens.SolveGrid(ctx,
//	    "11112333 11222344 11255346 77253344 73355334 77335344 87355333 77333333")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Outcome == solver.OutcomeFound {
//	    fmt.Print(result.Board)
//	}
//
// # Architecture
//
// The core is deliberately a correctness-first brute-force engine:
//
//   - board: fixed-capacity bit-packed grid (192 cells) plus the placement
//     engine. A successful placement returns a new board with the marker's
//     entire reach blocked out (row, column, diagonal neighbors, region).
//   - puzzle: text-grid parser and immutable region sets.
//   - solver: lazy Cartesian-product enumeration of one candidate per
//     region with per-combination short-circuit validation. No
//     forward-checking, no heuristic ordering.
//   - store: zstd-compressed puzzle packs for batch solving.
//
// # Outcomes
//
// A solve run ends in one of three states: a solution was found, the whole
// product was examined and no solution exists (an exhaustive proof), or a
// caller-imposed attempt budget ran out first (nothing proven). The three
// are never conflated.
package queens
