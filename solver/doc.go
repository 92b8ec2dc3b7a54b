// Package solver implements the brute-force search over region-candidate
// combinations.
//
// The solver enumerates the Cartesian product of the regions' candidate
// lists lazily, one full combination at a time, and validates each
// combination against the row, column, and one-step-diagonal constraints
// with short-circuit rejection. No pruning happens across partial
// assignments: validation always re-examines a full combination, trading
// peak throughput for implementation simplicity.
//
// Solving is strictly single-threaded and performs no I/O inside the search
// loop; the only mutable state is a single scratch board that is fully reset
// before each combination.
package solver
