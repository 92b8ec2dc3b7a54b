package solver

import "iter"

// combinations returns the lazy Cartesian product of the candidate lists:
// one chosen index per list, first list varying slowest and the last one
// fastest, candidates in ascending order within each list. The product is
// never materialized; the yielded slice is reused between iterations and
// must be copied if retained.
//
// Any empty candidate list makes the product empty. An empty family of
// lists yields a single empty combination.
func combinations(cands [][]int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, c := range cands {
			if len(c) == 0 {
				return
			}
		}
		pos := make([]int, len(cands))
		buf := make([]int, len(cands))
		for {
			for i, p := range pos {
				buf[i] = cands[i][p]
			}
			if !yield(buf) {
				return
			}
			// Odometer increment, last list fastest.
			i := len(cands) - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < len(cands[i]) {
					break
				}
				pos[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
