// Package board provides a fixed-capacity bit-packed boolean grid and the
// marker placement engine built on top of it.
//
// Architecture:
//   - Dense storage: [3]uint64 words, 192 cells maximum
//   - Value semantics: Board is a small comparable value; all updates are
//     functional (Place returns a new Board, never mutates its receiver)
//   - Bulk line operations resolve to word-granularity masks via math/bits
//
// Cells are addressed by row-major linear index (idx = row*cols + col).
// A set bit means the cell is occupied by a marker or blocked by the reach
// of a previously placed marker.
package board
