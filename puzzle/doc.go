// Package puzzle defines puzzle regions and the text-grid parser.
//
// A puzzle is an R×C grid partitioned into named regions, one printable
// symbol per cell; identical symbols denote the same region. Regions hold
// their candidate cell indices in a roaring bitmap and are immutable once
// parsed.
package puzzle
