package board

import (
	"fmt"
	"strings"
)

// String renders the board as a grid of glyphs, one row per line: "X" for a
// set cell, "." for an unset one, separated by spaces.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.Get(r, c) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reconstructs a board of the given shape from rendered glyph
// text. It is the inverse of String: parsing a rendered board reproduces
// the exact set-cell collection.
func ParseGrid(s string, rows, cols int) (Board, error) {
	b, err := New(rows, cols)
	if err != nil {
		return Board{}, err
	}
	glyphs := strings.Fields(s)
	if len(glyphs) != rows*cols {
		return Board{}, fmt.Errorf("render: expected %d glyphs, got %d", rows*cols, len(glyphs))
	}
	for i, g := range glyphs {
		switch g {
		case "X":
			b.Set(i, true)
		case ".":
		default:
			return Board{}, fmt.Errorf("render: unexpected glyph %q at cell %d", g, i)
		}
	}
	return b, nil
}
