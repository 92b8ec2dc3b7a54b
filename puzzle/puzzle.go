package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/queens/board"
)

// ErrEmptyInput is returned when the puzzle text contains no rows.
var ErrEmptyInput = errors.New("puzzle: empty input")

// Puzzle is a parsed placement puzzle: a grid shape plus its regions,
// ordered by symbol for deterministic solver enumeration.
type Puzzle struct {
	Rows    int
	Cols    int
	Regions []Region
}

// Parse reads a whitespace-separated text grid, one printable ASCII symbol
// per cell, where identical symbols denote the same region. For example:
//
//	"11233456 12234456 11233456 12273456 11233456 88885556 66888886 66666666"
//
// Rows must all have the same length and the total cell count must fit the
// board capacity. Malformed input is rejected with a diagnostic; it never
// reaches the solving core.
func Parse(input string) (*Puzzle, error) {
	rows := strings.Fields(input)
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows)*cols > board.MaxCells {
		return nil, &board.ErrTooManyCells{Rows: len(rows), Cols: cols}
	}

	bySymbol := make(map[rune]*roaring.Bitmap)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("puzzle: row %d has %d cells, expected %d", r, len(runes), cols)
		}
		for c, sym := range runes {
			if sym <= ' ' || sym > '~' {
				return nil, fmt.Errorf("puzzle: row %d col %d: symbol %q out of range", r, c, sym)
			}
			rb, ok := bySymbol[sym]
			if !ok {
				rb = roaring.New()
				bySymbol[sym] = rb
			}
			rb.Add(uint32(r*cols + c))
		}
	}

	symbols := make([]rune, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	regions := make([]Region, 0, len(symbols))
	for _, sym := range symbols {
		regions = append(regions, Region{symbol: sym, cells: bySymbol[sym]})
	}

	return &Puzzle{Rows: len(rows), Cols: cols, Regions: regions}, nil
}

// Cells returns the total cell count of the grid.
func (p *Puzzle) Cells() int { return p.Rows * p.Cols }

// Validate checks that the regions partition the grid exactly: every cell
// covered by exactly one region, no index out of range. Puzzles built by
// Parse satisfy this by construction; programmatically assembled puzzles
// should be validated before solving.
func (p *Puzzle) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return board.ErrInvalidShape
	}
	cells := p.Cells()
	if cells > board.MaxCells {
		return &board.ErrTooManyCells{Rows: p.Rows, Cols: p.Cols}
	}

	covered := bitset.New(uint(cells))
	for _, region := range p.Regions {
		for idx := range region.Candidates() {
			if idx >= cells {
				return fmt.Errorf("puzzle: region %q: index %d out of range (cells %d)",
					region.Symbol(), idx, cells)
			}
			if covered.Test(uint(idx)) {
				return fmt.Errorf("puzzle: cell %d belongs to more than one region", idx)
			}
			covered.Set(uint(idx))
		}
	}
	if got := int(covered.Count()); got != cells {
		return fmt.Errorf("puzzle: regions cover %d of %d cells", got, cells)
	}
	return nil
}
