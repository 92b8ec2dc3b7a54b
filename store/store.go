// Package store persists puzzle packs: named collections of text-grid
// puzzles, JSON-encoded and zstd-compressed.
//
// The solving core has no persistence surface of its own; packs exist so
// that puzzle collections can be shipped and batch-solved by the CLI.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/queens/puzzle"
)

// ErrEmptyPack is returned when reading a pack with no entries.
var ErrEmptyPack = errors.New("store: pack has no entries")

// Entry is one named puzzle in a pack. Grid holds the raw text-grid
// definition; it is parsed on demand.
type Entry struct {
	Name string `json:"name"`
	Grid string `json:"grid"`
}

// Puzzle parses the entry's grid.
func (e Entry) Puzzle() (*puzzle.Puzzle, error) {
	p, err := puzzle.Parse(e.Grid)
	if err != nil {
		return nil, fmt.Errorf("store: entry %q: %w", e.Name, err)
	}
	return p, nil
}

// Pack is a collection of puzzle entries.
type Pack struct {
	Entries []Entry `json:"entries"`
}

// WritePack JSON-encodes the pack and writes it zstd-compressed to w.
func WritePack(w io.Writer, pack *Pack) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("store: create encoder: %w", err)
	}
	if err := json.NewEncoder(enc).Encode(pack); err != nil {
		enc.Close()
		return fmt.Errorf("store: encode pack: %w", err)
	}
	return enc.Close()
}

// ReadPack reads a zstd-compressed, JSON-encoded pack from r.
func ReadPack(r io.Reader) (*Pack, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("store: create decoder: %w", err)
	}
	defer dec.Close()

	var pack Pack
	if err := json.NewDecoder(dec.IOReadCloser()).Decode(&pack); err != nil {
		return nil, fmt.Errorf("store: decode pack: %w", err)
	}
	if len(pack.Entries) == 0 {
		return nil, ErrEmptyPack
	}
	return &pack, nil
}

// SavePack writes the pack to a file.
func SavePack(path string, pack *Pack) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := WritePack(f, pack); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadPack reads a pack from a file.
func LoadPack(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()
	return ReadPack(f)
}
