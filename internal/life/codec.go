package life

import (
	"strings"
	"unicode/utf8"
)

// Decode parses a delimited text seed into a rectangular boolean grid.
//
// The seed is trimmed of surrounding whitespace and split on the separator
// rune. The column count is the rune length of the longest row; shorter rows
// are right-padded with dead cells. Symbols are compared per Unicode scalar,
// so multi-byte alive/dead/separator glyphs work. Any character outside the
// symbol pair aborts the decode with InvalidSeedCharacterError.
func Decode(seed string, opts TextOptions) ([][]bool, error) {
	opts = opts.WithDefaults()
	// The three symbols must be pairwise distinct or the encoding is
	// ambiguous.
	if opts.Alive == opts.Dead || opts.Separator == opts.Alive || opts.Separator == opts.Dead {
		return nil, InvalidSeparatorError{Separator: opts.Separator}
	}

	rows := strings.Split(strings.TrimSpace(seed), string(opts.Separator))

	cols := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > cols {
			cols = n
		}
	}

	grid := make([][]bool, len(rows))
	for i, row := range rows {
		grid[i] = make([]bool, cols)
		col := 0
		for _, r := range row {
			switch r {
			case opts.Alive:
				grid[i][col] = true
			case opts.Dead:
				// pre-filled false
			default:
				return nil, InvalidSeedCharacterError{Char: r, Alive: opts.Alive, Dead: opts.Dead}
			}
			col++
		}
	}
	return grid, nil
}

// Encode serializes a grid into the delimited text form Decode accepts: one
// symbol per cell, rows joined by the separator, no trailing separator. It
// is the left inverse of Decode for rectangular grids over the same symbols.
func Encode(grid [][]bool, opts TextOptions) string {
	opts = opts.WithDefaults()

	var b strings.Builder
	if rows := len(grid); rows > 0 {
		b.Grow(rows*len(grid[0]) + rows)
	}
	for i, row := range grid {
		if i > 0 {
			b.WriteRune(opts.Separator)
		}
		for _, alive := range row {
			if alive {
				b.WriteRune(opts.Alive)
			} else {
				b.WriteRune(opts.Dead)
			}
		}
	}
	return b.String()
}
