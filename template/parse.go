package template

import (
	"fmt"
	"strings"
)

// Parse turns raw template text into a Grid. One line per grid row;
// trailing whitespace is trimmed from every line; blank leading and
// trailing lines are dropped. With the default options shorter rows are
// right-padded with Empty; ParseOptions.Strict rejects them instead.
//
// Returns ErrEmptyTemplate when no content remains after trimming,
// ErrNonRectangular for ragged rows in Strict mode, and ErrUnknownRune
// (wrapped with the offending rune and position) for any rune outside
// the template character set.
// Complexity: O(W×H) time and memory.
func Parse(text string, opts ParseOptions) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	// Drop blank lines at both ends; blank interior lines stay, they are
	// legitimate Empty rows between disjoint sub-structures.
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return nil, ErrEmptyTemplate
	}

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if opts.Strict {
		for y, line := range lines {
			if len([]rune(line)) != width {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
					ErrNonRectangular, y, len([]rune(line)), width)
			}
		}
	}

	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, width)
		for x, r := range []rune(line) {
			c, ok := cellOf(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownRune, r, x, y)
			}
			row[x] = c
		}
		cells[y] = row
	}

	return FromCells(cells)
}

// MustParse is a test and example helper that panics on parse failure.
func MustParse(text string) *Grid {
	g, err := Parse(text, DefaultParseOptions())
	if err != nil {
		panic(err)
	}
	return g
}
