// Package template defines core types and options for the template
// subpackage of github.com/katalvlaran/siegegrid.
package template

// Cell classifies one grid position. Exactly one classification per
// position; the mapping to runes is bit-exact in both directions.
type Cell uint8

const (
	// Empty is unoccupied space, rune ' '.
	Empty Cell = iota
	// Corner is a structural joint, rune '+'.
	Corner
	// WallHorizontal is a horizontal wall run cell, rune '-'.
	WallHorizontal
	// WallVertical is a vertical wall run cell, rune '|'.
	WallVertical
	// Floor is an interior fill cell, rune '.'.
	Floor
	// GroundAnchor is a fixed ground contact point, rune 'o'.
	GroundAnchor
)

// Rune returns the template rune for the cell.
func (c Cell) Rune() rune {
	switch c {
	case Corner:
		return '+'
	case WallHorizontal:
		return '-'
	case WallVertical:
		return '|'
	case Floor:
		return '.'
	case GroundAnchor:
		return 'o'
	default:
		return ' '
	}
}

// String implements fmt.Stringer on Cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Corner:
		return "Corner"
	case WallHorizontal:
		return "WallHorizontal"
	case WallVertical:
		return "WallVertical"
	case Floor:
		return "Floor"
	case GroundAnchor:
		return "GroundAnchor"
	default:
		return "Cell(?)"
	}
}

// cellOf maps a template rune to its Cell. ok is false for runes
// outside the template character set.
func cellOf(r rune) (c Cell, ok bool) {
	switch r {
	case ' ':
		return Empty, true
	case '+':
		return Corner, true
	case '-':
		return WallHorizontal, true
	case '|':
		return WallVertical, true
	case '.':
		return Floor, true
	case 'o':
		return GroundAnchor, true
	default:
		return Empty, false
	}
}

// Junction is the neighbor-derived classification of a Corner cell,
// computed once during Parse from the finished rune grid.
type Junction uint8

const (
	// JunctionNone marks a non-corner cell, or an isolated '+'.
	JunctionNone Junction = iota
	// JunctionCorner marks a '+' touching both a horizontal-bearing and
	// a vertical-bearing neighbor: a true structural corner.
	JunctionCorner
	// JunctionHRun marks a '+' inside or terminating a horizontal run.
	JunctionHRun
	// JunctionVRun marks a '+' inside or terminating a vertical run.
	JunctionVRun
)

// String implements fmt.Stringer on Junction.
func (j Junction) String() string {
	switch j {
	case JunctionCorner:
		return "JunctionCorner"
	case JunctionHRun:
		return "JunctionHRun"
	case JunctionVRun:
		return "JunctionVRun"
	default:
		return "JunctionNone"
	}
}

// ParseOptions contains tunable parameters for template parsing.
type ParseOptions struct {
	// Strict rejects ragged rows with ErrNonRectangular. The default is
	// to right-pad shorter rows with Empty, since hand-drawn templates
	// rarely carry trailing spaces.
	Strict bool
}

// DefaultParseOptions returns a ParseOptions with default settings:
// Strict=false (ragged rows are padded with Empty cells).
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Strict: false}
}
