package template

import "strings"

// Grid is an immutable rectangular matrix of cells. (0,0) is the top
// left; x grows right, y grows down. A Grid is always at least 1×1 and
// every row has the same length.
type Grid struct {
	width, height int
	cells         []Cell     // row-major, len = width*height
	junctions     []Junction // parallel to cells, JunctionNone off corners
}

// FromCells constructs a Grid from a non-empty, rectangular 2D slice of
// cells. It deep-copies the input to ensure immutability and runs the
// corner classification pass.
// Returns ErrEmptyTemplate if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyTemplate
	}
	h, w := len(cells), len(cells[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Cell, w*h),
	}
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	g.classifyCorners()

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x,y). Out-of-bounds positions read as Empty,
// which keeps neighbor inspection branch-free at the edges.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// JunctionAt returns the neighbor-derived classification of the corner
// cell at (x,y), or JunctionNone for non-corner cells.
func (g *Grid) JunctionAt(x, y int) Junction {
	if !g.InBounds(x, y) {
		return JunctionNone
	}
	return g.junctions[y*g.width+x]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CanHorizontal reports whether the cell at (x,y) carries a horizontal
// wall run: horizontal walls, ground anchors, and corners not locked
// into a vertical run.
func (g *Grid) CanHorizontal(x, y int) bool {
	switch g.At(x, y) {
	case WallHorizontal, GroundAnchor:
		return true
	case Corner:
		return g.JunctionAt(x, y) != JunctionVRun
	default:
		return false
	}
}

// CanVertical reports whether the cell at (x,y) carries a vertical wall
// run: vertical walls, ground anchors, and corners not locked into a
// horizontal run.
func (g *Grid) CanVertical(x, y int) bool {
	switch g.At(x, y) {
	case WallVertical, GroundAnchor:
		return true
	case Corner:
		return g.JunctionAt(x, y) != JunctionHRun
	default:
		return false
	}
}

// Equal reports whether both grids have identical dimensions and
// identical cells at every position.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}

	return true
}

// String re-renders the grid as template text: one line per row,
// trailing Empty cells trimmed, rows joined with '\n'. The result
// re-parses to an identical Grid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		end := g.width
		for end > 0 && g.cells[y*g.width+end-1] == Empty {
			end--
		}
		for x := 0; x < end; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune())
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// bearing reported by a neighbor cell when classifying a '+'.
func bearsHorizontal(c Cell) bool {
	return c == WallHorizontal || c == Corner || c == GroundAnchor
}

func bearsVertical(c Cell) bool {
	return c == WallVertical || c == Corner || c == GroundAnchor
}

// classifyCorners runs the single neighbor pass over the finished cell
// grid. Each '+' is classified from its four neighbors; the pass is
// order-independent because it only reads cells, never junctions.
func (g *Grid) classifyCorners() {
	g.junctions = make([]Junction, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) != Corner {
				continue
			}
			horiz := bearsHorizontal(g.At(x-1, y)) || bearsHorizontal(g.At(x+1, y))
			vert := bearsVertical(g.At(x, y-1)) || bearsVertical(g.At(x, y+1))
			var j Junction
			switch {
			case horiz && vert:
				j = JunctionCorner
			case horiz:
				j = JunctionHRun
			case vert:
				j = JunctionVRun
			default:
				j = JunctionNone
			}
			g.junctions[y*g.width+x] = j
		}
	}
}
