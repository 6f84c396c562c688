package topology

import (
	"github.com/katalvlaran/siegegrid/template"
)

// heading is a unit step on the grid.
type heading struct{ dx, dy int }

var (
	east  = heading{1, 0}
	south = heading{0, 1}
)

// turnLeft rotates the heading toward the walker's left hand
// (east→north, south→east, west→south, north→west).
func turnLeft(h heading) heading { return heading{h.dy, -h.dx} }

// turnRight rotates the heading toward the walker's right hand.
func turnRight(h heading) heading { return heading{-h.dy, h.dx} }

// turnBack reverses the heading.
func turnBack(h heading) heading { return heading{-h.dx, -h.dy} }

// tracer walks wall cells over one grid, keeping per-cell and
// per-directed-edge visit state shared across outlines.
type tracer struct {
	g       *template.Grid
	visited []bool
	edges   map[[4]int]bool
}

func newTracer(g *template.Grid) *tracer {
	return &tracer{
		g:       g,
		visited: make([]bool, g.Width()*g.Height()),
		edges:   make(map[[4]int]bool),
	}
}

func (t *tracer) seen(x, y int) bool  { return t.visited[y*t.g.Width()+x] }
func (t *tracer) visit(x, y int)      { t.visited[y*t.g.Width()+x] = true }
func (t *tracer) edgeKey(x, y, nx, ny int) [4]int { return [4]int{x, y, nx, ny} }

// traversable reports whether the cell carries any wall run.
func (t *tracer) traversable(x, y int) bool {
	return t.g.CanHorizontal(x, y) || t.g.CanVertical(x, y)
}

// anchorCell reports whether the cell is recorded as an anchor.
func anchorCell(g *template.Grid, x, y int) bool {
	c := g.At(x, y)
	return c == template.Corner || c == template.GroundAnchor
}

// stepOK reports whether the walk may move from (x,y) one step along h.
// Horizontal movement needs horizontal bearing on both cells, vertical
// movement vertical bearing.
func (t *tracer) stepOK(x, y int, h heading) bool {
	nx, ny := x+h.dx, y+h.dy
	if !t.g.InBounds(nx, ny) {
		return false
	}
	if h.dy == 0 {
		return t.g.CanHorizontal(x, y) && t.g.CanHorizontal(nx, ny)
	}
	return t.g.CanVertical(x, y) && t.g.CanVertical(nx, ny)
}

// roleOf resolves the topological role of an anchor cell from its
// junction classification and neighbor count.
func roleOf(g *template.Grid, x, y int) AnchorRole {
	if g.At(x, y) == template.GroundAnchor {
		return RoleGround
	}
	switch g.JunctionAt(x, y) {
	case template.JunctionCorner:
		return RoleCorner
	case template.JunctionHRun:
		if connCount(g, x, y) == 1 {
			return RoleTerminal
		}
		return RolePassThrough
	case template.JunctionVRun:
		if connCount(g, x, y) == 1 {
			return RoleTerminal
		}
		return RolePassThrough
	default:
		return RoleTerminal
	}
}

// connCount counts the wall connections of the cell at (x,y).
// Out-of-bounds neighbors read as Empty and bear nothing.
func connCount(g *template.Grid, x, y int) int {
	n := 0
	if g.CanHorizontal(x, y) {
		if g.CanHorizontal(x-1, y) {
			n++
		}
		if g.CanHorizontal(x+1, y) {
			n++
		}
	}
	if g.CanVertical(x, y) {
		if g.CanVertical(x, y-1) {
			n++
		}
		if g.CanVertical(x, y+1) {
			n++
		}
	}
	return n
}

// Trace walks every connected wall structure in the grid and returns
// one Outline per structure, primary first. Starting points are chosen
// in reading order, corners before ground anchors before bare wall
// cells, so the primary outline begins at the top-left-most corner and
// runs clockwise.
func Trace(g *template.Grid) []Outline {
	t := newTracer(g)
	var outlines []Outline

	for _, phase := range []func(x, y int) bool{
		func(x, y int) bool { return g.At(x, y) == template.Corner },
		func(x, y int) bool { return g.At(x, y) == template.GroundAnchor },
		t.traversable,
	} {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if t.seen(x, y) || !phase(x, y) || !t.traversable(x, y) {
					continue
				}
				if o, ok := t.walk(x, y); ok {
					outlines = append(outlines, o)
				}
			}
		}
	}

	return outlines
}

// walk traces a single outline starting at (sx,sy). The walk prefers
// left turn, then straight, then right turn, then reversing, which hugs
// the boundary clockwise and detours out and back along spurs. Each
// directed edge is traversed at most once. ok is false for isolated
// single cells.
func (t *tracer) walk(sx, sy int) (Outline, bool) {
	// Clockwise from the top-left-most cell means leaving east when
	// possible, then south; west/north only occur for spurs whose upper
	// end is already part of another outline.
	var init heading
	found := false
	for _, d := range []heading{east, south, turnBack(east), turnBack(south)} {
		if t.stepOK(sx, sy, d) {
			init = d
			found = true
			break
		}
	}
	if !found {
		t.visit(sx, sy)
		return Outline{}, false
	}

	o := Outline{}
	index := make(map[[2]int]int)
	record := func(x, y int) {
		if n := len(o.Trail); n > 0 {
			last := o.Anchors[o.Trail[n-1]]
			if last.X == x && last.Y == y {
				return
			}
		}
		i, ok := index[[2]int{x, y}]
		if !ok {
			i = len(o.Anchors)
			index[[2]int{x, y}] = i
			o.Anchors = append(o.Anchors, Anchor{X: x, Y: y, Role: roleOf(t.g, x, y)})
		}
		o.Trail = append(o.Trail, i)
	}

	x, y, h := sx, sy, init
	t.visit(x, y)
	record(x, y)

	// Each directed edge is used at most once, so 4·W·H bounds the walk.
	maxSteps := 4 * t.g.Width() * t.g.Height()
	for step := 0; step < maxSteps; step++ {
		var next heading
		found := false
		for _, d := range []heading{turnLeft(h), h, turnRight(h), turnBack(h)} {
			if !t.stepOK(x, y, d) {
				continue
			}
			if t.edges[t.edgeKey(x, y, x+d.dx, y+d.dy)] {
				continue
			}
			next = d
			found = true
			break
		}
		if !found {
			break
		}
		if next != h {
			// Direction change happens on the current cell; make sure it
			// is in the trail even when it is a bare wall cell.
			record(x, y)
		}
		t.edges[t.edgeKey(x, y, x+next.dx, y+next.dy)] = true
		x, y, h = x+next.dx, y+next.dy, next
		t.visit(x, y)
		if anchorCell(t.g, x, y) {
			record(x, y)
		}
		if x == sx && y == sy {
			// Arriving back along the mirror of the first departing edge
			// is a pure backtrack, not a closed polygon.
			o.Closed = h != turnBack(init)
			record(x, y)
			break
		}
	}

	return o, true
}
