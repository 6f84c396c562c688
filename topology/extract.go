package topology

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/template"
)

// Extract consumes a disambiguated Grid and produces the canonical
// Template: anchors in clockwise outline order and the segments between
// them. The primary outline must close and must form a real polygon.
//
// Returns ErrNoStructure when the grid has no wall cells,
// ErrOpenOutline when the primary outline does not return to its start,
// and ErrDegenerate for structures with fewer than 3 anchors or fewer
// than 3 turns.
// Complexity: O(W×H) time and memory.
func Extract(g *template.Grid) (*Template, error) {
	outlines := Trace(g)
	if len(outlines) == 0 {
		return nil, ErrNoStructure
	}
	primary := outlines[0]
	if !primary.Closed {
		a := primary.Anchors[primary.Trail[len(primary.Trail)-1]]
		return nil, fmt.Errorf("%w: trace ends at (%d,%d)", ErrOpenOutline, a.X, a.Y)
	}
	if len(primary.Anchors) < 3 || turnCount(primary) < 3 {
		return nil, fmt.Errorf("%w: %d anchors, %d turns",
			ErrDegenerate, len(primary.Anchors), turnCount(primary))
	}

	return &Template{
		Grid:     g,
		Anchors:  primary.Anchors,
		Segments: segmentsOf(primary),
	}, nil
}

// OrientationSequence returns the clockwise sequence of segment
// orientations — the shape signature compared across resizes.
func (t *Template) OrientationSequence() []Orientation {
	seq := make([]Orientation, len(t.Segments))
	for i, s := range t.Segments {
		seq[i] = s.Orientation
	}
	return seq
}

// turnCount counts the direction changes along a closed trail.
func turnCount(o Outline) int {
	n := len(o.Trail)
	if n < 3 {
		return 0
	}
	legs := make([]Orientation, 0, n-1)
	for i := 0; i+1 < n; i++ {
		a, b := o.Anchors[o.Trail[i]], o.Anchors[o.Trail[i+1]]
		legs = append(legs, legOrientation(a, b))
	}
	turns := 0
	for i := range legs {
		if legs[i] != legs[(i+1)%len(legs)] {
			turns++
		}
	}
	return turns
}

func legOrientation(a, b Anchor) Orientation {
	if a.Y == b.Y {
		return Horizontal
	}
	return Vertical
}

// segmentsOf builds the segment list from a trail. A spur is walked out
// and back, so the mirror of an already-recorded leg is skipped.
func segmentsOf(o Outline) []Segment {
	type key struct {
		ax, ay, bx, by int
	}
	seen := make(map[key]bool)
	var segs []Segment
	for i := 0; i+1 < len(o.Trail); i++ {
		ai, bi := o.Trail[i], o.Trail[i+1]
		a, b := o.Anchors[ai], o.Anchors[bi]
		k := key{a.X, a.Y, b.X, b.Y}
		if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
			k = key{b.X, b.Y, a.X, a.Y}
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		segs = append(segs, Segment{
			Orientation: legOrientation(a, b),
			Start:       ai,
			End:         bi,
			Length:      manhattan(a, b) - 1,
		})
	}
	return segs
}

func manhattan(a, b Anchor) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
