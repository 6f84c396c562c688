package geometry

import (
	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

// Emit converts a grid — original or resized — into ordered path
// primitive sequences, one per disjoint outline, primary outline first.
// Each path begins with a MoveTo at its first anchor and continues with
// a LineTo per subsequent traversal anchor; spurs attached to a closed
// outline are walked out and back as part of that outline's trail.
//
// Returns ErrNoPaths when the grid has no traceable structure.
// Complexity: O(W×H).
func Emit(g *template.Grid, opts Options) ([]Path, error) {
	outlines := topology.Trace(g)
	if len(outlines) == 0 {
		return nil, ErrNoPaths
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	paths := make([]Path, 0, len(outlines))
	for _, o := range outlines {
		trail := o.Trail
		if o.Closed {
			// The trail ends where it began; Closed carries that instead
			// of a duplicate point.
			trail = trail[:len(trail)-1]
		}
		if len(trail) < 2 {
			continue
		}
		p := Path{Closed: o.Closed, Primitives: make([]Primitive, len(trail))}
		for i, ai := range trail {
			a := o.Anchors[ai]
			op := LineTo
			if i == 0 {
				op = MoveTo
			}
			p.Primitives[i] = Primitive{
				Op: op,
				To: Pt(float64(a.X), float64(a.Y)).Mul(opts.Scale).Add(opts.Offset),
			}
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	return paths, nil
}
