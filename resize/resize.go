package resize

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

// MinSize returns the smallest feasible target dimensions for the
// template: one column/row per structural coordinate plus one per
// non-empty interior between them, counting every disjoint structure
// in the grid.
func MinSize(t *topology.Template) (width, height int) {
	ax, ay := axesOf(t)
	return ax.minSize(), ay.minSize()
}

// Resize produces a new template of exactly width × height cells that
// is structurally isomorphic to t: same anchor count, same connectivity,
// same clockwise sequence of segment orientations. Ground anchors keep
// their proportional horizontal offsets and stay on the bottom-most
// structural row. Disjoint secondary structures scale along with the
// primary outline.
//
// Returns ErrTooSmall (wrapped with axis, minimum and requested size)
// when a target dimension cannot accommodate the structure, and
// ErrDegenerateSegment if the resized grid fails the isomorphism check
// — an internal invariant violation that valid inputs never trigger.
// Complexity: O(W'×H' + W×H) time, O(W'×H') memory.
func Resize(t *topology.Template, width, height int) (*topology.Template, error) {
	ax, ay := axesOf(t)

	newXs, err := ax.scaleTo(width)
	if err != nil {
		return nil, err
	}
	newYs, err := ay.scaleTo(height)
	if err != nil {
		return nil, err
	}

	srcCol := sourceMap(ax, newXs, width)
	srcRow := sourceMap(ay, newYs, height)

	cells := make([][]template.Cell, height)
	for y := 0; y < height; y++ {
		row := make([]template.Cell, width)
		if srcRow[y] >= 0 {
			for x := 0; x < width; x++ {
				if srcCol[x] >= 0 {
					row[x] = t.Grid.At(srcCol[x], srcRow[y])
				}
			}
		}
		cells[y] = row
	}

	grid, err := template.FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: re-lay failed: %v", ErrDegenerateSegment, err)
	}
	resized, err := topology.Extract(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: re-extract failed: %v", ErrDegenerateSegment, err)
	}
	if err := verifyIsomorphic(t, resized); err != nil {
		return nil, err
	}
	if err := verifyOutlines(t.Grid, grid); err != nil {
		return nil, err
	}

	return resized, nil
}

// axesOf projects the anchors of every traced outline onto both axes,
// so disjoint secondary structures keep their structural coordinates
// through the re-lay.
func axesOf(t *topology.Template) (ax, ay axis) {
	var xs, ys []int
	for _, o := range topology.Trace(t.Grid) {
		for _, a := range o.Anchors {
			xs = append(xs, a.X)
			ys = append(ys, a.Y)
		}
	}
	ax = planAxis("width", xs, t.Grid.Width())
	ay = planAxis("height", ys, t.Grid.Height())
	return ax, ay
}

// verifyIsomorphic checks the output guarantee: anchor count, anchor
// roles in traversal order, and the clockwise orientation sequence all
// survive the resize unchanged.
func verifyIsomorphic(src, dst *topology.Template) error {
	if len(src.Anchors) != len(dst.Anchors) {
		return fmt.Errorf("%w: %d anchors became %d",
			ErrDegenerateSegment, len(src.Anchors), len(dst.Anchors))
	}
	for i := range src.Anchors {
		if src.Anchors[i].Role != dst.Anchors[i].Role {
			return fmt.Errorf("%w: anchor %d role %s became %s",
				ErrDegenerateSegment, i, src.Anchors[i].Role, dst.Anchors[i].Role)
		}
	}
	so, do := src.OrientationSequence(), dst.OrientationSequence()
	if len(so) != len(do) {
		return fmt.Errorf("%w: %d segments became %d", ErrDegenerateSegment, len(so), len(do))
	}
	for i := range so {
		if so[i] != do[i] {
			return fmt.Errorf("%w: segment %d flipped orientation", ErrDegenerateSegment, i)
		}
	}
	for i := range src.Segments {
		if src.Segments[i].Length > 0 && dst.Segments[i].Length < 1 {
			return fmt.Errorf("%w: segment %d resolved below length 1", ErrDegenerateSegment, i)
		}
	}
	return nil
}

// verifyOutlines extends the isomorphism check past the primary
// outline: every disjoint structure must survive the re-lay with its
// anchor roles and closure intact.
func verifyOutlines(src, dst *template.Grid) error {
	so, do := topology.Trace(src), topology.Trace(dst)
	if len(so) != len(do) {
		return fmt.Errorf("%w: %d outlines became %d", ErrDegenerateSegment, len(so), len(do))
	}
	for i := range so {
		if so[i].Closed != do[i].Closed {
			return fmt.Errorf("%w: outline %d changed closure", ErrDegenerateSegment, i)
		}
		if len(so[i].Anchors) != len(do[i].Anchors) {
			return fmt.Errorf("%w: outline %d: %d anchors became %d",
				ErrDegenerateSegment, i, len(so[i].Anchors), len(do[i].Anchors))
		}
		for j := range so[i].Anchors {
			if so[i].Anchors[j].Role != do[i].Anchors[j].Role {
				return fmt.Errorf("%w: outline %d anchor %d role %s became %s",
					ErrDegenerateSegment, i, j, so[i].Anchors[j].Role, do[i].Anchors[j].Role)
			}
		}
	}
	return nil
}
