// Package topology defines core types for the topology subpackage of
// github.com/katalvlaran/siegegrid.
package topology

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/template"
)

// Orientation of a wall segment.
type Orientation uint8

const (
	// Horizontal segments run along x.
	Horizontal Orientation = iota
	// Vertical segments run along y.
	Vertical
)

// String implements fmt.Stringer on Orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// AnchorRole is the topological role of an anchor.
type AnchorRole uint8

const (
	// RoleCorner anchors join a horizontal and a vertical run.
	RoleCorner AnchorRole = iota
	// RolePassThrough anchors sit inside a straight run ('+' with
	// same-orientation neighbors on both sides).
	RolePassThrough
	// RoleTerminal anchors end a run ('+' with a single neighbor).
	RoleTerminal
	// RoleGround anchors are fixed ground contact points ('o'); they
	// stay on the bottom-most row under resizing.
	RoleGround
)

// String implements fmt.Stringer on AnchorRole.
func (r AnchorRole) String() string {
	switch r {
	case RoleCorner:
		return "Corner"
	case RolePassThrough:
		return "PassThrough"
	case RoleTerminal:
		return "Terminal"
	case RoleGround:
		return "Ground"
	default:
		return "AnchorRole(?)"
	}
}

// Anchor is a named structural point: its grid position and role.
// Anchors are ordered by clockwise outline traversal starting from the
// top-left-most corner.
type Anchor struct {
	X, Y int
	Role AnchorRole
}

// String implements fmt.Stringer on Anchor.
func (a Anchor) String() string {
	return fmt.Sprintf("%s(%d,%d)", a.Role, a.X, a.Y)
}

// Segment is a maximal contiguous run of same-orientation wall cells
// between two anchors. Start and End index into the owning Template's
// Anchors slice; Length counts the cells strictly between the anchors.
// Segments own no cells; they reference grid positions by coordinate.
type Segment struct {
	Orientation Orientation
	Start, End  int
	Length      int
}

// Outline is one connected traced boundary. Anchors holds the unique
// anchors in first-visit order; Trail is the traversal as indices into
// Anchors, revisiting junction anchors where the walk passes them again
// (out and back along a spur). Closed outlines return to Trail[0].
type Outline struct {
	Anchors []Anchor
	Trail   []int
	Closed  bool
}

// Template is the canonical structural representation: the grid it was
// extracted from, the primary outline's anchors in clockwise order, and
// the segments between consecutive anchors. It is immutable; resizing
// produces a new Template.
type Template struct {
	Grid     *template.Grid
	Anchors  []Anchor
	Segments []Segment
}
