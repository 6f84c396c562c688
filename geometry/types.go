// Package geometry defines the vector primitives emitted from template
// grids.
package geometry

import "fmt"

// Point is a 2D coordinate in continuous space. (0,0) is the top left;
// x grows right, y grows down, matching the grid.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Op is the kind of a path primitive.
type Op uint8

const (
	// MoveTo starts a new subpath at its point.
	MoveTo Op = iota
	// LineTo draws a straight line to its point.
	LineTo
)

// String implements fmt.Stringer on Op.
func (o Op) String() string {
	if o == MoveTo {
		return "MoveTo"
	}
	return "LineTo"
}

// Primitive is one path command.
type Primitive struct {
	Op Op
	To Point
}

// Path is one continuous outline: a MoveTo followed by LineTo
// primitives in clockwise order. Closed paths connect their last point
// back to the first without a repeated primitive.
type Path struct {
	Primitives []Primitive
	Closed     bool
}

// Options configures geometry emission.
type Options struct {
	// Scale multiplies grid coordinates into output units.
	Scale float64
	// Offset translates the scaled coordinates.
	Offset Point
}

// DefaultOptions returns emission options with Scale=1 and no offset.
func DefaultOptions() Options {
	return Options{Scale: 1}
}
