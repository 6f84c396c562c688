// File: geometry/emit_test.go
package geometry_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/siegegrid/geometry"
	"github.com/katalvlaran/siegegrid/template"
)

// TestEmit_ClosedBox checks the primitive sequence of a simple tower:
// one closed clockwise path, no repeated final point.
func TestEmit_ClosedBox(t *testing.T) {
	paths, err := geometry.Emit(template.MustParse("+--+\n|..|\no--o"), geometry.DefaultOptions())
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d; want 1", len(paths))
	}
	want := geometry.Path{
		Closed: true,
		Primitives: []geometry.Primitive{
			{Op: geometry.MoveTo, To: geometry.Pt(0, 0)},
			{Op: geometry.LineTo, To: geometry.Pt(3, 0)},
			{Op: geometry.LineTo, To: geometry.Pt(3, 2)},
			{Op: geometry.LineTo, To: geometry.Pt(0, 2)},
		},
	}
	if !reflect.DeepEqual(paths[0], want) {
		t.Errorf("paths[0] = %+v; want %+v", paths[0], want)
	}
}

// TestEmit_ScaleOffset checks the affine mapping of grid coordinates to
// output units.
func TestEmit_ScaleOffset(t *testing.T) {
	opts := geometry.Options{Scale: 10, Offset: geometry.Pt(5, 7)}
	paths, err := geometry.Emit(template.MustParse("+-+\n|.|\no-o"), opts)
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	got := paths[0].Primitives[1].To
	if got != geometry.Pt(25, 7) {
		t.Errorf("second point = %v; want (25,7)", got)
	}
}

// TestEmit_SpurInTrail checks that a side spur is emitted as part of its
// owner path: out to the terminal and back through the junction.
func TestEmit_SpurInTrail(t *testing.T) {
	text := "+-------+\n" +
		"|.......|\n" +
		"|.......+----+\n" +
		"|.......|\n" +
		"o---o---o"
	paths, err := geometry.Emit(template.MustParse(text), geometry.DefaultOptions())
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d; want 1", len(paths))
	}
	p := paths[0]
	if !p.Closed {
		t.Fatal("path not closed")
	}
	// (13,2) out, (8,2) back.
	saw := 0
	for _, pr := range p.Primitives {
		if pr.To == geometry.Pt(8, 2) {
			saw++
		}
	}
	if saw != 2 {
		t.Errorf("junction (8,2) visited %d times; want 2 (out and back)", saw)
	}
}

// TestEmit_NoPaths checks the all-floor grid.
func TestEmit_NoPaths(t *testing.T) {
	_, err := geometry.Emit(template.MustParse("...\n..."), geometry.DefaultOptions())
	if !errors.Is(err, geometry.ErrNoPaths) {
		t.Fatalf("err = %v; want ErrNoPaths", err)
	}
}
