// File: template/example_test.go
package template_test

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/template"
)

// ExampleParse demonstrates the text→grid round trip on a small tower.
func ExampleParse() {
	g, err := template.Parse("+--+\n|..|\no--o", template.DefaultParseOptions())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%dx%d\n", g.Width(), g.Height())
	fmt.Println(g.String())
	// Output:
	// 4x3
	// +--+
	// |..|
	// o--o
}

// ExampleGrid_At shows cell inspection, including the out-of-bounds
// Empty convention.
func ExampleGrid_At() {
	g := template.MustParse("+-+\n|.|\no-o")
	fmt.Println(g.At(0, 0))
	fmt.Println(g.At(1, 1))
	fmt.Println(g.At(0, 2))
	fmt.Println(g.At(-1, 0))
	// Output:
	// Corner
	// Floor
	// GroundAnchor
	// Empty
}

// ExampleGrid_JunctionAt shows how a '+' inside a straight run differs
// from one joining two orientations.
func ExampleGrid_JunctionAt() {
	g := template.MustParse("+--+--+\n|.....|\no-----o")
	fmt.Println(g.JunctionAt(0, 0))
	fmt.Println(g.JunctionAt(3, 0))
	// Output:
	// JunctionCorner
	// JunctionHRun
}
