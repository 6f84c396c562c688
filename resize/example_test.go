// File: resize/example_test.go
package resize_test

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/resize"
	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

// ExampleResize compresses a tall tower down to its structural minimum.
func ExampleResize() {
	tpl, err := topology.Extract(template.MustParse("+--+\n|..|\n|..|\n|..|\n|..|\no--o"))
	if err != nil {
		panic(err)
	}
	small, err := resize.Resize(tpl, 3, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(small.Grid.String())
	// Output:
	// +-+
	// |.|
	// o-o
}

// ExampleMinSize reports the smallest feasible dimensions of a shape.
func ExampleMinSize() {
	tpl, err := topology.Extract(template.MustParse("+--------+\n|........|\no--------o"))
	if err != nil {
		panic(err)
	}
	w, h := resize.MinSize(tpl)
	fmt.Printf("%dx%d\n", w, h)
	// Output:
	// 3x3
}
