// File: topology/example_test.go
package topology_test

import (
	"fmt"

	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

// ExampleExtract walks a small tower and prints its anchors in
// clockwise outline order.
func ExampleExtract() {
	tpl, err := topology.Extract(template.MustParse("+--+\n|..|\no--o"))
	if err != nil {
		panic(err)
	}
	for _, a := range tpl.Anchors {
		fmt.Println(a)
	}
	fmt.Println("segments:", len(tpl.Segments))
	// Output:
	// Corner(0,0)
	// Corner(3,0)
	// Ground(3,2)
	// Ground(0,2)
	// segments: 4
}
