package region_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/region"
)

// ExampleBuild splits a lollipop-shaped maze into its loop and its tail.
//
//	o-o
//	| |
//	o-o-o-o-o
func ExampleBuild() {
	g, _ := gridgraph.Parse([]string{
		"o-o",
		"| |",
		"o-o-o-o-o",
	})
	s, _ := region.Build(g)

	for _, r := range s.Regions {
		fmt.Printf("region %d: cells=%v ends=%v deadEnds=%v loop=%t\n",
			r.ID, r.All, r.Ends, r.DeadEnds, r.Loop)
	}

	// Output:
	// region 0: cells=[0 1 5 6] ends=[0 1 5 6] deadEnds=[] loop=true
	// region 1: cells=[6 7 8 9] ends=[6] deadEnds=[9] loop=false
}
