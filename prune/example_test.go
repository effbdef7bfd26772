package prune_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/prune"
	"github.com/katalvlaran/mazegraph/region"
	"github.com/katalvlaran/mazegraph/score"
)

// ExamplePrune isolates the tail of a lollipop maze. Its only way out is the
// cell where it meets the loop.
func ExamplePrune() {
	g, _ := gridgraph.Parse([]string{
		"o-o",
		"| |",
		"o-o-o-o-o",
	})
	s, _ := region.Build(g)
	gr, _ := junction.Build(g, s)

	res, _ := prune.Prune(gr, s, score.Weights(s))
	for _, a := range res.Areas {
		fmt.Printf("area regions=%v entries=%v weight=%.2f\n", a.Regions, a.EntryPoints, a.Weight)
	}
	fmt.Println("unloopable cells:", res.UnloopableCells)

	// Output:
	// area regions=[1] entries=[6] weight=0.50
	// unloopable cells: [7 8 9]
}
