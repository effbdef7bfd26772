package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/dfs"
	"github.com/katalvlaran/mazegraph/junction"
)

// ExampleCycles enumerates the cycles of a square whose four sides run
// through four different regions, plus a diagonal through a fifth.
//
//	0 ─r0─ 1
//	│ ╲    │
//	r3  r4 r1
//	│    ╲ │
//	3 ─r2─ 2
func ExampleCycles() {
	gr := junction.FromEdges(4, []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 1, To: 2, Region: 1},
		{From: 2, To: 3, Region: 2},
		{From: 0, To: 3, Region: 3},
		{From: 0, To: 2, Region: 4},
	})

	res, err := dfs.Cycles(gr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Cycles {
		fmt.Printf("nodes %v regions %v\n", c.Nodes, c.Regions)
	}

	// Output:
	// nodes [0 1 2] regions [0 1 4]
	// nodes [0 1 2 3] regions [0 1 2 3]
	// nodes [0 3 2] regions [3 2 4]
}
