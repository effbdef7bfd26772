// Package junction defines the abstract junction multigraph built from a
// refined region set.
package junction

import (
	"errors"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// Sentinel errors for graph construction.
var (
	// ErrGridNil is returned when a nil grid is passed to Build.
	ErrGridNil = errors.New("junction: grid is nil")

	// ErrSetNil is returned when a nil region set is passed to Build.
	ErrSetNil = errors.New("junction: region set is nil")

	// ErrInconsistent is returned when a region end is not a locked cell.
	ErrInconsistent = errors.New("junction: region end is not a junction")
)

// Edge joins two nodes through one region. From ≤ To. Several edges may
// join the same pair through different regions.
type Edge struct {
	From, To int
	Region   int
}

// Node is a locked junction cell promoted to the graph.
type Node struct {
	ID   int
	Cell int
	// Regions lists the regions the cell belongs to, ascending.
	Regions []int
}

// Graph is the junction multigraph. Node ids are dense and follow ascending
// cell id; edges are a flat list indexed by adjacency.
type Graph struct {
	Nodes []Node
	Edges []Edge

	nodeOfCell map[int]int
	adj        [][]int
	loop       []bool
	distances  map[int]map[int][]gridgraph.JunctionDistance
}
