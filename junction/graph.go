package junction

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// NodeOf returns the node promoted from cell.
func (gr *Graph) NodeOf(cell int) (int, bool) {
	n, ok := gr.nodeOfCell[cell]
	return n, ok
}

// HasNode reports whether id names a node of gr.
func (gr *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(gr.Nodes)
}

// Incident returns the indexes into Edges of the edges touching node.
func (gr *Graph) Incident(node int) []int {
	if !gr.HasNode(node) {
		return nil
	}
	return gr.adj[node]
}

// Other returns the endpoint of edge ei opposite to node.
func (gr *Graph) Other(ei, node int) int {
	e := gr.Edges[ei]
	if e.From == node {
		return e.To
	}
	return e.From
}

// Degree counts edge ends at node; a self edge counts twice.
func (gr *Graph) Degree(node int) int {
	d := 0
	for _, ei := range gr.Incident(node) {
		if e := gr.Edges[ei]; e.From == e.To {
			d += 2
			continue
		}
		d++
	}
	return d
}

// IsLoopRegion reports whether region r is a promoted ring.
func (gr *Graph) IsLoopRegion(r int) bool {
	return r >= 0 && r < len(gr.loop) && gr.loop[r]
}

// RegionCount returns the number of regions the graph was built over.
func (gr *Graph) RegionCount() int { return len(gr.loop) }

// TrueJunction reports whether node bridges at least two regions.
func (gr *Graph) TrueJunction(node int) bool {
	return gr.HasNode(node) && len(gr.Nodes[node].Regions) >= 2
}

// Distances returns the distance cache of cell: region id to the region's
// junctions, nearest first. The map must not be modified.
func (gr *Graph) Distances(cell int) map[int][]gridgraph.JunctionDistance {
	return gr.distances[cell]
}

// Nearest returns the junction closest to cell over all of its regions.
// Ties go to the lower node id.
func (gr *Graph) Nearest(cell int) (gridgraph.JunctionDistance, bool) {
	best := gridgraph.JunctionDistance{Node: -1, Cell: -1, Hops: -1}
	for _, list := range gr.distances[cell] {
		if len(list) == 0 {
			continue
		}
		d := list[0]
		if best.Node < 0 || d.Hops < best.Hops || d.Hops == best.Hops && d.Node < best.Node {
			best = d
		}
	}
	return best, best.Node >= 0
}

// Reach returns the nodes reachable from node, itself included, in
// breadth-first order.
func (gr *Graph) Reach(node int) []int {
	if !gr.HasNode(node) {
		return nil
	}
	seen := make([]bool, len(gr.Nodes))
	seen[node] = true
	out := []int{node}
	q := queue.New[int]()
	q.Enqueue(node)
	for !q.Empty() {
		cur := q.Dequeue()
		for _, ei := range gr.adj[cur] {
			if nb := gr.Other(ei, cur); !seen[nb] {
				seen[nb] = true
				out = append(out, nb)
				q.Enqueue(nb)
			}
		}
	}
	return out
}

// Components groups node ids into connected components, each ascending,
// ordered by smallest node.
func (gr *Graph) Components() [][]int {
	comp := make([]int, len(gr.Nodes))
	for i := range comp {
		comp[i] = -1
	}
	var out [][]int
	for v := range gr.Nodes {
		if comp[v] >= 0 {
			continue
		}
		members := gr.Reach(v)
		for _, m := range members {
			comp[m] = len(out)
		}
		out = append(out, nil)
	}
	for v, c := range comp {
		out[c] = append(out[c], v)
	}
	return out
}
