package junction

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/logger"
	"github.com/katalvlaran/mazegraph/region"
)

// Build promotes every locked cell of s to a node and joins two ends of a
// region whenever a walk inside the region reaches one from the other
// without crossing a third end. It also fills the per-cell distance cache.
//
// Complexity: O(N + Σ ends(r)·|r|) over regions r.
func Build(g *gridgraph.Grid, s *region.Set) (*Graph, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if s == nil {
		return nil, ErrSetNil
	}

	gr := &Graph{
		nodeOfCell: make(map[int]int),
		loop:       make([]bool, len(s.Regions)),
		distances:  make(map[int]map[int][]gridgraph.JunctionDistance),
	}
	for id, locked := range s.Locked {
		if !locked {
			continue
		}
		n := Node{ID: len(gr.Nodes), Cell: id, Regions: slices.Clone(s.Membership[id])}
		gr.nodeOfCell[id] = n.ID
		gr.Nodes = append(gr.Nodes, n)
	}

	for i := range s.Regions {
		r := &s.Regions[i]
		gr.loop[r.ID] = r.Loop
		for _, e := range r.Ends {
			if _, ok := gr.nodeOfCell[e]; !ok {
				return nil, fmt.Errorf("%w: cell %d of region %d", ErrInconsistent, e, r.ID)
			}
		}
		gr.connect(g, r)
		gr.measure(g, r)
	}
	gr.index()

	logger.Debug("junction graph built", "nodes", len(gr.Nodes), "edges", len(gr.Edges))

	return gr, nil
}

// connect adds the edges of region r.
func (gr *Graph) connect(g *gridgraph.Grid, r *region.Region) {
	seen := mapset.New[[2]int]()
	for _, e := range r.Ends {
		from := gr.nodeOfCell[e]
		walk(g, r, e, func(cell, _ int) bool {
			if cell == e || !isEnd(r, cell) {
				return true
			}
			to := gr.nodeOfCell[cell]
			key := [2]int{min(from, to), max(from, to)}
			if !seen.Has(key) {
				seen.Put(key)
				gr.Edges = append(gr.Edges, Edge{From: key[0], To: key[1], Region: r.ID})
			}
			return false
		})
	}
}

// measure records, for every cell of r, the hop distance to each end of r.
func (gr *Graph) measure(g *gridgraph.Grid, r *region.Region) {
	for _, e := range r.Ends {
		node := gr.nodeOfCell[e]
		walk(g, r, e, func(cell, hops int) bool {
			byRegion := gr.distances[cell]
			if byRegion == nil {
				byRegion = make(map[int][]gridgraph.JunctionDistance)
				gr.distances[cell] = byRegion
			}
			byRegion[r.ID] = append(byRegion[r.ID], gridgraph.JunctionDistance{Node: node, Cell: e, Hops: hops})
			return true
		})
	}
	for _, cell := range r.All {
		if list := gr.distances[cell][r.ID]; len(list) > 1 {
			slices.SortFunc(list, func(a, b gridgraph.JunctionDistance) int {
				if c := cmp.Compare(a.Hops, b.Hops); c != 0 {
					return c
				}
				return cmp.Compare(a.Node, b.Node)
			})
		}
	}
}

// walk runs a breadth-first search from start over passages inside r.
// visit is called once per reached cell with its hop count; returning false
// stops the search from expanding past that cell.
func walk(g *gridgraph.Grid, r *region.Region, start int, visit func(cell, hops int) bool) {
	hops := map[int]int{start: 0}
	q := queue.New[int]()
	q.Enqueue(start)
	for !q.Empty() {
		cur := q.Dequeue()
		if !visit(cur, hops[cur]) {
			continue
		}
		for _, nb := range g.Neighbors(cur, r.State) {
			if _, done := hops[nb]; done {
				continue
			}
			if _, in := slices.BinarySearch(r.All, nb); !in {
				continue
			}
			hops[nb] = hops[cur] + 1
			q.Enqueue(nb)
		}
	}
}

func isEnd(r *region.Region, cell int) bool {
	_, ok := slices.BinarySearch(r.Ends, cell)
	return ok
}

// index rebuilds the adjacency lists from Edges.
func (gr *Graph) index() {
	gr.adj = make([][]int, len(gr.Nodes))
	for i, e := range gr.Edges {
		gr.adj[e.From] = append(gr.adj[e.From], i)
		if e.To != e.From {
			gr.adj[e.To] = append(gr.adj[e.To], i)
		}
	}
}

// FromEdges builds a graph of n nodes over the given edges, without grid
// cells. Regions named in loops are loop regions. Node regions are taken
// from the incident edges.
func FromEdges(n int, edges []Edge, loops ...int) *Graph {
	gr := &Graph{
		Nodes:      make([]Node, n),
		nodeOfCell: make(map[int]int),
		distances:  make(map[int]map[int][]gridgraph.JunctionDistance),
	}
	maxRegion := -1
	for _, e := range edges {
		if e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		gr.Edges = append(gr.Edges, e)
		maxRegion = max(maxRegion, e.Region)
	}
	for _, l := range loops {
		maxRegion = max(maxRegion, l)
	}
	gr.loop = make([]bool, maxRegion+1)
	for _, l := range loops {
		gr.loop[l] = true
	}
	for i := range gr.Nodes {
		gr.Nodes[i] = Node{ID: i, Cell: -1}
	}
	for _, e := range gr.Edges {
		for _, v := range [2]int{e.From, e.To} {
			if !slices.Contains(gr.Nodes[v].Regions, e.Region) {
				gr.Nodes[v].Regions = append(gr.Nodes[v].Regions, e.Region)
			}
		}
	}
	for i := range gr.Nodes {
		slices.Sort(gr.Nodes[i].Regions)
	}
	gr.index()

	return gr
}
