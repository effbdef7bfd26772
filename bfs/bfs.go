package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegraph/junction"
)

// side is one search frontier with its parent links.
type side struct {
	depth      []int
	parent     []int
	parentEdge []int
	level      []int
	reached    int
}

func newSide(n, root int) *side {
	s := &side{
		depth:      make([]int, n),
		parent:     make([]int, n),
		parentEdge: make([]int, n),
		level:      []int{root},
	}
	for i := range s.depth {
		s.depth[i] = -1
		s.parent[i] = -1
		s.parentEdge[i] = -1
	}
	s.depth[root] = 0
	return s
}

// meeting is a candidate splice: side a reaches v, crosses edge, and lands
// on u, already reached by side b.
type meeting struct {
	total, u, edge, v int
}

func (m meeting) less(o meeting) bool {
	if m.total != o.total {
		return m.total < o.total
	}
	if m.u != o.u {
		return m.u < o.u
	}
	return m.edge < o.edge
}

// Bidirectional finds a minimum-hop path from node from to node to in gr,
// never crossing an edge whose region is avoided.
//
// The two frontiers expand one full level at a time, alternating sides.
// Every edge from the expanding level into a node already reached by the
// other side is a candidate; after the level the shortest candidate wins,
// ties going to the lower meeting node and then the lower edge index.
//
// Returns ErrGraphNil, ErrNodeNotFound, ErrOptionViolation, ErrNoPath, or
// the context's error on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func Bidirectional(gr *junction.Graph, from, to int, opts ...Option) (*Result, error) {
	if gr == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !gr.HasNode(from) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if !gr.HasNode(to) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if from == to {
		return &Result{Nodes: []int{from}, Meet: from}, nil
	}

	n := len(gr.Nodes)
	fwd, back := newSide(n, from), newSide(n, to)
	for turn := 0; len(fwd.level) > 0 && len(back.level) > 0; turn++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if o.MaxHops > 0 && fwd.reached+back.reached >= o.MaxHops {
			break
		}

		a, b := fwd, back
		if turn%2 == 1 {
			a, b = back, fwd
		}
		best, ok := expand(gr, &o, a, b)
		if !ok {
			continue
		}
		if o.MaxHops > 0 && best.total > o.MaxHops {
			break
		}
		var res *Result
		if a == fwd {
			res = splice(gr, fwd, back, best.v, best.edge, best.u)
		} else {
			res = splice(gr, fwd, back, best.u, best.edge, best.v)
		}
		res.Meet = best.u
		return res, nil
	}

	return nil, fmt.Errorf("%w: %d to %d", ErrNoPath, from, to)
}

// expand advances a by one level and returns the best meeting with b.
func expand(gr *junction.Graph, o *Options, a, b *side) (meeting, bool) {
	var (
		best  meeting
		found bool
		next  []int
	)
	for _, v := range a.level {
		for _, ei := range gr.Incident(v) {
			e := gr.Edges[ei]
			if e.From == e.To || o.Avoid.Has(e.Region) {
				continue
			}
			u := gr.Other(ei, v)
			if b.depth[u] >= 0 {
				m := meeting{total: a.depth[v] + 1 + b.depth[u], u: u, edge: ei, v: v}
				if !found || m.less(best) {
					best, found = m, true
				}
			}
			if a.depth[u] >= 0 {
				continue
			}
			a.depth[u] = a.depth[v] + 1
			a.parent[u] = v
			a.parentEdge[u] = ei
			next = append(next, u)
		}
	}
	a.level = next
	a.reached++

	return best, found
}

// splice joins the forward chain ending at x and the backward chain
// starting at y through edge ei.
func splice(gr *junction.Graph, fwd, back *side, x, ei, y int) *Result {
	res := &Result{}

	for cur := x; cur >= 0; cur = fwd.parent[cur] {
		res.Nodes = append(res.Nodes, cur)
		if pe := fwd.parentEdge[cur]; pe >= 0 {
			res.Edges = append(res.Edges, pe)
		}
	}
	slices.Reverse(res.Nodes)
	slices.Reverse(res.Edges)

	res.Edges = append(res.Edges, ei)
	for cur := y; cur >= 0; cur = back.parent[cur] {
		res.Nodes = append(res.Nodes, cur)
		if pe := back.parentEdge[cur]; pe >= 0 {
			res.Edges = append(res.Edges, pe)
		}
	}

	res.Regions = make([]int, len(res.Edges))
	for i, ei := range res.Edges {
		res.Regions[i] = gr.Edges[ei].Region
	}
	return res
}
