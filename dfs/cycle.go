package dfs

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/logger"
)

// Cycles enumerates the simple cycles of the junction multigraph gr with a
// path-extension DFS from every seed node.
//
// Rules:
//   - A step never reuses the edge just taken, and never stays in the same
//     region unless that region is a loop region.
//   - A cycle closes at its root through an edge whose region differs from
//     the first edge's, except inside a loop region with at least 3 nodes.
//   - Seeds are the true junctions in ascending order, plus the smallest
//     node of every component that has none. A finished seed is never
//     entered again, so each cycle is found from its first seed.
//   - Cycles are rotated to their smallest node and kept only when neither
//     the sequence nor its reversal was recorded before.
//   - Parallel edges into the same neighbor are tried for at most two
//     distinct regions (three from the root), and a tip closes back to the
//     root at most once. Further regions can only repeat node sequences
//     already reachable.
//
// Hitting RecursionLimit, LoopSearchLimit or StepLimit stops the search
// early and sets Result.Truncated; that is not an error.
//
// Complexity: exponential in the worst case; at most StepLimit extensions,
// each O(deg).
func Cycles(gr *junction.Graph, opts ...Option) (*Result, error) {
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

	s := &search{
		gr:      gr,
		opts:    o,
		blocked: make([]bool, len(gr.Nodes)),
		onPath:  make([]bool, len(gr.Nodes)),
		seen:    mapset.New[string](),
	}
	for v := range gr.Nodes {
		if o.FilterNode != nil && !o.FilterNode(v) {
			s.blocked[v] = true
		}
	}

	for _, root := range s.seeds() {
		if s.full() {
			break
		}
		s.onPath[root] = true
		s.nodes = append(s.nodes[:0], root)
		s.extend(root, root)
		s.onPath[root] = false
		s.blocked[root] = true
	}

	slices.SortFunc(s.cycles, func(a, b Cycle) int {
		if c := slices.Compare(a.Nodes, b.Nodes); c != 0 {
			return c
		}
		return slices.Compare(a.Regions, b.Regions)
	})
	if s.truncated {
		logger.Debug("cycle search truncated",
			"cycles", len(s.cycles),
			"recursionLimit", o.RecursionLimit,
			"loopSearchLimit", o.LoopSearchLimit,
			"steps", s.steps)
	}

	return &Result{Cycles: s.cycles, Truncated: s.truncated}, nil
}

// search carries the state of one Cycles call.
type search struct {
	gr   *junction.Graph
	opts Options

	blocked []bool
	onPath  []bool

	nodes   []int
	edges   []int
	regions []int

	seen      mapset.Set[string]
	cycles    []Cycle
	steps     int
	exhausted bool
	truncated bool
}

// seeds returns the search roots in the order they are tried.
func (s *search) seeds() []int {
	var out []int
	for _, comp := range s.gr.Components() {
		fallback := -1
		found := false
		for _, v := range comp {
			if s.blocked[v] {
				continue
			}
			if fallback < 0 {
				fallback = v
			}
			if s.gr.TrueJunction(v) {
				out = append(out, v)
				found = true
			}
		}
		if !found && fallback >= 0 {
			out = append(out, fallback)
		}
	}
	slices.Sort(out)

	return out
}

// full reports, and records as truncation, that the cycle cap is reached or
// the step budget ran out.
func (s *search) full() bool {
	if s.exhausted || len(s.cycles) >= s.opts.LoopSearchLimit {
		s.truncated = true
		return true
	}
	return false
}

// extend tries every edge out of v, the current tip of the path from root.
//
// Only the last region of a path constrains its next step, and only the
// first region constrains the closing edge. Two distinct regions into a
// neighbor therefore cover every continuation; from the root a third one
// also covers every closing edge.
func (s *search) extend(root, v int) {
	if s.full() {
		return
	}
	if s.steps >= s.opts.StepLimit {
		s.exhausted = true
		s.truncated = true
		return
	}
	s.steps++

	width := 2
	if len(s.edges) == 0 {
		width = 3
	}
	tried := make(map[int][]int)
	closed := false

	for _, ei := range s.gr.Incident(v) {
		if s.full() {
			return
		}
		e := s.gr.Edges[ei]
		if e.From == e.To {
			continue
		}
		if n := len(s.edges); n > 0 {
			if ei == s.edges[n-1] {
				continue
			}
			if e.Region == s.regions[n-1] && !s.gr.IsLoopRegion(e.Region) {
				continue
			}
		}

		u := s.gr.Other(ei, v)
		if u == root {
			if !closed && len(s.edges) > 0 && s.closes(e.Region) {
				s.record(e.Region)
				closed = true
			}
			continue
		}
		if s.blocked[u] || s.onPath[u] {
			continue
		}
		if rs := tried[u]; len(rs) >= width || slices.Contains(rs, e.Region) {
			continue
		}
		tried[u] = append(tried[u], e.Region)
		if len(s.edges) >= s.opts.RecursionLimit {
			s.truncated = true
			continue
		}

		s.onPath[u] = true
		s.nodes = append(s.nodes, u)
		s.edges = append(s.edges, ei)
		s.regions = append(s.regions, e.Region)

		s.extend(root, u)

		s.onPath[u] = false
		s.nodes = s.nodes[:len(s.nodes)-1]
		s.edges = s.edges[:len(s.edges)-1]
		s.regions = s.regions[:len(s.regions)-1]
	}
}

// closes reports whether an edge of region r may complete the path.
func (s *search) closes(r int) bool {
	if r != s.regions[0] {
		return true
	}
	return s.gr.IsLoopRegion(r) && len(s.nodes) >= 3
}

// record canonicalizes the current path closed by region r and keeps it
// unless it or its reversal is already known.
func (s *search) record(r int) {
	c, fwd, back := canonical(Cycle{
		Nodes:   slices.Clone(s.nodes),
		Regions: append(slices.Clone(s.regions), r),
	})
	if s.seen.Has(fwd) || s.seen.Has(back) {
		return
	}
	s.seen.Put(fwd)
	s.seen.Put(back)
	s.cycles = append(s.cycles, c)
}
