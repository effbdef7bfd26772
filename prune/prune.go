package prune

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/logger"
	"github.com/katalvlaran/mazegraph/region"
)

// Prune peels dead branches off gr and groups the regions they cover into
// isolated-area sets. weights holds the weight of every region of s.
//
// Steps:
//  1. Peel nodes with fewer than two live edge ends until none remain;
//     each peeled node is unloopable and remembers its last live edge.
//  2. Walk from every dead-end pocket region (and every bare leaf node)
//     along exit edges through unloopable nodes, collecting region ids into
//     sets capped at MaxWeight.
//  3. Trim: drop subsets, merge or split overlapping sets, pair up tiny
//     single-region sets that share a junction, drop subsets again.
//
// Complexity: O(V + E) for peeling and walks, O(A²·R) for trimming A sets of
// at most R regions.
func Prune(gr *junction.Graph, s *region.Set, weights []float64, opts ...Option) (*Result, error) {
	if gr == nil {
		return nil, ErrGraphNil
	}
	if s == nil {
		return nil, ErrSetNil
	}
	if len(weights) != len(s.Regions) {
		return nil, ErrWeights
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	res.Unloopable, res.Exit = peel(gr)

	w := &walker{weights: weights, max: o.MaxWeight}
	w.walkAll(gr, s, res)

	t := &trimmer{s: s, weights: weights, opts: o, sets: w.sets}
	t.run()

	res.Areas = t.areas()
	res.UnloopableCells = unloopableCells(gr, s, res)

	logger.Debug("pruned junction graph",
		"unloopable", len(res.UnloopableCells),
		"areas", len(res.Areas))

	return res, nil
}

// peel computes the complement of the 2-core with a work list.
func peel(gr *junction.Graph) (unloopable []bool, exit []int) {
	n := len(gr.Nodes)
	unloopable = make([]bool, n)
	exit = make([]int, n)
	deg := make([]int, n)
	dead := make([]bool, len(gr.Edges))

	var work []int
	for v := 0; v < n; v++ {
		exit[v] = -1
		deg[v] = gr.Degree(v)
		if deg[v] < 2 {
			work = append(work, v)
		}
	}
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if unloopable[v] {
			continue
		}
		unloopable[v] = true
		for _, ei := range gr.Incident(v) {
			if dead[ei] {
				continue
			}
			dead[ei] = true
			exit[v] = ei
			u := gr.Other(ei, v)
			deg[u]--
			if deg[u] < 2 && !unloopable[u] {
				work = append(work, u)
			}
		}
	}
	return unloopable, exit
}

// walker accumulates region ids into sets capped by weight.
type walker struct {
	weights []float64
	max     float64

	sets []mapset.Set[int]
	cur  mapset.Set[int]
	curW float64
}

func (w *walker) walkAll(gr *junction.Graph, s *region.Set, res *Result) {
	hasPocket := make([]bool, len(gr.Nodes))
	inbound := make([]int, len(gr.Nodes))
	for v, ei := range res.Exit {
		if ei >= 0 {
			inbound[gr.Other(ei, v)]++
		}
	}

	for _, r := range s.Regions {
		if len(r.Ends) != 1 || r.Loop {
			continue
		}
		v, ok := gr.NodeOf(r.Ends[0])
		if !ok {
			continue
		}
		hasPocket[v] = true
		w.start()
		w.add(r.ID)
		w.follow(gr, res, v)
		w.flush()
	}

	for v := range gr.Nodes {
		if !res.Unloopable[v] || res.Exit[v] < 0 || inbound[v] > 0 || hasPocket[v] {
			continue
		}
		w.start()
		w.follow(gr, res, v)
		w.flush()
	}
}

// follow walks exit edges from v while the current node is unloopable.
func (w *walker) follow(gr *junction.Graph, res *Result, v int) {
	for res.Unloopable[v] && res.Exit[v] >= 0 {
		ei := res.Exit[v]
		w.add(gr.Edges[ei].Region)
		v = gr.Other(ei, v)
	}
}

func (w *walker) start() {
	w.cur = mapset.New[int]()
	w.curW = 0
}

func (w *walker) add(r int) {
	if w.cur.Has(r) {
		return
	}
	if w.cur.Size() > 0 && w.curW+w.weights[r] > w.max {
		w.flush()
		w.start()
	}
	w.cur.Put(r)
	w.curW += w.weights[r]
	if w.cur.Size() == 1 && w.weights[r] > w.max {
		logger.Warning("isolated region exceeds weight threshold",
			"region", r,
			"weight", w.weights[r],
			"max", w.max)
	}
}

func (w *walker) flush() {
	if w.cur.Size() > 0 {
		w.sets = append(w.sets, w.cur)
	}
	w.cur = mapset.New[int]()
	w.curW = 0
}

// unloopableCells collects the cells flagged Unloopable after pruning.
func unloopableCells(gr *junction.Graph, s *region.Set, res *Result) []int {
	cells := mapset.New[int]()
	for _, a := range res.Areas {
		for _, r := range a.Regions {
			for _, id := range s.Regions[r].All {
				if _, entry := slices.BinarySearch(a.EntryPoints, id); !entry {
					cells.Put(id)
				}
			}
		}
	}
	for v, u := range res.Unloopable {
		if u && gr.Nodes[v].Cell >= 0 {
			cells.Put(gr.Nodes[v].Cell)
		}
	}
	return sorted(cells)
}

func sorted(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(v int) { out = append(out, v) })
	slices.Sort(out)
	return out
}
