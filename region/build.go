package region

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/logger"
)

// builder holds the scratch state of one Build call. Nothing is written to
// the grid's cells.
type builder struct {
	g    *gridgraph.Grid
	opts Options

	locked  []bool
	pinned  []bool
	deadEnd []bool

	regions []Region
	member  [][]int
}

// Build partitions the walkable cells of g into regions bounded by locked
// junction cells, then refines the partition.
//
// Steps:
//  1. Lock cells of degree ≥ 3; flag cells of degree 1 as dead ends.
//  2. Assemble regions with locked cells as label barriers, then apply the
//     refinement policy; repeat until nothing is unlocked or MaxPasses.
//  3. Consolidate diagonal internal corners and promote simple rings.
//  4. Renumber regions by lowest cell id and check the partition.
//
// Complexity: O(P·W·H·α) for P passes.
func Build(g *gridgraph.Grid, opts ...Option) (*Set, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	b := &builder{
		g:       g,
		opts:    o,
		locked:  make([]bool, n),
		pinned:  make([]bool, n),
		deadEnd: make([]bool, n),
	}
	walkable := 0
	for id := 0; id < n; id++ {
		if !g.Cell(id).State.Walkable() {
			continue
		}
		walkable++
		switch deg := g.Degree(id); {
		case deg >= 3:
			b.locked[id] = true
		case deg == 1:
			b.deadEnd[id] = true
		}
	}

	b.assemble()
	passes := 0
	for passes < o.MaxPasses {
		passes++
		if !b.refine() {
			break
		}
		b.assemble()
	}

	if o.Consolidate {
		b.consolidate()
	}
	b.renumber()
	if o.PromoteLoops {
		b.promoteLoops()
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	logger.Debug("regions built",
		"regions", len(b.regions),
		"passes", passes,
		"walkable", walkable)

	return &Set{
		Regions:    b.regions,
		Membership: b.member,
		Locked:     b.locked,
		DeadEnd:    b.deadEnd,
		Walkable:   walkable,
		Passes:     passes,
	}, nil
}

// assemble rebuilds regions from the current locks. Each labeled group that
// is not a lone locked cell becomes a region; a locked cell joins, as an
// end, the region of every unlocked neighbor, and each linked pair of locked
// cells forms a two-cell link region.
func (b *builder) assemble() {
	labels := b.g.Label(func(id int) bool { return b.locked[id] })

	b.regions = nil
	b.member = make([][]int, b.g.Len())
	of := make([]int, len(labels.Groups))
	for li, group := range labels.Groups {
		of[li] = -1
		if len(group) == 1 && b.locked[group[0]] {
			continue
		}
		r := Region{ID: len(b.regions), State: labels.States[li], All: slices.Clone(group)}
		for _, id := range group {
			b.member[id] = []int{r.ID}
		}
		of[li] = r.ID
		b.regions = append(b.regions, r)
	}

	for id, locked := range b.locked {
		if !locked {
			continue
		}
		s := b.g.Cell(id).State
		for _, nb := range b.g.Neighbors(id, s) {
			if !b.locked[nb] {
				b.addEnd(of[labels.Of[nb]], id)
				continue
			}
			if id < nb {
				r := Region{ID: len(b.regions), State: s, All: []int{id, nb}, Ends: []int{id, nb}}
				b.member[id] = append(b.member[id], r.ID)
				b.member[nb] = append(b.member[nb], r.ID)
				b.regions = append(b.regions, r)
			}
		}
	}

	for i := range b.regions {
		r := &b.regions[i]
		slices.Sort(r.All)
		slices.Sort(r.Ends)
		r.DeadEnds = nil
		for _, id := range r.All {
			if b.deadEnd[id] && !b.locked[id] {
				r.DeadEnds = append(r.DeadEnds, id)
			}
		}
	}
	for id := range b.member {
		slices.Sort(b.member[id])
	}
}

func (b *builder) addEnd(r, id int) {
	if slices.Contains(b.member[id], r) {
		return
	}
	b.member[id] = append(b.member[id], r)
	b.regions[r].All = append(b.regions[r].All, id)
	b.regions[r].Ends = append(b.regions[r].Ends, id)
}

// renumber drops emptied regions, orders the rest by their lowest cells and
// rebuilds membership.
func (b *builder) renumber() {
	kept := make([]Region, 0, len(b.regions))
	for _, r := range b.regions {
		if len(r.All) > 0 {
			kept = append(kept, r)
		}
	}
	slices.SortFunc(kept, func(x, y Region) int { return slices.Compare(x.All, y.All) })

	b.member = make([][]int, b.g.Len())
	for i := range kept {
		kept[i].ID = i
		for _, id := range kept[i].All {
			b.member[id] = append(b.member[id], i)
		}
	}
	b.regions = kept
}

func (b *builder) validate() error {
	for id := range b.member {
		c := b.g.Cell(id)
		k := len(b.member[id])
		switch {
		case !c.State.Walkable():
			if k > 0 {
				return fmt.Errorf("%w: %s cell %d belongs to a region", ErrInconsistent, c.State, id)
			}
		case k == 0:
			return fmt.Errorf("%w: cell %d belongs to no region", ErrInconsistent, id)
		case !b.locked[id] && k != 1:
			return fmt.Errorf("%w: unlocked cell %d belongs to %d regions", ErrInconsistent, id, k)
		}
	}
	for _, r := range b.regions {
		for _, e := range r.Ends {
			if !b.locked[e] {
				return fmt.Errorf("%w: end %d of region %d is not locked", ErrInconsistent, e, r.ID)
			}
			if _, ok := slices.BinarySearch(r.All, e); !ok {
				return fmt.Errorf("%w: end %d outside region %d", ErrInconsistent, e, r.ID)
			}
		}
	}
	return nil
}

// linked reports whether a and b share a same-state passage.
func (b *builder) linked(a, c int) bool {
	return slices.Contains(b.g.Neighbors(a, b.g.Cell(a).State), c)
}

// middle returns the first cell of r that is not an end, or -1.
func (b *builder) middle(r *Region) int {
	for _, id := range r.All {
		if !slices.Contains(r.Ends, id) {
			return id
		}
	}
	return -1
}
