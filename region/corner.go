package region

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// consolidate merges pairs of three-cell, two-end regions whose middle
// cells are internal corners sitting diagonally next to each other. Each
// region takes part in at most one merge. Ends left bounding only the merged
// region are unlocked.
func (b *builder) consolidate() {
	type corner struct{ region, mid int }
	var corners []corner
	for i := range b.regions {
		r := &b.regions[i]
		if len(r.All) != 3 || len(r.Ends) != 2 {
			continue
		}
		if mid := b.middle(r); b.internalCorner(mid) {
			corners = append(corners, corner{i, mid})
		}
	}

	done := mapset.New[int]()
	for i, a := range corners {
		if done.Has(a.region) {
			continue
		}
		ca := b.g.Cell(a.mid)
		for _, z := range corners[i+1:] {
			if done.Has(z.region) {
				continue
			}
			cz := b.g.Cell(z.mid)
			if ca.State != cz.State || abs(ca.X-cz.X) != 1 || abs(ca.Y-cz.Y) != 1 {
				continue
			}
			b.merge(a.region, z.region)
			done.Put(a.region)
			done.Put(z.region)
			break
		}
	}
}

// merge moves region src into dst and empties src.
func (b *builder) merge(dst, src int) {
	d, s := &b.regions[dst], &b.regions[src]
	d.All = union(d.All, s.All)
	d.Ends = union(d.Ends, s.Ends)
	d.DeadEnds = union(d.DeadEnds, s.DeadEnds)
	for _, id := range s.All {
		m := b.member[id]
		for k := range m {
			if m[k] == src {
				m[k] = dst
			}
		}
		slices.Sort(m)
		b.member[id] = slices.Compact(m)
	}
	s.All, s.Ends, s.DeadEnds = nil, nil, nil

	ends := d.Ends[:0]
	for _, e := range d.Ends {
		if len(b.member[e]) == 1 && !b.pinned[e] {
			b.locked[e] = false
			continue
		}
		ends = append(ends, e)
	}
	d.Ends = ends
}

// promoteLoops marks every simple ring (each cell has exactly two passages
// inside the region) as a loop region. Its corner cells are locked and join
// the ends, so the ring is represented by at least four graph nodes.
func (b *builder) promoteLoops() {
	for i := range b.regions {
		r := &b.regions[i]
		if len(r.All) < 4 {
			continue
		}
		ring := true
		for _, id := range r.All {
			if len(b.inRegion(r, id)) != 2 {
				ring = false
				break
			}
		}
		if !ring {
			continue
		}
		r.Loop = true
		for _, id := range r.All {
			dirs := b.inRegion(r, id)
			if dirs[0].Vertical() != dirs[1].Vertical() {
				b.locked[id] = true
			}
			if b.locked[id] && !slices.Contains(r.Ends, id) {
				r.Ends = append(r.Ends, id)
			}
		}
		slices.Sort(r.Ends)
	}
}

// inRegion returns the directions of id's passages to other cells of r.
func (b *builder) inRegion(r *Region, id int) []gridgraph.Direction {
	s := b.g.Cell(id).State
	var dirs []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		nb, ok := b.g.Neighbor(id, d)
		if !ok || b.g.Cell(nb).State != s {
			continue
		}
		if _, in := slices.BinarySearch(r.All, nb); in {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// union returns the sorted union of two sorted slices.
func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
