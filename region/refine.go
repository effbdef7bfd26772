package region

import (
	"slices"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// refine applies the per-region policy to the current assembly and unlocks
// merge candidates. It reports whether any lock was released.
//
// Policy by region cell count (ends included):
//
//	> 3, two directly linked ends       both ends are merge candidates
//	= 3, middle is not an internal corner  ends of degree ≥ 3 are pinned
//	= 3, middle is an internal corner      both ends are merge candidates
//	= 2, one dead end                    the other cell is pinned
//	= 2, two locked cells                both are merge candidates
func (b *builder) refine() bool {
	candidate := make([]bool, len(b.locked))

	for i := range b.regions {
		r := &b.regions[i]
		switch n := len(r.All); {
		case n > 3:
			if len(r.Ends) == 2 && b.linked(r.Ends[0], r.Ends[1]) {
				candidate[r.Ends[0]] = true
				candidate[r.Ends[1]] = true
			}
		case n == 3:
			if len(r.Ends) != 2 {
				continue
			}
			if b.internalCorner(b.middle(r)) {
				candidate[r.Ends[0]] = true
				candidate[r.Ends[1]] = true
				continue
			}
			for _, e := range r.Ends {
				if b.g.Degree(e) >= 3 {
					b.pinned[e] = true
				}
			}
		case n == 2:
			x, y := r.All[0], r.All[1]
			switch {
			case b.deadEnd[x] && b.locked[y]:
				b.pinned[y] = true
			case b.deadEnd[y] && b.locked[x]:
				b.pinned[x] = true
			case b.locked[x] && b.locked[y]:
				candidate[x] = true
				candidate[y] = true
			}
		}
	}

	changed := false
	for id, ok := range candidate {
		if !ok || !b.locked[id] || b.pinned[id] {
			continue
		}
		if b.mergeEligible(id) {
			b.locked[id] = false
			changed = true
		}
	}

	// A junction whose every branch lies in one region separates nothing.
	for id, locked := range b.locked {
		if locked && !b.pinned[id] && len(b.member[id]) == 1 {
			b.locked[id] = false
			changed = true
		}
	}

	return changed
}

// mergeEligible reports whether every region bounded by the locked cell id
// may absorb it: the cell touches each such region through few enough cells.
func (b *builder) mergeEligible(id int) bool {
	nbs := b.g.Neighbors(id, b.g.Cell(id).State)
	for _, r := range b.member[id] {
		touch := 0
		for _, nb := range nbs {
			if slices.Contains(b.member[nb], r) {
				touch++
			}
		}
		limit := b.opts.MergeMaxTouch
		if len(b.regions[r].All) >= b.opts.MergeLargeRegionCells {
			limit = max(limit, b.opts.MergeMaxTouchLarge)
		}
		if touch > limit {
			return false
		}
	}
	return true
}

// internalCorner reports whether id turns a corner: exactly two
// perpendicular same-state passages, with a same-state cell on the inner
// diagonal.
func (b *builder) internalCorner(id int) bool {
	c := b.g.Cell(id)
	if c == nil {
		return false
	}
	dirs := make([]gridgraph.Direction, 0, 4)
	for _, d := range gridgraph.Directions {
		if nb, ok := b.g.Neighbor(id, d); ok && b.g.Cell(nb).State == c.State {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 || dirs[0].Vertical() == dirs[1].Vertical() {
		return false
	}
	dx1, dy1 := dirs[0].Offset()
	dx2, dy2 := dirs[1].Offset()
	diag := b.g.CellAt(c.X+dx1+dx2, c.Y+dy1+dy2)

	return diag != nil && diag.State == c.State
}
