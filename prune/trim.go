package prune

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/region"
)

// trimmer reduces raw walk sets to the final isolated areas.
type trimmer struct {
	s       *region.Set
	weights []float64
	opts    Options
	sets    []mapset.Set[int]
}

func (t *trimmer) run() {
	t.dropSubsets()
	for t.resolveOverlap() {
		t.dropSubsets()
	}
	t.pairSingles()
	t.dropSubsets()
}

// dropSubsets removes empty sets, duplicates and proper subsets. Of two equal
// sets the earlier one is kept.
func (t *trimmer) dropSubsets() {
	keep := make([]mapset.Set[int], 0, len(t.sets))
	for i, a := range t.sets {
		if a.Size() == 0 {
			continue
		}
		covered := false
		for j, b := range t.sets {
			if i == j || b.Size() == 0 || !subset(a, b) {
				continue
			}
			if a.Size() < b.Size() || j < i {
				covered = true
				break
			}
		}
		if !covered {
			keep = append(keep, a)
		}
	}
	t.sets = keep
}

// resolveOverlap handles the first overlapping pair: merge when the union
// fits under MaxWeight, otherwise split the intersection out of both and
// keep it when it reaches MinWeight. It reports whether a pair was found.
// Every change shrinks the summed set sizes, so repeated calls terminate.
func (t *trimmer) resolveOverlap() bool {
	for i := 0; i < len(t.sets); i++ {
		for j := i + 1; j < len(t.sets); j++ {
			a, b := t.sets[i], t.sets[j]
			inter := intersect(a, b)
			if inter.Size() == 0 {
				continue
			}
			u := mapset.New[int]()
			a.Each(func(r int) { u.Put(r) })
			b.Each(func(r int) { u.Put(r) })
			if t.weight(u) <= t.opts.MaxWeight {
				t.sets[i] = u
				t.sets = slices.Delete(t.sets, j, j+1)
				return true
			}
			inter.Each(func(r int) {
				a.Remove(r)
				b.Remove(r)
			})
			if t.weight(inter) >= t.opts.MinWeight {
				t.sets = append(t.sets, inter)
			}
			return true
		}
	}
	return false
}

// pairSingles merges single-region sets that share a junction cell when the
// pair weighs at most PairMaxWeight. Each set joins at most one pair.
func (t *trimmer) pairSingles() {
	used := mapset.New[int]()
	for i := 0; i < len(t.sets); i++ {
		if t.sets[i].Size() != 1 || used.Has(i) {
			continue
		}
		ri := only(t.sets[i])
		for j := i + 1; j < len(t.sets); j++ {
			if t.sets[j].Size() != 1 || used.Has(j) {
				continue
			}
			rj := only(t.sets[j])
			if !t.shareJunction(ri, rj) || t.weights[ri]+t.weights[rj] > t.opts.PairMaxWeight {
				continue
			}
			t.sets[i].Put(rj)
			t.sets[j] = mapset.New[int]()
			used.Put(i)
			used.Put(j)
			break
		}
	}
}

func (t *trimmer) shareJunction(a, b int) bool {
	for _, e := range t.s.Regions[a].Ends {
		if _, ok := slices.BinarySearch(t.s.Regions[b].Ends, e); ok {
			return true
		}
	}
	return false
}

func (t *trimmer) weight(set mapset.Set[int]) float64 {
	sum := 0.0
	set.Each(func(r int) { sum += t.weights[r] })
	return sum
}

// areas converts the trimmed sets into ordered Areas with entry points.
func (t *trimmer) areas() []Area {
	out := make([]Area, 0, len(t.sets))
	for _, set := range t.sets {
		if set.Size() == 0 {
			continue
		}
		a := Area{Regions: sorted(set), Weight: t.weight(set)}
		entries := mapset.New[int]()
		for _, r := range a.Regions {
			for _, e := range t.s.Regions[r].Ends {
				for _, other := range t.s.Membership[e] {
					if !set.Has(other) {
						entries.Put(e)
						break
					}
				}
			}
		}
		a.EntryPoints = sorted(entries)
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y Area) int { return slices.Compare(x.Regions, y.Regions) })
	return out
}

func subset(a, b mapset.Set[int]) bool {
	if a.Size() > b.Size() {
		return false
	}
	ok := true
	a.Each(func(r int) {
		if !b.Has(r) {
			ok = false
		}
	})
	return ok
}

func intersect(a, b mapset.Set[int]) mapset.Set[int] {
	out := mapset.New[int]()
	a.Each(func(r int) {
		if b.Has(r) {
			out.Put(r)
		}
	})
	return out
}

func only(s mapset.Set[int]) int {
	v := -1
	s.Each(func(r int) { v = r })
	return v
}
