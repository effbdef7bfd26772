// Package score computes per-region weights and content-placement scores.
package score

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/region"
)

var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("score: grid is nil")
	// ErrSetNil is returned when a nil region set is passed.
	ErrSetNil = errors.New("score: region set is nil")
)

// Region holds the scores of one region.
type Region struct {
	ID int
	// Weight is the region's share of all walkable cells. A junction shared
	// by k regions counts 1/k towards each.
	Weight float64
	// Placement is the mean desirability of the Occupied cells attached to
	// the region, or 0.
	Placement float64
	// Junctions is the adjusted junction count used as the divisor.
	Junctions int
	// Weighted is Placement × Weight / Junctions.
	Weighted float64
}

// Area holds the aggregate scores of a set of regions.
type Area struct {
	// Placement is the cell-count-weighted mean placement of the members.
	Placement float64
	// Weighted is the mean weighted score of the members.
	Weighted float64
}

// Weights returns the weight of every region of s, indexed by region id.
// The weights sum to 1 when s has walkable cells.
func Weights(s *region.Set) []float64 {
	if s == nil {
		return nil
	}
	w := make([]float64, len(s.Regions))
	if s.Walkable == 0 {
		return w
	}
	total := float64(s.Walkable)
	for _, r := range s.Regions {
		for _, id := range r.All {
			w[r.ID] += 1 / float64(len(s.Membership[id]))
		}
		w[r.ID] /= total
	}
	return w
}

// Regions scores every region of s.
func Regions(g *gridgraph.Grid, s *region.Set) ([]Region, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if s == nil {
		return nil, ErrSetNil
	}

	weights := Weights(s)
	out := make([]Region, len(s.Regions))
	for i := range s.Regions {
		r := &s.Regions[i]
		sc := Region{ID: r.ID, Weight: weights[r.ID]}
		sc.Placement = placement(g, r)
		sc.Junctions = adjustedJunctions(r)
		sc.Weighted = sc.Placement * sc.Weight / float64(sc.Junctions)
		out[i] = sc
	}
	return out, nil
}

// placement averages the desirability of the distinct Occupied cells linked
// to any cell of r.
func placement(g *gridgraph.Grid, r *region.Region) float64 {
	placed := mapset.New[int]()
	for _, id := range r.All {
		for _, p := range g.PlacedNeighbors(id) {
			placed.Put(p)
		}
	}
	if placed.Size() == 0 {
		return 0
	}
	sum := 0.0
	placed.Each(func(p int) {
		sum += g.Cell(p).Placement
	})
	return sum / float64(placed.Size())
}

// adjustedJunctions counts ends and dead ends; a one-end pocket holding a
// dead end counts one less. The result is at least 1.
func adjustedJunctions(r *region.Region) int {
	n := len(r.Ends) + len(r.DeadEnds)
	if len(r.Ends) == 1 && len(r.DeadEnds) > 0 {
		n--
	}
	return max(n, 1)
}

// Weight sums the weights of the distinct region ids. Unknown ids add nothing.
func Weight(weights []float64, ids ...int) float64 {
	seen := mapset.New[int]()
	sum := 0.0
	for _, id := range ids {
		if id < 0 || id >= len(weights) || seen.Has(id) {
			continue
		}
		seen.Put(id)
		sum += weights[id]
	}
	return sum
}

// Aggregate scores a set of regions as one area. Unknown ids are skipped.
func Aggregate(s *region.Set, scores []Region, ids []int) Area {
	var a Area
	if s == nil {
		return a
	}
	cells, n := 0, 0
	for _, id := range ids {
		if id < 0 || id >= len(scores) || id >= len(s.Regions) {
			continue
		}
		k := len(s.Regions[id].All)
		a.Placement += scores[id].Placement * float64(k)
		a.Weighted += scores[id].Weighted
		cells += k
		n++
	}
	if cells > 0 {
		a.Placement /= float64(cells)
	}
	if n > 0 {
		a.Weighted /= float64(n)
	}
	return a
}
