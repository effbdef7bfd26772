package mazegraph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/dfs"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/logger"
	"github.com/katalvlaran/mazegraph/prune"
	"github.com/katalvlaran/mazegraph/region"
	"github.com/katalvlaran/mazegraph/score"
)

// BuildGraph runs the full pipeline over g and returns the query model.
//
// Steps:
//  1. Assemble and refine regions (region.Build).
//  2. Promote junctions to nodes and connect them (junction.Build).
//  3. Weigh and score regions (score).
//  4. Peel dead branches and group isolated areas (prune.Prune).
//  5. Enumerate patrol loops over the remaining nodes (dfs.Cycles).
//  6. Commit annotations to the grid cells.
//
// Nothing is written to the grid before step 6, so any error leaves the
// cells exactly as they were.
func BuildGraph(g *gridgraph.Grid, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := options{cfg: *config.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	cfg := o.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := region.Build(g,
		region.WithMaxPasses(cfg.Refine.MaxPasses),
		region.WithMergeThresholds(cfg.Refine.MergeMaxTouch, cfg.Refine.MergeMaxTouchLarge, cfg.Refine.MergeLargeRegionCells),
		region.WithConsolidate(cfg.Refine.ConsolidateCorners),
		region.WithPromoteLoops(cfg.Refine.PromoteLoops))
	if err != nil {
		return nil, classify(err)
	}

	gr, err := junction.Build(g, s)
	if err != nil {
		return nil, classify(err)
	}

	weights := score.Weights(s)
	scores, err := score.Regions(g, s)
	if err != nil {
		return nil, classify(err)
	}

	pr, err := prune.Prune(gr, s, weights,
		prune.WithMaxWeight(cfg.Isolation.MaxWeight),
		prune.WithMinWeight(cfg.Isolation.MinWeight),
		prune.WithPairMaxWeight(cfg.Isolation.PairMaxWeight))
	if err != nil {
		return nil, classify(err)
	}

	cycles := &dfs.Result{}
	if cfg.Cycles.LoopSearchLimit > 0 {
		cycles, err = dfs.Cycles(gr,
			dfs.WithExcluded(pr.Unloopable),
			dfs.WithRecursionLimit(cfg.Cycles.RecursionLimit),
			dfs.WithLoopSearchLimit(cfg.Cycles.LoopSearchLimit),
			dfs.WithStepLimit(cfg.Cycles.StepLimit))
		if err != nil {
			return nil, classify(err)
		}
	}

	m := &Model{
		grid:       g,
		cfg:        cfg,
		regions:    s,
		graph:      gr,
		weights:    weights,
		scores:     scores,
		pruned:     pr,
		cycles:     cycles.Cycles,
		truncated:  cycles.Truncated,
		priorities: make(map[int]string),
		rng:        rngFromSeed(cfg.Seed),
	}
	m.reachable = m.reach()
	m.commit()

	logger.Debug("maze graph built",
		"regions", len(s.Regions),
		"nodes", len(gr.Nodes),
		"edges", len(gr.Edges),
		"loops", len(m.cycles),
		"isolatedAreas", len(pr.Areas),
		"truncated", cycles.Truncated)

	return m, nil
}

// classify maps stage errors onto the package sentinels. Anything that is
// not an option error is an inconsistency and is logged as a failed build.
func classify(err error) error {
	if errors.Is(err, region.ErrOptionViolation) ||
		errors.Is(err, prune.ErrOptionViolation) ||
		errors.Is(err, dfs.ErrOptionViolation) {
		return fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	logger.Error("maze graph build failed; grid annotations left unchanged", "err", err)
	return fmt.Errorf("%w: %w", ErrInconsistent, err)
}

// reach lists the nodes reachable from the junction nearest to the grid's
// start cell, ascending.
func (m *Model) reach() []int {
	start := m.grid.Start()
	if start < 0 {
		return nil
	}
	d, ok := m.graph.Nearest(start)
	if !ok {
		return nil
	}
	out := m.graph.Reach(d.Node)
	slices.Sort(out)
	return out
}

// commit replaces every annotation on the grid's cells with the results of
// this build.
func (m *Model) commit() {
	g := m.grid
	g.ResetAnnotations()

	unloopable := make([]bool, g.Len())
	for _, id := range m.pruned.UnloopableCells {
		unloopable[id] = true
	}
	for id := 0; id < g.Len(); id++ {
		c := g.Cell(id)
		if len(m.regions.Membership[id]) > 0 {
			c.Regions = slices.Clone(m.regions.Membership[id])
		}
		if m.regions.Locked[id] {
			c.Flags |= gridgraph.LockedJunction
		}
		if m.regions.DeadEnd[id] {
			c.Flags |= gridgraph.DeadEnd
		}
		if unloopable[id] {
			c.Flags |= gridgraph.Unloopable
		}
		if n, ok := m.graph.NodeOf(id); ok {
			c.NodeID = n
		}
		c.Distances = cloneDistances(m.graph.Distances(id))
	}
}

// cloneDistances deep-copies a distance cache so that cells never share the
// model's maps.
func cloneDistances(src map[int][]gridgraph.JunctionDistance) map[int][]gridgraph.JunctionDistance {
	if src == nil {
		return nil
	}
	out := make(map[int][]gridgraph.JunctionDistance, len(src))
	for r, list := range src {
		out[r] = slices.Clone(list)
	}
	return out
}
