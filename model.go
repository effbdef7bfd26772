package mazegraph

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegraph/bfs"
	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/dfs"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/logger"
	"github.com/katalvlaran/mazegraph/prune"
	"github.com/katalvlaran/mazegraph/region"
	"github.com/katalvlaran/mazegraph/score"
)

// Model is the frozen result of one BuildGraph call.
//
// Every slice returned by a query is a fresh copy owned by the caller.
// Unknown region ids never fail: the query logs a warning and returns an
// empty result.
type Model struct {
	mu sync.RWMutex

	grid    *gridgraph.Grid
	cfg     config.Config
	regions *region.Set
	graph   *junction.Graph
	weights []float64
	scores  []score.Region
	pruned  *prune.Result

	cycles    []dfs.Cycle
	truncated bool
	reachable []int

	priorities map[int]string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Grid returns the grid the model was built from.
func (m *Model) Grid() *gridgraph.Grid { return m.grid }

// Config returns the configuration the model was built with.
func (m *Model) Config() config.Config { return m.cfg }

func (m *Model) lookup(id int) (*region.Region, bool) {
	r, ok := m.regions.Region(id)
	if !ok {
		logger.Warning("unknown region id", "region", id, "regions", len(m.regions.Regions))
	}
	return r, ok
}

// Regions returns a copy of every region, indexed by id.
func (m *Model) Regions() []region.Region {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]region.Region, len(m.regions.Regions))
	for i, r := range m.regions.Regions {
		out[i] = region.Region{
			ID:       r.ID,
			State:    r.State,
			All:      slices.Clone(r.All),
			Ends:     slices.Clone(r.Ends),
			DeadEnds: slices.Clone(r.DeadEnds),
			Loop:     r.Loop,
		}
	}
	return out
}

// RegionCells returns the cells of region id, ascending.
func (m *Model) RegionCells(id int) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.lookup(id)
	if !ok {
		return nil
	}
	return slices.Clone(r.All)
}

// Junctions returns the junction cells bounding region id, ascending.
func (m *Model) Junctions(id int) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.lookup(id)
	if !ok {
		return nil
	}
	return slices.Clone(r.Ends)
}

// Nodes returns a copy of the junction nodes.
func (m *Model) Nodes() []junction.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]junction.Node, len(m.graph.Nodes))
	for i, n := range m.graph.Nodes {
		out[i] = junction.Node{ID: n.ID, Cell: n.Cell, Regions: slices.Clone(n.Regions)}
	}
	return out
}

// Edges returns a copy of the junction edge list.
func (m *Model) Edges() []junction.Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.graph.Edges)
}

// Reachable returns, ascending, the nodes reachable from the junction
// nearest to the grid's start cell.
func (m *Model) Reachable() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.reachable)
}

// FindPath returns a minimum-hop path between nodes from and to that never
// crosses a region listed in avoid.
func (m *Model) FindPath(from, to int, avoid ...int) (*ChartedPath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.findPath(from, to, avoid)
}

func (m *Model) findPath(from, to int, avoid []int) (*ChartedPath, error) {
	res, err := bfs.Bidirectional(m.graph, from, to,
		bfs.WithAvoidRegions(avoid...),
		bfs.WithMaxHops(m.cfg.Search.MaxHops))
	switch {
	case errors.Is(err, bfs.ErrNodeNotFound):
		return nil, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	case errors.Is(err, bfs.ErrNoPath):
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	case err != nil:
		return nil, err
	}

	p := &ChartedPath{
		Waypoints: make([]int, len(res.Nodes)),
		Regions:   res.Regions,
	}
	for i, v := range res.Nodes {
		p.Waypoints[i] = m.graph.Nodes[v].Cell
	}
	return p, nil
}

// FindCellPath returns a path between two walkable cells. Cells sharing a
// region are joined directly; otherwise each cell is resolved to its
// nearest junction and the junctions are joined with FindPath.
func (m *Model) FindCellPath(fromCell, toCell int, avoid ...int) (*ChartedPath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fromRegions, toRegions := m.membership(fromCell), m.membership(toCell)
	if len(fromRegions) == 0 || len(toRegions) == 0 {
		return nil, fmt.Errorf("%w: cell %d or %d is not in a region", ErrNoPath, fromCell, toCell)
	}
	if fromCell == toCell {
		return &ChartedPath{Waypoints: []int{fromCell}}, nil
	}

	skip := mapset.New[int]()
	for _, r := range avoid {
		skip.Put(r)
	}
	for _, r := range fromRegions {
		if !skip.Has(r) && slices.Contains(toRegions, r) {
			return &ChartedPath{Waypoints: []int{fromCell, toCell}, Regions: []int{r}}, nil
		}
	}

	a, ra, ok := m.nearest(fromCell, skip)
	if !ok {
		return nil, fmt.Errorf("%w: no junction near cell %d", ErrNoPath, fromCell)
	}
	b, rb, ok := m.nearest(toCell, skip)
	if !ok {
		return nil, fmt.Errorf("%w: no junction near cell %d", ErrNoPath, toCell)
	}

	mid, err := m.findPath(a.Node, b.Node, avoid)
	if err != nil {
		return nil, err
	}

	p := &ChartedPath{}
	if a.Hops > 0 {
		p.Waypoints = append(p.Waypoints, fromCell)
		p.Regions = append(p.Regions, ra)
	}
	p.Waypoints = append(p.Waypoints, mid.Waypoints...)
	p.Regions = append(p.Regions, mid.Regions...)
	if b.Hops > 0 {
		p.Waypoints = append(p.Waypoints, toCell)
		p.Regions = append(p.Regions, rb)
	}
	return p, nil
}

func (m *Model) membership(cell int) []int {
	if cell < 0 || cell >= len(m.regions.Membership) {
		return nil
	}
	return m.regions.Membership[cell]
}

// nearest resolves cell to its closest junction over the regions it belongs
// to, skipping avoided regions. Ties go to the lower node, then the lower
// region.
func (m *Model) nearest(cell int, skip mapset.Set[int]) (gridgraph.JunctionDistance, int, bool) {
	var (
		best gridgraph.JunctionDistance
		via  = -1
	)
	byRegion := m.graph.Distances(cell)
	for _, r := range m.membership(cell) {
		list := byRegion[r]
		if skip.Has(r) || len(list) == 0 {
			continue
		}
		d := list[0]
		if via < 0 || d.Hops < best.Hops || d.Hops == best.Hops && d.Node < best.Node {
			best, via = d, r
		}
	}
	return best, via, via >= 0
}

// LoopCount returns the number of enumerated loops.
func (m *Model) LoopCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cycles)
}

// LoopsTruncated reports whether loop enumeration hit one of its caps.
func (m *Model) LoopsTruncated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.truncated
}

// Loop returns loop i as a cyclic charted path over junction cells.
func (m *Model) Loop(i int) (*ChartedPath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.cycles) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoLoop, i, len(m.cycles))
	}
	return m.loop(i), nil
}

// RandomLoop returns a loop picked with the model's seeded generator.
func (m *Model) RandomLoop() (*ChartedPath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.cycles) == 0 {
		return nil, ErrNoLoop
	}
	return m.loop(m.intn(len(m.cycles))), nil
}

func (m *Model) loop(i int) *ChartedPath {
	c := m.cycles[i]
	p := &ChartedPath{
		Waypoints: make([]int, len(c.Nodes)),
		Regions:   slices.Clone(c.Regions),
		loop:      true,
	}
	for k, v := range c.Nodes {
		p.Waypoints[k] = m.graph.Nodes[v].Cell
	}
	return p
}

func (m *Model) intn(n int) int {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()

	return m.rng.Intn(n)
}

// IsolatedAreas returns a copy of every isolated-area set.
func (m *Model) IsolatedAreas() []prune.Area {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]prune.Area, len(m.pruned.Areas))
	for i, a := range m.pruned.Areas {
		out[i] = prune.Area{
			Regions:     slices.Clone(a.Regions),
			EntryPoints: slices.Clone(a.EntryPoints),
			Weight:      a.Weight,
		}
	}
	return out
}

// IsolatedArea returns the regions of a randomly picked isolated area that
// shares no region with exclude. It returns false when none qualifies.
func (m *Model) IsolatedArea(exclude ...int) ([]int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	skip := mapset.New[int]()
	for _, r := range exclude {
		skip.Put(r)
	}
	var eligible []int
	for i, a := range m.pruned.Areas {
		if !slices.ContainsFunc(a.Regions, skip.Has) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return nil, false
	}
	pick := eligible[0]
	if len(eligible) > 1 {
		pick = eligible[m.intn(len(eligible))]
	}
	return slices.Clone(m.pruned.Areas[pick].Regions), true
}

// RegionWeight returns the summed weight of the given distinct regions.
func (m *Model) RegionWeight(ids ...int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range ids {
		m.lookup(id)
	}
	return score.Weight(m.weights, ids...)
}

// Score returns the scores of region id.
func (m *Model) Score(id int) (score.Region, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.lookup(id); !ok {
		return score.Region{}, false
	}
	return m.scores[id], true
}

// AreaScore aggregates the scores of the given regions.
func (m *Model) AreaScore(ids ...int) score.Area {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return score.Aggregate(m.regions, m.scores, ids)
}

// SetRegionPriority tags region id. An empty tag clears it. It reports
// whether the region exists.
func (m *Model) SetRegionPriority(id int, tag string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(id); !ok {
		return false
	}
	if tag == "" {
		delete(m.priorities, id)
		return true
	}
	m.priorities[id] = tag
	return true
}

// RegionsByPriority returns, ascending, the regions tagged with tag.
func (m *Model) RegionsByPriority(tag string) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for id, t := range m.priorities {
		if t == tag {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}
