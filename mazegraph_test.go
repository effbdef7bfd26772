package mazegraph_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph"
	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/internal/fixture"
)

func build(t *testing.T, layout []string, opts ...mazegraph.Option) (*gridgraph.Grid, *mazegraph.Model) {
	t.Helper()
	g := fixture.Parse(t, layout)
	m, err := mazegraph.BuildGraph(g, opts...)
	require.NoError(t, err)
	return g, m
}

func TestBuildGraph_Corridor(t *testing.T) {
	g, m := build(t, fixture.Corridor)

	require.Len(t, m.Regions(), 1)
	assert.Equal(t, []int{0, 1, 2}, m.RegionCells(0))
	assert.Empty(t, m.Junctions(0))
	assert.Empty(t, m.Nodes())
	assert.Empty(t, m.Edges())
	assert.Zero(t, m.LoopCount())
	assert.Empty(t, m.IsolatedAreas())
	assert.Empty(t, m.Reachable())
	assert.InDelta(t, 1.0, m.RegionWeight(0), 1e-12)

	_, err := m.Loop(0)
	assert.ErrorIs(t, err, mazegraph.ErrNoLoop)
	_, err = m.RandomLoop()
	assert.ErrorIs(t, err, mazegraph.ErrNoLoop)
	_, err = m.FindPath(0, 1)
	assert.ErrorIs(t, err, mazegraph.ErrUnknownNode)

	p, err := m.FindCellPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, p.Waypoints)
	assert.Equal(t, []int{0}, p.Regions)

	for _, id := range []int{0, 2} {
		c := g.Cell(id)
		assert.True(t, c.Has(gridgraph.DeadEnd))
		assert.False(t, c.Has(gridgraph.LockedJunction))
		assert.Equal(t, []int{0}, c.Regions)
		assert.Equal(t, -1, c.NodeID)
	}
}

func TestBuildGraph_Ring(t *testing.T) {
	g, m := build(t, fixture.Ring)

	require.Len(t, m.Regions(), 1)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Junctions(0))
	assert.Len(t, m.Nodes(), 4)
	assert.Len(t, m.Edges(), 4)
	assert.Empty(t, m.IsolatedAreas())
	assert.Equal(t, []int{0, 1, 2, 3}, m.Reachable())

	require.Equal(t, 1, m.LoopCount())
	loop, err := m.Loop(0)
	require.NoError(t, err)
	assert.True(t, loop.IsLoop())
	assert.Equal(t, []int{0, 1, 3, 2}, loop.Waypoints)
	assert.Equal(t, []int{0, 0, 0, 0}, loop.Regions)

	random, err := m.RandomLoop()
	require.NoError(t, err)
	assert.Equal(t, loop.Waypoints, random.Waypoints)

	for id := 0; id < 4; id++ {
		c := g.Cell(id)
		assert.True(t, c.Has(gridgraph.LockedJunction))
		assert.False(t, c.Has(gridgraph.Unloopable))
		assert.Equal(t, id, c.NodeID)
	}
}

func TestBuildGraph_Lollipop(t *testing.T) {
	g, m := build(t, fixture.Lollipop)

	regions := m.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, []int{6}, m.Junctions(1))
	assert.Equal(t, []int{9}, regions[1].DeadEnds)

	area, ok := m.IsolatedArea()
	require.True(t, ok)
	assert.Equal(t, []int{1}, area)
	_, ok = m.IsolatedArea(1)
	assert.False(t, ok)

	areas := m.IsolatedAreas()
	require.Len(t, areas, 1)
	assert.Equal(t, []int{6}, areas[0].EntryPoints)

	loop, err := m.Loop(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 6, 1}, loop.Waypoints)

	attach := g.Cell(6)
	assert.True(t, attach.Has(gridgraph.LockedJunction))
	assert.False(t, attach.Has(gridgraph.Unloopable))
	assert.Equal(t, []int{0, 1}, attach.Regions)
	assert.Equal(t, 3, attach.NodeID)
	for _, id := range []int{7, 8, 9} {
		assert.True(t, g.Cell(id).Has(gridgraph.Unloopable), "cell %d", id)
	}
	assert.True(t, g.Cell(9).Has(gridgraph.DeadEnd))
	require.Contains(t, g.Cell(9).Distances, 1)
	assert.Equal(t, 3, g.Cell(9).Distances[1][0].Hops)
}

func TestFindCellPath_Lollipop(t *testing.T) {
	_, m := build(t, fixture.Lollipop)

	p, err := m.FindCellPath(9, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 6, 1, 0}, p.Waypoints)
	assert.Equal(t, []int{1, 0, 0}, p.Regions)
	assert.False(t, p.IsLoop())

	p, err = m.FindCellPath(7, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 9}, p.Waypoints)

	_, err = m.FindCellPath(9, 0, 0)
	assert.ErrorIs(t, err, mazegraph.ErrNoPath)
	_, err = m.FindCellPath(9, 42)
	assert.ErrorIs(t, err, mazegraph.ErrNoPath)

	_, err = m.FindPath(3, 0, 0)
	assert.ErrorIs(t, err, mazegraph.ErrNoPath)
}

func TestModel_UnknownRegions(t *testing.T) {
	_, m := build(t, fixture.Lollipop)

	assert.Nil(t, m.RegionCells(7))
	assert.Nil(t, m.Junctions(-1))
	assert.InDelta(t, 0.5, m.RegionWeight(1, 7), 1e-12)
	_, ok := m.Score(7)
	assert.False(t, ok)
	assert.False(t, m.SetRegionPriority(7, "guard"))
}

func TestModel_Priorities(t *testing.T) {
	_, m := build(t, fixture.Stub)

	assert.True(t, m.SetRegionPriority(2, "guard"))
	assert.True(t, m.SetRegionPriority(0, "guard"))
	assert.True(t, m.SetRegionPriority(1, "loot"))
	assert.Equal(t, []int{0, 2}, m.RegionsByPriority("guard"))
	assert.Equal(t, []int{1}, m.RegionsByPriority("loot"))

	assert.True(t, m.SetRegionPriority(0, ""))
	assert.Equal(t, []int{2}, m.RegionsByPriority("guard"))
	assert.Empty(t, m.RegionsByPriority("none"))
}

func TestModel_Scores(t *testing.T) {
	_, m := build(t, []string{
		"o-o-o-4",
		"|",
		"8",
	})

	sc, ok := m.Score(0)
	require.True(t, ok)
	assert.Equal(t, 6.0, sc.Placement)
	assert.Equal(t, 3.0, sc.Weighted)

	a := m.AreaScore(0)
	assert.Equal(t, 6.0, a.Placement)
	assert.Equal(t, 3.0, a.Weighted)
}

func TestBuildGraph_Options(t *testing.T) {
	g := fixture.Parse(t, fixture.Ring)

	_, err := mazegraph.BuildGraph(nil)
	assert.ErrorIs(t, err, mazegraph.ErrGridNil)
	_, err = mazegraph.BuildGraph(g, mazegraph.WithConfig(nil))
	assert.ErrorIs(t, err, mazegraph.ErrOptionViolation)
	_, err = mazegraph.BuildGraph(g, mazegraph.WithRecursionLimit(0))
	assert.ErrorIs(t, err, config.ErrInvalid)

	m, err := mazegraph.BuildGraph(g, mazegraph.WithLoopSearchLimit(0))
	require.NoError(t, err)
	assert.Zero(t, m.LoopCount())

	cfg := config.Default()
	cfg.Refine.PromoteLoops = false
	m, err = mazegraph.BuildGraph(g, mazegraph.WithConfig(cfg), mazegraph.WithSeed(9))
	require.NoError(t, err)
	assert.Empty(t, m.Nodes())
	assert.Equal(t, int64(9), m.Config().Seed)
	assert.False(t, m.Config().Refine.PromoteLoops)
}

// TestBuildGraph_FailureKeepsAnnotations checks that a rejected build leaves
// the previous annotations untouched.
func TestBuildGraph_FailureKeepsAnnotations(t *testing.T) {
	g, _ := build(t, fixture.Lollipop)
	before := make([]gridgraph.Cell, g.Len())
	for id := range before {
		before[id] = *g.Cell(id)
	}

	_, err := mazegraph.BuildGraph(g, mazegraph.WithIsolationMaxWeight(2))
	require.ErrorIs(t, err, config.ErrInvalid)

	for id := range before {
		c := g.Cell(id)
		assert.Equal(t, before[id].Regions, c.Regions, "cell %d", id)
		assert.Equal(t, before[id].Flags, c.Flags, "cell %d", id)
		assert.Equal(t, before[id].NodeID, c.NodeID, "cell %d", id)
	}
}

func TestBuildGraph_Idempotent(t *testing.T) {
	g, first := build(t, fixture.Rooms)
	snapshot := make([]gridgraph.Cell, g.Len())
	for id := range snapshot {
		snapshot[id] = *g.Cell(id)
	}

	second, err := mazegraph.BuildGraph(g)
	require.NoError(t, err)
	assert.Equal(t, first.Edges(), second.Edges())
	for id := range snapshot {
		c := g.Cell(id)
		assert.Equal(t, snapshot[id].Regions, c.Regions)
		assert.Equal(t, snapshot[id].Flags, c.Flags)
		assert.Equal(t, snapshot[id].NodeID, c.NodeID)
	}
}

// TestBuildGraph_Rooms checks the connectivity and weight properties on a
// fully connected maze with placed content.
func TestBuildGraph_Rooms(t *testing.T) {
	g, m := build(t, fixture.Rooms)

	nodes := m.Nodes()
	require.NotEmpty(t, nodes)
	reach := m.Reachable()
	assert.Len(t, reach, len(nodes))

	regions := m.Regions()
	ids := make([]int, len(regions))
	for i := range regions {
		ids[i] = i
	}
	assert.InDelta(t, 1.0, m.RegionWeight(ids...), 1e-9)

	for _, n := range nodes {
		assert.Equal(t, n.ID, g.Cell(n.Cell).NodeID)
		assert.True(t, g.Cell(n.Cell).Has(gridgraph.LockedJunction))
	}
	for i := 0; i < m.LoopCount(); i++ {
		loop, err := m.Loop(i)
		require.NoError(t, err)
		assert.Len(t, loop.Regions, loop.Len())
		for _, cell := range loop.Waypoints {
			assert.GreaterOrEqual(t, g.Cell(cell).NodeID, 0)
		}
	}
}

func TestBuildGraph_RandomMazes(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g := fixture.RandomMaze(t, 14, 12, seed)
		m, err := mazegraph.BuildGraph(g, mazegraph.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		regions := m.Regions()
		for id := 0; id < g.Len(); id++ {
			c := g.Cell(id)
			if !c.State.Walkable() {
				assert.Empty(t, c.Regions)
				continue
			}
			require.NotEmpty(t, c.Regions, "seed %d cell %d", seed, id)
			for _, r := range c.Regions {
				assert.Contains(t, regions[r].All, id)
			}
		}

		nodes := m.Nodes()
		for i := 0; i < 10 && len(nodes) > 1; i++ {
			a, b := nodes[(i*7)%len(nodes)], nodes[(i*13+1)%len(nodes)]
			p, err := m.FindPath(a.ID, b.ID)
			if err != nil {
				assert.ErrorIs(t, err, mazegraph.ErrNoPath)
				continue
			}
			assert.Equal(t, a.Cell, p.Waypoints[0])
			assert.Equal(t, b.Cell, p.Waypoints[p.Len()-1])
			assert.Len(t, p.Regions, p.Len()-1)
		}
	}
}

func TestModel_SeededRandomness(t *testing.T) {
	_, a := build(t, fixture.Lattice, mazegraph.WithSeed(42))
	_, b := build(t, fixture.Lattice, mazegraph.WithSeed(42))
	require.Greater(t, a.LoopCount(), 1)

	for i := 0; i < 10; i++ {
		la, err := a.RandomLoop()
		require.NoError(t, err)
		lb, err := b.RandomLoop()
		require.NoError(t, err)
		assert.Equal(t, la.Waypoints, lb.Waypoints)
		assert.Equal(t, la.Regions, lb.Regions)
	}
}

func TestModel_ConcurrentQueries(t *testing.T) {
	_, m := build(t, fixture.Rooms)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = m.RegionCells(i % 5)
				_ = m.RegionWeight(0, 1)
				_, _ = m.RandomLoop()
				_, _ = m.IsolatedArea()
				_ = m.SetRegionPriority(w%3, "guard")
				_ = m.RegionsByPriority("guard")
				_, _ = m.FindCellPath(0, 10)
			}
		}(w)
	}
	wg.Wait()
}

// TestBuildGraph_DenseMazeIsBounded builds heavily cross-linked mazes with the
// default caps; loop enumeration must stop on its budget instead of running
// through every parallel-region combination.
func TestBuildGraph_DenseMazeIsBounded(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		g := fixture.DenseMaze(t, 20, 20, 200, seed)

		type outcome struct {
			m   *mazegraph.Model
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			m, err := mazegraph.BuildGraph(g)
			done <- outcome{m, err}
		}()

		select {
		case out := <-done:
			require.NoError(t, out.err, "seed %d", seed)
			assert.LessOrEqual(t, out.m.LoopCount(), out.m.Config().Cycles.LoopSearchLimit)
			assert.Len(t, out.m.Reachable(), len(out.m.Nodes()), "seed %d", seed)
		case <-time.After(20 * time.Second):
			t.Fatalf("seed %d: BuildGraph did not finish within 20s", seed)
		}
	}
}

func TestBuildGraph_StepLimitOption(t *testing.T) {
	g := fixture.DenseMaze(t, 12, 12, 80, 5)

	m, err := mazegraph.BuildGraph(g, mazegraph.WithStepLimit(1), mazegraph.WithLoopSearchLimit(1<<20))
	require.NoError(t, err)
	assert.True(t, m.LoopsTruncated())
	assert.Zero(t, m.LoopCount())

	_, err = mazegraph.BuildGraph(g, mazegraph.WithStepLimit(0))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestBuildGraph_CellCacheIsACopy edits the committed distance caches and
// checks that path queries still use the model's own.
func TestBuildGraph_CellCacheIsACopy(t *testing.T) {
	g, m := build(t, fixture.Lollipop)

	g.Cell(9).Distances[1][0].Hops = 99
	g.Cell(9).Distances[1][0].Node = 0
	delete(g.Cell(0).Distances, 0)

	p, err := m.FindCellPath(9, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 6, 1, 0}, p.Waypoints)
	assert.Equal(t, []int{1, 0, 0}, p.Regions)
}
