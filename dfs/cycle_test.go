package dfs_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/dfs"
	"github.com/katalvlaran/mazegraph/internal/fixture"
	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/prune"
	"github.com/katalvlaran/mazegraph/region"
	"github.com/katalvlaran/mazegraph/score"
)

func graphOf(t *testing.T, layout []string) *junction.Graph {
	t.Helper()
	g := fixture.Parse(t, layout)
	s, err := region.Build(g)
	require.NoError(t, err)
	gr, err := junction.Build(g, s)
	require.NoError(t, err)
	return gr
}

// TestCycles_NilGraph verifies Cycles rejects nil input.
func TestCycles_NilGraph(t *testing.T) {
	_, err := dfs.Cycles(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestCycles_Corridor has no junctions and so no cycles.
func TestCycles_Corridor(t *testing.T) {
	res, err := dfs.Cycles(graphOf(t, fixture.Corridor))
	require.NoError(t, err)
	assert.Empty(t, res.Cycles)
	assert.False(t, res.Truncated)
}

// TestCycles_Ring finds the single four-node loop of a 2×2 ring, all on one region.
func TestCycles_Ring(t *testing.T) {
	res, err := dfs.Cycles(graphOf(t, fixture.Ring))
	require.NoError(t, err)
	require.Len(t, res.Cycles, 1)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Cycles[0].Nodes)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Cycles[0].Regions)
	assert.Equal(t, 4, res.Cycles[0].Len())
}

// TestCycles_Lollipop seeds from the attachment node and rotates to node 0.
func TestCycles_Lollipop(t *testing.T) {
	res, err := dfs.Cycles(graphOf(t, fixture.Lollipop))
	require.NoError(t, err)
	require.Len(t, res.Cycles, 1)
	assert.Equal(t, []int{0, 2, 3, 1}, res.Cycles[0].Nodes)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Cycles[0].Regions)
}

// TestCycles_Triangle keeps one of the two traversal directions.
func TestCycles_Triangle(t *testing.T) {
	gr := junction.FromEdges(3, []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 1, To: 2, Region: 1},
		{From: 0, To: 2, Region: 2},
	})

	res, err := dfs.Cycles(gr)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Cycle{{Nodes: []int{0, 1, 2}, Regions: []int{0, 1, 2}}}, res.Cycles)
}

// TestCycles_TwoNodeMultigraph closes through a parallel edge of another region.
func TestCycles_TwoNodeMultigraph(t *testing.T) {
	gr := junction.FromEdges(2, []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 1, To: 0, Region: 1},
	})

	res, err := dfs.Cycles(gr)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Cycle{{Nodes: []int{0, 1}, Regions: []int{0, 1}}}, res.Cycles)
}

// TestCycles_SameRegionBackAndForth is not a cycle.
func TestCycles_SameRegionBackAndForth(t *testing.T) {
	gr := junction.FromEdges(2, []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 0, To: 1, Region: 0},
	})

	res, err := dfs.Cycles(gr)
	require.NoError(t, err)
	assert.Empty(t, res.Cycles)
}

// TestCycles_LoopRegion allows consecutive edges of one region only when it is a loop.
func TestCycles_LoopRegion(t *testing.T) {
	edges := []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 1, To: 2, Region: 0},
		{From: 2, To: 3, Region: 0},
		{From: 0, To: 3, Region: 0},
	}

	res, err := dfs.Cycles(junction.FromEdges(4, edges, 0))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Cycle{{Nodes: []int{0, 1, 2, 3}, Regions: []int{0, 0, 0, 0}}}, res.Cycles)

	res, err = dfs.Cycles(junction.FromEdges(4, edges))
	require.NoError(t, err)
	assert.Empty(t, res.Cycles)
}

func complete4() *junction.Graph {
	var edges []junction.Edge
	r := 0
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			edges = append(edges, junction.Edge{From: a, To: b, Region: r})
			r++
		}
	}
	return junction.FromEdges(4, edges)
}

// TestCycles_Complete4 finds four triangles and three Hamiltonian cycles.
func TestCycles_Complete4(t *testing.T) {
	res, err := dfs.Cycles(complete4())
	require.NoError(t, err)
	assert.Len(t, res.Cycles, 7)
	assert.False(t, res.Truncated)

	for i := 1; i < len(res.Cycles); i++ {
		assert.LessOrEqual(t, slices.Compare(res.Cycles[i-1].Nodes, res.Cycles[i].Nodes), 0)
	}
}

func TestCycles_Limits(t *testing.T) {
	res, err := dfs.Cycles(complete4(), dfs.WithLoopSearchLimit(1))
	require.NoError(t, err)
	assert.Len(t, res.Cycles, 1)
	assert.True(t, res.Truncated)

	tri := junction.FromEdges(3, []junction.Edge{
		{From: 0, To: 1, Region: 0},
		{From: 1, To: 2, Region: 1},
		{From: 0, To: 2, Region: 2},
	})
	res, err = dfs.Cycles(tri, dfs.WithRecursionLimit(2))
	require.NoError(t, err)
	assert.Len(t, res.Cycles, 1)

	res, err = dfs.Cycles(tri, dfs.WithRecursionLimit(1))
	require.NoError(t, err)
	assert.Empty(t, res.Cycles)
	assert.True(t, res.Truncated)
}

func TestCycles_Filter(t *testing.T) {
	gr := complete4()

	res, err := dfs.Cycles(gr, dfs.WithFilterNode(func(node int) bool { return node != 3 }))
	require.NoError(t, err)
	require.Len(t, res.Cycles, 1)
	assert.Equal(t, []int{0, 1, 2}, res.Cycles[0].Nodes)

	res, err = dfs.Cycles(gr, dfs.WithExcluded([]bool{false, true, false, true}))
	require.NoError(t, err)
	assert.Empty(t, res.Cycles)
}

func TestCycles_OptionErrors(t *testing.T) {
	gr := complete4()
	for _, opt := range []dfs.Option{dfs.WithRecursionLimit(0), dfs.WithLoopSearchLimit(-3), dfs.WithStepLimit(0)} {
		_, err := dfs.Cycles(gr, opt)
		assert.ErrorIs(t, err, dfs.ErrOptionViolation)
	}
}

// TestCycles_RandomMazes checks every recorded cycle against the rules and
// that no cycle is a rotation or reversal of another.
func TestCycles_RandomMazes(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := fixture.RandomMaze(t, 12, 10, seed)
		s, err := region.Build(g)
		require.NoError(t, err)
		gr, err := junction.Build(g, s)
		require.NoError(t, err)
		pr, err := prune.Prune(gr, s, score.Weights(s))
		require.NoError(t, err)

		res, err := dfs.Cycles(gr, dfs.WithExcluded(pr.Unloopable), dfs.WithLoopSearchLimit(64))
		require.NoError(t, err, "seed %d", seed)

		keys := map[string]bool{}
		for _, c := range res.Cycles {
			n := c.Len()
			require.Len(t, c.Regions, n)
			assert.Equal(t, slices.Min(c.Nodes), c.Nodes[0], "seed %d", seed)

			distinct := map[int]bool{}
			for i, v := range c.Nodes {
				assert.False(t, distinct[v], "seed %d: repeated node %d", seed, v)
				distinct[v] = true
				assert.False(t, pr.Unloopable[v], "seed %d: unloopable node %d", seed, v)
				assert.True(t, hasEdge(gr, v, c.Nodes[(i+1)%n], c.Regions[i]), "seed %d", seed)

				next := c.Regions[(i+1)%n]
				if c.Regions[i] == next {
					assert.True(t, gr.IsLoopRegion(next), "seed %d: %v", seed, c)
				}
			}

			fwd := key(c.Nodes)
			rev := key(append([]int{c.Nodes[0]}, reversed(c.Nodes[1:])...))
			assert.False(t, keys[fwd] || keys[rev], "seed %d: duplicate %v", seed, c.Nodes)
			keys[fwd] = true
			keys[rev] = true
		}
	}
}

func hasEdge(gr *junction.Graph, a, b, r int) bool {
	for _, ei := range gr.Incident(a) {
		if e := gr.Edges[ei]; e.Region == r && gr.Other(ei, a) == b {
			return true
		}
	}
	return false
}

func reversed(s []int) []int {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

func key(s []int) string { return fmt.Sprint(s) }
