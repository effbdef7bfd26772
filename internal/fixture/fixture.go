// Package fixture holds the maze layouts and random grids shared by tests.
package fixture

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// Corridor is a straight 1×3 corridor.
var Corridor = []string{"o-o-o"}

// Ring is a fully linked 2×2 loop.
var Ring = []string{
	"o-o",
	"| |",
	"o-o",
}

// Lollipop is a 2×2 loop with a three-cell tail hanging off its bottom-right cell.
var Lollipop = []string{
	"o-o",
	"| |",
	"o-o-o-o-o",
}

// Branch is a 2×2 loop with a corridor leading to a junction that splits
// into two dead ends.
var Branch = []string{
	"o-o",
	"| |",
	"o-o-o-o-o-o",
	"        |",
	"        o",
}

// Stub is a corridor with a one-cell side branch.
var Stub = []string{
	"o-o-o",
	"  |",
	"  o",
}

// TwinCorners is a 2×2 ring whose opposite corners carry dead-end spurs.
var TwinCorners = []string{
	"o-o-o",
	"  | |",
	"  o-o-o",
}

// Lattice is two rows of corridors joined by three vertical passages.
var Lattice = []string{
	"o-o-o-o-o",
	"|   |   |",
	"o-o-o-o-o",
	"|   |   |",
	"o-o-o-o-o",
}

// Rooms is a small maze with a room, a loop, a dead-end branch and placed content.
var Rooms = []string{
	"S-o-o-o-o 3",
	"| | |   | |",
	"o-o-o   o-o",
	"    |     |",
	"5-o-o-o-o-o",
	"    |",
	"    o-o 7",
	"      | |",
	"    9-o-o",
}

// Parse parses layout, failing the test on error.
func Parse(tb testing.TB, layout []string) *gridgraph.Grid {
	tb.Helper()
	g, err := gridgraph.Parse(layout)
	require.NoError(tb, err)
	return g
}

// RandomMaze returns a w×h grid with random states and passages, seeded
// deterministically.
func RandomMaze(tb testing.TB, w, h int, seed int64) *gridgraph.Grid {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := gridgraph.NewGrid(w, h)
	require.NoError(tb, err)

	states := []gridgraph.State{
		gridgraph.Open, gridgraph.Open, gridgraph.Open, gridgraph.Open,
		gridgraph.Elevated, gridgraph.Occupied, gridgraph.Void,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(tb, g.SetState(x, y, states[rng.Intn(len(states))], float64(rng.Intn(10))))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := g.Index(x, y)
			if g.Cell(a).State == gridgraph.Void {
				continue
			}
			if x+1 < w && g.CellAt(x+1, y).State != gridgraph.Void && rng.Intn(3) > 0 {
				require.NoError(tb, g.Link(a, g.Index(x+1, y)))
			}
			if y+1 < h && g.CellAt(x, y+1).State != gridgraph.Void && rng.Intn(3) > 0 {
				require.NoError(tb, g.Link(a, g.Index(x, y+1)))
			}
		}
	}
	if w := g.Walkable(); len(w) > 0 {
		require.NoError(tb, g.SetStart(w[0]))
	}
	return g
}

// DenseMaze returns a w×h all-Open perfect maze carved by a seeded
// depth-first walk, with extra random passages added on top.
func DenseMaze(tb testing.TB, w, h, extra int, seed int64) *gridgraph.Grid {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := gridgraph.NewGrid(w, h)
	require.NoError(tb, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(tb, g.SetState(x, y, gridgraph.Open, 0))
		}
	}

	visited := make([]bool, g.Len())
	stack := []int{0}
	visited[0] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		x, y := g.Coordinate(cur)
		var next []int
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if g.InBounds(nx, ny) && !visited[g.Index(nx, ny)] {
				next = append(next, g.Index(nx, ny))
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := next[rng.Intn(len(next))]
		require.NoError(tb, g.Link(cur, nb))
		visited[nb] = true
		stack = append(stack, nb)
	}

	for i := 0; i < extra; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		if rng.Intn(2) == 0 && x+1 < w {
			require.NoError(tb, g.Link(g.Index(x, y), g.Index(x+1, y)))
		} else if y+1 < h {
			require.NoError(tb, g.Link(g.Index(x, y), g.Index(x, y+1)))
		}
	}
	require.NoError(tb, g.SetStart(0))
	return g
}
