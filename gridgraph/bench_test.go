package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/mazegraph/internal/fixture"
)

// BenchmarkLabel measures the union-find scan on a random 300×300 maze.
// Complexity: O(W×H×α)
func BenchmarkLabel(b *testing.B) {
	g := fixture.RandomMaze(b, 300, 300, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Label(nil)
	}
}

// BenchmarkLabelBarrier adds a barrier predicate on every third cell.
func BenchmarkLabelBarrier(b *testing.B) {
	g := fixture.RandomMaze(b, 300, 300, 42)
	barrier := func(id int) bool { return id%3 == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Label(barrier)
	}
}
