package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/internal/fixture"
	"github.com/katalvlaran/mazegraph/junction"
	"github.com/katalvlaran/mazegraph/prune"
	"github.com/katalvlaran/mazegraph/region"
	"github.com/katalvlaran/mazegraph/score"
)

// BenchmarkPrune measures peeling, walks and trimming on a random 120×120 maze.
func BenchmarkPrune(b *testing.B) {
	g := fixture.RandomMaze(b, 120, 120, 7)
	s, err := region.Build(g)
	require.NoError(b, err)
	gr, err := junction.Build(g, s)
	require.NoError(b, err)
	w := score.Weights(s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prune.Prune(gr, s, w); err != nil {
			b.Fatal(err)
		}
	}
}
