package dfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, 2, minimalRotation([]int{5, 3, 1, 4}))
	assert.Equal(t, 0, minimalRotation([]int{1, 2, 3}))
	assert.Equal(t, 0, minimalRotation([]int{}))
	assert.Equal(t, 1, minimalRotation([]string{"b", "a", "c"}))
}

func TestCanonical(t *testing.T) {
	c, fwd, back := canonical(Cycle{Nodes: []int{4, 7, 2, 9}, Regions: []int{10, 11, 12, 13}})
	assert.Equal(t, []int{2, 9, 4, 7}, c.Nodes)
	assert.Equal(t, []int{12, 13, 10, 11}, c.Regions)
	assert.Equal(t, "2,9,4,7", fwd)
	assert.Equal(t, "2,7,4,9", back)
}
