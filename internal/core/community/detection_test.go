package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentDetector(t *testing.T) {
	// 0-1-2 path, 3 isolated, 4-5 pair
	adj := adjacency(6, [][2]int{{0, 1}, {1, 2}, {4, 5}})
	labels := (&ComponentDetector{}).Detect(adj)
	assert.Equal(t, []int{0, 0, 0, 1, 2, 2}, labels)
}

func TestNewDetector(t *testing.T) {
	d, err := NewDetector("", 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &Louvain{}, d)

	d, err = NewDetector("louvain", 0.5, 7)
	require.NoError(t, err)
	l := d.(*Louvain)
	assert.Equal(t, 0.5, l.Resolution)
	assert.Equal(t, 7, l.MaxPasses)

	d, err = NewDetector("Label_Propagation", 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &LabelPropagationDetector{}, d)

	_, err = NewDetector("leiden", 0, 0)
	assert.Error(t, err)
}

func TestModularity(t *testing.T) {
	adj := adjacency(6, bridgedTriangles)
	split := Modularity(adj, []int{0, 0, 0, 1, 1, 1})
	merged := Modularity(adj, []int{0, 0, 0, 0, 0, 0})

	assert.InDelta(t, 0.357143, split, 1e-6)
	assert.InDelta(t, 0.0, merged, 1e-9)
	assert.Equal(t, 0.0, Modularity(make([][]int, 2), []int{0, 1}))
}
