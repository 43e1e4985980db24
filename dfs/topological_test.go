package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/contentdim/core"
	"github.com/katalvlaran/contentdim/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_UndirectedGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph(core.WithDirected(true)))
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort(buildChain(3))
	assert.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, order)
}

// TestTopo_Diamond checks every edge points forward in the result.
func TestTopo_Diamond(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	edges := [][2]string{{"en_US", "en"}, {"en_US", "mul"}, {"en", "mul"}, {"de", "mul"}}
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "%s → %s", e[0], e[1])
	}
}

func TestTopo_Cycle(t *testing.T) {
	g := buildChain(3)
	_, _ = g.AddEdge("N2", "N0", 0)

	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(buildChain(3), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
