// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: constraint
// enforcement (weights, loops, multi-edges) and creation-order enumeration.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contentdim/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "duplicate AddVertex is a no-op")

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"), "directed edges are not mirrored")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount(), "endpoints are added on demand")

	e, err := g.GetEdge(id)
	require.NoError(t, err)
	assert.Equal(t, "A", e.From)
	assert.True(t, e.Directed)
	_, err = g.GetEdge("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_OptionalPolicies(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())

	_, err := g.AddEdge("A", "A", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids, "parallel edges collapse to one neighbor")
}

func TestGraph_NeighborsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "C"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "C", out[0].To, "creation order, not ID or name order")
	assert.Equal(t, "B", out[1].To)

	in, err := g.InNeighbors("C")
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, "A", in[0].From)
	assert.Equal(t, "B", in[1].From)

	none, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.InNeighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_NeighborsUndirected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("B", "A"), "undirected edges are mirrored")
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)

	in, err := g.InNeighbors("A")
	require.NoError(t, err)
	assert.Len(t, in, 1)
}

func TestGraph_EdgesCreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%02d", i), "root", 0)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID, "e10 sorts after e9")
	}
}
