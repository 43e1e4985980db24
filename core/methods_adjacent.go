// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighborhood queries over the adjacency indices.
// Determinism:
//   - Neighbors() and InNeighbors() return edges in creation order.
//   - NeighborIDs() preserves the order of first appearance in Neighbors().

package core

// Neighbors returns all edges leaving vertex 'id'.
// For directed graphs these are the outgoing edges; for undirected graphs
// every incident edge.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d), where d is number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.collect(id, g.adjacencyList)
}

// InNeighbors returns all edges entering vertex 'id' of a directed graph.
// For undirected graphs it equals Neighbors.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	if !g.directed {
		return g.Neighbors(id)
	}

	return g.collect(id, g.incoming)
}

// NeighborIDs returns the IDs of the vertices reachable over one edge from
// id, without duplicates.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.To
		if !e.Directed && e.To == id {
			nbr = e.From
		}
		if _, ok := seen[nbr]; ok {
			continue
		}
		seen[nbr] = struct{}{}
		ids = append(ids, nbr)
	}

	return ids, nil
}

func (g *Graph) collect(id string, index map[string]map[string]map[string]struct{}) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range index[id] {
		for eid = range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

func ensureAdjacency(index map[string]map[string]map[string]struct{}, from, to string) {
	if index[from] == nil {
		index[from] = make(map[string]map[string]struct{})
	}
	if index[from][to] == nil {
		index[from][to] = make(map[string]struct{})
	}
}
