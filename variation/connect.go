// File: connect.go
// Role: edge creation (ConnectSubgraphs) and topological ordering.
// Atomicity:
//   - Every check runs before the first mutation, so a failed call leaves
//     points, edges and the adjacency untouched.

package variation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/contentdim/dfs"
	"github.com/katalvlaran/contentdim/dimspace"
)

// ConnectSubgraphs adds the edge variant → fallback.
//
// Steps:
//  1. Reject nil points and coordinates foreign to the registry.
//  2. Resolve both endpoints to their registered instances, if any.
//  3. Reject self-edges (ErrInvalidVariation) and repeated pairs (ErrDuplicateEdge).
//  4. Compute the weight; any negative component is ErrInvalidVariation.
//  5. Reject the edge if fallback already reaches variant (cycle).
//  6. Register missing endpoints and add the edge to the adjacency.
//
// Complexity: O(k) plus O(V'+E') for the reachability walk, where V', E'
// is the generalization closure of fallback.
func (g *Graph) ConnectSubgraphs(variant, fallback *dimspace.Point) (*Edge, error) {
	if variant == nil || fallback == nil {
		return nil, ErrNilPoint
	}
	if err := g.validatePoint(variant); err != nil {
		return nil, err
	}
	if err := g.validatePoint(fallback); err != nil {
		return nil, err
	}
	variant, fallback = g.canonical(variant), g.canonical(fallback)
	vh, fh := variant.Hash(), fallback.Hash()

	if vh == fh {
		return nil, fmt.Errorf("%s → itself: %w", variant, ErrInvalidVariation)
	}
	if g.adjacency.HasEdge(vh, fh) {
		return nil, fmt.Errorf("%s → %s: %w", variant, fallback, ErrDuplicateEdge)
	}

	weight := g.CalculateFallbackWeight(variant, fallback)
	if neg := weight.Negative(); len(neg) > 0 {
		return nil, fmt.Errorf("%s → %s: fallback more specific in %v: %w", variant, fallback, neg, ErrInvalidVariation)
	}
	cycle, err := dfs.Reaches(g.adjacency, fh, vh)
	if err != nil {
		return nil, fmt.Errorf("%s → %s: %w", variant, fallback, err)
	}
	if cycle {
		return nil, fmt.Errorf("%s → %s: closes a cycle: %w", variant, fallback, ErrInvalidVariation)
	}

	// All checks passed; mutate.
	if _, ok := g.points[vh]; !ok {
		g.register(variant)
	}
	if _, ok := g.points[fh]; !ok {
		g.register(fallback)
	}
	id, err := g.adjacency.AddEdge(vh, fh, 0)
	if err != nil {
		return nil, fmt.Errorf("%s → %s: %w", variant, fallback, err)
	}
	e := &Edge{id: id, variant: variant, fallback: fallback, weight: weight}
	g.byID[id] = e

	return e, nil
}

// TopologicalOrder returns every registered point so that each variant
// precedes all of its fallbacks. The walk starts from points in hash order
// and follows generalizations in connection order, so the result is
// deterministic.
//
// ConnectSubgraphs keeps the graph acyclic, so ErrInvalidVariation here
// signals a broken invariant rather than a caller error.
// Complexity: O(V + E).
func (g *Graph) TopologicalOrder() ([]*dimspace.Point, error) {
	hashes, err := dfs.TopologicalSort(g.adjacency)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidVariation, err)
		}
		return nil, err
	}

	out := make([]*dimspace.Point, len(hashes))
	for i, h := range hashes {
		out[i] = g.points[h]
	}

	return out, nil
}
