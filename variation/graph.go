// File: graph.go
// Role: point registration and point/edge enumeration.
// Determinism:
//   - Points() orders by intrinsic weight descending, then hash ascending.
//   - Edges() returns connection order.

package variation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/contentdim/core"
	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// AddPoint registers p and returns the canonical registered point.
//
// Registration is idempotent: if a point with the same hash exists, that
// point is returned and p is discarded.
//
// Errors:
//   - ErrNilPoint if p is nil.
//   - dimension.ErrUnknownDimension / dimension.ErrUnknownValue if a
//     coordinate was not created by the graph's registry.
//
// Complexity: O(k) for k coordinates.
func (g *Graph) AddPoint(p *dimspace.Point) (*dimspace.Point, error) {
	if p == nil {
		return nil, ErrNilPoint
	}
	if existing, ok := g.points[p.Hash()]; ok {
		return existing, nil
	}
	if err := g.validatePoint(p); err != nil {
		return nil, err
	}
	g.register(p)

	return p, nil
}

// PointByHash returns the registered point with the given identity hash.
// Errors: ErrUnknownDimensionSpacePoint if absent.
func (g *Graph) PointByHash(hash string) (*dimspace.Point, error) {
	p, ok := g.points[hash]
	if !ok {
		return nil, fmt.Errorf("hash %q: %w", hash, ErrUnknownDimensionSpacePoint)
	}

	return p, nil
}

// HasPoint reports whether a point with p's coordinates is registered.
func (g *Graph) HasPoint(p *dimspace.Point) bool {
	if p == nil {
		return false
	}
	_, ok := g.points[p.Hash()]

	return ok
}

// PointCount returns the number of registered points.
func (g *Graph) PointCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.adjacency.EdgeCount() }

// Points returns every registered point from most to least specific.
//
// Specificity is the intrinsic weight compared digit by digit in dimension
// priority order, which matches comparing normalized intrinsic weights.
// Equal weights are ordered by hash so the result is stable across runs.
// Complexity: O(P log P · D).
func (g *Graph) Points() []*dimspace.Point {
	out := make([]*dimspace.Point, 0, len(g.order))
	weights := make(map[string]dimspace.Weight, len(g.order))
	for _, h := range g.order {
		p := g.points[h]
		out = append(out, p)
		weights[h] = p.IntrinsicWeight()
	}
	names := g.registry.Names()
	sort.SliceStable(out, func(i, j int) bool {
		c := compareWeights(names, weights[out[i].Hash()], weights[out[j].Hash()])
		if c != 0 {
			return c > 0
		}
		return out[i].Hash() < out[j].Hash()
	})

	return out
}

// RegisteredPoints returns every registered point in registration order.
func (g *Graph) RegisteredPoints() []*dimspace.Point {
	out := make([]*dimspace.Point, len(g.order))
	for i, h := range g.order {
		out[i] = g.points[h]
	}

	return out
}

// Edges returns every edge in connection order.
func (g *Graph) Edges() []*Edge {
	return g.resolve(g.adjacency.Edges())
}

// resolve maps core edges to their weighted payloads, keeping order.
func (g *Graph) resolve(edges []*core.Edge) []*Edge {
	out := make([]*Edge, len(edges))
	for i, e := range edges {
		out[i] = g.byID[e.ID]
	}

	return out
}

// register stores p without validation and adds its adjacency vertex.
func (g *Graph) register(p *dimspace.Point) {
	g.points[p.Hash()] = p
	g.order = append(g.order, p.Hash())
	_ = g.adjacency.AddVertex(p.Hash()) // hashes are never empty
}

// validatePoint checks that every coordinate value belongs to g.registry.
func (g *Graph) validatePoint(p *dimspace.Point) error {
	for _, name := range p.Dimensions() {
		if !g.registry.HasDimension(name) {
			return fmt.Errorf("point %s: dimension %q: %w", p, name, dimension.ErrUnknownDimension)
		}
		v, _ := p.Value(name)
		if !g.registry.Owns(v) {
			return fmt.Errorf("point %s: value %s: %w", p, v, dimension.ErrUnknownValue)
		}
	}

	return nil
}

// canonical returns the registered instance for p's hash, or p itself.
func (g *Graph) canonical(p *dimspace.Point) *dimspace.Point {
	if existing, ok := g.points[p.Hash()]; ok {
		return existing
	}

	return p
}

// compareWeights compares a and b digit by digit in priority order and
// returns -1, 0 or +1. Missing components count as 0.
func compareWeights(priority []string, a, b dimspace.Weight) int {
	for _, name := range priority {
		switch {
		case a[name] < b[name]:
			return -1
		case a[name] > b[name]:
			return 1
		}
	}

	return 0
}
