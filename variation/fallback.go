// File: fallback.go
// Role: adjacency queries and fallback ranking.
//
// Ranking compares weight vectors digit by digit in dimension priority
// order (compareWeights), which is the order NormalizeWeight encodes but
// without its int64 limit, so any number of dimensions ranks correctly.
//
// Tie policy: when two generalizations weigh the same, PrimaryGeneralization
// keeps the one whose edge was connected first.

package variation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/contentdim/bfs"
	"github.com/katalvlaran/contentdim/dimspace"
)

// Generalizations returns the direct fallbacks of p in connection order.
// An unregistered point has none.
func (g *Graph) Generalizations(p *dimspace.Point) []*dimspace.Point {
	edges := g.GeneralizationEdges(p)
	out := make([]*dimspace.Point, len(edges))
	for i, e := range edges {
		out[i] = e.fallback
	}

	return out
}

// Specializations returns the direct variants of p in connection order.
func (g *Graph) Specializations(p *dimspace.Point) []*dimspace.Point {
	edges := g.SpecializationEdges(p)
	out := make([]*dimspace.Point, len(edges))
	for i, e := range edges {
		out[i] = e.variant
	}

	return out
}

// GeneralizationEdges returns the edges leaving p in connection order.
func (g *Graph) GeneralizationEdges(p *dimspace.Point) []*Edge {
	if p == nil {
		return nil
	}
	edges, err := g.adjacency.Neighbors(p.Hash())
	if err != nil {
		return nil // unregistered
	}

	return g.resolve(edges)
}

// SpecializationEdges returns the edges entering p in connection order.
func (g *Graph) SpecializationEdges(p *dimspace.Point) []*Edge {
	if p == nil {
		return nil
	}
	edges, err := g.adjacency.InNeighbors(p.Hash())
	if err != nil {
		return nil
	}

	return g.resolve(edges)
}

// Edge returns the edge variant → fallback, if connected.
func (g *Graph) Edge(variant, fallback *dimspace.Point) (*Edge, bool) {
	if variant == nil || fallback == nil {
		return nil, false
	}
	for _, e := range g.GeneralizationEdges(variant) {
		if e.fallback.Hash() == fallback.Hash() {
			return e, true
		}
	}

	return nil, false
}

// PrimaryGeneralization returns the direct fallback of p whose edge weight
// ranks lowest in dimension priority order. Equal weights keep the
// earliest edge.
//
// Errors:
//   - ErrNilPoint, ErrUnknownDimensionSpacePoint for bad input.
//   - ErrNoGeneralization if p has no fallback.
//
// Complexity: O(G·D) for G generalizations and D dimensions.
func (g *Graph) PrimaryGeneralization(p *dimspace.Point) (*dimspace.Point, error) {
	e, err := g.PrimaryGeneralizationEdge(p)
	if err != nil {
		return nil, err
	}

	return e.fallback, nil
}

// PrimaryGeneralizationEdge is PrimaryGeneralization returning the edge.
func (g *Graph) PrimaryGeneralizationEdge(p *dimspace.Point) (*Edge, error) {
	if p == nil {
		return nil, ErrNilPoint
	}
	if _, err := g.PointByHash(p.Hash()); err != nil {
		return nil, err
	}
	edges := g.GeneralizationEdges(p)
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: %w", p, ErrNoGeneralization)
	}

	names := g.registry.Names()
	best := edges[0]
	for _, e := range edges[1:] {
		if compareWeights(names, e.weight, best.weight) < 0 {
			best = e
		}
	}

	return best, nil
}

// FallbackChain returns every point reachable from p through generalization
// edges, best fallback first: ranked by CalculateFallbackWeight(p, q) in
// dimension priority order, ties kept in breadth-first discovery order.
// This is the order in which content should be looked up when p has none.
//
// A point reached only through a fallback that carries fewer dimensions
// than p may be more specific than p in a dimension that fallback lacks
// (its transitive weight has a negative component). Such a point is not a
// generalization of p and is left out of the chain.
//
// Errors: ErrNilPoint, ErrUnknownDimensionSpacePoint.
// Complexity: O(V' + E' + V' log V' · D) over the closure of p.
func (g *Graph) FallbackChain(p *dimspace.Point) ([]*dimspace.Point, error) {
	if p == nil {
		return nil, ErrNilPoint
	}
	start, err := g.PointByHash(p.Hash())
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g.adjacency, start.Hash())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", start, err)
	}

	type ranked struct {
		point  *dimspace.Point
		weight dimspace.Weight
	}
	chain := make([]ranked, 0, len(res.Order))
	for _, h := range res.Order[1:] {
		q := g.points[h]
		w := g.CalculateFallbackWeight(start, q)
		if len(w.Negative()) > 0 {
			continue
		}
		chain = append(chain, ranked{point: q, weight: w})
	}
	names := g.registry.Names()
	sort.SliceStable(chain, func(i, j int) bool {
		return compareWeights(names, chain[i].weight, chain[j].weight) < 0
	})

	out := make([]*dimspace.Point, len(chain))
	for i, r := range chain {
		out[i] = r.point
	}

	return out, nil
}
