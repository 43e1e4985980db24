// The inter-dimensional variation graph: dimension-space points connected
// by weighted edges that lead from a more specific point (variant) to a
// more general one (fallback).
//
// This file declares Edge, Graph, Option, PointFilter, the sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilPoint                    - point pointer is nil.
//	ErrInvalidVariation            - fallback is more specific in some dimension,
//	                                 the edge is a self-loop, or it closes a cycle.
//	ErrDuplicateEdge               - the (variant, fallback) pair is already connected.
//	ErrUnknownDimensionSpacePoint  - no point is registered under the hash.
//	ErrNoGeneralization            - the point has no fallback.
//	ErrWeightOverflow              - a normalized weight does not fit int64 (NormalizeWeight only).
//	ErrWeightOutOfRange            - a weight component reaches the normalization base (NormalizeWeight only).

package variation

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/contentdim/core"
	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// instrumentationName names the tracer and meter of this package.
const instrumentationName = "github.com/katalvlaran/contentdim/variation"

// Sentinel errors for variation graph operations.
var (
	// ErrNilPoint indicates a nil *dimspace.Point argument.
	ErrNilPoint = errors.New("variation: point is nil")

	// ErrInvalidVariation indicates the fallback is not a valid generalization of the variant.
	ErrInvalidVariation = errors.New("variation: invalid variation")

	// ErrDuplicateEdge indicates the variant is already connected to the fallback.
	ErrDuplicateEdge = errors.New("variation: duplicate edge")

	// ErrUnknownDimensionSpacePoint indicates a lookup by an unregistered hash.
	ErrUnknownDimensionSpacePoint = errors.New("variation: unknown dimension space point")

	// ErrNoGeneralization indicates the point has no generalization edges.
	ErrNoGeneralization = errors.New("variation: point has no generalization")

	// ErrWeightOverflow indicates the positional encoding exceeds int64.
	ErrWeightOverflow = errors.New("variation: normalized weight overflows int64")

	// ErrWeightOutOfRange indicates a weight component is not below the normalization base.
	ErrWeightOutOfRange = errors.New("variation: weight component not below normalization base")
)

// Edge is one logical variant → fallback connection.
//
// The adjacency itself lives in a core.Graph keyed by point hash; an Edge
// is the weighted payload stored under the core edge's ID.
type Edge struct {
	id       string // core edge ID
	variant  *dimspace.Point
	fallback *dimspace.Point
	weight   dimspace.Weight
}

// Variant returns the more specific endpoint.
func (e *Edge) Variant() *dimspace.Point { return e.variant }

// Fallback returns the more general endpoint.
func (e *Edge) Fallback() *dimspace.Point { return e.fallback }

// Weight returns a copy of the per-dimension fallback distance.
func (e *Edge) Weight() dimspace.Weight { return e.weight.Clone() }

// PointFilter decides whether the full construction pass admits a point.
// constraint.Set satisfies it.
type PointFilter interface {
	Allows(p *dimspace.Point) (bool, error)
}

// PointFilterFunc adapts a function to PointFilter.
type PointFilterFunc func(p *dimspace.Point) (bool, error)

// Allows calls f(p).
func (f PointFilterFunc) Allows(p *dimspace.Point) (bool, error) { return f(p) }

// Option configures a Graph before creation.
type Option func(c *graphConfig)

type graphConfig struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	filter         PointFilter
}

func defaultConfig() graphConfig {
	return graphConfig{
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("variation: WithLogger(nil)")
	}
	return func(c *graphConfig) { c.logger = logger }
}

// WithTracerProvider sets the OpenTelemetry tracer provider used by Build.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("variation: WithTracerProvider(nil)")
	}
	return func(c *graphConfig) { c.tracerProvider = tp }
}

// WithMeterProvider sets the OpenTelemetry meter provider used by Build.
// Panics on nil.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic("variation: WithMeterProvider(nil)")
	}
	return func(c *graphConfig) { c.meterProvider = mp }
}

// WithPointFilter restricts the points Build registers. Panics on nil.
func WithPointFilter(f PointFilter) Option {
	if f == nil {
		panic("variation: WithPointFilter(nil)")
	}
	return func(c *graphConfig) { c.filter = f }
}

// Graph is the inter-dimensional variation graph.
//
// It owns its points (keyed by identity hash) and a directed core.Graph
// whose vertices are those hashes and whose edges point from variant to
// fallback. core keeps both directions indexed in connection order; the
// weight vectors stay here, in byID. The weight radix and dimension
// priority come from the registry.
//
// A Graph is built synchronously and read-only afterwards.
type Graph struct {
	cfg      graphConfig
	registry *dimension.Registry

	points map[string]*dimspace.Point // hash → point
	order  []string                   // hashes in registration order

	adjacency *core.Graph      // unweighted, no loops, no multi-edges
	byID      map[string]*Edge // core edge ID → Edge
}

// NewGraph creates an empty Graph over reg. A nil reg is treated as an
// empty registry.
// Complexity: O(1).
func NewGraph(reg *dimension.Registry, opts ...Option) *Graph {
	if reg == nil {
		reg = dimension.NewRegistry()
	}
	g := &Graph{
		cfg:       defaultConfig(),
		registry:  reg,
		points:    make(map[string]*dimspace.Point),
		adjacency: core.NewGraph(core.WithDirected(true)),
		byID:      make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Registry returns the registry the graph scores against.
func (g *Graph) Registry() *dimension.Registry { return g.registry }
