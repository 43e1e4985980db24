// File: build.go
// Role: full construction pass over a registry.
//
// Build enumerates every combination of one value per dimension, keeps the
// combinations admitted by the configured PointFilter, then connects each
// point to every registered strict generalization (every coordinate equal
// to or an ancestor of the variant's coordinate).
//
// Determinism:
//   - Combinations are generated odometer-style in dimension priority order,
//     values in creation order; generalization candidates likewise, each
//     dimension walking from the variant's own value up to the root.

package variation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// instruments are the counters Build reports to.
type instruments struct {
	points   metric.Int64Counter
	edges    metric.Int64Counter
	rejected metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)
	var (
		ins instruments
		err error
	)
	ins.points, err = meter.Int64Counter(
		"contentdim.variation.points",
		metric.WithDescription("Dimension space points registered by the construction pass"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create points counter: %w", err)
	}
	ins.edges, err = meter.Int64Counter(
		"contentdim.variation.edges",
		metric.WithDescription("Variation edges connected by the construction pass"),
		metric.WithUnit("{edge}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create edges counter: %w", err)
	}
	ins.rejected, err = meter.Int64Counter(
		"contentdim.variation.rejected_points",
		metric.WithDescription("Combinations rejected by the point filter"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}

	return &ins, nil
}

// Build creates a Graph over reg and runs the full construction pass.
//
// Options apply as in NewGraph; WithPointFilter restricts the registered
// points. ctx is checked once per combination.
//
// Errors: context errors, PointFilter errors, or any ConnectSubgraphs error
// (which would indicate a broken registry invariant).
func Build(ctx context.Context, reg *dimension.Registry, opts ...Option) (*Graph, error) {
	g := NewGraph(reg, opts...)

	tracer := g.cfg.tracerProvider.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "variation.Build",
		trace.WithAttributes(attribute.Int("contentdim.dimensions", g.registry.Len())),
	)
	defer span.End()

	ins, err := newInstruments(g.cfg.meterProvider)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rejected, err := g.populatePoints(ctx)
	if err == nil {
		err = g.connectGeneralizations(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("variation: build: %w", err)
	}

	attrs := metric.WithAttributes(attribute.Int("contentdim.dimensions", g.registry.Len()))
	ins.points.Add(ctx, int64(g.PointCount()), attrs)
	ins.edges.Add(ctx, int64(g.EdgeCount()), attrs)
	ins.rejected.Add(ctx, int64(rejected), attrs)

	span.SetAttributes(
		attribute.Int("contentdim.points", g.PointCount()),
		attribute.Int("contentdim.edges", g.EdgeCount()),
		attribute.Int("contentdim.rejected_points", rejected),
	)
	span.SetStatus(codes.Ok, "")
	g.cfg.logger.DebugContext(ctx, "variation graph built",
		"dimensions", g.registry.Len(),
		"points", g.PointCount(),
		"edges", g.EdgeCount(),
		"rejected", rejected,
	)

	return g, nil
}

// populatePoints registers every admitted combination and returns how many
// combinations the filter rejected.
func (g *Graph) populatePoints(ctx context.Context) (int, error) {
	dims := g.registry.Dimensions()
	if len(dims) == 0 {
		return 0, nil
	}
	axes := make([][]*dimension.Value, len(dims))
	for i, d := range dims {
		axes[i] = d.Values()
		if len(axes[i]) == 0 {
			g.cfg.logger.DebugContext(ctx, "dimension without values, no points to build", "dimension", d.Name())
			return 0, nil
		}
	}

	rejected := 0
	err := product(axes, func(combination []*dimension.Value) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := pointOf(combination)
		if err != nil {
			return err
		}
		if g.cfg.filter != nil {
			ok, err := g.cfg.filter.Allows(p)
			if err != nil {
				return fmt.Errorf("filter %s: %w", p, err)
			}
			if !ok {
				rejected++
				g.cfg.logger.DebugContext(ctx, "point rejected by filter", "point", p.String())
				return nil
			}
		}
		_, err = g.AddPoint(p)

		return err
	})

	return rejected, err
}

// connectGeneralizations links every registered point to its registered
// strict generalizations.
func (g *Graph) connectGeneralizations(ctx context.Context) error {
	for _, variant := range g.RegisteredPoints() {
		if err := ctx.Err(); err != nil {
			return err
		}
		axes := make([][]*dimension.Value, 0, variant.Len())
		for _, d := range g.registry.Dimensions() {
			v, ok := variant.Value(d.Name())
			if !ok {
				continue
			}
			axes = append(axes, append([]*dimension.Value{v}, d.Ancestors(v)...))
		}

		first := true // the first combination is the variant itself
		err := product(axes, func(combination []*dimension.Value) error {
			if first {
				first = false
				return nil
			}
			candidate, err := pointOf(combination)
			if err != nil {
				return err
			}
			fallback, err := g.PointByHash(candidate.Hash())
			if err != nil {
				return nil // filtered out during population
			}
			_, err = g.ConnectSubgraphs(variant, fallback)

			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// product calls fn for every combination of one element per axis, the last
// axis varying fastest. fn receives a reused buffer. Stops at fn's first error.
func product(axes [][]*dimension.Value, fn func([]*dimension.Value) error) error {
	if len(axes) == 0 {
		return nil
	}
	for _, axis := range axes {
		if len(axis) == 0 {
			return nil
		}
	}
	cursor := make([]int, len(axes))
	buf := make([]*dimension.Value, len(axes))
	for {
		for i, c := range cursor {
			buf[i] = axes[i][c]
		}
		if err := fn(buf); err != nil {
			return err
		}
		// advance the odometer
		i := len(axes) - 1
		for ; i >= 0; i-- {
			cursor[i]++
			if cursor[i] < len(axes[i]) {
				break
			}
			cursor[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

func pointOf(values []*dimension.Value) (*dimspace.Point, error) {
	coordinates := make(map[string]*dimension.Value, len(values))
	for _, v := range values {
		coordinates[v.Dimension()] = v
	}

	return dimspace.NewPoint(coordinates)
}
