package variation_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
	"github.com/katalvlaran/contentdim/variation"
)

func TestBuild_LanguageMarket(t *testing.T) {
	r := newLanguageMarket(t)
	g, err := variation.Build(context.Background(), r)
	require.NoError(t, err)

	// 4 languages × 2 markets; Σ(ancestors+1 per dimension product) − 1 per point
	assert.Equal(t, 8, g.PointCount())
	assert.Equal(t, 16, g.EdgeCount())

	variant := lm(t, r, "en_US", "CH")
	primary, err := g.PrimaryGeneralization(variant)
	require.NoError(t, err)
	assert.Equal(t, "language=en_US, market=WW", primary.String(),
		"language is declared first, so staying in the language wins")

	chain, err := g.FallbackChain(variant)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"language=en_US, market=WW",
		"language=en, market=CH",
		"language=en, market=WW",
		"language=mul, market=CH",
		"language=mul, market=WW",
	}, pointStrings(chain))

	for _, e := range g.Edges() {
		assert.Empty(t, e.Weight().Negative(), "%s → %s", e.Variant(), e.Fallback())
	}
	_, err = g.PrimaryGeneralization(lm(t, r, "mul", "WW"))
	assert.ErrorIs(t, err, variation.ErrNoGeneralization)
}

func TestBuild_PointsMostSpecificFirst(t *testing.T) {
	r := newLanguageMarket(t)
	g, err := variation.Build(context.Background(), r)
	require.NoError(t, err)

	points := g.Points()
	require.Len(t, points, 8)
	assert.Equal(t, "language=en_US, market=CH", points[0].String())
	assert.Equal(t, "language=en_US, market=WW", points[1].String())
	assert.Equal(t, "language=mul, market=CH", points[6].String())
	assert.Equal(t, "language=mul, market=WW", points[7].String())

	// stable across calls
	assert.Equal(t, pointStrings(points), pointStrings(g.Points()))

	// every variant precedes its fallbacks in topological order
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	pos := make(map[string]int, len(order))
	for i, p := range order {
		pos[p.Hash()] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.Variant().Hash()], pos[e.Fallback().Hash()])
	}
}

// noSwissGerman rejects the single combination language=de, market=CH.
var noSwissGerman = variation.PointFilterFunc(func(p *dimspace.Point) (bool, error) {
	ids := p.Identifiers()
	return !(ids["language"] == "de" && ids["market"] == "CH"), nil
})

func TestBuild_PointFilter(t *testing.T) {
	r := newLanguageMarket(t)

	g, err := variation.Build(context.Background(), r, variation.WithPointFilter(noSwissGerman))
	require.NoError(t, err)
	assert.Equal(t, 7, g.PointCount())
	assert.Equal(t, 13, g.EdgeCount())
	assert.False(t, g.HasPoint(lm(t, r, "de", "CH")))

	boom := errors.New("boom")
	failing := variation.PointFilterFunc(func(*dimspace.Point) (bool, error) { return false, boom })
	_, err = variation.Build(context.Background(), r, variation.WithPointFilter(failing))
	assert.ErrorIs(t, err, boom)
}

func TestBuild_Degenerate(t *testing.T) {
	g, err := variation.Build(context.Background(), dimension.NewRegistry())
	require.NoError(t, err)
	assert.Zero(t, g.PointCount())

	r := dimension.NewRegistry()
	_, err = r.CreateDimension("empty")
	require.NoError(t, err)
	g, err = variation.Build(context.Background(), r)
	require.NoError(t, err)
	assert.Zero(t, g.PointCount(), "a dimension without values admits no point")
}

func TestBuild_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := variation.Build(ctx, newLanguageMarket(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_TraceAndLog(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := variation.Build(context.Background(), newLanguageMarket(t),
		variation.WithTracerProvider(tp),
		variation.WithLogger(logger),
	)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "variation.Build", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	attrs := make(map[string]int64)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(8), attrs["contentdim.points"])
	assert.Equal(t, int64(16), attrs["contentdim.edges"])
	assert.Contains(t, logs.String(), "variation graph built")
}

// collectCounters reads every int64 sum from reader, keyed by instrument name.
func collectCounters(t *testing.T, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}

	return out
}

func TestBuild_Counters(t *testing.T) {
	cases := []struct {
		name                      string
		opts                      []variation.Option
		points, edges, rejections int64
	}{
		{name: "no filter", points: 8, edges: 16, rejections: 0},
		{
			name:   "without de/CH",
			opts:   []variation.Option{variation.WithPointFilter(noSwissGerman)},
			points: 7, edges: 13, rejections: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := sdkmetric.NewManualReader()
			mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
			t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

			opts := append([]variation.Option{variation.WithMeterProvider(mp)}, tc.opts...)
			_, err := variation.Build(context.Background(), newLanguageMarket(t), opts...)
			require.NoError(t, err)

			got := collectCounters(t, reader)
			assert.Equal(t, tc.points, got["contentdim.variation.points"])
			assert.Equal(t, tc.edges, got["contentdim.variation.edges"])
			assert.Equal(t, tc.rejections, got["contentdim.variation.rejected_points"])
		})
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { variation.WithLogger(nil) })
	assert.Panics(t, func() { variation.WithTracerProvider(nil) })
	assert.Panics(t, func() { variation.WithMeterProvider(nil) })
	assert.Panics(t, func() { variation.WithPointFilter(nil) })
}
