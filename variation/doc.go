// Package variation resolves content fallbacks between dimension-space
// points.
//
// What:
//
//   - Graph: registry of dimspace.Points keyed by identity hash over a
//     directed core.Graph whose edges lead variant → fallback; core indexes
//     both directions, the Edge payload carries the weight vector.
//   - ConnectSubgraphs: adds a weighted variant → fallback edge; rejects
//     fallbacks more specific in any dimension, self-edges, cycles and
//     duplicates, atomically. The cycle guard is dfs.Reaches.
//   - CalculateFallbackWeight / NormalizeWeight: per-dimension depth
//     distance, encoded as one integer in base 1+maxDepth with the first
//     created dimension as most significant digit.
//   - PrimaryGeneralization: the best direct fallback (smallest weight in
//     dimension priority order, earliest edge on ties).
//   - FallbackChain: all transitive fallbacks collected by bfs.BFS, best
//     first.
//   - TopologicalOrder: dfs.TopologicalSort over the point hashes.
//   - Build: full construction pass over a dimension.Registry with optional
//     PointFilter, OpenTelemetry span and counters, slog debug logging.
//
// Ranking example with dimensions primary, secondary, tertiary of depth 5
// (base 6):
//
//	{primary:0, secondary:0, tertiary:5} → 5
//	{primary:0, secondary:1, tertiary:0} → 36
//
// The first candidate wins although its raw tertiary distance is larger:
// declaration order encodes fallback priority. Ranking compares the vectors
// directly in that order, so it is not bounded by int64 the way
// NormalizeWeight is; NormalizeWeight serves display and export.
//
// Concurrency: build once, then query from any goroutine. The point map is
// not locked, so mutation after publication is unsupported.
package variation
