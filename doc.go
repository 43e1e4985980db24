// Package contentdim models content dimensions and the fallback graph between
// the points they span.
//
// A content repository stores one variant of a node per dimension-space
// point, e.g. (language=en_US, market=CH). When a variant is missing, the
// repository falls back along a directed acyclic graph towards more general
// points, and the best fallback is the one whose per-dimension distance is
// smallest once dimensions are weighed by priority.
//
// Everything lives in subpackages:
//
//	dimension/  — dimensions, their value trees, and the priority-ordered Registry
//	dimspace/   — immutable Points with identity hashes, and per-dimension Weights
//	variation/  — the fallback Graph: ConnectSubgraphs, weights, primary
//	              generalization, fallback chains, and the full Build pass
//	constraint/ — CEL expressions that decide which points exist
//	config/     — YAML dimension configuration
//	export/     — Mermaid and JSON renderings of a Graph
//	core/       — the directed adjacency store underneath variation.Graph
//	dfs/, bfs/  — traversals over core: cycle guard, topological order,
//	              fallback closure
//
// Quick example:
//
//	language:  en ── en_GB      market:  WW ── CH
//
//	(en_GB, CH) → (en_GB, WW)  weight {language:0, market:1} → 1
//	(en_GB, CH) → (en, CH)     weight {language:1, market:0} → 2
//
// The market fallback wins: language was declared first and is therefore
// the most significant digit of the normalized weight.
//
//	go get github.com/katalvlaran/contentdim
package contentdim
