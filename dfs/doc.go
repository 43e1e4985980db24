// Package dfs implements depth-first traversal, reachability and
// topological sort on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, a depth limit and forest traversal.
//   - Reaches: answers "is there a directed path from u to v" and stops at
//     the first discovery of v.
//   - TopologicalSort: orders the vertices of a DAG so that every edge
//     points forward; returns ErrCycleDetected otherwise.
//
// The variation graph uses Reaches to refuse edges that would close a cycle
// and TopologicalSort to order points from most specific to most general.
//
// Determinism: neighbors are visited in edge creation order and forest roots
// in Vertices() order.
package dfs
