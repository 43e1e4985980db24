// Package bfs implements breadth-first search on a core.Graph.
//
// The variation graph walks its generalization edges with BFS to collect
// every fallback of a point before ranking them; PathTo recovers one
// shortest chain of generalization steps to any reached point.
//
// Options:
//
//   - WithContext(ctx)        cancellation.
//   - WithOnVisit(fn)         hook per visited vertex; an error aborts.
//   - WithMaxDepth(d)         stop beyond depth d (d < 0 is ErrOptionViolation).
//   - WithFilterNeighbor(fn)  skip edges curr→neighbor when fn returns false.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
