// Package core is the adjacency store underneath the variation graph.
//
// A Graph holds string-keyed vertices and integer-weighted edges with
// construction-time policies: directed or undirected, weighted or not,
// self-loops and parallel edges allowed or rejected. Directed graphs keep a
// second index by destination, so InNeighbors is as cheap as Neighbors.
//
// Edges are append-only and every enumeration (Edges, Neighbors,
// InNeighbors) follows creation order, which callers may rely on for
// tie-breaking. Vertices() is sorted by ID.
//
// Locks: muVert guards the vertex set, muEdgeAdj the edge catalog and both
// indices; muVert is always taken first.
package core
