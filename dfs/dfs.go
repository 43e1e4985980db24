// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, with cancellation, pre- and post-order hooks and a depth limit.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/contentdim/core"
)

// errTargetFound stops a Reaches walk once the target is discovered.
var errTargetFound = errors.New("dfs: target found")

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all components, visiting roots in Vertices() order; otherwise it
// starts only from startID. Neighbors are explored in edge creation order.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, walker.traverse(startID, 0)
	}
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Reaches reports whether 'to' is reachable from 'from' over directed
// edges. A vertex reaches itself. A missing 'from' reaches nothing.
func Reaches(g *core.Graph, from, to string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if from == to {
		return true, nil
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false, nil
	}

	opts = append(opts, WithOnVisit(func(id string) error {
		if id == to {
			return errTargetFound
		}
		return nil
	}))
	_, err := DFS(g, from, opts...)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, errTargetFound):
		return true, nil
	default:
		return false, err
	}
}

// traverse visits vertex id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	var nbs []string
	var err error
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		if nbs, err = w.graph.NeighborIDs(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
	}

	var nid string
	for _, nid = range nbs {
		if nid == id || w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
