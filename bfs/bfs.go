// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/inuritdino/Principal-Feature-Analysis/core"
)

// walker holds the queue and visited set of one traversal.
type walker struct {
	graph   *core.Graph
	ctx     context.Context
	queue   []int
	visited map[int]bool
	res     *Result
}

// BFS visits every vertex reachable from startID, level by level, with
// neighbours in ascending order.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, or the context
// error on cancellation.
func BFS(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		ctx:     o.Ctx,
		visited: map[int]bool{startID: true},
		queue:   []int{startID},
		res:     &Result{},
	}

	return w.res, w.loop()
}

// Components partitions the vertices of g into connected components, one
// BFS per unvisited vertex. Each component is sorted ascending; components
// are ordered by their smallest vertex.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[int]bool, g.VertexCount())
	var comps [][]int
	for _, v := range g.Vertices() { // ascending: first member is the minimum
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		comp := res.Order
		for _, id := range comp {
			seen[id] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// loop processes the queue until it is empty, a lookup fails or the context
// is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, id, err)
		}
		for _, nb := range neighbors {
			if !w.visited[nb] {
				w.visited[nb] = true
				w.queue = append(w.queue, nb)
			}
		}
	}

	return nil
}
