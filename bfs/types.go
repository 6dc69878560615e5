// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound indicates a start feature missing from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil dependency graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors wraps a failed neighbour lookup.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option adjusts a traversal.
type Option func(*Options)

// Options are the traversal settings shared by BFS and Components.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext cancels the walk with ctx. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the vertices reached from the start, in visit order.
type Result struct {
	Order []int
}
