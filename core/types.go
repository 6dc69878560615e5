// SPDX-License-Identifier: MIT

// Package core defines the dependency Graph and Edge types and the sentinel
// errors shared by its methods.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a negative vertex ID.
	ErrNegativeVertex = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected dependency between two features.
// U < V always holds for edges returned by the graph.
type Edge struct {
	U, V int

	// PValue is the p-value of the test that created the edge.
	PValue float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertices pre-registers vertex IDs; negative IDs are ignored.
func WithVertices(ids ...int) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id >= 0 {
				g.ensureVertex(id)
			}
		}
	}
}

// Graph is an undirected simple graph over integer vertices.
//
// mu guards adjacency and edgeCount. adjacency[u][v] == adjacency[v][u] is the
// p-value of edge {u,v}; every vertex owns a (possibly empty) inner map.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[int]map[int]float64
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts) + pre-registered vertices).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]float64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ensureVertex creates the adjacency bucket for id. Caller holds mu (or owns g).
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]float64)
	}
}
