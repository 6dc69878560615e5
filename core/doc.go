// SPDX-License-Identifier: MIT

// Package core provides the thread-safe dependency graph used by the graph
// dissector.
//
// Vertices are integer feature indices (local or global, at the caller's
// choice); an undirected edge {u,v} carries the p-value of the independence
// test that created it. The graph is simple: no self-loops, no parallel edges.
//
// Why a dedicated graph type?
//
//   - Deterministic iteration: Vertices(), NeighborIDs() and Edges() always
//     return ascending results, so every algorithm built on top (component
//     discovery, vertex cuts) is index-order deterministic.
//   - Cheap induced views: InducedSubgraph copies only the requested vertices
//     and the edges among them, which is how dissection recurses.
//   - Concurrency: a single sync.RWMutex guards vertices and adjacency, so a
//     graph may be read from several goroutines while it is not mutated.
//
// Core methods:
//
//	AddVertex(id int) error          // O(1), idempotent
//	RemoveVertex(id int) error       // O(deg(v))
//	AddEdge(u, v int, p float64) error // O(1), auto-adds endpoints
//	HasEdge(u, v int) bool           // O(1)
//	NeighborIDs(id int) ([]int, error) // O(d log d)
//	Degree(id int) (int, error)      // O(1)
//	Vertices() []int                 // O(V log V)
//	Edges() []Edge                   // O(E log E)
//	Clone() *Graph                   // O(V + E)
//	InducedSubgraph(ids []int) (*Graph, error)
//	IsComplete() bool                // O(V)
//
// Errors:
//
//	ErrNegativeVertex  – vertex IDs must be >= 0
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – u == v
package core
