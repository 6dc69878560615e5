// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal and connected-component
// discovery over a core.Graph.
//
// Dissection uses Components to split a dependency graph into its connected
// pieces. Every traversal visits neighbours in ascending ID order, and
// components are returned ordered by their smallest member, so results never
// depend on map iteration order.
//
// Complexity:
//
//	BFS:        O(V + E) time, O(V) memory
//	Components: O(V + E) time, O(V) memory
//
// Options (functional):
//
//	WithContext(ctx) – cancellation, checked once per dequeued vertex
package bfs
