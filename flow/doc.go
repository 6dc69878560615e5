// SPDX-License-Identifier: MIT

// Package flow implements Dinic's maximum-flow algorithm on a small directed
// integer-node Network, and the minimum vertex cut of an undirected
// core.Graph built on top of it.
//
// # Algorithms
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E) for level map, adjacency slices and recursion state.
//
//   - MinVertexCut
//
//   - Method: node splitting (v_in → v_out with capacity 1, edges with
//     unbounded capacity), then max-flow between non-adjacent pairs.
//
//   - Sources are limited to the first κ+1 vertices, where κ is the best
//     cut found so far, so the scan stops early on sparse graphs.
//
//   - The returned cut is the one nearest to the source of the first
//     (ascending) pair achieving the minimum, hence deterministic.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Epsilon              float64         // capacities <= Epsilon are zero
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound – missing terminal
//	EdgeError                           – negative capacity
//	ErrGraphNil                         – nil graph passed to MinVertexCut
//	context.Canceled / DeadlineExceeded – opts.Ctx is done
package flow
