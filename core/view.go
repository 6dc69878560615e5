// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of g.
//
// Implementation:
//   - Stage 1: Take the read lock once.
//   - Stage 2: Copy every adjacency bucket; edgeCount is carried over.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make(map[int]map[int]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, nbrs := range g.adjacency {
		cp := make(map[int]float64, len(nbrs))
		for v, p := range nbrs {
			cp[v] = p
		}
		out.adjacency[u] = cp
	}

	return out
}

// InducedSubgraph returns a new graph on ids keeping only edges with both
// endpoints in ids. Duplicate IDs are collapsed.
//
// Errors: ErrVertexNotFound if any id is absent.
// Complexity: O(Σ deg(id)).
func (g *Graph) InducedSubgraph(ids []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.adjacency[id]; !ok {
			return nil, ErrVertexNotFound
		}
		keep[id] = struct{}{}
	}

	out := NewGraph()
	for id := range keep {
		out.ensureVertex(id)
	}
	for u := range keep {
		for v, p := range g.adjacency[u] {
			if _, ok := keep[v]; !ok {
				continue
			}
			if _, dup := out.adjacency[u][v]; dup {
				continue
			}
			out.adjacency[u][v] = p
			out.adjacency[v][u] = p
			out.edgeCount++
		}
	}

	return out, nil
}

// IsComplete reports whether every pair of distinct vertices is adjacent.
// Graphs with fewer than two vertices are complete.
// Complexity: O(V).
func (g *Graph) IsComplete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	for _, nbrs := range g.adjacency {
		if len(nbrs) != n-1 {
			return false
		}
	}

	return true
}
