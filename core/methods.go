// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex registers id. Adding an existing vertex is a no-op.
//
// Errors: ErrNegativeVertex if id < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertex
	}
	g.mu.Lock()
	g.ensureVertex(id)
	g.mu.Unlock()

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	_, ok := g.adjacency[id]
	g.mu.RUnlock()

	return ok
}

// RemoveVertex deletes id together with its incident edges.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nb := range nbrs {
		delete(g.adjacency[nb], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)

	return nil
}

// AddEdge inserts the undirected edge {u,v} with p-value p, creating missing
// endpoints. Re-adding an existing edge overwrites its p-value.
//
// Errors: ErrNegativeVertex, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, p float64) error {
	if u < 0 || v < 0 {
		return ErrNegativeVertex
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = p
	g.adjacency[v][u] = p

	return nil
}

// HasEdge reports whether {u,v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Ints(ids)

	return ids
}

// NeighborIDs returns the neighbours of id in ascending order.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbours of id.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, with U < V, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, p := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, PValue: p})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
