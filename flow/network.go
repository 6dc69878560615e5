// SPDX-License-Identifier: MIT

package flow

import "sort"

// Network is a directed capacity network over integer nodes.
// Parallel arcs are aggregated by summing their capacities.
type Network struct {
	capacity map[int]map[int]float64
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{capacity: make(map[int]map[int]float64)}
}

// AddNode registers u without arcs.
func (n *Network) AddNode(u int) {
	if _, ok := n.capacity[u]; !ok {
		n.capacity[u] = make(map[int]float64)
	}
}

// HasNode reports whether u is registered.
func (n *Network) HasNode(u int) bool {
	_, ok := n.capacity[u]
	return ok
}

// AddArc adds capacity c to u→v. Self-loops are ignored.
func (n *Network) AddArc(u, v int, c float64) error {
	if c < 0 {
		return EdgeError{From: u, To: v, Cap: c}
	}
	n.AddNode(u)
	n.AddNode(v)
	if u == v {
		return nil
	}
	n.capacity[u][v] += c

	return nil
}

// Capacity returns the capacity of u→v (0 if absent).
func (n *Network) Capacity(u, v int) float64 {
	return n.capacity[u][v]
}

// Nodes returns all nodes in ascending order.
func (n *Network) Nodes() []int {
	out := make([]int, 0, len(n.capacity))
	for u := range n.capacity {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// clone copies the capacities, dropping arcs ≤ eps and adding the zero
// reverse arcs the residual network needs.
func (n *Network) clone(eps float64) map[int]map[int]float64 {
	res := make(map[int]map[int]float64, len(n.capacity))
	for u := range n.capacity {
		res[u] = make(map[int]float64)
	}
	for u, nbrs := range n.capacity {
		for v, c := range nbrs {
			if c <= eps {
				continue
			}
			res[u][v] += c
			if _, ok := res[v][u]; !ok {
				res[v][u] = 0
			}
		}
	}

	return res
}

// sortedKeys returns the keys of m ascending.
func sortedKeys(m map[int]float64) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
