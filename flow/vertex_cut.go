// SPDX-License-Identifier: MIT

package flow

import (
	"sort"

	"github.com/inuritdino/Principal-Feature-Analysis/core"
)

// CutResult describes a minimum vertex cut.
type CutResult struct {
	// Cut is the separator, ascending. Empty when no cut exists.
	Cut []int

	// Source and Sink are the pair whose max-flow produced Cut.
	Source, Sink int
}

// MinVertexCut finds a smallest set of vertices whose removal disconnects
// the undirected graph g.
//
// Empty Cut is returned when g is complete (no non-adjacent pair exists) or
// already disconnected; callers treat both as "no cut to apply".
//
// Implementation:
//   - Stage 1: Split every vertex v into in=2v and out=2v+1 joined by an arc
//     of capacity 1; each edge {u,v} becomes u_out→v_in and v_out→u_in with
//     capacity V+1 (effectively unbounded).
//   - Stage 2: For source index i = 0..κ (κ = best cut so far, starting at
//     the minimum degree) and every later non-adjacent t, run Dinic from
//     s_out to t_in.
//   - Stage 3: The cut is every v whose in-node is reachable from s_out in
//     the residual network while its out-node is not.
//
// Complexity: O(κ · V) max-flow runs.
func MinVertexCut(g *core.Graph, opts FlowOptions) (CutResult, error) {
	if g == nil {
		return CutResult{}, ErrGraphNil
	}
	opts.normalize()

	verts := g.Vertices()
	n := len(verts)
	if n < 3 || g.EdgeCount() == n*(n-1)/2 {
		return CutResult{}, nil
	}

	split, err := splitNetwork(g, verts)
	if err != nil {
		return CutResult{}, err
	}

	// κ(g) <= δ(g) for a non-complete graph, so δ+1 bounds every real cut
	// and caps the number of sources.
	minDegree := n
	for _, v := range verts {
		d, err := g.Degree(v)
		if err != nil {
			return CutResult{}, err
		}
		if d < minDegree {
			minDegree = d
		}
	}

	best := CutResult{}
	bestSize := minDegree + 1
	for i, s := range verts {
		if i > bestSize {
			break
		}
		for _, t := range verts[i+1:] {
			if g.HasEdge(s, t) {
				continue
			}
			value, residual, err := Dinic(split, outNode(s), inNode(t), opts)
			if err != nil {
				return CutResult{}, err
			}
			size := int(value + 0.5)
			if size >= bestSize {
				continue
			}
			bestSize = size
			best = CutResult{Cut: cutFromResidual(residual, s, verts, opts.Epsilon), Source: s, Sink: t}
			if bestSize == 0 {
				return best, nil
			}
		}
	}

	return best, nil
}

func inNode(v int) int  { return 2 * v }
func outNode(v int) int { return 2*v + 1 }

// splitNetwork builds the node-split flow network of g.
func splitNetwork(g *core.Graph, verts []int) (*Network, error) {
	n := NewNetwork()
	unbounded := float64(len(verts) + 1)
	for _, v := range verts {
		if err := n.AddArc(inNode(v), outNode(v), 1); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err := n.AddArc(outNode(e.U), inNode(e.V), unbounded); err != nil {
			return nil, err
		}
		if err := n.AddArc(outNode(e.V), inNode(e.U), unbounded); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// cutFromResidual collects the saturated split arcs on the source side.
func cutFromResidual(residual *Network, s int, verts []int, eps float64) []int {
	reach := residual.Reachable(outNode(s), eps)
	var cut []int
	for _, v := range verts {
		if reach[inNode(v)] && !reach[outNode(v)] {
			cut = append(cut, v)
		}
	}
	sort.Ints(cut)

	return cut
}
