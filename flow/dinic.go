// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink in n using Dinic's
// algorithm (level graph + blocking flows). n itself is not modified.
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a Network of remaining capacities, reverse arcs included
//   - err      : ErrSourceNotFound, ErrSinkNotFound or a context error
//
// Steps:
//  1. Normalize options.
//  2. Validate that source and sink exist.
//  3. Copy capacities into a residual map.
//  4. Repeat until the sink is unreachable:
//     a. BFS from source to assign levels.
//     b. Build the level-graph adjacency in ascending node order.
//     c. Push blocking flow by DFS, optionally rebuilding every
//     LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(n *Network, source, sink int, opts FlowOptions) (maxFlow float64, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !n.HasNode(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !n.HasNode(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap := n.clone(opts.Epsilon)
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := levels(capMap, source, opts.Epsilon)
		if _, ok := level[sink]; !ok {
			break
		}

		next := make(map[int][]int, len(capMap))
		for u, nbrs := range capMap {
			lu, ok := level[u]
			if !ok {
				continue
			}
			for _, v := range sortedKeys(nbrs) {
				if lv, ok := level[v]; ok && lv == lu+1 && nbrs[v] > opts.Epsilon {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make(map[int]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, capMap, next, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, &Network{capacity: capMap}, nil
}

// levels runs a BFS over arcs with capacity > eps and returns each reached
// node's distance from source.
func levels(capMap map[int]map[int]float64, source int, eps float64) map[int]int {
	level := map[int]int{source: 0}
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range sortedKeys(capMap[u]) {
			if _, seen := level[v]; seen || capMap[u][v] <= eps {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dfsDinicPush pushes flow along the level graph, updates capMap in place and
// returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap map[int]map[int]float64,
	next map[int][]int,
	iter map[int]int,
	u, sink int,
	available, eps float64,
) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= eps {
			iter[u] = i + 1
			continue
		}
		send := math.Min(available, capUV)
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send, eps)
		if pushed > eps {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
		iter[u] = i + 1
	}

	return 0
}

// Reachable returns the nodes reachable from source over arcs with
// capacity > eps. On a residual network this is the source side of a
// minimum cut.
func (n *Network) Reachable(source int, eps float64) map[int]bool {
	out := make(map[int]bool)
	for v := range levels(n.capacity, source, eps) {
		out[v] = true
	}

	return out
}
