// SPDX-License-Identifier: MIT
// Package: binning
//
// Purpose:
//   - Bin: minimum-population, order-preserving quantile binning.
//   - Joint: categorical product of several binnings.
//
// Determinism:
//   - Sorting is the only reordering step; ties are resolved by value, so the
//     same vector always yields the same edges regardless of input order.

package binning

import (
	"fmt"
	"sort"
)

// maxQuantileAttempts bounds how many bin counts beyond the maximum the
// quantile pass tries before falling back to the greedy partition.
const maxQuantileAttempts = 32

// Bin discretises values into the finest binning whose bins all hold at least
// minPerBin observations. It returns a degenerate Binning (not an error) when
// two such bins cannot be formed.
//
// Errors:
//   - ErrMinPerBin for minPerBin < 1.
//   - ErrNoObservations for an empty vector.
//
// Complexity:
//   - Time O(n log n + A·b·log g) with A ≤ maxQuantileAttempts, b bins and g
//     distinct values; Space O(n).
//
// The bin count is always the maximum over partitions whose edges fall on
// distinct-value boundaries; among those, equal-frequency cuts are preferred.
func Bin(values []float64, minPerBin int) (Binning, error) {
	if minPerBin < 1 {
		return Binning{}, fmt.Errorf("Bin(min=%d): %w", minPerBin, ErrMinPerBin)
	}
	n := len(values)
	if n == 0 {
		return Binning{}, ErrNoObservations
	}
	if n < 2*minPerBin {
		return degenerate(n), nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	// bounds[i] is the sorted position where a new distinct value starts.
	bounds := make([]int, 0, 16)
	for i := 1; i < n; i++ {
		if sorted[i] != sorted[i-1] {
			bounds = append(bounds, i)
		}
	}
	if len(bounds) == 0 {
		return degenerate(n), nil
	}

	// The greedy scan fixes the maximum bin count; quantile cuts only choose
	// where those bins lie.
	greedy := greedyStarts(n, minPerBin, bounds)
	if len(greedy) < 2 {
		return degenerate(n), nil
	}
	starts := quantileStarts(n, minPerBin, bounds, len(greedy))
	if starts == nil {
		starts = greedy
	}

	return assemble(values, sorted, starts), nil
}

// quantileStarts tries equal-frequency cuts, snapped to distinct-value
// boundaries, for bin counts want, want+1, ... and returns the first
// partition that has exactly want bins and honours minPerBin, or nil.
func quantileStarts(n, minPerBin int, bounds []int, want int) []int {
	bmax := n / minPerBin
	if bmax > want+maxQuantileAttempts {
		bmax = want + maxQuantileAttempts
	}
	for b := want; b <= bmax; b++ {
		starts := []int{0}
		prev := 0
		for i := 1; i < b; i++ {
			target := i * n / b
			// first distinct-value boundary at or after target and after prev
			k := sort.SearchInts(bounds, target)
			for k < len(bounds) && bounds[k] <= prev {
				k++
			}
			if k == len(bounds) {
				break
			}
			prev = bounds[k]
			starts = append(starts, prev)
		}
		if len(starts) == want && fits(starts, n, minPerBin) {
			return starts
		}
	}

	return nil
}

// greedyStarts closes a bin at the first boundary where it reaches minPerBin
// and folds an underfull tail into the previous bin. Every cut it makes is the
// earliest possible one, so no partition on distinct-value boundaries has
// more bins.
func greedyStarts(n, minPerBin int, bounds []int) []int {
	starts := []int{0}
	cur := 0
	for _, pos := range bounds {
		if pos-cur >= minPerBin {
			starts = append(starts, pos)
			cur = pos
		}
	}
	if n-cur < minPerBin && len(starts) > 1 {
		starts = starts[:len(starts)-1]
	}

	return starts
}

// fits reports whether every segment [starts[j], starts[j+1]) holds minPerBin.
func fits(starts []int, n, minPerBin int) bool {
	for j := range starts {
		end := n
		if j+1 < len(starts) {
			end = starts[j+1]
		}
		if end-starts[j] < minPerBin {
			return false
		}
	}

	return true
}

// assemble converts sorted start positions into edges, counts and labels.
func assemble(values, sorted []float64, starts []int) Binning {
	n := len(sorted)
	bins := len(starts)
	edges := make([]float64, bins+1)
	counts := make([]int, bins)
	for j, s := range starts {
		edges[j] = sorted[s]
		end := n
		if j+1 < bins {
			end = starts[j+1]
		}
		counts[j] = end - s
	}
	edges[bins] = sorted[n-1]

	inner := edges[1:bins] // lower edges of bins 1..bins-1
	labels := make([]int, n)
	for i, v := range values {
		labels[i] = sort.Search(len(inner), func(k int) bool { return inner[k] > v })
	}

	return Binning{Edges: edges, Counts: counts, Labels: labels, n: n}
}

// Joint combines binnings observation-wise into one categorical binning whose
// labels enumerate the occupied cells of the product space in ascending
// mixed-radix order. Degenerate inputs carry no information and are skipped.
// The result is degenerate when fewer than two cells are occupied.
//
// Edges of the joint binning are nil; Counts are per occupied cell and are not
// held to any minimum population.
//
// Errors:
//   - ErrNoObservations when called without binnings.
//   - ErrLengthMismatch when observation counts differ.
func Joint(bs ...Binning) (Binning, error) {
	if len(bs) == 0 {
		return Binning{}, ErrNoObservations
	}
	n := bs[0].n
	for _, b := range bs[1:] {
		if b.n != n {
			return Binning{}, ErrLengthMismatch
		}
	}

	codes := make([]int, n)
	stride := 1
	used := 0
	for _, b := range bs {
		if b.Degenerate() {
			continue
		}
		for i, l := range b.Labels {
			codes[i] += l * stride
		}
		stride *= b.Bins()
		used++
	}
	if used == 0 {
		return degenerate(n), nil
	}
	if used == 1 {
		for _, b := range bs {
			if !b.Degenerate() {
				return b, nil
			}
		}
	}

	occupied := make(map[int]int)
	for _, c := range codes {
		occupied[c]++
	}
	if len(occupied) < 2 {
		return degenerate(n), nil
	}
	keys := make([]int, 0, len(occupied))
	for c := range occupied {
		keys = append(keys, c)
	}
	sort.Ints(keys)
	dense := make(map[int]int, len(keys))
	counts := make([]int, len(keys))
	for j, c := range keys {
		dense[c] = j
		counts[j] = occupied[c]
	}
	labels := make([]int, n)
	for i, c := range codes {
		labels[i] = dense[c]
	}

	return Binning{Counts: counts, Labels: labels, n: n}, nil
}
