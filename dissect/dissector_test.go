// SPDX-License-Identifier: MIT

package dissect_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inuritdino/Principal-Feature-Analysis/binning"
	"github.com/inuritdino/Principal-Feature-Analysis/dissect"
	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

const obs = 400

// binOf bins a generated column of obs observations with minimum 20.
func binOf(t *testing.T, f func(i int) float64) binning.Binning {
	t.Helper()
	v := make([]float64, obs)
	for i := range v {
		v[i] = f(i)
	}
	b, err := binning.Bin(v, 20)
	require.NoError(t, err)

	return b
}

// fixture returns binnings indexed by global index:
//
//	0: x1        1: copy of x1   2: x2   3: copy of x2
//	4: constant  5: x1 + 2·x2 (depends on both x1 and x2)
func fixture(t *testing.T) []binning.Binning {
	x1 := func(i int) float64 { return float64(i % 2) }
	x2 := func(i int) float64 { return float64((i / 2) % 2) }

	return []binning.Binning{
		binOf(t, x1),
		binOf(t, x1),
		binOf(t, x2),
		binOf(t, x2),
		binOf(t, func(int) float64 { return 3 }),
		binOf(t, func(i int) float64 { return x1(i) + 2*x2(i) }),
	}
}

func members(parts []dissect.Part) [][]int {
	out := make([][]int, len(parts))
	for i, p := range parts {
		out[i] = p.Members
	}

	return out
}

func TestDissect_Components(t *testing.T) {
	d, err := dissect.NewDissector(fixture(t))
	require.NoError(t, err)

	parts, err := d.Dissect(context.Background(), []int{4, 3, 0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}}, members(parts))
	for _, p := range parts {
		assert.Equal(t, dissect.KindComponent, p.Kind)
	}
}

func TestDissect_PartitionAndOrderInvariance(t *testing.T) {
	d, err := dissect.NewDissector(fixture(t))
	require.NoError(t, err)

	want, err := d.Dissect(context.Background(), []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	got, err := d.Dissect(context.Background(), []int{5, 3, 1, 4, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	seen := map[int]int{}
	for _, p := range got {
		for _, m := range p.Members {
			seen[m]++
		}
	}
	assert.Len(t, seen, 6)
	for g, c := range seen {
		assert.Equal(t, 1, c, "feature %d must appear exactly once", g)
	}
	// 5 links both pairs into one component
	assert.Equal(t, [][]int{{0, 1, 2, 3, 5}, {4}}, members(got))
}

func TestDissect_ObserverSeesEveryPair(t *testing.T) {
	var calls atomic.Int64
	d, err := dissect.NewDissector(fixture(t),
		dissect.WithWorkers(3),
		dissect.WithObserver(func(independence.PValue) { calls.Add(1) }),
	)
	require.NoError(t, err)

	_, err = d.Dissect(context.Background(), []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.EqualValues(t, 6*5/2, calls.Load())
}

func TestDissect_MinCut(t *testing.T) {
	d, err := dissect.NewDissector(fixture(t), dissect.WithMode(dissect.ModeMinCut))
	require.NoError(t, err)

	// path 0 - 5 - 2: x1 and x2 are independent, 5 depends on both
	parts, err := d.Dissect(context.Background(), []int{2, 5, 0})
	require.NoError(t, err)
	require.Equal(t, []dissect.Part{
		{Members: []int{0}, Kind: dissect.KindComplete},
		{Members: []int{2}, Kind: dissect.KindComplete},
		{Members: []int{5}, Kind: dissect.KindSeparator},
	}, parts)

	// already complete: a single part
	parts, err = d.Dissect(context.Background(), []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, []dissect.Part{{Members: []int{0, 1}, Kind: dissect.KindComplete}}, parts)
}

func TestDissect_Bonferroni(t *testing.T) {
	// a/b form the table [[30,10],[10,30]] (p ≈ 7.7e-6); 50 constant fillers
	// push the pair count to 1326 so the corrected p exceeds 0.01.
	const n = 80
	col := func(f func(i int) bool) binning.Binning {
		v := make([]float64, n)
		for i := range v {
			if f(i) {
				v[i] = 1
			}
		}
		b, err := binning.Bin(v, 20)
		require.NoError(t, err)
		return b
	}
	bins := []binning.Binning{
		col(func(i int) bool { return i >= 40 }),
		col(func(i int) bool { return (i >= 30 && i < 40) || i >= 50 }),
	}
	cluster := []int{0, 1}
	for i := 0; i < 50; i++ {
		bins = append(bins, col(func(int) bool { return false }))
		cluster = append(cluster, len(bins)-1)
	}

	plain, err := dissect.NewDissector(bins)
	require.NoError(t, err)
	parts, err := plain.Dissect(context.Background(), cluster)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, parts[0].Members)
	assert.Len(t, parts, 51)

	corrected, err := dissect.NewDissector(bins, dissect.WithBonferroni(true))
	require.NoError(t, err)
	parts, err = corrected.Dissect(context.Background(), cluster)
	require.NoError(t, err)
	assert.Len(t, parts, 52)
}

func TestDissect_Errors(t *testing.T) {
	bins := fixture(t)
	_, err := dissect.NewDissector(bins, dissect.WithAlpha(1.5))
	require.ErrorIs(t, err, dissect.ErrInvalidAlpha)
	_, err = dissect.NewDissector(bins, dissect.WithMode("spectral"))
	require.ErrorIs(t, err, dissect.ErrUnknownMode)

	d, err := dissect.NewDissector(bins)
	require.NoError(t, err)
	_, err = d.Dissect(context.Background(), []int{0, 0})
	require.ErrorIs(t, err, dissect.ErrDuplicateMember)
	_, err = d.Dissect(context.Background(), []int{0, 17})
	require.ErrorIs(t, err, dissect.ErrMemberOutOfRange)

	parts, err := d.Dissect(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, parts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Dissect(ctx, []int{0, 1, 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestChunk(t *testing.T) {
	order := []int{9, 4, 7, 1, 3}
	assert.Equal(t, [][]int{{9, 4}, {7, 1}, {3}}, dissect.Chunk(order, 2))
	assert.Equal(t, [][]int{{9, 4, 7, 1, 3}}, dissect.Chunk(order, 700))
	assert.Equal(t, [][]int{{9, 4, 7, 1, 3}}, dissect.Chunk(order, 0))
	assert.Nil(t, dissect.Chunk(nil, 3))

	chunks := dissect.Chunk(order, 2)
	chunks[0][0] = -1
	assert.Equal(t, 9, order[0])
}

func TestIndexMap(t *testing.T) {
	m, err := dissect.NewIndexMap([]int{8, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.Global(1))

	g := m.Globals()
	g[0] = -1
	assert.Equal(t, []int{8, 3, 5}, m.Globals())

	_, err = dissect.NewIndexMap([]int{1, -1})
	require.ErrorIs(t, err, dissect.ErrMemberOutOfRange)

	mode, err := dissect.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, dissect.ModeComponents, mode)
}
