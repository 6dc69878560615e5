// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inuritdino/Principal-Feature-Analysis/bfs"
	"github.com/inuritdino/Principal-Feature-Analysis/core"
)

func path(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(path(t, 3), 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_LevelOrder(t *testing.T) {
	g := core.NewGraph(core.WithVertices(7))
	// star around 2 plus tail 4-5; 7 is unreachable
	for _, e := range [][2]int{{2, 4}, {2, 0}, {2, 1}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 4, 5}, res.Order)
}

func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path(t, 4), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Components(path(t, 4), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph(core.WithVertices(8))
	for _, e := range [][2]int{{5, 3}, {3, 7}, {1, 0}, {6, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {3, 5, 7}, {4, 6}, {8}}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
