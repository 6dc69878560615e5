// SPDX-License-Identifier: MIT

package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/inuritdino/Principal-Feature-Analysis/core"
	"github.com/inuritdino/Principal-Feature-Analysis/flow"
)

// DinicSuite exercises Dinic and MinVertexCut under various scenarios.
type DinicSuite struct {
	suite.Suite
}

func (s *DinicSuite) net(arcs ...[3]float64) *flow.Network {
	n := flow.NewNetwork()
	for _, a := range arcs {
		s.Require().NoError(n.AddArc(int(a[0]), int(a[1]), a[2]))
	}

	return n
}

// TestSingleArc verifies that a single arc yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleArc() {
	n := s.net([3]float64{0, 1, 7})
	mf, res, err := flow.Dinic(n, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, mf)
	require.Equal(s.T(), 0.0, res.Capacity(0, 1), "forward arc should be saturated")
	require.Equal(s.T(), 7.0, res.Capacity(1, 0), "reverse arc should carry the flow")
	require.Equal(s.T(), 7.0, n.Capacity(0, 1), "input network must not change")
}

// TestMultiPath verifies max flow on two paths plus aggregation of parallel arcs.
func (s *DinicSuite) TestMultiPath() {
	n := s.net(
		[3]float64{0, 1, 2},
		[3]float64{0, 1, 3}, // parallel, summed to 5
		[3]float64{0, 2, 4},
		[3]float64{2, 1, 3},
	)
	mf, _, err := flow.Dinic(n, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8.0, mf)
}

// TestClassicNetwork checks the CLRS textbook network (max flow 23).
func (s *DinicSuite) TestClassicNetwork() {
	n := s.net(
		[3]float64{0, 1, 16}, [3]float64{0, 2, 13},
		[3]float64{1, 3, 12}, [3]float64{2, 1, 4},
		[3]float64{2, 4, 14}, [3]float64{3, 2, 9},
		[3]float64{3, 5, 20}, [3]float64{4, 3, 7},
		[3]float64{4, 5, 4},
	)
	for _, interval := range []int{0, 1} {
		opts := flow.DefaultOptions()
		opts.LevelRebuildInterval = interval
		mf, _, err := flow.Dinic(n, 0, 5, opts)
		require.NoError(s.T(), err)
		require.InDelta(s.T(), 23.0, mf, 1e-9)
	}
}

// TestEpsilonAndErrors covers tiny capacities, bad terminals and negative arcs.
func (s *DinicSuite) TestEpsilonAndErrors() {
	n := s.net([3]float64{0, 1, 1e-12})
	mf, _, err := flow.Dinic(n, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf)

	_, _, err = flow.Dinic(n, 9, 1, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
	_, _, err = flow.Dinic(n, 0, 9, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	var edgeErr flow.EdgeError
	require.ErrorAs(s.T(), n.AddArc(1, 2, -1), &edgeErr)
	require.Equal(s.T(), -1.0, edgeErr.Cap)
}

// TestCancellation returns the context error.
func (s *DinicSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := s.net([3]float64{0, 1, 1})
	_, _, err := flow.Dinic(n, 0, 1, flow.FlowOptions{Ctx: ctx})
	require.ErrorIs(s.T(), err, context.Canceled)
}

func graph(t require.TestingT, edges ...[2]int) *core.Graph {
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

// TestMinVertexCut_Bridge finds the single articulation vertex of a bowtie.
func (s *DinicSuite) TestMinVertexCut_Bridge() {
	// triangles {0,1,2} and {2,3,4} share vertex 2
	g := graph(s.T(), [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{2, 4})
	res, err := flow.MinVertexCut(g, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2}, res.Cut)
	require.Equal(s.T(), 0, res.Source)
}

// TestMinVertexCut_Cycle needs two vertices to split a 6-cycle.
func (s *DinicSuite) TestMinVertexCut_Cycle() {
	g := graph(s.T(), [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0})
	res, err := flow.MinVertexCut(g, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Cut, 2)

	rest := g.Clone()
	for _, v := range res.Cut {
		require.NoError(s.T(), rest.RemoveVertex(v))
	}
	require.True(s.T(), rest.HasVertex(res.Source))
	require.True(s.T(), rest.HasVertex(res.Sink))
}

// TestMinVertexCut_NoCut covers complete, tiny and disconnected graphs.
func (s *DinicSuite) TestMinVertexCut_NoCut() {
	k4 := graph(s.T(), [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	res, err := flow.MinVertexCut(k4, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Cut)

	split := graph(s.T(), [2]int{0, 1}, [2]int{2, 3})
	res, err = flow.MinVertexCut(split, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Cut)

	_, err = flow.MinVertexCut(nil, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
