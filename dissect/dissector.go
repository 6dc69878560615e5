// SPDX-License-Identifier: MIT

package dissect

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/inuritdino/Principal-Feature-Analysis/bfs"
	"github.com/inuritdino/Principal-Feature-Analysis/binning"
	"github.com/inuritdino/Principal-Feature-Analysis/core"
	"github.com/inuritdino/Principal-Feature-Analysis/flow"
	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

// Dissector splits clusters using precomputed binnings indexed by global
// feature index. It is safe for concurrent use: Dissect keeps all state on
// its own stack.
type Dissector struct {
	bins       []binning.Binning
	alpha      float64
	bonferroni bool
	mode       Mode
	workers    int
	observe    func(independence.PValue)
}

// NewDissector returns a Dissector over bins.
//
// Errors: ErrInvalidAlpha, ErrUnknownMode.
func NewDissector(bins []binning.Binning, opts ...Option) (*Dissector, error) {
	d := &Dissector{
		bins:    bins,
		alpha:   DefaultAlpha,
		mode:    ModeComponents,
		observe: func(independence.PValue) {},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.alpha < 0 || d.alpha > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidAlpha, d.alpha)
	}
	if _, err := ParseMode(string(d.mode)); err != nil {
		return nil, err
	}
	if d.workers < 1 {
		d.workers = runtime.GOMAXPROCS(0)
	}

	return d, nil
}

// node is one arena entry of the dissection tree.
type node struct {
	idx      IndexMap
	graph    *core.Graph // dependency graph over global indices; nil until built
	parent   int
	children []int
	kind     Kind // fixed kind for nodes that must not be split further
}

// pairTable holds the raw pairwise p-values of a cluster, indexed by the
// cluster-local position of both members.
type pairTable struct {
	n   int
	p   []independence.PValue
	pos map[int]int // global → cluster-local
}

func (t *pairTable) at(gu, gv int) independence.PValue {
	return t.p[t.pos[gu]*t.n+t.pos[gv]]
}

// Dissect partitions cluster (global indices) into irreducible parts.
//
// Implementation:
//   - Stage 1: Validate the cluster as an IndexMap and test every pair once.
//   - Stage 2: Pop a node from the work stack and split its dependency
//     graph. Children reuse the induced subgraph of their parent unless
//     Bonferroni correction is on. Children are pushed in reverse so they
//     are processed in ascending order.
//   - Stage 3: Nodes that cannot be split become parts; parts are sorted
//     by their smallest member.
//
// Errors: ErrDuplicateMember, ErrMemberOutOfRange, independence errors,
// context errors.
func (d *Dissector) Dissect(ctx context.Context, cluster []int) ([]Part, error) {
	root, err := NewIndexMap(cluster)
	if err != nil {
		return nil, err
	}
	for _, g := range cluster {
		if g >= len(d.bins) {
			return nil, fmt.Errorf("%w: %d", ErrMemberOutOfRange, g)
		}
	}
	if root.Len() == 0 {
		return nil, nil
	}

	table, err := d.pairs(ctx, root)
	if err != nil {
		return nil, err
	}

	arena := []node{{idx: root, parent: -1}}
	stack := []int{0}
	var parts []Part
	for len(stack) > 0 {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur := arena[id]
		if cur.kind != "" {
			parts = append(parts, Part{Members: cur.idx.sortedGlobals(), Kind: cur.kind})
			continue
		}

		kids, leaf, err := d.split(ctx, cur, table)
		if err != nil {
			return nil, err
		}
		if len(kids) == 0 {
			parts = append(parts, Part{Members: cur.idx.sortedGlobals(), Kind: leaf})
			continue
		}
		for _, k := range kids {
			k.parent = id
			arena[id].children = append(arena[id].children, len(arena))
			arena = append(arena, k)
		}
		for i := len(arena[id].children) - 1; i >= 0; i-- {
			stack = append(stack, arena[id].children[i])
		}
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Members[0] < parts[j].Members[0] })

	return parts, nil
}

// pairs runs the chi-square test on every unordered pair of root. Rows of
// the table are filled concurrently; each task owns the pairs (i, j>i).
func (d *Dissector) pairs(ctx context.Context, root IndexMap) (*pairTable, error) {
	n := root.Len()
	t := &pairTable{n: n, p: make([]independence.PValue, n*n), pos: make(map[int]int, n)}
	for i := 0; i < n; i++ {
		t.pos[root.Global(i)] = i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bi := d.bins[root.Global(i)]
			for j := i + 1; j < n; j++ {
				p, err := independence.Test(bi, d.bins[root.Global(j)])
				if err != nil {
					return fmt.Errorf("dissect: pair (%d,%d): %w", root.Global(i), root.Global(j), err)
				}
				d.observe(p)
				t.p[i*n+j] = p
				t.p[j*n+i] = p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// graph builds the dependency graph of idx over global indices.
func (d *Dissector) graph(idx IndexMap, table *pairTable) (*core.Graph, error) {
	n := idx.Len()
	g := core.NewGraph(core.WithVertices(idx.Globals()...))
	pairs := n * (n - 1) / 2
	for i := 0; i < n; i++ {
		gi := idx.Global(i)
		for j := i + 1; j < n; j++ {
			gj := idx.Global(j)
			p := table.at(gi, gj)
			if d.bonferroni {
				p = independence.Bonferroni(p, pairs)
			}
			if !p.Dependent(d.alpha) {
				continue
			}
			if err := g.AddEdge(gi, gj, p.Float64()); err != nil {
				return nil, fmt.Errorf("dissect: edge (%d,%d): %w", gi, gj, err)
			}
		}
	}

	return g, nil
}

// child returns the node of members, a subset of the vertices of g. Without
// Bonferroni its graph is the induced subgraph of g; with it the pair count
// changes, so the graph is rebuilt when the node is split.
func (d *Dissector) child(g *core.Graph, members []int) (node, error) {
	idx, err := NewIndexMap(members)
	if err != nil {
		return node{}, err
	}
	if d.bonferroni {
		return node{idx: idx}, nil
	}
	sub, err := g.InducedSubgraph(members)
	if err != nil {
		return node{}, fmt.Errorf("dissect: %w", err)
	}

	return node{idx: idx, graph: sub}, nil
}

// split returns the children of n, or none and the leaf kind when n is
// irreducible.
func (d *Dissector) split(ctx context.Context, n node, table *pairTable) ([]node, Kind, error) {
	leaf := KindComponent
	if d.mode == ModeMinCut {
		leaf = KindComplete
	}
	if n.idx.Len() < 2 {
		return nil, leaf, nil
	}

	g := n.graph
	if g == nil {
		var err error
		if g, err = d.graph(n.idx, table); err != nil {
			return nil, "", err
		}
	}
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, "", err
	}
	if len(comps) > 1 {
		kids := make([]node, len(comps))
		for i, c := range comps {
			if kids[i], err = d.child(g, c); err != nil {
				return nil, "", err
			}
		}
		return kids, "", nil
	}
	if d.mode != ModeMinCut || g.IsComplete() {
		return nil, leaf, nil
	}

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	cut, err := flow.MinVertexCut(g, opts)
	if err != nil {
		return nil, "", err
	}
	if len(cut.Cut) == 0 {
		return nil, KindComponent, nil
	}

	kids := make([]node, 0, len(cut.Cut)+1)
	for _, v := range cut.Cut {
		sep, err := NewIndexMap([]int{v})
		if err != nil {
			return nil, "", err
		}
		kids = append(kids, node{idx: sep, kind: KindSeparator})
	}
	rest, err := d.remainder(g, cut.Cut)
	if err != nil {
		return nil, "", err
	}

	return append(kids, rest), "", nil
}

// remainder returns the node of g without the separator vertices.
func (d *Dissector) remainder(g *core.Graph, separator []int) (node, error) {
	rest := g.Clone()
	for _, v := range separator {
		if err := rest.RemoveVertex(v); err != nil {
			return node{}, fmt.Errorf("dissect: separator %d: %w", v, err)
		}
	}
	idx, err := NewIndexMap(rest.Vertices())
	if err != nil {
		return node{}, err
	}
	if d.bonferroni {
		return node{idx: idx}, nil
	}

	return node{idx: idx, graph: rest}, nil
}
