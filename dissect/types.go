// SPDX-License-Identifier: MIT

package dissect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

// Sentinel errors for dissection.
var (
	// ErrUnknownMode indicates a dissection mode other than components or mincut.
	ErrUnknownMode = errors.New("dissect: unknown mode")

	// ErrInvalidAlpha indicates an alpha outside [0,1].
	ErrInvalidAlpha = errors.New("dissect: alpha must be in [0,1]")

	// ErrDuplicateMember indicates an index map that is not a bijection.
	ErrDuplicateMember = errors.New("dissect: duplicate global index")

	// ErrMemberOutOfRange indicates a global index without a binning.
	ErrMemberOutOfRange = errors.New("dissect: global index out of range")
)

// Mode selects how far irreducible pieces are split.
type Mode string

const (
	// ModeComponents stops at connected components.
	ModeComponents Mode = "components"

	// ModeMinCut keeps removing minimum vertex cuts until every piece is complete.
	ModeMinCut Mode = "mincut"
)

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeComponents, ModeMinCut:
		return m, nil
	case "":
		return ModeComponents, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Kind classifies an output part.
type Kind string

const (
	// KindComponent is a connected component (ModeComponents leaf).
	KindComponent Kind = "component"

	// KindComplete is a complete piece (ModeMinCut leaf).
	KindComplete Kind = "complete"

	// KindSeparator is a vertex removed by a minimum vertex cut.
	KindSeparator Kind = "separator"
)

// Part is one irreducible subgraph, members in ascending global order.
type Part struct {
	Members []int
	Kind    Kind
}

// IndexMap is a bijection from local indices 0..Len()-1 onto global
// feature indices.
type IndexMap struct {
	global []int
}

// NewIndexMap validates global as a bijection target and copies it.
func NewIndexMap(global []int) (IndexMap, error) {
	seen := make(map[int]struct{}, len(global))
	for _, g := range global {
		if g < 0 {
			return IndexMap{}, fmt.Errorf("%w: %d", ErrMemberOutOfRange, g)
		}
		if _, dup := seen[g]; dup {
			return IndexMap{}, fmt.Errorf("%w: %d", ErrDuplicateMember, g)
		}
		seen[g] = struct{}{}
	}

	return IndexMap{global: append([]int(nil), global...)}, nil
}

// Len returns the number of mapped indices.
func (m IndexMap) Len() int { return len(m.global) }

// Global returns the global index of local i.
func (m IndexMap) Global(i int) int { return m.global[i] }

// Globals returns the global indices in local order (copy).
func (m IndexMap) Globals() []int { return append([]int(nil), m.global...) }

// sortedGlobals returns the global indices ascending.
func (m IndexMap) sortedGlobals() []int {
	out := m.Globals()
	sort.Ints(out)

	return out
}

// Option configures a Dissector.
type Option func(*Dissector)

// WithAlpha sets the edge threshold (edge iff p < alpha).
func WithAlpha(alpha float64) Option {
	return func(d *Dissector) { d.alpha = alpha }
}

// WithBonferroni multiplies pairwise p-values by the number of pairs of the
// node being split.
func WithBonferroni(on bool) Option {
	return func(d *Dissector) { d.bonferroni = on }
}

// WithMode selects the dissection mode.
func WithMode(m Mode) Option {
	return func(d *Dissector) { d.mode = m }
}

// WithWorkers bounds the goroutines testing pairs of one cluster.
// n < 1 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(d *Dissector) { d.workers = n }
}

// WithObserver registers fn to receive every raw pairwise p-value.
// fn may be called from several goroutines when clusters are dissected
// concurrently.
func WithObserver(fn func(independence.PValue)) Option {
	return func(d *Dissector) {
		if fn != nil {
			d.observe = fn
		}
	}
}

// DefaultAlpha is the edge threshold used without WithAlpha.
const DefaultAlpha = 0.01
