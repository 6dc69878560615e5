// SPDX-License-Identifier: MIT

// Package mutualinfo estimates the mutual information between features and
// the (joint) system state on the same binnings the independence tests use.
//
// MI(X;Y) = H(X) + H(Y) - H(X,Y), entropies from gonum/stat in nats,
// converted to the requested logarithm base and clamped to
// [0, log_b(min(bins_X, bins_Y))]. A degenerate feature or state carries no
// information: its MI is 0.
package mutualinfo

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/inuritdino/Principal-Feature-Analysis/binning"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

// Sentinel errors.
var (
	// ErrInvalidBase indicates a logarithm base <= 1.
	ErrInvalidBase = errors.New("mutualinfo: logarithm base must be > 1")

	// ErrFeatureOutOfRange indicates a feature index outside the matrix.
	ErrFeatureOutOfRange = errors.New("mutualinfo: feature index out of range")
)

// Entry is the MI of one feature with the state.
type Entry struct {
	Index       int     `yaml:"index"`
	Value       float64 `yaml:"value"`
	FeatureBins int     `yaml:"feature_bins"`
	StateBins   int     `yaml:"state_bins"`
}

// Table lists entries ascending by Index.
type Table struct {
	Base    float64 `yaml:"base"`
	Entries []Entry `yaml:"entries"`
}

// Lookup returns the entry of a feature.
func (t Table) Lookup(index int) (Entry, bool) {
	i := sort.Search(len(t.Entries), func(i int) bool { return t.Entries[i].Index >= index })
	if i < len(t.Entries) && t.Entries[i].Index == index {
		return t.Entries[i], true
	}

	return Entry{}, false
}

// Estimate computes MI between every listed feature and the joint label of
// all output rows of m. features may be in any order; duplicates collapse.
func Estimate(m *matrix.FeatureMatrix, features []int, minPerBin int, base float64) (Table, error) {
	if !(base > 1) {
		return Table{}, fmt.Errorf("%w: %g", ErrInvalidBase, base)
	}

	stateBins := make([]binning.Binning, 0, m.Outputs())
	for _, s := range m.StateRows() {
		b, err := binRow(m, s, minPerBin)
		if err != nil {
			return Table{}, err
		}
		stateBins = append(stateBins, b)
	}
	state, err := binning.Joint(stateBins...)
	if err != nil {
		return Table{}, fmt.Errorf("mutualinfo: joint state: %w", err)
	}

	idx := append([]int(nil), features...)
	sort.Ints(idx)
	t := Table{Base: base, Entries: make([]Entry, 0, len(idx))}
	for k, f := range idx {
		if k > 0 && idx[k-1] == f {
			continue
		}
		if f < 0 || f >= m.Rows() {
			return Table{}, fmt.Errorf("%w: %d", ErrFeatureOutOfRange, f)
		}
		fb, err := binRow(m, f, minPerBin)
		if err != nil {
			return Table{}, err
		}
		v, err := Pair(fb, state, base)
		if err != nil {
			return Table{}, err
		}
		t.Entries = append(t.Entries, Entry{Index: f, Value: v, FeatureBins: fb.Bins(), StateBins: state.Bins()})
	}

	return t, nil
}

// Pair returns the MI of two observation-aligned binnings in base b.
func Pair(x, y binning.Binning, base float64) (float64, error) {
	if !(base > 1) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidBase, base)
	}
	if x.Observations() != y.Observations() {
		return 0, fmt.Errorf("mutualinfo: %w", binning.ErrLengthMismatch)
	}
	if x.Degenerate() || y.Degenerate() {
		return 0, nil
	}

	bx, by := x.Bins(), y.Bins()
	joint := make([]float64, bx*by)
	for i, l := range x.Labels {
		joint[l*by+y.Labels[i]]++
	}
	px := counts(x.Counts)
	py := counts(y.Counts)
	n := floats.Sum(joint)
	floats.Scale(1/n, joint)
	floats.Scale(1/floats.Sum(px), px)
	floats.Scale(1/floats.Sum(py), py)

	mi := (stat.Entropy(px) + stat.Entropy(py) - stat.Entropy(joint)) / math.Log(base)
	upper := math.Log(float64(min(bx, by))) / math.Log(base)

	return math.Max(0, math.Min(mi, upper)), nil
}

func binRow(m *matrix.FeatureMatrix, i, minPerBin int) (binning.Binning, error) {
	row, err := m.Row(i)
	if err != nil {
		return binning.Binning{}, err
	}
	b, err := binning.Bin(row, minPerBin)
	if err != nil {
		return binning.Binning{}, fmt.Errorf("mutualinfo: bin row %d: %w", i, err)
	}

	return b, nil
}

func counts(c []int) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = float64(v)
	}

	return out
}
