// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"sort"

	"github.com/inuritdino/Principal-Feature-Analysis/dissect"
	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

// ErrNilMatrix is returned when no feature matrix is supplied.
var ErrNilMatrix = errors.New("sweep: feature matrix is nil")

// Subgraph is one irreducible subgraph of a sweep with its members split by
// their relation to the system state. DependsOnState and Independent are
// disjoint, ascending and together equal Members.
type Subgraph struct {
	Members        []int        `yaml:"members"`
	Kind           dissect.Kind `yaml:"kind"`
	DependsOnState []int        `yaml:"depends_on_state"`
	Independent    []int        `yaml:"independent"`
}

// FeaturePValue pairs a global feature index with its state p-value.
type FeaturePValue struct {
	Index  int
	PValue independence.PValue
}

// Result is the outcome of a single sweep.
type Result struct {
	// Sweep is the zero-based sweep index.
	Sweep int

	// Subgraphs are ordered by their smallest member.
	Subgraphs []Subgraph

	// PValues lists every candidate once, ascending by index.
	PValues []FeaturePValue

	// Dissection is the member list of every subgraph before the state
	// split.
	Dissection [][]int

	// Order is the candidate ordering that was chunked.
	Order []int

	// Columns are the observation columns used; nil means all of them.
	Columns []int
}

// DependsOnState returns the union of every subgraph's depends-on-state
// members, ascending.
func (r *Result) DependsOnState() []int {
	var out []int
	for _, s := range r.Subgraphs {
		out = append(out, s.DependsOnState...)
	}
	sort.Ints(out)

	return out
}

// Aggregate is the outcome of all sweeps.
type Aggregate struct {
	// Intersection of the depends-on-state sets of every sweep, ascending.
	Intersection []int

	// Sweeps are ordered by sweep index.
	Sweeps []*Result

	// DependsPerSweep[i] is Sweeps[i].DependsOnState().
	DependsPerSweep [][]int
}

// Last returns the result of the final sweep, or nil.
func (a *Aggregate) Last() *Result {
	if len(a.Sweeps) == 0 {
		return nil
	}

	return a.Sweeps[len(a.Sweeps)-1]
}
