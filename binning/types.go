// SPDX-License-Identifier: MIT
// Package binning: Binning value type and sentinel errors.

package binning

import "errors"

// Sentinel errors for binning.
var (
	// ErrMinPerBin indicates a minimum bin population below 1.
	ErrMinPerBin = errors.New("binning: minimum bin population must be >= 1")

	// ErrNoObservations indicates an empty observation vector.
	ErrNoObservations = errors.New("binning: no observations")

	// ErrLengthMismatch indicates binnings over different observation counts.
	ErrLengthMismatch = errors.New("binning: observation counts differ")
)

// Binning is the histogram of one feature.
//
// Edges has Bins()+1 entries: the lowest value of every bin followed by the
// overall maximum. Bin j holds values v with Edges[j] <= v < Edges[j+1]
// (the last bin also holds the maximum). Counts[j] >= the minimum population
// used to build it. Labels[i] is the bin of observation i.
//
// A degenerate Binning has no bins; Degenerate() reports it.
type Binning struct {
	Edges  []float64
	Counts []int
	Labels []int

	n int // number of observations binned
}

// Bins returns the number of bins (0 when degenerate).
func (b Binning) Bins() int { return len(b.Counts) }

// Degenerate reports whether fewer than two bins could be formed.
func (b Binning) Degenerate() bool { return len(b.Counts) < 2 }

// Observations returns the number of observations that were binned.
func (b Binning) Observations() int { return b.n }

// degenerate returns the marker for n observations.
func degenerate(n int) Binning { return Binning{n: n} }
