// SPDX-License-Identifier: MIT
// Package: independence
//
// Purpose:
//   - Build observation-aligned contingency tables from two binnings.
//   - Compute the Pearson statistic with gonum/stat and the upper tail of the
//     chi-square distribution with gonum/stat/distuv.
//
// Edge-case policy:
//   - Any degenerate binning short-circuits to Degenerate() before a table is
//     built.
//   - A conditional test without a single testable stratum is Tested(1).

package independence

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inuritdino/Principal-Feature-Analysis/binning"
)

// ErrMisaligned indicates binnings over different observation counts.
var ErrMisaligned = errors.New("independence: binnings are not observation-aligned")

// Result carries the statistic behind a p-value.
// For a degenerate outcome Statistic and DF are zero.
type Result struct {
	Statistic float64
	DF        int
	PValue    PValue
}

// ChiSquare runs the two-way chi-square test of a against b.
//
// Complexity:
//   - Time O(n + ra·rb), Space O(ra·rb).
func ChiSquare(a, b binning.Binning) (Result, error) {
	if a.Observations() != b.Observations() {
		return Result{}, fmt.Errorf("ChiSquare(%d,%d): %w", a.Observations(), b.Observations(), ErrMisaligned)
	}
	if a.Degenerate() || b.Degenerate() {
		return Result{PValue: Degenerate()}, nil
	}

	ra, rb := a.Bins(), b.Bins()
	counts := make([]int, ra*rb)
	for i, la := range a.Labels {
		counts[la*rb+b.Labels[i]]++
	}
	chi2, df := tableStatistic(counts, ra, rb)

	return Result{Statistic: chi2, DF: df, PValue: survival(chi2, df)}, nil
}

// ConditionalChiSquare tests a against b within every stratum of given and
// sums statistics and degrees of freedom over the strata.
//
// Complexity:
//   - Time O(n + rg·ra·rb), Space O(rg·ra·rb).
func ConditionalChiSquare(a, b, given binning.Binning) (Result, error) {
	n := a.Observations()
	if b.Observations() != n || given.Observations() != n {
		return Result{}, fmt.Errorf("ConditionalChiSquare: %w", ErrMisaligned)
	}
	if a.Degenerate() || b.Degenerate() || given.Degenerate() {
		return Result{PValue: Degenerate()}, nil
	}

	ra, rb, rg := a.Bins(), b.Bins(), given.Bins()
	cell := ra * rb
	counts := make([]int, rg*cell)
	for i, g := range given.Labels {
		counts[g*cell+a.Labels[i]*rb+b.Labels[i]]++
	}

	var (
		chi2 float64
		df   int
	)
	for s := 0; s < rg; s++ {
		c, d := tableStatistic(counts[s*cell:(s+1)*cell], ra, rb)
		chi2 += c
		df += d
	}
	if df == 0 {
		return Result{PValue: Tested(1)}, nil
	}

	return Result{Statistic: chi2, DF: df, PValue: survival(chi2, df)}, nil
}

// Test returns only the p-value of ChiSquare.
func Test(a, b binning.Binning) (PValue, error) {
	r, err := ChiSquare(a, b)
	return r.PValue, err
}

// TestConditional returns only the p-value of ConditionalChiSquare.
func TestConditional(a, b, given binning.Binning) (PValue, error) {
	r, err := ConditionalChiSquare(a, b, given)
	return r.PValue, err
}

// tableStatistic computes the Pearson statistic of an r×c count table,
// ignoring empty rows and columns. Tables with fewer than two occupied rows
// or columns contribute (0, 0).
func tableStatistic(counts []int, r, c int) (float64, int) {
	rowSum := make([]int, r)
	colSum := make([]int, c)
	total := 0
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := counts[i*c+j]
			rowSum[i] += v
			colSum[j] += v
			total += v
		}
	}
	rows := occupied(rowSum)
	cols := occupied(colSum)
	if len(rows) < 2 || len(cols) < 2 {
		return 0, 0
	}

	obs := make([]float64, 0, len(rows)*len(cols))
	exp := make([]float64, 0, len(rows)*len(cols))
	n := float64(total)
	for _, i = range rows {
		for _, j = range cols {
			obs = append(obs, float64(counts[i*c+j]))
			exp = append(exp, float64(rowSum[i])*float64(colSum[j])/n)
		}
	}

	return stat.ChiSquare(obs, exp), (len(rows) - 1) * (len(cols) - 1)
}

// occupied lists the positions of non-zero sums.
func occupied(sums []int) []int {
	out := make([]int, 0, len(sums))
	for i, s := range sums {
		if s > 0 {
			out = append(out, i)
		}
	}

	return out
}

// survival is the upper tail P(X >= chi2) of a chi-square with df degrees.
func survival(chi2 float64, df int) PValue {
	if df <= 0 {
		return Tested(1)
	}
	if chi2 <= 0 {
		return Tested(1)
	}

	return Tested(distuv.ChiSquared{K: float64(df)}.Survival(chi2))
}
