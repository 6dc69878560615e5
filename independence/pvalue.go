// SPDX-License-Identifier: MIT
// Package: independence
//
// PValue is a two-variant value: Tested(p) or Degenerate(). The external
// representation of Degenerate is the literal 1.1, which is strictly greater
// than any alpha a caller can configure.

package independence

import (
	"math"
	"strconv"
)

// SentinelValue is the serialised form of a degenerate p-value.
const SentinelValue = 1.1

// PValue is the outcome of an independence test.
// The zero value is Tested(0); use Degenerate() for the sentinel.
type PValue struct {
	p          float64
	degenerate bool
}

// Tested wraps a genuine p-value, clamped into [0,1]. NaN maps to 1.
func Tested(p float64) PValue {
	switch {
	case math.IsNaN(p) || p > 1:
		p = 1
	case p < 0:
		p = 0
	}

	return PValue{p: p}
}

// Degenerate returns the "cannot be tested" sentinel.
func Degenerate() PValue { return PValue{degenerate: true} }

// IsDegenerate reports whether v is the sentinel.
func (v PValue) IsDegenerate() bool { return v.degenerate }

// Value returns the tested p-value and true, or (0, false) for the sentinel.
func (v PValue) Value() (float64, bool) {
	if v.degenerate {
		return 0, false
	}

	return v.p, true
}

// Float64 returns the external numeric form: p, or SentinelValue.
func (v PValue) Float64() float64 {
	if v.degenerate {
		return SentinelValue
	}

	return v.p
}

// Dependent applies the decision rule: tested and p < alpha.
func (v PValue) Dependent(alpha float64) bool {
	return !v.degenerate && v.p < alpha
}

// Less orders tested values ascending and the sentinel after all of them.
func (v PValue) Less(o PValue) bool {
	switch {
	case v.degenerate:
		return false
	case o.degenerate:
		return true
	default:
		return v.p < o.p
	}
}

// String formats the value; the sentinel prints as "1.1".
func (v PValue) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
}

// Min returns the smallest value under Less, or Degenerate() for no input.
func Min(vs ...PValue) PValue {
	out := Degenerate()
	for _, v := range vs {
		if v.Less(out) {
			out = v
		}
	}

	return out
}

// Bonferroni multiplies a tested p-value by the number of comparisons m
// (capped at 1). The sentinel and m <= 1 pass through unchanged.
func Bonferroni(v PValue, m int) PValue {
	if v.degenerate || m <= 1 {
		return v
	}

	return Tested(v.p * float64(m))
}
