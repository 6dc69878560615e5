// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the shape checks applied to raw input rows
//     before a FeatureMatrix is built.
//   - Every violation maps onto ErrMalformedInput so the analysis can fail
//     fast before any sweep starts.
//
// Note:
//   - Composite validation runs in a fixed order:
//     Empty → Ragged → Finite → Outputs.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures there is at least one row and one observation.
// Complexity: O(1).
func ValidateNotEmpty(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateRectangular ensures every row has the length of the first row.
// Assumes rows is non-empty.
// Complexity: O(N).
func ValidateRectangular(rows [][]float64) error {
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d observations, want %d", i, len(rows[i]), want),
				ErrRaggedRows)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf observations.
// Complexity: O(N*M).
func ValidateFinite(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateOutputs ensures 0 < outputs < len(rows), so that at least one
// system-state row and at least one candidate feature exist.
// Complexity: O(1).
func ValidateOutputs(rows [][]float64, outputs int) error {
	if outputs < 1 {
		return validatorErrorf(fmt.Sprintf("ValidateOutputs: %d output rows", outputs), ErrMalformedInput)
	}
	if outputs >= len(rows) {
		return validatorErrorf(fmt.Sprintf("ValidateOutputs: %d output rows of %d", outputs, len(rows)), ErrNoCandidates)
	}

	return nil
}

// ValidateRows runs every raw-input validator in the documented order.
func ValidateRows(rows [][]float64, outputs int) error {
	if err := ValidateNotEmpty(rows); err != nil {
		return err
	}
	if err := ValidateRectangular(rows); err != nil {
		return err
	}
	if err := ValidateFinite(rows); err != nil {
		return err
	}

	return ValidateOutputs(rows, outputs)
}
