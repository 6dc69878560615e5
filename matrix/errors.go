// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every malformed-input condition is reported through one of the sentinels
// below and every one of them matches ErrMalformedInput via errors.Is, so
// callers can either branch on the umbrella or on the precise cause.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is the umbrella for every input-shape violation.
	// The analysis aborts before any sweep when it is returned.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrEmptyMatrix indicates a matrix without rows or without observations.
	ErrEmptyMatrix = fmt.Errorf("%w: empty matrix", ErrMalformedInput)

	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = fmt.Errorf("%w: rows differ in length", ErrMalformedInput)

	// ErrNoCandidates indicates number_output_functions >= number of rows,
	// leaving no candidate feature to analyse.
	ErrNoCandidates = fmt.Errorf("%w: no candidate features remain", ErrMalformedInput)

	// ErrNaNInf signals a NaN or ±Inf observation.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrMalformedInput)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// matrixErrorf attaches the operation name to a sentinel while keeping it
// reachable through errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
