// Package matrix holds the numeric input of a principal feature analysis.
//
// A FeatureMatrix is an immutable, row-major table whose rows are features and
// whose columns are observations. The first Outputs() rows are the system-state
// outputs; the remaining rows are the candidate features that the analysis
// classifies. Global feature indices are simply row positions.
//
// The package provides:
//
//   - Dense: a flat row-major float64 store with bounds-checked accessors.
//   - FeatureMatrix: validated view over Dense with state/candidate helpers.
//   - Validators: shape, finiteness and output-count checks that map every
//     violation onto ErrMalformedInput.
//
// Every core component reads a FeatureMatrix concurrently and never mutates
// it; derived matrices (column subsamples) are fresh copies.
package matrix
