// SPDX-License-Identifier: MIT

// Package csvio reads feature matrices from CSV and writes analysis results.
//
// Input: one feature per CSV row (or one observation per row with
// transpose). A leading header record is skipped when none of its fields is
// a number; a first record mixing numbers and text is malformed. Lines starting with '#' are comments.
//
// Output files written by WriteResult:
//
//	principal_features_global_indices.csv – the intersection, one line
//	subgraphs_global_indices.csv          – last sweep, one subgraph per line
//	pvalues_global_indices.csv            – index,p_value (sentinel as 1.1)
//	dissection_global_indices.csv         – pre-state dissection, one line each
//	mutual_information.csv                – only when MI was computed
//	summary.yaml                          – run metadata and per-sweep sets
package csvio
