// SPDX-License-Identifier: MIT

// Package pfa is Principal Feature Analysis: given a matrix whose first rows
// describe a system state and whose remaining rows are candidate features,
// it finds the candidates that statistically depend on the state and groups
// the candidates into irreducible dependency subgraphs.
//
// 🚀 What does it do?
//
//   - Bins every feature (equal-frequency, minimum population per bin)
//   - Tests pairs with the chi-square test and builds a dependency graph
//   - Dissects clusters into connected components (or minimum vertex cuts)
//   - Classifies each candidate against the state, including pure
//     interactions (XOR-like) through stratified tests
//   - Repeats over sweeps (shuffled / subsampled) and intersects the results
//   - Optionally reports mutual information of the principal features
//
// Layout:
//
//	matrix/       - immutable FeatureMatrix and input validation
//	binning/      - order-preserving binning, joint labels
//	independence/ - chi-square tests and the PValue sentinel
//	core/, bfs/, flow/ - dependency graph, components, vertex cuts
//	dissect/      - cluster chunking and subgraph dissection
//	sweep/        - one sweep, many sweeps, intersection
//	mutualinfo/   - entropy-based MI estimator
//	config/, logging/, csvio/, synth/ - configuration, logs, I/O, datasets
//	cmd/pfa       - command-line interface
//
// Quick start:
//
//	m, _ := matrix.NewFeatureMatrix(rows, 1)
//	cfg := config.Default().Analysis
//	res, err := pfa.Analyze(ctx, m, cfg)
//	fmt.Println(res.Intersection)
package pfa
