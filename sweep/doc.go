// SPDX-License-Identifier: MIT

// Package sweep runs Principal Feature Analysis sweeps.
//
// One sweep (Orchestrator.Run):
//
//  1. Derive the candidate ordering (optionally shuffled) and the
//     observation subsample from a per-sweep RNG.
//  2. Bin every row once.
//  3. Chunk the ordering into clusters and dissect every cluster into
//     irreducible subgraphs.
//  4. Classify every candidate against the system state: marginal
//     chi-square against each output row, then (if enabled and still
//     independent) stratified tests conditioned on every other candidate.
//  5. Split each subgraph's members into depends-on-state and independent.
//
// State classification never looks at the dissection, so neither shuffling
// nor the cluster size can change which features depend on the state.
//
// Aggregator.Run executes several sweeps concurrently and intersects their
// depends-on-state sets.
//
// Concurrency: every fan-out uses errgroup with a bounded limit; each task
// writes only its own slot and merging happens after Wait.
package sweep
