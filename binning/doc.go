// Package binning discretises a continuous feature into an ordered histogram
// under a minimum-population constraint.
//
// Bin produces the finest order-preserving partition of the sorted values in
// which every bin holds at least minPerBin observations. Identical values are
// never split across a bin edge, so constant or nearly-constant features may
// not admit two bins at all; such features yield a degenerate Binning, which
// the independence test turns into the sentinel p-value 1.1.
//
// Strategy:
//
//  1. A greedy scan over distinct-value boundaries closes a bin as soon as it
//     reaches the minimum and folds the underfull tail into the previous bin.
//     Each of its cuts is the earliest possible, so its bin count K is the
//     maximum; fewer than two bins means the feature is degenerate.
//  2. Equal-frequency quantile cuts, each snapped forward to the next
//     distinct-value boundary, are tried for b = K, K+1, ... bins; the first
//     attempt that yields exactly K bins meeting the minimum is used.
//     Otherwise the greedy partition is kept.
//
// Joint combines several binnings into one categorical label per observation
// (used for multi-output system states).
package binning
