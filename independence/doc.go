// Package independence implements the chi-square independence test on binned
// features together with the tagged p-value type that carries the
// "untestable" sentinel through the analysis.
//
// PValue is either Tested(p) with p in [0,1] or Degenerate(). A degenerate
// value never takes part in arithmetic: it is always independent, it orders
// after every tested value, and it serialises as the literal 1.1 so that
// external consumers can recognise it.
//
// Tests:
//
//   - ChiSquare / Test: Pearson chi-square on the two-way contingency table of
//     two observation-aligned binnings, df = (r-1)(c-1).
//   - ConditionalChiSquare / TestConditional: stratified chi-square, the sum
//     of per-stratum statistics and degrees of freedom over the bins of a
//     third binning. Used to detect features that only act on the system
//     state jointly with another feature (XOR-like interactions).
//
// Decision rule: dependent iff tested and p < alpha; p == alpha is independent.
package independence
