// SPDX-License-Identifier: MIT

// Package dissect splits clusters of candidate features into irreducible
// subgraphs of the pairwise dependency graph.
//
// A cluster is a list of global feature indices. The Dissector tests every
// unordered pair with the chi-square test, keeps an edge when p < alpha and
// splits the resulting graph into connected components. In ModeMinCut a
// connected but non-complete piece is further split by removing a minimum
// vertex cut; the removed vertices become singleton separator parts.
//
// Recursion is driven by an explicit work stack over an arena of nodes, so
// depth is bounded only by memory. Every node owns an IndexMap of its members
// and a dependency graph over global indices. A child takes the induced
// subgraph of its parent, or the parent minus the separator after a cut; with
// Bonferroni correction the child graph is rebuilt because the pair count
// changes.
//
// Determinism: pair order, component order and cut choice are all ascending,
// and the returned parts are ordered by their smallest global member.
//
// Complexity: O(n²) tests per cluster plus O(n + e) per split.
package dissect
