// SPDX-License-Identifier: MIT

// Package synth generates reproducible synthetic datasets with known
// dependency structure, for tests, examples and the `pfa synth` command.
//
// Every dataset is feature-major: Rows[i] is one feature over all
// observations, and the first Outputs rows are the system state.
//
// Generators:
//
//	XOR              – state = x1 XOR x2, plus an independent x3 (balanced design)
//	Constant         – every row constant; every test is degenerate
//	Proportional     – 0-1-2 all mutually dependent
//	ProductChain     – 2-3-0, 3-1, 0-4-1 (x3 = 2·x0·x1·x2, x4 = x0·x1)
//	Bridge           – 2-0-3-1-4, x3 bridges independent islands 0 and 1
//	Islands          – {0,2} and {1,3,4} disconnected
//	AlternativeSplit – 2-1-0-3, 0-4; cut at 1 or at 0
//
// Graph-shaped datasets use the first feature as the state by default
// (WithStateFeature changes it); the state row is a copy of that feature.
//
// Options follow the constructor-panics rule: WithRand(nil) and
// WithStateFeature(negative) panic, generators themselves return errors.
package synth
