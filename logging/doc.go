// SPDX-License-Identifier: MIT

// Package logging provides structured logging for analysis runs.
//
// It wraps log/slog with a small Logger type that carries persistent
// attributes (run ID, sweep index, cluster) into every record. Output is
// JSON by default or logfmt-style text, written to stderr or to a file.
//
// # Thread Safety
//
// Logger is safe for concurrent use; child loggers created with the With*
// methods share the underlying handler and file.
//
// # Basic Usage
//
//	log, err := logging.New(logging.Config{Level: "info"})
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//	log.WithRun(runID).WithSweep(0).Info("sweep finished", "subgraphs", 12)
package logging
