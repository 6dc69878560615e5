// SPDX-License-Identifier: MIT

package pfa

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/logging"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
	"github.com/inuritdino/Principal-Feature-Analysis/mutualinfo"
	"github.com/inuritdino/Principal-Feature-Analysis/sweep"
)

// ErrNilMatrix is returned when Analyze receives no matrix.
var ErrNilMatrix = fmt.Errorf("pfa: %w: matrix is nil", matrix.ErrMalformedInput)

// Result is the complete outcome of an analysis.
type Result struct {
	// RunID identifies the run in logs and summaries.
	RunID string

	// Analysis is the configuration the run used.
	Analysis config.Analysis

	// Intersection holds the principal features: candidates that depend on
	// the state in every sweep, ascending.
	Intersection []int

	// Sweeps are ordered by sweep index.
	Sweeps []*sweep.Result

	// DependsPerSweep[i] is the depends-on-state set of sweep i.
	DependsPerSweep [][]int

	// MutualInformation is set when requested.
	MutualInformation *mutualinfo.Table

	// Elapsed is the wall time of Analyze.
	Elapsed time.Duration
}

// Last returns the final sweep's result.
func (r *Result) Last() *sweep.Result {
	if len(r.Sweeps) == 0 {
		return nil
	}

	return r.Sweeps[len(r.Sweeps)-1]
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	log   *logging.Logger
	runID string
}

// WithLogger routes progress logs to l.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRunID fixes the run ID instead of generating a UUID.
func WithRunID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.runID = id
		}
	}
}

// Analyze validates cfg and m, runs every sweep, intersects the results and
// optionally estimates mutual information of the intersection.
//
// Errors (both returned before any sweep):
//   - config.ErrInvalidConfiguration for out-of-range settings;
//   - matrix.ErrMalformedInput when outputs leave no candidates.
func Analyze(ctx context.Context, m *matrix.FeatureMatrix, cfg config.Analysis, opts ...Option) (*Result, error) {
	started := time.Now()
	o := options{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	full := config.Default()
	full.Analysis = cfg
	if err := full.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Outputs() != cfg.NumberOutputFunctions {
		return nil, fmt.Errorf("pfa: matrix has %d outputs, configuration says %d: %w",
			m.Outputs(), cfg.NumberOutputFunctions, matrix.ErrMalformedInput)
	}

	log := o.log.WithRun(o.runID)
	log.Info("analysis started",
		"features", m.Rows(),
		"observations", m.Observations(),
		"outputs", m.Outputs(),
		"sweeps", cfg.NumberSweeps,
	)

	agg, err := sweep.NewAggregator(m, cfg, sweep.WithLogger(log))
	if err != nil {
		return nil, err
	}
	out, err := agg.Run(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:           o.runID,
		Analysis:        cfg,
		Intersection:    out.Intersection,
		Sweeps:          out.Sweeps,
		DependsPerSweep: out.DependsPerSweep,
	}
	if cfg.CalculateMutualInformation {
		tab, err := mutualinfo.Estimate(m, out.Intersection, cfg.MinNDatapointsABin, cfg.BasisLogMutualInformation)
		if err != nil {
			return nil, err
		}
		res.MutualInformation = &tab
	}
	res.Elapsed = time.Since(started)
	log.Info("analysis finished", "principal_features", len(res.Intersection), "elapsed", res.Elapsed.String())

	return res, nil
}
