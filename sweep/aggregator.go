// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

// Aggregator runs NumberSweeps sweeps and intersects their results.
type Aggregator struct {
	orch *Orchestrator
}

// NewAggregator returns an Aggregator over m.
func NewAggregator(m *matrix.FeatureMatrix, cfg config.Analysis, opts ...Option) (*Aggregator, error) {
	orch, err := NewOrchestrator(m, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Aggregator{orch: orch}, nil
}

// Run executes every sweep concurrently (bounded by the worker count) with
// its own derived RNG, then intersects the depends-on-state sets.
func (a *Aggregator) Run(ctx context.Context) (*Aggregate, error) {
	cfg := a.orch.cfg
	started := time.Now()
	results := make([]*Result, cfg.NumberSweeps)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.EffectiveWorkers())
	for i := range results {
		g.Go(func() error {
			r, err := a.orch.Run(gctx, i, sweepRNG(cfg.EffectiveSeed(), i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := &Aggregate{Sweeps: results, DependsPerSweep: make([][]int, len(results))}
	for i, r := range results {
		agg.DependsPerSweep[i] = r.DependsOnState()
	}
	agg.Intersection = intersect(agg.DependsPerSweep)
	principalFeatures.Set(float64(len(agg.Intersection)))

	a.orch.log.Info("sweeps finished",
		"sweeps", len(results),
		"principal_features", len(agg.Intersection),
		"elapsed", time.Since(started).String(),
	)

	return agg, nil
}

// intersect returns the ascending intersection of ascending sets.
func intersect(sets [][]int) []int {
	if len(sets) == 0 {
		return []int{}
	}
	out := append([]int{}, sets[0]...)
	for _, s := range sets[1:] {
		kept := out[:0]
		i, j := 0, 0
		for i < len(out) && j < len(s) {
			switch {
			case out[i] == s[j]:
				kept = append(kept, out[i])
				i++
				j++
			case out[i] < s[j]:
				i++
			default:
				j++
			}
		}
		out = kept
	}

	return out
}
