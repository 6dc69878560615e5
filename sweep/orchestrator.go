// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/inuritdino/Principal-Feature-Analysis/binning"
	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/dissect"
	"github.com/inuritdino/Principal-Feature-Analysis/independence"
	"github.com/inuritdino/Principal-Feature-Analysis/logging"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

// Option configures an Orchestrator or Aggregator.
type Option func(*Orchestrator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// Orchestrator runs single sweeps over an immutable feature matrix.
// It is safe for concurrent use by several sweeps.
type Orchestrator struct {
	m    *matrix.FeatureMatrix
	cfg  config.Analysis
	mode dissect.Mode
	log  *logging.Logger
}

// NewOrchestrator validates the dissection mode and returns an Orchestrator.
func NewOrchestrator(m *matrix.FeatureMatrix, cfg config.Analysis, opts ...Option) (*Orchestrator, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	mode, err := dissect.ParseMode(cfg.Dissection)
	if err != nil {
		return nil, err
	}
	o := &Orchestrator{m: m, cfg: cfg, mode: mode, log: logging.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Run executes sweep idx. rng drives shuffling and subsampling; nil means
// the stream derived from the configured seed and idx.
//
// Errors: context errors and wrapped binning/test errors; degenerate
// features are never errors.
func (o *Orchestrator) Run(ctx context.Context, idx int, rng *rand.Rand) (res *Result, err error) {
	started := time.Now()
	ctx, span := getTracer().Start(ctx, "sweep.Run", trace.WithAttributes(
		attribute.Int("pfa.sweep", idx),
		attribute.Int("pfa.candidates", len(o.m.Candidates())),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if rng == nil {
		rng = sweepRNG(o.cfg.EffectiveSeed(), idx)
	}
	log := o.log.WithSweep(idx)

	candidates := o.m.Candidates()
	order := candidates
	if o.cfg.ShuffleFeatureNumbers {
		order = shuffled(candidates, rng)
	}
	data := o.m
	cols := subsample(o.m.Observations(), o.cfg.Fraction, rng)
	if cols != nil {
		if data, err = o.m.SelectColumns(cols); err != nil {
			return nil, fmt.Errorf("sweep %d: %w", idx, err)
		}
	}
	log.Debug("sweep started", "candidates", len(candidates), "observations", data.Observations())

	bins, err := o.binRows(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("sweep %d: %w", idx, err)
	}

	parts, err := o.dissectClusters(ctx, bins, order, log)
	if err != nil {
		return nil, fmt.Errorf("sweep %d: %w", idx, err)
	}

	verdicts, err := o.classify(ctx, bins, o.m.StateRows(), candidates)
	if err != nil {
		return nil, fmt.Errorf("sweep %d: %w", idx, err)
	}

	res = assemble(idx, candidates, verdicts, parts)
	res.Order = order
	res.Columns = cols

	sweepDuration.Observe(time.Since(started).Seconds())
	subgraphsPerSweep.Observe(float64(len(res.Subgraphs)))
	log.Info("sweep finished",
		"subgraphs", len(res.Subgraphs),
		"depends_on_state", len(res.DependsOnState()),
		"elapsed", time.Since(started).String(),
	)

	return res, nil
}

// binRows bins every row of data concurrently.
func (o *Orchestrator) binRows(ctx context.Context, data *matrix.FeatureMatrix) ([]binning.Binning, error) {
	bins := make([]binning.Binning, data.Rows())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.EffectiveWorkers())
	for i := range bins {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := data.Row(i)
			if err != nil {
				return err
			}
			b, err := binning.Bin(row, o.cfg.MinNDatapointsABin)
			if err != nil {
				return fmt.Errorf("bin row %d: %w", i, err)
			}
			bins[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bins, nil
}

// dissectClusters chunks order and dissects every cluster concurrently.
// Parts of all clusters are merged and ordered by smallest member.
func (o *Orchestrator) dissectClusters(ctx context.Context, bins []binning.Binning, order []int, log *logging.Logger) ([]dissect.Part, error) {
	d, err := dissect.NewDissector(bins,
		dissect.WithAlpha(o.cfg.Alpha),
		dissect.WithBonferroni(o.cfg.Bonferroni),
		dissect.WithMode(o.mode),
		dissect.WithWorkers(o.cfg.EffectiveWorkers()),
		dissect.WithObserver(func(p independence.PValue) { observeTest(kindPair, p, o.cfg.Alpha) }),
	)
	if err != nil {
		return nil, err
	}

	clusters := dissect.Chunk(order, o.cfg.ClusterSize)
	perCluster := make([][]dissect.Part, len(clusters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.EffectiveWorkers())
	for c, cluster := range clusters {
		g.Go(func() error {
			cctx, span := getTracer().Start(gctx, "sweep.dissectCluster", trace.WithAttributes(
				attribute.Int("pfa.cluster", c),
				attribute.Int("pfa.cluster_size", len(cluster)),
			))
			defer span.End()

			parts, err := d.Dissect(cctx, cluster)
			if err != nil {
				span.RecordError(err)
				return fmt.Errorf("cluster %d: %w", c, err)
			}
			perCluster[c] = parts
			log.Debug("cluster dissected", "cluster", c, "size", len(cluster), "parts", len(parts))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var all []dissect.Part
	for _, parts := range perCluster {
		all = append(all, parts...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Members[0] < all[j].Members[0] })

	return all, nil
}

// assemble builds the sweep result from the state verdicts and the parts.
func assemble(idx int, candidates []int, verdicts []verdict, parts []dissect.Part) *Result {
	dependent := make(map[int]bool, len(candidates))
	res := &Result{Sweep: idx, PValues: make([]FeaturePValue, len(candidates))}
	for i, j := range candidates {
		res.PValues[i] = FeaturePValue{Index: j, PValue: verdicts[i].p}
		dependent[j] = verdicts[i].dependent
	}

	res.Subgraphs = make([]Subgraph, len(parts))
	res.Dissection = make([][]int, len(parts))
	for i, p := range parts {
		sg := Subgraph{Members: p.Members, Kind: p.Kind, DependsOnState: []int{}, Independent: []int{}}
		for _, m := range p.Members {
			if dependent[m] {
				sg.DependsOnState = append(sg.DependsOnState, m)
			} else {
				sg.Independent = append(sg.Independent, m)
			}
		}
		res.Subgraphs[i] = sg
		res.Dissection[i] = append([]int(nil), p.Members...)
	}

	return res
}
