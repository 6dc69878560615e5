// SPDX-License-Identifier: MIT

package sweep

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

// Test kinds used as metric labels.
const (
	kindPair        = "pair"
	kindMarginal    = "marginal"
	kindConditional = "conditional"
)

var (
	// testsTotal counts independence tests by kind and outcome.
	// Outcome labels: "dependent", "independent", "degenerate".
	testsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pfa_independence_tests_total",
		Help: "Independence tests performed by kind and outcome",
	}, []string{"kind", "outcome"})

	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pfa_sweep_duration_seconds",
		Help:    "Wall time of one sweep",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
	})

	subgraphsPerSweep = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pfa_sweep_subgraphs",
		Help:    "Number of irreducible subgraphs per sweep",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500, 1000},
	})

	principalFeatures = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pfa_principal_features",
		Help: "Size of the latest depends-on-state intersection",
	})
)

// observeTest records one test outcome.
func observeTest(kind string, p independence.PValue, alpha float64) {
	outcome := "independent"
	switch {
	case p.IsDegenerate():
		outcome = "degenerate"
	case p.Dependent(alpha):
		outcome = "dependent"
	}
	testsTotal.WithLabelValues(kind, outcome).Inc()
}

var (
	tracerOnce  sync.Once
	sweepTracer trace.Tracer
)

// getTracer returns the OTel tracer, initializing it lazily.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		sweepTracer = otel.Tracer("github.com/inuritdino/Principal-Feature-Analysis/sweep")
	})

	return sweepTracer
}
