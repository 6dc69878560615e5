// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/inuritdino/Principal-Feature-Analysis/binning"
	"github.com/inuritdino/Principal-Feature-Analysis/independence"
)

// verdict is the state classification of one candidate.
type verdict struct {
	p         independence.PValue
	dependent bool
}

// classify tests every candidate against the state rows. The result is
// indexed like candidates.
//
// Marginal pass (policy "any"): a candidate depends on the state if any
// output row rejects independence at alpha.
//
// Conditional pass: a candidate that survives the marginal pass is tested
// against each output within the strata of every partner. Partners are the
// non-degenerate candidates whose marginal tests all have p >= partnerAlpha;
// a partner that is itself informative about the state could be a common
// effect of the state and the candidate, and conditioning on it would fake a
// dependency. The price is that a true interaction partner with a chance
// marginal association below partnerAlpha is excluded, so its twin can be
// missed; partnerAlpha = 0 admits every candidate as a partner.
// Conditional p-values are Bonferroni-corrected by the number of conditional
// tests of the candidate.
//
// The reported p-value is the minimum over the tests performed.
func (o *Orchestrator) classify(ctx context.Context, bins []binning.Binning, outputs, candidates []int) ([]verdict, error) {
	alpha := o.cfg.Alpha
	out := make([]verdict, len(candidates))
	marginal := make([]independence.PValue, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.EffectiveWorkers())
	for i, j := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tested := make([]independence.PValue, len(outputs))
			for k, s := range outputs {
				p, err := independence.Test(bins[j], bins[s])
				if err != nil {
					return fmt.Errorf("marginal test of %d against output %d: %w", j, s, err)
				}
				observeTest(kindMarginal, p, alpha)
				tested[k] = p
			}
			marginal[i] = independence.Min(tested...)
			out[i] = verdict{p: marginal[i], dependent: marginal[i].Dependent(alpha)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !o.cfg.ConditionalStateTest {
		return out, nil
	}

	var partners []int
	for i, j := range candidates {
		if !marginal[i].IsDegenerate() && !marginal[i].Dependent(o.cfg.InteractionPartnerAlpha) {
			partners = append(partners, j)
		}
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.EffectiveWorkers())
	for i, j := range candidates {
		if out[i].dependent || bins[j].Degenerate() {
			continue
		}
		g.Go(func() error {
			p, dep, err := o.conditional(gctx, bins, outputs, partners, j)
			if err != nil {
				return err
			}
			out[i] = verdict{p: independence.Min(out[i].p, p), dependent: dep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// conditional runs the stratified tests of candidate j and stops at the
// first dependent outcome.
func (o *Orchestrator) conditional(ctx context.Context, bins []binning.Binning, outputs, partners []int, j int) (independence.PValue, bool, error) {
	tests := 0
	for _, c := range partners {
		if c != j {
			tests += len(outputs)
		}
	}
	if tests == 0 {
		return independence.Degenerate(), false, nil
	}

	tested := make([]independence.PValue, 0, tests)
	for _, c := range partners {
		if c == j {
			continue
		}
		if err := ctx.Err(); err != nil {
			return independence.PValue{}, false, err
		}
		for _, s := range outputs {
			p, err := independence.TestConditional(bins[j], bins[s], bins[c])
			if err != nil {
				return independence.PValue{}, false, fmt.Errorf("conditional test of %d against output %d given %d: %w", j, s, c, err)
			}
			p = independence.Bonferroni(p, tests)
			observeTest(kindConditional, p, o.cfg.Alpha)
			tested = append(tested, p)
			if p.Dependent(o.cfg.Alpha) {
				return independence.Min(tested...), true, nil
			}
		}
	}

	return independence.Min(tested...), false, nil
}
