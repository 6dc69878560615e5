// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pfa "github.com/inuritdino/Principal-Feature-Analysis"
	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/csvio"
	"github.com/inuritdino/Principal-Feature-Analysis/logging"
)

var errNoInput = errors.New("no input file: pass --input or set input.path")

func newRunCommand(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Analyse a CSV feature table",
		Long: `Run reads a CSV table whose first rows are the system state, runs every
sweep and writes the principal features, subgraphs, p-values and dissection
of the last sweep into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalysis(cmd, v)
		},
	}

	f := c.Flags()
	f.StringP("input", "i", "", "input CSV file")
	f.Bool("transpose", false, "input rows are observations rather than features")
	f.StringP("output", "o", "", "output directory")
	f.IntP("outputs", "n", 0, "number of leading state rows")
	f.Float64("alpha", 0, "significance level")
	f.Int("cluster-size", 0, "features per cluster")
	f.Int("min-bin", 0, "minimum observations per bin")
	f.Int("sweeps", 0, "number of sweeps")
	f.Bool("shuffle", false, "shuffle feature order per sweep")
	f.Float64("fraction", 0, "fraction of observations per sweep")
	f.Bool("mi", false, "estimate mutual information of the principal features")
	f.Int64("seed", 0, "random seed (0 uses the default seed)")
	f.Int("workers", 0, "concurrent tests (0 uses GOMAXPROCS)")
	f.String("dissection", "", "dissection mode: components or mincut")
	f.Bool("bonferroni", false, "Bonferroni-correct pairwise dissection tests")
	f.Bool("conditional-state-test", true, "test marginally independent features within partner strata")
	f.Float64("interaction-partner-alpha", 0, "partners must have marginal p at or above this level")
	f.String("log-level", "", "log level")
	f.String("log-format", "", "log format: json or text")

	for flag, key := range map[string]string{
		"input":        "input.path",
		"transpose":    "input.transpose",
		"output":       "output.dir",
		"outputs":      "analysis.number_output_functions",
		"alpha":        "analysis.alpha",
		"cluster-size": "analysis.cluster_size",
		"min-bin":      "analysis.min_n_datapoints_a_bin",
		"sweeps":       "analysis.number_sweeps",
		"shuffle":      "analysis.shuffle_feature_numbers",
		"fraction":     "analysis.fraction",
		"mi":           "analysis.calculate_mutual_information",
		"seed":         "analysis.seed",
		"workers":      "analysis.workers",
		"dissection":   "analysis.dissection",
		"bonferroni":   "analysis.bonferroni",
		"log-level":    "logging.level",
		"log-format":   "logging.format",

		"conditional-state-test":    "analysis.conditional_state_test",
		"interaction-partner-alpha": "analysis.interaction_partner_alpha",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return c
}

func runAnalysis(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if cfg.Input.Path == "" {
		return errNoInput
	}

	log, err := newLogger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Close()

	m, err := csvio.ReadMatrixFile(cfg.Input.Path, cfg.Analysis.NumberOutputFunctions, cfg.Input.Transpose)
	if err != nil {
		return err
	}

	res, err := pfa.Analyze(contextOf(cmd), m, cfg.Analysis, pfa.WithLogger(log))
	if err != nil {
		log.Error("analysis failed", "error", err)
		return err
	}
	if err := csvio.WriteResult(cfg.Output.Dir, res); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s\n", res.RunID)
	fmt.Fprintf(out, "principal features: %v\n", res.Intersection)
	fmt.Fprintf(out, "results written to %s\n", cfg.Output.Dir)

	return nil
}

// newLogger logs to the configured file, or to the command's stderr.
func newLogger(cmd *cobra.Command, cfg logging.Config) (*logging.Logger, error) {
	if cfg.File != "" {
		return logging.New(cfg)
	}

	return logging.NewWriter(cmd.ErrOrStderr(), cfg), nil
}
