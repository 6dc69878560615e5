// SPDX-License-Identifier: MIT

// Package config defines the run configuration, its defaults and its
// validation. Values are layered by viper (defaults < file < PFA_* env <
// flags) and checked with go-playground/validator before any sweep runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inuritdino/Principal-Feature-Analysis/logging"
)

// ErrInvalidConfiguration is returned for any out-of-range or missing value.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. PFA_ANALYSIS_ALPHA.
const EnvPrefix = "PFA"

// DefaultSeed replaces a zero seed so that runs are reproducible by default.
const DefaultSeed int64 = 1

// Config is the complete configuration of a run.
type Config struct {
	Analysis Analysis       `mapstructure:"analysis" yaml:"analysis"`
	Input    Input          `mapstructure:"input" yaml:"input"`
	Output   Output         `mapstructure:"output" yaml:"output"`
	Logging  logging.Config `mapstructure:"logging" yaml:"logging"`
}

// Analysis holds every knob of the algorithm.
type Analysis struct {
	// NumberOutputFunctions is k: rows 0..k-1 are the system state.
	NumberOutputFunctions int `mapstructure:"number_output_functions" yaml:"number_output_functions" validate:"gte=1"`
	// ClusterSize bounds the number of candidates dissected together.
	ClusterSize int `mapstructure:"cluster_size" yaml:"cluster_size" validate:"gte=1"`
	// Alpha is the significance level; p < Alpha means dependent.
	Alpha float64 `mapstructure:"alpha" yaml:"alpha" validate:"gte=0,lte=1"`
	// MinNDatapointsABin is the minimum population of every bin.
	MinNDatapointsABin int `mapstructure:"min_n_datapoints_a_bin" yaml:"min_n_datapoints_a_bin" validate:"gte=1"`
	// ShuffleFeatureNumbers permutes the candidates before chunking.
	ShuffleFeatureNumbers bool `mapstructure:"shuffle_feature_numbers" yaml:"shuffle_feature_numbers"`
	// NumberSweeps is the number of independent sweeps to intersect.
	NumberSweeps int `mapstructure:"number_sweeps" yaml:"number_sweeps" validate:"gte=1"`
	// Fraction of observations drawn (without replacement) per sweep.
	Fraction float64 `mapstructure:"fraction" yaml:"fraction" validate:"gt=0,lte=1"`
	// CalculateMutualInformation enables the MI table of principal features.
	CalculateMutualInformation bool `mapstructure:"calculate_mutual_information" yaml:"calculate_mutual_information"`
	// BasisLogMutualInformation is the logarithm base of MI values.
	BasisLogMutualInformation float64 `mapstructure:"basis_log_mutual_information" yaml:"basis_log_mutual_information" validate:"gt=1"`
	// Seed drives shuffling and subsampling; 0 means DefaultSeed.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// Workers bounds concurrency; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" yaml:"workers" validate:"gte=0"`
	// Dissection is "components" or "mincut".
	Dissection string `mapstructure:"dissection" yaml:"dissection" validate:"oneof=components mincut"`
	// ConditionalStateTest enables the stratified pass for interacting features.
	ConditionalStateTest bool `mapstructure:"conditional_state_test" yaml:"conditional_state_test"`
	// InteractionPartnerAlpha excludes conditioning partners whose own
	// marginal state test has p below it.
	InteractionPartnerAlpha float64 `mapstructure:"interaction_partner_alpha" yaml:"interaction_partner_alpha" validate:"gte=0,lte=1"`
	// Bonferroni corrects pairwise and conditional p-values.
	Bonferroni bool `mapstructure:"bonferroni" yaml:"bonferroni"`
}

// Input describes the data file.
type Input struct {
	Path string `mapstructure:"path" yaml:"path"`
	// Transpose reads observations as rows and features as columns.
	Transpose bool `mapstructure:"transpose" yaml:"transpose"`
}

// Output describes where results go.
type Output struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: Analysis{
			NumberOutputFunctions:     1,
			ClusterSize:               700,
			Alpha:                     0.01,
			MinNDatapointsABin:        500,
			NumberSweeps:              1,
			Fraction:                  1,
			BasisLogMutualInformation: 2,
			Dissection:                "components",
			ConditionalStateTest:      true,
			InteractionPartnerAlpha:   0.05,
		},
		Output:  Output{Dir: "."},
		Logging: logging.Config{Level: "info", Format: logging.FormatJSON},
	}
}

// SetDefaults registers every default on v so that env and flag
// overrides bind to known keys.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("analysis.number_output_functions", d.Analysis.NumberOutputFunctions)
	v.SetDefault("analysis.cluster_size", d.Analysis.ClusterSize)
	v.SetDefault("analysis.alpha", d.Analysis.Alpha)
	v.SetDefault("analysis.min_n_datapoints_a_bin", d.Analysis.MinNDatapointsABin)
	v.SetDefault("analysis.shuffle_feature_numbers", d.Analysis.ShuffleFeatureNumbers)
	v.SetDefault("analysis.number_sweeps", d.Analysis.NumberSweeps)
	v.SetDefault("analysis.fraction", d.Analysis.Fraction)
	v.SetDefault("analysis.calculate_mutual_information", d.Analysis.CalculateMutualInformation)
	v.SetDefault("analysis.basis_log_mutual_information", d.Analysis.BasisLogMutualInformation)
	v.SetDefault("analysis.seed", d.Analysis.Seed)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("analysis.dissection", d.Analysis.Dissection)
	v.SetDefault("analysis.conditional_state_test", d.Analysis.ConditionalStateTest)
	v.SetDefault("analysis.interaction_partner_alpha", d.Analysis.InteractionPartnerAlpha)
	v.SetDefault("analysis.bonferroni", d.Analysis.Bonferroni)

	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.transpose", d.Input.Transpose)
	v.SetDefault("output.dir", d.Output.Dir)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// BindEnv enables PFA_* environment overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field; the error wraps ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	return nil
}

// EffectiveSeed applies the zero-seed policy.
func (a Analysis) EffectiveSeed() int64 {
	if a.Seed == 0 {
		return DefaultSeed
	}

	return a.Seed
}

// EffectiveWorkers applies the zero-workers policy.
func (a Analysis) EffectiveWorkers() int {
	if a.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return a.Workers
}

// WriteYAML writes c as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}

	return enc.Close()
}
