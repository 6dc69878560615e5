// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/inuritdino/Principal-Feature-Analysis/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 700, cfg.Analysis.ClusterSize)
	assert.Equal(t, 500, cfg.Analysis.MinNDatapointsABin)
	assert.Equal(t, config.DefaultSeed, cfg.Analysis.EffectiveSeed())
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Analysis.EffectiveWorkers())
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(a *config.Analysis){
		"outputs":    func(a *config.Analysis) { a.NumberOutputFunctions = 0 },
		"cluster":    func(a *config.Analysis) { a.ClusterSize = 0 },
		"alpha high": func(a *config.Analysis) { a.Alpha = 1.5 },
		"alpha low":  func(a *config.Analysis) { a.Alpha = -0.1 },
		"min bin":    func(a *config.Analysis) { a.MinNDatapointsABin = 0 },
		"sweeps":     func(a *config.Analysis) { a.NumberSweeps = 0 },
		"fraction 0": func(a *config.Analysis) { a.Fraction = 0 },
		"fraction 2": func(a *config.Analysis) { a.Fraction = 2 },
		"base":       func(a *config.Analysis) { a.BasisLogMutualInformation = 1 },
		"workers":    func(a *config.Analysis) { a.Workers = -2 },
		"partner":    func(a *config.Analysis) { a.InteractionPartnerAlpha = 2 },
		"dissection": func(a *config.Analysis) { a.Dissection = "spectral" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg.Analysis)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfiguration)
		})
	}

	cfg := config.Default()
	cfg.Logging.Level = "loud"
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfiguration)
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pfa.yaml")
	require.NoError(t, os.WriteFile(file, []byte("analysis:\n  alpha: 0.05\n  cluster_size: 50\n"), 0o644))
	t.Setenv("PFA_ANALYSIS_CLUSTER_SIZE", "25")

	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)
	v.SetConfigFile(file)
	require.NoError(t, v.ReadInConfig())

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, 25, cfg.Analysis.ClusterSize)
	assert.Equal(t, 500, cfg.Analysis.MinNDatapointsABin)
	assert.True(t, cfg.Analysis.ConditionalStateTest)

	v.Set("analysis.number_sweeps", 0)
	_, err = config.Load(v)
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Default().WriteYAML(&buf))

	var back config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *config.Default(), back)
}
