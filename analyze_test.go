// SPDX-License-Identifier: MIT

package pfa_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pfa "github.com/inuritdino/Principal-Feature-Analysis"
	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/logging"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
	"github.com/inuritdino/Principal-Feature-Analysis/synth"
)

func xorMatrix(t *testing.T) *matrix.FeatureMatrix {
	t.Helper()
	d, err := synth.XOR(400, synth.WithSeed(3))
	require.NoError(t, err)
	m, err := d.Matrix()
	require.NoError(t, err)

	return m
}

func TestAnalyze_XOR(t *testing.T) {
	cfg := config.Default().Analysis
	cfg.MinNDatapointsABin = 20
	cfg.CalculateMutualInformation = true
	cfg.NumberSweeps = 2
	cfg.ShuffleFeatureNumbers = true

	var logs bytes.Buffer
	res, err := pfa.Analyze(context.Background(), xorMatrix(t), cfg,
		pfa.WithRunID("run-xor"),
		pfa.WithLogger(logging.NewWriter(&logs, logging.Config{Level: "info"})),
	)
	require.NoError(t, err)

	assert.Equal(t, "run-xor", res.RunID)
	assert.Equal(t, []int{1, 2}, res.Intersection)
	assert.Len(t, res.Sweeps, 2)
	assert.Equal(t, 1, res.Last().Sweep)
	require.NotNil(t, res.MutualInformation)
	assert.Len(t, res.MutualInformation.Entries, 2)
	assert.Contains(t, logs.String(), `"run_id":"run-xor"`)
}

func TestAnalyze_RejectsBeforeSweeping(t *testing.T) {
	m := xorMatrix(t)

	bad := config.Default().Analysis
	bad.Alpha = 2
	_, err := pfa.Analyze(context.Background(), m, bad)
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)

	mismatch := config.Default().Analysis
	mismatch.NumberOutputFunctions = 2
	_, err = pfa.Analyze(context.Background(), m, mismatch)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)

	_, err = pfa.Analyze(context.Background(), nil, config.Default().Analysis)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)
}

func TestAnalyze_GeneratesRunID(t *testing.T) {
	cfg := config.Default().Analysis
	cfg.MinNDatapointsABin = 100
	res, err := pfa.Analyze(context.Background(), xorMatrix(t), cfg)
	require.NoError(t, err)
	assert.Len(t, res.RunID, 36)
	assert.Nil(t, res.MutualInformation)
}
