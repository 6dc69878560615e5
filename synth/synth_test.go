// SPDX-License-Identifier: MIT

package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inuritdino/Principal-Feature-Analysis/synth"
)

func TestXOR_Balanced(t *testing.T) {
	d, err := synth.XOR(400, synth.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, d.Rows, 4)
	assert.Equal(t, 1, d.Outputs)

	// every (x1, x2) cell holds exactly n/4 observations and y = x1 XOR x2
	cells := map[[2]float64]int{}
	for i := range d.Rows[0] {
		x1, x2 := d.Rows[1][i], d.Rows[2][i]
		cells[[2]float64{x1, x2}]++
		assert.Equal(t, float64(int(x1)^int(x2)), d.Rows[0][i])
	}
	assert.Len(t, cells, 4)
	for _, c := range cells {
		assert.Equal(t, 100, c)
	}

	again, err := synth.XOR(400, synth.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, d, again)

	_, err = synth.XOR(401)
	require.ErrorIs(t, err, synth.ErrObservations)
}

func TestShapedDatasets(t *testing.T) {
	for _, name := range synth.Names() {
		t.Run(name, func(t *testing.T) {
			d, err := synth.ByName(name, 64, synth.WithSeed(3))
			require.NoError(t, err)
			assert.Equal(t, name, d.Name)
			for _, r := range d.Rows {
				assert.Len(t, r, 64)
			}
			m, err := d.Matrix()
			require.NoError(t, err)
			assert.Equal(t, len(d.Rows)-1, len(m.Candidates()))
		})
	}

	_, err := synth.ByName("spiral", 10)
	require.ErrorIs(t, err, synth.ErrUnknownKind)
}

func TestStateFeature(t *testing.T) {
	d, err := synth.Bridge(50, synth.WithSeed(1), synth.WithStateFeature(1))
	require.NoError(t, err)
	assert.Equal(t, d.Rows[2], d.Rows[0], "state row copies feature 1 (row 2)")

	_, err = synth.Bridge(50, synth.WithStateFeature(5))
	require.ErrorIs(t, err, synth.ErrStateFeature)

	assert.Panics(t, func() { synth.WithRand(nil) })
	assert.Panics(t, func() { synth.WithStateFeature(-1) })
}

func TestRelations(t *testing.T) {
	d, err := synth.Proportional(10)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.InDelta(t, 0.6*d.Rows[1][i], d.Rows[2][i], 1e-12)
	}

	c, err := synth.Constant(5, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2, 2}, c.Rows[2])
	_, err = synth.Constant(0, 2)
	require.ErrorIs(t, err, synth.ErrObservations)
}
