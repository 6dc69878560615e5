// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

func TestNewFeatureMatrix_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		rows    [][]float64
		outputs int
		want    error
	}{
		{"empty rows", nil, 1, matrix.ErrEmptyMatrix},
		{"empty observations", [][]float64{{}, {}}, 1, matrix.ErrEmptyMatrix},
		{"ragged", [][]float64{{1, 2}, {1}}, 1, matrix.ErrRaggedRows},
		{"nan", [][]float64{{1, 2}, {math.NaN(), 1}}, 1, matrix.ErrNaNInf},
		{"inf", [][]float64{{1, 2}, {math.Inf(1), 1}}, 1, matrix.ErrNaNInf},
		{"outputs cover every row", [][]float64{{1, 2}, {3, 4}}, 2, matrix.ErrNoCandidates},
		{"no outputs", [][]float64{{1, 2}, {3, 4}}, 0, matrix.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFeatureMatrix(tc.rows, tc.outputs)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrMalformedInput)
		})
	}
}

func TestFeatureMatrix_Accessors(t *testing.T) {
	rows := [][]float64{
		{0, 1, 0, 1},
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	m, err := matrix.NewFeatureMatrix(rows, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Observations())
	assert.Equal(t, 1, m.Outputs())
	assert.Equal(t, []int{0}, m.StateRows())
	assert.Equal(t, []int{1, 2}, m.Candidates())

	r, err := m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, r)

	// Row returns a copy; the matrix stays immutable.
	r[0] = 100
	r, err = m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r[0])

	// Input rows are copied too.
	rows[1][0] = 42
	r, _ = m.Row(1)
	assert.Equal(t, 1.0, r[0])

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFeatureMatrix_SelectColumns(t *testing.T) {
	m, err := matrix.NewFeatureMatrix([][]float64{{1, 2, 3}, {4, 5, 6}}, 1)
	require.NoError(t, err)

	sub, err := m.SelectColumns([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Observations())
	r, _ := sub.Row(1)
	assert.Equal(t, []float64{6, 4}, r)
	assert.Equal(t, 1, sub.Outputs())

	_, err = m.SelectColumns(nil)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
	_, err = m.SelectColumns([]int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewDense_Dimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
}
