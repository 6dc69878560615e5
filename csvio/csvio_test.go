// SPDX-License-Identifier: MIT

package csvio_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	pfa "github.com/inuritdino/Principal-Feature-Analysis"
	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/csvio"
	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
	"github.com/inuritdino/Principal-Feature-Analysis/synth"
)

func TestReadMatrix_FeatureRows(t *testing.T) {
	in := "# state first\n1,2,3\n4,5,6\n7, 8, 9\n"
	m, err := csvio.ReadMatrix(strings.NewReader(in), 1, false)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Observations())

	row, err := m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, row)
}

func TestReadMatrix_HeaderAndTranspose(t *testing.T) {
	in := "y,x1\n1,10\n2,20\n3,30\n"
	m, err := csvio.ReadMatrix(strings.NewReader(in), 1, true)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Observations())

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, row)
}

func TestReadMatrix_Errors(t *testing.T) {
	cases := map[string]struct {
		in        string
		outputs   int
		transpose bool
		want      error
	}{
		"bad number": {in: "1,2\n3,x\n", outputs: 1, want: matrix.ErrMalformedInput},
		"typo in state row": {
			in: "1,0,1,0x\n1,1,0,0\n0,1,1,0\n", outputs: 1, want: matrix.ErrMalformedInput,
		},
		"ragged": {in: "1,2\n3\n", outputs: 1, want: matrix.ErrRaggedRows},
		"ragged transposed": {
			in: "1,2\n3\n", outputs: 1, transpose: true, want: matrix.ErrRaggedRows,
		},
		"empty":         {in: "", outputs: 1, want: matrix.ErrEmptyMatrix},
		"no candidates": {in: "1,2\n3,4\n", outputs: 2, want: matrix.ErrNoCandidates},
		"nan":           {in: "1,2\n3,NaN\n", outputs: 1, want: matrix.ErrNaNInf},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := csvio.ReadMatrix(strings.NewReader(tc.in), tc.outputs, tc.transpose)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadMatrixFile_Missing(t *testing.T) {
	_, err := csvio.ReadMatrixFile(filepath.Join(t.TempDir(), "absent.csv"), 1, false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func readRecords(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	require.NoError(t, err)

	return recs
}

func TestWriteResult_XOR(t *testing.T) {
	d, err := synth.XOR(400, synth.WithSeed(5))
	require.NoError(t, err)
	m, err := d.Matrix()
	require.NoError(t, err)

	cfg := config.Default().Analysis
	cfg.MinNDatapointsABin = 20
	cfg.CalculateMutualInformation = true
	res, err := pfa.Analyze(context.Background(), m, cfg, pfa.WithRunID("xor"))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, csvio.WriteResult(dir, res))

	assert.Equal(t, [][]string{{"1", "2"}}, readRecords(t, filepath.Join(dir, csvio.PrincipalFeaturesFile)))

	pv := readRecords(t, filepath.Join(dir, csvio.PValuesFile))
	require.Len(t, pv, 4)
	assert.Equal(t, []string{"index", "p_value"}, pv[0])
	assert.Equal(t, []string{"1", "2", "3"}, []string{pv[1][0], pv[2][0], pv[3][0]})

	sub := readRecords(t, filepath.Join(dir, csvio.SubgraphsFile))
	require.Greater(t, len(sub), 1)
	assert.Equal(t, "subgraph", sub[0][0])

	mi := readRecords(t, filepath.Join(dir, csvio.MutualInfoFile))
	require.Len(t, mi, 3)
	assert.Equal(t, []string{"1", "2"}, []string{mi[1][0], mi[2][0]})

	res.MutualInformation.Entries = res.MutualInformation.Entries[:1]
	require.Error(t, csvio.WriteResult(t.TempDir(), res))

	raw, err := os.ReadFile(filepath.Join(dir, csvio.SummaryFile))
	require.NoError(t, err)
	var sum csvio.Summary
	require.NoError(t, yaml.Unmarshal(raw, &sum))
	assert.Equal(t, "xor", sum.RunID)
	assert.Equal(t, []int{1, 2}, sum.PrincipalFeatures)
	assert.Equal(t, cfg.Alpha, sum.Analysis.Alpha)
}

func TestWriteResult_ConstantSentinel(t *testing.T) {
	d, err := synth.Constant(200, 2)
	require.NoError(t, err)
	m, err := d.Matrix()
	require.NoError(t, err)

	cfg := config.Default().Analysis
	cfg.MinNDatapointsABin = 20
	res, err := pfa.Analyze(context.Background(), m, cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, csvio.WriteResult(dir, res))

	pv := readRecords(t, filepath.Join(dir, csvio.PValuesFile))
	for _, rec := range pv[1:] {
		assert.Equal(t, "1.1", rec[1])
	}
	assert.Empty(t, readRecords(t, filepath.Join(dir, csvio.PrincipalFeaturesFile)))
	_, err = os.Stat(filepath.Join(dir, csvio.MutualInfoFile))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRows_RoundTrip(t *testing.T) {
	rows := [][]float64{{0, 1, 1}, {0.5, 2, -3}}
	var buf strings.Builder
	require.NoError(t, csvio.WriteRows(&buf, rows))
	assert.Equal(t, "0,1,1\n0.5,2,-3\n", buf.String())

	m, err := csvio.ReadMatrix(strings.NewReader(buf.String()), 1, false)
	require.NoError(t, err)
	got, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, rows[1], got)
}

func TestWriteResult_Nil(t *testing.T) {
	require.Error(t, csvio.WriteResult(t.TempDir(), nil))
}
