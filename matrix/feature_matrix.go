// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - FeatureMatrix is the read-only input of every core component: rows are
//     features, columns are observations, rows 0..k-1 are system-state outputs.
//   - Row accessors return copies; the backing Dense is never exposed, which
//     is what makes concurrent reads from many sweeps safe without locks.
//
// Determinism:
//   - Candidates() always lists global indices in ascending order; any
//     shuffling is the caller's business.

package matrix

const (
	opNewFeatureMatrix = "NewFeatureMatrix"
	opSelectColumns    = "SelectColumns"
	opRow              = "Row"
)

// FeatureMatrix is an immutable feature-by-observation table.
type FeatureMatrix struct {
	dense   *Dense
	outputs int
}

// NewFeatureMatrix validates rows and copies them into a new FeatureMatrix
// whose first outputs rows are the system-state outputs.
//
// Errors:
//   - ErrEmptyMatrix, ErrRaggedRows, ErrNaNInf, ErrNoCandidates, all of
//     which match ErrMalformedInput.
//
// Complexity:
//   - Time O(N*M), Space O(N*M).
func NewFeatureMatrix(rows [][]float64, outputs int) (*FeatureMatrix, error) {
	if err := ValidateRows(rows, outputs); err != nil {
		return nil, matrixErrorf(opNewFeatureMatrix, err)
	}

	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opNewFeatureMatrix, err)
	}
	for i, row := range rows {
		copy(d.rowView(i), row)
	}

	return &FeatureMatrix{dense: d, outputs: outputs}, nil
}

// Rows returns the number of features (state rows included).
func (m *FeatureMatrix) Rows() int { return m.dense.Rows() }

// Observations returns the number of columns.
func (m *FeatureMatrix) Observations() int { return m.dense.Cols() }

// Outputs returns k, the number of system-state rows.
func (m *FeatureMatrix) Outputs() int { return m.outputs }

// Row returns a copy of row i.
func (m *FeatureMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.dense.Rows() {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}
	out := make([]float64, m.dense.Cols())
	copy(out, m.dense.rowView(i))

	return out, nil
}

// StateRows returns the global indices of the system-state outputs (0..k-1).
func (m *FeatureMatrix) StateRows() []int {
	out := make([]int, m.outputs)
	for i := range out {
		out[i] = i
	}

	return out
}

// Candidates returns the global indices of candidate features (k..N-1).
func (m *FeatureMatrix) Candidates() []int {
	out := make([]int, 0, m.dense.Rows()-m.outputs)
	for i := m.outputs; i < m.dense.Rows(); i++ {
		out = append(out, i)
	}

	return out
}

// SelectColumns returns a new FeatureMatrix restricted to the given
// observation columns, in the given order. Used for per-sweep subsampling.
//
// Errors:
//   - ErrEmptyMatrix when cols is empty; ErrOutOfRange for a bad column.
func (m *FeatureMatrix) SelectColumns(cols []int) (*FeatureMatrix, error) {
	if len(cols) == 0 {
		return nil, matrixErrorf(opSelectColumns, ErrEmptyMatrix)
	}
	d, err := NewDense(m.dense.Rows(), len(cols))
	if err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}
	var i, j int
	for i = 0; i < m.dense.Rows(); i++ {
		src := m.dense.rowView(i)
		dst := d.rowView(i)
		for j = range cols {
			if cols[j] < 0 || cols[j] >= m.dense.Cols() {
				return nil, matrixErrorf(opSelectColumns, ErrOutOfRange)
			}
			dst[j] = src[cols[j]]
		}
	}

	return &FeatureMatrix{dense: d, outputs: m.outputs}, nil
}
