// SPDX-License-Identifier: MIT
// Dense is a row-major matrix of float64 values stored in a flat slice for
// cache friendliness. It backs FeatureMatrix and is never shared mutably
// between goroutines.

package matrix

// Dense stores features as rows and observations as columns.
type Dense struct {
	r, c int
	data []float64 // len r*c, row i at data[i*c:(i+1)*c]
}

// NewDense allocates a zeroed rows×cols table.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows is the number of features.
func (m *Dense) Rows() int { return m.r }

// Cols is the number of observations.
func (m *Dense) Cols() int { return m.c }

// rowView returns the backing slice of row i without copying.
// Callers inside the package must treat it as read-only.
func (m *Dense) rowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}
