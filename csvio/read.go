// SPDX-License-Identifier: MIT

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

// ReadMatrix parses r into a FeatureMatrix whose first outputs rows are the
// state. With transpose, records are observations and columns are features.
//
// Errors wrap matrix.ErrMalformedInput for unparsable numbers and all the
// FeatureMatrix validation errors.
func ReadMatrix(r io.Reader, outputs int, transpose bool) (*matrix.FeatureMatrix, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: %w: %v", matrix.ErrMalformedInput, err)
		}
		if line == 0 && isHeader(rec) {
			continue
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("csvio: record %d field %d: %w: %q", line+1, j+1, matrix.ErrMalformedInput, field)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	if transpose {
		var err error
		if rows, err = transposeRows(rows); err != nil {
			return nil, err
		}
	}

	return matrix.NewFeatureMatrix(rows, outputs)
}

// ReadMatrixFile opens path and calls ReadMatrix.
func ReadMatrixFile(path string, outputs int, transpose bool) (*matrix.FeatureMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}
	defer f.Close()

	return ReadMatrix(f, outputs, transpose)
}

// isHeader reports whether no field of rec is a number. A record mixing
// numbers and text is data with a typo, not a header.
func isHeader(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return len(rec) > 0
}

func transposeRows(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := matrix.ValidateRectangular(rows); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows[0]))
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}

	return out, nil
}
