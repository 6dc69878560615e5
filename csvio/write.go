// SPDX-License-Identifier: MIT

package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	pfa "github.com/inuritdino/Principal-Feature-Analysis"
	"github.com/inuritdino/Principal-Feature-Analysis/config"
	"github.com/inuritdino/Principal-Feature-Analysis/mutualinfo"
)

// File names written by WriteResult.
const (
	PrincipalFeaturesFile = "principal_features_global_indices.csv"
	SubgraphsFile         = "subgraphs_global_indices.csv"
	PValuesFile           = "pvalues_global_indices.csv"
	DissectionFile        = "dissection_global_indices.csv"
	MutualInfoFile        = "mutual_information.csv"
	SummaryFile           = "summary.yaml"
)

// Summary is the YAML document written next to the CSV files.
type Summary struct {
	RunID             string            `yaml:"run_id"`
	Elapsed           string            `yaml:"elapsed"`
	PrincipalFeatures []int             `yaml:"principal_features"`
	DependsPerSweep   [][]int           `yaml:"depends_per_sweep,flow"`
	Analysis          config.Analysis   `yaml:"analysis"`
	MutualInformation *mutualinfo.Table `yaml:"mutual_information,omitempty"`
}

// WriteResult writes res into dir, creating it when missing. Subgraph,
// p-value and dissection files describe the last sweep.
func WriteResult(dir string, res *pfa.Result) error {
	if res == nil {
		return fmt.Errorf("csvio: result is nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csvio: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, PrincipalFeaturesFile), [][]string{ints(res.Intersection)}); err != nil {
		return err
	}

	if last := res.Last(); last != nil {
		subgraphs := [][]string{{"subgraph", "kind", "depends_on_state", "independent"}}
		for _, s := range last.Subgraphs {
			subgraphs = append(subgraphs, []string{
				joined(s.Members), string(s.Kind), joined(s.DependsOnState), joined(s.Independent),
			})
		}
		if err := writeCSV(filepath.Join(dir, SubgraphsFile), subgraphs); err != nil {
			return err
		}

		pvalues := [][]string{{"index", "p_value"}}
		for _, fp := range last.PValues {
			pvalues = append(pvalues, []string{
				strconv.Itoa(fp.Index),
				strconv.FormatFloat(fp.PValue.Float64(), 'g', -1, 64),
			})
		}
		if err := writeCSV(filepath.Join(dir, PValuesFile), pvalues); err != nil {
			return err
		}

		dissection := make([][]string, 0, len(last.Dissection))
		for _, members := range last.Dissection {
			dissection = append(dissection, ints(members))
		}
		if err := writeCSV(filepath.Join(dir, DissectionFile), dissection); err != nil {
			return err
		}
	}

	if res.MutualInformation != nil {
		rows := [][]string{{"index", "mutual_information", "feature_bins", "state_bins"}}
		for _, idx := range res.Intersection {
			e, ok := res.MutualInformation.Lookup(idx)
			if !ok {
				return fmt.Errorf("csvio: no mutual information for feature %d", idx)
			}
			rows = append(rows, []string{
				strconv.Itoa(e.Index),
				strconv.FormatFloat(e.Value, 'g', -1, 64),
				strconv.Itoa(e.FeatureBins),
				strconv.Itoa(e.StateBins),
			})
		}
		if err := writeCSV(filepath.Join(dir, MutualInfoFile), rows); err != nil {
			return err
		}
	}

	return writeSummary(filepath.Join(dir, SummaryFile), res)
}

// WriteRows writes a feature-major table, one feature per record.
func WriteRows(w io.Writer, rows [][]float64) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csvio: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvio: %w", err)
	}

	return nil
}

func writeSummary(path string, res *pfa.Result) error {
	sum := Summary{
		RunID:             res.RunID,
		Elapsed:           res.Elapsed.String(),
		PrincipalFeatures: nonNil(res.Intersection),
		DependsPerSweep:   res.DependsPerSweep,
		Analysis:          res.Analysis,
		MutualInformation: res.MutualInformation,
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: %w", err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(sum); err != nil {
		f.Close()
		return fmt.Errorf("csvio: summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("csvio: summary: %w", err)
	}

	return f.Close()
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("csvio: %s: %w", filepath.Base(path), err)
	}

	return f.Close()
}

func ints(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}

	return out
}

// joined renders a set as a single space-separated field.
func joined(xs []int) string { return strings.Join(ints(xs), " ") }

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}

	return xs
}
