package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hilldiv/functional"
	"github.com/katalvlaran/hilldiv/matrix"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
)

// Frame is a result table: Keys holds the text columns and Values the numeric
// ones, both row-aligned. Header names the key columns first.
type Frame struct {
	Header []string
	Keys   [][]string
	Values [][]float64
}

// NumKeys returns the number of key columns.
func (f Frame) NumKeys() int {
	if len(f.Keys) == 0 {
		return 0
	}

	return len(f.Keys[0])
}

// Len returns the number of rows.
func (f Frame) Len() int { return len(f.Values) }

// Column returns the numeric column called name.
func (f Frame) Column(name string) ([]float64, error) {
	k := f.NumKeys()
	for c, h := range f.Header[k:] {
		if h != name {
			continue
		}
		out := make([]float64, len(f.Values))
		for i, row := range f.Values {
			out[i] = row[c]
		}

		return out, nil
	}

	return nil, fmt.Errorf("dataset: no numeric column %q", name)
}

// VectorFrame is one value per label, e.g. per-site diversity.
func VectorFrame(key, name string, labels []string, values []float64) Frame {
	f := Frame{Header: []string{key, name}}
	for i, l := range labels {
		f.Keys = append(f.Keys, []string{l})
		f.Values = append(f.Values, []float64{values[i]})
	}

	return f
}

var partitionHeader = []string{"q", "gamma", "alpha", "beta", "local_similarity", "region_similarity"}

// PartitionFrame is a one-row frame of a decomposition.
func PartitionFrame(res partition.Result) Frame {
	return Frame{
		Header: append([]string(nil), partitionHeader...),
		Values: [][]float64{{res.Q, res.Gamma, res.Alpha, res.Beta, res.LocalSimilarity, res.RegionSimilarity}},
	}
}

// PairsFrame is the tabular pairwise output.
func PairsFrame(rows []pairwise.Row) Frame {
	f := Frame{Header: append([]string{"site1", "site2"}, partitionHeader...)}
	for _, r := range rows {
		f.Keys = append(f.Keys, []string{r.Site1, r.Site2})
		f.Values = append(f.Values, []float64{r.Q, r.Gamma, r.Alpha, r.Beta, r.LocalSimilarity, r.RegionSimilarity})
	}

	return f
}

// MatrixFrame renders a labeled matrix with its row labels as the key column.
func MatrixFrame(m *matrix.Labeled) Frame {
	f := Frame{Header: append([]string{""}, m.ColLabels()...)}
	for i, l := range m.RowLabels() {
		f.Keys = append(f.Keys, []string{l})
		f.Values = append(f.Values, m.Row(i))
	}

	return f
}

// FunctionalFrame renders per-site functional indices.
func FunctionalFrame(sites []functional.Site) Frame {
	f := Frame{Header: []string{"site", "Q", "FDis", "qD", "MD", "FD"}}
	for _, s := range sites {
		f.Keys = append(f.Keys, []string{s.Label})
		f.Values = append(f.Values, []float64{s.Q, s.FDis, s.Dq, s.MDq, s.FDq})
	}

	return f
}

// formatFloat renders NaN as "NA".
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}

	return fmt.Sprintf("%g", v)
}
