package community

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hilldiv/matrix"
)

// Default label prefixes used when the caller supplies none.
const (
	SitePrefix    = "site"
	SpeciesPrefix = "sp"
)

// Matrix is an immutable, validated site × species abundance table.
type Matrix struct {
	lab    *matrix.Labeled
	totals []float64 // per-site total abundance, all > 0
}

// New validates data and attaches labels. Nil or empty label slices are
// replaced by synthetic labels ("site1", "sp1", ...).
//
// Errors:
//   - hilldiv.ErrShapeMismatch: empty or ragged data, label count mismatch,
//     duplicate or empty labels.
//   - hilldiv.ErrDomain: negative or non-finite entries, a site with zero total.
func New(data [][]float64, sites, species []string) (*Matrix, error) {
	d, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, fmt.Errorf("community: New: %w", err)
	}
	if len(sites) == 0 {
		sites = syntheticLabels(SitePrefix, d.Rows())
	}
	if len(species) == 0 {
		species = syntheticLabels(SpeciesPrefix, d.Cols())
	}
	lab, err := matrix.NewLabeled(d, sites, species)
	if err != nil {
		return nil, fmt.Errorf("community: New: %w", err)
	}

	return FromLabeled(lab)
}

// FromLabeled validates an already labeled table (as produced by the dataset
// readers). The input is copied.
func FromLabeled(lab *matrix.Labeled) (*Matrix, error) {
	if lab == nil {
		return nil, fmt.Errorf("community: FromLabeled: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNonNegative(lab.Dense); err != nil {
		return nil, fmt.Errorf("community: FromLabeled: %w", err)
	}
	totals, err := matrix.RowSums(lab.Dense)
	if err != nil {
		return nil, fmt.Errorf("community: FromLabeled: %w", err)
	}
	for i, tot := range totals {
		if tot <= 0 {
			return nil, fmt.Errorf("community: site %q: %w", lab.RowLabel(i), ErrEmptySite)
		}
	}
	cp, err := matrix.NewLabeled(lab.Dense.Clone().(*matrix.Dense), lab.RowLabels(), lab.ColLabels())
	if err != nil {
		return nil, fmt.Errorf("community: FromLabeled: %w", err)
	}

	return &Matrix{lab: cp, totals: totals}, nil
}

func syntheticLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

// NumSites returns the number of sites (rows).
func (m *Matrix) NumSites() int { return m.lab.Rows() }

// NumSpecies returns the number of species (columns).
func (m *Matrix) NumSpecies() int { return m.lab.Cols() }

// Sites returns a copy of the site labels.
func (m *Matrix) Sites() []string { return m.lab.RowLabels() }

// Species returns a copy of the species labels.
func (m *Matrix) Species() []string { return m.lab.ColLabels() }

// SpeciesIndex resolves a species label to its column.
func (m *Matrix) SpeciesIndex(label string) (int, bool) { return m.lab.ColIndex(label) }

// Row returns a copy of the abundances of site i (nil when out of range).
func (m *Matrix) Row(i int) []float64 { return m.lab.Row(i) }

// RowTotal returns the total abundance of site i.
func (m *Matrix) RowTotal(i int) float64 { return m.totals[i] }

// Labeled returns an independent copy of the underlying labeled table.
func (m *Matrix) Labeled() *matrix.Labeled {
	cp, _ := m.lab.Select(indices(m.NumSites()), indices(m.NumSpecies()))
	return cp
}

// Relative returns the row-normalized (relative abundance) table.
func (m *Matrix) Relative() [][]float64 {
	rel, _, _ := matrix.NormalizeRowsL1(m.lab.Dense) // rows are validated positive
	return rel.RawRows()
}

// RelativeRow returns site i as relative abundances.
func (m *Matrix) RelativeRow(i int) []float64 {
	row := m.lab.Row(i)
	floats.Scale(1/m.totals[i], row)

	return row
}

// Joint returns site × species weights that sum to 1 over the whole table.
//
//   - relThenPool: w_ij = p_ij / N (each site's relative abundances, equal site weights);
//   - otherwise:   w_ij = z_ij / z++ (raw abundances over the grand total).
//
// Column sums of Joint are the pooled (gamma-level) relative abundances.
func (m *Matrix) Joint(relThenPool bool) [][]float64 {
	n := m.NumSites()
	out := make([][]float64, n)
	if relThenPool {
		for i := 0; i < n; i++ {
			out[i] = m.RelativeRow(i)
			floats.Scale(1/float64(n), out[i])
		}

		return out
	}
	grand := floats.Sum(m.totals)
	for i := 0; i < n; i++ {
		out[i] = m.lab.Row(i)
		floats.Scale(1/grand, out[i])
	}

	return out
}

// Pooled returns the gamma-level relative abundance vector under the chosen
// pooling convention (column sums of Joint).
func (m *Matrix) Pooled(relThenPool bool) []float64 {
	if relThenPool {
		rel, _, _ := matrix.NormalizeRowsL1(m.lab.Dense)
		pooled, _ := matrix.ColMeans(rel)

		return pooled
	}
	joint := m.Joint(false)
	pooled := make([]float64, m.NumSpecies())
	for _, row := range joint {
		floats.Add(pooled, row)
	}

	return pooled
}

// PresentSpecies returns the columns with positive total abundance, in order.
func (m *Matrix) PresentSpecies() []int {
	colSums, _ := matrix.ColSums(m.lab.Dense)
	out := make([]int, 0, len(colSums))
	for j, s := range colSums {
		if s > 0 {
			out = append(out, j)
		}
	}

	return out
}

// Subset returns the sub-community made of the given site rows, all species
// kept. Repeating a row is allowed (a self-pair {i, i}).
func (m *Matrix) Subset(rows []int) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrNoSites
	}
	lab, err := m.lab.Select(rows, indices(m.NumSpecies()))
	if err != nil {
		return nil, fmt.Errorf("community: Subset: %w", err)
	}
	totals := make([]float64, len(rows))
	for k, i := range rows {
		totals[k] = m.totals[i]
	}

	return &Matrix{lab: lab, totals: totals}, nil
}

// DropAbsent returns the community restricted to species present in at least
// one site. The receiver is returned unchanged when nothing is absent.
func (m *Matrix) DropAbsent() *Matrix {
	present := m.PresentSpecies()
	if len(present) == m.NumSpecies() {
		return m
	}
	lab, _ := m.lab.Select(indices(m.NumSites()), present) // every site keeps its positive entries

	return &Matrix{lab: lab, totals: append([]float64(nil), m.totals...)}
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
