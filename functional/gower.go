package functional

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/matrix"
)

// Trait is one trait column. Exactly one of Numeric or Categorical is set;
// missing values are NaN or "" respectively.
type Trait struct {
	Name        string
	Numeric     []float64
	Categorical []string
}

// Traits is a species × trait table.
type Traits struct {
	Species []string
	Columns []Trait
}

// Subset returns the rows of t for species, in that order.
//
// Errors: matrix.ErrUnknownLabel (also hilldiv.ErrShapeMismatch) for a
// species t does not carry.
func (t *Traits) Subset(species []string) (*Traits, error) {
	idx := make(map[string]int, len(t.Species))
	for i, s := range t.Species {
		idx[s] = i
	}
	rows := make([]int, len(species))
	for k, s := range species {
		i, ok := idx[s]
		if !ok {
			return nil, fmt.Errorf("functional: species %q: %w", s, matrix.ErrUnknownLabel)
		}
		rows[k] = i
	}

	out := &Traits{Species: append([]string(nil), species...), Columns: make([]Trait, len(t.Columns))}
	for c, col := range t.Columns {
		out.Columns[c].Name = col.Name
		switch {
		case col.Numeric != nil:
			out.Columns[c].Numeric = make([]float64, len(rows))
			for k, i := range rows {
				out.Columns[c].Numeric[k] = col.Numeric[i]
			}
		default:
			out.Columns[c].Categorical = make([]string, len(rows))
			for k, i := range rows {
				out.Columns[c].Categorical[k] = col.Categorical[i]
			}
		}
	}

	return out, nil
}

// NumericTraits reads every column of m as a numeric trait.
func NumericTraits(m *matrix.Labeled) (*Traits, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	t := &Traits{Species: m.RowLabels()}
	for j, name := range m.ColLabels() {
		col := make([]float64, m.Rows())
		for i := range col {
			col[i], _ = m.At(i, j)
		}
		t.Columns = append(t.Columns, Trait{Name: name, Numeric: col})
	}

	return t, nil
}

// ParseTraits builds a trait table from text cells. A column whose non-empty
// cells all parse as numbers is numeric ("NA" and "" are missing); any other
// column is categorical.
func ParseTraits(species, names []string, cells [][]string) (*Traits, error) {
	if len(cells) != len(species) {
		return nil, fmt.Errorf("functional: ParseTraits: %d rows for %d species: %w",
			len(cells), len(species), hilldiv.ErrShapeMismatch)
	}
	for i, row := range cells {
		if len(row) != len(names) {
			return nil, fmt.Errorf("functional: ParseTraits: row %q has %d cells, want %d: %w",
				species[i], len(row), len(names), hilldiv.ErrShapeMismatch)
		}
	}
	t := &Traits{Species: append([]string(nil), species...)}
	for j, name := range names {
		t.Columns = append(t.Columns, parseColumn(name, cells, j))
	}

	return t, nil
}

func parseColumn(name string, cells [][]string, j int) Trait {
	nums := make([]float64, len(cells))
	for i, row := range cells {
		s := strings.TrimSpace(row[j])
		if s == "" || strings.EqualFold(s, "NA") {
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			cats := make([]string, len(cells))
			for k, r := range cells {
				if c := strings.TrimSpace(r[j]); !strings.EqualFold(c, "NA") {
					cats[k] = c
				}
			}

			return Trait{Name: name, Categorical: cats}
		}
		nums[i] = v
	}

	return Trait{Name: name, Numeric: nums}
}

// Gower returns the species × species Gower distance of t: the mean over
// traits observed for both species of |x_i − x_j| / range (numeric) or a 0/1
// mismatch (categorical). Numeric traits with zero range contribute 0.
//
// Errors: hilldiv.ErrShapeMismatch for ragged columns, ErrNoComparableTraits
// when a pair shares no observed trait.
//
// Complexity: O(S² · T) for S species and T traits.
func Gower(t *Traits) (*matrix.Labeled, error) {
	if t == nil || len(t.Species) == 0 {
		return nil, fmt.Errorf("functional: Gower: no species: %w", hilldiv.ErrShapeMismatch)
	}
	n := len(t.Species)
	ranges := make([]float64, len(t.Columns))
	for c, col := range t.Columns {
		switch {
		case col.Numeric != nil && len(col.Numeric) == n:
			ranges[c] = numericRange(col.Numeric)
		case col.Categorical != nil && len(col.Categorical) == n:
		default:
			return nil, fmt.Errorf("functional: Gower: trait %q: %w", col.Name, hilldiv.ErrShapeMismatch)
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("functional: Gower: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum, weight float64
			for c, col := range t.Columns {
				if col.Numeric != nil {
					a, b := col.Numeric[i], col.Numeric[j]
					if math.IsNaN(a) || math.IsNaN(b) {
						continue
					}
					if ranges[c] > 0 {
						sum += math.Abs(a-b) / ranges[c]
					}
				} else {
					a, b := col.Categorical[i], col.Categorical[j]
					if a == "" || b == "" {
						continue
					}
					if a != b {
						sum++
					}
				}
				weight++
			}
			if weight == 0 {
				return nil, fmt.Errorf("functional: Gower: %q and %q: %w", t.Species[i], t.Species[j], ErrNoComparableTraits)
			}
			_ = d.Set(i, j, sum/weight)
			_ = d.Set(j, i, sum/weight)
		}
	}

	return matrix.NewLabeled(d, t.Species, t.Species)
}

// numericRange returns max − min over the non-NaN values (0 when fewer than two).
func numericRange(xs []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if hi < lo {
		return 0
	}

	return hi - lo
}
