package functional

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hilldiv/matrix"
)

// Distance is a validated species × species dissimilarity matrix. When built
// from a trait table it keeps the traits, and Resolve recomputes Gower over
// the requested species only.
type Distance struct {
	lab    *matrix.Labeled
	traits *Traits
}

// NewDistance validates m. With asIs the matrix is taken as a distance matrix
// (square, symmetric, zero diagonal, non-negative, identical row and column
// labels). Without it m is read as a species × trait table of numeric traits
// and handed to NewTraitDistance.
func NewDistance(m *matrix.Labeled, asIs bool) (*Distance, error) {
	if m == nil {
		return nil, fmt.Errorf("functional: NewDistance: %w", matrix.ErrNilMatrix)
	}
	if !asIs {
		traits, err := NumericTraits(m)
		if err != nil {
			return nil, fmt.Errorf("functional: NewDistance: %w", err)
		}

		return NewTraitDistance(traits)
	}
	if err := validateSquare(m); err != nil {
		return nil, fmt.Errorf("functional: NewDistance: %w", err)
	}

	return &Distance{lab: m}, nil
}

// NewTraitDistance keeps t for Resolve, which computes Gower's distance over
// the species of each community so that trait ranges come from those species
// alone. The full-table Gower matrix is computed once here to validate t and
// to back Labeled.
//
// Errors: those of Gower.
func NewTraitDistance(t *Traits) (*Distance, error) {
	g, err := Gower(t)
	if err != nil {
		return nil, fmt.Errorf("functional: NewTraitDistance: %w", err)
	}
	if err := validateSquare(g); err != nil {
		return nil, fmt.Errorf("functional: NewTraitDistance: %w", err)
	}

	return &Distance{lab: g, traits: t}, nil
}

func validateSquare(m *matrix.Labeled) error {
	if err := matrix.ValidateDistance(m.Dense); err != nil {
		return err
	}
	rows, cols := m.RowLabels(), m.ColLabels()
	for k := range rows {
		if rows[k] != cols[k] {
			return fmt.Errorf("row %q vs column %q: %w", rows[k], cols[k], ErrLabelOrder)
		}
	}

	return nil
}

// Species returns the species labels of the matrix.
func (d *Distance) Species() []string { return d.lab.RowLabels() }

// Labeled returns the underlying matrix. Callers must not modify it.
func (d *Distance) Labeled() *matrix.Labeled { return d.lab }

// Kernel is a Distance resolved against one community's species order.
type Kernel struct {
	Species []string
	Max     float64    // largest distance among Species; 0 means all identical
	Dist    *mat.Dense // raw distances
	Scaled  *mat.Dense // d / Max (all zero when Max == 0)
	Sim     *mat.Dense // 1 − Scaled
}

// Resolve restricts d to species, in that order. A trait-backed Distance
// recomputes Gower over the traits of species only.
//
// Errors: ErrUnresolvedSpecies (also hilldiv.ErrShapeMismatch) for a species
// the matrix does not carry.
func (d *Distance) Resolve(species []string) (*Kernel, error) {
	if d == nil {
		return nil, ErrNilDistance
	}
	sub, err := d.lab.SelectSymmetric(species)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvedSpecies, err)
	}
	if d.traits != nil {
		t, err := d.traits.Subset(species)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnresolvedSpecies, err)
		}
		if sub, err = Gower(t); err != nil {
			return nil, err
		}
	}
	k := len(species)
	dist := sub.Gonum()
	maxD := mat.Max(dist)

	scaled := mat.NewDense(k, k, nil)
	sim := mat.NewDense(k, k, nil)
	if maxD > 0 {
		scaled.Scale(1/maxD, dist)
	}
	sim.Apply(func(_, _ int, v float64) float64 { return 1 - v }, scaled)

	return &Kernel{Species: append([]string(nil), species...), Max: maxD, Dist: dist, Scaled: scaled, Sim: sim}, nil
}

// Similarity returns the similarity matrix as a labeled matrix.
func (k *Kernel) Similarity() (*matrix.Labeled, error) {
	d, err := matrix.FromGonum(k.Sim)
	if err != nil {
		return nil, err
	}

	return matrix.NewLabeled(d, k.Species, k.Species)
}

// Ordinariness returns S·p.
func (k *Kernel) Ordinariness(p []float64) []float64 {
	var out mat.VecDense
	out.MulVec(k.Sim, mat.NewVecDense(len(p), append([]float64(nil), p...)))

	return out.RawVector().Data
}
