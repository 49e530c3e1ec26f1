package functional

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

var (
	// ErrNilDistance is returned when a nil *Distance reaches an engine call.
	ErrNilDistance = errors.New("functional: nil distance")

	// ErrUnresolvedSpecies marks a community species missing from the distance
	// matrix. Returned errors also match hilldiv.ErrShapeMismatch.
	ErrUnresolvedSpecies = fmt.Errorf("functional: species missing from distance matrix: %w", hilldiv.ErrDomain)

	// ErrLabelOrder is returned when a distance matrix's row and column labels differ.
	ErrLabelOrder = fmt.Errorf("functional: row and column labels differ: %w", hilldiv.ErrShapeMismatch)

	// ErrNoComparableTraits is returned by Gower when two species share no
	// observed trait.
	ErrNoComparableTraits = fmt.Errorf("functional: no comparable traits: %w", hilldiv.ErrDomain)
)
