package phylo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

var (
	// ErrNilTree is returned when a nil tree or root is used.
	ErrNilTree = errors.New("phylo: tree is nil")

	// ErrNilStructure is returned when a nil *Structure reaches an engine call.
	ErrNilStructure = errors.New("phylo: structure is nil")

	// ErrNewickSyntax is returned by ParseNewick and ReadNewick for malformed input.
	ErrNewickSyntax = fmt.Errorf("phylo: newick syntax: %w", hilldiv.ErrShapeMismatch)

	// ErrDuplicateTip is returned when two tips carry the same label.
	ErrDuplicateTip = fmt.Errorf("phylo: duplicate tip label: %w", hilldiv.ErrShapeMismatch)

	// ErrNegativeLength is returned for a negative branch length.
	ErrNegativeLength = fmt.Errorf("phylo: negative branch length: %w", hilldiv.ErrDomain)

	// ErrUnresolvedSpecies marks a community species absent from the tree's
	// tips. Returned errors also match hilldiv.ErrShapeMismatch.
	ErrUnresolvedSpecies = fmt.Errorf("phylo: species missing from tree tips: %w", hilldiv.ErrDomain)
)
