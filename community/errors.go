package community

import (
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

var (
	// ErrEmptySite is returned when a site has zero total abundance.
	ErrEmptySite = fmt.Errorf("community: site has zero total abundance: %w", hilldiv.ErrDomain)

	// ErrNoSites is returned when an empty row selection is requested.
	ErrNoSites = fmt.Errorf("community: no sites selected: %w", hilldiv.ErrShapeMismatch)
)
