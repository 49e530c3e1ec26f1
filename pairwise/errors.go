package pairwise

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

var (
	// ErrUnknownPairs is returned by ParsePairs for anything but "unique" or "full".
	ErrUnknownPairs = fmt.Errorf("pairwise: unknown pairs mode: %w", hilldiv.ErrDomain)

	// ErrUnknownOutput is returned by ParseOutput for an unsupported output shape.
	ErrUnknownOutput = fmt.Errorf("pairwise: unknown output: %w", hilldiv.ErrDomain)

	// ErrNilPooler is returned when Decompose receives no pooler.
	ErrNilPooler = errors.New("pairwise: nil pooler")
)
