package partition

import "errors"

var (
	// ErrNilPooler is returned when Partition receives no Pooler.
	ErrNilPooler = errors.New("partition: nil pooler")

	// ErrNilCommunity is returned when Partition receives no community.
	ErrNilCommunity = errors.New("partition: nil community")
)
