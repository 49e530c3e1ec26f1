package pairwise

import (
	"context"

	"github.com/katalvlaran/hilldiv/partition"
)

// DefaultWorkers evaluates pairs sequentially.
const DefaultWorkers = 1

const panicWorkersInvalid = "pairwise: WithWorkers: n must be >= 0"

// Option configures Decompose.
type Option func(*Options)

// Options is the resolved configuration of a Decompose call.
type Options struct {
	pairs     Pairs
	workers   int
	ctx       context.Context
	partition []partition.Option
}

// WithPairs selects the pairing mode (default Unique).
func WithPairs(p Pairs) Option {
	return func(o *Options) { o.pairs = p }
}

// WithWorkers bounds the number of pairs evaluated concurrently. Zero means
// runtime.GOMAXPROCS(0). Panics on a negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithContext lets the caller cancel a long decomposition.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithPartitionOptions forwards options to every pair's partition.
func WithPartitionOptions(opts ...partition.Option) Option {
	return func(o *Options) { o.partition = append(o.partition, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{pairs: Unique, workers: DefaultWorkers, ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}

	return o
}
