package partition

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultRelThenPool normalizes sites before pooling (equal site weights).
	DefaultRelThenPool = true

	// DefaultShowWarning logs degenerate-similarity warnings.
	DefaultShowWarning = true

	// DefaultEpsilon is the tolerance for snapping similarities onto [0,1].
	DefaultEpsilon = 1e-9
)

const panicEpsilonInvalid = "partition: WithEpsilon: eps must be finite, non-negative"

// Option configures a Partition call.
type Option func(*Options)

// Options is the resolved configuration of a Partition call.
type Options struct {
	relThenPool bool
	showWarning bool
	eps         float64
	logger      zerolog.Logger
}

// WithRelThenPool selects the pooling convention.
func WithRelThenPool(v bool) Option {
	return func(o *Options) { o.relThenPool = v }
}

// WithShowWarning toggles logging of degenerate-similarity warnings. Warnings
// are attached to the Result either way.
func WithShowWarning(v bool) Option {
	return func(o *Options) { o.showWarning = v }
}

// WithEpsilon sets the snap tolerance. Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger sets the logger used for warnings. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// Gather folds opts over the defaults; later options win.
func Gather(opts ...Option) Options {
	o := Options{
		relThenPool: DefaultRelThenPool,
		showWarning: DefaultShowWarning,
		eps:         DefaultEpsilon,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// RelThenPool reports the pooling convention.
func (o Options) RelThenPool() bool { return o.relThenPool }

// ShowWarning reports whether warnings are logged.
func (o Options) ShowWarning() bool { return o.showWarning }

// Epsilon returns the snap tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Logger returns the configured logger.
func (o Options) Logger() zerolog.Logger { return o.logger }
