package partition

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/hill"
)

// Levels evaluates gamma and alpha diversity of one pooled community for a
// given order q. Implementations are immutable and safe for concurrent use.
type Levels interface {
	Gamma(q float64) (float64, error)
	Alpha(q float64) (float64, error)
	Sites() int
}

// Pooler binds a diversity unit (species, trait similarity, branches) to a
// community under a pooling convention. Validation of the community against
// the unit happens here, before any diversity is computed.
type Pooler interface {
	Pool(comm *community.Matrix, relThenPool bool) (Levels, error)
}

// Result is one gamma/alpha/beta decomposition.
type Result struct {
	Q                float64
	Gamma            float64
	Alpha            float64
	Beta             float64 // Gamma / Alpha
	LocalSimilarity  float64 // NaN when degenerate, see Warnings
	RegionSimilarity float64 // NaN when degenerate, see Warnings
	Warnings         []hilldiv.Warning
}

// Partition validates q, pools comm through pooler and decomposes it.
//
// Implementation:
//   - Stage 1: validate q and the inputs, gather options.
//   - Stage 2: pooler.Pool binds comm to the diversity unit.
//   - Stage 3: gamma and alpha from the levels, beta = gamma/alpha, then the
//     bounded overlap and turnover indices with their warnings.
//
// Errors:
//   - hilldiv.ErrDomain: invalid q.
//   - ErrNilPooler, ErrNilCommunity: nil inputs.
//   - whatever the pooler reports for a community it cannot serve.
//
// Complexity:
//   - Dominated by pooler.Pool; the decomposition itself is O(1) beyond it.
func Partition(comm *community.Matrix, pooler Pooler, q float64, opts ...Option) (Result, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}
	if pooler == nil {
		return Result{}, ErrNilPooler
	}
	if comm == nil {
		return Result{}, ErrNilCommunity
	}
	o := Gather(opts...)
	levels, err := pooler.Pool(comm, o.relThenPool)
	if err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}

	return evaluate(levels, q, o)
}

// Evaluate decomposes already pooled levels.
func Evaluate(levels Levels, q float64, opts ...Option) (Result, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return Result{}, fmt.Errorf("partition: %w", err)
	}

	return evaluate(levels, q, Gather(opts...))
}

func evaluate(levels Levels, q float64, o Options) (Result, error) {
	n := levels.Sites()
	if n < 1 {
		return Result{}, fmt.Errorf("partition: no sites: %w", hilldiv.ErrShapeMismatch)
	}
	gamma, err := levels.Gamma(q)
	if err != nil {
		return Result{}, fmt.Errorf("partition: gamma: %w", err)
	}
	alpha, err := levels.Alpha(q)
	if err != nil {
		return Result{}, fmt.Errorf("partition: alpha: %w", err)
	}

	res := Result{Q: q, Gamma: gamma, Alpha: alpha, Beta: gamma / alpha}
	detail := detailOf(q, n)
	var w *hilldiv.Warning
	if res.LocalSimilarity, w = Bound(FieldLocalSimilarity, LocalSimilarity(res.Beta, n, q), o.eps, detail); w != nil {
		res.Warnings = append(res.Warnings, *w)
	}
	if res.RegionSimilarity, w = Bound(FieldRegionSimilarity, RegionSimilarity(res.Beta, n, q), o.eps, detail); w != nil {
		res.Warnings = append(res.Warnings, *w)
	}
	if o.showWarning {
		LogWarnings(o.logger, res.Warnings)
	}

	return res, nil
}

// LogWarnings emits one warn-level event carrying every warning. Nothing is
// logged for an empty slice.
func LogWarnings(l zerolog.Logger, warnings []hilldiv.Warning) {
	if len(warnings) == 0 {
		return
	}
	errs := make([]error, len(warnings))
	for i := range warnings {
		errs[i] = warnings[i]
	}
	l.Warn().
		Int("count", len(warnings)).
		Errs("warnings", errs).
		Msg("similarity outside [0,1] reported as NaN")
}
