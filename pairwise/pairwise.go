package pairwise

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/hill"
	"github.com/katalvlaran/hilldiv/matrix"
	"github.com/katalvlaran/hilldiv/partition"
)

// task is one site pair, by row index.
type task struct{ i, j int }

// record is one evaluated pair.
type record struct {
	task
	res partition.Result
}

// Result holds every evaluated pair in Cartesian order (site1 outer, site2
// inner) filtered by the pairing mode. It is immutable once returned.
type Result struct {
	Q        float64
	Pairs    Pairs
	Warnings []hilldiv.Warning

	sites   []string
	records []record
}

// Decompose evaluates partition.Partition on every two-site sub-community
// selected by the pairing mode.
//
// Implementation:
//   - Stage 1: validate q and pool the whole community once, so label or
//     domain errors surface before any pair is evaluated.
//   - Stage 2: evaluate pairs on an errgroup limited to the configured number
//     of workers; task k writes only slot k.
//   - Stage 3: collect per-pair warnings and log them once.
//
// Complexity: O(n²) partitions for n sites.
func Decompose(comm *community.Matrix, pooler partition.Pooler, q float64, opts ...Option) (*Result, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}
	if pooler == nil {
		return nil, ErrNilPooler
	}
	if comm == nil {
		return nil, fmt.Errorf("pairwise: %w", partition.ErrNilCommunity)
	}
	o := gatherOptions(opts...)
	po := partition.Gather(o.partition...)
	if _, err := pooler.Pool(comm, po.RelThenPool()); err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}

	tasks := tasksFor(comm.NumSites(), o.pairs)
	records := make([]record, len(tasks))
	// pairs stay silent; warnings are logged once below
	inner := append(append([]partition.Option(nil), o.partition...), partition.WithShowWarning(false))

	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(workers)
	for k, t := range tasks {
		k, t := k, t
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sub, err := comm.Subset([]int{t.i, t.j})
			if err != nil {
				return fmt.Errorf("pairwise: pair (%d,%d): %w", t.i, t.j, err)
			}
			res, err := partition.Partition(sub, pooler, q, inner...)
			if err != nil {
				return fmt.Errorf("pairwise: pair (%d,%d): %w", t.i, t.j, err)
			}
			records[k] = record{task: t, res: res}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := o.ctx.Err(); err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}

	out := &Result{Q: q, Pairs: o.pairs, sites: comm.Sites(), records: records}
	for _, r := range records {
		for _, w := range r.res.Warnings {
			w.Detail = fmt.Sprintf("%s pair=%s/%s", w.Detail, out.sites[r.i], out.sites[r.j])
			out.Warnings = append(out.Warnings, w)
		}
	}
	if po.ShowWarning() {
		partition.LogWarnings(po.Logger(), out.Warnings)
	}

	return out, nil
}

// tasksFor lists the pairs of n sites in Cartesian order for the mode.
func tasksFor(n int, pairs Pairs) []task {
	var out []task
	if pairs == Full {
		out = make([]task, 0, n*n)
	} else {
		out = make([]task, 0, n*(n-1)/2)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if pairs == Full || i < j {
				out = append(out, task{i, j})
			}
		}
	}

	return out
}

// Sites returns a copy of the site labels.
func (r *Result) Sites() []string { return append([]string(nil), r.sites...) }

// Len returns the number of evaluated pairs.
func (r *Result) Len() int { return len(r.records) }

// Table projects the records as one Row per pair.
func (r *Result) Table() []Row {
	rows := make([]Row, len(r.records))
	for k, rec := range r.records {
		rows[k] = Row{
			Site1:            r.sites[rec.i],
			Site2:            r.sites[rec.j],
			Q:                rec.res.Q,
			Gamma:            rec.res.Gamma,
			Alpha:            rec.res.Alpha,
			Beta:             rec.res.Beta,
			LocalSimilarity:  rec.res.LocalSimilarity,
			RegionSimilarity: rec.res.RegionSimilarity,
		}
	}

	return rows
}

// Matrices maps each metric name to an n×n matrix labeled by site on both
// axes. Cells of pairs that were not evaluated hold NaN.
type Matrices map[string]*matrix.Labeled

// Matrices projects the records as one site × site matrix per metric.
func (r *Result) Matrices() (Matrices, error) {
	n := len(r.sites)
	out := make(Matrices, len(Metrics))
	for _, name := range Metrics {
		d, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
		if err != nil {
			return nil, fmt.Errorf("pairwise: Matrices: %w", err)
		}
		d.Do(func(i, j int, _ float64) bool {
			_ = d.Set(i, j, math.NaN())
			return true
		})
		lab, err := matrix.NewLabeled(d, r.sites, r.sites)
		if err != nil {
			return nil, fmt.Errorf("pairwise: Matrices: %w", err)
		}
		out[name] = lab
	}
	for k, row := range r.Table() {
		rec := r.records[k]
		for _, name := range Metrics {
			v, _ := row.Metric(name)
			_ = out[name].Set(rec.i, rec.j, v)
		}
	}

	return out, nil
}

// Rendered is a Result projected to one output shape; exactly one field is set.
type Rendered struct {
	Output   Output
	Table    []Row
	Matrices Matrices
}

// Render projects the result in the requested shape.
func (r *Result) Render(out Output) (Rendered, error) {
	switch out {
	case Table:
		return Rendered{Output: Table, Table: r.Table()}, nil
	case Matrix:
		m, err := r.Matrices()
		if err != nil {
			return Rendered{}, err
		}

		return Rendered{Output: Matrix, Matrices: m}, nil
	}

	return Rendered{}, fmt.Errorf("%w: %v", ErrUnknownOutput, out)
}
