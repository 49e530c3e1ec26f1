package taxa

import (
	"fmt"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/hill"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
)

// Diversity returns the Hill number of order q of every site, in site order.
func Diversity(comm *community.Matrix, q float64) ([]float64, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return nil, fmt.Errorf("taxa: Diversity: %w", err)
	}

	return DiversityEach(comm, []float64{q})
}

// DiversityEach evaluates one order per site. A single order is applied to
// every site; otherwise len(qs) must equal the number of sites.
func DiversityEach(comm *community.Matrix, qs []float64) ([]float64, error) {
	if comm == nil {
		return nil, fmt.Errorf("taxa: DiversityEach: %w", partition.ErrNilCommunity)
	}
	n := comm.NumSites()
	if len(qs) != 1 && len(qs) != n {
		return nil, fmt.Errorf("taxa: DiversityEach: %d orders for %d sites: %w",
			len(qs), n, hilldiv.ErrShapeMismatch)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		q := qs[0]
		if len(qs) == n {
			q = qs[i]
		}
		d, err := hill.Number(comm.Row(i), q)
		if err != nil {
			return nil, fmt.Errorf("taxa: DiversityEach: site %q: %w", comm.Sites()[i], err)
		}
		out[i] = d
	}

	return out, nil
}

// Pooler is the taxonomic partition.Pooler.
type Pooler struct{}

// Pool implements partition.Pooler.
//
// Implementation:
//   - Stage 1: take the pooled relative abundances of comm for gamma.
//   - Stage 2: flatten the site × species joint weights for alpha.
//
// Errors:
//   - partition.ErrNilCommunity: comm is nil.
//
// Complexity:
//   - Time O(N·S), Space O(N·S) for N sites and S species.
func (Pooler) Pool(comm *community.Matrix, relThenPool bool) (partition.Levels, error) {
	if comm == nil {
		return nil, partition.ErrNilCommunity
	}
	joint := comm.Joint(relThenPool)
	flat := make([]float64, 0, comm.NumSites()*comm.NumSpecies())
	for _, row := range joint {
		flat = append(flat, row...)
	}

	return levels{pooled: comm.Pooled(relThenPool), joint: flat, n: comm.NumSites()}, nil
}

type levels struct {
	pooled []float64 // gamma-level relative abundances
	joint  []float64 // every w_ij, flattened
	n      int
}

func (l levels) Gamma(q float64) (float64, error) { return hill.Number(l.pooled, q) }

func (l levels) Alpha(q float64) (float64, error) {
	d, err := hill.Number(l.joint, q)
	if err != nil {
		return 0, err
	}

	return d / float64(l.n), nil
}

func (l levels) Sites() int { return l.n }

// Partition decomposes comm into taxonomic gamma, alpha and beta diversity.
//
// Implementation:
//   - Pool comm with Pooler, then partition.Partition computes beta and the
//     overlap and turnover indices.
//
// Errors:
//   - hilldiv.ErrDomain: invalid q.
//   - partition.ErrNilCommunity: comm is nil.
//
// Complexity:
//   - Time O(N·S), Space O(N·S).
func Partition(comm *community.Matrix, q float64, opts ...partition.Option) (partition.Result, error) {
	return partition.Partition(comm, Pooler{}, q, opts...)
}

// Pairwise runs Partition over site pairs.
func Pairwise(comm *community.Matrix, q float64, opts ...pairwise.Option) (*pairwise.Result, error) {
	return pairwise.Decompose(comm, Pooler{}, q, opts...)
}
