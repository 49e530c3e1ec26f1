package phylo

import (
	"fmt"

	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/hill"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
)

// bind restricts comm to present species and aligns them with st.
func bind(comm *community.Matrix, st *Structure) (*community.Matrix, []int, error) {
	if comm == nil {
		return nil, nil, partition.ErrNilCommunity
	}
	if st == nil {
		return nil, nil, ErrNilStructure
	}
	present := comm.DropAbsent()
	cols, err := st.align(present.Species())
	if err != nil {
		return nil, nil, err
	}

	return present, cols, nil
}

// Diversity returns the phylogenetic Hill number of order q of every site.
//
// Implementation:
//   - Stage 1: drop absent species and align the rest with st.
//   - Stage 2: per site, push relative abundances up to branch abundances a_b
//     and evaluate hill.Weighted(L_b·a_b, a_b, q).
//
// Errors:
//   - hilldiv.ErrDomain: invalid q.
//   - partition.ErrNilCommunity, ErrNilStructure: nil inputs.
//   - ErrUnresolvedSpecies: a present species the structure lacks.
//
// Complexity:
//   - Time O(N·B·S) for B branches, Space O(B).
func Diversity(comm *community.Matrix, st *Structure, q float64) ([]float64, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return nil, fmt.Errorf("phylo: Diversity: %w", err)
	}
	present, cols, err := bind(comm, st)
	if err != nil {
		return nil, fmt.Errorf("phylo: Diversity: %w", err)
	}
	sites := present.Sites()
	out := make([]float64, present.NumSites())
	for i := range out {
		a := st.BranchAbundance(st.spread(present.RelativeRow(i), cols))
		if out[i], err = hill.Weighted(st.lengthWeights(a), a, q); err != nil {
			return nil, fmt.Errorf("phylo: Diversity: site %q: %w", sites[i], err)
		}
	}

	return out, nil
}

// FaithPD returns the total length of branches reached by each site.
func FaithPD(comm *community.Matrix, st *Structure) ([]float64, error) {
	present, cols, err := bind(comm, st)
	if err != nil {
		return nil, fmt.Errorf("phylo: FaithPD: %w", err)
	}
	out := make([]float64, present.NumSites())
	for i := range out {
		for b, a := range st.BranchAbundance(st.spread(present.Row(i), cols)) {
			if a > 0 {
				out[i] += st.Lengths[b]
			}
		}
	}

	return out, nil
}

// Pooler is the phylogenetic partition.Pooler.
type Pooler struct {
	Structure *Structure
}

// Pool implements partition.Pooler. T is taken from the pool for both levels.
//
// Implementation:
//   - Stage 1: drop species absent from every site and align with the structure.
//   - Stage 2: branch abundances and L_b·a_b for the pooled vector and for each
//     site's joint weights.
//
// Errors:
//   - partition.ErrNilCommunity, ErrNilStructure: nil inputs.
//   - ErrUnresolvedSpecies: a present species the structure lacks.
//
// Complexity:
//   - Time O(N·B·S), Space O(N·B).
func (p Pooler) Pool(comm *community.Matrix, relThenPool bool) (partition.Levels, error) {
	present, cols, err := bind(comm, p.Structure)
	if err != nil {
		return nil, fmt.Errorf("phylo: Pool: %w", err)
	}
	st := p.Structure
	pooled := st.BranchAbundance(st.spread(present.Pooled(relThenPool), cols))
	l := levels{n: present.NumSites(), pooled: pooled, pooledW: st.lengthWeights(pooled)}
	for _, w := range present.Joint(relThenPool) {
		a := st.BranchAbundance(st.spread(w, cols))
		l.joint = append(l.joint, a...)
		l.jointW = append(l.jointW, st.lengthWeights(a)...)
	}

	return l, nil
}

type levels struct {
	n               int
	pooled, pooledW []float64 // a_b and L_b·a_b of the pool
	joint, jointW   []float64 // a_bj and L_b·a_bj, site-major
}

// Gamma normalizes L_b·a_b by T, so each branch weighs (L_b/T)·a_b.
func (l levels) Gamma(q float64) (float64, error) { return hill.Weighted(l.pooledW, l.pooled, q) }

// Alpha: Σ_j Σ_b L_b a_bj equals the pool's T.
func (l levels) Alpha(q float64) (float64, error) {
	d, err := hill.Weighted(l.jointW, l.joint, q)
	if err != nil {
		return 0, err
	}

	return d / float64(l.n), nil
}

func (l levels) Sites() int { return l.n }

// Partition decomposes comm into phylogenetic gamma, alpha and beta diversity.
//
// Implementation:
//   - Pool comm with Pooler, then hand the levels to partition.Partition.
//
// Errors:
//   - those of Pool and partition.Partition.
//
// Complexity:
//   - Time O(N·B·S).
func Partition(comm *community.Matrix, st *Structure, q float64, opts ...partition.Option) (partition.Result, error) {
	return partition.Partition(comm, Pooler{Structure: st}, q, opts...)
}

// Pairwise runs Partition over site pairs.
func Pairwise(comm *community.Matrix, st *Structure, q float64, opts ...pairwise.Option) (*pairwise.Result, error) {
	return pairwise.Decompose(comm, Pooler{Structure: st}, q, opts...)
}
