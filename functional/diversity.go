package functional

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/hill"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
)

// Site holds the functional indices of one site.
type Site struct {
	Label string  `json:"site"`
	Q     float64 `json:"q_entropy"` // functional quadratic entropy
	FDis  float64 `json:"fdis"`
	Dq    float64 `json:"dq"`
	MDq   float64 `json:"mdq"`
	FDq   float64 `json:"fdq"`
}

// Diversity computes the functional indices of every site at order q.
//
// Implementation:
//   - Stage 1: Drop species absent from every site and resolve dist against
//     the rest, so max(d) and any Gower ranges cover observed species only.
//   - Stage 2: Per site, Dq = Weighted(p, S·p, q), Q = pᵗ(d/max)p,
//     MDq = Dq·Q, FDq = Dq·Q², and FDis on d/max.
//
// Errors:
//   - hilldiv.ErrDomain: invalid q.
//   - partition.ErrNilCommunity, ErrNilDistance: nil inputs.
//   - ErrUnresolvedSpecies: a present species the distance lacks.
//
// Complexity:
//   - Time O(N·S²), Space O(S²) for N sites and S observed species.
func Diversity(comm *community.Matrix, dist *Distance, q float64) ([]Site, error) {
	if err := hill.ValidateOrder(q); err != nil {
		return nil, fmt.Errorf("functional: Diversity: %w", err)
	}
	if comm == nil {
		return nil, fmt.Errorf("functional: Diversity: %w", partition.ErrNilCommunity)
	}
	present := comm.DropAbsent()
	k, err := dist.Resolve(present.Species())
	if err != nil {
		return nil, fmt.Errorf("functional: Diversity: %w", err)
	}

	sites := present.Sites()
	out := make([]Site, present.NumSites())
	for i := range out {
		p := present.RelativeRow(i)
		dq, err := k.Hill(p, q)
		if err != nil {
			return nil, fmt.Errorf("functional: Diversity: site %q: %w", sites[i], err)
		}
		rao := k.Rao(p)
		out[i] = Site{
			Label: sites[i],
			Q:     rao,
			FDis:  k.Dispersion(p),
			Dq:    dq,
			MDq:   dq * rao,
			FDq:   dq * rao * rao,
		}
	}

	return out, nil
}

// Hill returns the similarity-sensitive Hill number of relative abundances p:
// (Σ p_i (S·p)_i^(q−1))^(1/(1−q)).
func (k *Kernel) Hill(p []float64, q float64) (float64, error) {
	return hill.Weighted(p, k.Ordinariness(p), q)
}

// Rao returns Σ_ij p_i p_j d_ij / max(d).
func (k *Kernel) Rao(p []float64) float64 {
	v := mat.NewVecDense(len(p), append([]float64(nil), p...))
	return mat.Inner(v, k.Scaled, v)
}

// Dispersion returns the abundance-weighted mean distance of species to the
// abundance-weighted centroid, from the scaled distances d/max alone (principal
// coordinates are never materialized):
//
//	z_i² = Σ_j p_j d_ij² − ½ Σ_jk p_j p_k d_jk²,  FDis = Σ p_i √max(z_i², 0).
func (k *Kernel) Dispersion(p []float64) float64 {
	n := len(p)
	sq := mat.NewDense(n, n, nil)
	sq.MulElem(k.Scaled, k.Scaled)

	v := mat.NewVecDense(n, append([]float64(nil), p...))
	var toAll mat.VecDense
	toAll.MulVec(sq, v)
	half := 0.5 * mat.Inner(v, sq, v)

	var fdis float64
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		fdis += pi * math.Sqrt(math.Max(toAll.AtVec(i)-half, 0))
	}

	return fdis
}

// Pooler is the functional partition.Pooler.
type Pooler struct {
	Distance *Distance
}

// Pool implements partition.Pooler.
//
// Implementation:
//   - Stage 1: Drop species absent from every site of comm and resolve the
//     distance against the rest. A pair of sites therefore sees the same
//     kernel as a standalone two-site community.
//   - Stage 2: Precompute S·p for the pooled vector and S·w_j for every
//     site's joint weights so Gamma and Alpha are one Weighted call each.
//
// Errors:
//   - partition.ErrNilCommunity, ErrNilDistance: nil inputs.
//   - ErrUnresolvedSpecies: a present species the distance lacks.
//
// Complexity:
//   - Time O(N·S²), Space O(N·S + S²).
func (p Pooler) Pool(comm *community.Matrix, relThenPool bool) (partition.Levels, error) {
	if comm == nil {
		return nil, partition.ErrNilCommunity
	}
	present := comm.DropAbsent()
	k, err := p.Distance.Resolve(present.Species())
	if err != nil {
		return nil, fmt.Errorf("functional: Pool: %w", err)
	}
	pooled := present.Pooled(relThenPool)
	l := levels{n: present.NumSites(), pooled: pooled, pooledSim: k.Ordinariness(pooled)}
	for _, w := range present.Joint(relThenPool) {
		l.joint = append(l.joint, w...)
		l.jointSim = append(l.jointSim, k.Ordinariness(w)...)
	}

	return l, nil
}

type levels struct {
	n                 int
	pooled, pooledSim []float64 // p and S·p of the pool
	joint, jointSim   []float64 // w_ij and (S·w_j)_i, site-major
}

func (l levels) Gamma(q float64) (float64, error) { return hill.Weighted(l.pooled, l.pooledSim, q) }

func (l levels) Alpha(q float64) (float64, error) {
	d, err := hill.Weighted(l.joint, l.jointSim, q)
	if err != nil {
		return 0, err
	}

	return d / float64(l.n), nil
}

func (l levels) Sites() int { return l.n }

// Partition decomposes comm into functional gamma, alpha and beta diversity.
//
// Implementation:
//   - Pool comm with Pooler (see Pool), then hand the levels to
//     partition.Partition for the beta, overlap and turnover indices.
//
// Errors:
//   - those of Pool and partition.Partition.
//
// Complexity:
//   - Time O(N·S²).
func Partition(comm *community.Matrix, dist *Distance, q float64, opts ...partition.Option) (partition.Result, error) {
	return partition.Partition(comm, Pooler{Distance: dist}, q, opts...)
}

// Pairwise runs Partition over site pairs.
func Pairwise(comm *community.Matrix, dist *Distance, q float64, opts ...pairwise.Option) (*pairwise.Result, error) {
	return pairwise.Decompose(comm, Pooler{Distance: dist}, q, opts...)
}
