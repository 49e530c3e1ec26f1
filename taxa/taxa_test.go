package taxa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/partition"
	"github.com/katalvlaran/hilldiv/taxa"
)

var orders = []float64{0, 0.5, 1, 2, 3.5}

func mustComm(t testing.TB, data [][]float64) *community.Matrix {
	t.Helper()
	m, err := community.New(data, nil, nil)
	require.NoError(t, err)

	return m
}

func TestDiversity_RichnessAtZero(t *testing.T) {
	comm := mustComm(t, [][]float64{
		{5, 0, 1, 0, 2},
		{0, 0, 0, 9, 0},
		{1, 1, 1, 1, 1},
	})
	d, err := taxa.Diversity(comm, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 5}, d)
}

func TestDiversity_EvenSitesEqualRichness(t *testing.T) {
	comm := mustComm(t, [][]float64{{2, 2, 2, 2}})
	for _, q := range orders {
		d, err := taxa.Diversity(comm, q)
		require.NoError(t, err)
		assert.InDelta(t, 4, d[0], 1e-9, "q=%v", q)
	}
}

func TestDiversityEach_Broadcast(t *testing.T) {
	comm := mustComm(t, [][]float64{{1, 1, 0}, {3, 1, 0}})

	d, err := taxa.DiversityEach(comm, []float64{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d[0])
	assert.InDelta(t, 1/(0.75*0.75+0.25*0.25), d[1], 1e-12)

	_, err = taxa.DiversityEach(comm, []float64{0, 1, 2})
	assert.ErrorIs(t, err, hilldiv.ErrShapeMismatch)

	_, err = taxa.DiversityEach(comm, []float64{-1})
	assert.ErrorIs(t, err, hilldiv.ErrDomain)

	_, err = taxa.Diversity(comm, math.NaN())
	assert.ErrorIs(t, err, hilldiv.ErrDomain)
}

func TestPartition_OverlappingSites(t *testing.T) {
	comm := mustComm(t, [][]float64{{1, 1, 0}, {0, 1, 1}})

	d, err := taxa.Diversity(comm, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, d)

	res, err := taxa.Partition(comm, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3, res.Gamma, 1e-12)
	assert.InDelta(t, 2, res.Alpha, 1e-12)
	assert.InDelta(t, 1.5, res.Beta, 1e-12)
	assert.InDelta(t, 0.5, res.LocalSimilarity, 1e-12)
	assert.InDelta(t, 1.0/3, res.RegionSimilarity, 1e-12)
	assert.Empty(t, res.Warnings)
}

func TestPartition_IdenticalSites(t *testing.T) {
	comm := mustComm(t, [][]float64{{1, 1, 1}, {1, 1, 1}})
	for _, q := range orders {
		res, err := taxa.Partition(comm, q)
		require.NoError(t, err)
		assert.InDelta(t, 1, res.Beta, 1e-12, "q=%v", q)
		assert.InDelta(t, 1, res.LocalSimilarity, 1e-12, "q=%v", q)
		assert.InDelta(t, 1, res.RegionSimilarity, 1e-12, "q=%v", q)
		assert.Empty(t, res.Warnings, "q=%v", q)
	}
}

func TestPartition_DisjointSites(t *testing.T) {
	comm := mustComm(t, [][]float64{{4, 4, 0, 0}, {0, 0, 1, 1}})

	res, err := taxa.Partition(comm, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4, res.Gamma, 1e-12)
	assert.InDelta(t, 2, res.Alpha, 1e-12)
	assert.InDelta(t, 2, res.Beta, 1e-12)
	assert.InDelta(t, 0, res.LocalSimilarity, 1e-12)

	// equal site weights make beta = N for disjoint sites at every order
	for _, q := range orders {
		res, err := taxa.Partition(comm, q)
		require.NoError(t, err)
		assert.InDelta(t, 2, res.Beta, 1e-9, "q=%v", q)
		assert.InDelta(t, 0, res.RegionSimilarity, 1e-9, "q=%v", q)
	}
}

func TestPartition_BetaIsGammaOverAlpha(t *testing.T) {
	comm := mustComm(t, [][]float64{
		{10, 3, 0, 1, 0},
		{0, 7, 2, 2, 5},
		{1, 0, 0, 8, 8},
	})
	for _, relThenPool := range []bool{true, false} {
		for _, q := range orders {
			res, err := taxa.Partition(comm, q, partition.WithRelThenPool(relThenPool))
			require.NoError(t, err)
			assert.InDelta(t, res.Gamma/res.Alpha, res.Beta, 1e-12)
			assert.GreaterOrEqual(t, res.Beta, 1-1e-12)
			assert.LessOrEqual(t, res.Beta, 3+1e-12)
		}
	}
}

func TestPartition_AbundanceWeightedPooling(t *testing.T) {
	comm := mustComm(t, [][]float64{{10, 0}, {0, 1}})

	res, err := taxa.Partition(comm, 1, partition.WithRelThenPool(false))
	require.NoError(t, err)
	p := []float64{10.0 / 11, 1.0 / 11}
	want := math.Exp(-(p[0]*math.Log(p[0]) + p[1]*math.Log(p[1])))
	assert.InDelta(t, want, res.Gamma, 1e-12)
	// each site is a single species, so the joint weights equal the pool
	assert.InDelta(t, want/2, res.Alpha, 1e-12)
	assert.InDelta(t, 2, res.Beta, 1e-12)

	res, err = taxa.Partition(comm, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Gamma, 1e-12)
}

func TestPartition_SingleSiteIsDegenerate(t *testing.T) {
	comm := mustComm(t, [][]float64{{1, 2, 3}})
	res, err := taxa.Partition(comm, 1, partition.WithShowWarning(false))
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Beta, 1e-12)
	assert.True(t, math.IsNaN(res.LocalSimilarity))
	assert.Len(t, res.Warnings, 2)
	for _, w := range res.Warnings {
		assert.ErrorIs(t, w, hilldiv.ErrDegenerateResult)
	}
}
