package pairwise_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
	"github.com/katalvlaran/hilldiv/taxa"
)

func fourSites(t testing.TB) *community.Matrix {
	t.Helper()
	comm, err := community.New([][]float64{
		{5, 1, 0, 0, 2},
		{0, 3, 3, 0, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 7, 1},
	}, []string{"A", "B", "C", "D"}, nil)
	require.NoError(t, err)

	return comm
}

func TestDecompose_UniqueTable(t *testing.T) {
	res, err := pairwise.Decompose(fourSites(t), taxa.Pooler{}, 1)
	require.NoError(t, err)

	rows := res.Table()
	require.Len(t, rows, 6) // choose(4,2)
	want := [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}}
	for k, r := range rows {
		assert.Equal(t, want[k][0], r.Site1)
		assert.Equal(t, want[k][1], r.Site2)
		assert.NotEqual(t, r.Site1, r.Site2)
		assert.Equal(t, 1.0, r.Q)
		assert.InDelta(t, r.Gamma/r.Alpha, r.Beta, 1e-12)
	}
}

func TestDecompose_MatchesDirectPartition(t *testing.T) {
	comm := fourSites(t)
	res, err := pairwise.Decompose(comm, taxa.Pooler{}, 2)
	require.NoError(t, err)

	sub, err := comm.Subset([]int{1, 3})
	require.NoError(t, err)
	direct, err := taxa.Partition(sub, 2)
	require.NoError(t, err)

	row := res.Table()[4] // B/D
	assert.Equal(t, "B", row.Site1)
	assert.Equal(t, "D", row.Site2)
	assert.Equal(t, direct.Gamma, row.Gamma)
	assert.Equal(t, direct.Alpha, row.Alpha)
	assert.Equal(t, direct.Beta, row.Beta)
}

func TestDecompose_FullMatrixSymmetric(t *testing.T) {
	for _, q := range []float64{0, 1, 2} {
		res, err := pairwise.Decompose(fourSites(t), taxa.Pooler{}, q, pairwise.WithPairs(pairwise.Full))
		require.NoError(t, err)
		assert.Equal(t, 16, res.Len())
		assert.Empty(t, res.Warnings)

		ms, err := res.Matrices()
		require.NoError(t, err)
		require.Len(t, ms, len(pairwise.Metrics))
		for _, name := range pairwise.Metrics {
			m := ms[name]
			assert.Equal(t, []string{"A", "B", "C", "D"}, m.RowLabels())
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					a, _ := m.At(i, j)
					b, _ := m.At(j, i)
					assert.InDelta(t, a, b, 1e-12, "%s[%d,%d] q=%v", name, i, j, q)
				}
			}
		}
		for i := 0; i < 4; i++ {
			beta, _ := ms[pairwise.MetricBeta].At(i, i)
			assert.InDelta(t, 1, beta, 1e-12)
			sim, _ := ms[pairwise.MetricLocalSimilarity].At(i, i)
			assert.InDelta(t, 1, sim, 1e-12)
		}
	}
}

func TestDecompose_UniqueMatrixLeavesNaN(t *testing.T) {
	res, err := pairwise.Decompose(fourSites(t), taxa.Pooler{}, 0)
	require.NoError(t, err)
	ms, err := res.Matrices()
	require.NoError(t, err)

	beta := ms[pairwise.MetricBeta]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := beta.At(i, j)
			if i < j {
				assert.False(t, math.IsNaN(v), "[%d,%d]", i, j)
			} else {
				assert.True(t, math.IsNaN(v), "[%d,%d]", i, j)
			}
		}
	}
}

func TestDecompose_WorkersAgree(t *testing.T) {
	comm := fourSites(t)
	seq, err := pairwise.Decompose(comm, taxa.Pooler{}, 0.5, pairwise.WithPairs(pairwise.Full))
	require.NoError(t, err)
	par, err := pairwise.Decompose(comm, taxa.Pooler{}, 0.5,
		pairwise.WithPairs(pairwise.Full), pairwise.WithWorkers(0))
	require.NoError(t, err)
	assert.Equal(t, seq.Table(), par.Table())
}

func TestDecompose_Render(t *testing.T) {
	res, err := pairwise.Decompose(fourSites(t), taxa.Pooler{}, 0)
	require.NoError(t, err)

	r, err := res.Render(pairwise.Table)
	require.NoError(t, err)
	assert.Len(t, r.Table, 6)
	assert.Nil(t, r.Matrices)

	r, err = res.Render(pairwise.Matrix)
	require.NoError(t, err)
	assert.Nil(t, r.Table)
	assert.Len(t, r.Matrices, 5)

	_, err = res.Render(pairwise.Output(9))
	assert.ErrorIs(t, err, pairwise.ErrUnknownOutput)
}

type failingPooler struct{}

var errPool = errors.New("no structure")

func (failingPooler) Pool(*community.Matrix, bool) (partition.Levels, error) { return nil, errPool }

func TestDecompose_Errors(t *testing.T) {
	comm := fourSites(t)

	_, err := pairwise.Decompose(comm, taxa.Pooler{}, -1)
	assert.ErrorIs(t, err, hilldiv.ErrDomain)

	_, err = pairwise.Decompose(comm, nil, 0)
	assert.ErrorIs(t, err, pairwise.ErrNilPooler)

	_, err = pairwise.Decompose(nil, taxa.Pooler{}, 0)
	assert.ErrorIs(t, err, partition.ErrNilCommunity)

	_, err = pairwise.Decompose(comm, failingPooler{}, 0)
	assert.ErrorIs(t, err, errPool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pairwise.Decompose(comm, taxa.Pooler{}, 0, pairwise.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { pairwise.WithWorkers(-1) })
}

func TestParse(t *testing.T) {
	p, err := pairwise.ParsePairs("FULL")
	require.NoError(t, err)
	assert.Equal(t, pairwise.Full, p)
	assert.Equal(t, "unique", pairwise.Unique.String())
	_, err = pairwise.ParsePairs("half")
	assert.ErrorIs(t, err, hilldiv.ErrDomain)

	o, err := pairwise.ParseOutput("data.frame")
	require.NoError(t, err)
	assert.Equal(t, pairwise.Table, o)
	o, err = pairwise.ParseOutput("matrix")
	require.NoError(t, err)
	assert.Equal(t, pairwise.Matrix, o)
	_, err = pairwise.ParseOutput("tibble")
	assert.ErrorIs(t, err, pairwise.ErrUnknownOutput)
}

func TestRow_Metric(t *testing.T) {
	r := pairwise.Row{Gamma: 1, Alpha: 2, Beta: 3, LocalSimilarity: 4, RegionSimilarity: 5}
	for k, name := range pairwise.Metrics {
		v, ok := r.Metric(name)
		assert.True(t, ok)
		assert.Equal(t, float64(k+1), v)
	}
	_, ok := r.Metric("delta")
	assert.False(t, ok)
}
