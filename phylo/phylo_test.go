package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/partition"
	"github.com/katalvlaran/hilldiv/phylo"
	"github.com/katalvlaran/hilldiv/taxa"
)

var orders = []float64{0, 0.5, 1, 2, 3}

func mustTree(t testing.TB, s string) *phylo.Tree {
	t.Helper()
	tr, err := phylo.ParseNewick(s)
	require.NoError(t, err)

	return tr
}

func TestNewStructure(t *testing.T) {
	tr := mustTree(t, "(((a:1,b:1)ab:1,c:2)abc:1,d:3)root;")

	st, err := phylo.NewStructure(tr, []string{"c", "a"})
	require.NoError(t, err)
	// kept: a, ab, c, abc; dropped: b, d
	assert.Equal(t, []float64{1, 1, 2, 1}, st.Lengths)
	assert.Equal(t, [][]int{{1}, {1}, {0}, {1, 0}}, st.Tips)
	assert.Equal(t, []float64{0.25, 0.25, 0.75, 1}, st.BranchAbundance([]float64{0.75, 0.25}))
}

func TestNewStructure_Errors(t *testing.T) {
	tr := mustTree(t, "((a:1,b:1):1,c:2);")

	_, err := phylo.NewStructure(tr, []string{"a", "z"})
	assert.ErrorIs(t, err, phylo.ErrUnresolvedSpecies)
	assert.ErrorIs(t, err, hilldiv.ErrDomain)
	assert.ErrorIs(t, err, hilldiv.ErrShapeMismatch)

	_, err = phylo.NewStructure(tr, []string{"a", "a"})
	assert.ErrorIs(t, err, hilldiv.ErrShapeMismatch)

	dup := &phylo.Tree{Root: &phylo.Node{Children: []*phylo.Node{{Label: "a", Length: 1}, {Label: "a", Length: 1}}}}
	_, err = phylo.NewStructure(dup, []string{"a"})
	assert.ErrorIs(t, err, phylo.ErrDuplicateTip)

	_, err = phylo.NewStructure(nil, []string{"a"})
	assert.ErrorIs(t, err, phylo.ErrNilTree)

	bad := &phylo.Tree{Root: &phylo.Node{Children: []*phylo.Node{{Label: "a", Length: -2}}}}
	_, err = phylo.NewStructure(bad, []string{"a"})
	assert.ErrorIs(t, err, phylo.ErrNegativeLength)
}

func TestDiversity_UltrametricTree(t *testing.T) {
	tr := mustTree(t, "((a:1,b:1):1,c:2);")
	comm, err := community.New([][]float64{{1, 1, 0}, {1, 1, 1}}, nil, []string{"a", "b", "c"})
	require.NoError(t, err)
	st, err := phylo.ForCommunity(tr, comm)
	require.NoError(t, err)

	pd0, err := phylo.Diversity(comm, st, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 2.5}, pd0, 1e-12) // Faith's PD / depth

	pd2, err := phylo.Diversity(comm, st, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, pd2[1], 1e-12)

	faith, err := phylo.FaithPD(comm, st)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, faith)
}

func TestStarTreeReducesToTaxonomic(t *testing.T) {
	tr := mustTree(t, "(a:2,b:2,c:2,d:2,e:2);")
	comm, err := community.New([][]float64{
		{5, 1, 0, 2, 0},
		{0, 3, 3, 1, 0},
		{1, 1, 1, 1, 0},
	}, nil, []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	st, err := phylo.ForCommunity(tr, comm)
	require.NoError(t, err)

	for _, q := range orders {
		want, err := taxa.Diversity(comm, q)
		require.NoError(t, err)
		got, err := phylo.Diversity(comm, st, q)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-9, "q=%v", q)

		for _, relThenPool := range []bool{true, false} {
			opt := partition.WithRelThenPool(relThenPool)
			tx, err := taxa.Partition(comm, q, opt)
			require.NoError(t, err)
			pr, err := phylo.Partition(comm, st, q, opt)
			require.NoError(t, err)
			assert.InDelta(t, tx.Gamma, pr.Gamma, 1e-9)
			assert.InDelta(t, tx.Alpha, pr.Alpha, 1e-9)
			assert.InDelta(t, tx.Beta, pr.Beta, 1e-9)
			assert.InDelta(t, tx.LocalSimilarity, pr.LocalSimilarity, 1e-9)
		}
	}
}

func TestPartition_IdenticalAndDisjoint(t *testing.T) {
	tr := mustTree(t, "((a:1,b:1):1,(c:1,d:1):1);")
	st, err := phylo.NewStructure(tr, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	same, err := community.New([][]float64{{1, 2, 3, 4}, {1, 2, 3, 4}}, nil, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	for _, q := range orders {
		res, err := phylo.Partition(same, st, q)
		require.NoError(t, err)
		assert.InDelta(t, 1, res.Beta, 1e-12, "q=%v", q)
		assert.InDelta(t, 1, res.LocalSimilarity, 1e-12, "q=%v", q)
		assert.InDelta(t, 1, res.RegionSimilarity, 1e-12, "q=%v", q)
	}

	// disjoint clades share no branch
	apart, err := community.New([][]float64{{1, 1, 0, 0}, {0, 0, 1, 1}}, nil, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	for _, q := range orders {
		res, err := phylo.Partition(apart, st, q)
		require.NoError(t, err)
		assert.InDelta(t, 2, res.Beta, 1e-12, "q=%v", q)
		assert.InDelta(t, res.Gamma/res.Alpha, res.Beta, 1e-12)
	}
}

func TestAbsentSpeciesNeedNoTip(t *testing.T) {
	tr := mustTree(t, "(a:1,b:1);")
	comm, err := community.New([][]float64{{1, 2, 0}, {2, 0, 0}}, nil, []string{"a", "b", "ghost"})
	require.NoError(t, err)
	st, err := phylo.ForCommunity(tr, comm)
	require.NoError(t, err)

	_, err = phylo.Diversity(comm, st, 1)
	require.NoError(t, err)
	pw, err := phylo.Pairwise(comm, st, 1)
	require.NoError(t, err)
	assert.Len(t, pw.Table(), 1)

	present, err := community.New([][]float64{{1, 2, 1}}, nil, []string{"a", "b", "ghost"})
	require.NoError(t, err)
	_, err = phylo.Diversity(present, st, 1)
	assert.ErrorIs(t, err, phylo.ErrUnresolvedSpecies)

	_, err = phylo.Partition(present, nil, 1)
	assert.ErrorIs(t, err, phylo.ErrNilStructure)
}
