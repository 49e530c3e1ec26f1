package community_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
)

func TestNew_SyntheticLabels(t *testing.T) {
	m, err := community.New([][]float64{{1, 2, 0}, {0, 3, 1}}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"site1", "site2"}, m.Sites())
	assert.Equal(t, []string{"sp1", "sp2", "sp3"}, m.Species())
	assert.Equal(t, 2, m.NumSites())
	assert.Equal(t, 3, m.NumSpecies())
	assert.Equal(t, 3.0, m.RowTotal(0))

	j, ok := m.SpeciesIndex("sp3")
	assert.True(t, ok)
	assert.Equal(t, 2, j)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		data    [][]float64
		sites   []string
		species []string
		want    error
	}{
		{"negative", [][]float64{{1, -1}}, nil, nil, hilldiv.ErrDomain},
		{"nan", [][]float64{{1, math.NaN()}}, nil, nil, hilldiv.ErrDomain},
		{"zero row", [][]float64{{1, 1}, {0, 0}}, nil, nil, hilldiv.ErrDomain},
		{"ragged", [][]float64{{1, 1}, {1}}, nil, nil, hilldiv.ErrShapeMismatch},
		{"empty", nil, nil, nil, hilldiv.ErrShapeMismatch},
		{"label count", [][]float64{{1, 1}}, []string{"a", "b"}, nil, hilldiv.ErrShapeMismatch},
		{"duplicate species", [][]float64{{1, 1}}, nil, []string{"x", "x"}, hilldiv.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := community.New(tc.data, tc.sites, tc.species)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestJointAndPooled(t *testing.T) {
	m, err := community.New([][]float64{{1, 1, 0}, {0, 2, 6}}, nil, nil)
	require.NoError(t, err)

	// equal site weights
	assert.InDeltaSlice(t, []float64{0.25, 0.25 + 0.125, 0.375}, m.Pooled(true), 1e-12)

	// abundance weights: totals 2 and 8
	assert.InDeltaSlice(t, []float64{0.1, 0.3, 0.6}, m.Pooled(false), 1e-12)

	joint := m.Joint(true)
	sum := 0.0
	for _, row := range joint {
		for _, v := range row {
			sum += v
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestRelative(t *testing.T) {
	m, err := community.New([][]float64{{1, 3}, {2, 2}}, nil, nil)
	require.NoError(t, err)

	rel := m.Relative()
	require.Len(t, rel, 2)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, rel[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rel[1], 1e-12)
	for i := range rel {
		assert.InDeltaSlice(t, m.RelativeRow(i), rel[i], 1e-12)
	}
	assert.Equal(t, []float64{1, 3}, m.Row(0)) // input unchanged
}

func TestSubset_SelfPair(t *testing.T) {
	m, err := community.New([][]float64{{1, 1}, {2, 0}, {0, 5}}, []string{"a", "b", "c"}, nil)
	require.NoError(t, err)

	pair, err := m.Subset([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b"}, pair.Sites())
	assert.Equal(t, []float64{2, 0}, pair.Row(1))
	assert.Equal(t, []int{0}, pair.PresentSpecies())
	assert.Equal(t, 1, pair.DropAbsent().NumSpecies())

	_, err = m.Subset(nil)
	assert.ErrorIs(t, err, hilldiv.ErrShapeMismatch)
	_, err = m.Subset([]int{7})
	assert.Error(t, err)
}

func TestImmutability(t *testing.T) {
	data := [][]float64{{1, 2}}
	m, err := community.New(data, nil, nil)
	require.NoError(t, err)
	data[0][0] = 100
	row := m.Row(0)
	row[1] = 100
	assert.Equal(t, []float64{1, 2}, m.Row(0))
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, m.RelativeRow(0), 1e-12)
}
