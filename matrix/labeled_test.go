package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/matrix"
)

func distances(t *testing.T) *matrix.Labeled {
	t.Helper()
	d := dense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	lab, err := matrix.NewLabeled(d, []string{"a", "b", "c"}, []string{"a", "b", "c"})
	require.NoError(t, err)

	return lab
}

func TestNewLabeledErrors(t *testing.T) {
	d := dense(t, [][]float64{{1, 2}})

	_, err := matrix.NewLabeled(d, []string{"x", "y"}, []string{"a", "b"})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewLabeled(d, []string{"x"}, []string{"a", "a"})
	require.ErrorIs(t, err, matrix.ErrDuplicateLabel)

	_, err = matrix.NewLabeled(d, []string{""}, []string{"a", "b"})
	require.ErrorIs(t, err, matrix.ErrEmptyLabel)

	_, err = matrix.NewLabeled(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLabeledLookup(t *testing.T) {
	lab := distances(t)

	require.Equal(t, []string{"a", "b", "c"}, lab.RowLabels())
	require.Equal(t, "c", lab.RowLabel(2))
	require.Equal(t, "", lab.RowLabel(3))

	i, ok := lab.RowIndex("b")
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = lab.ColIndex("z")
	require.False(t, ok)

	idx, err := lab.AlignCols([]string{"c", "a"})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, idx)

	_, err = lab.AlignRows([]string{"a", "z"})
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
	require.ErrorIs(t, err, hilldiv.ErrShapeMismatch)
}

// TestSelectSymmetric reorders a distance matrix to a community's species order.
func TestSelectSymmetric(t *testing.T) {
	lab := distances(t)

	sub, err := lab.SelectSymmetric([]string{"c", "a"})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, sub.RowLabels())
	require.Equal(t, []string{"c", "a"}, sub.ColLabels())
	require.Equal(t, [][]float64{{0, 2}, {2, 0}}, sub.RawRows())

	_, err = lab.SelectSymmetric([]string{"a", "q"})
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
}

// TestSelectDuplicateRows pairs a row with itself, as a self-pair of sites does.
func TestSelectDuplicateRows(t *testing.T) {
	lab := distances(t)

	sub, err := lab.Select([]int{1, 1}, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "b"}, sub.RowLabels())
	i, ok := sub.RowIndex("b")
	require.True(t, ok)
	require.Equal(t, 0, i)
}
