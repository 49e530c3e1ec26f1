package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv/matrix"
)

func TestRowColSums(t *testing.T) {
	m := dense(t, [][]float64{{1, 1, 0}, {0, 2, 2}})

	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, rs)

	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2}, cs)

	cm, err := matrix.ColMeans(m)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5, 1}, cm)

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNormalizeRowsL1 leaves an all-zero row untouched and reports the norms.
func TestNormalizeRowsL1(t *testing.T) {
	m := dense(t, [][]float64{{1, 3}, {0, 0}})

	y, norms, err := matrix.NormalizeRowsL1(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0}, norms)
	require.Equal(t, [][]float64{{0.25, 0.75}, {0, 0}}, y.RawRows())

	orig, _ := m.At(0, 0)
	require.Equal(t, 1.0, orig) // input unchanged
}
