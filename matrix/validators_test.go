package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/matrix"
)

func dense(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(dense(t, [][]float64{{0, 1}, {2, 3}})))

	err := matrix.ValidateNonNegative(dense(t, [][]float64{{0, -1}}))
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.ErrorIs(t, err, hilldiv.ErrDomain)

	nan := dense(t, [][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.ErrorIs(t, matrix.ValidateNonNegative(nan), matrix.ErrNaNInf)
}

func TestValidateDistance(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ok", [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, nil},
		{"non-square", [][]float64{{0, 1}}, matrix.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNegative},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, matrix.ErrAsymmetry},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, matrix.ErrNonZeroDiagonal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistance(dense(t, tc.rows))
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateDistanceEpsilon shows that WithEpsilon loosens symmetry and diagonal checks.
func TestValidateDistanceEpsilon(t *testing.T) {
	m := dense(t, [][]float64{{1e-6, 1}, {1 + 1e-6, 0}})
	require.Error(t, matrix.ValidateDistance(m))
	require.NoError(t, matrix.ValidateDistance(m, matrix.WithEpsilon(1e-5)))
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
}
