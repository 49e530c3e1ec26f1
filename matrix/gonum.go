// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Gonum returns a *mat.Dense view sharing no storage with m (the buffer is
// copied), so BLAS-backed kernels (quadratic forms, mat-vec products) can run
// on engine inputs without exposing the internal buffer.
// Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies a gonum matrix into a fresh Dense with the default policy.
func FromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
