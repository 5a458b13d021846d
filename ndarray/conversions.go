// SPDX-License-Identifier: MIT

package ndarray

import (
	"gonum.org/v1/gonum/mat"
)

const ctxDense = "Dense"

// FromDense copies any gonum matrix into a 2-d Array.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) *Array {
	r, c := m.Dims()
	a := &Array{shape: []int{r, c}, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}

	return a
}

// Dense copies a 2-d Array into a new *mat.Dense.
// gonum cannot represent zero-sized matrices, so an empty extent yields ErrEmpty.
// Returns ErrNilArray, ErrNotMatrix or ErrEmpty.
func (a *Array) Dense() (*mat.Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, arrayErrorf(ctxDense, err)
	}
	if a.shape[0] == 0 || a.shape[1] == 0 {
		return nil, arrayErrorf(ctxDense, ErrEmpty)
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
}
