// SPDX-License-Identifier: MIT

package companion

import (
	"fmt"

	"github.com/katalvlaran/polyroot/ndarray"
	"gonum.org/v1/gonum/mat"
)

// ErrZeroLeading is returned when the highest-degree coefficient is zero.
var ErrZeroLeading = fmt.Errorf("%w: companion: leading coefficient is zero", ndarray.ErrDegenerate)

// MinCoefficients is the shortest coefficient vector with a companion matrix (degree 1).
const MinCoefficients = 2

// Operation tags for error wrapping.
const (
	opBuild      = "Build"
	opBuildDense = "BuildDense"
)

func companionErrorf(tag string, err error) error {
	return fmt.Errorf("companion.%s: %w", tag, err)
}

// Build returns the n×n Frobenius matrix of coef as a 2-d ndarray.Array,
// where n = len(coef)-1.
// Implementation:
//   - Stage 1: validate coef (NotNil → Vector → MinLen → Finite → leading ≠ 0).
//   - Stage 2: fill the superdiagonal and the normalised last row.
//
// The result is freshly allocated; coef is not modified.
func Build(coef *ndarray.Array) (*ndarray.Array, error) {
	if err := ndarray.ValidateVector(coef); err != nil {
		return nil, companionErrorf(opBuild, err)
	}
	if err := ndarray.ValidateMinLen(coef, MinCoefficients); err != nil {
		return nil, companionErrorf(opBuild, err)
	}

	data, n, err := frobenius(coef.Data())
	if err != nil {
		return nil, companionErrorf(opBuild, err)
	}

	return ndarray.New([]int{n, n}, data)
}

// BuildDense is Build for a raw coefficient slice, returning a gonum matrix.
// Returns ndarray.ErrTooShort (or ErrEmpty), ndarray.ErrNaNInf or ErrZeroLeading.
func BuildDense(coef []float64) (*mat.Dense, error) {
	switch {
	case len(coef) == 0:
		return nil, companionErrorf(opBuildDense, ndarray.ErrEmpty)
	case len(coef) < MinCoefficients:
		return nil, companionErrorf(opBuildDense, ndarray.ErrTooShort)
	}

	data, n, err := frobenius(coef)
	if err != nil {
		return nil, companionErrorf(opBuildDense, err)
	}

	return mat.NewDense(n, n, data), nil
}

// frobenius fills the flat row-major companion matrix for coef (len ≥ 2).
// Returns the data, the order n and ErrNaNInf/ErrZeroLeading on bad input.
// Complexity: O(n²) memory, O(n) writes.
func frobenius(coef []float64) ([]float64, int, error) {
	if err := ndarray.ValidateFiniteSlice(coef); err != nil {
		return nil, 0, err
	}
	n := len(coef) - 1
	lead := coef[n]
	if lead == 0 {
		return nil, 0, ErrZeroLeading
	}

	data := make([]float64, n*n)
	for i := 0; i < n-1; i++ {
		data[i*n+i+1] = 1.0 // superdiagonal
	}
	last := (n - 1) * n
	for j := 0; j < n; j++ {
		if v := coef[j] / lead; v != 0 {
			data[last+j] = -v // zero entries stay +0
		}
	}

	return data, n, nil
}
