// SPDX-License-Identifier: MIT
package companion_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/polyroot/companion"
	"github.com/katalvlaran/polyroot/ndarray"
	"github.com/stretchr/testify/require"
)

// TestBuild_InvalidInput covers every rejection class.
func TestBuild_InvalidInput(t *testing.T) {
	t.Parallel()

	twoD, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	tests := []struct {
		name string
		coef *ndarray.Array
		want error
	}{
		{"nil", nil, ndarray.ErrNilArray},
		{"scalar", ndarray.Scalar(3), ndarray.ErrNotVector},
		{"2-D", twoD, ndarray.ErrNotVector},
		{"empty", ndarray.Vector(), ndarray.ErrEmpty},
		{"length 1", ndarray.Vector(5), ndarray.ErrTooShort},
		{"zero leading", ndarray.Vector(1, 2, 0), companion.ErrZeroLeading},
		{"NaN", ndarray.Vector(math.NaN(), 1), ndarray.ErrNaNInf},
		{"Inf leading", ndarray.Vector(1, math.Inf(1)), ndarray.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f, err := companion.Build(tc.coef)
			require.Nil(t, f)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestBuild_ErrorKinds checks the category of each rejection.
func TestBuild_ErrorKinds(t *testing.T) {
	_, err := companion.Build(nil)
	require.Equal(t, ndarray.KindType, ndarray.KindOf(err))

	_, err = companion.Build(ndarray.Vector(1))
	require.Equal(t, ndarray.KindShape, ndarray.KindOf(err))

	_, err = companion.Build(ndarray.Vector(1, 0))
	require.Equal(t, ndarray.KindDegenerate, ndarray.KindOf(err))
}

// TestBuild_Structure verifies the superdiagonal, the last row and zeros elsewhere
// for several degrees.
func TestBuild_Structure(t *testing.T) {
	t.Parallel()

	for _, coef := range [][]float64{
		{3, 2},
		{-1, 0, 1},
		{6, -11, 6, -1},
		{1, 2, 3, 4, 5, -0.5},
	} {
		coef := coef
		t.Run(ndarray.Vector(coef...).String(), func(t *testing.T) {
			f, err := companion.Build(ndarray.Vector(coef...))
			require.NoError(t, err)

			n := len(coef) - 1
			require.Equal(t, []int{n, n}, f.Shape())

			lead := coef[n]
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					got, err := f.At(i, j)
					require.NoError(t, err)
					switch {
					case i == n-1:
						require.InDelta(t, -coef[j]/lead, got, 1e-15, "last row [%d]", j)
					case j == i+1:
						require.Equal(t, 1.0, got, "superdiagonal (%d,%d)", i, j)
					default:
						require.Equal(t, 0.0, got, "off-structure (%d,%d)", i, j)
					}
				}
			}
		})
	}
}

// TestBuild_Quadratic pins the exact matrix for 2 + 3x + 4x².
func TestBuild_Quadratic(t *testing.T) {
	f, err := companion.Build(ndarray.Vector(2, 3, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, -0.5, -0.75}, f.Data())
}

// TestBuild_InputUntouched ensures coef is not modified.
func TestBuild_InputUntouched(t *testing.T) {
	coef := ndarray.Vector(2, 4, 8)
	_, err := companion.Build(coef)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 8}, coef.Data())
}

// TestBuildDense mirrors Build on the gonum surface.
func TestBuildDense(t *testing.T) {
	d, err := companion.BuildDense([]float64{6, -11, 6, -1})
	require.NoError(t, err)

	want, err := companion.Build(ndarray.Vector(6, -11, 6, -1))
	require.NoError(t, err)
	require.Equal(t, want.Data(), ndarray.FromDense(d).Data())

	_, err = companion.BuildDense(nil)
	require.ErrorIs(t, err, ndarray.ErrEmpty)
	_, err = companion.BuildDense([]float64{1})
	require.ErrorIs(t, err, ndarray.ErrTooShort)
	_, err = companion.BuildDense([]float64{1, 0})
	require.ErrorIs(t, err, companion.ErrZeroLeading)
}
