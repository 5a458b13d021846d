// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/polyroot/ndarray"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromRows(rows)
	require.NoError(t, err)

	return a
}

// TestValidateSquare covers nil, wrong ndim, non-square and valid inputs, 0×0 included.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *ndarray.Array
		want error
	}{
		{"nil", nil, ndarray.ErrNilArray},
		{"scalar", ndarray.Scalar(1), ndarray.ErrNotMatrix},
		{"vector", ndarray.Vector(1, 2), ndarray.ErrNotMatrix},
		{"2x3", mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), ndarray.ErrNonSquare},
		{"0x0", mustRows(t, nil), nil},
		{"1x1", mustRows(t, [][]float64{{4}}), nil},
		{"2x2", mustRows(t, [][]float64{{1, 2}, {3, 4}}), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ndarray.ValidateSquare(tc.a)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateVectorAndMinLen covers the coefficient-vector checks.
func TestValidateVectorAndMinLen(t *testing.T) {
	require.ErrorIs(t, ndarray.ValidateVector(nil), ndarray.ErrNilArray)
	require.ErrorIs(t, ndarray.ValidateVector(ndarray.Scalar(1)), ndarray.ErrNotVector)
	require.ErrorIs(t, ndarray.ValidateVector(mustRows(t, [][]float64{{1, 2}})), ndarray.ErrNotVector)
	require.NoError(t, ndarray.ValidateVector(ndarray.Vector()))

	require.ErrorIs(t, ndarray.ValidateMinLen(ndarray.Vector(), 2), ndarray.ErrEmpty)
	require.ErrorIs(t, ndarray.ValidateMinLen(ndarray.Vector(1), 2), ndarray.ErrTooShort)
	require.NoError(t, ndarray.ValidateMinLen(ndarray.Vector(1, 2), 2))
}

// TestValidateFinite rejects NaN and both infinities.
func TestValidateFinite(t *testing.T) {
	require.NoError(t, ndarray.ValidateFinite(ndarray.Vector(1, -2, 0)))
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ndarray.ValidateFinite(ndarray.Vector(1, bad))
		require.ErrorIs(t, err, ndarray.ErrNaNInf)
		require.ErrorIs(t, err, ndarray.ErrComputation)
	}
	require.ErrorIs(t, ndarray.ValidateFiniteSlice([]float64{math.Inf(1)}), ndarray.ErrNaNInf)
}
