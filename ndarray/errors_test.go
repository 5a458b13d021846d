// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/polyroot/ndarray"
	"github.com/stretchr/testify/require"
)

// TestKindOf maps every specific sentinel onto its category.
func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want ndarray.Kind
	}{
		{nil, ndarray.KindNone},
		{ndarray.ErrNilArray, ndarray.KindType},
		{ndarray.ErrNotVector, ndarray.KindShape},
		{ndarray.ErrNotMatrix, ndarray.KindShape},
		{ndarray.ErrNonSquare, ndarray.KindShape},
		{ndarray.ErrTooShort, ndarray.KindShape},
		{ndarray.ErrEmpty, ndarray.KindShape},
		{ndarray.ErrDegenerate, ndarray.KindDegenerate},
		{ndarray.ErrNaNInf, ndarray.KindComputation},
		{fmt.Errorf("Op: %w", ndarray.ErrNonSquare), ndarray.KindShape},
		{errors.New("backend exploded"), ndarray.KindComputation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprint(tc.err), func(t *testing.T) {
			require.Equal(t, tc.want, ndarray.KindOf(tc.err))
		})
	}
}

// TestKindString keeps the category names stable for log pipelines.
func TestKindString(t *testing.T) {
	require.Equal(t, "none", ndarray.KindNone.String())
	require.Equal(t, "type", ndarray.KindType.String())
	require.Equal(t, "shape", ndarray.KindShape.String())
	require.Equal(t, "degenerate", ndarray.KindDegenerate.String())
	require.Equal(t, "computation", ndarray.KindComputation.String())
	require.Equal(t, "Kind(42)", ndarray.Kind(42).String())
}
