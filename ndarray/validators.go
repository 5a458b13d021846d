// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single source of truth for the input checks run by every kernel.
//  - Return sentinels wrapped with the validator tag so call sites can wrap once more
//    with their operation name and callers still match via errors.Is.
//
// Note:
//  - Each validator describes what it assumes (e.g. no nil check).
//  - Composite kernels follow a fixed order: NotNil → Ndim → extents → values.

package ndarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray if a == nil.
// Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateVector ensures a is non-nil and one-dimensional.
// Returns ErrNilArray or ErrNotVector.
func ValidateVector(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.Ndim() != 1 {
		return validatorErrorf("ValidateVector", fmt.Errorf("ndim=%d: %w", a.Ndim(), ErrNotVector))
	}

	return nil
}

// ValidateMatrix ensures a is non-nil and two-dimensional.
// Returns ErrNilArray or ErrNotMatrix.
func ValidateMatrix(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.Ndim() != 2 {
		return validatorErrorf("ValidateMatrix", fmt.Errorf("ndim=%d: %w", a.Ndim(), ErrNotMatrix))
	}

	return nil
}

// ValidateSquare ensures a is a square matrix. 0×0 is square.
// Runs ValidateMatrix first; returns ErrNonSquare for r≠c.
func ValidateSquare(a *Array) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}
	r, c := a.shape[0], a.shape[1]
	if r != c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}

	return nil
}

// ValidateMinLen ensures a one-dimensional a has at least n elements.
// Assumes ValidateVector already passed. Returns ErrEmpty for a zero-length
// vector when n > 0, ErrTooShort otherwise.
func ValidateMinLen(a *Array, n int) error {
	switch l := a.Len(); {
	case l >= n:
		return nil
	case l == 0:
		return validatorErrorf("ValidateMinLen", ErrEmpty)
	default:
		return validatorErrorf("ValidateMinLen", fmt.Errorf("len=%d, want ≥ %d: %w", l, n, ErrTooShort))
	}
}

// ValidateFinite ensures no element is NaN or ±Inf.
// Assumes a is non-nil. Complexity: O(size).
func ValidateFinite(a *Array) error {
	return validateFiniteSlice("ValidateFinite", a.data)
}

// ValidateFiniteSlice is ValidateFinite for a raw slice.
func ValidateFiniteSlice(s []float64) error {
	return validateFiniteSlice("ValidateFiniteSlice", s)
}

func validateFiniteSlice(tag string, s []float64) error {
	if floats.HasNaN(s) {
		return validatorErrorf(tag, ErrNaNInf)
	}
	for i, v := range s {
		if math.IsInf(v, 0) {
			return validatorErrorf(tag, fmt.Errorf("element %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
