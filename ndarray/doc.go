// SPDX-License-Identifier: MIT

// Package ndarray provides the shaped float64 array shared by the polyroot
// packages, together with the error taxonomy and the validators used at
// every public entry point.
//
// What
//
//   - Array: row-major n-dimensional buffer with an explicit shape.
//     A 0-d Array is a scalar, a 1-d Array is a coefficient vector and a
//     2-d Array is a matrix.
//   - Error categories (ErrType, ErrShape, ErrDegenerate, ErrComputation)
//     and specific sentinels wrapping exactly one category.
//   - Validators (ValidateNotNil, ValidateVector, ValidateMatrix, ...)
//     returning those sentinels.
//   - A bridge to gonum (FromDense, (*Array).Dense).
//
// Why
//
//	Callers hand arbitrary shapes to the numeric kernels; the kernels must
//	answer "not a vector" or "not square" with an inspectable error instead
//	of panicking. Keeping the shape explicit makes those outcomes testable.
//
// Errors
//
//	Match the category with errors.Is(err, ndarray.ErrShape) or the exact
//	cause with errors.Is(err, ndarray.ErrNotVector). KindOf(err) reduces
//	any error to its Kind.
//
// Complexity
//
//   - New/Zeros/Clone/Data: O(size) time and memory.
//   - At/Set: O(ndim).
package ndarray
