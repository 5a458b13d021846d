// Package companion builds the Frobenius (companion) matrix of a real
// polynomial given by its coefficients in ascending-degree order.
//
// What
//
//	For w(x) = a_0 + a_1·x + … + a_n·x^n with a_n ≠ 0 the n×n matrix is
//
//	  F = [[       0,        1,        0, …,            0],
//	       [       0,        0,        1, …,            0],
//	       [     …  ,      …  ,      …  , …,          …  ],
//	       [-a_0/a_n, -a_1/a_n, -a_2/a_n, …, -a_{n-1}/a_n]]
//
//	Its characteristic polynomial is w(x)/a_n, so its eigenvalues are the
//	roots of w.
//
// Errors
//
//   - ndarray.ErrNilArray     if coef is nil.
//   - ndarray.ErrNotVector    if coef is not one-dimensional.
//   - ndarray.ErrTooShort     if coef has fewer than 2 entries (ErrEmpty for 0).
//   - ErrZeroLeading          if the last entry is exactly zero.
//   - ndarray.ErrNaNInf       if any entry is NaN or ±Inf.
//     This is stricter than the plain companion construction, which would
//     return a matrix with NaN entries.
//
// A zero leading coefficient is rejected, never silently reduced to a
// lower degree.
//
// Complexity
//
//   - Time O(n²) (zero fill dominates), Memory O(n²).
//
// Usage
//
//	f, err := companion.Build(ndarray.Vector(-1, 0, 1)) // x² − 1
//	if err != nil {
//		// errors.Is(err, ndarray.ErrShape), ...
//	}
//	fmt.Print(f) // [0, 1]\n[1, 0]\n
package companion
