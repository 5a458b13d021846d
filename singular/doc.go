// Package singular decides whether a square matrix is numerically
// nonsingular with a machine-epsilon determinant test.
//
// What
//
//   - IsNonsingular(a) computes det(a) (gonum mat.Det, LU based) and
//     reports |det| ≥ MachineEpsilon, where MachineEpsilon = 2⁻⁵² is the
//     unit roundoff of float64.
//   - Inspect(a) returns the determinant, the threshold and the verdict.
//   - IsNonsingularDense(m) accepts any gonum mat.Matrix.
//
// Threshold semantics
//
//	The default threshold is ABSOLUTE and therefore scale-sensitive:
//	1e-6·I (3×3) has det 1e-18 and is reported singular, while a nearly
//	rank-deficient matrix with large entries can be reported nonsingular.
//	This behaviour is intentional and stable. Two explicit variants exist:
//
//	  - WithEpsilon(eps):      a different absolute threshold.
//	  - WithScaledThreshold(): threshold = eps · Π‖row_i‖₂ (Hadamard bound),
//	                           invariant under row scaling.
//
// Verdict
//
//	(true, nil) nonsingular, (false, nil) singular, (false, err) invalid
//	input. The three outcomes are always distinguishable. A 0×0 matrix has
//	determinant 1 (the empty product) and is nonsingular.
//
// Errors
//
//   - ndarray.ErrNilArray   if a is nil.
//   - ndarray.ErrNotMatrix  if a is not two-dimensional.
//   - ndarray.ErrNonSquare  if rows ≠ cols.
//   - ndarray.ErrNaNInf     if any entry is NaN or ±Inf.
//     This is stricter than a bare determinant test, which would return
//     a NaN determinant and report the matrix nonsingular.
//   - ndarray.ErrComputation if the determinant could not be computed.
//   - ErrOptionViolation    for a nonsensical option.
//
// Complexity
//
//   - Time O(n³) (LU), Memory O(n²).
package singular
