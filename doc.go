// Package polyroot finds the roots of real polynomials through the
// eigenvalues of their Frobenius companion matrix, and tests square
// matrices for numerical nonsingularity.
//
// Everything is organized under four subpackages:
//
//	ndarray/  : shaped float64 arrays, error taxonomy, validators, gonum bridge
//	companion/: Frobenius (companion) matrix of a coefficient vector
//	roots/    : perturbed companion-matrix root finding
//	singular/ : machine-epsilon determinant test
//
// Coefficients are always given in ascending-degree order:
// [a_0, a_1, …, a_n] is a_0 + a_1·x + … + a_n·x^n.
//
// Quick example:
//
//	res, err := roots.Find(ndarray.Vector(-1, 0, 1)) // x² − 1
//	// res.Roots ≈ [-1, 1]
//
//	f, _ := companion.Build(ndarray.Vector(-1, 0, 1))
//	ok, _ := singular.IsNonsingular(f) // true: det = -1
//
// No function panics on user input; every failure is an error matching
// one of ndarray.ErrType, ErrShape, ErrDegenerate or ErrComputation.
//
//	go get github.com/katalvlaran/polyroot
package polyroot
