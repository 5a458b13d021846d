// Package roots computes the roots of a real polynomial by perturbing its
// coefficients slightly and taking the eigenvalues of the Frobenius
// companion matrix of the perturbed polynomial.
//
// What
//
//   - Find(coef) draws a perturbation vector with entries uniform in
//     [0, DefaultMagnitude), adds it to coef, and returns the perturbed
//     coefficients together with the roots (complex128, sorted by real then
//     imaginary part).
//   - Finder carries the configuration: an injectable math/rand/v2 Source
//     (reproducible perturbations), the perturbation magnitude and the
//     output ordering.
//   - Eval evaluates a real polynomial at a complex point (Horner).
//
// Why perturb
//
//	An exact coincidence (repeated roots, a leading coefficient that is
//	exactly zero) makes the companion eigenproblem degenerate. A nudge of
//	at most 1e-10 breaks the coincidence while keeping simple roots
//	accurate to far better than 1e-6.
//
// Algorithm
//
//  1. Validate: one-dimensional, non-empty, finite.
//  2. Perturb: c' = c + u, u_i ~ U[0, magnitude).
//  3. Trim trailing exact zeros of c' (keep at least one entry).
//  4. Degree 0 → no roots; degree 1 → −c'_0/c'_1; otherwise the
//     eigenvalues of companion.BuildDense(c') via gonum mat.Eigen.
//  5. Sort (unless WithoutSort).
//
// Errors
//
//   - ndarray.ErrNilArray    if coef is nil.
//   - ndarray.ErrNotVector   if coef is a scalar or has ndim ≥ 2.
//   - ndarray.ErrEmpty       if coef has no entries.
//   - ndarray.ErrNaNInf      if coef has a NaN or ±Inf entry.
//   - ErrEigenFailed         if the eigen decomposition fails or yields
//     non-finite roots.
//   - ndarray.ErrComputation for any panic recovered from the backend.
//   - ErrOptionViolation     from New for a nonsensical option.
//
// Concurrency
//
//	A Finder is safe for concurrent use. Without WithSource/WithSeed it
//	draws from the process-wide math/rand/v2 generator; an injected Source
//	is guarded by a mutex.
//
// Complexity
//
//   - Time O(n³) (Hessenberg QR in the eigen solver), Memory O(n²).
//
// Usage
//
//	res, err := roots.Find(ndarray.Vector(-1, 0, 1)) // x² − 1
//	if err != nil {
//		// ndarray.KindOf(err) tells type/shape/computation apart
//	}
//	fmt.Println(res.Roots) // ≈ [(-1+0i) (1+0i)]
//
//	f, _ := roots.New(roots.WithSeed(7)) // reproducible perturbation
//	res, err = f.Find(coef)
package roots
