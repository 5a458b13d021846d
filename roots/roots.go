// SPDX-License-Identifier: MIT

package roots

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/polyroot/companion"
	"github.com/katalvlaran/polyroot/ndarray"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var log = logging.Logger("roots")

// ErrEigenFailed is returned when the companion eigen decomposition fails
// or produces non-finite roots.
var ErrEigenFailed = fmt.Errorf("%w: roots: eigen decomposition failed", ndarray.ErrComputation)

const opFind = "Find"

func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("roots.%s: %w", tag, err)
}

// Result is the outcome of Find.
type Result struct {
	// Perturbed holds the coefficients the roots were computed from.
	Perturbed []float64
	// Roots holds len(trimmed Perturbed)-1 roots.
	Roots []complex128
}

// Finder computes perturbed companion-matrix roots.
type Finder struct {
	opts Options
	dist distuv.Uniform

	mu sync.Mutex // guards dist.Src when a source was injected
}

var defaultFinder = &Finder{
	opts: DefaultOptions(),
	dist: distuv.Uniform{Min: 0, Max: DefaultMagnitude},
}

// New returns a Finder configured by opts.
// Returns ErrOptionViolation if any option was invalid.
func New(opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{
		opts: o,
		dist: distuv.Uniform{Min: 0, Max: o.Magnitude, Src: o.Source},
	}, nil
}

// Find perturbs coef and returns the perturbed coefficients and the roots
// using the default Finder (process-wide random source).
func Find(coef *ndarray.Array) (*Result, error) {
	return defaultFinder.Find(coef)
}

// Find perturbs coef and returns the perturbed coefficients and the roots.
// Implementation:
//   - Stage 1: validate coef (NotNil → Vector → non-empty → Finite).
//   - Stage 2: draw the perturbation and add it elementwise.
//   - Stage 3: solve under a panic guard, then order the roots.
//
// No partial result is returned on error.
func (f *Finder) Find(coef *ndarray.Array) (*Result, error) {
	if err := ndarray.ValidateVector(coef); err != nil {
		return nil, rootsErrorf(opFind, err)
	}
	if err := ndarray.ValidateMinLen(coef, 1); err != nil {
		return nil, rootsErrorf(opFind, err)
	}
	if err := ndarray.ValidateFinite(coef); err != nil {
		return nil, rootsErrorf(opFind, err)
	}

	perturbed := coef.Data()
	floats.Add(perturbed, f.perturbation(len(perturbed)))

	zs, err := solve(perturbed)
	if err != nil {
		return nil, rootsErrorf(opFind, err)
	}
	if f.opts.Sort {
		slices.SortFunc(zs, compareComplex)
	}

	return &Result{Perturbed: perturbed, Roots: zs}, nil
}

// perturbation draws n entries from U[0, magnitude).
func (f *Finder) perturbation(n int) []float64 {
	u := make([]float64, n)
	if f.opts.Magnitude == 0 {
		return u
	}
	if f.dist.Src != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
	}
	for i := range u {
		u[i] = f.dist.Rand()
	}

	return u
}

// solve returns the roots of the polynomial with coefficients c.
// Backend panics are converted to ndarray.ErrComputation.
func solve(c []float64) (zs []complex128, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Debugf("root computation failed for degree %d: %v", len(c)-1, p)
			zs, err = nil, fmt.Errorf("%w: %v", ndarray.ErrComputation, p)
		}
	}()

	c = trimTrailingZeros(c)
	switch len(c) {
	case 1:
		return []complex128{}, nil
	case 2:
		zs = []complex128{complex(-c[0]/c[1], 0)}
	default:
		frob, berr := companion.BuildDense(c)
		if berr != nil {
			return nil, berr
		}
		var eig mat.Eigen
		if ok := eig.Factorize(frob, mat.EigenNone); !ok {
			log.Debugf("eigen factorization did not converge for degree %d", len(c)-1)
			return nil, ErrEigenFailed
		}
		zs = eig.Values(nil)
	}

	for _, z := range zs {
		if !isFinite(z) {
			return nil, fmt.Errorf("root %v: %w", z, ErrEigenFailed)
		}
	}

	return zs, nil
}

// trimTrailingZeros drops exact zero high-degree coefficients, keeping at least one.
func trimTrailingZeros(c []float64) []float64 {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

func compareComplex(a, b complex128) int {
	if r := cmp.Compare(real(a), real(b)); r != 0 {
		return r
	}

	return cmp.Compare(imag(a), imag(b))
}

func isFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}
