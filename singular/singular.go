// SPDX-License-Identifier: MIT

package singular

import (
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/polyroot/ndarray"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var log = logging.Logger("singular")

// Operation tags for error wrapping.
const (
	opInspect = "Inspect"
	opDense   = "IsNonsingularDense"
)

func singularErrorf(tag string, err error) error {
	return fmt.Errorf("singular.%s: %w", tag, err)
}

// Report is the full outcome of a check.
type Report struct {
	// Det is the determinant of the matrix.
	Det float64
	// Threshold is the value |Det| was compared against. In Scaled mode it
	// may under- or overflow; the verdict itself is computed in log space.
	Threshold float64
	// Nonsingular is the verdict.
	Nonsingular bool
	// Mode is the threshold mode used.
	Mode Mode
}

// IsNonsingular reports whether the square matrix a is nonsingular.
// (false, nil) means singular; any error means the input was invalid.
func IsNonsingular(a *ndarray.Array, opts ...Option) (bool, error) {
	r, err := Inspect(a, opts...)
	if err != nil {
		return false, err
	}

	return r.Nonsingular, nil
}

// Inspect validates a, computes its determinant and applies the threshold.
// Implementation:
//   - Stage 1: resolve options; ValidateSquare; ValidateFinite.
//   - Stage 2: 0×0 short-circuits to det = 1; otherwise copy into gonum
//     and evaluate under a panic guard.
func Inspect(a *ndarray.Array, opts ...Option) (Report, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Report{}, err
	}
	if err = ndarray.ValidateSquare(a); err != nil {
		return Report{}, singularErrorf(opInspect, err)
	}
	if err = ndarray.ValidateFinite(a); err != nil {
		return Report{}, singularErrorf(opInspect, err)
	}
	if a.Len() == 0 {
		return emptyReport(o), nil
	}
	d, err := a.Dense()
	if err != nil {
		return Report{}, singularErrorf(opInspect, err)
	}

	r, err := evaluate(d, o)
	if err != nil {
		return Report{}, singularErrorf(opInspect, err)
	}

	return r, nil
}

// IsNonsingularDense is IsNonsingular for any gonum matrix.
func IsNonsingularDense(m mat.Matrix, opts ...Option) (bool, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, singularErrorf(opDense, ndarray.ErrNilArray)
	}
	rows, cols := m.Dims()
	if rows != cols {
		return false, singularErrorf(opDense, fmt.Errorf("%dx%d: %w", rows, cols, ndarray.ErrNonSquare))
	}
	if rows == 0 {
		return emptyReport(o).Nonsingular, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false, singularErrorf(opDense, fmt.Errorf("(%d,%d): %w", i, j, ndarray.ErrNaNInf))
			}
		}
	}

	r, err := evaluate(m, o)
	if err != nil {
		return false, singularErrorf(opDense, err)
	}

	return r.Nonsingular, nil
}

// emptyReport is the verdict for a 0×0 matrix. Its determinant is the
// empty product 1, and so is the row-norm product in Scaled mode.
func emptyReport(o Options) Report {
	return Report{Det: 1, Threshold: o.Epsilon, Nonsingular: 1 >= o.Epsilon, Mode: o.Mode}
}

// evaluate runs the determinant test on a validated, finite, square m.
// Any panic raised by the numeric backend is converted to ErrComputation.
func evaluate(m mat.Matrix, o Options) (r Report, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Debugf("determinant failed: %v", p)
			r, err = Report{}, fmt.Errorf("%w: %v", ndarray.ErrComputation, p)
		}
	}()

	r = Report{Det: mat.Det(m), Mode: o.Mode}
	if o.Mode == Absolute {
		r.Threshold = o.Epsilon
		r.Nonsingular = !(math.Abs(r.Det) < o.Epsilon)
		return r, nil
	}

	// Scaled: |det| ≥ eps·Π‖row_i‖₂, compared as logarithms.
	n, _ := m.Dims()
	logBound := math.Log(o.Epsilon)
	for i := 0; i < n; i++ {
		norm := floats.Norm(mat.Row(nil, i, m), 2)
		if norm == 0 {
			r.Threshold = 0
			return r, nil // zero row: singular
		}
		logBound += math.Log(norm)
	}
	logDet, sign := mat.LogDet(m)
	r.Threshold = math.Exp(logBound)
	r.Nonsingular = sign != 0 && logDet >= logBound

	return r, nil
}
