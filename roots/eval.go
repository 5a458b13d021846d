// SPDX-License-Identifier: MIT

package roots

import "math/cmplx"

// Eval evaluates c_0 + c_1·z + … + c_n·z^n at z using Horner's scheme.
// An empty coefficient slice evaluates to 0.
func Eval(coef []float64, z complex128) complex128 {
	var acc complex128
	for i := len(coef) - 1; i >= 0; i-- {
		acc = acc*z + complex(coef[i], 0)
	}

	return acc
}

// MaxResidual returns max |p(r)| over the roots, where p has the perturbed
// coefficients. Zero when there are no roots.
func (r *Result) MaxResidual() float64 {
	var worst float64
	for _, z := range r.Roots {
		if v := cmplx.Abs(Eval(r.Perturbed, z)); v > worst {
			worst = v
		}
	}

	return worst
}
