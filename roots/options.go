// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultMagnitude is the exclusive upper bound of each perturbation entry.
const DefaultMagnitude = 1e-10

// seedStream is the fixed PCG stream used by WithSeed.
const seedStream = 0x9e3779b97f4a7c15

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("roots: invalid option supplied")

// Option configures a Finder via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Finder configuration.
type Options struct {
	// Source feeds the perturbation draws. nil means the process-wide
	// math/rand/v2 generator.
	Source rand.Source

	// Magnitude is the exclusive upper bound of each perturbation entry.
	// Zero disables perturbation.
	Magnitude float64

	// Sort orders roots by real part, then imaginary part.
	Sort bool

	err error
}

// DefaultOptions returns the global source, DefaultMagnitude and sorted output.
func DefaultOptions() Options {
	return Options{Magnitude: DefaultMagnitude, Sort: true}
}

// WithSource injects the random source used for perturbation.
// A nil source is an ErrOptionViolation.
func WithSource(src rand.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithSeed uses a PCG source seeded with seed, making perturbations
// reproducible across runs.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seedStream))
}

// WithMagnitude sets the perturbation bound. m must be finite and ≥ 0.
func WithMagnitude(m float64) Option {
	return func(o *Options) {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			o.err = fmt.Errorf("%w: magnitude must be finite and ≥ 0 (%g)", ErrOptionViolation, m)
			return
		}
		o.Magnitude = m
	}
}

// WithoutSort keeps the order produced by the eigen solver.
func WithoutSort() Option {
	return func(o *Options) { o.Sort = false }
}
