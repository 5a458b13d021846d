// SPDX-License-Identifier: MIT

package singular

import (
	"errors"
	"fmt"
	"math"
)

// MachineEpsilon is the float64 unit roundoff (2⁻⁵²): the gap between 1.0
// and the next representable value.
const MachineEpsilon = 0x1p-52

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("singular: invalid option supplied")

// Mode selects how the threshold is derived.
type Mode int

const (
	// Absolute compares |det| against eps directly. Default.
	Absolute Mode = iota
	// Scaled compares |det| against eps·Π‖row_i‖₂.
	Scaled
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Scaled {
		return "scaled"
	}

	return "absolute"
}

// Option configures the check via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// check runs.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Epsilon is the base threshold; MachineEpsilon by default.
	Epsilon float64

	// Mode selects Absolute (default) or Scaled thresholds.
	Mode Mode

	err error
}

// DefaultOptions returns MachineEpsilon in Absolute mode.
func DefaultOptions() Options {
	return Options{Epsilon: MachineEpsilon, Mode: Absolute}
}

// WithEpsilon replaces the base threshold. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be finite and > 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithScaledThreshold switches to the Hadamard-scaled threshold.
func WithScaledThreshold() Option {
	return func(o *Options) { o.Mode = Scaled }
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
