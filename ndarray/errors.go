// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every failure surfaced by ndarray, companion, singular and roots wraps
// exactly one of the four category sentinels below. Tests MUST check them
// via errors.Is. No kernel may panic on user-triggered error conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// Error categories. Each specific sentinel wraps exactly one of them.
var (
	// ErrType signals that the input is not the required container
	// (in practice: a nil *Array).
	ErrType = errors.New("ndarray: invalid input type")

	// ErrShape signals a wrong number of dimensions, a non-square matrix,
	// a too-short vector or an empty array.
	ErrShape = errors.New("ndarray: invalid shape")

	// ErrDegenerate signals a structurally degenerate value, e.g. a zero
	// leading coefficient.
	ErrDegenerate = errors.New("ndarray: degenerate input")

	// ErrComputation signals a failure raised by the numeric backend
	// (non-finite values, failed factorization, recovered panic).
	ErrComputation = errors.New("ndarray: computation failed")
)

// Specific sentinels.
var (
	// ErrNilArray indicates that a nil *Array was passed.
	ErrNilArray = fmt.Errorf("%w: nil array", ErrType)

	// ErrBadShape indicates a negative extent or a data length that does
	// not match the shape.
	ErrBadShape = fmt.Errorf("%w: shape does not describe data", ErrShape)

	// ErrNotVector indicates that a one-dimensional array was required.
	ErrNotVector = fmt.Errorf("%w: array is not one-dimensional", ErrShape)

	// ErrNotMatrix indicates that a two-dimensional array was required.
	ErrNotMatrix = fmt.Errorf("%w: array is not two-dimensional", ErrShape)

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrTooShort indicates that a vector has fewer elements than required.
	ErrTooShort = fmt.Errorf("%w: vector too short", ErrShape)

	// ErrEmpty indicates that an array has no elements.
	ErrEmpty = fmt.Errorf("%w: array is empty", ErrShape)

	// ErrOutOfRange indicates an index outside valid bounds (At/Set).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrShape)

	// ErrNaNInf indicates that a NaN or ±Inf value was encountered.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrComputation)
)

// Kind is the category of a failure.
type Kind int

// Failure categories, in the order they are checked by KindOf.
const (
	KindNone Kind = iota
	KindType
	KindShape
	KindDegenerate
	KindComputation
)

// String returns the lower-case category name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindType:
		return "type"
	case KindShape:
		return "shape"
	case KindDegenerate:
		return "degenerate"
	case KindComputation:
		return "computation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf reports the category wrapped by err.
// A nil error is KindNone; an error outside the taxonomy is
// KindComputation, since only backend failures can produce one.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrType):
		return KindType
	case errors.Is(err, ErrShape):
		return KindShape
	case errors.Is(err, ErrDegenerate):
		return KindDegenerate
	default:
		return KindComputation
	}
}
