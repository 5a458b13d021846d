// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with an explicit shape (0-d, 1-d, 2-d, ...).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every constructor copy-on-ingest so callers never alias internal storage.
//
// Complexity quicksheet:
//   - New/Zeros: O(size); At/Set: O(ndim); Clone/Data: O(size).

package ndarray

import (
	"fmt"
	"strings"
)

// method tags used in error wrappers
const (
	ctxNew      = "New"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "FromRows"
	ctxIdentity = "Identity"
)

// arrayErrorf wraps err with an Array method tag, preserving the sentinel via %w.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a row-major n-dimensional array of float64 values.
// shape holds one extent per dimension; data holds prod(shape) elements.
// A 0-d Array (empty shape) holds exactly one element.
type Array struct {
	shape []int     // extents, len(shape) == ndim
	data  []float64 // flat backing storage, len == prod(shape)
}

// New creates an Array with the given shape, copying data.
// Stage 1 (Validate): every extent ≥ 0 and len(data) == prod(shape).
// Stage 2 (Prepare): copy shape and data so the caller keeps ownership.
// Complexity: O(size) time and memory.
func New(shape []int, data []float64) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if len(data) != size {
		return nil, arrayErrorf(ctxNew, fmt.Errorf("len(data)=%d, want %d: %w", len(data), size, ErrBadShape))
	}

	a := &Array{
		shape: append([]int(nil), shape...),
		data:  make([]float64, size),
	}
	copy(a.data, data)

	return a, nil
}

// Zeros creates a zero-filled Array with the given extents.
// Returns ErrBadShape on a negative extent.
func Zeros(shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	return &Array{shape: append([]int(nil), shape...), data: make([]float64, size)}, nil
}

// Scalar returns a 0-d Array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// Vector returns a 1-d Array holding a copy of vals.
func Vector(vals ...float64) *Array {
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Array{shape: []int{len(vals)}, data: data}
}

// FromRows builds a 2-d Array from a slice of equally long rows.
// An empty rows slice yields a 0×0 Array.
// Returns ErrBadShape when rows are ragged.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Array, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(ctxFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		data = append(data, row...)
	}

	return &Array{shape: []int{r, c}, data: data}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape for n < 0.
func Identity(n int) (*Array, error) {
	if n < 0 {
		return nil, arrayErrorf(ctxIdentity, ErrBadShape)
	}
	a := &Array{shape: []int{n, n}, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		a.data[i*n+i] = 1.0 // unit diagonal
	}

	return a, nil
}

// sizeOf returns prod(shape) or ErrBadShape on a negative extent.
func sizeOf(shape []int) (int, error) {
	size := 1
	for d, ext := range shape {
		if ext < 0 {
			return 0, fmt.Errorf("extent %d of dim %d: %w", ext, d, ErrBadShape)
		}
		size *= ext
	}

	return size, nil
}

// Shape returns a copy of the extents.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Len returns the extent of the first dimension, or 0 for a scalar.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}

	return a.shape[0]
}

// offset computes the flat index for idx or returns ErrOutOfRange.
// Stage 1 (Validate): len(idx) == ndim and 0 ≤ idx[d] < shape[d].
// Stage 2 (Execute): fold with row-major strides.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%d indices for %d dims: %w", len(idx), len(a.shape), ErrOutOfRange)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, fmt.Errorf("index %d of dim %d (extent %d): %w", i, d, a.shape[d], ErrOutOfRange)
		}
		off = off*a.shape[d] + i
	}

	return off, nil
}

// At returns the element at idx.
// Returns ErrOutOfRange on a wrong index count or an index outside bounds.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, err)
	}

	return a.data[off], nil
}

// Set assigns v at idx.
// Returns ErrOutOfRange on a wrong index count or an index outside bounds.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[off] = v

	return nil
}

// Data returns a copy of the flat row-major elements.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy of the Array.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	return &Array{shape: a.Shape(), data: a.Data()}
}

// String implements fmt.Stringer. Vectors print as [a, b], matrices
// row by row, anything else as shape plus flat data. An array with no
// elements, the zero value included, prints as [].
func (a *Array) String() string {
	if len(a.data) == 0 {
		return "[]"
	}
	var sb strings.Builder
	switch len(a.shape) {
	case 0:
		fmt.Fprintf(&sb, "%g", a.data[0])
	case 1:
		writeRow(&sb, a.data)
	case 2:
		c := a.shape[1]
		for i := 0; i < a.shape[0]; i++ {
			writeRow(&sb, a.data[i*c:(i+1)*c])
			sb.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&sb, "shape%v ", a.shape)
		writeRow(&sb, a.data)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []float64) {
	sb.WriteByte('[')
	for j, v := range row {
		if j > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%g", v)
	}
	sb.WriteByte(']')
}
