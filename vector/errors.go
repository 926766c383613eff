// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// call-site context via %w); tests match them with errors.Is. No function
// in this package panics on user-triggered conditions.

package vector

import "errors"

var (
	// ErrBadLength is returned when a requested vector length is < 1.
	ErrBadLength = errors.New("vector: length must be >= 1")

	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNotFinite is returned by strict entry points when a NaN or ±Inf
	// value is supplied. The sanitizing entry points never return it.
	ErrNotFinite = errors.New("vector: value is NaN or Inf")

	// ErrBuilderReleased indicates use of a Builder after Build (or after
	// its backing array was handed off). Builders are strictly single-use.
	ErrBuilderReleased = errors.New("vector: builder already released")
)
