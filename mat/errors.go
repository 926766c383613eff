// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// All public entry points return these sentinels, wrapped with call-site
// context via %w where coordinates help diagnostics; tests match them with
// errors.Is. Panics are reserved for programmer errors (mis-wired skeletons).

package mat

import "errors"

var (
	// ErrBadShape is returned when a requested order or shape is invalid
	// (e.g. order < 1).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrDimensionMismatch indicates an operand whose length does not match
	// the matrix's expected operand size.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrOutOfRange indicates an entry index outside [0,rows) x [0,cols).
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrNotFinite is returned by strict builder entry points when a NaN or
	// ±Inf value is supplied. Sanitizing entry points never return it.
	ErrNotFinite = errors.New("mat: value is NaN or Inf")

	// ErrOutOfTriangle indicates a write inside the matrix but outside the
	// strictly-lower triangle of a unitriangular builder (the diagonal is
	// the implicit constant 1 and the upper triangle the implicit zero;
	// neither is mutable).
	ErrOutOfTriangle = errors.New("mat: entry outside the strictly-lower triangle")

	// ErrBuilderReleased indicates use of a builder after Build. Builders
	// are strictly single-use.
	ErrBuilderReleased = errors.New("mat: builder already released")

	// ErrTooLarge indicates that the requested packed storage exceeds the
	// representable element count; surfaced before any allocation.
	ErrTooLarge = errors.New("mat: storage size not representable")
)
