// SPDX-License-Identifier: MIT
// Package matdim: sentinel error set.

package matdim

import "errors"

var (
	// ErrBadDim is returned when rows or cols (or a square order) is < 1.
	ErrBadDim = errors.New("matdim: dimension must be >= 1")

	// ErrBadBand is returned when a bandwidth is negative or does not fit
	// the order (bandwidth must be <= order-1).
	ErrBadBand = errors.New("matdim: invalid bandwidth")

	// ErrTooLarge is returned when the packed element count rows*cols or
	// order*(lower+upper+1) is not representable in int.
	ErrTooLarge = errors.New("matdim: storage size not representable")
)
