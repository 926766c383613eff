// SPDX-License-Identifier: MIT

// Package matdim - square band dimension value object.
//
// Purpose:
//   - Describe (order, lower, upper) band shapes with validated bandwidths
//     and an overflow-checked packed-storage predicate.
//   - Derive triangular/diagonal classification from the bandwidths alone.

package matdim

import (
	"fmt"
	"math"
)

// BandDim is an immutable square band shape: a matrix of the given order
// whose nonzero entries are confined to lower sub-diagonals below and
// upper super-diagonals above the main diagonal.
// The zero BandDim is not valid; use NewBandDim.
type BandDim struct {
	order int // square size, >= 1
	lower int // lower bandwidth, in [0, order-1]
	upper int // upper bandwidth, in [0, order-1]
}

// NewBandDim validates and builds a band shape descriptor.
// Returns ErrBadDim when order < 1, ErrBadBand when a bandwidth is negative
// or >= order, and ErrTooLarge when order*(lower+upper+1) overflows int
// (the packed arrays could not be allocated).
// Complexity: O(1).
func NewBandDim(order, lower, upper int) (BandDim, error) {
	if order < 1 {
		return BandDim{}, fmt.Errorf("NewBandDim(%d,%d,%d): %w", order, lower, upper, ErrBadDim)
	}
	if lower < 0 || lower >= order || upper < 0 || upper >= order {
		return BandDim{}, fmt.Errorf("NewBandDim(%d,%d,%d): %w", order, lower, upper, ErrBadBand)
	}
	// Packed storage holds lower+upper+1 strided rows of length order.
	if width := lower + upper + 1; order > math.MaxInt/width {
		return BandDim{}, fmt.Errorf("NewBandDim(%d,%d,%d): %w", order, lower, upper, ErrTooLarge)
	}

	return BandDim{order: order, lower: lower, upper: upper}, nil
}

// NewDiagonalDim builds the bandwidth-0 shape of the given order.
// Complexity: O(1).
func NewDiagonalDim(order int) (BandDim, error) { return NewBandDim(order, 0, 0) }

// MustBandDim is NewBandDim that panics on error; for tests and examples.
func MustBandDim(order, lower, upper int) BandDim {
	bd, err := NewBandDim(order, lower, upper)
	if err != nil {
		panic(err)
	}

	return bd
}

// Order returns the square size. Complexity: O(1).
func (bd BandDim) Order() int { return bd.order }

// Lower returns the lower bandwidth. Complexity: O(1).
func (bd BandDim) Lower() int { return bd.lower }

// Upper returns the upper bandwidth. Complexity: O(1).
func (bd BandDim) Upper() int { return bd.upper }

// Dim returns the order×order rectangular view of the shape.
// Complexity: O(1).
func (bd BandDim) Dim() Dim { return Dim{rows: bd.order, cols: bd.order} }

// Transposed swaps the lower and upper bandwidths. Complexity: O(1).
func (bd BandDim) Transposed() BandDim {
	return BandDim{order: bd.order, lower: bd.upper, upper: bd.lower}
}

// Symmetrized widens both bandwidths to max(lower, upper), the smallest
// symmetric shape containing this one. Complexity: O(1).
//
// The widened shape never fails validation for bandwidths, but the packed
// storage can grow past the representable size, hence the error return.
func (bd BandDim) Symmetrized() (BandDim, error) {
	w := bd.lower
	if bd.upper > w {
		w = bd.upper
	}

	return NewBandDim(bd.order, w, w)
}

// IsDiagonal reports lower == upper == 0. Complexity: O(1).
func (bd BandDim) IsDiagonal() bool { return bd.lower == 0 && bd.upper == 0 }

// IsLowerTriangular reports upper == 0. Complexity: O(1).
func (bd BandDim) IsLowerTriangular() bool { return bd.upper == 0 }

// IsUpperTriangular reports lower == 0. Complexity: O(1).
func (bd BandDim) IsUpperTriangular() bool { return bd.lower == 0 }

// IsSymmetricShape reports lower == upper. Complexity: O(1).
func (bd BandDim) IsSymmetricShape() bool { return bd.lower == bd.upper }

// String renders "order x order, band (lower, upper)". Complexity: O(1).
func (bd BandDim) String() string {
	return fmt.Sprintf("%d x %d, band (%d, %d)", bd.order, bd.order, bd.lower, bd.upper)
}
