// SPDX-License-Identifier: MIT

// Package mat - constant matrices: zero and identity.
//
// Purpose:
//   - Allocation-free operands for composition and tests. Neither stores
//     entries; both answer every query from the shape alone.

package mat

import (
	"fmt"
	"math"

	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// Zero is the square all-zeros matrix. It is Symmetric (transpose is
// identity) and Determinantal with the singular outcome: det 0,
// ln|det| = -Inf, sign 0.
type Zero struct {
	order int
}

// Compile-time conformance.
var (
	_ EntryReadable = (*Zero)(nil)
	_ Symmetric     = (*Zero)(nil)
	_ Determinantal = (*Zero)(nil)
)

// NewZero returns the order×order zero matrix.
// Complexity: O(1).
func NewZero(order int) (*Zero, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewZero(%d): %w", order, ErrBadShape)
	}

	return &Zero{order: order}, nil
}

// Rows returns the order. Complexity: O(1).
func (m *Zero) Rows() int { return m.order }

// Cols returns the order. Complexity: O(1).
func (m *Zero) Cols() int { return m.order }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Zero) SymmetricOrder() int { return m.order }

// At returns 0 inside the shape. Complexity: O(1).
func (m *Zero) At(row, col int) (float64, error) {
	if err := checkIndex("At", row, col, m.order, m.order); err != nil {
		return 0, err
	}

	return 0, nil
}

// EntryNormMax returns 0. Complexity: O(1).
func (m *Zero) EntryNormMax() float64 { return 0 }

// Operate returns the zero vector of matching length.
// Complexity: O(order).
func (m *Zero) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}

	return vector.New(make([]float64, m.order))
}

// OperateTranspose delegates to Operate.
func (m *Zero) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself.
func (m *Zero) Transpose() Matrix { return m }

// Determinant returns 0. Complexity: O(1).
func (m *Zero) Determinant() float64 { return 0 }

// LogAbsDeterminant returns -Inf. Complexity: O(1).
func (m *Zero) LogAbsDeterminant() float64 { return math.Inf(-1) }

// SignOfDeterminant returns 0. Complexity: O(1).
func (m *Zero) SignOfDeterminant() int { return 0 }

// String renders rows for diagnostics. Complexity: O(order²).
func (m *Zero) String() string { return formatRows(m) }

// Identity is the square unit matrix. It is Symmetric, Orthogonal (its own
// transpose and inverse, all the identical object) and Determinantal
// (det 1). It is also Banded with the diagonal shape.
type Identity struct {
	order int
}

// Compile-time conformance.
var (
	_ Banded        = (*Identity)(nil)
	_ Symmetric     = (*Identity)(nil)
	_ Orthogonal    = (*Identity)(nil)
	_ Determinantal = (*Identity)(nil)
)

// NewIdentity returns the order×order unit matrix.
// Complexity: O(1).
func NewIdentity(order int) (*Identity, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", order, ErrBadShape)
	}

	return &Identity{order: order}, nil
}

// Rows returns the order. Complexity: O(1).
func (m *Identity) Rows() int { return m.order }

// Cols returns the order. Complexity: O(1).
func (m *Identity) Cols() int { return m.order }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Identity) SymmetricOrder() int { return m.order }

// OrthogonalOrder returns the order. Complexity: O(1).
func (m *Identity) OrthogonalOrder() int { return m.order }

// BandDim returns the bandwidth-0 shape. Complexity: O(1).
func (m *Identity) BandDim() matdim.BandDim { return matdim.MustBandDim(m.order, 0, 0) }

// At returns 1 on the diagonal, 0 elsewhere. Complexity: O(1).
func (m *Identity) At(row, col int) (float64, error) {
	if err := checkIndex("At", row, col, m.order, m.order); err != nil {
		return 0, err
	}
	if row == col {
		return 1, nil
	}

	return 0, nil
}

// EntryNormMax returns 1. Complexity: O(1).
func (m *Identity) EntryNormMax() float64 { return 1 }

// Operate returns x itself: vectors are immutable, so the no-op product
// needs no copy. Complexity: O(1).
func (m *Identity) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}

	return x, nil
}

// OperateTranspose delegates to Operate.
func (m *Identity) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself.
func (m *Identity) Transpose() Matrix { return m }

// Inverse returns the receiver itself: transpose and inverse coincide on
// the identical object. Complexity: O(1).
func (m *Identity) Inverse() (Matrix, bool) { return m, true }

// Determinant returns 1. Complexity: O(1).
func (m *Identity) Determinant() float64 { return 1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *Identity) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns 1. Complexity: O(1).
func (m *Identity) SignOfDeterminant() int { return 1 }

// String renders rows for diagnostics. Complexity: O(order²).
func (m *Identity) String() string { return formatRows(m) }
