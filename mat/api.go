// SPDX-License-Identifier: MIT

// Package mat - public interface surface.
//
// Purpose:
//   - Declare the base operator contract and the capability interfaces that
//     concrete types compose (here and in the band/orthogonal packages).
//   - Keep capability checks static: code that needs O(1) entry access asks
//     for EntryReadable, code that needs a zero-cost transpose asks for
//     Symmetric, and so on.

package mat

import (
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// Matrix is a rows×cols linear operator.
//
// Contract:
//   - Operate and OperateTranspose fail with ErrDimensionMismatch when the
//     operand length does not match Cols (respectively Rows).
//   - Transpose is lazy, cached, and identity-correct: repeated calls return
//     the same instance, and m.Transpose().Transpose() returns m itself.
//   - Every implementation is immutable once built and safe for concurrent
//     reads; all methods are pure functions of the instance and arguments.
type Matrix interface {
	// Rows returns the row count. Complexity: O(1).
	Rows() int

	// Cols returns the column count. Complexity: O(1).
	Cols() int

	// Operate returns M*x as a new vector.
	// Returns ErrDimensionMismatch when x.Len() != Cols().
	Operate(x *vector.Vector) (*vector.Vector, error)

	// OperateTranspose returns Mᵀ*x as a new vector.
	// Returns ErrDimensionMismatch when x.Len() != Rows().
	OperateTranspose(x *vector.Vector) (*vector.Vector, error)

	// Transpose returns the cached transpose.
	Transpose() Matrix
}

// EntryReadable is a Matrix with O(1) value lookup.
type EntryReadable interface {
	Matrix

	// At returns the entry at (row, col).
	// Returns ErrOutOfRange outside [0,Rows()) x [0,Cols()).
	// Complexity: O(1).
	At(row, col int) (float64, error)

	// EntryNormMax returns the maximum absolute entry value.
	EntryNormMax() float64
}

// Banded is an EntryReadable with an explicit band shape; every entry
// outside the band is the implicit zero.
type Banded interface {
	EntryReadable

	// BandDim returns the (order, lower, upper) shape descriptor.
	// Complexity: O(1).
	BandDim() matdim.BandDim
}

// Symmetric marks square matrices whose Transpose is a zero-cost identity:
// the method returns the receiver itself, and OperateTranspose delegates to
// Operate. The guarantee is established at construction, not re-checked at
// call time.
type Symmetric interface {
	Matrix

	// SymmetricOrder returns the square size.
	// Complexity: O(1).
	SymmetricOrder() int
}

// Invertible exposes a cached inverse. Singularity is a normal,
// data-dependent outcome reported through the comma-ok form, never an error.
type Invertible interface {
	Matrix

	// Inverse returns the cached inverse and true, or (nil, false) when the
	// matrix is singular. Repeated calls return the same instance.
	Inverse() (Matrix, bool)
}

// Determinantal exposes the determinant in three forms. Implementations use
// the scaled accumulator (DetAccumulator), so LogAbsDeterminant stays finite
// and accurate even when Determinant itself would overflow or underflow.
type Determinantal interface {
	// Determinant returns det(M); ±Inf or 0 when the true value is not
	// representable — prefer LogAbsDeterminant in that regime.
	Determinant() float64

	// LogAbsDeterminant returns ln|det(M)|; -Inf for a singular matrix.
	LogAbsDeterminant() float64

	// SignOfDeterminant returns -1, 0 or +1.
	SignOfDeterminant() int
}

// Orthogonal marks square matrices whose transpose equals their inverse.
//
// Contract: Inverse() returns (Transpose(), true) and the two are the
// identical object, so callers may rely on reference identity for no-op
// detection.
type Orthogonal interface {
	Invertible

	// OrthogonalOrder returns the square size.
	// Complexity: O(1).
	OrthogonalOrder() int
}
