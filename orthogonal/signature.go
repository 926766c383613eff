// SPDX-License-Identifier: MIT

// Package orthogonal - signature (sign-flip) matrix.
//
// Purpose:
//   - A diagonal of ±1 entries stored as one bool per index (false = +1).
//     Applying it flips the marked coordinates; applying it twice restores
//     them, so the matrix is its own inverse and its own transpose.
//   - Parity is tracked incrementally over Negate toggles: the determinant
//     is (−1)^{number of −1 entries}, available in O(1).

package orthogonal

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/vector"
)

// Signature is an immutable diagonal matrix of ±1 entries. Built by
// SignatureBuilder.
type Signature struct {
	neg  []bool // neg[i] means entry (i,i) is -1
	even bool   // parity of the -1 count
}

// Compile-time conformance.
var (
	_ mat.EntryReadable = (*Signature)(nil)
	_ mat.Symmetric     = (*Signature)(nil)
	_ mat.Orthogonal    = (*Signature)(nil)
	_ mat.Determinantal = (*Signature)(nil)
	_ fmt.Stringer      = (*Signature)(nil)
)

// Rows returns the order. Complexity: O(1).
func (m *Signature) Rows() int { return len(m.neg) }

// Cols returns the order. Complexity: O(1).
func (m *Signature) Cols() int { return len(m.neg) }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Signature) SymmetricOrder() int { return len(m.neg) }

// OrthogonalOrder returns the order. Complexity: O(1).
func (m *Signature) OrthogonalOrder() int { return len(m.neg) }

// At returns ±1 on the diagonal and 0 elsewhere in the matrix.
// Complexity: O(1).
func (m *Signature) At(row, col int) (float64, error) {
	n := len(m.neg)
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("orthogonal: At(%d,%d) on order %d: %w", row, col, n, ErrOutOfRange)
	}
	if row != col {
		return 0, nil
	}
	if m.neg[row] {
		return -1, nil
	}

	return 1, nil
}

// EntryNormMax returns 1. Complexity: O(1).
func (m *Signature) EntryNormMax() float64 { return 1 }

// Operate returns S*x, flipping the marked coordinates. Complexity: O(n).
func (m *Signature) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	out := x.Values()
	for i, flip := range m.neg {
		if flip {
			out[i] = -out[i]
		}
	}

	return vector.New(out)
}

// OperateTranspose delegates to Operate: the transpose is this matrix.
func (m *Signature) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself: a zero-cost identity.
func (m *Signature) Transpose() mat.Matrix { return m }

// Inverse returns the receiver itself: S*S = I, so S is self-inverse and
// the transpose/inverse identity contract holds trivially.
func (m *Signature) Inverse() (mat.Matrix, bool) { return m, true }

// Determinant returns (−1)^{number of −1 entries}. Complexity: O(1).
func (m *Signature) Determinant() float64 {
	if m.even {
		return 1
	}

	return -1
}

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *Signature) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns +1 or -1. Complexity: O(1).
func (m *Signature) SignOfDeterminant() int { return int(m.Determinant()) }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *Signature) String() string { return mat.Format(m) }

// SignatureBuilder accumulates sign flips on the identity for exactly one
// Signature. Single-use, single-thread.
type SignatureBuilder struct {
	neg  []bool // nil once released
	even bool
}

// NewSignatureBuilder creates a builder starting from the identity (all
// entries +1). Complexity: O(n).
func NewSignatureBuilder(order int) (*SignatureBuilder, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewSignatureBuilder(%d): %w", order, ErrBadShape)
	}

	return &SignatureBuilder{neg: make([]bool, order), even: true}, nil
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *SignatureBuilder) CanBeUsed() bool { return b.neg != nil }

// Negate toggles the sign of entry (i, i), updating the parity.
// Complexity: O(1).
func (b *SignatureBuilder) Negate(i int) error {
	if b.neg == nil {
		return fmt.Errorf("SignatureBuilder.Negate: %w", ErrBuilderReleased)
	}
	if i < 0 || i >= len(b.neg) {
		return fmt.Errorf("SignatureBuilder.Negate(%d) on order %d: %w", i, len(b.neg), ErrOutOfRange)
	}
	b.neg[i] = !b.neg[i]
	b.even = !b.even

	return nil
}

// Copy returns an independent builder with the same accumulated flips.
// Only legal before Build. Complexity: O(n).
func (b *SignatureBuilder) Copy() (*SignatureBuilder, error) {
	if b.neg == nil {
		return nil, fmt.Errorf("SignatureBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := &SignatureBuilder{neg: make([]bool, len(b.neg)), even: b.even}
	copy(cp.neg, b.neg)

	return cp, nil
}

// Build freezes the accumulated flips into a Signature, transferring the
// array, and releases the builder. Complexity: O(1).
func (b *SignatureBuilder) Build() (*Signature, error) {
	if b.neg == nil {
		return nil, fmt.Errorf("SignatureBuilder.Build: %w", ErrBuilderReleased)
	}
	neg := b.neg
	b.neg = nil

	return &Signature{neg: neg, even: b.even}, nil
}
