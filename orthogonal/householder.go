// SPDX-License-Identifier: MIT

// Package orthogonal - Householder reflection.
//
// Purpose:
//   - H = I − 2uuᵀ reflects across the hyperplane orthogonal to the unit
//     vector u. Only u is stored: applying H costs one dot product and one
//     scaled subtraction, O(n) instead of O(n²).
//   - A reflection is symmetric and self-inverse, and its determinant is
//     −1 for every u.

package orthogonal

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/vector"
)

// Householder is an immutable reflection H = I − 2uuᵀ for a unit vector u.
// Built by NewHouseholder.
type Householder struct {
	u []float64 // unit reflector, len >= 1
}

// Compile-time conformance.
var (
	_ mat.EntryReadable = (*Householder)(nil)
	_ mat.Symmetric     = (*Householder)(nil)
	_ mat.Orthogonal    = (*Householder)(nil)
	_ mat.Determinantal = (*Householder)(nil)
	_ fmt.Stringer      = (*Householder)(nil)
)

// NewHouseholder builds the reflection across the hyperplane orthogonal to
// v. v is normalized internally; it does not need unit length, but it must
// have a direction: the zero vector fails with ErrZeroReflection.
// Complexity: O(n).
func NewHouseholder(v *vector.Vector) (*Householder, error) {
	norm := v.Norm2()
	if norm == 0 {
		return nil, fmt.Errorf("NewHouseholder: %w", ErrZeroReflection)
	}
	u := v.Values()
	for i := range u {
		u[i] /= norm
	}

	return &Householder{u: u}, nil
}

// Rows returns the order. Complexity: O(1).
func (m *Householder) Rows() int { return len(m.u) }

// Cols returns the order. Complexity: O(1).
func (m *Householder) Cols() int { return len(m.u) }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Householder) SymmetricOrder() int { return len(m.u) }

// OrthogonalOrder returns the order. Complexity: O(1).
func (m *Householder) OrthogonalOrder() int { return len(m.u) }

// At returns δ(row,col) − 2·u[row]·u[col]. Complexity: O(1).
func (m *Householder) At(row, col int) (float64, error) {
	n := len(m.u)
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("orthogonal: At(%d,%d) on order %d: %w", row, col, n, ErrOutOfRange)
	}
	v := -2 * m.u[row] * m.u[col]
	if row == col {
		v++
	}

	return v, nil
}

// EntryNormMax returns the maximum absolute entry: the larger of the
// diagonal maximum |1 − 2u[i]²| and the off-diagonal maximum, which is
// twice the product of the two largest |u[i]|. Complexity: O(n).
func (m *Householder) EntryNormMax() float64 {
	var maxDiag, first, second float64
	for _, ui := range m.u {
		d := 1 - 2*ui*ui
		if d < 0 {
			d = -d
		}
		if d > maxDiag {
			maxDiag = d
		}
		if ui < 0 {
			ui = -ui
		}
		switch {
		case ui > first:
			first, second = ui, first
		case ui > second:
			second = ui
		}
	}
	if off := 2 * first * second; off > maxDiag {
		return off // len(u) == 1 leaves second at 0, never winning here
	}

	return maxDiag
}

// Operate returns H*x = x − 2(u·x)u. Complexity: O(n).
func (m *Householder) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	out := x.Values()
	var dot float64
	for i, ui := range m.u {
		dot += ui * out[i]
	}
	scale := 2 * dot
	for i, ui := range m.u {
		out[i] -= scale * ui
	}

	return vector.New(out)
}

// OperateTranspose delegates to Operate: the transpose is this matrix.
func (m *Householder) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself: a zero-cost identity.
func (m *Householder) Transpose() mat.Matrix { return m }

// Inverse returns the receiver itself: reflecting twice restores the
// original, so H is self-inverse.
func (m *Householder) Inverse() (mat.Matrix, bool) { return m, true }

// Determinant returns -1: one reflection flips orientation, whatever the
// reflector. Complexity: O(1).
func (m *Householder) Determinant() float64 { return -1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *Householder) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns -1. Complexity: O(1).
func (m *Householder) SignOfDeterminant() int { return -1 }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *Householder) String() string { return mat.Format(m) }
