// SPDX-License-Identifier: MIT

// Package band - diagonal matrix.
//
// Purpose:
//   - Store the n diagonal entries; everything off-diagonal is an exact
//     structural zero.
//   - The determinant is the plain product of the entries, accumulated
//     through mat.DetAccumulator at Build so it survives entries far
//     outside the float64 product range.
//   - The inverse is the diagonal of reciprocals, memoized lazily; a zero
//     entry makes the matrix singular and the inverse absent.

package band

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// Diagonal is an immutable diagonal matrix. Built by DiagonalBuilder.
type Diagonal struct {
	bd   matdim.BandDim // bandwidths (0, 0)
	diag []float64
	det  mat.DetAccumulator // folded eagerly at Build
	inv  mat.LazyInverse
}

// Compile-time conformance.
var (
	_ mat.Banded        = (*Diagonal)(nil)
	_ mat.Symmetric     = (*Diagonal)(nil)
	_ mat.Invertible    = (*Diagonal)(nil)
	_ mat.Determinantal = (*Diagonal)(nil)
	_ fmt.Stringer      = (*Diagonal)(nil)
)

// newDiagonal assembles a Diagonal around an owned entry slice and wires
// the reciprocal-inverse hook.
func newDiagonal(bd matdim.BandDim, diag []float64) *Diagonal {
	m := &Diagonal{bd: bd, diag: diag}
	for _, v := range diag {
		m.det.Accumulate(v)
	}
	m.inv.Init(func() (mat.Matrix, bool) {
		if m.det.IsSingular() {
			return nil, false
		}
		rec := make([]float64, len(m.diag))
		for i, v := range m.diag {
			rec[i] = 1 / v
		}
		r := newDiagonal(m.bd, rec)
		// The inverse of the inverse is the origin; publish it up front so
		// the round trip is reference-identical.
		r.inv.Prime(m, true)

		return r, true
	})

	return m
}

// Rows returns the order. Complexity: O(1).
func (m *Diagonal) Rows() int { return m.bd.Order() }

// Cols returns the order. Complexity: O(1).
func (m *Diagonal) Cols() int { return m.bd.Order() }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Diagonal) SymmetricOrder() int { return m.bd.Order() }

// BandDim returns the (0, 0)-band shape descriptor. Complexity: O(1).
func (m *Diagonal) BandDim() matdim.BandDim { return m.bd }

// At returns diag[row] on the diagonal and exact zero elsewhere in the
// matrix. Complexity: O(1).
func (m *Diagonal) At(row, col int) (float64, error) {
	if !m.bd.Dim().Contains(row, col) {
		return 0, fmt.Errorf("band: At(%d,%d) on %s: %w", row, col, m.bd, ErrOutOfRange)
	}
	if row == col {
		return m.diag[row], nil
	}

	return 0, nil
}

// EntryNormMax returns the maximum absolute diagonal entry.
// Complexity: O(n).
func (m *Diagonal) EntryNormMax() float64 { return sliceAbsMax(m.diag) }

// Operate returns M*x, an entrywise product. Complexity: O(n).
func (m *Diagonal) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = m.diag[i] * v
	}

	return vector.New(out)
}

// OperateTranspose delegates to Operate: the transpose is this matrix.
func (m *Diagonal) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself: a zero-cost identity.
func (m *Diagonal) Transpose() mat.Matrix { return m }

// Inverse returns the memoized diagonal of reciprocals, or (nil, false)
// when any entry is zero. Complexity: O(n) first call, O(1) after.
func (m *Diagonal) Inverse() (mat.Matrix, bool) { return m.inv.Get() }

// Determinant returns the signed product of the diagonal entries,
// materialized from the scaled accumulator. Complexity: O(1) amortized.
func (m *Diagonal) Determinant() float64 { return m.det.Determinant() }

// LogAbsDeterminant returns ln|det|; -Inf when singular. Complexity: O(1).
func (m *Diagonal) LogAbsDeterminant() float64 { return m.det.LogAbsDeterminant() }

// SignOfDeterminant returns -1, 0 or +1. Complexity: O(1).
func (m *Diagonal) SignOfDeterminant() int { return m.det.SignOfDeterminant() }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *Diagonal) String() string { return mat.Format(m) }

// DiagonalBuilder stages the diagonal entries for exactly one Diagonal.
// Single-use, single-thread.
type DiagonalBuilder struct {
	bd   matdim.BandDim
	diag []float64 // nil once released
}

// NewDiagonalBuilder creates a builder for the zero diagonal matrix of the
// given order. Complexity: O(n).
func NewDiagonalBuilder(order int) (*DiagonalBuilder, error) {
	bd, err := matdim.NewDiagonalDim(order)
	if err != nil {
		return nil, err
	}

	return &DiagonalBuilder{bd: bd, diag: make([]float64, order)}, nil
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *DiagonalBuilder) CanBeUsed() bool { return b.diag != nil }

// Set stores the sanitized value at (row, col). Off-diagonal positions
// inside the matrix return ErrOutOfBand; positions outside the matrix
// return ErrOutOfRange. Complexity: O(1).
func (b *DiagonalBuilder) Set(row, col int, v float64) error {
	if b.diag == nil {
		return fmt.Errorf("DiagonalBuilder.Set: %w", ErrBuilderReleased)
	}
	switch matdim.Position(row, col, b.bd) {
	case matdim.PosDiagonal:
		b.diag[row] = vector.Sanitize(v)
	case matdim.PosOutOfBand:
		return fmt.Errorf("DiagonalBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfBand)
	default: // PosOutOfMatrix
		return fmt.Errorf("DiagonalBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfRange)
	}

	return nil
}

// SetStrict stores v, rejecting NaN and ±Inf with ErrNotFinite.
// Complexity: O(1).
func (b *DiagonalBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("DiagonalBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// SetDiagonal stores the sanitized value at (i, i). Complexity: O(1).
func (b *DiagonalBuilder) SetDiagonal(i int, v float64) error {
	return b.Set(i, i, v)
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build. Complexity: O(n).
func (b *DiagonalBuilder) Copy() (*DiagonalBuilder, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("DiagonalBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := &DiagonalBuilder{bd: b.bd, diag: make([]float64, len(b.diag))}
	copy(cp.diag, b.diag)

	return cp, nil
}

// Build freezes the staged entries into a Diagonal, folding the determinant
// once, and releases the builder. Complexity: O(n).
func (b *DiagonalBuilder) Build() (*Diagonal, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("DiagonalBuilder.Build: %w", ErrBuilderReleased)
	}
	diag := b.diag
	b.diag = nil

	return newDiagonal(b.bd, diag), nil
}
