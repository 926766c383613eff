// SPDX-License-Identifier: MIT

// Package band - banded lower-unitriangular matrix and its substitution
// inverse.
//
// Purpose:
//   - Store only the strictly-lower band (kl sub-diagonals); the diagonal
//     is the implicit constant 1 and everything else the implicit zero.
//   - The inverse is an operator: applying it runs a banded forward
//     substitution (back substitution for the transpose), each step
//     touching at most kl prior results, so the O(n·kl) kernel cost is
//     preserved even though L⁻¹ itself is densely lower-triangular.

package band

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// LowerUnitriangular is an immutable banded lower-unitriangular matrix.
// Built by LowerUnitriangularBuilder. det = 1 by construction, so it is
// always invertible.
type LowerUnitriangular struct {
	bd    matdim.BandDim // upper bandwidth 0 by construction
	lower []float64      // length n·kl, strictly-lower band
	lt    mat.LazyTranspose
	inv   mat.LazyInverse
}

// Compile-time conformance.
var (
	_ mat.Banded        = (*LowerUnitriangular)(nil)
	_ mat.Invertible    = (*LowerUnitriangular)(nil)
	_ mat.Determinantal = (*LowerUnitriangular)(nil)
	_ fmt.Stringer      = (*LowerUnitriangular)(nil)
)

func newLowerUnitriangular(bd matdim.BandDim, lower []float64) *LowerUnitriangular {
	m := &LowerUnitriangular{bd: bd, lower: lower}
	m.lt.Init(m, func() mat.Matrix { return mat.BandTransposeView(m) })
	m.inv.Init(func() (mat.Matrix, bool) { return newUnitriangularInverse(m), true })

	return m
}

// Rows returns the order. Complexity: O(1).
func (m *LowerUnitriangular) Rows() int { return m.bd.Order() }

// Cols returns the order. Complexity: O(1).
func (m *LowerUnitriangular) Cols() int { return m.bd.Order() }

// BandDim returns the (kl, 0)-band shape descriptor. Complexity: O(1).
func (m *LowerUnitriangular) BandDim() matdim.BandDim { return m.bd }

// At returns the entry at (row, col): stored in the lower band, the
// constant 1 on the diagonal, 0 elsewhere in the matrix.
// Complexity: O(1).
func (m *LowerUnitriangular) At(row, col int) (float64, error) {
	switch matdim.Position(row, col, m.bd) {
	case matdim.PosDiagonal:
		return 1, nil
	case matdim.PosLowerBand:
		return m.lower[matdim.LowerIndex(row, col, m.bd)], nil
	case matdim.PosOutOfBand:
		return 0, nil
	default: // PosOutOfMatrix (the upper band is empty: ku == 0)
		return 0, fmt.Errorf("band: At(%d,%d) on %s: %w", row, col, m.bd, ErrOutOfRange)
	}
}

// EntryNormMax returns the maximum absolute entry; never below 1 because of
// the unit diagonal. Complexity: O(n·kl).
func (m *LowerUnitriangular) EntryNormMax() float64 {
	if v := sliceAbsMax(m.lower); v > 1 {
		return v
	}

	return 1
}

// Operate returns L*x: out[i] = x[i] + Σ_{j∈lower band} L[i,j]·x[j].
// Complexity: O(n·kl).
func (m *LowerUnitriangular) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	n, kl := m.bd.Order(), m.bd.Lower()
	xs := x.Values()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := xs[i] // implicit unit diagonal
		lo := i - kl
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			sum += m.lower[matdim.LowerIndex(i, j, m.bd)] * xs[j]
		}
		out[i] = sum
	}

	return vector.New(out)
}

// OperateTranspose returns Lᵀ*x: out[j] = x[j] + Σ_{i∈lower band} L[i,j]·x[i].
// Complexity: O(n·kl).
func (m *LowerUnitriangular) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	n, kl := m.bd.Order(), m.bd.Lower()
	xs := x.Values()
	out := make([]float64, n)
	copy(out, xs) // implicit unit diagonal
	for i := 0; i < n; i++ {
		lo := i - kl
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			out[j] += m.lower[matdim.LowerIndex(i, j, m.bd)] * xs[i]
		}
	}

	return vector.New(out)
}

// Transpose returns the cached implicit transpose (upper unitriangular view
// over the same storage, with the swapped band shape).
func (m *LowerUnitriangular) Transpose() mat.Matrix { return m.lt.Get() }

// Inverse returns the cached substitution operator; a unitriangular matrix
// is never singular, so ok is always true.
func (m *LowerUnitriangular) Inverse() (mat.Matrix, bool) { return m.inv.Get() }

// Determinant returns 1 (unit diagonal). Complexity: O(1).
func (m *LowerUnitriangular) Determinant() float64 { return 1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *LowerUnitriangular) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns 1. Complexity: O(1).
func (m *LowerUnitriangular) SignOfDeterminant() int { return 1 }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *LowerUnitriangular) String() string { return mat.Format(m) }

// unitriangularInverse applies L⁻¹ by banded forward substitution and L⁻ᵀ
// by banded back substitution. Operator-only: L⁻¹ is densely triangular, so
// entry access is deliberately absent.
type unitriangularInverse struct {
	l  *LowerUnitriangular
	lt mat.LazyTranspose
}

var (
	_ mat.Matrix        = (*unitriangularInverse)(nil)
	_ mat.Invertible    = (*unitriangularInverse)(nil)
	_ mat.Determinantal = (*unitriangularInverse)(nil)
)

func newUnitriangularInverse(l *LowerUnitriangular) *unitriangularInverse {
	inv := &unitriangularInverse{l: l}
	inv.lt.Init(inv, func() mat.Matrix { return mat.TransposeOperator(inv) })

	return inv
}

// Rows returns the order. Complexity: O(1).
func (m *unitriangularInverse) Rows() int { return m.l.bd.Order() }

// Cols returns the order. Complexity: O(1).
func (m *unitriangularInverse) Cols() int { return m.l.bd.Order() }

// Operate solves L*y = x by forward substitution:
// y[i] = x[i] - Σ_{j∈lower band} L[i,j]·y[j].
// Complexity: O(n·kl).
func (m *unitriangularInverse) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	n, kl := m.l.bd.Order(), m.l.bd.Lower()
	xs := x.Values()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := xs[i]
		lo := i - kl
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			sum -= m.l.lower[matdim.LowerIndex(i, j, m.l.bd)] * out[j]
		}
		out[i] = sum
	}

	return vector.New(out)
}

// OperateTranspose solves Lᵀ*y = x by back substitution, iterated from the
// last row upward: y[j] = x[j] - Σ_{i∈lower band} L[i,j]·y[i].
// Complexity: O(n·kl).
func (m *unitriangularInverse) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	n, kl := m.l.bd.Order(), m.l.bd.Lower()
	out := x.Values() // start from x; subtract resolved contributions
	for i := n - 1; i >= 1; i-- {
		yi := out[i]
		lo := i - kl
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			out[j] -= m.l.lower[matdim.LowerIndex(i, j, m.l.bd)] * yi
		}
	}

	return vector.New(out)
}

// Transpose returns the cached implicit transpose of the operator.
func (m *unitriangularInverse) Transpose() mat.Matrix { return m.lt.Get() }

// Inverse returns the original matrix: (L⁻¹)⁻¹ = L, the identical object.
func (m *unitriangularInverse) Inverse() (mat.Matrix, bool) { return m.l, true }

// Determinant returns 1. Complexity: O(1).
func (m *unitriangularInverse) Determinant() float64 { return 1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *unitriangularInverse) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns 1. Complexity: O(1).
func (m *unitriangularInverse) SignOfDeterminant() int { return 1 }

// LowerUnitriangularBuilder stages the strictly-lower band for exactly one
// LowerUnitriangular. Single-use, single-thread.
type LowerUnitriangularBuilder struct {
	bd    matdim.BandDim
	lower []float64 // nil once released
}

// NewLowerUnitriangularBuilder creates a builder for the unit
// lower-triangular band matrix of the given shape. The shape must have no
// upper band: a nonzero upper bandwidth fails with ErrNotLowerTriangular.
// Complexity: O(n·kl).
func NewLowerUnitriangularBuilder(bd matdim.BandDim) (*LowerUnitriangularBuilder, error) {
	if !bd.IsLowerTriangular() {
		return nil, fmt.Errorf("NewLowerUnitriangularBuilder(%s): %w", bd, ErrNotLowerTriangular)
	}

	return &LowerUnitriangularBuilder{
		bd:    bd,
		lower: make([]float64, bd.Order()*bd.Lower()),
	}, nil
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) CanBeUsed() bool { return b.lower != nil }

// Set stores the sanitized value at a strictly-lower in-band (row, col).
// Returns ErrOutOfRange outside the matrix, ErrOutOfTriangle on the
// immutable unit diagonal, ErrOutOfBand elsewhere in the matrix.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) Set(row, col int, v float64) error {
	if b.lower == nil {
		return fmt.Errorf("LowerUnitriangularBuilder.Set: %w", ErrBuilderReleased)
	}
	switch matdim.Position(row, col, b.bd) {
	case matdim.PosLowerBand:
		b.lower[matdim.LowerIndex(row, col, b.bd)] = vector.Sanitize(v)
	case matdim.PosDiagonal:
		return fmt.Errorf("LowerUnitriangularBuilder.Set(%d,%d): %w", row, col, ErrOutOfTriangle)
	case matdim.PosOutOfBand:
		return fmt.Errorf("LowerUnitriangularBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfBand)
	default: // PosOutOfMatrix
		return fmt.Errorf("LowerUnitriangularBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfRange)
	}

	return nil
}

// SetStrict stores v, rejecting NaN and ±Inf with ErrNotFinite.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("LowerUnitriangularBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build. Complexity: O(n·kl).
func (b *LowerUnitriangularBuilder) Copy() (*LowerUnitriangularBuilder, error) {
	if b.lower == nil {
		return nil, fmt.Errorf("LowerUnitriangularBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := make([]float64, len(b.lower))
	copy(cp, b.lower)

	return &LowerUnitriangularBuilder{bd: b.bd, lower: cp}, nil
}

// Build freezes the staged entries and releases the builder.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) Build() (*LowerUnitriangular, error) {
	if b.lower == nil {
		return nil, fmt.Errorf("LowerUnitriangularBuilder.Build: %w", ErrBuilderReleased)
	}
	lower := b.lower
	b.lower = nil

	return newLowerUnitriangular(b.bd, lower), nil
}
