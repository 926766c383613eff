// SPDX-License-Identifier: MIT

// Package mat - dense lower-unitriangular matrix and its substitution inverse.
//
// Purpose:
//   - Store only the strictly-lower entries (packed, col + row*(row-1)/2);
//     the diagonal is the implicit constant 1, the upper triangle the
//     implicit zero.
//   - The inverse is an operator, not a stored array: applying it runs a
//     forward substitution (and a back substitution for the transpose), so
//     no O(order²) inverse matrix is ever materialized.

package mat

import (
	"fmt"

	"github.com/matkit/matkit/vector"
)

// strictLowerIndex maps (row, col) with col < row into the packed strict
// lower triangle. Complexity: O(1).
func strictLowerIndex(row, col int) int { return col + row*(row-1)/2 }

// LowerUnitriangular is an immutable dense lower-unitriangular matrix.
// Built by LowerUnitriangularBuilder. det = 1 by construction, so it is
// always invertible.
type LowerUnitriangular struct {
	order int
	data  []float64 // packed strictly-lower entries, len == order*(order-1)/2
	lt    LazyTranspose
	inv   LazyInverse
}

// Compile-time conformance.
var (
	_ EntryReadable = (*LowerUnitriangular)(nil)
	_ Invertible    = (*LowerUnitriangular)(nil)
	_ Determinantal = (*LowerUnitriangular)(nil)
	_ fmt.Stringer  = (*LowerUnitriangular)(nil)
)

func newLowerUnitriangular(order int, data []float64) *LowerUnitriangular {
	m := &LowerUnitriangular{order: order, data: data}
	m.lt.Init(m, func() Matrix { return TransposeView(m) })
	m.inv.Init(func() (Matrix, bool) { return newUnitriangularInverse(m), true })

	return m
}

// Rows returns the order. Complexity: O(1).
func (m *LowerUnitriangular) Rows() int { return m.order }

// Cols returns the order. Complexity: O(1).
func (m *LowerUnitriangular) Cols() int { return m.order }

// At returns the entry at (row, col): stored below the diagonal, the
// constant 1 on it, 0 above. Complexity: O(1).
func (m *LowerUnitriangular) At(row, col int) (float64, error) {
	if err := checkIndex("At", row, col, m.order, m.order); err != nil {
		return 0, err
	}
	switch {
	case col < row:
		return m.data[strictLowerIndex(row, col)], nil
	case col == row:
		return 1, nil
	default:
		return 0, nil
	}
}

// EntryNormMax returns the maximum absolute entry; never below 1 because
// of the unit diagonal. Complexity: O(order²/2).
func (m *LowerUnitriangular) EntryNormMax() float64 {
	if n := sliceNormMax(m.data); n > 1 {
		return n
	}

	return 1
}

// Operate returns L*x: out[r] = x[r] + Σ_{c<r} L[r,c]*x[c].
// Complexity: O(order²/2).
func (m *LowerUnitriangular) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, m.order)
	idx := 0
	for row := 0; row < m.order; row++ {
		sum := xs[row] // implicit unit diagonal
		for col := 0; col < row; col++ {
			sum += m.data[idx] * xs[col]
			idx++
		}
		out[row] = sum
	}

	return vector.New(out)
}

// OperateTranspose returns Lᵀ*x: out[c] = x[c] + Σ_{r>c} L[r,c]*x[r].
// Complexity: O(order²/2).
func (m *LowerUnitriangular) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, m.order)
	copy(out, xs) // implicit unit diagonal
	idx := 0
	for row := 0; row < m.order; row++ {
		xr := xs[row]
		for col := 0; col < row; col++ {
			out[col] += m.data[idx] * xr
			idx++
		}
	}

	return vector.New(out)
}

// Transpose returns the cached implicit transpose (upper unitriangular view
// over the same storage).
func (m *LowerUnitriangular) Transpose() Matrix { return m.lt.Get() }

// Inverse returns the cached substitution operator; a unitriangular matrix
// is never singular, so ok is always true.
func (m *LowerUnitriangular) Inverse() (Matrix, bool) { return m.inv.Get() }

// Determinant returns 1 (unit diagonal). Complexity: O(1).
func (m *LowerUnitriangular) Determinant() float64 { return 1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *LowerUnitriangular) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns 1. Complexity: O(1).
func (m *LowerUnitriangular) SignOfDeterminant() int { return 1 }

// String renders rows for diagnostics. Complexity: O(order²).
func (m *LowerUnitriangular) String() string { return formatRows(m) }

// unitriangularInverse applies L⁻¹ by forward substitution and L⁻ᵀ by back
// substitution. It is an operator-only Matrix: entry access would cost a
// full substitution per entry, so EntryReadable is deliberately absent.
type unitriangularInverse struct {
	l  *LowerUnitriangular
	lt LazyTranspose
}

var (
	_ Matrix        = (*unitriangularInverse)(nil)
	_ Invertible    = (*unitriangularInverse)(nil)
	_ Determinantal = (*unitriangularInverse)(nil)
)

func newUnitriangularInverse(l *LowerUnitriangular) *unitriangularInverse {
	inv := &unitriangularInverse{l: l}
	inv.lt.Init(inv, func() Matrix { return TransposeOperator(inv) })

	return inv
}

// Rows returns the order. Complexity: O(1).
func (m *unitriangularInverse) Rows() int { return m.l.order }

// Cols returns the order. Complexity: O(1).
func (m *unitriangularInverse) Cols() int { return m.l.order }

// Operate solves L*y = x by forward substitution:
// y[r] = x[r] - Σ_{c<r} L[r,c]*y[c].
// Complexity: O(order²/2).
func (m *unitriangularInverse) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, m.l.order)
	idx := 0
	for row := 0; row < m.l.order; row++ {
		sum := xs[row]
		for col := 0; col < row; col++ {
			sum -= m.l.data[idx] * out[col]
			idx++
		}
		out[row] = sum
	}

	return vector.New(out)
}

// OperateTranspose solves Lᵀ*y = x by back substitution:
// y[c] = x[c] - Σ_{r>c} L[r,c]*y[r], iterated from the last row upward.
// Complexity: O(order²/2).
func (m *unitriangularInverse) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	n := m.l.order
	out := x.Values() // start from x; subtract resolved contributions
	for row := n - 1; row >= 1; row-- {
		yr := out[row]
		base := strictLowerIndex(row, 0)
		for col := 0; col < row; col++ {
			out[col] -= m.l.data[base+col] * yr
		}
	}

	return vector.New(out)
}

// Transpose returns the cached implicit transpose of the operator.
func (m *unitriangularInverse) Transpose() Matrix { return m.lt.Get() }

// Inverse returns the original matrix: (L⁻¹)⁻¹ = L, the identical object.
func (m *unitriangularInverse) Inverse() (Matrix, bool) { return m.l, true }

// Determinant returns 1. Complexity: O(1).
func (m *unitriangularInverse) Determinant() float64 { return 1 }

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *unitriangularInverse) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns 1. Complexity: O(1).
func (m *unitriangularInverse) SignOfDeterminant() int { return 1 }

// LowerUnitriangularBuilder stages the strictly-lower entries for exactly
// one LowerUnitriangular. Single-use, single-thread.
type LowerUnitriangularBuilder struct {
	order int
	data  []float64 // nil once released
}

// NewLowerUnitriangularBuilder creates a builder for the order×order unit
// lower-triangular matrix (all strict lower entries zero). Fails with
// ErrTooLarge before any allocation when the packed triangle would not be
// representable.
// Complexity: O(order²/2).
func NewLowerUnitriangularBuilder(order int) (*LowerUnitriangularBuilder, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewLowerUnitriangularBuilder(%d): %w", order, ErrBadShape)
	}
	n, err := triangularLen(order - 1) // strict triangle of an order-n matrix
	if err != nil {
		return nil, err
	}

	return &LowerUnitriangularBuilder{order: order, data: make([]float64, n)}, nil
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) CanBeUsed() bool { return b.data != nil }

// Set stores the sanitized value at a strictly-lower (row, col).
// Returns ErrOutOfRange outside the matrix and ErrOutOfTriangle for
// diagonal or upper positions (inside the matrix, but immutable).
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) Set(row, col int, v float64) error {
	if b.data == nil {
		return fmt.Errorf("LowerUnitriangularBuilder.Set: %w", ErrBuilderReleased)
	}
	if err := checkIndex("LowerUnitriangularBuilder.Set", row, col, b.order, b.order); err != nil {
		return err
	}
	if col >= row {
		return fmt.Errorf("LowerUnitriangularBuilder.Set(%d,%d): %w", row, col, ErrOutOfTriangle)
	}
	b.data[strictLowerIndex(row, col)] = vector.Sanitize(v)

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
// Only legal before Build. Complexity: O(order²/2).
func (b *LowerUnitriangularBuilder) Copy() (*LowerUnitriangularBuilder, error) {
	if b.data == nil {
		return nil, fmt.Errorf("LowerUnitriangularBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &LowerUnitriangularBuilder{order: b.order, data: cp}, nil
}

// Build freezes the staged entries and releases the builder.
// Complexity: O(1).
func (b *LowerUnitriangularBuilder) Build() (*LowerUnitriangular, error) {
	if b.data == nil {
		return nil, fmt.Errorf("LowerUnitriangularBuilder.Build: %w", ErrBuilderReleased)
	}
	data := b.data
	b.data = nil

	return newLowerUnitriangular(b.order, data), nil
}
