// SPDX-License-Identifier: MIT

// Package mat - symmetric dense storage (packed lower triangle).
//
// Purpose:
//   - Store only the lower triangle plus diagonal: entry (row, col) with
//     col <= row lives at data[col + row*(row+1)/2]; the upper triangle is
//     never materialized, At mirrors indices instead.
//   - Operate applies every stored strictly-lower entry twice — once for
//     the lower contribution to out[row] and once, mirrored, to out[col] —
//     matching the dense reference product without touching the upper half.

package mat

import (
	"fmt"
	"math"

	"github.com/matkit/matkit/vector"
)

// triangularLen returns order*(order+1)/2 with an overflow check.
func triangularLen(order int) (int, error) {
	if order > math.MaxInt/(order+1) {
		return 0, fmt.Errorf("mat: symmetric order %d: %w", order, ErrTooLarge)
	}

	return order * (order + 1) / 2, nil
}

// packedIndex maps (row, col) with col <= row into the packed lower
// triangle: col + triangularNumber(row).
// Complexity: O(1).
func packedIndex(row, col int) int { return col + row*(row+1)/2 }

// SymmetricDense is an immutable symmetric matrix holding only its lower
// triangle plus diagonal. Built by SymmetricDenseBuilder.
type SymmetricDense struct {
	order int
	data  []float64 // packed lower triangle, len == order*(order+1)/2
}

// Compile-time conformance.
var (
	_ EntryReadable = (*SymmetricDense)(nil)
	_ Symmetric     = (*SymmetricDense)(nil)
	_ fmt.Stringer  = (*SymmetricDense)(nil)
)

// Rows returns the order. Complexity: O(1).
func (m *SymmetricDense) Rows() int { return m.order }

// Cols returns the order. Complexity: O(1).
func (m *SymmetricDense) Cols() int { return m.order }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *SymmetricDense) SymmetricOrder() int { return m.order }

// At returns the entry at (row, col), mirroring indices into the stored
// triangle. Complexity: O(1).
func (m *SymmetricDense) At(row, col int) (float64, error) {
	if err := checkIndex("At", row, col, m.order, m.order); err != nil {
		return 0, err
	}
	if col > row {
		row, col = col, row // the upper triangle is the mirrored lower one
	}

	return m.data[packedIndex(row, col)], nil
}

// EntryNormMax returns the maximum absolute entry.
// Complexity: O(order²/2).
func (m *SymmetricDense) EntryNormMax() float64 { return sliceNormMax(m.data) }

// Operate returns M*x using the packed triangle only: the diagonal
// contributes once, every stored (row>col) entry twice.
// Complexity: O(order²/2).
func (m *SymmetricDense) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, m.order)
	idx := 0 // walks the packed array in storage order
	for row := 0; row < m.order; row++ {
		for col := 0; col < row; col++ {
			a := m.data[idx]
			out[row] += a * xs[col] // lower contribution
			out[col] += a * xs[row] // mirrored upper contribution
			idx++
		}
		out[row] += m.data[idx] * xs[row] // diagonal
		idx++
	}

	return vector.New(out)
}

// OperateTranspose delegates to Operate: the transpose is this matrix.
func (m *SymmetricDense) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself: a zero-cost identity.
func (m *SymmetricDense) Transpose() Matrix { return m }

// String renders rows for diagnostics. Complexity: O(order²).
func (m *SymmetricDense) String() string { return formatRows(m) }

// SymmetricDenseBuilder stages the lower triangle for exactly one
// SymmetricDense. Single-use, single-thread.
type SymmetricDenseBuilder struct {
	order int
	data  []float64 // nil once released
}

// NewSymmetricDenseBuilder creates a builder for a zero symmetric matrix of
// the given order. Fails with ErrTooLarge before any allocation when the
// packed triangle would not be representable.
// Complexity: O(order²/2).
func NewSymmetricDenseBuilder(order int) (*SymmetricDenseBuilder, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewSymmetricDenseBuilder(%d): %w", order, ErrBadShape)
	}
	n, err := triangularLen(order)
	if err != nil {
		return nil, err
	}

	return &SymmetricDenseBuilder{order: order, data: make([]float64, n)}, nil
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *SymmetricDenseBuilder) CanBeUsed() bool { return b.data != nil }

// Set stores the sanitized value at (row, col) and, implicitly, at
// (col, row): both orders address the same packed slot.
// Complexity: O(1).
func (b *SymmetricDenseBuilder) Set(row, col int, v float64) error {
	if b.data == nil {
		return fmt.Errorf("SymmetricDenseBuilder.Set: %w", ErrBuilderReleased)
	}
	if err := checkIndex("SymmetricDenseBuilder.Set", row, col, b.order, b.order); err != nil {
		return err
	}
	if col > row {
		row, col = col, row
	}
	b.data[packedIndex(row, col)] = vector.Sanitize(v)

	return nil
}

// SetStrict stores v, rejecting NaN and ±Inf with ErrNotFinite.
// Complexity: O(1).
func (b *SymmetricDenseBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("SymmetricDenseBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build. Complexity: O(order²/2).
func (b *SymmetricDenseBuilder) Copy() (*SymmetricDenseBuilder, error) {
	if b.data == nil {
		return nil, fmt.Errorf("SymmetricDenseBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &SymmetricDenseBuilder{order: b.order, data: cp}, nil
}

// Build freezes the staged triangle into a SymmetricDense and releases the
// builder. Complexity: O(1).
func (b *SymmetricDenseBuilder) Build() (*SymmetricDense, error) {
	if b.data == nil {
		return nil, fmt.Errorf("SymmetricDenseBuilder.Build: %w", ErrBuilderReleased)
	}
	data := b.data
	b.data = nil

	return &SymmetricDense{order: b.order, data: data}, nil
}
