// SPDX-License-Identifier: MIT

// Package mat - general dense storage (row-major) and its builder.
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula row*cols+col.
//   - Safety at the public surface: At returns errors, never panics.
//   - Deterministic kernels: fixed row-major loop order, no map iteration.

package mat

import (
	"fmt"

	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// GeneralDense is an immutable rows×cols matrix in row-major flat storage.
// Built by DenseBuilder; never mutated afterwards.
type GeneralDense struct {
	dim  matdim.Dim
	data []float64 // len == rows*cols, offset = row*cols + col
	lt   LazyTranspose
}

// Compile-time conformance.
var (
	_ EntryReadable = (*GeneralDense)(nil)
	_ fmt.Stringer  = (*GeneralDense)(nil)
)

// newGeneralDense wires the transpose hook; the only construction path is
// DenseBuilder.Build, which owns the array handoff.
func newGeneralDense(dim matdim.Dim, data []float64) *GeneralDense {
	m := &GeneralDense{dim: dim, data: data}
	m.lt.Init(m, func() Matrix { return TransposeView(m) })

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *GeneralDense) Rows() int { return m.dim.Rows() }

// Cols returns the column count. Complexity: O(1).
func (m *GeneralDense) Cols() int { return m.dim.Cols() }

// At returns the entry at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *GeneralDense) At(row, col int) (float64, error) {
	if err := checkIndex("At", row, col, m.dim.Rows(), m.dim.Cols()); err != nil {
		return 0, err
	}

	return m.data[row*m.dim.Cols()+col], nil
}

// EntryNormMax returns the maximum absolute entry.
// Complexity: O(rows*cols).
func (m *GeneralDense) EntryNormMax() float64 { return sliceNormMax(m.data) }

// Operate returns M*x.
// Complexity: O(rows*cols).
func (m *GeneralDense) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	rows, cols := m.dim.Rows(), m.dim.Cols()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		base := i * cols
		var sum float64
		for j := 0; j < cols; j++ {
			sum += m.data[base+j] * xs[j]
		}
		out[i] = sum
	}

	return vector.New(out)
}

// OperateTranspose returns Mᵀ*x.
// Complexity: O(rows*cols).
func (m *GeneralDense) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	rows, cols := m.dim.Rows(), m.dim.Cols()
	out := make([]float64, cols)
	// Accumulate row-by-row so the flat buffer is still walked sequentially.
	for i := 0; i < rows; i++ {
		base := i * cols
		xi := xs[i]
		for j := 0; j < cols; j++ {
			out[j] += m.data[base+j] * xi
		}
	}

	return vector.New(out)
}

// Transpose returns the cached implicit transpose (same backing storage,
// index roles swapped). The round trip returns this instance.
func (m *GeneralDense) Transpose() Matrix { return m.lt.Get() }

// String renders rows as "[a, b]\n" lines for diagnostics; not a hot path.
// Complexity: O(rows*cols).
func (m *GeneralDense) String() string { return formatRows(m) }

// DenseBuilder stages entries for exactly one GeneralDense.
// Single-use, single-thread; see the package notes on builders.
type DenseBuilder struct {
	dim  matdim.Dim
	data []float64 // nil once released
}

// NewDenseBuilder creates a builder for a zero matrix of the given shape.
// The element count was overflow-checked by matdim.NewDim, so allocation
// here cannot silently wrap.
// Complexity: O(rows*cols).
func NewDenseBuilder(dim matdim.Dim) *DenseBuilder {
	return &DenseBuilder{dim: dim, data: make([]float64, dim.Elements())}
}

// CanBeUsed reports whether the builder still owns its backing array.
// Complexity: O(1).
func (b *DenseBuilder) CanBeUsed() bool { return b.data != nil }

// Set stores the sanitized value at (row, col).
// Returns ErrBuilderReleased after Build, ErrOutOfRange on a bad index.
// Complexity: O(1).
func (b *DenseBuilder) Set(row, col int, v float64) error {
	if b.data == nil {
		return fmt.Errorf("DenseBuilder.Set: %w", ErrBuilderReleased)
	}
	if err := checkIndex("DenseBuilder.Set", row, col, b.dim.Rows(), b.dim.Cols()); err != nil {
		return err
	}
	b.data[row*b.dim.Cols()+col] = vector.Sanitize(v)

	return nil
}

// SetStrict stores v at (row, col), rejecting NaN and ±Inf with
// ErrNotFinite instead of sanitizing.
// Complexity: O(1).
func (b *DenseBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("DenseBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// FillRow replaces a whole row at once, sanitizing each value.
// Returns ErrDimensionMismatch when the value count does not match Cols.
// Complexity: O(cols).
func (b *DenseBuilder) FillRow(row int, values ...float64) error {
	if b.data == nil {
		return fmt.Errorf("DenseBuilder.FillRow: %w", ErrBuilderReleased)
	}
	if err := checkIndex("DenseBuilder.FillRow", row, 0, b.dim.Rows(), b.dim.Cols()); err != nil {
		return err
	}
	if len(values) != b.dim.Cols() {
		return fmt.Errorf("DenseBuilder.FillRow(%d): %d values for %d columns: %w",
			row, len(values), b.dim.Cols(), ErrDimensionMismatch)
	}
	base := row * b.dim.Cols()
	for col, v := range values {
		b.data[base+col] = vector.Sanitize(v)
	}

	return nil
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build.
// Complexity: O(rows*cols).
func (b *DenseBuilder) Copy() (*DenseBuilder, error) {
	if b.data == nil {
		return nil, fmt.Errorf("DenseBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &DenseBuilder{dim: b.dim, data: cp}, nil
}

// Build freezes the staged entries into a GeneralDense, transferring the
// backing array, and releases the builder.
// Complexity: O(1).
func (b *DenseBuilder) Build() (*GeneralDense, error) {
	if b.data == nil {
		return nil, fmt.Errorf("DenseBuilder.Build: %w", ErrBuilderReleased)
	}
	data := b.data
	b.data = nil // single-ownership handoff

	return newGeneralDense(b.dim, data), nil
}
