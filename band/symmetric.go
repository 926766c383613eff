// SPDX-License-Identifier: MIT

// Package band - symmetric band matrix (lower-only storage).
//
// Purpose:
//   - Store the diagonal and the strictly-lower band only; the upper half
//     is the mirrored lower half and is never materialized.
//   - Operate applies every stored sub-diagonal entry twice: once as the
//     lower contribution to out[row], once mirrored to out[col].

package band

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// Symmetric is an immutable symmetric band matrix with equal bandwidths.
// Built by SymmetricBuilder.
type Symmetric struct {
	bd    matdim.BandDim // lower == upper by construction
	diag  []float64      // length n
	lower []float64      // length n·bandwidth
}

// Compile-time conformance.
var (
	_ mat.Banded    = (*Symmetric)(nil)
	_ mat.Symmetric = (*Symmetric)(nil)
	_ fmt.Stringer  = (*Symmetric)(nil)
)

// Rows returns the order. Complexity: O(1).
func (m *Symmetric) Rows() int { return m.bd.Order() }

// Cols returns the order. Complexity: O(1).
func (m *Symmetric) Cols() int { return m.bd.Order() }

// SymmetricOrder returns the order. Complexity: O(1).
func (m *Symmetric) SymmetricOrder() int { return m.bd.Order() }

// BandDim returns the shape descriptor (equal bandwidths).
// Complexity: O(1).
func (m *Symmetric) BandDim() matdim.BandDim { return m.bd }

// At returns the entry at (row, col), mirroring upper positions into the
// stored lower band. Complexity: O(1).
func (m *Symmetric) At(row, col int) (float64, error) {
	if col > row {
		row, col = col, row // the upper half is the mirrored lower half
	}
	switch matdim.Position(row, col, m.bd) {
	case matdim.PosDiagonal:
		return m.diag[row], nil
	case matdim.PosLowerBand:
		return m.lower[matdim.LowerIndex(row, col, m.bd)], nil
	case matdim.PosOutOfBand:
		return 0, nil
	default: // PosOutOfMatrix (mirroring preserves matrix membership)
		return 0, fmt.Errorf("band: At(%d,%d) on %s: %w", row, col, m.bd, ErrOutOfRange)
	}
}

// EntryNormMax returns the maximum absolute entry.
// Complexity: O(n·bandwidth).
func (m *Symmetric) EntryNormMax() float64 {
	maxAbs := sliceAbsMax(m.diag)
	if v := sliceAbsMax(m.lower); v > maxAbs {
		maxAbs = v
	}

	return maxAbs
}

// Operate returns M*x from the packed lower band only: the diagonal
// contributes once, each stored (row>col) entry twice.
// Complexity: O(n·bandwidth).
func (m *Symmetric) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	n, bw := m.bd.Order(), m.bd.Lower()
	xs := x.Values()
	out := make([]float64, n)
	for row := 0; row < n; row++ {
		out[row] += m.diag[row] * xs[row]
		lo := row - bw
		if lo < 0 {
			lo = 0
		}
		for col := lo; col < row; col++ {
			a := m.lower[matdim.LowerIndex(row, col, m.bd)]
			out[row] += a * xs[col] // lower contribution
			out[col] += a * xs[row] // mirrored upper contribution
		}
	}

	return vector.New(out)
}

// OperateTranspose delegates to Operate: the transpose is this matrix.
func (m *Symmetric) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return m.Operate(x)
}

// Transpose returns the receiver itself: a zero-cost identity.
func (m *Symmetric) Transpose() mat.Matrix { return m }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *Symmetric) String() string { return mat.Format(m) }

// SymmetricBuilder stages the diagonal and lower band for exactly one
// Symmetric. Single-use, single-thread.
type SymmetricBuilder struct {
	bd    matdim.BandDim
	diag  []float64 // nil once released
	lower []float64
}

// NewSymmetricBuilder creates a builder for the zero symmetric band matrix
// of the given order and bandwidth. Shape and overflow validation is
// delegated to matdim.NewBandDim.
// Complexity: O(n·(bandwidth+1)).
func NewSymmetricBuilder(order, bandwidth int) (*SymmetricBuilder, error) {
	bd, err := matdim.NewBandDim(order, bandwidth, bandwidth)
	if err != nil {
		return nil, err
	}

	return &SymmetricBuilder{
		bd:    bd,
		diag:  make([]float64, order),
		lower: make([]float64, order*bandwidth),
	}, nil
}

// CanBeUsed reports whether the builder still owns its backing arrays.
// Complexity: O(1).
func (b *SymmetricBuilder) CanBeUsed() bool { return b.diag != nil }

// Set stores the sanitized value at (row, col) and, implicitly, at
// (col, row): both orders address the same packed slot.
// Returns ErrOutOfRange outside the matrix, ErrOutOfBand inside the matrix
// but outside the band.
// Complexity: O(1).
func (b *SymmetricBuilder) Set(row, col int, v float64) error {
	if b.diag == nil {
		return fmt.Errorf("SymmetricBuilder.Set: %w", ErrBuilderReleased)
	}
	if col > row {
		row, col = col, row
	}
	switch matdim.Position(row, col, b.bd) {
	case matdim.PosDiagonal:
		b.diag[row] = vector.Sanitize(v)
	case matdim.PosLowerBand:
		b.lower[matdim.LowerIndex(row, col, b.bd)] = vector.Sanitize(v)
	case matdim.PosOutOfBand:
		return fmt.Errorf("SymmetricBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfBand)
	default: // PosOutOfMatrix
		return fmt.Errorf("SymmetricBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfRange)
	}

	return nil
}

// SetStrict stores v, rejecting NaN and ±Inf with ErrNotFinite.
// Complexity: O(1).
func (b *SymmetricBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("SymmetricBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build. Complexity: O(n·(bandwidth+1)).
func (b *SymmetricBuilder) Copy() (*SymmetricBuilder, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("SymmetricBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := &SymmetricBuilder{
		bd:    b.bd,
		diag:  make([]float64, len(b.diag)),
		lower: make([]float64, len(b.lower)),
	}
	copy(cp.diag, b.diag)
	copy(cp.lower, b.lower)

	return cp, nil
}

// Build freezes the staged entries into a Symmetric, transferring both
// arrays, and releases the builder. Complexity: O(1).
func (b *SymmetricBuilder) Build() (*Symmetric, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("SymmetricBuilder.Build: %w", ErrBuilderReleased)
	}
	diag, lower := b.diag, b.lower
	b.diag, b.lower = nil, nil

	return &Symmetric{bd: b.bd, diag: diag, lower: lower}, nil
}
