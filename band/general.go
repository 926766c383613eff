// SPDX-License-Identifier: MIT

// Package band - general (asymmetric) band matrix and its builder.
//
// Purpose:
//   - Three strided flat arrays (diag/lower/upper) addressed exclusively
//     through the matdim classifier and index formulas.
//   - Operate touches only in-band entries: each band sum is clamped to
//     min(bandwidth, distance-to-edge) terms.
//   - Transpose shares all three backing arrays read-only: the transposed
//     shape swaps (kl, ku), and the packed index formulas swap symmetrically
//     with it, so lower and upper arrays simply trade places.

package band

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// General is an immutable band matrix with independent lower and upper
// bandwidths. Built by GeneralBuilder.
type General struct {
	bd    matdim.BandDim
	diag  []float64 // length n
	lower []float64 // length n·kl, strictly-lower band, strided per column
	upper []float64 // length n·ku, strictly-upper band, strided per row
	lt    mat.LazyTranspose
}

// Compile-time conformance.
var (
	_ mat.Banded   = (*General)(nil)
	_ fmt.Stringer = (*General)(nil)
)

func newGeneral(bd matdim.BandDim, diag, lower, upper []float64) *General {
	m := &General{bd: bd, diag: diag, lower: lower, upper: upper}
	m.lt.Init(m, func() mat.Matrix {
		// Entry (r,c) of the transpose is entry (c,r) here; under the
		// swapped shape the lower formula lands exactly on this matrix's
		// upper slots and vice versa, so the arrays are shared as-is.
		tr := &General{bd: bd.Transposed(), diag: diag, lower: upper, upper: lower}
		tr.lt.Prime(m)

		return tr
	})

	return m
}

// Rows returns the order. Complexity: O(1).
func (m *General) Rows() int { return m.bd.Order() }

// Cols returns the order. Complexity: O(1).
func (m *General) Cols() int { return m.bd.Order() }

// BandDim returns the shape descriptor. Complexity: O(1).
func (m *General) BandDim() matdim.BandDim { return m.bd }

// At returns the entry at (row, col): stored inside the band, the implicit
// zero in-matrix outside it, ErrOutOfRange outside the matrix.
// Complexity: O(1).
func (m *General) At(row, col int) (float64, error) {
	switch matdim.Position(row, col, m.bd) {
	case matdim.PosDiagonal:
		return m.diag[row], nil
	case matdim.PosLowerBand:
		return m.lower[matdim.LowerIndex(row, col, m.bd)], nil
	case matdim.PosUpperBand:
		return m.upper[matdim.UpperIndex(row, col, m.bd)], nil
	case matdim.PosOutOfBand:
		return 0, nil
	default: // PosOutOfMatrix
		return 0, fmt.Errorf("band: At(%d,%d) on %s: %w", row, col, m.bd, ErrOutOfRange)
	}
}

// EntryNormMax returns the maximum absolute entry. Unwritable slack slots
// in the strided arrays stay zero, so they never affect the maximum.
// Complexity: O(n·(kl+ku)).
func (m *General) EntryNormMax() float64 {
	maxAbs := sliceAbsMax(m.diag)
	if v := sliceAbsMax(m.lower); v > maxAbs {
		maxAbs = v
	}
	if v := sliceAbsMax(m.upper); v > maxAbs {
		maxAbs = v
	}

	return maxAbs
}

// Operate returns M*x, touching only declared-band entries:
//
//	out[i] = diag[i]·x[i] + Σ_{j∈lower band} lower[i,j]·x[j]
//	                      + Σ_{j∈upper band} upper[i,j]·x[j]
//
// Complexity: O(n·(kl+ku)).
func (m *General) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	n, kl, ku := m.bd.Order(), m.bd.Lower(), m.bd.Upper()
	xs := x.Values()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := m.diag[i] * xs[i]
		lo := i - kl
		if lo < 0 {
			lo = 0 // clamp the band to the matrix edge
		}
		for j := lo; j < i; j++ {
			sum += m.lower[matdim.LowerIndex(i, j, m.bd)] * xs[j]
		}
		hi := i + ku
		if hi > n-1 {
			hi = n - 1
		}
		for j := i + 1; j <= hi; j++ {
			sum += m.upper[matdim.UpperIndex(i, j, m.bd)] * xs[j]
		}
		out[i] = sum
	}

	return vector.New(out)
}

// OperateTranspose returns Mᵀ*x: the lower and upper contributions swap
// roles relative to Operate.
// Complexity: O(n·(kl+ku)).
func (m *General) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	n, kl, ku := m.bd.Order(), m.bd.Lower(), m.bd.Upper()
	xs := x.Values()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := m.diag[i] * xs[i]
		// Mᵀ[i,j] = M[j,i]: rows below i contribute through the lower array.
		hi := i + kl
		if hi > n-1 {
			hi = n - 1
		}
		for j := i + 1; j <= hi; j++ {
			sum += m.lower[matdim.LowerIndex(j, i, m.bd)] * xs[j]
		}
		lo := i - ku
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			sum += m.upper[matdim.UpperIndex(j, i, m.bd)] * xs[j]
		}
		out[i] = sum
	}

	return vector.New(out)
}

// Transpose returns the cached transpose sharing this matrix's arrays.
func (m *General) Transpose() mat.Matrix { return m.lt.Get() }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *General) String() string { return mat.Format(m) }

// sliceAbsMax returns the maximum absolute value in data.
func sliceAbsMax(data []float64) float64 {
	var maxAbs float64
	for _, v := range data {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	return maxAbs
}

// GeneralBuilder stages band entries for exactly one General.
// Single-use, single-thread.
type GeneralBuilder struct {
	bd    matdim.BandDim
	diag  []float64 // nil once released
	lower []float64
	upper []float64
}

// NewGeneralBuilder creates a builder for the zero matrix of the given band
// shape. The element count was overflow-checked by matdim.NewBandDim.
// Complexity: O(n·(kl+ku+1)).
func NewGeneralBuilder(bd matdim.BandDim) *GeneralBuilder {
	n := bd.Order()

	return &GeneralBuilder{
		bd:    bd,
		diag:  make([]float64, n),
		lower: make([]float64, n*bd.Lower()),
		upper: make([]float64, n*bd.Upper()),
	}
}

// CanBeUsed reports whether the builder still owns its backing arrays.
// Complexity: O(1).
func (b *GeneralBuilder) CanBeUsed() bool { return b.diag != nil }

// Set stores the sanitized value at (row, col).
// Returns ErrOutOfRange outside the matrix and ErrOutOfBand for positions
// inside the matrix but outside the declared band (reads there return the
// implicit zero; only writes are rejected).
// Complexity: O(1).
func (b *GeneralBuilder) Set(row, col int, v float64) error {
	if b.diag == nil {
		return fmt.Errorf("GeneralBuilder.Set: %w", ErrBuilderReleased)
	}
	switch matdim.Position(row, col, b.bd) {
	case matdim.PosDiagonal:
		b.diag[row] = vector.Sanitize(v)
	case matdim.PosLowerBand:
		b.lower[matdim.LowerIndex(row, col, b.bd)] = vector.Sanitize(v)
	case matdim.PosUpperBand:
		b.upper[matdim.UpperIndex(row, col, b.bd)] = vector.Sanitize(v)
	case matdim.PosOutOfBand:
		return fmt.Errorf("GeneralBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfBand)
	default: // PosOutOfMatrix
		return fmt.Errorf("GeneralBuilder.Set(%d,%d) on %s: %w", row, col, b.bd, ErrOutOfRange)
	}

	return nil
}

// SetStrict stores v, rejecting NaN and ±Inf with ErrNotFinite.
// Complexity: O(1).
func (b *GeneralBuilder) SetStrict(row, col int, v float64) error {
	if vector.Sanitize(v) != v {
		return fmt.Errorf("GeneralBuilder.SetStrict(%d,%d): %w", row, col, ErrNotFinite)
	}

	return b.Set(row, col, v)
}

// Copy returns an independent builder with the same staged entries.
// Only legal before Build. Complexity: O(n·(kl+ku+1)).
func (b *GeneralBuilder) Copy() (*GeneralBuilder, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("GeneralBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := &GeneralBuilder{
		bd:    b.bd,
		diag:  make([]float64, len(b.diag)),
		lower: make([]float64, len(b.lower)),
		upper: make([]float64, len(b.upper)),
	}
	copy(cp.diag, b.diag)
	copy(cp.lower, b.lower)
	copy(cp.upper, b.upper)

	return cp, nil
}

// Build freezes the staged entries into a General, transferring all three
// arrays, and releases the builder. Complexity: O(1).
func (b *GeneralBuilder) Build() (*General, error) {
	if b.diag == nil {
		return nil, fmt.Errorf("GeneralBuilder.Build: %w", ErrBuilderReleased)
	}
	diag, lower, upper := b.diag, b.lower, b.upper
	b.diag, b.lower, b.upper = nil, nil, nil // single-ownership handoff

	return newGeneral(b.bd, diag, lower, upper), nil
}
