// SPDX-License-Identifier: MIT

// Package orthogonal - permutation matrix.
//
// Purpose:
//   - Keep two mutually inverse index maps instead of n² entries: rowToCol
//     names the single 1-entry per row, colToRow the single 1-entry per
//     column. Operate is an O(n) gather through one of them.
//   - Track parity incrementally at build time: each distinct swap flips
//     it, so the determinant (±1) never requires a cycle decomposition.
//   - The transpose is the same pair of maps with the roles swapped, shared
//     read-only; it is also the inverse, as required of an orthogonal type.

package orthogonal

import (
	"fmt"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/vector"
)

// Permutation is an immutable permutation matrix. Built by
// PermutationBuilder.
type Permutation struct {
	rowToCol []int // rowToCol[i] = column of the 1-entry in row i
	colToRow []int // inverse map, colToRow[rowToCol[i]] == i
	even     bool  // parity of the swap count
	lt       mat.LazyTranspose
}

// Compile-time conformance.
var (
	_ mat.EntryReadable = (*Permutation)(nil)
	_ mat.Orthogonal    = (*Permutation)(nil)
	_ mat.Determinantal = (*Permutation)(nil)
	_ fmt.Stringer      = (*Permutation)(nil)
)

func newPermutation(rowToCol, colToRow []int, even bool) *Permutation {
	m := &Permutation{rowToCol: rowToCol, colToRow: colToRow, even: even}
	m.lt.Init(m, func() mat.Matrix {
		// The inverse permutation swaps the two maps and keeps the parity
		// (a permutation and its inverse decompose into the same swaps).
		tr := newPermutationNoTranspose(colToRow, rowToCol, even)
		tr.lt.Prime(m)

		return tr
	})

	return m
}

// newPermutationNoTranspose builds an instance whose transpose cell is left
// for the caller to prime.
func newPermutationNoTranspose(rowToCol, colToRow []int, even bool) *Permutation {
	m := &Permutation{rowToCol: rowToCol, colToRow: colToRow, even: even}
	m.lt.Init(m, func() mat.Matrix { panic("orthogonal: unprimed permutation transpose") })

	return m
}

// Rows returns the order. Complexity: O(1).
func (m *Permutation) Rows() int { return len(m.rowToCol) }

// Cols returns the order. Complexity: O(1).
func (m *Permutation) Cols() int { return len(m.rowToCol) }

// OrthogonalOrder returns the order. Complexity: O(1).
func (m *Permutation) OrthogonalOrder() int { return len(m.rowToCol) }

// IsEven reports whether the permutation decomposes into an even number of
// swaps. Complexity: O(1).
func (m *Permutation) IsEven() bool { return m.even }

// At returns 1 at (row, rowToCol[row]) and 0 elsewhere in the matrix.
// Complexity: O(1).
func (m *Permutation) At(row, col int) (float64, error) {
	n := len(m.rowToCol)
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("orthogonal: At(%d,%d) on order %d: %w", row, col, n, ErrOutOfRange)
	}
	if m.rowToCol[row] == col {
		return 1, nil
	}

	return 0, nil
}

// EntryNormMax returns 1 (every permutation has unit entries).
// Complexity: O(1).
func (m *Permutation) EntryNormMax() float64 { return 1 }

// Operate returns P*x: out[i] = x[rowToCol[i]], a pure gather.
// Complexity: O(n).
func (m *Permutation) Operate(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperand(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, len(xs))
	for i, c := range m.rowToCol {
		out[i] = xs[c]
	}

	return vector.New(out)
}

// OperateTranspose returns Pᵀ*x: out[i] = x[colToRow[i]].
// Complexity: O(n).
func (m *Permutation) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	if err := mat.CheckOperandTranspose(m, x); err != nil {
		return nil, err
	}
	xs := x.Values()
	out := make([]float64, len(xs))
	for i, r := range m.colToRow {
		out[i] = xs[r]
	}

	return vector.New(out)
}

// Transpose returns the cached inverse permutation sharing both index maps.
func (m *Permutation) Transpose() mat.Matrix { return m.lt.Get() }

// Inverse returns the transpose, the identical object: Pᵀ = P⁻¹.
// Always invertible. Complexity: O(1) after the first call.
func (m *Permutation) Inverse() (mat.Matrix, bool) { return m.lt.Get(), true }

// Determinant returns +1 for an even permutation, -1 for an odd one.
// Complexity: O(1).
func (m *Permutation) Determinant() float64 {
	if m.even {
		return 1
	}

	return -1
}

// LogAbsDeterminant returns 0. Complexity: O(1).
func (m *Permutation) LogAbsDeterminant() float64 { return 0 }

// SignOfDeterminant returns +1 or -1. Complexity: O(1).
func (m *Permutation) SignOfDeterminant() int { return int(m.Determinant()) }

// String renders rows for diagnostics. Complexity: O(n²).
func (m *Permutation) String() string { return mat.Format(m) }

// PermutationBuilder accumulates swaps on the identity permutation for
// exactly one Permutation. Single-use, single-thread.
type PermutationBuilder struct {
	rowToCol []int // nil once released
	colToRow []int
	even     bool
}

// NewPermutationBuilder creates a builder starting from the identity
// permutation of the given order. Complexity: O(n).
func NewPermutationBuilder(order int) (*PermutationBuilder, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewPermutationBuilder(%d): %w", order, ErrBadShape)
	}
	rowToCol := make([]int, order)
	colToRow := make([]int, order)
	for i := range rowToCol {
		rowToCol[i] = i
		colToRow[i] = i
	}

	return &PermutationBuilder{rowToCol: rowToCol, colToRow: colToRow, even: true}, nil
}

// CanBeUsed reports whether the builder still owns its index maps.
// Complexity: O(1).
func (b *PermutationBuilder) CanBeUsed() bool { return b.rowToCol != nil }

func (b *PermutationBuilder) checkSwap(method string, i, j int) error {
	if b.rowToCol == nil {
		return fmt.Errorf("PermutationBuilder.%s: %w", method, ErrBuilderReleased)
	}
	if n := len(b.rowToCol); i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("PermutationBuilder.%s(%d,%d) on order %d: %w", method, i, j, n, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and j. A self-swap is a no-op; a distinct swap
// flips the parity exactly once. Complexity: O(1).
func (b *PermutationBuilder) SwapRows(i, j int) error {
	if err := b.checkSwap("SwapRows", i, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	b.rowToCol[i], b.rowToCol[j] = b.rowToCol[j], b.rowToCol[i]
	b.colToRow[b.rowToCol[i]] = i
	b.colToRow[b.rowToCol[j]] = j
	b.even = !b.even

	return nil
}

// SwapCols exchanges columns i and j. Same no-op and parity rules as
// SwapRows. Complexity: O(1).
func (b *PermutationBuilder) SwapCols(i, j int) error {
	if err := b.checkSwap("SwapCols", i, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	b.colToRow[i], b.colToRow[j] = b.colToRow[j], b.colToRow[i]
	b.rowToCol[b.colToRow[i]] = i
	b.rowToCol[b.colToRow[j]] = j
	b.even = !b.even

	return nil
}

// ReverseRows reverses the row order, equivalent to floor(n/2) distinct row
// swaps, with the matching parity effect. Complexity: O(n).
func (b *PermutationBuilder) ReverseRows() error {
	if b.rowToCol == nil {
		return fmt.Errorf("PermutationBuilder.ReverseRows: %w", ErrBuilderReleased)
	}
	n := len(b.rowToCol)
	for i := 0; i < n/2; i++ {
		// checkSwap already passed; indices are in range by construction.
		if err := b.SwapRows(i, n-1-i); err != nil {
			return err
		}
	}

	return nil
}

// Copy returns an independent builder with the same accumulated swaps.
// Only legal before Build. Complexity: O(n).
func (b *PermutationBuilder) Copy() (*PermutationBuilder, error) {
	if b.rowToCol == nil {
		return nil, fmt.Errorf("PermutationBuilder.Copy: %w", ErrBuilderReleased)
	}
	cp := &PermutationBuilder{
		rowToCol: make([]int, len(b.rowToCol)),
		colToRow: make([]int, len(b.colToRow)),
		even:     b.even,
	}
	copy(cp.rowToCol, b.rowToCol)
	copy(cp.colToRow, b.colToRow)

	return cp, nil
}

// Build freezes the accumulated swaps into a Permutation, transferring both
// index maps, and releases the builder. Complexity: O(1).
func (b *PermutationBuilder) Build() (*Permutation, error) {
	if b.rowToCol == nil {
		return nil, fmt.Errorf("PermutationBuilder.Build: %w", ErrBuilderReleased)
	}
	rowToCol, colToRow := b.rowToCol, b.colToRow
	b.rowToCol, b.colToRow = nil, nil

	return newPermutation(rowToCol, colToRow, b.even), nil
}
