// SPDX-License-Identifier: MIT

// Package matdim - rectangular dimension value object.

package matdim

import (
	"fmt"
	"math"
)

// Dim is an immutable rows×cols shape descriptor.
// The zero Dim is not valid; use NewDim.
type Dim struct {
	rows, cols int
}

// NewDim validates and builds a rows×cols descriptor.
// Returns ErrBadDim for non-positive sizes and ErrTooLarge when rows*cols
// exceeds the int range (dense storage would be unallocatable).
// Complexity: O(1).
func NewDim(rows, cols int) (Dim, error) {
	if rows < 1 || cols < 1 {
		return Dim{}, fmt.Errorf("NewDim(%d,%d): %w", rows, cols, ErrBadDim)
	}
	if rows > math.MaxInt/cols {
		return Dim{}, fmt.Errorf("NewDim(%d,%d): %w", rows, cols, ErrTooLarge)
	}

	return Dim{rows: rows, cols: cols}, nil
}

// MustDim is NewDim that panics on error; for compile-time-constant shapes
// in tests and examples only.
func MustDim(rows, cols int) Dim {
	d, err := NewDim(rows, cols)
	if err != nil {
		panic(err)
	}

	return d
}

// Rows returns the row count. Complexity: O(1).
func (d Dim) Rows() int { return d.rows }

// Cols returns the column count. Complexity: O(1).
func (d Dim) Cols() int { return d.cols }

// IsSquare reports rows == cols. Complexity: O(1).
func (d Dim) IsSquare() bool { return d.rows == d.cols }

// Transposed returns the cols×rows descriptor. Complexity: O(1).
func (d Dim) Transposed() Dim { return Dim{rows: d.cols, cols: d.rows} }

// Elements returns rows*cols (overflow-checked at construction).
// Complexity: O(1).
func (d Dim) Elements() int { return d.rows * d.cols }

// Contains reports whether (row, col) lies inside the shape.
// Complexity: O(1).
func (d Dim) Contains(row, col int) bool {
	return row >= 0 && row < d.rows && col >= 0 && col < d.cols
}

// String renders "rows x cols". Complexity: O(1).
func (d Dim) String() string { return fmt.Sprintf("%d x %d", d.rows, d.cols) }
