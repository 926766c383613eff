// SPDX-License-Identifier: MIT
// Package mat: centralized validation helpers.
//
// Purpose:
//   - Provide the single source of truth for operand-length checks so every
//     Operate/OperateTranspose implementation (here and in the band and
//     orthogonal packages) reports identical ErrDimensionMismatch context.

package mat

import (
	"fmt"

	"github.com/matkit/matkit/vector"
)

// CheckOperand validates x against M*x: x must have length m.Cols().
// Complexity: O(1).
func CheckOperand(m Matrix, x *vector.Vector) error {
	if x.Len() != m.Cols() {
		return fmt.Errorf("mat: operand length %d for %dx%d: %w",
			x.Len(), m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// CheckOperandTranspose validates x against Mᵀ*x: x must have length m.Rows().
// Complexity: O(1).
func CheckOperandTranspose(m Matrix, x *vector.Vector) error {
	if x.Len() != m.Rows() {
		return fmt.Errorf("mat: transpose operand length %d for %dx%d: %w",
			x.Len(), m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// checkIndex validates (row, col) against an r×c shape and returns a
// wrapped ErrOutOfRange with the offending coordinates.
// Complexity: O(1).
func checkIndex(method string, row, col, r, c int) error {
	if row < 0 || row >= r || col < 0 || col >= c {
		return fmt.Errorf("mat: %s(%d,%d) on %dx%d: %w", method, row, col, r, c, ErrOutOfRange)
	}

	return nil
}
