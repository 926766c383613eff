// SPDX-License-Identifier: MIT

// Package matdim - band position classifier and packed-index formulas.
//
// Purpose:
//   - Classify a (row, col) pair against a BandDim exactly once, in one
//     place, for every band-aware read/write/multiply path.
//   - Keep the packed-storage index arithmetic next to the classifier:
//     the formulas are only valid inside the region the classifier names.

package matdim

// BandPos names the region a (row, col) pair falls into relative to a
// band shape.
type BandPos uint8

const (
	// PosOutOfMatrix: the indices are outside [0, order) x [0, order).
	PosOutOfMatrix BandPos = iota
	// PosDiagonal: row == col inside the matrix.
	PosDiagonal
	// PosLowerBand: col < row and row-col <= lower bandwidth.
	PosLowerBand
	// PosUpperBand: col > row and col-row <= upper bandwidth.
	PosUpperBand
	// PosOutOfBand: inside the matrix but outside the declared band;
	// the entry is the implicit zero.
	PosOutOfBand
)

// String names the position for diagnostics. Complexity: O(1).
func (p BandPos) String() string {
	switch p {
	case PosOutOfMatrix:
		return "OutOfMatrix"
	case PosDiagonal:
		return "Diagonal"
	case PosLowerBand:
		return "LowerBand"
	case PosUpperBand:
		return "UpperBand"
	case PosOutOfBand:
		return "OutOfBand"
	default:
		return "Unknown"
	}
}

// Position classifies (row, col) against bd.
//
// Rule:
//   - out-of-matrix when either index is outside [0, order);
//   - diagonal when row == col;
//   - lower band when col < row and row-col <= Lower, else out-of-band;
//   - upper band when col > row and col-row <= Upper, else out-of-band.
//
// Complexity: O(1).
func Position(row, col int, bd BandDim) BandPos {
	if row < 0 || row >= bd.order || col < 0 || col >= bd.order {
		return PosOutOfMatrix
	}
	switch {
	case row == col:
		return PosDiagonal
	case col < row:
		if row-col <= bd.lower {
			return PosLowerBand
		}

		return PosOutOfBand
	default: // col > row
		if col-row <= bd.upper {
			return PosUpperBand
		}

		return PosOutOfBand
	}
}

// LowerIndex maps an in-band strictly-lower (row, col) to its offset in the
// packed lower array of length order*Lower:
//
//	lower[col*Lower + (row-col-1)]
//
// Valid only when Position(row, col, bd) == PosLowerBand; callers must
// classify first.
// Complexity: O(1).
func LowerIndex(row, col int, bd BandDim) int {
	return col*bd.lower + (row - col - 1)
}

// UpperIndex maps an in-band strictly-upper (row, col) to its offset in the
// packed upper array of length order*Upper:
//
//	upper[row*Upper + (col-row-1)]
//
// Valid only when Position(row, col, bd) == PosUpperBand; callers must
// classify first.
// Complexity: O(1).
func UpperIndex(row, col int, bd BandDim) int {
	return row*bd.upper + (col - row - 1)
}
