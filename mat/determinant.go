// SPDX-License-Identifier: MIT

// Package mat - overflow/underflow-safe determinant accumulation.
//
// Purpose:
//   - Computing det as a running product of up to n pivots overflows or
//     underflows double precision long before the true determinant does
//     (90 pivots of magnitude 1e90 overflow after four of them).
//   - DetAccumulator keeps a bounded mantissa and an integer power-of-K
//     exponent instead: each pivot magnitude is folded into (1/K, K] and
//     multiplied in, then the residual is renormalized. The sign is
//     tracked separately as a boolean XOR.
//   - The same two-track technique serves any sequential-pivot
//     factorization: diagonal and triangular factors here, LU/Cholesky
//     pivot streams in consumers of this package.
//
// Constants:
//   - K = 1e150 splits the IEEE-754 double range symmetrically: with both
//     factors folded into (1/K, K], the intermediate product stays within
//     (1e-300, 1e300), safely inside the normal range. A port to a narrower
//     float type must re-derive K, not reuse it.

package mat

import "math"

const (
	// detScaleK is the renormalization base for the scaled determinant.
	detScaleK = 1e150
	// detScaleInvK is the lower residual bound, 1/K.
	detScaleInvK = 1 / detScaleK
)

// lnDetScaleK is ln(K), used to assemble ln|det| from residual and shift.
var lnDetScaleK = math.Log(detScaleK)

// DetAccumulator accumulates a determinant over a stream of pivots as
// residual * K^shift with residual in (1/K, K], plus a separate sign.
//
// A pivot whose reciprocal is not representable (zero, or so small that
// 1/pivot overflows) makes the whole factor singular: the accumulator
// latches into the singular state — determinant exactly 0, ln|det| = -Inf,
// sign 0 — and discards rather than partially applies its prior state.
// A NaN pivot also latches singular; a ±Inf pivot is clamped to
// ±MaxFloat64 before folding, the same rule the builders apply on write.
//
// The zero value is ready to use and represents the empty product (det 1).
// DetAccumulator is a single-thread builder-side object.
type DetAccumulator struct {
	residual float64 // mantissa in (1/K, K]; meaningful only after first Accumulate
	shift    int     // power-of-K exponent
	negative bool    // XOR of pivot signs
	singular bool    // latched: a non-invertible pivot was seen
	started  bool    // residual initialized
}

// Accumulate folds one pivot into the running determinant.
// Complexity: O(1) amortized (the folding loops run once per ~150 orders of
// magnitude of pivot).
func (a *DetAccumulator) Accumulate(pivot float64) {
	if a.singular {
		return // latched; partial results are discarded, not applied
	}
	if pivot == 0 || math.IsInf(1/pivot, 0) || math.IsNaN(pivot) {
		a.singular = true

		return
	}
	if math.IsInf(pivot, 0) {
		// Same clamp the builders apply on write: an overflowed pivot keeps
		// its sign but carries no magnitude beyond the float64 range.
		pivot = math.Copysign(math.MaxFloat64, pivot)
	}
	if !a.started {
		a.residual = 1
		a.started = true
	}
	if pivot < 0 {
		a.negative = !a.negative
		pivot = -pivot
	}
	// Fold the pivot magnitude into (1/K, K], moving powers of K into shift.
	for pivot > detScaleK {
		pivot /= detScaleK
		a.shift++
	}
	for pivot <= detScaleInvK {
		pivot *= detScaleK
		a.shift--
	}
	// Both factors lie in (1/K, K]: the product is within (1/K², K²],
	// i.e. (1e-300, 1e300] — finite and normal. One renormalization step
	// per direction restores the residual invariant.
	a.residual *= pivot
	if a.residual > detScaleK {
		a.residual /= detScaleK
		a.shift++
	} else if a.residual <= detScaleInvK {
		a.residual *= detScaleK
		a.shift--
	}
}

// IsSingular reports whether a non-invertible pivot was accumulated.
// Complexity: O(1).
func (a *DetAccumulator) IsSingular() bool { return a.singular }

// SignOfDeterminant returns -1, 0 or +1.
// Complexity: O(1).
func (a *DetAccumulator) SignOfDeterminant() int {
	switch {
	case a.singular:
		return 0
	case a.negative:
		return -1
	default:
		return 1
	}
}

// LogAbsDeterminant returns ln|det| = ln(residual) + shift*ln(K);
// -Inf when singular. Stays finite and accurate for determinants far
// outside the representable float64 range.
// Complexity: O(1).
func (a *DetAccumulator) LogAbsDeterminant() float64 {
	if a.singular {
		return math.Inf(-1)
	}
	if !a.started {
		return 0 // empty product: det 1
	}

	return math.Log(a.residual) + float64(a.shift)*lnDetScaleK
}

// Determinant materializes the signed determinant directly from the
// residual and shift (never via exp of the log form, which would lose
// precision). When the true value overflows float64 the result is ±Inf;
// when it underflows, ±0 — callers in that regime should prefer
// LogAbsDeterminant.
// Complexity: O(|shift|).
func (a *DetAccumulator) Determinant() float64 {
	if a.singular {
		return 0
	}
	mag := a.residual
	if !a.started {
		mag = 1
	}
	for s := a.shift; s > 0; s-- {
		mag *= detScaleK
		if math.IsInf(mag, 0) {
			break // true determinant exceeds float64 range
		}
	}
	for s := a.shift; s < 0; s++ {
		mag *= detScaleInvK
		if mag == 0 {
			break // true determinant underflows float64
		}
	}
	if a.negative {
		return -mag
	}

	return mag
}
