// SPDX-License-Identifier: MIT

// Package vector - immutable value type, arithmetic and norms.
//
// Purpose:
//   - Keep a single flat float64 buffer per Vector, owned exclusively.
//   - Guarantee safety at the public surface: At returns errors, never panics.
//   - Centralize the value-acceptance rule (Sanitize) so matrix kernels and
//     builders apply the identical clamping policy.

package vector

import (
	"fmt"
	"math"
	"strings"
)

// Formatting literals shared by String.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Sanitize clamps v to the accepted value domain:
// +Inf -> +MaxFloat64, -Inf -> -MaxFloat64, NaN -> 0.
// Every sanitizing construction path and every kernel result entry passes
// through this single function.
// Complexity: O(1).
func Sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, +1) {
		return math.MaxFloat64
	}
	if math.IsInf(v, -1) {
		return -math.MaxFloat64
	}

	return v
}

// Vector is an immutable, fixed-size sequence of finite float64 values.
// The zero Vector is not valid; use New, Of or a Builder.
type Vector struct {
	data []float64 // exclusive backing array; never exposed mutably
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New wraps data into a Vector, taking ownership of the slice.
// The caller must not retain or mutate data after the call. Every entry is
// sanitized in place (see Sanitize). Returns ErrBadLength for an empty slice.
// Complexity: O(n).
func New(data []float64) (*Vector, error) {
	if len(data) == 0 {
		return nil, ErrBadLength
	}
	for i := range data {
		data[i] = Sanitize(data[i])
	}

	return &Vector{data: data}, nil
}

// Of builds a Vector from the given values (copied, then sanitized).
// Complexity: O(n).
func Of(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrBadLength
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return New(cp)
}

// Len returns the number of entries.
// Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// At returns the entry at index i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the entries. The backing array is never exposed.
// Complexity: O(n).
func (v *Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// sameLen returns ErrDimensionMismatch when the operand lengths differ.
func (v *Vector) sameLen(o *Vector) error {
	if len(v.data) != len(o.data) {
		return fmt.Errorf("vector: %d vs %d: %w", len(v.data), len(o.data), ErrDimensionMismatch)
	}

	return nil
}

// Add returns v + o as a new Vector.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := v.sameLen(o); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + o.data[i]
	}

	return New(out)
}

// Sub returns v - o as a new Vector.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := v.sameLen(o); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - o.data[i]
	}

	return New(out)
}

// Scale returns c*v as a new Vector. Overflowing products are clamped by
// the standard value-acceptance rule.
// Complexity: O(n).
func (v *Vector) Scale(c float64) *Vector {
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] * c
	}
	nv, _ := New(out) // len(v.data) >= 1 by construction

	return nv
}

// Negate returns -v as a new Vector.
// Complexity: O(n).
func (v *Vector) Negate() *Vector { return v.Scale(-1) }

// Dot returns the inner product of v and o.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := v.sameLen(o); err != nil {
		return 0, fmt.Errorf("Dot: %w", err)
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// Norm1 returns the sum of absolute entries.
// Complexity: O(n).
func (v *Vector) Norm1() float64 {
	var sum float64
	for i := range v.data {
		sum += math.Abs(v.data[i])
	}

	return sum
}

// Norm2 returns the Euclidean norm, computed with overflow-safe rescaling:
// entries are divided by the running maximum magnitude before squaring, so
// vectors with entries near MaxFloat64 do not overflow to +Inf.
// Complexity: O(n).
func (v *Vector) Norm2() float64 {
	var scale, ssq float64 // running max magnitude and scaled sum of squares
	for i := range v.data {
		a := math.Abs(v.data[i])
		if a == 0 {
			continue
		}
		if a > scale {
			r := scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r := a / scale
			ssq += r * r
		}
	}

	return scale * math.Sqrt(ssq)
}

// NormMax returns the maximum absolute entry.
// Complexity: O(n).
func (v *Vector) NormMax() float64 {
	var maxAbs float64
	for i := range v.data {
		if a := math.Abs(v.data[i]); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs
}

// String renders the vector as "[a, b, c]" for diagnostics; not a hot path.
// Complexity: O(n).
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", v.data[i]))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
