// Package mat_test contains unit tests for the scaled determinant
// accumulator.
package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matkit/matkit/mat"
)

// TestDetAccumulatorEmptyProduct checks the zero value: det of an empty
// pivot stream is 1.
func TestDetAccumulatorEmptyProduct(t *testing.T) {
	var acc mat.DetAccumulator
	require.False(t, acc.IsSingular())
	require.Equal(t, 1.0, acc.Determinant())
	require.Equal(t, 0.0, acc.LogAbsDeterminant())
	require.Equal(t, 1, acc.SignOfDeterminant())
}

// TestDetAccumulatorPlainProduct checks a small pivot stream against the
// direct product.
func TestDetAccumulatorPlainProduct(t *testing.T) {
	var acc mat.DetAccumulator
	for _, p := range []float64{2, -3, 0.5} {
		acc.Accumulate(p)
	}
	require.Equal(t, -3.0, acc.Determinant())
	require.Equal(t, -1, acc.SignOfDeterminant())
	assert.InDelta(t, math.Log(3), acc.LogAbsDeterminant(), 1e-15)
}

// TestDetAccumulatorScaleInvariance covers the extreme regime: pivots
// spanning ~180 orders of magnitude. The naive running product overflows
// after a handful of 1e90 pivots; the scaled form must stay exact.
func TestDetAccumulatorScaleInvariance(t *testing.T) {
	pivots := []float64{1e90, 2e90, -3e90, -4e90, 5e90, 6e-90, -7, 8, 9e-90, 10}

	var acc mat.DetAccumulator
	var wantLog float64
	for _, p := range pivots {
		acc.Accumulate(p)
		wantLog += math.Log(math.Abs(p))
	}

	require.Equal(t, -1, acc.SignOfDeterminant()) // three negative pivots

	gotLog := acc.LogAbsDeterminant()
	require.False(t, math.IsInf(gotLog, 0), "log form must not overflow")
	assert.InEpsilon(t, wantLog, gotLog, 1e-12)

	// The true determinant is 10!·1e270 = 3.6288e276, representable in
	// float64, so the direct materialization must reproduce it.
	det := acc.Determinant()
	require.False(t, math.IsInf(det, 0))
	require.Negative(t, det)
	assert.InEpsilon(t, -3.6288e276, det, 1e-12)
}

// TestDetAccumulatorUnderflowRegime checks that a determinant far below the
// float64 range keeps an accurate log form while the direct form reports 0.
func TestDetAccumulatorUnderflowRegime(t *testing.T) {
	var acc mat.DetAccumulator
	var wantLog float64
	for i := 0; i < 10; i++ {
		acc.Accumulate(1e-90)
		wantLog += math.Log(1e-90)
	}
	assert.InEpsilon(t, wantLog, acc.LogAbsDeterminant(), 1e-12)
	require.Equal(t, 0.0, acc.Determinant()) // 1e-900 underflows float64
	require.Equal(t, 1, acc.SignOfDeterminant())
}

// TestDetAccumulatorOverflowRegime mirrors the underflow case upward.
func TestDetAccumulatorOverflowRegime(t *testing.T) {
	var acc mat.DetAccumulator
	var wantLog float64
	for i := 0; i < 10; i++ {
		acc.Accumulate(-1e90)
		wantLog += math.Log(1e90)
	}
	assert.InEpsilon(t, wantLog, acc.LogAbsDeterminant(), 1e-12)
	require.True(t, math.IsInf(acc.Determinant(), 1), "1e900 exceeds float64; even product of negatives")
	require.Equal(t, 1, acc.SignOfDeterminant())
}

// TestDetAccumulatorSingularLatch verifies the all-or-nothing contract: a
// zero pivot discards prior and later state entirely.
func TestDetAccumulatorSingularLatch(t *testing.T) {
	var acc mat.DetAccumulator
	acc.Accumulate(5)
	acc.Accumulate(0) // non-invertible pivot
	acc.Accumulate(7) // must be ignored: the accumulator is latched

	require.True(t, acc.IsSingular())
	require.Equal(t, 0.0, acc.Determinant())
	require.True(t, math.IsInf(acc.LogAbsDeterminant(), -1))
	require.Equal(t, 0, acc.SignOfDeterminant())
}

// TestDetAccumulatorNonRepresentableReciprocal treats a pivot whose inverse
// overflows float64 (subnormal pivot) as singular, matching the
// "reciprocal not representable" rule.
func TestDetAccumulatorNonRepresentableReciprocal(t *testing.T) {
	var acc mat.DetAccumulator
	acc.Accumulate(5e-324) // 1/pivot == +Inf
	require.True(t, acc.IsSingular())
	require.Equal(t, 0, acc.SignOfDeterminant())
}

// TestDetAccumulatorInfinitePivot checks that ±Inf pivots — the shape an
// overflowed external pivot product arrives in — are clamped to ±MaxFloat64
// and folded normally instead of spinning in the renormalization loop.
func TestDetAccumulatorInfinitePivot(t *testing.T) {
	var acc mat.DetAccumulator
	acc.Accumulate(math.Inf(1)) // must return, clamped to MaxFloat64
	require.False(t, acc.IsSingular())
	assert.InDelta(t, math.Log(math.MaxFloat64), acc.LogAbsDeterminant(), 1e-12)

	acc.Accumulate(math.Inf(-1)) // sign carried through the clamp
	require.Equal(t, -1, acc.SignOfDeterminant())
	assert.InDelta(t, 2*math.Log(math.MaxFloat64), acc.LogAbsDeterminant(), 1e-12)
	require.True(t, math.IsInf(acc.Determinant(), -1)) // true value exceeds float64
}
