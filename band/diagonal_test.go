// Package band_test contains unit tests for the Diagonal matrix.
package band_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matkit/matkit/band"
	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/vector"
)

// buildDiagonal assembles a Diagonal with the given entries.
func buildDiagonal(t *testing.T, entries ...float64) *band.Diagonal {
	t.Helper()
	b, err := band.NewDiagonalBuilder(len(entries))
	require.NoError(t, err)
	for i, v := range entries {
		require.NoError(t, b.SetDiagonal(i, v))
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

// TestDiagonalOperate checks the entrywise kernel and its self-transpose.
func TestDiagonalOperate(t *testing.T) {
	m := buildDiagonal(t, 2, -3, 0.5)
	x, err := vector.Of(4, 2, 8)
	require.NoError(t, err)

	y, err := m.Operate(x)
	require.NoError(t, err)
	require.Equal(t, []float64{8, -6, 4}, y.Values())
	require.Equal(t, referenceOperate(t, m, x), y.Values())

	yt, err := m.OperateTranspose(x)
	require.NoError(t, err)
	require.Equal(t, y.Values(), yt.Values())
	require.Same(t, mat.Matrix(m), m.Transpose())
}

// TestDiagonalDeterminant pins the plain-product path: no scaling involved.
func TestDiagonalDeterminant(t *testing.T) {
	m := buildDiagonal(t, 2, -3, 0.5)

	require.Equal(t, -3.0, m.Determinant())
	require.Equal(t, -1, m.SignOfDeterminant())
	assert.InDelta(t, math.Log(3), m.LogAbsDeterminant(), 1e-12)
}

// TestDiagonalDeterminantScaleInvariance runs entries whose running product
// would overflow and underflow float64 long before finishing, yet whose true
// determinant is an ordinary number.
func TestDiagonalDeterminantScaleInvariance(t *testing.T) {
	m := buildDiagonal(t, 1e200, 4e200, 1e-250, -3, 1e-150, 2e-200, 1e300)

	// 1e200·4e200·1e-250·(-3)·1e-150·2e-200·1e300 = -2.4e101.
	require.Equal(t, -1, m.SignOfDeterminant())
	assert.InEpsilon(t, -2.4e101, m.Determinant(), 1e-12)
	assert.InDelta(t, math.Log(2.4)+101*math.Log(10), m.LogAbsDeterminant(), 1e-9)
}

// TestDiagonalDeterminantReferenceCase pins the mixed-magnitude product
// 10!·1e270 with three negative pivots: entries span 180 orders of
// magnitude, yet ln|det| must match Σ ln|entry| to 1e-12 relative.
func TestDiagonalDeterminantReferenceCase(t *testing.T) {
	entries := []float64{1e90, 2e90, -3e90, -4e90, 5e90, 6e-90, -7, 8, 9e-90, 10}
	m := buildDiagonal(t, entries...)

	var wantLogAbs float64
	for _, v := range entries {
		wantLogAbs += math.Log(math.Abs(v))
	}
	require.Equal(t, -1, m.SignOfDeterminant())
	assert.InEpsilon(t, wantLogAbs, m.LogAbsDeterminant(), 1e-12)
	assert.InEpsilon(t, -3.6288e276, m.Determinant(), 1e-12)
}

// TestDiagonalDeterminantBeyondFloatRange exercises the log form where the
// materialized determinant saturates.
func TestDiagonalDeterminantBeyondFloatRange(t *testing.T) {
	over := buildDiagonal(t, 1e200, 1e200, 1e200)
	require.True(t, math.IsInf(over.Determinant(), 1))
	assert.InDelta(t, 600*math.Log(10), over.LogAbsDeterminant(), 1e-6)

	under := buildDiagonal(t, 1e-200, 1e-200, 1e-200)
	require.Equal(t, 0.0, under.Determinant())
	require.Equal(t, 1, under.SignOfDeterminant(), "underflow is not singularity")
	assert.InDelta(t, -600*math.Log(10), under.LogAbsDeterminant(), 1e-6)
}

// TestDiagonalSingular verifies the zero-pivot outcome: determinant exactly
// 0, ln|det| = -Inf, sign 0, inverse absent — all as values, never errors.
func TestDiagonalSingular(t *testing.T) {
	m := buildDiagonal(t, 2, 0, 3)

	require.Equal(t, 0.0, m.Determinant())
	require.True(t, math.IsInf(m.LogAbsDeterminant(), -1))
	require.Equal(t, 0, m.SignOfDeterminant())

	inv, ok := m.Inverse()
	require.False(t, ok)
	require.Nil(t, inv)
	// The singular outcome is cached like a present one.
	_, ok = m.Inverse()
	require.False(t, ok)
}

// TestDiagonalInverse checks reciprocal entries, memoization and the primed
// reference-identity round trip.
func TestDiagonalInverse(t *testing.T) {
	m := buildDiagonal(t, 2, 4, -8)

	inv, ok := m.Inverse()
	require.True(t, ok)
	again, _ := m.Inverse()
	require.Same(t, inv, again, "repeated calls must return the cached instance")

	d, ok := inv.(*band.Diagonal)
	require.True(t, ok)
	v, err := d.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, -0.125, v)

	back, ok := d.Inverse()
	require.True(t, ok)
	require.Same(t, mat.Matrix(m), back, "the inverse's inverse is the origin")

	// M⁻¹(Mx) = x exactly for power-of-two entries.
	x, err := vector.Of(3, -5, 7)
	require.NoError(t, err)
	mx, err := m.Operate(x)
	require.NoError(t, err)
	round, err := inv.Operate(mx)
	require.NoError(t, err)
	require.Equal(t, x.Values(), round.Values())
}

// TestDiagonalBuilderErrors covers the write-error taxonomy.
func TestDiagonalBuilderErrors(t *testing.T) {
	b, err := band.NewDiagonalBuilder(3)
	require.NoError(t, err)

	require.ErrorIs(t, b.Set(0, 1, 1), band.ErrOutOfBand)
	require.ErrorIs(t, b.Set(3, 3, 1), band.ErrOutOfRange)
	require.ErrorIs(t, b.SetStrict(0, 0, math.Inf(1)), band.ErrNotFinite)

	_, err = b.Build()
	require.NoError(t, err)
	require.ErrorIs(t, b.SetDiagonal(0, 1), band.ErrBuilderReleased)
	_, err = b.Build()
	require.ErrorIs(t, err, band.ErrBuilderReleased)
}
