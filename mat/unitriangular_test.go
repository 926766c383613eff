// Package mat_test contains unit tests for the dense lower-unitriangular
// type and its substitution inverse.
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/vector"
)

// buildUnitriangular assembles the 3x3 L with strict lower entries
// (1,0)=2, (2,0)=-1, (2,1)=3.
func buildUnitriangular(t *testing.T) *mat.LowerUnitriangular {
	t.Helper()
	b, err := mat.NewLowerUnitriangularBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 2))
	require.NoError(t, b.Set(2, 0, -1))
	require.NoError(t, b.Set(2, 1, 3))
	l, err := b.Build()
	require.NoError(t, err)

	return l
}

// TestUnitriangularAtRegions checks stored, implicit-diagonal and
// implicit-zero reads.
func TestUnitriangularAtRegions(t *testing.T) {
	l := buildUnitriangular(t)

	v, err := l.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = l.At(1, 1) // diagonal is the implicit constant 1
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = l.At(0, 2) // upper triangle is the implicit zero
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = l.At(3, 0)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
}

// TestUnitriangularOperateMatchesReference compares both kernels against
// the At-based dense reference.
func TestUnitriangularOperateMatchesReference(t *testing.T) {
	l := buildUnitriangular(t)
	x, err := vector.Of(1, 2, 3)
	require.NoError(t, err)

	want := denseReferenceOperate(t, l, x)
	got, err := l.Operate(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got.Values(), 1e-12)

	tr, ok := l.Transpose().(mat.EntryReadable)
	require.True(t, ok)
	wantT := denseReferenceOperate(t, tr, x)
	gotT, err := l.OperateTranspose(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantT, gotT.Values(), 1e-12)
}

// TestUnitriangularInverseRoundTrip verifies the substitution operator:
// L⁻¹(L x) == x and L⁻ᵀ(Lᵀ x) == x, with the inverse cached and its own
// inverse resolving back to L.
func TestUnitriangularInverseRoundTrip(t *testing.T) {
	l := buildUnitriangular(t)

	inv, ok := l.Inverse()
	require.True(t, ok, "unitriangular matrices are never singular")
	inv2, ok := l.Inverse()
	require.True(t, ok)
	require.Same(t, inv, inv2, "inverse must be cached")

	x, err := vector.Of(4, -5, 6)
	require.NoError(t, err)

	lx, err := l.Operate(x)
	require.NoError(t, err)
	back, err := inv.Operate(lx)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x.Values(), back.Values(), 1e-12)

	ltx, err := l.OperateTranspose(x)
	require.NoError(t, err)
	backT, err := inv.OperateTranspose(ltx)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x.Values(), backT.Values(), 1e-12)

	// (L⁻¹)⁻¹ is L, the identical object.
	invInv, ok := inv.(mat.Invertible)
	require.True(t, ok)
	orig, ok := invInv.Inverse()
	require.True(t, ok)
	require.Same(t, mat.Matrix(l), orig)
}

// TestUnitriangularDeterminant checks the constant determinant forms.
func TestUnitriangularDeterminant(t *testing.T) {
	l := buildUnitriangular(t)
	require.Equal(t, 1.0, l.Determinant())
	require.Equal(t, 0.0, l.LogAbsDeterminant())
	require.Equal(t, 1, l.SignOfDeterminant())
}

// TestUnitriangularBuilderRegionErrors distinguishes out-of-matrix from
// in-matrix-but-immutable writes.
func TestUnitriangularBuilderRegionErrors(t *testing.T) {
	b, err := mat.NewLowerUnitriangularBuilder(3)
	require.NoError(t, err)

	require.ErrorIs(t, b.Set(0, 3, 1), mat.ErrOutOfRange)    // outside the matrix
	require.ErrorIs(t, b.Set(1, 1, 1), mat.ErrOutOfTriangle) // diagonal is immutable
	require.ErrorIs(t, b.Set(0, 2, 1), mat.ErrOutOfTriangle) // upper region is immutable

	_, err = b.Build()
	require.NoError(t, err)
	require.ErrorIs(t, b.Set(1, 0, 1), mat.ErrBuilderReleased)
}
