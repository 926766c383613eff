// Package band_test contains unit tests for the Symmetric band matrix.
package band_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matkit/matkit/band"
	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// buildSymmetricBand assembles the 4×4 bandwidth-2 fixture
//
//	[5 1 2 0]
//	[1 5 3 4]
//	[2 3 5 3]
//	[0 4 3 5]
//
// setting only lower-half coordinates.
func buildSymmetricBand(t *testing.T) *band.Symmetric {
	t.Helper()
	b, err := band.NewSymmetricBuilder(4, 2)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Set(i, i, 5))
	}
	lower := map[[2]int]float64{
		{1, 0}: 1, {2, 0}: 2, {2, 1}: 3, {3, 1}: 4, {3, 2}: 3,
	}
	for idx, v := range lower {
		require.NoError(t, b.Set(idx[0], idx[1], v))
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

// TestSymmetricMirroredAccess verifies both index orders hit the same packed
// slot, for reads and for writes.
func TestSymmetricMirroredAccess(t *testing.T) {
	m := buildSymmetricBand(t)

	lo, err := m.At(3, 1)
	require.NoError(t, err)
	up, err := m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 4.0, lo)
	require.Equal(t, lo, up)

	// A write through upper coordinates lands in the same slot.
	b, err := band.NewSymmetricBuilder(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 1, 9)) // upper order
	sym, err := b.Build()
	require.NoError(t, err)
	v, err := sym.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}

// TestSymmetricOperate checks the lower-only kernel against the
// hand-computed product and the At-based dense reference.
func TestSymmetricOperate(t *testing.T) {
	m := buildSymmetricBand(t)
	x, err := vector.Of(1, 2, 3, 4)
	require.NoError(t, err)

	y, err := m.Operate(x)
	require.NoError(t, err)
	require.Equal(t, []float64{13, 36, 35, 37}, y.Values())
	require.Equal(t, referenceOperate(t, m, x), y.Values())

	// Symmetry: the transpose kernel is the same mapping.
	yt, err := m.OperateTranspose(x)
	require.NoError(t, err)
	require.Equal(t, y.Values(), yt.Values())
}

// TestSymmetricTransposeIsSelf verifies the identity transpose and the
// symmetric shape descriptor.
func TestSymmetricTransposeIsSelf(t *testing.T) {
	m := buildSymmetricBand(t)
	require.Same(t, mat.Matrix(m), m.Transpose())
	require.Equal(t, 4, m.SymmetricOrder())
	require.Equal(t, matdim.MustBandDim(4, 2, 2), m.BandDim())
}

// TestSymmetricBandContainment verifies the out-of-band region is the
// implicit zero on both halves.
func TestSymmetricBandContainment(t *testing.T) {
	m := buildSymmetricBand(t)

	v, err := m.At(3, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
	v, err = m.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = m.At(0, 4)
	require.ErrorIs(t, err, band.ErrOutOfRange)
}

// TestSymmetricBuilderErrors covers the write-error taxonomy and single use.
func TestSymmetricBuilderErrors(t *testing.T) {
	b, err := band.NewSymmetricBuilder(4, 1)
	require.NoError(t, err)

	require.ErrorIs(t, b.Set(0, 2, 1), band.ErrOutOfBand)
	require.ErrorIs(t, b.Set(2, 0, 1), band.ErrOutOfBand) // mirrored off-band
	require.ErrorIs(t, b.Set(4, 0, 1), band.ErrOutOfRange)

	_, err = b.Build()
	require.NoError(t, err)
	require.ErrorIs(t, b.Set(0, 0, 1), band.ErrBuilderReleased)

	_, err = band.NewSymmetricBuilder(0, 0)
	require.ErrorIs(t, err, matdim.ErrBadDim)
	_, err = band.NewSymmetricBuilder(3, 3) // bandwidth must stay below order
	require.ErrorIs(t, err, matdim.ErrBadBand)
}

// TestSymmetricEntryNormMax checks the max over diagonal and lower storage.
func TestSymmetricEntryNormMax(t *testing.T) {
	m := buildSymmetricBand(t)
	assert.Equal(t, 5.0, m.EntryNormMax())
}
