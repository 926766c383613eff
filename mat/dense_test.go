// Package mat_test contains unit tests for GeneralDense and its builder.
package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// buildDense is a test helper assembling a GeneralDense from row-major rows.
func buildDense(t *testing.T, rows [][]float64) *mat.GeneralDense {
	t.Helper()
	b := mat.NewDenseBuilder(matdim.MustDim(len(rows), len(rows[0])))
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, b.Set(i, j, v))
		}
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

// denseReferenceOperate computes Σ_j M[i,j]*x[j] through At, the reference
// every specialized kernel is compared against.
func denseReferenceOperate(t *testing.T, m mat.EntryReadable, x *vector.Vector) []float64 {
	t.Helper()
	xs := x.Values()
	out := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i] += v * xs[j]
		}
	}

	return out
}

// TestDenseAtBounds ensures At distinguishes in-range reads from index errors.
func TestDenseAtBounds(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
}

// TestDenseOperate checks M*x and Mᵀ*x against hand-computed products.
func TestDenseOperate(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x, err := vector.Of(1, -1, 2)
	require.NoError(t, err)

	y, err := m.Operate(x)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 11}, y.Values())

	xt, err := vector.Of(1, 2)
	require.NoError(t, err)
	yt, err := m.OperateTranspose(xt)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12, 15}, yt.Values())
}

// TestDenseOperateDimensionMismatch ensures operand lengths are validated
// against Cols (Operate) and Rows (OperateTranspose).
func TestDenseOperateDimensionMismatch(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	bad, err := vector.Of(1, 2)
	require.NoError(t, err)

	_, err = m.Operate(bad)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)

	badT, err := vector.Of(1, 2, 3)
	require.NoError(t, err)
	_, err = m.OperateTranspose(badT)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestDenseTransposeIdentity verifies the identity framework on an
// asymmetric type: cached instance, reference round trip, swapped entries.
func TestDenseTransposeIdentity(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr := m.Transpose()
	require.Same(t, tr, m.Transpose(), "repeated calls must return the cached instance")
	require.Same(t, mat.Matrix(m), tr.Transpose(), "round trip must be reference identity")

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	er, ok := tr.(mat.EntryReadable)
	require.True(t, ok, "transpose view keeps entry access")
	v, err := er.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestDenseTransposeOperate checks that the view's kernels delegate with
// swapped roles.
func TestDenseTransposeOperate(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()

	x, err := vector.Of(1, 2)
	require.NoError(t, err)
	y, err := tr.Operate(x)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12, 15}, y.Values())
}

// TestDenseEntryNormMax checks the max-entry norm.
func TestDenseEntryNormMax(t *testing.T) {
	m := buildDense(t, [][]float64{{1, -9}, {4, 5}})
	assert.Equal(t, 9.0, m.EntryNormMax())
}

// TestDenseBuilderSanitizePolicy covers the sanitize-vs-strict duality.
func TestDenseBuilderSanitizePolicy(t *testing.T) {
	b := mat.NewDenseBuilder(matdim.MustDim(1, 3))

	require.NoError(t, b.Set(0, 0, math.Inf(1)))  // clamped
	require.NoError(t, b.Set(0, 1, math.NaN()))   // zeroed
	require.ErrorIs(t, b.SetStrict(0, 2, math.Inf(-1)), mat.ErrNotFinite)
	require.NoError(t, b.SetStrict(0, 2, -1))

	m, err := b.Build()
	require.NoError(t, err)
	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, got)
	got, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

// TestDenseBuilderFillRow covers whole-row staging: happy path, wrong width,
// bad row index.
func TestDenseBuilderFillRow(t *testing.T) {
	b := mat.NewDenseBuilder(matdim.MustDim(2, 3))
	require.NoError(t, b.FillRow(0, 1, 2, 3))
	require.ErrorIs(t, b.FillRow(0, 1, 2), mat.ErrDimensionMismatch)
	require.ErrorIs(t, b.FillRow(2, 1, 2, 3), mat.ErrOutOfRange)

	m, err := b.Build()
	require.NoError(t, err)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	require.ErrorIs(t, b.FillRow(1, 4, 5, 6), mat.ErrBuilderReleased)
}

// TestDenseBuilderSingleUse verifies the post-Build state error on every
// entry point.
func TestDenseBuilderSingleUse(t *testing.T) {
	b := mat.NewDenseBuilder(matdim.MustDim(2, 2))
	require.True(t, b.CanBeUsed())

	_, err := b.Build()
	require.NoError(t, err)
	require.False(t, b.CanBeUsed())

	require.ErrorIs(t, b.Set(0, 0, 1), mat.ErrBuilderReleased)
	require.ErrorIs(t, b.SetStrict(0, 0, 1), mat.ErrBuilderReleased)
	_, err = b.Copy()
	require.ErrorIs(t, err, mat.ErrBuilderReleased)
	_, err = b.Build()
	require.ErrorIs(t, err, mat.ErrBuilderReleased)
}

// TestDenseBuilderCopyIndependence ensures the pre-build deep copy survives
// the original's release and does not share storage.
func TestDenseBuilderCopyIndependence(t *testing.T) {
	b := mat.NewDenseBuilder(matdim.MustDim(1, 2))
	require.NoError(t, b.Set(0, 0, 7))

	cp, err := b.Copy()
	require.NoError(t, err)
	require.NoError(t, cp.Set(0, 1, 8))

	first, err := b.Build()
	require.NoError(t, err)
	second, err := cp.Build()
	require.NoError(t, err)

	v, err := first.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // original never saw the copy's write
	v, err = second.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v) // copy kept the staged entry
}

// TestDenseString pins the diagnostic row dump.
func TestDenseString(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
