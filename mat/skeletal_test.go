// Package mat_test contains unit tests for the skeletal transpose/inverse
// framework: cache stability, identity round trips, and the race-tolerant
// publish under concurrent first access.
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/matkit/matkit/mat"
	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// TestTransposeCacheStability verifies repeated calls observe one instance.
func TestTransposeCacheStability(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	first := m.Transpose()
	for i := 0; i < 8; i++ {
		require.Same(t, first, m.Transpose())
	}
}

// TestTransposeRaceCanonical launches many goroutines racing the first
// Transpose call: each may compute independently, but all must observe the
// same canonical instance.
func TestTransposeRaceCanonical(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	const workers = 32
	results := make([]mat.Matrix, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			results[w] = m.Transpose()

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := 1; w < workers; w++ {
		require.Same(t, results[0], results[w], "worker %d observed a non-canonical transpose", w)
	}
}

// TestInverseRaceCanonical mirrors the race test on the inverse cell.
func TestInverseRaceCanonical(t *testing.T) {
	l := buildUnitriangular(t)

	const workers = 32
	results := make([]mat.Matrix, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			inv, ok := l.Inverse()
			if !ok {
				t.Error("unitriangular inverse reported singular")
			}
			results[w] = inv

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := 1; w < workers; w++ {
		require.Same(t, results[0], results[w])
	}
}

// TestConcurrentReads exercises unsynchronized concurrent Operate calls on
// one built matrix; results must all agree (pure function of the instance).
func TestConcurrentReads(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	x, err := vector.Of(1, -2, 3)
	require.NoError(t, err)

	want, err := m.Operate(x)
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			got, opErr := m.Operate(x)
			if opErr != nil {
				return opErr
			}
			require.Equal(t, want.Values(), got.Values())

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestSymmetricSkeletonMixPanics verifies the construction-time self-check:
// wiring a Symmetric type into the asymmetric transpose cache must panic
// at creation, not at use.
func TestSymmetricSkeletonMixPanics(t *testing.T) {
	sym := buildSymmetric(t, 2, func(b *mat.SymmetricDenseBuilder) {
		require.NoError(t, b.Set(1, 0, 1))
	})

	var lt mat.LazyTranspose
	require.Panics(t, func() {
		lt.Init(sym, func() mat.Matrix { return sym })
	})
}

// TestTransposeViewHelpers covers the exported view constructors directly,
// including the banded variant's swapped shape.
func TestTransposeViewHelpers(t *testing.T) {
	m := buildDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	view := mat.TransposeView(m)
	require.Equal(t, 3, view.Rows())
	require.Equal(t, 2, view.Cols())
	v, err := view.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	require.Same(t, mat.Matrix(m), view.Transpose())

	id, err := mat.NewIdentity(4)
	require.NoError(t, err)
	bview := mat.BandTransposeView(id)
	require.Equal(t, matdim.MustBandDim(4, 0, 0), bview.BandDim())
}
