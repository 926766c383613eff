// SPDX-License-Identifier: MIT
// Package band: sentinel error set.
// Conditions shared with the mat package alias its sentinels so errors.Is
// matches uniformly across the module; only band-structural conditions get
// their own sentinels here.

package band

import (
	"errors"

	"github.com/matkit/matkit/mat"
)

var (
	// ErrOutOfBand indicates a builder write inside the matrix but outside
	// the declared band. Reads at such positions legitimately return the
	// implicit zero; only mutation is an error.
	ErrOutOfBand = errors.New("band: entry outside the declared band")

	// ErrNotLowerTriangular indicates a band shape with a nonzero upper
	// bandwidth where a lower-triangular shape is required.
	ErrNotLowerTriangular = errors.New("band: lower-triangular band shape required")
)

// Aliases for conditions shared with mat; semantically identical sentinels.
var (
	// ErrOutOfRange indicates indices outside the matrix.
	ErrOutOfRange = mat.ErrOutOfRange

	// ErrOutOfTriangle indicates a write to the immutable implicit region
	// of a unitriangular builder (diagonal or above).
	ErrOutOfTriangle = mat.ErrOutOfTriangle

	// ErrBuilderReleased indicates use of a builder after Build.
	ErrBuilderReleased = mat.ErrBuilderReleased

	// ErrNotFinite is returned by strict builder entry points on NaN/±Inf.
	ErrNotFinite = mat.ErrNotFinite
)
