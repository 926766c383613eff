// SPDX-License-Identifier: MIT
// Package orthogonal: sentinel error set.
// Conditions shared with the mat package alias its sentinels so errors.Is
// matches uniformly across the module.

package orthogonal

import (
	"errors"

	"github.com/matkit/matkit/mat"
)

// ErrZeroReflection indicates a Householder constructor argument with no
// direction: the zero vector (or one whose norm underflows to zero) defines
// no reflection plane.
var ErrZeroReflection = errors.New("orthogonal: reflection vector must be nonzero")

// Aliases for conditions shared with mat; semantically identical sentinels.
var (
	// ErrOutOfRange indicates indices outside the matrix.
	ErrOutOfRange = mat.ErrOutOfRange

	// ErrBadShape indicates an order below 1.
	ErrBadShape = mat.ErrBadShape

	// ErrBuilderReleased indicates use of a builder after Build.
	ErrBuilderReleased = mat.ErrBuilderReleased
)
