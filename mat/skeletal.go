// SPDX-License-Identifier: MIT

// Package mat - skeletal transpose/inverse framework.
//
// Purpose:
//   - Own the memoized transpose/inverse cells once, so the ~12 concrete
//     matrix types in this module never hand-roll cache fields or identity
//     bookkeeping (each a potential aliasing bug: two value-equal transposes
//     that are not reference-equal break callers relying on identity).
//   - Publish race-tolerantly: the computation is pure and idempotent, so
//     two first callers may both compute, but exactly one result wins the
//     compare-and-swap and becomes canonical for every later call.
//   - Reject mis-wiring at construction: a Symmetric type hooked into the
//     asymmetric cache is a programmer error and panics immediately.

package mat

import (
	"sync/atomic"

	"github.com/matkit/matkit/matdim"
	"github.com/matkit/matkit/vector"
)

// LazyTranspose memoizes a matrix's transpose.
//
// Concrete asymmetric types embed it by value and call Init exactly once at
// construction with a one-shot compute hook. The hook must return a matrix
// whose own Transpose() resolves back to the origin; the usual way is to
// Prime the created instance's cell with the origin (see TransposeView).
// LazyTranspose must not be copied after first use.
type LazyTranspose struct {
	create func() Matrix
	cell   atomic.Pointer[Matrix]
}

// Init wires the compute hook. Panics when self implements Symmetric:
// symmetric types must use the identity transpose, never this cache, and
// the mix is rejected at object creation rather than at use time.
func (lt *LazyTranspose) Init(self Matrix, create func() Matrix) {
	if _, ok := self.(Symmetric); ok {
		panic("mat: Symmetric type wired into the asymmetric transpose cache")
	}
	lt.create = create
}

// Prime publishes a known transpose before any lookup. Used by compute
// hooks to give the freshly created transpose a back-reference to its
// origin, making m.Transpose().Transpose() a reference-identity round trip.
func (lt *LazyTranspose) Prime(m Matrix) {
	lt.cell.CompareAndSwap(nil, &m)
}

// Get returns the cached transpose, computing it at most observably once.
func (lt *LazyTranspose) Get() Matrix {
	if p := lt.cell.Load(); p != nil {
		return *p
	}
	m := lt.create()
	if lt.cell.CompareAndSwap(nil, &m) {
		return m
	}
	// Another caller published first; adopt the canonical instance.
	return *lt.cell.Load()
}

// inverseResult carries the comma-ok pair through the atomic cell.
type inverseResult struct {
	m  Matrix
	ok bool
}

// LazyInverse memoizes a matrix's inverse, including the singular outcome:
// (nil, false) is cached exactly like a present inverse.
// Same embedding, publish and copy rules as LazyTranspose.
type LazyInverse struct {
	create func() (Matrix, bool)
	cell   atomic.Pointer[inverseResult]
}

// Init wires the compute hook.
func (li *LazyInverse) Init(create func() (Matrix, bool)) {
	li.create = create
}

// Prime publishes a known inverse before any lookup (e.g. the inverse's own
// inverse is the origin).
func (li *LazyInverse) Prime(m Matrix, ok bool) {
	li.cell.CompareAndSwap(nil, &inverseResult{m: m, ok: ok})
}

// Get returns the cached inverse pair, computing it at most observably once.
func (li *LazyInverse) Get() (Matrix, bool) {
	if p := li.cell.Load(); p != nil {
		return p.m, p.ok
	}
	m, ok := li.create()
	res := &inverseResult{m: m, ok: ok}
	if li.cell.CompareAndSwap(nil, res) {
		return m, ok
	}
	p := li.cell.Load()

	return p.m, p.ok
}

// transposeView is an implicit transpose over an EntryReadable origin: it
// wraps the same backing storage read-only, swapping index roles. Grounded
// on the implicit-transpose wrapper idiom (gonum's TransposeBand).
type transposeView struct {
	origin EntryReadable
}

// Compile-time conformance.
var _ EntryReadable = (*transposeView)(nil)

func (t *transposeView) Rows() int { return t.origin.Cols() }
func (t *transposeView) Cols() int { return t.origin.Rows() }

func (t *transposeView) Operate(x *vector.Vector) (*vector.Vector, error) {
	return t.origin.OperateTranspose(x)
}

func (t *transposeView) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return t.origin.Operate(x)
}

func (t *transposeView) At(row, col int) (float64, error) {
	return t.origin.At(col, row)
}

func (t *transposeView) EntryNormMax() float64 { return t.origin.EntryNormMax() }

// Transpose resolves back to the origin: the round trip is identity.
func (t *transposeView) Transpose() Matrix { return t.origin }

// TransposeView builds the implicit transpose of origin. Intended as the
// body of a LazyTranspose compute hook; the view's own Transpose() returns
// origin, so the identity contract holds without a second cache.
func TransposeView(origin EntryReadable) EntryReadable {
	return &transposeView{origin: origin}
}

// bandTransposeView augments transposeView with the swapped band shape for
// Banded origins.
type bandTransposeView struct {
	transposeView
	bd matdim.BandDim
}

var _ Banded = (*bandTransposeView)(nil)

func (t *bandTransposeView) BandDim() matdim.BandDim { return t.bd }

// BandTransposeView builds the implicit transpose of a Banded origin,
// carrying the (upper, lower)-swapped shape descriptor.
func BandTransposeView(origin Banded) Banded {
	return &bandTransposeView{
		transposeView: transposeView{origin: origin},
		bd:            origin.BandDim().Transposed(),
	}
}

// transposeOperator is the Matrix-only analogue of transposeView, for
// operator types without O(1) entry access (substitution inverses).
type transposeOperator struct {
	origin Matrix
}

var _ Matrix = (*transposeOperator)(nil)

func (t *transposeOperator) Rows() int { return t.origin.Cols() }
func (t *transposeOperator) Cols() int { return t.origin.Rows() }

func (t *transposeOperator) Operate(x *vector.Vector) (*vector.Vector, error) {
	return t.origin.OperateTranspose(x)
}

func (t *transposeOperator) OperateTranspose(x *vector.Vector) (*vector.Vector, error) {
	return t.origin.Operate(x)
}

func (t *transposeOperator) Transpose() Matrix { return t.origin }

// TransposeOperator builds the implicit transpose of an operator-only
// Matrix. Same identity contract as TransposeView.
func TransposeOperator(origin Matrix) Matrix {
	return &transposeOperator{origin: origin}
}
