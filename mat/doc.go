// SPDX-License-Identifier: MIT

// Package mat defines the matrix abstraction for this module and the dense
// concrete types built on it.
//
// What & Why:
//
//	Matrix is the base linear-operator contract (Operate/OperateTranspose/
//	Transpose). Capabilities are layered on top as small interfaces, the
//	way gonum layers Banded/Symmetric over Matrix:
//
//	  - EntryReadable: O(1) entry access plus the max-entry norm.
//	  - Banded: explicit band shape; everything outside is the implicit zero.
//	  - Symmetric: the type's own Transpose returns the receiver itself.
//	  - Invertible: cached inverse, comma-ok (singular is a normal outcome,
//	    not an error).
//	  - Determinantal: determinant, log|det| and sign, computed with the
//	    overflow-safe scaled accumulator (DetAccumulator).
//	  - Orthogonal: Inverse and Transpose are the identical object.
//
//	The skeletal layer (LazyTranspose/LazyInverse) gives every asymmetric
//	concrete type lazy, cached, identity-correct Transpose/Inverse without
//	per-type cache bookkeeping: M.Transpose().Transpose() returns M itself,
//	and repeated calls return the same instance. Symmetric types bypass the
//	caches entirely — their transpose is a zero-cost identity, and wiring a
//	Symmetric type into the asymmetric cache panics at construction.
//
// Concurrency:
//
//	Built matrices are immutable and safe for unsynchronized concurrent
//	reads. The lazy caches publish with a compare-and-swap: racing first
//	calls may each compute, but exactly one result becomes canonical and
//	every caller observes it from then on. Builders are single-thread
//	objects by contract.
package mat
