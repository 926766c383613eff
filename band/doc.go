// SPDX-License-Identifier: MIT

// Package band provides compact band-matrix storage and the O(bandwidth)
// multiply kernels built on it.
//
// What & Why:
//
//	A band matrix of order n with bandwidths (kl, ku) stores three flat
//	arrays — diagonal (n), strictly-lower band (n·kl), strictly-upper band
//	(n·ku) — instead of n² entries. Every read, write and multiply routine
//	addresses them through the matdim position classifier and its packed
//	index formulas; the arithmetic is never re-derived locally, because it
//	is only valid inside the classified region.
//
// Types:
//
//	General            — asymmetric (kl, ku) band.
//	Symmetric          — lower-only storage, each stored entry applied twice.
//	Diagonal           — bandwidth 0; determinant/inverse via the scaled
//	                     accumulator; a zero pivot is a normal singular
//	                     outcome, not an error.
//	LowerUnitriangular — strict lower band stored, unit diagonal implicit;
//	                     the inverse is a forward-substitution operator.
//
// Complexity:
//
//	Entry access O(1); Operate/OperateTranspose O(n·(kl+ku)) versus O(n²)
//	dense; builders allocate O(n·(kl+ku+1)) once, checked for overflow
//	before allocation.
package band
