// SPDX-License-Identifier: MIT

// Package orthogonal provides matrices whose transpose is their inverse:
// permutations, sign flips and Householder reflections.
//
// What & Why:
//
//	Orthogonal operators need no factorization to invert — applying the
//	transpose is the exact inverse — so every type here exposes Inverse()
//	as the identical object returned by Transpose(). All three apply in
//	O(n): a permutation is an index gather, a signature an entrywise sign
//	flip, a reflection one dot product and one axpy.
//
// Types:
//
//	Permutation — row/col index maps kept mutually inverse; parity tracked
//	              incrementally, so the determinant (±1) is O(1).
//	Signature   — diagonal of ±1 entries; self-inverse.
//	Householder — H = I − 2uuᵀ for a unit reflector u; self-inverse,
//	              det −1 regardless of u.
package orthogonal
