// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-size numeric vector and a
// single-use Builder for one-shot construction.
//
// What & Why:
//
//	Vector is the operand type for every matrix kernel in this module.
//	A built Vector is a pure value: its backing array is owned exclusively,
//	never exposed mutably, and safe for unsynchronized concurrent reads.
//	All arithmetic returns new instances.
//
// Numeric policy:
//
//	Construction clamps every entry to the representable range:
//	+Inf becomes +MaxFloat64, -Inf becomes -MaxFloat64, NaN becomes 0.
//	Construction therefore never fails on a single bad entry; callers who
//	need per-value rejection use Builder.SetStrict, which returns
//	ErrNotFinite instead of sanitizing.
//
// Complexity:
//
//	Len/At run in O(1); arithmetic and norms run in O(n); Build transfers
//	the backing array in O(1) and releases the Builder.
package vector
