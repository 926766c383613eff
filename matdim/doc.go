// SPDX-License-Identifier: MIT

// Package matdim provides the dimension value objects consumed by every
// matrix type in this module, plus the band position classifier.
//
// What & Why:
//
//	Dim describes a rows×cols shape; BandDim describes a square band shape
//	(order, lower bandwidth, upper bandwidth). Both are immutable values
//	validated at construction, including an overflow-checked "is the packed
//	storage size representable" predicate, so storage code can allocate
//	without re-checking.
//
//	Position is the single source of truth for band addressing: it maps a
//	(row, col) pair to one of {Diagonal, LowerBand, UpperBand, OutOfBand,
//	OutOfMatrix}. The packed-index formulas (LowerIndex, UpperIndex) are
//	only valid inside the classified region, so every band-aware read,
//	write and multiply routine must classify first — never re-derive the
//	rule locally.
//
// Complexity:
//
//	All functions are O(1), pure, and allocation-free.
package matdim
