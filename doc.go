// Package matkit is an immutable linear-algebra kernel: vectors, dense and
// structured matrices, and the overflow-safe determinant machinery that
// factorization code builds on.
//
// 🚀 What is matkit?
//
//	A small, value-oriented library that brings together:
//		• Vectors: immutable float64 sequences with sanitized arithmetic
//		• Dimensions: validated (rows, cols) and (order, lower, upper) shapes
//		• Dense matrices: general, packed symmetric, unitriangular
//		• Band storage: general, symmetric, diagonal, unitriangular — O(bandwidth) kernels
//		• Orthogonal operators: permutations, sign flips, Householder reflections
//		• Determinants: residual × K^shift accumulation, stable across ±1e300 pivots
//
// ✨ Why choose matkit?
//
//   - Immutable by construction – build once through a builder, read from anywhere
//   - Identity-correct caching – Transpose().Transpose() is the same object, not a copy
//   - Singularity as data – a non-invertible matrix reports (nil, false), never an error
//   - Pure Go – no cgo, no assembly
//
// Everything is organized under five subpackages:
//
//	vector/     — the Vector value type, its builder and norms
//	matdim/     — dimension value objects and the band position classifier
//	mat/        — interfaces, dense types, lazy transpose/inverse cells, DetAccumulator
//	band/       — packed band storage and its multiply kernels
//	orthogonal/ — permutation, signature and Householder types
//
// Construction is always builder-first: stage entries, Build() exactly once,
// and the builder releases its storage to the new value. Every built value
// is safe for concurrent readers.
//
// Quick start:
//
//	b, _ := band.NewSymmetricBuilder(4, 2)
//	b.Set(0, 0, 5) // ... stage entries
//	m, _ := b.Build()
//	y, _ := m.Operate(x) // O(n·bandwidth)
//
// See each subpackage's doc.go for the full contract.
package matkit
