// SPDX-License-Identifier: MIT

// Package vector - single-use Builder.
//
// Purpose:
//   - Stage entries in a private mutable array, then hand the array off to
//     the immutable product in O(1).
//   - Fail fast on any use after Build: the released state is observable via
//     CanBeUsed and enforced by every mutator.
//
// Concurrency:
//   - Builders are single-writer, single-thread objects by contract.
//     Concurrent use of one Builder is undefined behavior, not a checked error.

package vector

import "fmt"

// Builder accumulates entries for exactly one Vector.
// Zero value is not valid; use NewBuilder.
type Builder struct {
	data []float64 // private backing array; nil once released
}

// NewBuilder creates a Builder for a length-n zero vector.
// Returns ErrBadLength when n < 1.
// Complexity: O(n).
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, ErrBadLength
	}

	return &Builder{data: make([]float64, n)}, nil
}

// CanBeUsed reports whether the Builder still owns its backing array.
// Complexity: O(1).
func (b *Builder) CanBeUsed() bool { return b.data != nil }

// guard returns ErrBuilderReleased once Build has been called.
func (b *Builder) guard(method string) error {
	if b.data == nil {
		return fmt.Errorf("Builder.%s: %w", method, ErrBuilderReleased)
	}

	return nil
}

// Set stores Sanitize(v) at index i.
// Returns ErrBuilderReleased after Build, ErrOutOfRange on a bad index.
// Complexity: O(1).
func (b *Builder) Set(i int, v float64) error {
	if err := b.guard("Set"); err != nil {
		return err
	}
	if i < 0 || i >= len(b.data) {
		return fmt.Errorf("Builder.Set(%d): %w", i, ErrOutOfRange)
	}
	b.data[i] = Sanitize(v)

	return nil
}

// SetStrict stores v at index i, rejecting NaN and ±Inf with ErrNotFinite
// instead of sanitizing. Bounds and release semantics match Set.
// Complexity: O(1).
func (b *Builder) SetStrict(i int, v float64) error {
	if err := b.guard("SetStrict"); err != nil {
		return err
	}
	if i < 0 || i >= len(b.data) {
		return fmt.Errorf("Builder.SetStrict(%d): %w", i, ErrOutOfRange)
	}
	if Sanitize(v) != v {
		return fmt.Errorf("Builder.SetStrict(%d): %w", i, ErrNotFinite)
	}
	b.data[i] = v

	return nil
}

// Fill replaces all entries at once (sanitizing each value).
// Returns ErrDimensionMismatch when len(values) differs from the length.
// Complexity: O(n).
func (b *Builder) Fill(values ...float64) error {
	if err := b.guard("Fill"); err != nil {
		return err
	}
	if len(values) != len(b.data) {
		return fmt.Errorf("Builder.Fill: %d values for length %d: %w",
			len(values), len(b.data), ErrDimensionMismatch)
	}
	for i, v := range values {
		b.data[i] = Sanitize(v)
	}

	return nil
}

// Copy returns an independent Builder with the same staged entries.
// Only legal before Build; returns ErrBuilderReleased afterwards.
// Complexity: O(n).
func (b *Builder) Copy() (*Builder, error) {
	if err := b.guard("Copy"); err != nil {
		return nil, err
	}
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &Builder{data: cp}, nil
}

// Build freezes the staged entries into a Vector and releases the Builder.
// The backing array is transferred, not copied: after Build the Vector is
// its only owner, and every further Builder call fails with
// ErrBuilderReleased.
// Complexity: O(1).
func (b *Builder) Build() (*Vector, error) {
	if err := b.guard("Build"); err != nil {
		return nil, err
	}
	data := b.data
	b.data = nil // single-ownership handoff

	return &Vector{data: data}, nil
}
