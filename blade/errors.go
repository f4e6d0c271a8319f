// SPDX-License-Identifier: MIT
// Package blade: sentinel error set.
// Algorithms in this package return ONLY these sentinels; callers match
// them via errors.Is and may wrap with fmt.Errorf("ctx: %w", err) at outer
// boundaries.

package blade

import "errors"

var (
	// ErrBadSignature is returned when a signature component (p or q) is
	// negative. Signatures are validated eagerly at construction, before
	// any algebra operation runs.
	ErrBadSignature = errors.New("blade: signature components must be non-negative")

	// ErrBadIndex is returned when a generator index is smaller than 1.
	// Indices beyond the declared dimension are NOT an error: they are
	// legal to hold singly and annihilate only when squared.
	ErrBadIndex = errors.New("blade: generator index must be >= 1")

	// ErrNotCanonical is returned by New when the given index sequence is
	// not strictly increasing. Use Reduce to normalize a raw sequence.
	ErrNotCanonical = errors.New("blade: indices must be strictly increasing")
)
