// SPDX-License-Identifier: MIT

package blade

import (
	"fmt"
	"strconv"
	"strings"
)

// Blade is a canonical basis blade: a strictly increasing sequence of
// distinct positive generator indices. The empty sequence is the scalar
// identity blade. Blades are immutable values; grade equals index count.
type Blade struct {
	idx []int
}

// New validates and returns the blade with the given canonical indices.
// Indices must be ≥ 1 (ErrBadIndex) and strictly increasing
// (ErrNotCanonical). New copies its input.
func New(indices ...int) (Blade, error) {
	for i, v := range indices {
		if v < 1 {
			return Blade{}, fmt.Errorf("New(%v): %w", indices, ErrBadIndex)
		}
		if i > 0 && indices[i-1] >= v {
			return Blade{}, fmt.Errorf("New(%v): %w", indices, ErrNotCanonical)
		}
	}
	if len(indices) == 0 {
		return Blade{}, nil
	}
	own := make([]int, len(indices))
	copy(own, indices)

	return Blade{idx: own}, nil
}

// ScalarBlade returns the empty blade, the multiplicative identity.
func ScalarBlade() Blade { return Blade{} }

// Grade returns the number of generators in the blade (0 for the scalar).
func (b Blade) Grade() int { return len(b.idx) }

// IsScalar reports whether b is the empty (scalar identity) blade.
func (b Blade) IsScalar() bool { return len(b.idx) == 0 }

// Indices returns a copy of the blade's index sequence.
func (b Blade) Indices() []int {
	if len(b.idx) == 0 {
		return nil
	}
	out := make([]int, len(b.idx))
	copy(out, b.idx)

	return out
}

// Key returns a compact map key for the blade: "1.2.5", "" for the scalar.
func (b Blade) Key() string {
	if len(b.idx) == 0 {
		return ""
	}
	parts := make([]string, len(b.idx))
	for i, v := range b.idx {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ".")
}

// Equal reports whether two blades have identical index sequences.
func (b Blade) Equal(o Blade) bool {
	if len(b.idx) != len(o.idx) {
		return false
	}
	for i := range b.idx {
		if b.idx[i] != o.idx[i] {
			return false
		}
	}

	return true
}

// Less orders blades by grade, then lexicographically by indices.
// This is the presentation order used throughout the library.
func (b Blade) Less(o Blade) bool {
	if len(b.idx) != len(o.idx) {
		return len(b.idx) < len(o.idx)
	}
	for i := range b.idx {
		if b.idx[i] != o.idx[i] {
			return b.idx[i] < o.idx[i]
		}
	}

	return false
}

// String renders the blade as "e[1,2]"; the scalar blade renders as "1".
func (b Blade) String() string {
	if len(b.idx) == 0 {
		return "1"
	}
	parts := make([]string, len(b.idx))
	for i, v := range b.idx {
		parts[i] = strconv.Itoa(v)
	}

	return "e[" + strings.Join(parts, ",") + "]"
}
