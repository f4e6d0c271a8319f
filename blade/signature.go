// SPDX-License-Identifier: MIT

package blade

import "fmt"

// Signature is the immutable (p,q) configuration of a Clifford algebra:
// generators 1..p square to +1, generators p+1..p+q square to -1, and any
// generator beyond p+q squares to 0 (it annihilates when repeated).
//
// A Signature is a small value type; copy it freely. The zero value is the
// valid (0,0) signature, whose only non-annihilating blade is the scalar.
type Signature struct {
	p, q int
}

// NewSignature validates and returns the signature (p,q).
// Returns ErrBadSignature when either component is negative.
func NewSignature(p, q int) (Signature, error) {
	if p < 0 || q < 0 {
		return Signature{}, fmt.Errorf("NewSignature(%d,%d): %w", p, q, ErrBadSignature)
	}

	return Signature{p: p, q: q}, nil
}

// P returns the number of positive-square generators.
func (s Signature) P() int { return s.p }

// Q returns the number of negative-square generators.
func (s Signature) Q() int { return s.q }

// Dim returns the total dimension n = p+q.
func (s Signature) Dim() int { return s.p + s.q }

// Square reports how generator i squares under s: +1 for i ≤ p, -1 for
// p < i ≤ p+q, 0 beyond the declared dimension. Returns ErrBadIndex for
// i < 1.
func (s Signature) Square(i int) (int, error) {
	switch {
	case i < 1:
		return 0, fmt.Errorf("Square(%d): %w", i, ErrBadIndex)
	case i <= s.p:
		return 1, nil
	case i <= s.p+s.q:
		return -1, nil
	}

	return 0, nil
}

// String renders the signature as "Cl(p,q)".
func (s Signature) String() string {
	return fmt.Sprintf("Cl(%d,%d)", s.p, s.q)
}
