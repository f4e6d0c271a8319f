// SPDX-License-Identifier: MIT
// Package algebra: vector adapters — the linear isomorphism between a
// fixed-length ordered coefficient list and a grade-1 multivector over the
// first generators. Signature-independent, hence package functions.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
)

// FromVector maps an ordered coefficient list to the grade-1 multivector
// coords[0]·e[1] + coords[1]·e[2] + ... Nil or zero entries contribute no
// term.
func FromVector(coords []scalar.Scalar) *multivector.Multivector {
	ts := make([]multivector.Term, 0, len(coords))
	for i, c := range coords {
		if c == nil || c.IsZero() {
			continue
		}
		b, err := blade.New(i + 1)
		if err != nil {
			continue // unreachable: i+1 ≥ 1 is always a valid blade
		}
		ts = append(ts, multivector.Term{Blade: b, Coeff: c})
	}

	return multivector.FromTerms(ts...)
}

// ToVector maps a grade-1 multivector over e[1]..e[n] to its length-n
// coefficient list, absent generators filling in as rational zero.
//
// Errors:
//   - ErrBadDimension — n < 0.
//   - ErrNotVector    — m carries a component outside grade 1, or a
//     generator beyond e[n].
func ToVector(m *multivector.Multivector, n int) ([]scalar.Scalar, error) {
	if m == nil {
		return nil, ErrNilMultivector
	}
	if n < 0 {
		return nil, fmt.Errorf("ToVector(n=%d): %w", n, ErrBadDimension)
	}

	out := make([]scalar.Scalar, n)
	for i := range out {
		out[i] = scalar.Zero()
	}
	for _, t := range m.Terms() {
		if t.Blade.Grade() != 1 {
			return nil, fmt.Errorf("ToVector: grade-%d component %s: %w",
				t.Blade.Grade(), t.Blade, ErrNotVector)
		}
		idx := t.Blade.Indices()[0]
		if idx > n {
			return nil, fmt.Errorf("ToVector: generator %s beyond e[%d]: %w",
				t.Blade, n, ErrNotVector)
		}
		out[idx-1] = t.Coeff
	}

	return out, nil
}
