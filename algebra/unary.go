// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
)

// Magnitude returns sqrt(⟨m·Turn(m)⟩₀), the magnitude of m under the
// algebra's signature.
//
// For non-Euclidean signatures the radicand may be negative; the result is
// then a symbolic (non-real) square root and is not simplified further.
// The zero multivector has magnitude 0.
func (a *Algebra) Magnitude(m *multivector.Multivector) (scalar.Scalar, error) {
	if m == nil {
		return nil, ErrNilMultivector
	}
	sq, err := a.magnitudeSquared(m)
	if err != nil {
		return nil, err
	}

	return scalar.Sqrt(sq), nil
}

// magnitudeSquared returns the grade-0 coefficient of m·Turn(m), the
// radicand of Magnitude. Working with the radicand keeps Inverse and Meet
// in the rational ring whenever the inputs are rational.
func (a *Algebra) magnitudeSquared(m *multivector.Multivector) (scalar.Scalar, error) {
	gp, err := a.GeometricProduct(m, m.Turn())
	if err != nil {
		return nil, err
	}

	return gp.ScalarPart(), nil
}

// Inverse returns Turn(m)/Magnitude(m)², or ErrNonInvertible when the
// squared magnitude is zero.
//
// The formula is exact for single blades and versors (invertible products
// of vectors). For arbitrary mixed multivectors it is NOT a general
// inverse; callers relying on it outside the versor case get the formula,
// not a guarantee. Zero detection on symbolic coefficients is structural,
// so a symbolically-disguised zero magnitude may slip through.
func (a *Algebra) Inverse(m *multivector.Multivector) (*multivector.Multivector, error) {
	if m == nil {
		return nil, ErrNilMultivector
	}
	sq, err := a.magnitudeSquared(m)
	if err != nil {
		return nil, err
	}
	if sq.IsZero() {
		return nil, ErrNonInvertible
	}
	inv, err := scalar.Div(scalar.One(), sq)
	if err != nil {
		return nil, ErrNonInvertible
	}

	return m.Turn().Scale(inv), nil
}
