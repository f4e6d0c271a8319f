// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set. Operations return ONLY these
// sentinels (plus blade package sentinels surfaced unchanged); callers
// match via errors.Is.

package algebra

import "errors"

var (
	// ErrArity is returned by variadic products called with fewer than two
	// operands. This is an API misuse, distinct from an algebraic zero.
	ErrArity = errors.New("algebra: product requires at least two operands")

	// ErrNilMultivector is returned when an operand is a nil *Multivector
	// pointer coming from an errored constructor. (A non-nil zero
	// multivector is a perfectly valid operand.)
	ErrNilMultivector = errors.New("algebra: nil multivector operand")

	// ErrNonInvertible is returned by Inverse (and by Join, whose formula
	// inverts the meet) when the multivector's squared magnitude is zero.
	ErrNonInvertible = errors.New("algebra: non-invertible multivector")

	// ErrBadDimension is returned when a dimension argument is out of range:
	// Pseudoscalar and the operations built on it need n ≥ 1, ToVector
	// needs n ≥ 0.
	ErrBadDimension = errors.New("algebra: dimension out of range")

	// ErrNotVector is returned by ToVector when the multivector has
	// components outside grade 1 or generators beyond the requested length.
	ErrNotVector = errors.New("algebra: multivector is not a pure vector")
)
