package scalar

import (
	"errors"
	"math/big"
)

// Sentinel errors for scalar construction and division.
var (
	// ErrZeroDenominator indicates FromRatio was called with denominator 0.
	ErrZeroDenominator = errors.New("scalar: zero denominator")

	// ErrDivisionByZero indicates Div was called with a zero divisor.
	ErrDivisionByZero = errors.New("scalar: division by zero")
)

// Scalar is an immutable element of a commutative coefficient ring.
//
// Implementations in this package: Rat (exact rationals), Var (symbolic
// variables) and Expr (symbolic compounds). Mixed-type arithmetic promotes
// to Expr; purely rational arithmetic stays exact.
//
// IsZero and Equal are structural for symbolic values: a false result does
// not prove the value is nonzero (or unequal), only that it is not
// syntactically so. For Rat both are exact.
type Scalar interface {
	// Add returns the ring sum of the receiver and other.
	Add(other Scalar) Scalar

	// Mul returns the ring product of the receiver and other.
	Mul(other Scalar) Scalar

	// Neg returns the additive inverse of the receiver.
	Neg() Scalar

	// IsZero reports whether the value is structurally the ring zero.
	IsZero() bool

	// Equal reports structural equality with other.
	Equal(other Scalar) bool

	// String renders the value deterministically.
	String() string
}

// Div returns num/den.
//
// For a rational divisor the quotient is computed exactly; otherwise a
// symbolic quotient node is built. Returns ErrDivisionByZero when den is
// (structurally) zero.
func Div(num, den Scalar) (Scalar, error) {
	if den == nil || den.IsZero() {
		return nil, ErrDivisionByZero
	}
	if num.IsZero() {
		return Zero(), nil
	}
	if rd, ok := den.(Rat); ok {
		inv := new(big.Rat).Inv(rd.val())

		return num.Mul(Rat{r: inv}), nil
	}
	if num.Equal(den) {
		return One(), nil
	}

	return Expr{op: opQuot, args: []Scalar{num, den}}, nil
}

// Sqrt returns the principal square root of x.
//
// Nonnegative rationals with rational roots are resolved exactly; every
// other input (including negative rationals, whose roots are not real)
// yields a symbolic sqrt node that is not simplified further.
func Sqrt(x Scalar) Scalar {
	if rx, ok := x.(Rat); ok {
		v := rx.val()
		if v.Sign() == 0 {
			return Zero()
		}
		if v.Sign() > 0 {
			if root, exact := exactRoot(v); exact {
				return Rat{r: root}
			}
		}
	}

	return Expr{op: opSqrt, args: []Scalar{x}}
}

// exactRoot returns the rational square root of a positive rational, if one
// exists (numerator and denominator both perfect squares).
func exactRoot(v *big.Rat) (*big.Rat, bool) {
	num, den := v.Num(), v.Denom()
	sn := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 {
		return nil, false
	}
	sd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(sn, sd), true
}
