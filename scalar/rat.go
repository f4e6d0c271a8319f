package scalar

import "math/big"

// Rat is an exact rational scalar backed by math/big.
//
// The zero value of Rat is the ring zero. Rat is immutable: the wrapped
// *big.Rat is never mutated after construction.
type Rat struct {
	r *big.Rat
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	return Rat{r: big.NewRat(n, 1)}
}

// FromRatio returns the rational num/den, or ErrZeroDenominator.
func FromRatio(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}

	return Rat{r: big.NewRat(num, den)}, nil
}

// FromBigRat wraps an existing rational. The input is copied, so later
// mutation of v does not affect the returned scalar.
func FromBigRat(v *big.Rat) Rat {
	return Rat{r: new(big.Rat).Set(v)}
}

// Zero returns the rational 0.
func Zero() Rat { return Rat{} }

// One returns the rational 1.
func One() Rat { return FromInt(1) }

// val returns the wrapped rational, treating the zero value as 0.
func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}

	return x.r
}

// Rat returns a copy of the underlying big.Rat value.
func (x Rat) Rat() *big.Rat {
	return new(big.Rat).Set(x.val())
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Rat) Sign() int { return x.val().Sign() }

// Add implements Scalar. Rational+rational stays exact; anything else
// promotes to a symbolic sum.
func (x Rat) Add(other Scalar) Scalar {
	if y, ok := other.(Rat); ok {
		return Rat{r: new(big.Rat).Add(x.val(), y.val())}
	}

	return newSum(x, other)
}

// Mul implements Scalar. Rational·rational stays exact; anything else
// promotes to a symbolic product.
func (x Rat) Mul(other Scalar) Scalar {
	if y, ok := other.(Rat); ok {
		return Rat{r: new(big.Rat).Mul(x.val(), y.val())}
	}

	return newProd(x, other)
}

// Neg implements Scalar.
func (x Rat) Neg() Scalar {
	return Rat{r: new(big.Rat).Neg(x.val())}
}

// IsZero implements Scalar; exact for rationals.
func (x Rat) IsZero() bool { return x.val().Sign() == 0 }

// Equal implements Scalar; exact for rational operands, false otherwise.
func (x Rat) Equal(other Scalar) bool {
	y, ok := other.(Rat)
	if !ok {
		return false
	}

	return x.val().Cmp(y.val()) == 0
}

// String renders the rational as "n" or "n/d".
func (x Rat) String() string { return x.val().RatString() }
