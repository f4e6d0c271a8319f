// SPDX-License-Identifier: MIT

package algebra

import "github.com/katalvlaran/clifford/multivector"

// GeometricProduct — the core associative product.
//
// Description:
//
//	Bilinear extension of blade-pair multiplication: the product
//	distributes over addition in both operands, scalar factors multiply
//	straight through, and each blade×blade pair is resolved by
//	concatenating the two index sequences (left then right) and reducing
//	the concatenation under the algebra's signature.
//
// An n-ary call folds left-to-right:
//
//	GP(a, b, c, ...) = GP(GP(a, b), c, ...)
//
// The result is normalized: like-blade terms merged, zero terms dropped.
//
// Complexity: O(|x|·|y|·k²) per fold step, k the summed operand grades.
//
// Errors:
//   - ErrArity          — fewer than two operands.
//   - ErrNilMultivector — a nil operand.
func (a *Algebra) GeometricProduct(operands ...*multivector.Multivector) (*multivector.Multivector, error) {
	if err := checkOperands(operands); err != nil {
		return nil, err
	}

	acc := operands[0]
	for _, next := range operands[1:] {
		var err error
		if acc, err = a.mulPair(acc, next); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// checkOperands enforces the shared variadic-product contract.
func checkOperands(operands []*multivector.Multivector) error {
	if len(operands) < 2 {
		return ErrArity
	}
	for _, m := range operands {
		if m == nil {
			return ErrNilMultivector
		}
	}

	return nil
}

// mulPair is the two-operand geometric product.
func (a *Algebra) mulPair(x, y *multivector.Multivector) (*multivector.Multivector, error) {
	xt, yt := x.Terms(), y.Terms()
	out := make([]multivector.Term, 0, len(xt)*len(yt))
	for _, tx := range xt {
		for _, ty := range yt {
			t, nonzero, err := a.mulTerms(tx, ty)
			if err != nil {
				return nil, err
			}
			if nonzero {
				out = append(out, t)
			}
		}
	}

	return multivector.FromTerms(out...), nil
}

// mulTerms resolves one blade×blade pair via blade reduction. The second
// result is false when the pair annihilates algebraically.
func (a *Algebra) mulTerms(x, y multivector.Term) (multivector.Term, bool, error) {
	xi, yi := x.Blade.Indices(), y.Blade.Indices()
	raw := make([]int, 0, len(xi)+len(yi))
	raw = append(raw, xi...)
	raw = append(raw, yi...)

	sign, b, err := a.reduce(raw)
	if err != nil {
		return multivector.Term{}, false, err
	}
	if sign == 0 {
		return multivector.Term{}, false, nil
	}

	c := x.Coeff.Mul(y.Coeff)
	if sign < 0 {
		c = c.Neg()
	}

	return multivector.Term{Blade: b, Coeff: c}, true, nil
}
