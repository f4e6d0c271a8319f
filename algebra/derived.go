// SPDX-License-Identifier: MIT
// Package algebra: derived products. Each is bilinear and defined pointwise
// on (scalar-or-blade, scalar-or-blade) term pairs, then summed. For a pair
// of grades (j,k) the pair's geometric product is a single signed term, so
// projecting it onto the target grade is an exact grade-equality test —
// no full Grade pass is needed.

package algebra

import "github.com/katalvlaran/clifford/multivector"

// gradeRule maps the operand grades (j,k) of one term pair to the grade the
// pair contributes at; ok=false means the pair contributes nothing.
type gradeRule func(j, k int) (target int, ok bool)

// pairwise is the shared bilinear kernel of all derived products.
func (a *Algebra) pairwise(x, y *multivector.Multivector, rule gradeRule) (*multivector.Multivector, error) {
	xt, yt := x.Terms(), y.Terms()
	out := make([]multivector.Term, 0, len(xt)*len(yt))
	for _, tx := range xt {
		for _, ty := range yt {
			target, ok := rule(tx.Blade.Grade(), ty.Blade.Grade())
			if !ok {
				continue
			}
			t, nonzero, err := a.mulTerms(tx, ty)
			if err != nil {
				return nil, err
			}
			if nonzero && t.Blade.Grade() == target {
				out = append(out, t)
			}
		}
	}

	return multivector.FromTerms(out...), nil
}

// OuterProduct — the grade-raising exterior product.
//
// Per term pair of grades (j,k) the contribution is Grade(x·y, j+k); a
// scalar operand therefore acts as ordinary scaling. Antisymmetric on
// distinct generators, zero on a repeated one. Variadic calls fold
// left-to-right like GeometricProduct; ErrArity below two operands.
func (a *Algebra) OuterProduct(operands ...*multivector.Multivector) (*multivector.Multivector, error) {
	if err := checkOperands(operands); err != nil {
		return nil, err
	}

	acc := operands[0]
	for _, next := range operands[1:] {
		var err error
		acc, err = a.pairwise(acc, next, func(j, k int) (int, bool) {
			return j + k, true
		})
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// InnerProduct — the grade-lowering symmetric inner product.
//
// Per term pair of grades (j,k) the contribution is Grade(x·y, |j-k|),
// except that any pair with a pure-scalar operand contributes zero.
func (a *Algebra) InnerProduct(x, y *multivector.Multivector) (*multivector.Multivector, error) {
	if x == nil || y == nil {
		return nil, ErrNilMultivector
	}

	return a.pairwise(x, y, func(j, k int) (int, bool) {
		if j == 0 || k == 0 {
			return 0, false
		}
		if j > k {
			return j - k, true
		}

		return k - j, true
	})
}

// LeftContraction — contraction of x onto y.
//
// Per term pair of grades (j,k) the contribution is Grade(x·y, k-j), zero
// when k-j is negative. A scalar left operand scales; a scalar right
// operand against a non-scalar left contributes zero.
func (a *Algebra) LeftContraction(x, y *multivector.Multivector) (*multivector.Multivector, error) {
	if x == nil || y == nil {
		return nil, ErrNilMultivector
	}

	return a.pairwise(x, y, func(j, k int) (int, bool) {
		if k == 0 && j > 0 {
			return 0, false
		}
		if k-j < 0 {
			return 0, false
		}

		return k - j, true
	})
}

// RightContraction — contraction of y onto x; the mirror of LeftContraction.
func (a *Algebra) RightContraction(x, y *multivector.Multivector) (*multivector.Multivector, error) {
	if x == nil || y == nil {
		return nil, ErrNilMultivector
	}

	return a.pairwise(x, y, func(j, k int) (int, bool) {
		if j == 0 && k > 0 {
			return 0, false
		}
		if j-k < 0 {
			return 0, false
		}

		return j - k, true
	})
}

// ScalarProduct — the grade-0 part of the geometric product.
//
// Pairs where exactly one operand is a pure scalar contribute zero; two
// scalars multiply ordinarily.
func (a *Algebra) ScalarProduct(x, y *multivector.Multivector) (*multivector.Multivector, error) {
	if x == nil || y == nil {
		return nil, ErrNilMultivector
	}

	return a.pairwise(x, y, func(j, k int) (int, bool) {
		if (j == 0) != (k == 0) {
			return 0, false
		}

		return 0, true
	})
}
