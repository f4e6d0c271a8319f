// Package scalar provides the coefficient ring for multivector arithmetic:
// immutable, interface-valued scalars that support exact rational numbers,
// symbolic variables, and lightly-normalized symbolic expressions.
//
// 🚀 What is scalar?
//
//	Geometric-algebra coefficients are not always floats. Term merging
//	(c₁·B + c₂·B → (c₁+c₂)·B) is only correct when the coefficient ring has
//	decidable equality, and magnitudes of non-Euclidean blades are square
//	roots that may not be real. This package supplies:
//	  • Rat  — exact rationals over math/big (the primary ring)
//	  • Var  — named symbolic variables
//	  • Expr — sums, products, quotients and square roots over the above
//
// ✨ Key properties:
//   - Immutability: every operation returns a new value; Scalars are safe
//     to share across goroutines.
//   - Determinism: expression arguments are kept in a canonical order, so
//     structurally equal builds compare equal regardless of call order.
//   - Light normalization only: ring identities (x+0, x·1, x·0) and rational
//     constants fold; like symbolic terms are NOT collected. Consequently
//     IsZero/Equal on symbolic values are structural — sufficient, not
//     necessary. Exact zero detection is guaranteed for Rat only.
//
// ⚙️ Usage:
//
//	a := scalar.FromInt(2)
//	x := scalar.V("x")
//	s := a.Mul(x).Add(scalar.One()) // 2*x + 1
//	r := scalar.Sqrt(scalar.FromInt(-1)) // sqrt(-1), kept symbolic
//
// Division is a package function because it can fail:
//
//	q, err := scalar.Div(scalar.One(), s) // 1/(2*x + 1)
package scalar
