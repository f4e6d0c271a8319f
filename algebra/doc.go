// Package algebra binds a Clifford signature to the full product engine:
// geometric and derived products, magnitude and inverse, and the compound
// constructions (pseudoscalar, dual, meet, join).
//
// 🚀 What is algebra?
//
//	An Algebra instance owns one immutable signature (p,q) and extends the
//	blade-level reduction of package blade bilinearly to whole multivectors:
//	  • GeometricProduct — associative core product, variadic left fold
//	  • OuterProduct     — grade-raising antisymmetric product, variadic
//	  • InnerProduct, LeftContraction, RightContraction, ScalarProduct
//	  • Magnitude, Inverse (explicit non-invertible failure)
//	  • Pseudoscalar, Dual, Meet, Join
//	  • FromVector / ToVector adapters (grade-1 ↔ coefficient list)
//
// Multiple algebras with different signatures coexist safely in one
// process: there is no ambient state. Multivectors are plain values — a
// value built under one algebra may be fed to another, where future
// products are interpreted under the new signature.
//
// ✨ Guarantees:
//   - eager validation: New rejects negative signatures before any
//     operation runs
//   - every sign decision delegates to blade.Reduce; no product re-derives
//     signature logic
//   - products normalize their result: like-blade terms merged, zero terms
//     dropped
//   - optional memoization of blade reduction (WithMemoization), an
//     RWMutex-guarded cache valid for the algebra's lifetime
//
// ⚙️ Usage:
//
//	alg, err := algebra.New(3, 0) // Euclidean 3-space
//	e1, _ := multivector.Basis(1)
//	e2, _ := multivector.Basis(2)
//	rot, err := alg.GeometricProduct(e1, e2, e1) // -e[2]
//
// Errors:
//   - blade.ErrBadSignature — New with negative p or q.
//   - ErrArity              — variadic product with fewer than two operands.
//   - ErrNilMultivector     — nil operand.
//   - ErrNonInvertible      — Inverse/Join of a zero-magnitude multivector.
//   - ErrBadDimension       — Pseudoscalar/Dual/Meet/Join/ToVector with n < 1
//     (n < 0 for ToVector).
//   - ErrNotVector          — ToVector of a non-grade-1 multivector.
//
// Meet and Join are rigorously defined for blades and versors, and only up
// to scale; Meet is normalized to unit magnitude by convention. Feeding
// arbitrary mixed-grade multivectors is not rejected (the distinction is
// not decidable symbolically) but the result is then unspecified.
package algebra
