// Package clifford is a small symbolic engine for Clifford (geometric)
// algebras over an n-dimensional space with arbitrary signature (p,q).
//
// 🚀 What is clifford?
//
//	A pure-Go library for building and manipulating multivectors — finite
//	sums of coefficient-weighted basis blades — and computing the standard
//	suite of geometric-algebra operations:
//	  • Geometric, outer, inner products; left/right contraction; scalar product
//	  • Grade projection, reversion ("turn"), grade involution
//	  • Magnitude, multivector inverse
//	  • Pseudoscalar, dual, meet, join
//
// ✨ Why choose clifford?
//
//   - Exact — coefficients are symbolic ring elements (rationals by default),
//     so e1·e2 = -e2·e1 holds exactly, never "up to epsilon"
//   - Signature-generic — any (p,q): Euclidean, Minkowski, degenerate tails
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — stable term ordering, no global state; every algebra
//     instance owns its own immutable signature
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/      — pluggable commutative-ring coefficients (exact rationals,
//	               symbolic variables and expressions)
//	blade/       — signatures and the blade canonicalization engine: the
//	               sign-tracking reduction of raw generator products
//	multivector/ — the blade→coefficient representation, grade projection,
//	               reversion and involution
//	algebra/     — the product engine bound to one signature: geometric and
//	               derived products, magnitude/inverse, duality, meet, join
//
// Quick example, signature (3,0):
//
//	alg, _ := algebra.New(3, 0)
//	e1, _ := multivector.Basis(1)
//	e2, _ := multivector.Basis(2)
//	p, _ := alg.GeometricProduct(e1, e2) // e[1,2]
//	q, _ := alg.GeometricProduct(e2, e1) // -e[1,2]
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
package clifford
