// Package multivector implements the multivector representation of a
// Clifford algebra: a finite mapping from canonical basis blades to ring
// coefficients, together with the linear (signature-free) operators.
//
// 🚀 What is multivector?
//
//	A multivector is a finite weighted sum of basis blades, e.g.
//	3 + 2*e[1] - e[1,2]. This package provides:
//	  • construction and merge-normalization (like-blade terms are summed,
//	    zero-coefficient terms are dropped)
//	  • linear arithmetic: Add, Sub, Scale, Neg
//	  • grade projection and the homogeneity test
//	  • reversion (Turn) and grade involution — the two sign maps that
//	    depend only on grade, never on the signature
//
// Products live in the algebra package: they require a signature. Values
// here are pure (blade, coefficient) data, so a multivector built under one
// signature remains a valid value under any other.
//
// ✨ Invariants:
//   - no blade maps to a structurally-zero coefficient
//   - all blades are canonical (strictly increasing index sequences)
//   - values are immutable; every operation returns a new multivector
//   - Terms() is deterministic: grade-ascending, then lexicographic
//
// ⚙️ Usage:
//
//	e1, _ := multivector.Basis(1)
//	e12, _ := multivector.Basis(1, 2)
//	m := e1.Scale(scalar.FromInt(2)).Add(e12.Neg())
//	fmt.Println(m) // 2*e[1] - e[1,2]
package multivector
