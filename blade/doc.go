// Package blade implements the canonical basis blades of a Clifford algebra
// and the reduction engine that normalizes raw generator products.
//
// 🚀 What is blade?
//
//	A basis blade is a product of distinct generators e_i, written with a
//	strictly increasing index sequence: e[1,3,4]. Any raw product — indices
//	out of order, indices repeated — reduces to a signed canonical blade
//	(or annihilates to zero) under two rules governed by the algebra's
//	signature (p,q):
//	  • anticommutation:  e_i e_j = -e_j e_i  for i ≠ j
//	  • squares:          e_i e_i = +1 (i ≤ p), -1 (p < i ≤ p+q),
//	                      and 0 for i beyond the declared dimension
//
// Reduce is the single place this sign/zero bookkeeping lives; every
// higher-level product delegates to it.
//
// ⚙️ Usage:
//
//	sig, _ := blade.NewSignature(3, 0)          // Euclidean 3-space
//	sign, b, _ := blade.Reduce(sig, []int{2, 1}) // -1, e[1,2]
//	sign, b, _ = blade.Reduce(sig, []int{1, 1})  // +1, scalar blade
//
// Complexity: Reduce is O(k²) in the number of raw indices (adjacent-
// transposition sort), which is exact on the sign bookkeeping and fast for
// the short sequences blades actually have.
//
// Errors:
//   - ErrBadSignature — negative p or q at construction.
//   - ErrBadIndex     — a generator index < 1.
//   - ErrNotCanonical — New called with indices not strictly increasing.
package blade
