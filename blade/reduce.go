// SPDX-License-Identifier: MIT

package blade

import "fmt"

// Reduce — blade canonicalization.
//
// Description:
//
//	Reduce takes the generator indices of a raw geometric product, in call
//	order, and normalizes them into a signed canonical blade under the
//	signature sig. This is the only place signature-dependent sign and zero
//	logic lives; every product operation delegates here.
//
// Algorithm Outline:
//  1. Sort the sequence into non-decreasing order by adjacent
//     transpositions. Each swap of two UNEQUAL neighbors anticommutes and
//     flips the accumulated sign; equal neighbors are never swapped, so
//     their (sign-free) transpositions cannot be double-counted.
//  2. Walk the sorted sequence as maximal runs of one index value v with
//     multiplicity k:
//     - v beyond dim(sig) and k ≥ 2  → the whole blade annihilates: sign 0.
//     - v ≤ p                        → pairs square to +1, no sign change.
//     - p < v ≤ p+q                  → each pair squares to -1: flip the
//       sign when ⌊k/2⌋ is odd.
//     A run leaves k mod 2 copies (0 or 1) of v in the canonical blade.
//  3. The surviving indices, already ascending, form the canonical blade;
//     an empty result is the scalar identity.
//
// Results:
//   - sign ∈ {-1, 0, +1}; sign 0 means the product is the algebraic zero
//     (a defined relation, NOT an error) and the returned blade is the
//     scalar blade.
//
// Complexity: O(k²) time, O(k) memory, k = len(indices).
//
// Errors:
//   - ErrBadIndex — some index is < 1. Indices beyond dim(sig) are legal.
func Reduce(sig Signature, indices []int) (sign int, b Blade, err error) {
	for _, v := range indices {
		if v < 1 {
			return 0, Blade{}, fmt.Errorf("Reduce(%v): %w", indices, ErrBadIndex)
		}
	}

	seq := make([]int, len(indices))
	copy(seq, indices)

	// Adjacent-transposition sort with sign tracking. Strict comparison
	// keeps equal neighbors in place, so only anticommuting swaps count.
	sign = 1
	for i := 1; i < len(seq); i++ {
		for j := i; j > 0 && seq[j-1] > seq[j]; j-- {
			seq[j-1], seq[j] = seq[j], seq[j-1]
			sign = -sign
		}
	}

	n := sig.Dim()
	kept := seq[:0]
	for i := 0; i < len(seq); {
		v := seq[i]
		run := i
		for run < len(seq) && seq[run] == v {
			run++
		}
		k := run - i
		i = run

		if k >= 2 && v > n {
			// Squaring a generator outside the declared dimension
			// annihilates the entire blade.
			return 0, Blade{}, nil
		}
		if v > sig.p && (k/2)%2 == 1 {
			sign = -sign // each negative-square pair contributes -1
		}
		if k%2 == 1 {
			kept = append(kept, v)
		}
	}

	if len(kept) == 0 {
		return sign, Blade{}, nil
	}
	own := make([]int, len(kept))
	copy(own, kept)

	return sign, Blade{idx: own}, nil
}

// ReverseSign returns the sign (-1)^(r(r-1)/2) picked up by reversing the
// generator order of a grade-r blade.
func ReverseSign(r int) int {
	if (r*(r-1)/2)%2 == 1 {
		return -1
	}

	return 1
}

// InvolutionSign returns the grade-involution sign (-1)^r.
func InvolutionSign(r int) int {
	if r%2 == 1 {
		return -1
	}

	return 1
}
