package multivector

import "github.com/katalvlaran/clifford/blade"

// Grade returns the homogeneous part of m of grade r: the sum of the terms
// whose blades have exactly r generators. Negative r always yields the zero
// multivector. Grade is linear, and summing Grade(m, r) over all grades
// reconstructs m exactly.
func (m *Multivector) Grade(r int) *Multivector {
	if m.IsZero() || r < 0 {
		return Zero()
	}
	ts := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if t.Blade.Grade() == r {
			ts = append(ts, t)
		}
	}

	return FromTerms(ts...)
}

// MaxGrade returns the highest grade carried by any term of m (0 for the
// zero multivector).
func (m *Multivector) MaxGrade() int {
	top := 0
	if m == nil {
		return top
	}
	for _, t := range m.terms {
		if g := t.Blade.Grade(); g > top {
			top = g
		}
	}

	return top
}

// Turn returns the reversion of m: each grade-r term picks up the sign
// (-1)^(r(r-1)/2), which is exactly the sign of re-canonicalizing the
// blade's reversed index sequence. Turn is an involution: Turn(Turn(m)) == m.
func (m *Multivector) Turn() *Multivector {
	return m.gradeSigned(blade.ReverseSign)
}

// Involution returns the grade involution of m: each grade-r term picks up
// the sign (-1)^r. Involution is an involution in the algebraic sense too.
func (m *Multivector) Involution() *Multivector {
	return m.gradeSigned(blade.InvolutionSign)
}

// gradeSigned applies a grade-dependent sign map termwise.
func (m *Multivector) gradeSigned(sign func(r int) int) *Multivector {
	if m.IsZero() {
		return Zero()
	}
	ts := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if sign(t.Blade.Grade()) < 0 {
			ts = append(ts, Term{Blade: t.Blade, Coeff: t.Coeff.Neg()})
			continue
		}
		ts = append(ts, t)
	}

	return FromTerms(ts...)
}

// IsHomogeneous reports whether m carries no components outside grade r,
// i.e. Grade(m, r) equals m after normalization. The zero multivector is
// homogeneous of every grade.
func (m *Multivector) IsHomogeneous(r int) bool {
	return m.Grade(r).Equal(m)
}
