package multivector

import "github.com/katalvlaran/clifford/scalar"

// Add returns m + o. Like-blade coefficients are summed and zero terms
// dropped, preserving the representation invariant.
func (m *Multivector) Add(o *Multivector) *Multivector {
	ts := make([]Term, 0, termCount(m)+termCount(o))
	ts = append(ts, m.Terms()...)
	ts = append(ts, o.Terms()...)

	return FromTerms(ts...)
}

// Sub returns m - o.
func (m *Multivector) Sub(o *Multivector) *Multivector {
	return m.Add(o.Neg())
}

// Scale returns c·m. A nil or zero c yields the zero multivector.
func (m *Multivector) Scale(c scalar.Scalar) *Multivector {
	if m.IsZero() || c == nil || c.IsZero() {
		return Zero()
	}
	ts := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		ts = append(ts, Term{Blade: t.Blade, Coeff: t.Coeff.Mul(c)})
	}

	return FromTerms(ts...)
}

// Neg returns -m.
func (m *Multivector) Neg() *Multivector {
	if m.IsZero() {
		return Zero()
	}
	ts := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		ts = append(ts, Term{Blade: t.Blade, Coeff: t.Coeff.Neg()})
	}

	return FromTerms(ts...)
}

func termCount(m *Multivector) int {
	if m == nil {
		return 0
	}

	return len(m.terms)
}
