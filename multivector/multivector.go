package multivector

import (
	"sort"
	"strings"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/scalar"
)

// Term is one (blade, coefficient) pair of a multivector.
type Term struct {
	Blade blade.Blade
	Coeff scalar.Scalar
}

// Multivector is an immutable finite sum of coefficient-weighted canonical
// basis blades. The zero value and a nil pointer both denote the zero
// multivector.
type Multivector struct {
	terms map[string]Term
}

// Zero returns the zero multivector.
func Zero() *Multivector { return &Multivector{} }

// FromScalar returns the multivector with a single scalar term c.
func FromScalar(c scalar.Scalar) *Multivector {
	return FromBlade(blade.ScalarBlade(), c)
}

// FromBlade returns the multivector c·b. A nil or zero coefficient yields
// the zero multivector.
func FromBlade(b blade.Blade, c scalar.Scalar) *Multivector {
	if c == nil || c.IsZero() {
		return Zero()
	}

	return &Multivector{terms: map[string]Term{b.Key(): {Blade: b, Coeff: c}}}
}

// FromTerms merges the given terms into a multivector: like-blade
// coefficients are summed and zero terms are dropped.
func FromTerms(ts ...Term) *Multivector {
	acc := make(map[string]Term, len(ts))
	for _, t := range ts {
		if t.Coeff == nil || t.Coeff.IsZero() {
			continue
		}
		key := t.Blade.Key()
		if prev, ok := acc[key]; ok {
			sum := prev.Coeff.Add(t.Coeff)
			if sum.IsZero() {
				delete(acc, key)
				continue
			}
			acc[key] = Term{Blade: t.Blade, Coeff: sum}
			continue
		}
		acc[key] = Term{Blade: t.Blade, Coeff: t.Coeff}
	}
	if len(acc) == 0 {
		return Zero()
	}

	return &Multivector{terms: acc}
}

// Basis returns the unit multivector for the canonical blade with the given
// indices: Basis(1,2) is e[1,2], Basis() is the scalar 1. Index validation
// errors come from blade.New.
func Basis(indices ...int) (*Multivector, error) {
	b, err := blade.New(indices...)
	if err != nil {
		return nil, err
	}

	return FromBlade(b, scalar.One()), nil
}

// Terms returns the terms in presentation order: ascending grade, then
// lexicographic index order.
func (m *Multivector) Terms() []Term {
	if m == nil || len(m.terms) == 0 {
		return nil
	}
	out := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Blade.Less(out[j].Blade) })

	return out
}

// Coefficient returns the coefficient of blade b, or the rational zero when
// b is absent.
func (m *Multivector) Coefficient(b blade.Blade) scalar.Scalar {
	if m == nil {
		return scalar.Zero()
	}
	if t, ok := m.terms[b.Key()]; ok {
		return t.Coeff
	}

	return scalar.Zero()
}

// IsZero reports whether m has no terms.
func (m *Multivector) IsZero() bool { return m == nil || len(m.terms) == 0 }

// IsScalar reports whether m has no terms of grade above 0.
func (m *Multivector) IsScalar() bool {
	if m.IsZero() {
		return true
	}
	for _, t := range m.terms {
		if t.Blade.Grade() > 0 {
			return false
		}
	}

	return true
}

// ScalarPart returns the grade-0 coefficient of m (the rational zero when
// there is none).
func (m *Multivector) ScalarPart() scalar.Scalar {
	return m.Coefficient(blade.ScalarBlade())
}

// Equal reports whether two multivectors carry structurally equal
// coefficients on exactly the same blades. Exact for rational coefficients;
// structural (sufficient, not necessary) for symbolic ones.
func (m *Multivector) Equal(o *Multivector) bool {
	mz, oz := m.IsZero(), o.IsZero()
	if mz || oz {
		return mz == oz
	}
	if len(m.terms) != len(o.terms) {
		return false
	}
	for key, t := range m.terms {
		ot, ok := o.terms[key]
		if !ok || !t.Coeff.Equal(ot.Coeff) {
			return false
		}
	}

	return true
}

// String renders the multivector in presentation order, e.g.
// "3 + 2*e[1] - e[1,2]". The zero multivector renders as "0".
func (m *Multivector) String() string {
	ts := m.Terms()
	if len(ts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ts {
		s := termString(t)
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
			continue
		}
		sb.WriteString(" + ")
		sb.WriteString(s)
	}

	return sb.String()
}

// termString renders one term, eliding unit coefficients on proper blades.
func termString(t Term) string {
	if t.Blade.IsScalar() {
		return t.Coeff.String()
	}
	cs := t.Coeff.String()
	switch cs {
	case "1":
		return t.Blade.String()
	case "-1":
		return "-" + t.Blade.String()
	}
	if strings.Contains(cs, " ") {
		cs = "(" + cs + ")"
	}

	return cs + "*" + t.Blade.String()
}
