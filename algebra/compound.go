// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
)

// Pseudoscalar returns the top-grade blade e[1,2,...,n] as a unit
// multivector. The dimension must be supplied explicitly — it is never
// auto-derived from an operand. Returns ErrBadDimension for n < 1.
func (a *Algebra) Pseudoscalar(n int) (*multivector.Multivector, error) {
	if n < 1 {
		return nil, fmt.Errorf("Pseudoscalar(%d): %w", n, ErrBadDimension)
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}
	b, err := blade.New(indices...)
	if err != nil {
		return nil, err
	}

	return multivector.FromBlade(b, scalar.One()), nil
}

// Dual returns m·Turn(Pseudoscalar(n)), mapping grade r to grade n-r.
func (a *Algebra) Dual(m *multivector.Multivector, n int) (*multivector.Multivector, error) {
	if m == nil {
		return nil, ErrNilMultivector
	}
	ps, err := a.Pseudoscalar(n)
	if err != nil {
		return nil, err
	}

	return a.GeometricProduct(m, ps.Turn())
}

// Meet returns the intersection blade of x and y in dimension n:
//
//	(-1)^(n(n-1)/2) · Dual(Outer(Dual(x,n), Dual(y,n)), n)
//
// normalized to unit magnitude. Meet is only defined up to scale; the
// normalization fixes that ambiguity by convention. A zero (algebraically
// disjoint) meet stays the zero multivector, and a nonzero meet whose
// magnitude is zero (a null blade, possible in mixed signatures) is
// returned un-normalized.
//
// Well-defined for blades and versors; unspecified for arbitrary
// mixed-grade inputs.
func (a *Algebra) Meet(x, y *multivector.Multivector, n int) (*multivector.Multivector, error) {
	if x == nil || y == nil {
		return nil, ErrNilMultivector
	}
	dx, err := a.Dual(x, n)
	if err != nil {
		return nil, err
	}
	dy, err := a.Dual(y, n)
	if err != nil {
		return nil, err
	}
	wedge, err := a.OuterProduct(dx, dy)
	if err != nil {
		return nil, err
	}
	d, err := a.Dual(wedge, n)
	if err != nil {
		return nil, err
	}
	if blade.ReverseSign(n) < 0 { // (-1)^(n(n-1)/2)
		d = d.Neg()
	}
	if d.IsZero() {
		return multivector.Zero(), nil
	}

	mag, err := a.Magnitude(d)
	if err != nil {
		return nil, err
	}
	if mag.IsZero() {
		return d, nil
	}
	inv, err := scalar.Div(scalar.One(), mag)
	if err != nil {
		return nil, err
	}

	return d.Scale(inv), nil
}

// Join returns the union blade of x and y in dimension n:
//
//	Outer(x, Inner(Inverse(Meet(x,y,n)), y))
//
// Returns ErrNonInvertible when the meet is zero or null — the formula has
// no blade to pivot on then. Same blade/versor caveat as Meet.
func (a *Algebra) Join(x, y *multivector.Multivector, n int) (*multivector.Multivector, error) {
	meet, err := a.Meet(x, y, n)
	if err != nil {
		return nil, err
	}
	inv, err := a.Inverse(meet)
	if err != nil {
		return nil, err
	}
	mid, err := a.InnerProduct(inv, y)
	if err != nil {
		return nil, err
	}

	return a.OuterProduct(x, mid)
}
