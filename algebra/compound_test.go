package algebra_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPseudoscalar verifies construction and the dimension guard.
func TestPseudoscalar(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	ps, err := a.Pseudoscalar(3)
	require.NoError(t, err)
	assert.True(t, ps.Equal(basis(t, 1, 2, 3)))

	_, err = a.Pseudoscalar(0)
	assert.ErrorIs(t, err, algebra.ErrBadDimension)

	_, err = a.Pseudoscalar(-2)
	assert.ErrorIs(t, err, algebra.ErrBadDimension)
}

// TestDual_Euclidean3 pins the concrete scenario Dual(e1, 3) = -e[2,3] and
// the grade-complement property.
func TestDual_Euclidean3(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	d, err := a.Dual(basis(t, 1), 3)
	require.NoError(t, err)
	assert.True(t, d.Equal(basis(t, 2, 3).Neg()))

	d, err = a.Dual(basis(t, 1, 2), 3)
	require.NoError(t, err)
	assert.True(t, d.IsHomogeneous(1), "dual of a bivector in 3-space is a vector")
}

// TestMeet_Planes verifies the intersection of the planes e12 and e23 in
// Cl(3,0): the common line e2, normalized to unit magnitude.
func TestMeet_Planes(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	meet, err := a.Meet(basis(t, 1, 2), basis(t, 2, 3), 3)
	require.NoError(t, err)
	assert.True(t, meet.IsHomogeneous(1), "two planes meet in a line")
	assert.True(t, meet.Equal(basis(t, 2).Neg()), "the common direction is ±e2")

	mag, err := a.Magnitude(meet)
	require.NoError(t, err)
	assert.True(t, mag.Equal(scalar.One()), "a nondegenerate meet is normalized to magnitude 1")
}

// TestMeet_Disjoint verifies an empty intersection yields the zero
// multivector, not an error.
func TestMeet_Disjoint(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	meet, err := a.Meet(basis(t, 1), basis(t, 2), 3)
	require.NoError(t, err)
	assert.True(t, meet.IsZero(), "duals sharing a generator wedge to zero")
}

// TestJoin_Planes verifies the span of the planes e12 and e23 is the full
// 3-space pseudoscalar, up to the conventional sign.
func TestJoin_Planes(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	join, err := a.Join(basis(t, 1, 2), basis(t, 2, 3), 3)
	require.NoError(t, err)
	assert.True(t, join.Equal(basis(t, 1, 2, 3).Neg()))
}

// TestJoin_ZeroMeet verifies that a zero meet surfaces ErrNonInvertible
// rather than garbage arithmetic.
func TestJoin_ZeroMeet(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	_, err := a.Join(basis(t, 1), basis(t, 2), 3)
	assert.ErrorIs(t, err, algebra.ErrNonInvertible)
}

// TestCompound_NilOperands verifies nil propagation across the compound
// surface.
func TestCompound_NilOperands(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	_, err := a.Dual(nil, 3)
	assert.ErrorIs(t, err, algebra.ErrNilMultivector)

	_, err = a.Meet(nil, multivector.Zero(), 3)
	assert.ErrorIs(t, err, algebra.ErrNilMultivector)
}
