package algebra_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMagnitude_Euclidean verifies exact magnitudes in Cl(3,0).
func TestMagnitude_Euclidean(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	mag, err := a.Magnitude(basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, mag.Equal(scalar.One()), "unit bivector has magnitude 1")

	mag, err = a.Magnitude(basis(t, 1).Scale(scalar.FromInt(-3)))
	require.NoError(t, err)
	assert.True(t, mag.Equal(scalar.FromInt(3)), "magnitude is scale-absolute")

	mag, err = a.Magnitude(multivector.Zero())
	require.NoError(t, err)
	assert.True(t, mag.IsZero())
}

// TestMagnitude_SymbolicRoot verifies non-square radicands stay symbolic:
// |e1+e2| = sqrt(2) in Cl(3,0).
func TestMagnitude_SymbolicRoot(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	mag, err := a.Magnitude(basis(t, 1).Add(basis(t, 2)))
	require.NoError(t, err)
	assert.Equal(t, "sqrt(2)", mag.String())
}

// TestMagnitude_NonEuclidean verifies a negative radicand is kept as a
// symbolic non-real root: |e12| in Cl(1,1) is sqrt(-1).
func TestMagnitude_NonEuclidean(t *testing.T) {
	a := newAlgebra(t, 1, 1)

	mag, err := a.Magnitude(basis(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "sqrt(-1)", mag.String())
}

// TestInverse_Blade verifies the versor inverse formula on scaled blades:
// (2e1)⁻¹ = e1/2, and m·m⁻¹ = 1.
func TestInverse_Blade(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	half, err := scalar.FromRatio(1, 2)
	require.NoError(t, err)

	m := basis(t, 1).Scale(scalar.FromInt(2))
	inv, err := a.Inverse(m)
	require.NoError(t, err)
	assert.True(t, inv.Equal(basis(t, 1).Scale(half)))

	prod := gp(t, a, m, inv)
	assert.True(t, prod.Equal(multivector.FromScalar(scalar.One())), "m·m⁻¹ must be 1")
}

// TestInverse_Bivector verifies a negative-square blade inverts through
// the reversion sign: e12⁻¹ = -e12 in Cl(3,0).
func TestInverse_Bivector(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	inv, err := a.Inverse(basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, inv.Equal(basis(t, 1, 2).Neg()))
}

// TestInverse_NonInvertible verifies the explicit failure path: the zero
// multivector and a null vector of Cl(1,1) both report ErrNonInvertible.
func TestInverse_NonInvertible(t *testing.T) {
	a := newAlgebra(t, 1, 1)

	_, err := a.Inverse(multivector.Zero())
	assert.ErrorIs(t, err, algebra.ErrNonInvertible)

	null := basis(t, 1).Add(basis(t, 2)) // (e1+e2)² = 1 - 1 = 0
	_, err = a.Inverse(null)
	assert.ErrorIs(t, err, algebra.ErrNonInvertible)
}
