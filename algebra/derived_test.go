package algebra_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOuterProduct_Antisymmetry verifies e[i]∧e[j] = -e[j]∧e[i] and
// e[i]∧e[i] = 0 on generators.
func TestOuterProduct_Antisymmetry(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			ij, err := a.OuterProduct(basis(t, i), basis(t, j))
			require.NoError(t, err)
			ji, err := a.OuterProduct(basis(t, j), basis(t, i))
			require.NoError(t, err)

			if i == j {
				assert.True(t, ij.IsZero(), "e%d∧e%d must vanish", i, j)
				continue
			}
			assert.True(t, ij.Equal(ji.Neg()), "e%d∧e%d must be antisymmetric", i, j)
		}
	}
}

// TestOuterProduct_ScalarScaling verifies the boundary rule: a scalar
// operand acts as ordinary scaling.
func TestOuterProduct_ScalarScaling(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	two := multivector.FromScalar(scalar.FromInt(2))

	out, err := a.OuterProduct(two, basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 1, 2).Scale(scalar.FromInt(2))))
}

// TestOuterProduct_VariadicFold verifies n-ary folding builds the
// pseudoscalar: e1∧e2∧e3 = e[1,2,3].
func TestOuterProduct_VariadicFold(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	out, err := a.OuterProduct(basis(t, 1), basis(t, 2), basis(t, 3))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 1, 2, 3)))

	_, err = a.OuterProduct(basis(t, 1))
	assert.ErrorIs(t, err, algebra.ErrArity)
}

// TestInnerProduct verifies the |j-k| grade target and the all-scalar
// boundary rule (zero if either operand is a pure scalar).
func TestInnerProduct(t *testing.T) {
	a := newAlgebra(t, 3, 0)

	out, err := a.InnerProduct(basis(t, 1), basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 2)), "e1 · e12 must be e2")

	out, err = a.InnerProduct(basis(t, 1), basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.Equal(multivector.FromScalar(scalar.One())), "e1 · e1 must be 1")

	out, err = a.InnerProduct(multivector.FromScalar(scalar.FromInt(2)), basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "a scalar operand contributes zero to the inner product")
}

// TestLeftContraction verifies the k-j target and scalar boundary rules.
func TestLeftContraction(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	two := multivector.FromScalar(scalar.FromInt(2))

	out, err := a.LeftContraction(basis(t, 1), basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 2)), "e1 ⌋ e12 must be e2")

	out, err = a.LeftContraction(basis(t, 1, 2), basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "higher grade cannot left-contract onto lower")

	out, err = a.LeftContraction(two, basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 1).Scale(scalar.FromInt(2))), "scalar left operand scales")

	out, err = a.LeftContraction(basis(t, 1), two)
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "scalar right operand against a blade is zero")
}

// TestRightContraction verifies the mirrored j-k rules.
func TestRightContraction(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	two := multivector.FromScalar(scalar.FromInt(2))

	out, err := a.RightContraction(basis(t, 1, 2), basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 2).Neg()), "e12 ⌊ e1 must be -e2")

	out, err = a.RightContraction(basis(t, 1), basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "higher grade cannot right-contract onto lower")

	out, err = a.RightContraction(basis(t, 1), two)
	require.NoError(t, err)
	assert.True(t, out.Equal(basis(t, 1).Scale(scalar.FromInt(2))), "scalar right operand scales")

	out, err = a.RightContraction(two, basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "scalar left operand against a blade is zero")
}

// TestScalarProduct verifies the grade-0 projection with the
// one-side-scalar exclusion.
func TestScalarProduct(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	two := multivector.FromScalar(scalar.FromInt(2))
	three := multivector.FromScalar(scalar.FromInt(3))

	out, err := a.ScalarProduct(basis(t, 1), basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.Equal(multivector.FromScalar(scalar.One())))

	out, err = a.ScalarProduct(basis(t, 1, 2), basis(t, 1, 2))
	require.NoError(t, err)
	assert.True(t, out.Equal(multivector.FromScalar(scalar.FromInt(-1))))

	out, err = a.ScalarProduct(two, three)
	require.NoError(t, err)
	assert.True(t, out.Equal(multivector.FromScalar(scalar.FromInt(6))), "two scalars multiply")

	out, err = a.ScalarProduct(two, basis(t, 1))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "exactly one scalar side yields zero")

	out, err = a.ScalarProduct(basis(t, 1), basis(t, 2))
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "orthogonal generators share no scalar part")
}

// TestDerived_Bilinearity spot-checks distribution over sums for the
// derived products.
func TestDerived_Bilinearity(t *testing.T) {
	a := newAlgebra(t, 3, 0)
	e1, e12, e13 := basis(t, 1), basis(t, 1, 2), basis(t, 1, 3)

	lhs, err := a.InnerProduct(e1, e12.Add(e13))
	require.NoError(t, err)
	p1, err := a.InnerProduct(e1, e12)
	require.NoError(t, err)
	p2, err := a.InnerProduct(e1, e13)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(p1.Add(p2)), "inner product must distribute over addition")
}
