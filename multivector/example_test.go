package multivector_test

import (
	"fmt"

	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/scalar"
)

// ExampleBasis builds 3 + 2*e[1] - e[1,2] and projects out its grades.
func ExampleBasis() {
	e1, _ := multivector.Basis(1)
	e12, _ := multivector.Basis(1, 2)

	m := multivector.FromScalar(scalar.FromInt(3)).
		Add(e1.Scale(scalar.FromInt(2))).
		Add(e12.Neg())

	fmt.Println(m)
	fmt.Println(m.Grade(1))
	fmt.Println(m.Turn())
	// Output:
	// 3 + 2*e[1] - e[1,2]
	// 2*e[1]
	// 3 + 2*e[1] + e[1,2]
}
