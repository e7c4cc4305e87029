package gaussjordan_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rowreduce/gaussjordan"
	"github.com/katalvlaran/rowreduce/matrix"
)

// ExampleSolve reduces [[2,4],[1,3]] and reads determinant and inverse
// from the same result.
func ExampleSolve() {
	A, _ := matrix.NewDenseFromRows([][]float64{{2, 4}, {1, 3}})
	res, err := gaussjordan.Solve(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	det, _ := res.Determinant()
	inv, _ := res.Inverse()
	fmt.Println("det =", det)
	fmt.Print(inv)
	// Output:
	// det = 2
	// [1.5, -2]
	// [-0.5, 1]
}

// ExampleInverseOf_singular shows that a singular matrix yields a Singular
// Inverse rather than an error.
func ExampleInverseOf_singular() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	inv, err := gaussjordan.InverseOf(A)
	fmt.Println(inv.Singular(), err)
	// Output:
	// true <nil>
}

// ExampleResult_Determinant_nonSquare shows that a wide matrix still has a
// reduced form but no determinant.
func ExampleResult_Determinant_nonSquare() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 0, 2}, {0, 2, 4}})
	res, _ := gaussjordan.Solve(A)
	_, err := res.Determinant()
	fmt.Println(errors.Is(err, gaussjordan.ErrNotSquare))
	fmt.Print(res.RREF())
	// Output:
	// true
	// [1, 0, 2]
	// [0, 1, 2]
}
