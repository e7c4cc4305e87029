package gaussjordan_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rowreduce/gaussjordan"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSolve_AgainstGonum cross-checks determinant and inverse with gonum/mat.
func TestSolve_AgainstGonum(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				A := dominant(t, n, 1000*seed+int64(n))
				g, err := matrix.ToGonum(A)
				require.NoError(t, err)

				res, err := gaussjordan.Solve(A)
				require.NoError(t, err)

				det, err := res.Determinant()
				require.NoError(t, err)
				assert.InEpsilon(t, mat.Det(g), det, 1e-9)

				var ginv mat.Dense
				require.NoError(t, ginv.Inverse(g))
				want, err := matrix.FromGonum(&ginv)
				require.NoError(t, err)

				inv, err := res.Inverse()
				require.NoError(t, err)
				got, ok := inv.Matrix()
				require.True(t, ok)
				requireClose(t, want, got, 1e-9)
			})
		}
	}
}

// TestSolve_GonumInput runs the engine directly on a gonum matrix.
func TestSolve_GonumInput(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{2, 4, 1, 3})
	in, err := matrix.FromGonum(g)
	require.NoError(t, err)

	det, err := gaussjordan.Determinant(in)
	require.NoError(t, err)
	assert.InDelta(t, mat.Det(g), det, 1e-12)
}
