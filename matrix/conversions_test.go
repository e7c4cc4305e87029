package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonum(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 6.0, g.At(1, 2))

	// storage is not shared
	g.Set(0, 0, 100)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	m, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	// transposed view goes through mat.Matrix.At
	mt, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, mt.ToRows())

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromGonum(mat.NewDense(1, 1, []float64{math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestGonumRoundTrip checks that Mul agrees with gonum's product.
func TestGonumRoundTrip(t *testing.T) {
	a := RandFilledDense(t, 3, 4, 21)
	b := RandFilledDense(t, 4, 2, 22)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var gc mat.Dense
	gc.Mul(ga, gb)

	want, err := matrix.FromGonum(&gc)
	require.NoError(t, err)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}
