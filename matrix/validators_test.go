package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateBinarySameShape(t *testing.T) {
	a, b := MustDense(t, 2, 3), MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateBinarySameShape(a, b))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateRows(t *testing.T) {
	require.NoError(t, matrix.ValidateRows([][]float64{{1, 2}, {3, 4}}, true))
	require.NoError(t, matrix.ValidateRows([][]float64{{math.NaN()}}, false))
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{math.NaN()}}, true), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{1}, {}}, true), matrix.ErrRaggedRows)
	require.ErrorIs(t, matrix.ValidateRows(nil, true), matrix.ErrInvalidDimensions)
}
