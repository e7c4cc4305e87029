// SPDX-License-Identifier: MIT
// Package matrix - converters to and from gonum's mat package.
//
// Purpose:
//   - Hand a Dense to gonum routines (factorizations, norms) without
//     sharing storage.
//   - Ingest any gonum mat.Matrix into a Dense under the numeric policy.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// The flat row-major buffer of a *Dense maps 1:1 onto gonum's layout.
//
// Errors:
//   - ErrNilMatrix; At failures for non-Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	src, err := DenseOf(m, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(src.data))
	copy(data, src.data)

	return mat.NewDense(src.r, src.c, data), nil
}

// FromGonum copies a gonum matrix into a new *Dense.
// Empty gonum matrices are rejected with ErrInvalidDimensions.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (under the default policy).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = a.At(i, j)
		}
	}
	d, err := NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%dx%d): %w", opFromGonum, r, c, err)
	}

	return d, nil
}
