// SPDX-License-Identifier: MIT
// Package matrix - builders between raw row slices and Dense.
//
// Purpose:
//   - Ingest [][]float64 into a Dense with fail-fast validation
//     (empty, ragged, non-finite) before any allocation of the result.
//   - Export a Dense back to independent [][]float64 rows.
//   - Copy any Matrix implementation into a fresh Dense.
//
// Determinism:
//   - Row-major fill order; the caller's slices are never retained.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFromRows   = "NewDenseFromRows"
	opDenseOf    = "DenseOf"
	opIdentityOf = "NewIdentity"
)

// NewDenseFromRows builds a Dense from nested row slices.
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular, finite under policy).
//   - Stage 2: allocate r×c and copy rows in order.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty first row).
//   - ErrRaggedRows (row length differs from row 0).
//   - ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateRows(rows, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	r, c := len(rows), len(rows[0])
	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i := 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// DenseOf copies any Matrix into a new *Dense.
// For *Dense input the buffer is copied in one call; other
// implementations are read through At in i→j order.
// Non-finite values are rejected when the resolved policy is on.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf, or At failures.
func DenseOf(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	o := gatherOptions(opts...)
	r, c := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	if src, ok := m.(*Dense); ok {
		copy(out.data, src.data)
	} else {
		var v float64
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opDenseOf, err)
				}
				out.data[i*c+j] = v
			}
		}
	}
	if o.validateNaNInf {
		for idx, v := range out.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opDenseOf, denseErrorf(ctxAt, idx/c, idx%c, ErrNaNInf))
			}
		}
	}

	return out, nil
}

// ToRows exports the matrix as freshly allocated row slices.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.rowSlice(i))
	}

	return out
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// opts select the numeric policy carried by the result.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	I, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opIdentityOf, n, err)
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
