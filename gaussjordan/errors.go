// SPDX-License-Identifier: MIT

package gaussjordan

import "errors"

// Sentinel errors for elimination. Input-shape failures surface the matrix
// package sentinels (matrix.ErrInvalidDimensions, matrix.ErrRaggedRows,
// matrix.ErrNilMatrix, matrix.ErrNaNInf) wrapped with call-site context.
var (
	// ErrNotSquare is returned by Determinant and Inverse when the input
	// had Rows != Cols. The RREF of such an input is still available.
	ErrNotSquare = errors.New("gaussjordan: not applicable to non-square matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gaussjordan: invalid option supplied")

	// ErrNilEngine is returned by Solve on a nil *Engine.
	ErrNilEngine = errors.New("gaussjordan: engine is nil")
)
