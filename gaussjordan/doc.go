// Package gaussjordan reduces a dense matrix to Reduced Row Echelon Form
// and, in the same sweep, recovers its determinant and inverse.
//
// What
//
//   - Gauss–Jordan elimination with first-nonzero pivot selection.
//   - Every row operation is mirrored onto a companion matrix that starts as
//     the identity, so the companion ends as A⁻¹ when A is invertible.
//   - A scalar accumulator tracks how swaps and scalings change the
//     determinant, so det(A) is read off the reduced form.
//   - Results: RREF (any shape), Determinant and Inverse (square only),
//     Rank, Pivots, Companion, Elapsed.
//
// Zero test
//
//	By default an entry is zero only when it equals 0.0 exactly. Values that
//	should be zero but carry rounding error are treated as pivots. Pass
//	WithTolerance(eps) to compare |v| <= eps instead, or pre-round the input.
//	Tiny nonzero pivots are used as-is: the row is divided by the pivot, so
//	even a subnormal pivot becomes exactly 1.
//
// Overflow
//
//	The NaN/Inf policy guards the input only. Elimination never fails on
//	finite input; a value pushed beyond the float64 range becomes ±Inf and
//	may turn neighbouring values into NaN. The determinant is the signed
//	product of the pivots and can overflow to ±Inf or underflow to 0 on
//	its own; invertibility is decided by rank, not by det != 0.
//	Result.Finite reports whether any of this happened.
//
// Errors
//
//   - empty or ragged input: matrix.ErrInvalidDimensions, matrix.ErrRaggedRows
//     (from New / NewFromRows, before any elimination).
//   - Determinant / Inverse on non-square input: ErrNotSquare.
//   - singular input is not an error: Inverse.Singular() reports it.
//
// Diagnostics
//
//	Nothing is printed. WithOnStep registers a hook called after every
//	elementary operation; WithLogger sends the same steps to a *slog.Logger
//	at Debug level.
//
// Complexity (n rows, m columns)
//
//   - Time:   O(n²·m)
//   - Memory: O(n·m + n²)
//
// Usage
//
//	res, err := gaussjordan.Solve(a)
//	if err != nil {
//		// matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNaNInf, ErrOptionViolation
//	}
//	det, err := res.Determinant() // ErrNotSquare if a is not square
//	inv, _ := res.Inverse()
//	if m, ok := inv.Matrix(); ok {
//		fmt.Println(m)
//	}
package gaussjordan
