// Package matrix offers dense float64 matrices and the primitives that
// row-reduction algorithms are built from.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set that return
//     errors rather than panicking, and an optional NaN/Inf rejection policy.
//   - Elementary row operations on Dense: SwapRows, ScaleRow, AddScaledRow.
//   - Ingestion and export: NewDenseFromRows (rejects empty and ragged
//     input), DenseOf, ToRows, NewIdentity.
//   - Kernels: Mul and AllClose, with *Dense fast paths.
//   - Converters to and from gonum's mat.Dense.
//
// All failures are package sentinels (ErrInvalidDimensions, ErrRaggedRows,
// ErrOutOfRange, ErrNaNInf, ...) matched with errors.Is.
package matrix
