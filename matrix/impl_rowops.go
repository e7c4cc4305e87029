// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - Expose the three elementary row operations (swap, scale, add-multiple)
//     as in-place kernels over the flat row-major buffer.
//   - Each operation touches exactly one or two contiguous row slices.
//
// Determinism:
//   - Fixed left-to-right column walk; no allocation.
//
// Effect on the determinant (used by elimination callers):
//   - SwapRows       : det' = -det
//   - ScaleRow(s)    : det' = s * det
//   - DivRow(d)      : det' = det / d
//   - AddScaledRow   : det' = det

package matrix

import (
	"fmt"
	"math"
)

// rowSlice returns the live backing slice of row i (no copy).
// Caller guarantees 0 <= i < m.r.
func (m *Dense) rowSlice(i int) []float64 {
	base := i * m.c

	return m.data[base : base+m.c]
}

// checkRow validates a row index against the receiver.
func (m *Dense) checkRow(tag string, i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(tag, i, 0, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows a and b in place.
// Implementation:
//   - Stage 1: validate both indices.
//   - Stage 2: a == b is a no-op; otherwise swap element-wise over the two row slices.
//
// Errors:
//   - ErrOutOfRange when either index is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(a, b int) error {
	if err := m.checkRow(ctxSwapRows, a); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	ra, rb := m.rowSlice(a), m.rowSlice(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by s.
// A non-finite factor is rejected when the numeric policy is on.
//
// Errors:
//   - ErrOutOfRange for a bad index; ErrNaNInf for a non-finite s under policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(i int, s float64) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(s) || math.IsInf(s, 0)) {
		return denseErrorf(ctxScaleRow, i, 0, ErrNaNInf)
	}
	row := m.rowSlice(i)
	for j := range row {
		row[j] *= s
	}

	return nil
}

// DivRow divides every entry of row i by d.
// d/d is exactly 1 and 1/d is never formed, so a subnormal d does not
// overflow. A non-finite d is rejected when the numeric policy is on.
//
// Errors:
//   - ErrOutOfRange for a bad index; ErrDivideByZero for d == 0;
//     ErrNaNInf for a non-finite d under policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) DivRow(i int, d float64) error {
	if err := m.checkRow(ctxDivRow, i); err != nil {
		return err
	}
	if d == 0 {
		return denseErrorf(ctxDivRow, i, 0, ErrDivideByZero)
	}
	if m.validateNaNInf && (math.IsNaN(d) || math.IsInf(d, 0)) {
		return denseErrorf(ctxDivRow, i, 0, ErrNaNInf)
	}
	row := m.rowSlice(i)
	for j := range row {
		row[j] /= d
	}

	return nil
}

// AddScaledRow performs row[dst] += s * row[src].
// dst == src is rejected: it is not an elementary operation (it scales the row by 1+s).
// Entries where row[src] is zero (either sign) are left untouched, so an
// infinite s never turns a 0 into NaN through Inf·0.
//
// Errors:
//   - ErrOutOfRange for bad indices or dst == src.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(dst, src int, s float64) error {
	if err := m.checkRow(ctxAddRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddRow, src); err != nil {
		return err
	}
	if dst == src {
		return fmt.Errorf("Dense.%s(%d,%d): source equals destination: %w", ctxAddRow, dst, src, ErrOutOfRange)
	}
	if s == 0 {
		return nil
	}
	rd, rs := m.rowSlice(dst), m.rowSlice(src)
	for j, v := range rs {
		if v != 0 {
			rd[j] += s * v
		}
	}

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if err := m.checkRow(ctxAt, i); err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.rowSlice(i))

	return out, nil
}
