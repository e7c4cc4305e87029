// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"time"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Result holds everything one elimination produced. It is immutable:
// accessors hand out copies. Matrices handed out accept non-finite values
// in Set, since they may already hold them.
type Result struct {
	rref      *matrix.Dense
	companion *matrix.Dense
	pivots    []int
	k         float64
	det       float64
	square    bool
	finite    bool
	elapsed   time.Duration
}

// Rows returns the row count of the input.
func (r *Result) Rows() int { return r.rref.Rows() }

// Cols returns the column count of the input.
func (r *Result) Cols() int { return r.rref.Cols() }

// IsSquare reports whether the input had Rows == Cols.
func (r *Result) IsSquare() bool { return r.square }

// RREF returns the reduced row echelon form; same shape as the input.
func (r *Result) RREF() *matrix.Dense { return r.rref.CloneDense() }

// Companion returns E (n×n), the product of every elementary operation
// applied, so that E·A equals RREF(A). For a non-singular square input E is
// the inverse; otherwise it is only the closest thing elimination reached
// and Inverse reports no inverse.
func (r *Result) Companion() *matrix.Dense { return r.companion.CloneDense() }

// Pivots returns the pivot column of each pivot row, in row order.
func (r *Result) Pivots() []int {
	out := make([]int, len(r.pivots))
	copy(out, r.pivots)

	return out
}

// Rank is the number of pivots.
func (r *Result) Rank() int { return len(r.pivots) }

// K returns the accumulator with det(RREF) = K·det(A).
// K is a product of reciprocal pivots and is ±Inf when a pivot is subnormal;
// Determinant does not depend on it.
func (r *Result) K() float64 { return r.k }

// Finite reports whether RREF, Companion and (for square input) the
// determinant hold no NaN or ±Inf. It is false when elimination overflowed
// the float64 range, or when non-finite input was admitted with WithAllowNaNInf.
func (r *Result) Finite() bool { return r.finite }

// Elapsed is the wall time spent in Solve.
func (r *Result) Elapsed() time.Duration { return r.elapsed }

// Determinant returns det(A).
// Returns ErrNotSquare for a non-square input rather than a meaningless number.
// Overflow or underflow of the pivot product shows as ±Inf or 0; see Finite.
func (r *Result) Determinant() (float64, error) {
	if !r.square {
		return 0, ErrNotSquare
	}

	return r.det, nil
}

// Invertible reports whether the input was square with a full set of pivots.
// The determinant of an invertible input can still underflow to 0.
func (r *Result) Invertible() bool { return r.square && len(r.pivots) == r.rref.Rows() }

// Inverse returns A⁻¹ as an Inverse value, which is either a matrix or
// singular. Singular input is not an error.
// Returns ErrNotSquare for a non-square input.
func (r *Result) Inverse() (Inverse, error) {
	if !r.square {
		return Inverse{}, ErrNotSquare
	}
	if !r.Invertible() {
		return Inverse{}, nil
	}

	return Inverse{m: r.companion}, nil
}

// Inverse is the outcome of inversion: either Invertible with a matrix or
// Singular with none. The zero value is Singular.
type Inverse struct {
	m *matrix.Dense
}

// Singular reports that no inverse exists.
func (v Inverse) Singular() bool { return v.m == nil }

// Matrix returns a copy of the inverse and true, or nil and false when singular.
func (v Inverse) Matrix() (*matrix.Dense, bool) {
	if v.m == nil {
		return nil, false
	}

	return v.m.CloneDense(), true
}

// String implements fmt.Stringer.
func (v Inverse) String() string {
	if v.m == nil {
		return "singular"
	}

	return v.m.String()
}
