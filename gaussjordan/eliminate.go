// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// elimination is the state of one Solve call: the working matrix w, the
// companion e that receives the same row operations, and the accumulator k
// with det(w) = k·det(input).
//
// pp is the signed product of the pre-scaling pivots, so k·pp == 1 in exact
// arithmetic. The determinant is read from pp: k is a reciprocal and
// overflows to ±Inf for a subnormal pivot while pp does not.
type elimination struct {
	w, e   *matrix.Dense
	n, m   int
	k      float64
	pp     float64
	tol    float64
	pivots []int

	hook func(Step)
	log  *slog.Logger
}

// isZero is the single zero test of the algorithm.
func (el *elimination) isZero(v float64) bool {
	if el.tol == 0 {
		return v == 0
	}

	return math.Abs(v) <= el.tol
}

// at reads w[i][j]; indices are produced by run and always in range.
func (el *elimination) at(i, j int) (float64, error) {
	return el.w.At(i, j)
}

// emit forwards a step to the hook and the optional logger.
func (el *elimination) emit(s Step) {
	s.K = el.k
	s.Working, s.Companion = el.w, el.e
	if el.hook != nil {
		el.hook(s)
	}
	if el.log != nil {
		logStep(el.log, s)
	}
}

// findPivot returns the first row r in [from, n) whose column col entry is
// nonzero, or -1.
func (el *elimination) findPivot(from, col int) (int, error) {
	for r := from; r < el.n; r++ {
		v, err := el.at(r, col)
		if err != nil {
			return -1, err
		}
		if !el.isZero(v) {
			return r, nil
		}
	}

	return -1, nil
}

// run performs forward elimination and back-substitution in one sweep.
func (el *elimination) run() error {
	var (
		i, j, row int
		v, p      float64
		err       error
	)
	for i < el.n && j < el.m {
		row, err = el.findPivot(i, j)
		if err != nil {
			return err
		}
		if row < 0 {
			// column j is free below row i; the next pivot stays on row i
			el.emit(Step{Op: OpSkipColumn, Row: i, Src: -1, Col: j})
			j++

			continue
		}

		if row != i {
			if err = el.w.SwapRows(row, i); err != nil {
				return err
			}
			if err = el.e.SwapRows(row, i); err != nil {
				return err
			}
			el.k = -el.k
			el.pp = -el.pp
			el.emit(Step{Op: OpSwap, Row: i, Src: row, Col: j})
		}

		if p, err = el.at(i, j); err != nil {
			return err
		}
		if err = el.w.DivRow(i, p); err != nil {
			return err
		}
		if err = el.e.DivRow(i, p); err != nil {
			return err
		}
		// an overflowed pivot (±Inf) divides itself to NaN
		if err = el.w.Set(i, j, 1); err != nil {
			return err
		}
		el.k /= p
		el.pp *= p
		el.emit(Step{Op: OpScale, Row: i, Src: -1, Col: j, Scalar: p})

		for r := 0; r < el.n; r++ {
			if r == i {
				continue
			}
			if v, err = el.at(r, j); err != nil {
				return err
			}
			if el.isZero(v) {
				continue
			}
			if err = el.w.AddScaledRow(r, i, -v); err != nil {
				return err
			}
			if err = el.e.AddScaledRow(r, i, -v); err != nil {
				return err
			}
			if err = el.w.Set(r, j, 0); err != nil {
				return err
			}
			el.emit(Step{Op: OpAddScaled, Row: r, Src: i, Col: j, Scalar: -v})
		}

		el.pivots = append(el.pivots, j)
		i++
		j++
	}

	return nil
}

// determinant recovers det(input) from the reduced square matrix.
// Rank deficiency yields exactly 0; otherwise Π diag(w) / k, evaluated as
// Π diag(w) · pp.
func (el *elimination) determinant() float64 {
	if len(el.pivots) < el.n {
		return 0
	}
	det := el.pp
	for i := 0; i < el.n; i++ {
		v, _ := el.at(i, i) // square and in range
		det *= v
	}

	return det
}
