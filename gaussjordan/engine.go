// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Engine holds a private copy of one input matrix and the resolved options.
// Construction validates and copies; it performs no elimination. Solve may
// be called any number of times, including concurrently: every call works
// on fresh working and companion matrices.
type Engine struct {
	input *matrix.Dense
	opts  Options
}

// New validates m and stores a copy of it. The caller's matrix is never
// read again after New returns.
//
// Errors:
//   - ErrOptionViolation for an invalid Option.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNaNInf for bad input.
func New(m matrix.Matrix, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	in, err := matrix.DenseOf(m, o.matrixPolicy())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: New: %w", err)
	}

	return &Engine{input: in, opts: o}, nil
}

// NewFromRows is New over nested row slices. Empty input fails with
// matrix.ErrInvalidDimensions and ragged input with matrix.ErrRaggedRows,
// both before any elimination work.
func NewFromRows(rows [][]float64, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	in, err := matrix.NewDenseFromRows(rows, o.matrixPolicy())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: NewFromRows: %w", err)
	}

	return &Engine{input: in, opts: o}, nil
}

// Input returns a copy of the stored input matrix.
func (e *Engine) Input() *matrix.Dense { return e.input.CloneDense() }

// Solve runs Gauss–Jordan elimination on a copy of the stored input and
// returns the reduced form, determinant and inverse together.
//
// Algorithm Outline:
//  1. W = copy(A) (n×m), E = I_n, k = 1, i = j = 0.
//  2. While i < n and j < m:
//     a. find the first row p >= i with W[p][j] != 0; none → j++ and repeat.
//     b. p != i → swap rows p and i in W and E; k = -k.
//     c. divide row i of W and E by p = W[i][j]; k = k / p.
//     d. for every r != i with W[r][j] != 0: row r += -W[r][j] · row i, in W and E.
//     e. i++, j++.
//  3. Every operation keeps E·A = W, and det(W) = k·det(A).
//  4. Square input: det(A) = 0 if fewer than n pivots, else Π diag(W) / k.
//  5. n pivots → E = A⁻¹.
//
// The numeric policy applies to the input only. Elimination is plain IEEE
// arithmetic: an intermediate beyond the float64 range becomes ±Inf (and
// may produce NaN further on) without an error; Result.Finite reports it.
//
// Complexity:
//
//	Time   = O(n²·m)   (O(n³) for square input)
//	Memory = O(n·m + n²)
func (e *Engine) Solve() (*Result, error) {
	if e == nil || e.input == nil {
		return nil, ErrNilEngine
	}
	start := time.Now()

	n, m := e.input.Shape()
	working, err := matrix.DenseOf(e.input, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: Solve: %w", err)
	}
	companion, err := matrix.NewIdentity(n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("gaussjordan: Solve: %w", err)
	}
	el := &elimination{
		w:    working,
		e:    companion,
		n:    n,
		m:    m,
		k:    1,
		pp:   1,
		tol:  e.opts.Tolerance,
		hook: e.opts.OnStep,
		log:  e.opts.Logger,
	}
	if err = el.run(); err != nil {
		return nil, fmt.Errorf("gaussjordan: Solve: %w", err)
	}

	res := &Result{
		rref:      el.w,
		companion: el.e,
		pivots:    el.pivots,
		k:         el.k,
		square:    n == m,
	}
	if res.square {
		res.det = el.determinant()
	}
	res.finite = el.w.IsFinite() && el.e.IsFinite() && !math.IsNaN(res.det) && !math.IsInf(res.det, 0)
	res.elapsed = time.Since(start)

	return res, nil
}
