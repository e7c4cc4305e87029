// SPDX-License-Identifier: MIT
// Package gaussjordan - one-call facades over New + Solve.

package gaussjordan

import "github.com/katalvlaran/rowreduce/matrix"

// Solve is New(m, opts...) followed by Engine.Solve.
func Solve(m matrix.Matrix, opts ...Option) (*Result, error) {
	e, err := New(m, opts...)
	if err != nil {
		return nil, err
	}

	return e.Solve()
}

// RREF returns the reduced row echelon form of m.
func RREF(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return nil, err
	}

	return res.RREF(), nil
}

// Determinant returns det(m); ErrNotSquare for non-square m.
func Determinant(m matrix.Matrix, opts ...Option) (float64, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return 0, err
	}

	return res.Determinant()
}

// InverseOf returns the inverse of m, or a Singular Inverse.
// ErrNotSquare for non-square m.
func InverseOf(m matrix.Matrix, opts ...Option) (Inverse, error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return Inverse{}, err
	}

	return res.Inverse()
}
