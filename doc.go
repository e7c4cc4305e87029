// Package rowreduce is an in-memory toolkit for reducing dense real
// matrices by Gauss–Jordan elimination: one pass yields the reduced row
// echelon form, the determinant and, when it exists, the inverse.
//
// 🚀 What is rowreduce?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Dense storage: row-major float64 matrices with safe accessors
//		• Elementary row operations: swap, scale, add-multiple
//		• Elimination engine: RREF, determinant, inverse in lockstep
//		• Diagnostics: per-step hooks and structured log/slog tracing
//		• Interop: converters to and from gonum/mat
//
// ✨ Why choose rowreduce?
//
//   - Faithful semantics – first nonzero pivot, exact zero test by default
//   - Explicit results – singular is a value, non-square is an error
//   - Safe inputs – ragged, empty and NaN/Inf rows rejected up front
//   - Extensible – WithOnStep, WithLogger and WithTolerance options
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/      - Dense type, validators, row operations, Mul/AllClose, gonum bridge
//	gaussjordan/ - Engine, Result, Inverse, options and step trace
//
// Quick example:
//
//	res, _ := gaussjordan.Solve(A)   // A = [[2,4],[1,3]]
//	det, _ := res.Determinant()      // 2
//	inv, _ := res.Inverse()          // [[1.5,-2],[-0.5,1]]
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/rowreduce
package rowreduce
