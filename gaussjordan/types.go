// SPDX-License-Identifier: MIT

// Package gaussjordan provides tunable options, step hooks and trace types
// for Gauss–Jordan elimination.

package gaussjordan

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// OpKind names the elementary operation reported by a Step.
type OpKind int

const (
	// OpSwap exchanged rows Row and Src. K flips sign.
	OpSwap OpKind = iota

	// OpScale divided row Row by Scalar, the pre-scaling pivot, so that the
	// pivot became 1. K was divided by the same value.
	OpScale

	// OpAddScaled added Scalar × row Src to row Row. K is unchanged.
	OpAddScaled

	// OpSkipColumn found no pivot in column Col at or below row Row.
	// No matrix changed.
	OpSkipColumn
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpSwap:
		return "swap"
	case OpScale:
		return "scale"
	case OpAddScaled:
		return "add-scaled"
	case OpSkipColumn:
		return "skip-column"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Step describes one elementary operation applied in lockstep to the
// working and companion matrices.
//
// Working and Companion point at the live matrices of the running
// elimination. Hooks may read them; they must not mutate or retain them.
type Step struct {
	Op     OpKind
	Row    int     // row that changed (pivot row for OpScale, target row for OpAddScaled)
	Src    int     // partner row for OpSwap, source row for OpAddScaled; -1 otherwise
	Col    int     // current pivot column
	Scalar float64 // divisor for OpScale, factor for OpAddScaled; 0 otherwise
	K      float64 // determinant accumulator after this operation

	Working   *matrix.Dense
	Companion *matrix.Dense
}

// Option configures elimination via functional arguments.
// An invalid Option (e.g. negative tolerance) is recorded internally and
// surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customize elimination.
type Options struct {
	// Tolerance is the zero threshold: an entry v counts as zero when |v| <= Tolerance.
	// 0 (default) means exact comparison against 0.0. Exact comparison is
	// fragile for inputs carrying rounding noise; callers needing a band set it here.
	Tolerance float64

	// OnStep is called after every elementary operation and skipped column.
	OnStep func(Step)

	// Logger, when non-nil, receives one Debug record per Step.
	Logger *slog.Logger

	// AllowNaNInf disables the finite-value check on the input matrix.
	AllowNaNInf bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - exact zero test (Tolerance == 0)
//   - no-op OnStep hook
//   - no logger
//   - NaN/Inf rejected at construction.
func DefaultOptions() Options {
	return Options{
		Tolerance:   0,
		OnStep:      func(Step) {},
		Logger:      nil,
		AllowNaNInf: false,
		err:         nil,
	}
}

// WithTolerance sets the zero threshold used by pivot search and elimination.
//
//	eps > 0 : |v| <= eps is treated as zero
//	eps == 0: exact comparison (default)
//	eps < 0, NaN or Inf: ErrOptionViolation
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Tolerance must be finite and non-negative (%v)", ErrOptionViolation, eps)

			return
		}
		o.Tolerance = eps
	}
}

// WithOnStep registers a callback to run after each elimination step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger emits a structured Debug record for every step to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAllowNaNInf accepts non-finite input values; they propagate through
// the arithmetic unchanged.
func WithAllowNaNInf() Option {
	return func(o *Options) { o.AllowNaNInf = true }
}

// gatherOptions applies setters over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// matrixPolicy maps the engine options onto matrix ingestion options.
func (o Options) matrixPolicy() matrix.Option {
	if o.AllowNaNInf {
		return matrix.WithNoValidateNaNInf()
	}

	return matrix.WithValidateNaNInf()
}
