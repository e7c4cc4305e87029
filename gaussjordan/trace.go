// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"context"
	"log/slog"
)

// traceMsg is the slog message of every step record.
const traceMsg = "gaussjordan step"

// logStep writes s as one Debug record. Matrices are not logged.
func logStep(l *slog.Logger, s Step) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, traceMsg,
		slog.String("op", s.Op.String()),
		slog.Int("row", s.Row),
		slog.Int("src", s.Src),
		slog.Int("col", s.Col),
		slog.Float64("scalar", s.Scalar),
		slog.Float64("k", s.K),
	)
}
