package gaussjordan_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/rowreduce/gaussjordan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithLogger_DebugRecords checks one JSON record per step.
func TestWithLogger_DebugRecords(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	steps := 0
	_, err := gaussjordan.Solve(
		mustRows(t, [][]float64{{0, 1}, {1, 0}}),
		gaussjordan.WithLogger(l),
		gaussjordan.WithOnStep(func(gaussjordan.Step) { steps++ }),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, steps)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "gaussjordan step", first["msg"])
	assert.Equal(t, "DEBUG", first["level"])
	assert.Equal(t, "swap", first["op"])
	assert.EqualValues(t, 0, first["row"])
	assert.EqualValues(t, 1, first["src"])
	assert.EqualValues(t, -1, first["k"])
}

// TestWithLogger_LevelFiltered checks nothing is written above Debug.
func TestWithLogger_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := gaussjordan.Solve(mustRows(t, [][]float64{{2, 4}, {1, 3}}), gaussjordan.WithLogger(l))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
