package gaussjordan_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// dominant returns a seeded n×n matrix with U(-1,1) entries plus n on the
// diagonal, so no pivot comes near zero.
func dominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return mustRows(t, rows)
}

// randomRect returns a seeded r×c matrix of small integers in [-4,4],
// which makes zero columns and rank deficiency likely.
func randomRect(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(9) - 4)
		}
	}

	return mustRows(t, rows)
}

// requireClose asserts AllClose(got, want, 0, atol).
func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// identity returns I_n or fails the test.
func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return I
}
