// SPDX-License-Identifier: MIT

// Package triangular_test: builders for triangular systems. Solutions are
// verified by multiplying back and comparing against the right-hand side,
// which catches ordering mistakes a fixture comparison could miss.
package triangular_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsec/csc"
)

// randomTriangular builds an n×n triangular matrix with a well-conditioned
// diagonal (magnitude >= 1) and roughly density fraction of off-diagonal
// entries on the lower or upper side, deterministic per seed. FromDense
// yields ascending row indices per column, so the diagonal lands first in
// each column of a lower matrix and last in an upper one, matching the
// storage convention the solvers rely on.
func randomTriangular(tb testing.TB, n int, density float64, seed int64, lower bool) *csc.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := csc.NewDense(n, n)
	require.NoError(tb, err)

	for i := 0; i < n; i++ {
		diag := 1 + rng.Float64()
		if rng.Float64() < 0.5 {
			diag = -diag
		}
		require.NoError(tb, d.Set(i, i, diag))

		for j := 0; j < i; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.Float64()*2 - 1
			if lower {
				require.NoError(tb, d.Set(i, j, v))
			} else {
				require.NoError(tb, d.Set(j, i, v))
			}
		}
	}

	m, err := csc.FromDense(d, 0)
	require.NoError(tb, err)

	return m
}

// randomVector returns n values in [-1, 1), deterministic per seed.
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// randomSparse builds a rows×cols matrix with roughly density fraction of
// stored entries, deterministic per seed.
func randomSparse(tb testing.TB, rows, cols int, density float64, seed int64) *csc.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := csc.NewDense(rows, cols)
	require.NoError(tb, err)
	for i := range d.Data {
		if rng.Float64() < density {
			d.Data[i] = rng.Float64()*2 - 1
		}
	}
	m, err := csc.FromDense(d, 0)
	require.NoError(tb, err)

	return m
}

// fromRows converts a row-major literal into CSC form.
func fromRows(tb testing.TB, rows [][]float64) *csc.Matrix {
	tb.Helper()
	numCols := 0
	if len(rows) > 0 {
		numCols = len(rows[0])
	}
	d, err := csc.NewDense(len(rows), numCols)
	require.NoError(tb, err)
	for i, row := range rows {
		require.Len(tb, row, numCols)
		for j, v := range row {
			require.NoError(tb, d.Set(i, j, v))
		}
	}
	m, err := csc.FromDense(d, 0)
	require.NoError(tb, err)

	return m
}

// residual computes g*x - b for a dense solution vector.
func residual(tb testing.TB, g *csc.Matrix, x, b []float64) []float64 {
	tb.Helper()
	require.Equal(tb, g.NumRows, len(b))
	r := make([]float64, g.NumRows)
	copy(r, b)
	for col := 0; col < g.NumCols; col++ {
		idx1 := g.ColIdx[col+1]
		for i := g.ColIdx[col]; i < idx1; i++ {
			r[g.NzRows[i]] -= g.NzValues[i] * x[col]
		}
	}

	return r
}
