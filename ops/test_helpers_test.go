// SPDX-License-Identifier: MIT

// Package ops_test: shared builders and dense reference arithmetic. Every
// kernel test compares sparse results against a straightforward dense
// computation on small matrices, so a bug would have to appear in both
// implementations identically to slip through.
package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsec/csc"
)

// randomSparse builds a rows×cols matrix with roughly density fraction of
// stored entries and values in [-1, 1), deterministic per seed.
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
	m, err := csc.FromDense(denseFromRows(tb, rows), 0)
	require.NoError(tb, err)

	return m
}

// denseFromRows builds a Dense from a row-major literal.
func denseFromRows(tb testing.TB, rows [][]float64) *csc.Dense {
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

	return d
}

// assertDenseEqual compares two Dense matrices element-wise within tol.
func assertDenseEqual(t *testing.T, want, got *csc.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows)
	require.Equal(t, want.Cols, got.Cols)
	for i := 0; i < want.Rows; i++ {
		for j := 0; j < want.Cols; j++ {
			w := want.Data[i*want.Cols+j]
			g := got.Data[i*got.Cols+j]
			assert.InDelta(t, w, g, tol, "mismatch at (%d,%d)", i, j)
		}
	}
}

// assertConsistentStructure verifies the column-offset bookkeeping that every
// kernel must leave behind in its output.
func assertConsistentStructure(t *testing.T, m *csc.Matrix) {
	t.Helper()
	require.NoError(t, csc.Validate(m, csc.WithSortedCheck()))
}

// referenceAdd computes alpha*a + beta*b densely.
func referenceAdd(tb testing.TB, alpha float64, a *csc.Dense, beta float64, b *csc.Dense) *csc.Dense {
	tb.Helper()
	require.Equal(tb, a.Rows, b.Rows)
	require.Equal(tb, a.Cols, b.Cols)
	c, err := csc.NewDense(a.Rows, a.Cols)
	require.NoError(tb, err)
	for i := range c.Data[:a.Rows*a.Cols] {
		c.Data[i] = alpha*a.Data[i] + beta*b.Data[i]
	}

	return c
}

// referenceMult computes a*b densely with the textbook triple loop.
func referenceMult(tb testing.TB, a, b *csc.Dense) *csc.Dense {
	tb.Helper()
	require.Equal(tb, a.Cols, b.Rows)
	c, err := csc.NewDense(a.Rows, b.Cols)
	require.NoError(tb, err)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.Data[i*a.Cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				c.Data[i*c.Cols+j] += aik * b.Data[k*b.Cols+j]
			}
		}
	}

	return c
}
