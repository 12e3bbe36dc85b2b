// SPDX-License-Identifier: MIT

package csc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsec/csc"
)

// fromRows converts a row-major literal into CSC form, failing the test on
// conversion errors.
func fromRows(t *testing.T, rows [][]float64) *csc.Matrix {
	t.Helper()
	d := denseFromRows(t, rows)
	m, err := csc.FromDense(d, 0)
	require.NoError(t, err)

	return m
}

// denseFromRows builds a Dense from a row-major literal.
func denseFromRows(t *testing.T, rows [][]float64) *csc.Dense {
	t.Helper()
	numCols := 0
	if len(rows) > 0 {
		numCols = len(rows[0])
	}
	d, err := csc.NewDense(len(rows), numCols)
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, numCols)
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

func TestNewMatrix_ClampsNegativeArguments(t *testing.T) {
	m := csc.NewMatrix(-3, -2, -5)
	assert.Equal(t, 0, m.NumRows)
	assert.Equal(t, 0, m.NumCols)
	assert.Len(t, m.ColIdx, 1)
	assert.Empty(t, m.NzRows)
	assert.Zero(t, m.NzLength)
}

func TestNewMatrix_StartsEmpty(t *testing.T) {
	m := csc.NewMatrix(4, 3, 6)
	assert.Equal(t, []int{0, 0, 0, 0}, m.ColIdx)
	assert.Zero(t, m.NzLength)
	assert.False(t, m.IndicesSorted)
	assert.Len(t, m.NzRows, 6)
	assert.Len(t, m.NzValues, 6)
}

func TestMatrix_Reshape_DiscardsContents(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, 4, m.NzLength)

	m.Reshape(3, 5, 2)
	assert.Equal(t, 3, m.NumRows)
	assert.Equal(t, 5, m.NumCols)
	assert.Zero(t, m.NzLength)
	assert.False(t, m.IndicesSorted)
	for i := 0; i <= m.NumCols; i++ {
		assert.Zero(t, m.ColIdx[i])
	}
}

func TestMatrix_GrowMaxLength_PreservesPrefix(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 0}, {2, 3}})
	require.Equal(t, 3, m.NzLength)
	rows := append([]int(nil), m.NzRows[:m.NzLength]...)
	values := append([]float64(nil), m.NzValues[:m.NzLength]...)

	m.GrowMaxLength(4, true)
	assert.GreaterOrEqual(t, len(m.NzRows), 4)
	assert.Equal(t, rows, m.NzRows[:m.NzLength])
	assert.Equal(t, values, m.NzValues[:m.NzLength])
}

func TestMatrix_GrowMaxLength_CapsAtDensePattern(t *testing.T) {
	m := csc.NewMatrix(2, 3, 0)
	m.GrowMaxLength(100, false)
	// 2*3 entries is the densest possible pattern; requests beyond it are
	// capped rather than honored.
	assert.Len(t, m.NzRows, 6)
	assert.Len(t, m.NzValues, 6)
}

func TestMatrix_GrowMaxLength_NoShrink(t *testing.T) {
	m := csc.NewMatrix(4, 4, 8)
	m.GrowMaxLength(2, false)
	assert.Len(t, m.NzRows, 8)
}

func TestMatrix_ColumnSum(t *testing.T) {
	m := csc.NewMatrix(5, 3, 0)
	histogram := []int{2, 0, 3}

	m.ColumnSum(histogram)

	assert.Equal(t, []int{0, 2, 2, 5}, m.ColIdx)
	// The histogram is left holding the column start offsets, ready to be
	// used as write cursors.
	assert.Equal(t, []int{0, 2, 2}, histogram)
}

func TestMatrix_CopyStructure(t *testing.T) {
	src := fromRows(t, [][]float64{{1, 0, 2}, {0, 3, 4}})
	dst := csc.NewMatrix(0, 0, 0)

	dst.CopyStructure(src)

	assert.Equal(t, src.NumRows, dst.NumRows)
	assert.Equal(t, src.NumCols, dst.NumCols)
	assert.Equal(t, src.NzLength, dst.NzLength)
	assert.Equal(t, src.ColIdx, dst.ColIdx[:src.NumCols+1])
	assert.Equal(t, src.NzRows[:src.NzLength], dst.NzRows[:src.NzLength])
	assert.Equal(t, src.IndicesSorted, dst.IndicesSorted)
}

func TestMatrix_At(t *testing.T) {
	m := fromRows(t, [][]float64{{2, 0}, {1, 3}})

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Zero(t, v, "unstored entry reads as zero")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, csc.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, csc.ErrOutOfRange)
}

func TestMatrix_IsFull(t *testing.T) {
	assert.True(t, fromRows(t, [][]float64{{1, 2}, {3, 4}}).IsFull())
	assert.False(t, fromRows(t, [][]float64{{1, 0}, {3, 4}}).IsFull())
}

func TestMatrix_DenseRoundTrip(t *testing.T) {
	rows := [][]float64{
		{0, 5, 0, 1},
		{2, 0, 0, 0},
		{0, -3, 0, 4},
	}
	m := fromRows(t, rows)

	d := m.ToDense()
	require.Equal(t, 3, d.Rows)
	require.Equal(t, 4, d.Cols)
	for i := range rows {
		for j := range rows[i] {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, rows[i][j], v, "mismatch at (%d,%d)", i, j)
		}
	}
}

func TestDense_NewDense_RejectsNegativeShape(t *testing.T) {
	_, err := csc.NewDense(-1, 2)
	assert.ErrorIs(t, err, csc.ErrBadShape)
	_, err = csc.NewDense(2, -1)
	assert.ErrorIs(t, err, csc.ErrBadShape)
}

func TestDense_SetAt(t *testing.T) {
	d, err := csc.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 7.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	assert.ErrorIs(t, d.Set(2, 0, 1), csc.ErrOutOfRange)
	_, err = d.At(0, 3)
	assert.ErrorIs(t, err, csc.ErrOutOfRange)
}

func TestDense_Reshape_ZeroesActiveRegion(t *testing.T) {
	d := denseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	d.Reshape(2, 2)
	for _, v := range d.Data[:4] {
		assert.Zero(t, v)
	}
}

func TestDense_Clone_IsIndependent(t *testing.T) {
	d := denseFromRows(t, [][]float64{{1, 2}})
	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
