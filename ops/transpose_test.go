// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsec/csc"
	"github.com/katalvlaran/sparsec/ops"
)

func TestTranspose_SmallFixture(t *testing.T) {
	a := fromRows(t, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})

	c, err := ops.Transpose(a, nil, nil)
	require.NoError(t, err)

	want := denseFromRows(t, [][]float64{
		{1, 0},
		{0, 3},
		{2, 0},
	})
	assertDenseEqual(t, want, c.ToDense(), 0)
	assertConsistentStructure(t, c)
	assert.True(t, c.IndicesSorted)
	assert.True(t, csc.CheckIndicesSorted(c))
}

func TestTranspose_TwiceIsIdentity(t *testing.T) {
	a := randomSparse(t, 7, 5, 0.4, 1)

	at, err := ops.Transpose(a, nil, nil)
	require.NoError(t, err)
	att, err := ops.Transpose(at, nil, nil)
	require.NoError(t, err)

	assertDenseEqual(t, a.ToDense(), att.ToDense(), 0)
}

func TestTranspose_ReusesOutputAndWorkspace(t *testing.T) {
	a := randomSparse(t, 6, 4, 0.5, 2)
	c := csc.NewMatrix(0, 0, 0)
	work := make([]int, a.NumRows)

	got, err := ops.Transpose(a, c, work)
	require.NoError(t, err)
	assert.Same(t, c, got, "caller-provided output is returned, not replaced")
	assertDenseEqual(t, a.ToDense(), mustTransposeDense(t, got), 0)
}

// mustTransposeDense densifies m and flips it back, to compare against the
// original orientation.
func mustTransposeDense(t *testing.T, m *csc.Matrix) *csc.Dense {
	t.Helper()
	d := m.ToDense()
	flipped, err := csc.NewDense(d.Cols, d.Rows)
	require.NoError(t, err)
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			flipped.Data[j*flipped.Cols+i] = d.Data[i*d.Cols+j]
		}
	}

	return flipped
}

func TestTranspose_EmptyMatrix(t *testing.T) {
	a := csc.NewMatrix(0, 0, 0)
	c, err := ops.Transpose(a, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, c.NumRows)
	assert.Zero(t, c.NzLength)
}

func TestTranspose_EmptyColumns(t *testing.T) {
	// Middle and trailing columns with no entries must still produce valid
	// offsets in the transposed row structure.
	a := fromRows(t, [][]float64{
		{1, 0, 0},
		{0, 0, 0},
	})

	c, err := ops.Transpose(a, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumRows)
	assert.Equal(t, 2, c.NumCols)
	assert.Equal(t, 1, c.NzLength)
	assertConsistentStructure(t, c)
}

func TestTranspose_Errors(t *testing.T) {
	_, err := ops.Transpose(nil, nil, nil)
	assert.ErrorIs(t, err, csc.ErrNilMatrix)

	a := randomSparse(t, 5, 5, 0.3, 3)
	_, err = ops.Transpose(a, nil, make([]int, 2))
	assert.ErrorIs(t, err, csc.ErrWorkspaceTooShort)
}
