// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/sparsec/csc"

// Add computes the scaled addition c = alpha*a + beta*b.
//
// Implementation:
//   - Stage 1: validate operands (same shape) and provision the dense
//     accumulator x (length a.NumRows) and marker array work (length
//     a.NumRows, zeroed once; markers grow monotonically per column).
//   - Stage 2: per output column, scatter a's scaled column then b's scaled
//     column into x through addScaledColumn, which appends each newly
//     touched row to c; finally copy the touched accumulator slots into
//     c's value storage for that column.
//
// Column-by-column reuse of x/work is what keeps the total cost O(nz)
// instead of O(NumRows*NumCols). The result is not guaranteed sorted;
// c.IndicesSorted is cleared.
//
// Inputs:
//   - alpha, beta: scalars applied to a and b.
//   - a, b: operands of identical shape. Not modified.
//   - c: output, reshaped to the operand shape. nil to allocate.
//   - work: optional int workspace, length >= a.NumRows. nil to allocate.
//   - x: optional float64 workspace, length >= a.NumRows. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrWorkspaceTooShort.
// Complexity: O(NzLength(a) + NzLength(b) + NumCols).
func Add(alpha float64, a *csc.Matrix, beta float64, b, c *csc.Matrix, work []int, x []float64) (*csc.Matrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opAdd, csc.ErrNilMatrix)
	}
	if a.NumRows != b.NumRows || a.NumCols != b.NumCols {
		return nil, opErrorf(opAdd, csc.ErrShapeMismatch)
	}
	x, err := csc.FloatWorkspace(a.NumRows, x)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	work, err = csc.IntWorkspace(a.NumRows, work, a.NumRows)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}

	if c == nil {
		c = csc.NewMatrix(a.NumRows, a.NumCols, a.NzLength+b.NzLength)
	} else {
		c.Reshape(a.NumRows, a.NumCols, a.NzLength+b.NzLength)
	}
	c.IndicesSorted = false
	c.NzLength = 0

	var col, i int
	for col = 0; col < a.NumCols; col++ {
		c.ColIdx[col] = c.NzLength

		addScaledColumn(a, col, alpha, c, col+1, x, work)
		addScaledColumn(b, col, beta, c, col+1, x, work)
		c.ColIdx[col+1] = c.NzLength

		// Take the values accumulated in the dense vector and put them into c.
		for i = c.ColIdx[col]; i < c.NzLength; i++ {
			c.NzValues[i] = x[c.NzRows[i]]
		}
	}

	return c, nil
}

// addScaledColumn scatters alpha times column colA of a into the dense
// accumulator x, recording each row touched for the first time in this
// output column (w[row] < mark) by appending it to c's row storage and
// stamping w[row] = mark. mark must be the output column index plus one so
// that a single zero-fill of w serves the whole sweep. Values stay in x
// until the caller compacts them; only the pattern lands in c here.
func addScaledColumn(a *csc.Matrix, colA int, alpha float64, c *csc.Matrix, mark int, x []float64, w []int) {
	idxA1 := a.ColIdx[colA+1]
	for j := a.ColIdx[colA]; j < idxA1; j++ {
		row := a.NzRows[j]
		if w[row] < mark {
			if c.NzLength >= len(c.NzRows) {
				c.GrowMaxLength(c.NzLength*2+1, true)
			}
			w[row] = mark
			c.NzRows[c.NzLength] = row
			c.NzLength++
			x[row] = a.NzValues[j] * alpha
		} else {
			x[row] += a.NzValues[j] * alpha
		}
	}
}
