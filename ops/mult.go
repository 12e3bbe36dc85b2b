// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/sparsec/csc"

// Mult computes the sparse×sparse product c = a*b.
//
// Per output column j it accumulates the scaled columns of a selected by
// each stored entry of b's column j (c[:,j] += b[k,j] * a[:,k]) into the
// same dense-accumulator/marker pattern Add uses, then compacts the touched
// accumulator slots into c. No sorting is attempted; c.IndicesSorted is
// cleared.
//
// Inputs:
//   - a, b: operands with a.NumCols == b.NumRows. Not modified.
//   - c: output, reshaped to a.NumRows×b.NumCols. nil to allocate.
//   - work: optional int workspace, length >= a.NumRows. nil to allocate.
//   - x: optional float64 workspace, length >= a.NumRows. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrWorkspaceTooShort.
// Complexity: O(NzLength(a) scaled by the average column fill of b), i.e.
// proportional to the number of scalar multiply-adds actually performed.
func Mult(a, b, c *csc.Matrix, work []int, x []float64) (*csc.Matrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMult, csc.ErrNilMatrix)
	}
	if a.NumCols != b.NumRows {
		return nil, opErrorf(opMult, csc.ErrShapeMismatch)
	}
	x, err := csc.FloatWorkspace(a.NumRows, x)
	if err != nil {
		return nil, opErrorf(opMult, err)
	}
	work, err = csc.IntWorkspace(a.NumRows, work, a.NumRows)
	if err != nil {
		return nil, opErrorf(opMult, err)
	}

	if c == nil {
		c = csc.NewMatrix(a.NumRows, b.NumCols, a.NzLength+b.NzLength)
	} else {
		c.Reshape(a.NumRows, b.NumCols, a.NzLength+b.NzLength)
	}
	c.IndicesSorted = false
	c.NzLength = 0

	var colB, i int
	for colB = 0; colB < b.NumCols; colB++ {
		c.ColIdx[colB] = c.NzLength

		idx1 := b.ColIdx[colB+1]
		for i = b.ColIdx[colB]; i < idx1; i++ {
			addScaledColumn(a, b.NzRows[i], b.NzValues[i], c, colB+1, x, work)
		}
		c.ColIdx[colB+1] = c.NzLength

		for i = c.ColIdx[colB]; i < c.NzLength; i++ {
			c.NzValues[i] = x[c.NzRows[i]]
		}
	}

	return c, nil
}

// MultDense computes the sparse×dense product c = a*b as a direct
// row-accumulation pass: for every stored entry a[row,k], row `row` of c
// gains a[row,k] times row k of b. c is zeroed first.
//
// Inputs:
//   - a: sparse left operand. Not modified.
//   - b: dense right operand with b.Rows == a.NumCols. Not modified.
//   - c: dense output, reshaped to a.NumRows×b.Cols. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch.
// Complexity: O(NzLength(a) * b.Cols).
func MultDense(a *csc.Matrix, b, c *csc.Dense) (*csc.Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMultDense, csc.ErrNilMatrix)
	}
	if a.NumCols != b.Rows {
		return nil, opErrorf(opMultDense, csc.ErrShapeMismatch)
	}

	if c == nil {
		var err error
		if c, err = csc.NewDense(a.NumRows, b.Cols); err != nil {
			return nil, opErrorf(opMultDense, err)
		}
	} else {
		c.Reshape(a.NumRows, b.Cols) // reshape zeroes the active region
	}

	var k, i, j, rowB, rowC int
	var va float64
	for k = 0; k < a.NumCols; k++ {
		idx1 := a.ColIdx[k+1]
		rowB = k * b.Cols
		for i = a.ColIdx[k]; i < idx1; i++ {
			rowC = a.NzRows[i] * c.Cols
			va = a.NzValues[i]
			for j = 0; j < b.Cols; j++ {
				c.Data[rowC+j] += va * b.Data[rowB+j]
			}
		}
	}

	return c, nil
}
