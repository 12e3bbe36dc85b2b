// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/sparsec/csc"

// Transpose computes c = aᵀ with a two-pass counting sort.
//
// Implementation:
//   - Stage 1: histogram the row occurrences of a into work (length
//     a.NumRows); a cumulative-sum pass turns the histogram into c.ColIdx
//     and leaves write cursors behind in work.
//   - Stage 2: walk a's columns again in increasing column order and place
//     each entry at the next free slot of its destination column.
//
// Because pass 2 traverses a column-major in increasing column order, each
// destination column receives its entries ascending by a's original column
// index, so the output is always index-sorted.
//
// Inputs:
//   - a: matrix to transpose. Not modified.
//   - c: storage for the result, reshaped to a.NumCols×a.NumRows.
//     nil to allocate internally.
//   - work: optional workspace, length >= a.NumRows. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrWorkspaceTooShort.
// Complexity: O(NzLength + NumRows + NumCols).
func Transpose(a, c *csc.Matrix, work []int) (*csc.Matrix, error) {
	if a == nil {
		return nil, opErrorf(opTranspose, csc.ErrNilMatrix)
	}
	work, err := csc.IntWorkspace(a.NumRows, work, a.NumRows)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	if c == nil {
		c = csc.NewMatrix(a.NumCols, a.NumRows, a.NzLength)
	} else {
		c.Reshape(a.NumCols, a.NumRows, a.NzLength)
	}
	c.NzLength = a.NzLength

	// Pass 1: histogram of each row in a.
	var i, j, row, index int
	idx0 := a.ColIdx[0]
	for j = 1; j <= a.NumCols; j++ {
		idx1 := a.ColIdx[j]
		for i = idx0; i < idx1; i++ {
			work[a.NzRows[i]]++
		}
		idx0 = idx1
	}

	// Cumulative sum: work becomes per-destination-column write cursors.
	c.ColumnSum(work)

	// Pass 2: place every entry at the cursor of its destination column.
	idx0 = a.ColIdx[0]
	for j = 1; j <= a.NumCols; j++ {
		col := j - 1
		idx1 := a.ColIdx[j]
		for i = idx0; i < idx1; i++ {
			row = a.NzRows[i]
			index = work[row]
			work[row]++
			c.NzRows[index] = col
			c.NzValues[index] = a.NzValues[i]
		}
		idx0 = idx1
	}
	c.IndicesSorted = true

	return c, nil
}
