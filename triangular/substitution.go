// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/sparsec/csc"

// SolveLower solves L*x = b by in-place forward substitution: x carries b
// on entry and the solution on return.
//
// Caller contract (not checked): L is structurally lower triangular, the
// diagonal is the first stored entry of each column and non-zero. For
// column j ascending, x[j] is divided by the diagonal, then x[j] times
// every sub-diagonal entry is subtracted from the matching row of x.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch (non-square L),
// csc.ErrWorkspaceTooShort (x shorter than L.NumRows); nothing is mutated
// on failure. Complexity: O(NzLength), no allocation.
func SolveLower(l *csc.Matrix, x []float64) error {
	if l == nil {
		return opErrorf(opSolveLower, csc.ErrNilMatrix)
	}
	if l.NumRows != l.NumCols {
		return opErrorf(opSolveLower, csc.ErrShapeMismatch)
	}
	if len(x) < l.NumRows {
		return opErrorf(opSolveLower, csc.ErrWorkspaceTooShort)
	}

	n := l.NumCols
	idx0 := l.ColIdx[0]
	for col := 0; col < n; col++ {
		idx1 := l.ColIdx[col+1]

		x[col] /= l.NzValues[idx0] // diagonal is the first stored entry
		xj := x[col]
		for i := idx0 + 1; i < idx1; i++ {
			x[l.NzRows[i]] -= l.NzValues[i] * xj
		}

		idx0 = idx1
	}

	return nil
}

// SolveUpper solves U*x = b by in-place backward substitution, the mirror
// image of SolveLower: columns descending, with the diagonal assumed to be
// the last stored entry of each column.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrWorkspaceTooShort.
// Complexity: O(NzLength), no allocation.
func SolveUpper(u *csc.Matrix, x []float64) error {
	if u == nil {
		return opErrorf(opSolveUpper, csc.ErrNilMatrix)
	}
	if u.NumRows != u.NumCols {
		return opErrorf(opSolveUpper, csc.ErrShapeMismatch)
	}
	if len(x) < u.NumRows {
		return opErrorf(opSolveUpper, csc.ErrWorkspaceTooShort)
	}

	n := u.NumCols
	idx1 := u.ColIdx[n]
	for col := n - 1; col >= 0; col-- {
		idx0 := u.ColIdx[col]

		x[col] /= u.NzValues[idx1-1] // diagonal is the last stored entry
		xj := x[col]
		for i := idx0; i < idx1-1; i++ {
			x[u.NzRows[i]] -= u.NzValues[i] * xj
		}

		idx1 = idx0
	}

	return nil
}
