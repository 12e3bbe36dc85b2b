// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/sparsec/csc"

// SolveColumn solves g*x = b[:,colB] for one sparse right-hand-side column,
// leaving the dense solution in xv at exactly the positions named by the
// discovered pattern.
//
// Implementation:
//   - Stage 1: reachability (see Reach) fills xi[top:n] with the pattern in
//     topological order.
//   - Stage 2: sparse-clear xv only at those positions, scatter b's column
//     into xv, then walk xi in order performing the division/elimination
//     step of dense substitution restricted to the pattern. Negative xi
//     entries are sentinels injected by callers (e.g. pivoting drivers) and
//     are skipped.
//
// lower selects the diagonal convention: first stored entry per column for
// a lower solve, last for an upper solve. A zero diagonal propagates
// ±Inf/NaN, it is not detected.
//
// Inputs:
//   - g: triangular matrix, square, non-zero diagonal. Not modified.
//   - b: right-hand-side matrix, b.NumRows == g.NumRows. Not modified.
//   - colB: column of b to solve.
//   - xv: dense solution storage, length >= g.NumRows. Required: unlike the
//     scratch parameters it carries the result, so nil is rejected.
//   - xi: optional pattern storage, length >= g.NumRows.
//   - w: optional workspace, length >= 2*g.NumRows.
//
// Returns top: the solution pattern is xi[top:n], its values xv[xi[p]].
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrOutOfRange,
// csc.ErrWorkspaceTooShort. Complexity: O(work of the reachable pattern).
func SolveColumn(g *csc.Matrix, lower bool, b *csc.Matrix, colB int, xv []float64, xi, w []int) (int, error) {
	if g == nil || b == nil {
		return 0, opErrorf(opSolveColumn, csc.ErrNilMatrix)
	}
	if g.NumRows != g.NumCols || b.NumRows != g.NumRows {
		return 0, opErrorf(opSolveColumn, csc.ErrShapeMismatch)
	}
	if colB < 0 || colB >= b.NumCols {
		return 0, opErrorf(opSolveColumn, csc.ErrOutOfRange)
	}

	n := g.NumRows
	if len(xv) < n {
		return 0, opErrorf(opSolveColumn, csc.ErrWorkspaceTooShort)
	}
	xi, err := csc.IntWorkspace(n, xi, 0)
	if err != nil {
		return 0, opErrorf(opSolveColumn, err)
	}
	w, err = csc.IntWorkspace(2*n, w, 0)
	if err != nil {
		return 0, opErrorf(opSolveColumn, err)
	}

	return solveColumn(g, lower, b, colB, xv, xi, w), nil
}

// solveColumn is the validated core shared by SolveColumn and Solve.
func solveColumn(g *csc.Matrix, lower bool, b *csc.Matrix, colB int, xv []float64, xi, w []int) int {
	n := g.NumRows
	top := reach(g, b, colB, xi, w)

	// Sparse clear of the accumulator: only the pattern positions.
	for p := top; p < n; p++ {
		xv[xi[p]] = 0
	}

	// Scatter b's column into the accumulator.
	idxB1 := b.ColIdx[colB+1]
	for p := b.ColIdx[colB]; p < idxB1; p++ {
		xv[b.NzRows[p]] = b.NzValues[p]
	}

	// Eliminate in topological order, touching only the pattern.
	var p, q int
	for px := top; px < n; px++ {
		j := xi[px]
		if j < 0 {
			continue // sentinel entry, skip
		}
		if lower {
			xv[j] /= g.NzValues[g.ColIdx[j]]
			p, q = g.ColIdx[j]+1, g.ColIdx[j+1]
		} else {
			xv[j] /= g.NzValues[g.ColIdx[j+1]-1]
			p, q = g.ColIdx[j], g.ColIdx[j+1]-1
		}
		for ; p < q; p++ {
			xv[g.NzRows[p]] -= g.NzValues[p] * xv[j]
		}
	}

	return top
}

// Solve computes the whole-matrix sparse triangular solution g*x = b, both
// sides sparse, by looping SolveColumn over every column of b and gathering
// each column's pattern and values into the growable output x. The element
// count appended for a column equals n - top; x's backing arrays are grown
// on demand and x.ColIdx tracks the cumulative length. The output is not
// sorted; x.IndicesSorted is cleared.
//
// Inputs:
//   - g: triangular matrix, square, non-zero diagonal. Not modified.
//   - lower: true for a lower solve, false for upper.
//   - b: sparse right-hand side, b.NumRows == g.NumRows. Not modified.
//   - x: sparse output, reshaped to g.NumCols×b.NumCols. nil to allocate.
//   - xv: optional dense accumulator, length >= g.NumRows.
//   - xi: optional pattern storage, length >= g.NumRows.
//   - w: optional workspace, length >= 2*g.NumRows.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrWorkspaceTooShort.
// Complexity: sum over columns of the reachable-pattern work.
func Solve(g *csc.Matrix, lower bool, b, x *csc.Matrix, xv []float64, xi, w []int) (*csc.Matrix, error) {
	if g == nil || b == nil {
		return nil, opErrorf(opSolve, csc.ErrNilMatrix)
	}
	if g.NumRows != g.NumCols || b.NumRows != g.NumRows {
		return nil, opErrorf(opSolve, csc.ErrShapeMismatch)
	}

	n := g.NumRows
	xv, err := csc.FloatWorkspace(n, xv)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}
	xi, err = csc.IntWorkspace(n, xi, 0)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}
	w, err = csc.IntWorkspace(2*n, w, 0)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}

	if x == nil {
		x = csc.NewMatrix(g.NumCols, b.NumCols, b.NzLength)
	} else {
		x.Reshape(g.NumCols, b.NumCols, b.NzLength)
	}
	x.NzLength = 0
	x.ColIdx[0] = 0
	x.IndicesSorted = false

	for colB := 0; colB < b.NumCols; colB++ {
		top := solveColumn(g, lower, b, colB, xv, xi, w)

		count := x.NumRows - top
		if len(x.NzValues) < x.NzLength+count {
			x.GrowMaxLength(x.NzLength*2+count, true)
		}

		for p := top; p < x.NumRows; p++ {
			x.NzRows[x.NzLength] = xi[p]
			x.NzValues[x.NzLength] = xv[xi[p]]
			x.NzLength++
		}
		x.ColIdx[colB+1] = x.NzLength
	}

	return x, nil
}
