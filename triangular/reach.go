// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/sparsec/csc"

// Reach determines which entries of x become non-zero when g*x = b[:,colB]
// is solved, and in which order they must be eliminated.
//
// It runs a depth-first search over the directed graph where column j of g
// has an edge to every row index stored below (lower solve) or above (upper
// solve) its diagonal, seeded from the stored rows of b's column colB. On
// post-order completion a node is written to the tail of xi, growing the
// filled region from the back forward, so the returned slice xi[top:n] is a
// topological order consistent with the substitution direction: a row is
// listed before every row that depends on it.
//
// The DFS is explicit-stack, not recursive: recursion depth would scale
// with the matrix dimension. The head of xi holds the stack of columns
// being explored while the tail accumulates the finished order; w doubles
// as the visited markers (w[0:n]) and the per-stack-frame child cursors
// (w[n:2n]), giving O(n) work memory independent of depth.
//
// Inputs:
//   - g: triangular system matrix, square. Not modified.
//   - b: right-hand-side matrix with b.NumRows == g.NumRows. Not modified.
//   - colB: column of b being solved for.
//   - xi: optional workspace/output, length >= g.NumRows. nil to allocate
//     (note the discovered pattern is then unreachable to the caller, which
//     only makes sense when Reach runs as a subroutine).
//   - w: optional workspace, length >= 2*g.NumRows; its first g.NumRows
//     elements are zeroed here, the cursor half is overwritten before use.
//
// Returns top: xi[top:g.NumRows] holds the reachable rows in topological
// order.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch, csc.ErrOutOfRange
// (colB outside b), csc.ErrWorkspaceTooShort.
// Complexity: O(edges of the reachable sub-pattern), O(n) memory.
func Reach(g, b *csc.Matrix, colB int, xi, w []int) (int, error) {
	if g == nil || b == nil {
		return 0, opErrorf(opReach, csc.ErrNilMatrix)
	}
	if g.NumRows != g.NumCols || b.NumRows != g.NumRows {
		return 0, opErrorf(opReach, csc.ErrShapeMismatch)
	}
	if colB < 0 || colB >= b.NumCols {
		return 0, opErrorf(opReach, csc.ErrOutOfRange)
	}

	n := g.NumRows
	xi, err := csc.IntWorkspace(n, xi, 0)
	if err != nil {
		return 0, opErrorf(opReach, err)
	}
	w, err = csc.IntWorkspace(2*n, w, 0)
	if err != nil {
		return 0, opErrorf(opReach, err)
	}

	return reach(g, b, colB, xi, w), nil
}

// reach is the validated core of Reach, shared with the sparse solver.
// xi must have length >= n and w length >= 2n; w[0:n] is zeroed here so the
// marker state never leaks between right-hand-side columns.
func reach(g, b *csc.Matrix, colB int, xi, w []int) int {
	n := g.NumRows
	for i := 0; i < n; i++ {
		w[i] = 0
	}

	top := n
	idx1 := b.ColIdx[colB+1]
	for i := b.ColIdx[colB]; i < idx1; i++ {
		if rowB := b.NzRows[i]; w[rowB] == 0 {
			top = reachDFS(rowB, g, top, xi, w)
		}
	}

	return top
}

// reachDFS runs one explicit-stack DFS from start, marking visited rows in
// w[0:n] and keeping the child cursor of each open stack frame in w[n+head].
// Finished nodes land at xi[--top]; the head of xi is reused as the stack.
func reachDFS(start int, g *csc.Matrix, top int, xi, w []int) int {
	n := g.NumRows
	head := 0
	xi[head] = start

	for head >= 0 {
		col := xi[head] // the column of g being examined

		if w[col] == 0 {
			w[col] = 1
			w[n+head] = g.ColIdx[col] // first child to examine for this frame
		}

		// Descend into the first yet-unvisited child, if any.
		done := true
		idx1 := g.ColIdx[col+1]
		for j := w[n+head]; j < idx1; j++ {
			row := g.NzRows[j]
			if w[row] == 0 {
				w[n+head] = j + 1 // resume after this child on the way back
				head++
				xi[head] = row
				done = false

				break
			}
		}

		// Post-order: no unvisited children left, emit into the tail.
		if done {
			head--
			top--
			xi[top] = col
		}
	}

	return top
}
