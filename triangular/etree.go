// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/sparsec/csc"

// EliminationTree builds the elimination tree of a structurally
// upper-triangular-pattern matrix a into parent: parent[i] is the column
// that eliminates column i next, or -1 for a root. The tree encodes the
// fill-in order of a Cholesky factorization of a; with ata it is the tree
// of aᵀa instead, computed from a's column patterns alone without ever
// forming the product.
//
// For each column k ascending and every stored row i < k of that column
// (routed through a "previous row seen" map in ata mode), the walk climbs
// the partially built tree via an ancestor array: an unset ancestor means i
// gains k as parent; otherwise the walk jumps to the recorded ancestor,
// compressing every visited node's ancestor pointer to k on the way. Path
// compression makes the total cost near linear in NzLength.
//
// The result satisfies parent[i] > i for every defined entry, because a
// column only links to rows at or below its own index in an
// upper-triangular pattern.
//
// Inputs:
//   - a: m×n matrix, structurally upper triangular when ata is false
//     (entries with row >= k are ignored by the walk). Not modified.
//   - ata: build the tree of aᵀa instead of a.
//   - parent: output, length >= a.NumCols. Required.
//   - work: optional workspace, length >= n (plus m when ata).
//
// Errors: csc.ErrNilMatrix, csc.ErrWorkspaceTooShort.
// Complexity: near O(NzLength) amortized, O(n+m) memory.
func EliminationTree(a *csc.Matrix, ata bool, parent, work []int) error {
	if a == nil {
		return opErrorf(opEliminationTree, csc.ErrNilMatrix)
	}
	m, n := a.NumRows, a.NumCols
	if len(parent) < n {
		return opErrorf(opEliminationTree, csc.ErrWorkspaceTooShort)
	}

	wlen := n
	if ata {
		wlen += m
	}
	work, err := csc.IntWorkspace(wlen, work, 0)
	if err != nil {
		return opErrorf(opEliminationTree, err)
	}

	// Named offsets into the shared work array.
	const ancestor = 0
	previous := n

	if ata {
		for i := 0; i < m; i++ {
			work[previous+i] = -1 // no row of a seen yet
		}
	}

	var k, p, i, next int
	for k = 0; k < n; k++ {
		parent[k] = -1        // node k has no parent yet
		work[ancestor+k] = -1 // and no ancestor
		idx1 := a.ColIdx[k+1]
		for p = a.ColIdx[k]; p < idx1; p++ {
			nzRow := a.NzRows[p]

			i = nzRow
			if ata {
				i = work[previous+nzRow]
			}

			// Climb the tree, compressing ancestor pointers to k.
			for i != -1 && i < k {
				next = work[ancestor+i]
				work[ancestor+i] = k
				if next == -1 {
					parent[i] = k

					break
				}
				i = next
			}

			if ata {
				work[previous+nzRow] = k
			}
		}
	}

	return nil
}
