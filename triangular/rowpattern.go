// SPDX-License-Identifier: MIT

package triangular

import "github.com/katalvlaran/sparsec/csc"

// RowPatternFromTree computes the non-zero pattern of row k of the Cholesky
// factor L directly from the elimination tree of the symmetric matrix a,
// without a reachability search: for each stored entry (k, i) with i <= k
// the walk climbs the tree from i while nodes are unvisited, collecting the
// path on a local stack, then flushes that stack onto the tail of s with
// the same top-decreasing convention Reach uses. This is O(fill of row k),
// strictly cheaper than a full DFS per row when repeated across all rows of
// a symmetric factorization.
//
// Visited marking flips w entries negative (w[i] = -w[i]-2) and flips every
// touched node back before returning, so one marker array whose elements
// are all >= 0 can be reused across repeated calls with O(pattern) reset
// cost.
//
// Inputs:
//   - a: symmetric matrix; traversing column k doubles as traversing row k.
//     Entries with row index > k are ignored. Not modified.
//   - k: row of the factor being patterned.
//   - parent: elimination tree of a, length >= a.NumCols.
//   - s: output, length >= a.NumCols. Required: s[top:n] is the pattern.
//   - w: marker workspace, length >= a.NumCols, all elements >= 0 on input.
//     Required, because its state must persist between calls.
//
// Returns top: s[top:a.NumCols] holds the pattern of L[k,:], k excluded.
//
// Errors: csc.ErrNilMatrix, csc.ErrOutOfRange (k outside the columns),
// csc.ErrWorkspaceTooShort. Complexity: O(fill of row k).
func RowPatternFromTree(a *csc.Matrix, k int, parent, s, w []int) (int, error) {
	if a == nil {
		return 0, opErrorf(opRowPatternFromTree, csc.ErrNilMatrix)
	}
	if k < 0 || k >= a.NumCols {
		return 0, opErrorf(opRowPatternFromTree, csc.ErrOutOfRange)
	}
	n := a.NumCols
	if len(parent) < n || len(s) < n || len(w) < n {
		return 0, opErrorf(opRowPatternFromTree, csc.ErrWorkspaceTooShort)
	}

	top := n
	idx1 := a.ColIdx[k+1]

	w[k] = -w[k] - 2 // mark node k as visited
	var i, length int
	for p := a.ColIdx[k]; p < idx1; p++ {
		i = a.NzRows[p] // a[k,i] is not zero
		if i > k {
			continue // only the upper triangular part of a
		}

		// Climb the elimination tree until an already-visited node.
		length = 0
		for ; w[i] >= 0; i = parent[i] {
			s[length] = i // L[k,i] is not zero
			length++
			w[i] = -w[i] - 2
		}
		// Flush the path onto the tail, root side first.
		for length > 0 {
			top--
			length--
			s[top] = s[length]
		}
	}

	// Unmark every touched node so w is reusable on the next call.
	for p := top; p < n; p++ {
		w[s[p]] = -w[s[p]] - 2
	}
	w[k] = -w[k] - 2

	return top, nil
}
