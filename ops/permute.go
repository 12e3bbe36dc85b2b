// SPDX-License-Identifier: MIT

// Package ops: permutation utilities. A permutation vector p of length N
// describes the matrix P with exactly one unit entry per column, at
// (p[i], i). PermutationMatrix/PermutationVector are the bijection-checking
// round-trip pair; PermutationInverse builds the inverse mapping; the two
// application routines rewrite a CSC matrix under row (and column)
// permutations without materializing P.
package ops

import "github.com/katalvlaran/sparsec/csc"

// PermutationMatrix converts a permutation vector into its matrix form:
// column i holds a single 1 at row p[i]. The output is index-sorted only
// when p itself is ascending, which generally is false; callers must not
// assume it sorted.
//
// Inputs:
//   - p: permutation vector; every entry must lie in [0, len(p)).
//     Duplicate entries are not detected here, only by the round trip.
//   - P: output, reshaped to len(p)×len(p). nil to allocate.
//
// Errors: csc.ErrNotPermutation.
// Complexity: O(len(p)).
func PermutationMatrix(p []int, P *csc.Matrix) (*csc.Matrix, error) {
	n := len(p)
	for i := 0; i < n; i++ {
		if p[i] < 0 || p[i] >= n {
			return nil, opErrorf(opPermutationMatrix, csc.ErrNotPermutation)
		}
	}
	if P == nil {
		P = csc.NewMatrix(n, n, n)
	} else {
		P.Reshape(n, n, n)
	}
	P.NzLength = n

	sorted := true
	for i := 0; i < n; i++ {
		P.ColIdx[i+1] = i + 1
		P.NzRows[i] = p[i]
		P.NzValues[i] = 1
		if i > 0 && p[i-1] >= p[i] {
			sorted = false
		}
	}
	P.IndicesSorted = sorted

	return P, nil
}

// PermutationVector converts a permutation matrix back into vector form,
// the inverse of PermutationMatrix: vector[i] is the row of column i's
// single entry. It fails with csc.ErrNotPermutation unless P is square with
// exactly one stored entry per column and per row.
//
// Inputs:
//   - P: permutation matrix. Not modified.
//   - vector: optional storage, length >= P.NumCols. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrNotPermutation, csc.ErrWorkspaceTooShort.
// Complexity: O(P.NumCols).
func PermutationVector(P *csc.Matrix, vector []int) ([]int, error) {
	if P == nil {
		return nil, opErrorf(opPermutationVector, csc.ErrNilMatrix)
	}
	if P.NumCols != P.NumRows || P.NzLength != P.NumCols {
		return nil, opErrorf(opPermutationVector, csc.ErrNotPermutation)
	}
	n := P.NumCols
	vector, err := csc.IntWorkspace(n, vector, 0)
	if err != nil {
		return nil, opErrorf(opPermutationVector, err)
	}

	// One entry per column, and each row hit exactly once (bijection).
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		if P.ColIdx[i+1] != i+1 {
			return nil, opErrorf(opPermutationVector, csc.ErrNotPermutation)
		}
		row := P.NzRows[i]
		if row < 0 || row >= n || seen[row] {
			return nil, opErrorf(opPermutationVector, csc.ErrNotPermutation)
		}
		seen[row] = true
		vector[i] = row
	}

	return vector, nil
}

// PermutationInverse computes inverse[original[i]] = i for every i.
// inverse may be nil to allocate, or a buffer of length >= len(original).
//
// Errors: csc.ErrWorkspaceTooShort.
// Complexity: O(len(original)).
func PermutationInverse(original, inverse []int) ([]int, error) {
	inverse, err := csc.IntWorkspace(len(original), inverse, 0)
	if err != nil {
		return nil, opErrorf(opPermutationInverse, err)
	}

	for i := 0; i < len(original); i++ {
		inverse[original[i]] = i
	}

	return inverse, nil
}

// PermuteRowInv applies the row permutation described by the inverse
// permutation vector: output[permInv[j], :] = input[j, :]. Columns are left
// in place, so ColIdx and NzValues are copied unchanged while NzRows is
// remapped through permInv. Sortedness cannot be guaranteed and the flag is
// cleared.
//
// Inputs:
//   - permInv: inverse row permutation, length == input.NumRows.
//   - input: matrix to permute. Not modified.
//   - output: result, reshaped to input's shape. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch.
// Complexity: O(NzLength + NumCols).
func PermuteRowInv(permInv []int, input, output *csc.Matrix) (*csc.Matrix, error) {
	if input == nil {
		return nil, opErrorf(opPermuteRowInv, csc.ErrNilMatrix)
	}
	if input.NumRows != len(permInv) {
		return nil, opErrorf(opPermuteRowInv, csc.ErrShapeMismatch)
	}

	if output == nil {
		output = csc.NewMatrix(input.NumRows, input.NumCols, input.NzLength)
	} else {
		output.Reshape(input.NumRows, input.NumCols, input.NzLength)
	}
	output.NzLength = input.NzLength
	output.IndicesSorted = false

	copy(output.NzValues[:input.NzLength], input.NzValues[:input.NzLength])
	copy(output.ColIdx[:input.NumCols+1], input.ColIdx[:input.NumCols+1])

	for j := 0; j < input.NzLength; j++ {
		output.NzRows[j] = permInv[input.NzRows[j]]
	}

	return output, nil
}

// Permute applies a combined permutation, inverse on rows and forward on
// columns: output[permRowInv[j], i] = input[j, permCol[i]]. Columns of the
// output are built in output order by pulling the matching input column and
// remapping its row indices as they are copied. Column reordering always
// clears IndicesSorted.
//
// Inputs:
//   - permRowInv: inverse row permutation, length == input.NumRows.
//   - input: matrix to permute. Not modified.
//   - permCol: column permutation, length == input.NumCols.
//   - output: result, reshaped to input's shape. nil to allocate.
//
// Errors: csc.ErrNilMatrix, csc.ErrShapeMismatch.
// Complexity: O(NzLength + NumCols).
func Permute(permRowInv []int, input *csc.Matrix, permCol []int, output *csc.Matrix) (*csc.Matrix, error) {
	if input == nil {
		return nil, opErrorf(opPermute, csc.ErrNilMatrix)
	}
	if input.NumRows != len(permRowInv) {
		return nil, opErrorf(opPermute, csc.ErrShapeMismatch)
	}
	if input.NumCols != len(permCol) {
		return nil, opErrorf(opPermute, csc.ErrShapeMismatch)
	}

	if output == nil {
		output = csc.NewMatrix(input.NumRows, input.NumCols, input.NzLength)
	} else {
		output.Reshape(input.NumRows, input.NumCols, input.NzLength)
	}
	output.IndicesSorted = false
	output.ColIdx[0] = 0

	// Walk the output columns in order, pulling the matching input column.
	outputNZ := 0
	var i, j int
	for i = 0; i < input.NumCols; i++ {
		inputCol := permCol[i] // column of input to source from
		inputNZ := input.ColIdx[inputCol]
		total := input.ColIdx[inputCol+1] - inputNZ

		output.ColIdx[i+1] = output.ColIdx[i] + total

		for j = 0; j < total; j++ {
			output.NzRows[outputNZ] = permRowInv[input.NzRows[inputNZ]]
			output.NzValues[outputNZ] = input.NzValues[inputNZ]
			outputNZ++
			inputNZ++
		}
	}
	output.NzLength = outputNZ

	return output, nil
}
