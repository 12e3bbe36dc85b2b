// SPDX-License-Identifier: MIT
// Package ops: operation tags and shared error wrapping.
// All kernels return csc sentinels wrapped via opErrorf at the boundary so
// callers keep errors.Is matching while logs keep a stable "Op: cause" shape.

package ops

import "fmt"

// Operation name constants for unified error wrapping, no magic strings.
const (
	opTranspose          = "Transpose"
	opAdd                = "Add"
	opMult               = "Mult"
	opMultDense          = "MultDense"
	opScale              = "Scale"
	opDivide             = "Divide"
	opPermutationMatrix  = "PermutationMatrix"
	opPermutationVector  = "PermutationVector"
	opPermutationInverse = "PermutationInverse"
	opPermuteRowInv      = "PermuteRowInv"
	opPermute            = "Permute"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is/As. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
