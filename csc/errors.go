// SPDX-License-Identifier: MIT
// Package csc: sentinel error set shared by the whole module.
// This file defines ONLY package-level sentinel errors. The ops and
// triangular packages return these same sentinels, wrapped with an operation
// tag at the boundary; tests MUST check them via errors.Is. No kernel panics
// on user-triggered error conditions.

package csc

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csc: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary - callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix or *Dense was passed where an
	// operand is required. Output positions accept nil (the kernel allocates).
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Zero-sized matrices are valid.
	ErrBadShape = errors.New("csc: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrShapeMismatch indicates incompatible operand dimensions, e.g.
	// adding matrices of different shapes or multiplying with
	// a.NumCols != b.NumRows. Detected eagerly, before any work begins.
	ErrShapeMismatch = errors.New("csc: shape mismatch")

	// ErrWorkspaceTooShort is returned when a caller-supplied scratch buffer
	// is shorter than the operation's documented minimum length. Detected
	// before use; no output is mutated.
	ErrWorkspaceTooShort = errors.New("csc: workspace shorter than required")

	// ErrNotPermutation signals that a matrix claimed to be a permutation
	// matrix does not have exactly one stored entry per row and column.
	ErrNotPermutation = errors.New("csc: not a permutation matrix")

	// ErrBadStructure signals a malformed column structure: non-monotone
	// ColIdx, NzLength disagreeing with ColIdx[NumCols], or backing arrays
	// shorter than NzLength. Raised only by opt-in validation.
	ErrBadStructure = errors.New("csc: malformed column structure")

	// ErrUnsortedIndices signals that IndicesSorted was claimed but row
	// indices within some column are not strictly ascending. Raised only by
	// opt-in validation.
	ErrUnsortedIndices = errors.New("csc: row indices not in ascending order")

	// ErrNotFinite signals a NaN or ±Inf stored value. Raised only by opt-in
	// validation; kernels themselves let non-finite values propagate.
	ErrNotFinite = errors.New("csc: NaN or Inf encountered")
)
