// SPDX-License-Identifier: MIT

// Package csc: opt-in structural validation. The hot kernels in ops and
// triangular keep the reference contract: malformed structure, unsorted rows
// claimed sorted, and singular triangular diagonals are caller contract
// violations and produce garbage output rather than typed errors. Callers
// that want the checked variant run Validate at their boundary; it never
// runs inside a kernel.
package csc

import "math"

// ValidateOption configures optional checks performed by Validate.
type ValidateOption func(*validateOptions)

// validateOptions holds the validation switches. Fields are unexported;
// public APIs consume ...ValidateOption.
type validateOptions struct {
	checkSorted bool // verify the IndicesSorted claim column by column
	checkFinite bool // reject NaN and ±Inf stored values
}

// WithSortedCheck returns an option that makes Validate verify a claimed
// IndicesSorted flag: strictly ascending row indices within every column.
// A matrix with the flag unset passes regardless of its actual order.
func WithSortedCheck() ValidateOption {
	return func(o *validateOptions) {
		o.checkSorted = true
	}
}

// WithFiniteCheck returns an option that makes Validate reject NaN and ±Inf
// values anywhere in the populated region.
func WithFiniteCheck() ValidateOption {
	return func(o *validateOptions) {
		o.checkFinite = true
	}
}

// Validate checks the structural invariants of a Matrix.
//
// Always checked:
//   - non-nil receiver, non-negative shape;
//   - ColIdx length, ColIdx[0] == 0, monotone non-decreasing;
//   - NzLength == ColIdx[NumCols] and backing arrays long enough;
//   - every stored row index within [0, NumRows).
//
// Optionally checked (see WithSortedCheck, WithFiniteCheck):
//   - the IndicesSorted claim;
//   - finiteness of stored values.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrBadStructure, ErrOutOfRange,
// ErrUnsortedIndices, ErrNotFinite.
// Complexity: O(NumCols + NzLength).
func Validate(a *Matrix, opts ...ValidateOption) error {
	if a == nil {
		return ErrNilMatrix
	}
	var o validateOptions
	for _, fn := range opts {
		fn(&o)
	}

	if a.NumRows < 0 || a.NumCols < 0 {
		return ErrBadShape
	}
	if len(a.ColIdx) < a.NumCols+1 || a.ColIdx[0] != 0 {
		return ErrBadStructure
	}
	for j := 0; j < a.NumCols; j++ {
		if a.ColIdx[j+1] < a.ColIdx[j] {
			return ErrBadStructure
		}
	}
	if a.NzLength != a.ColIdx[a.NumCols] {
		return ErrBadStructure
	}
	if a.NzLength > len(a.NzRows) || a.NzLength > len(a.NzValues) {
		return ErrBadStructure
	}

	for i := 0; i < a.NzLength; i++ {
		if row := a.NzRows[i]; row < 0 || row >= a.NumRows {
			return ErrOutOfRange
		}
	}

	if o.checkSorted && a.IndicesSorted && !CheckIndicesSorted(a) {
		return ErrUnsortedIndices
	}

	if o.checkFinite {
		for i := 0; i < a.NzLength; i++ {
			if v := a.NzValues[i]; math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
	}

	return nil
}

// CheckIndicesSorted reports whether row indices are strictly ascending
// within every column and inside [0, NumRows). O(NzLength).
func CheckIndicesSorted(a *Matrix) bool {
	for j := 0; j < a.NumCols; j++ {
		idx0 := a.ColIdx[j]
		idx1 := a.ColIdx[j+1]

		if idx0 != idx1 && a.NzRows[idx0] >= a.NumRows {
			return false
		}
		for i := idx0 + 1; i < idx1; i++ {
			row := a.NzRows[i]
			if a.NzRows[i-1] >= row {
				return false
			}
			if row >= a.NumRows {
				return false
			}
		}
	}

	return true
}

// CheckSortedFlag reports whether the IndicesSorted claim is honest:
// a matrix without the flag always passes, a flagged matrix is scanned.
func CheckSortedFlag(a *Matrix) bool {
	if a.IndicesSorted {
		return CheckIndicesSorted(a)
	}

	return true
}
