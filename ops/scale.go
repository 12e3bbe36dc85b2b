// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/sparsec/csc"
)

// Scale computes the element-wise scaling b = alpha*a. The structure is
// preserved exactly: b inherits a's ColIdx, NzRows and sortedness flag.
//
// Inputs:
//   - alpha: scalar multiplier. NaN/Inf propagate into the values.
//   - a: input matrix. Not modified.
//   - b: output, reshaped to a's shape. nil to allocate.
//
// Errors: csc.ErrNilMatrix. Complexity: O(NzLength).
func Scale(alpha float64, a, b *csc.Matrix) (*csc.Matrix, error) {
	if a == nil {
		return nil, opErrorf(opScale, csc.ErrNilMatrix)
	}
	if b == nil {
		b = csc.NewMatrix(a.NumRows, a.NumCols, a.NzLength)
	}
	b.CopyStructure(a)

	for i := 0; i < a.NzLength; i++ {
		b.NzValues[i] = a.NzValues[i] * alpha
	}

	return b, nil
}

// Divide computes the element-wise division b = a/alpha, structure
// preserved. A zero alpha propagates ±Inf/NaN, mirroring the scalar rules.
//
// Errors: csc.ErrNilMatrix. Complexity: O(NzLength).
func Divide(a *csc.Matrix, alpha float64, b *csc.Matrix) (*csc.Matrix, error) {
	if a == nil {
		return nil, opErrorf(opDivide, csc.ErrNilMatrix)
	}
	if b == nil {
		b = csc.NewMatrix(a.NumRows, a.NumCols, a.NzLength)
	}
	b.CopyStructure(a)

	for i := 0; i < a.NzLength; i++ {
		b.NzValues[i] = a.NzValues[i] / alpha
	}

	return b, nil
}

// ElementMin returns the smallest element of a, counting the implicit zeros
// of unstored positions when the matrix is not full. Zero for an empty
// matrix. O(NzLength).
func ElementMin(a *csc.Matrix) float64 {
	if a.NzLength == 0 {
		return 0
	}

	min := 0.0
	if a.IsFull() {
		min = a.NzValues[0]
	}
	for i := 0; i < a.NzLength; i++ {
		if v := a.NzValues[i]; v < min {
			min = v
		}
	}

	return min
}

// ElementMax returns the largest element of a, counting implicit zeros when
// the matrix is not full. Zero for an empty matrix. O(NzLength).
func ElementMax(a *csc.Matrix) float64 {
	if a.NzLength == 0 {
		return 0
	}

	max := 0.0
	if a.IsFull() {
		max = a.NzValues[0]
	}
	for i := 0; i < a.NzLength; i++ {
		if v := a.NzValues[i]; v > max {
			max = v
		}
	}

	return max
}

// ElementMinAbs returns the smallest absolute element value, counting
// implicit zeros when the matrix is not full. O(NzLength).
func ElementMinAbs(a *csc.Matrix) float64 {
	if a.NzLength == 0 {
		return 0
	}

	min := 0.0
	if a.IsFull() {
		min = math.Abs(a.NzValues[0])
	}
	for i := 0; i < a.NzLength; i++ {
		if v := math.Abs(a.NzValues[i]); v < min {
			min = v
		}
	}

	return min
}

// ElementMaxAbs returns the largest absolute element value. O(NzLength).
func ElementMaxAbs(a *csc.Matrix) float64 {
	if a.NzLength == 0 {
		return 0
	}

	max := 0.0
	if a.IsFull() {
		max = math.Abs(a.NzValues[0])
	}
	for i := 0; i < a.NzLength; i++ {
		if v := math.Abs(a.NzValues[i]); v > max {
			max = v
		}
	}

	return max
}
