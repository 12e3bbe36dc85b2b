// SPDX-License-Identifier: MIT

// Package csc: the CSC container itself. Fields are exported on purpose:
// the ops and triangular kernels do exact index bookkeeping on the backing
// arrays, and hiding them behind accessors would only add call overhead
// without protecting any invariant the kernels do not already own.
package csc

// Matrix is a sparse matrix of float64 values in column-compressed form.
//
// Structural invariants (holding whenever the matrix is in a consistent
// state, i.e. not mid-mutation inside a kernel that owns it):
//
//   - ColIdx has length NumCols+1, ColIdx[0] == 0, and is monotonically
//     non-decreasing; ColIdx[j] and ColIdx[j+1] delimit the half-open range
//     of column j inside NzRows/NzValues.
//   - NzLength == ColIdx[NumCols]; valid entries occupy [0, NzLength).
//   - Capacity of NzRows/NzValues may exceed NzLength; growth is
//     copy-and-replace, never required to be in place.
//   - IndicesSorted is advisory: when true, row indices within each column
//     are strictly ascending. Any operation that cannot guarantee this on
//     output clears the flag.
type Matrix struct {
	// NumRows and NumCols give the matrix shape. Both are non-negative.
	NumRows, NumCols int

	// ColIdx delimits columns: entries of column j live at indices
	// [ColIdx[j], ColIdx[j+1]) of NzRows and NzValues.
	ColIdx []int

	// NzRows holds the row index of each stored entry.
	NzRows []int

	// NzValues holds the value of each stored entry, parallel to NzRows.
	NzValues []float64

	// NzLength is the count of currently populated entries.
	NzLength int

	// IndicesSorted is the advisory sortedness flag, see type doc.
	IndicesSorted bool
}

// NewMatrix allocates a numRows×numCols matrix with backing arrays sized for
// arrayLength entries. All arguments must be non-negative; negative values
// are clamped to zero. The matrix starts all-zero (NzLength == 0).
// Complexity: O(numCols + arrayLength).
func NewMatrix(numRows, numCols, arrayLength int) *Matrix {
	if numRows < 0 {
		numRows = 0
	}
	if numCols < 0 {
		numCols = 0
	}
	if arrayLength < 0 {
		arrayLength = 0
	}

	return &Matrix{
		NumRows:  numRows,
		NumCols:  numCols,
		ColIdx:   make([]int, numCols+1),
		NzRows:   make([]int, arrayLength),
		NzValues: make([]float64, arrayLength),
	}
}

// Reshape resets the matrix to an all-zero numRows×numCols matrix and makes
// sure the backing arrays can hold at least arrayLength entries. Previous
// contents are discarded; IndicesSorted is cleared.
// Complexity: O(numCols) plus reallocation cost when growing.
func (m *Matrix) Reshape(numRows, numCols, arrayLength int) {
	m.IndicesSorted = false
	m.NumRows = numRows
	m.NumCols = numCols
	m.GrowMaxLength(arrayLength, false)
	m.NzLength = 0
	if numCols+1 > len(m.ColIdx) {
		m.ColIdx = make([]int, numCols+1)
	} else {
		for i := 0; i <= numCols; i++ {
			m.ColIdx[i] = 0
		}
	}
}

// GrowMaxLength makes sure the backing arrays can hold at least arrayLength
// entries. The request is capped at NumRows*NumCols, the maximum possible
// number of stored entries. When preserveValue is true the populated prefix
// is copied into the new arrays; otherwise old contents are dropped.
// Growth is copy-and-replace, the old arrays are never mutated.
// Complexity: O(arrayLength) when growing, O(1) otherwise.
func (m *Matrix) GrowMaxLength(arrayLength int, preserveValue bool) {
	// Never allocate beyond the densest possible pattern.
	if max := m.NumRows * m.NumCols; arrayLength > max {
		arrayLength = max
	}
	if arrayLength <= len(m.NzRows) {
		return
	}

	rows := make([]int, arrayLength)
	values := make([]float64, arrayLength)
	if preserveValue {
		copy(rows, m.NzRows[:m.NzLength])
		copy(values, m.NzValues[:m.NzLength])
	}
	m.NzRows = rows
	m.NzValues = values
}

// ColumnSum turns a per-column entry histogram into ColIdx via a cumulative
// sum and leaves the column start offsets behind in histogram, ready to be
// reused as write cursors. histogram must have length >= NumCols; only the
// first NumCols elements are read and rewritten.
// Complexity: O(NumCols).
func (m *Matrix) ColumnSum(histogram []int) {
	m.ColIdx[0] = 0
	index := 0
	for i := 1; i <= m.NumCols; i++ {
		index += histogram[i-1]
		m.ColIdx[i] = index
		histogram[i-1] = m.ColIdx[i-1]
	}
}

// CopyStructure reshapes the receiver to match src and copies its sparsity
// pattern (ColIdx and NzRows) without copying values. The sortedness flag is
// inherited from src.
// Complexity: O(NumCols + NzLength of src).
func (m *Matrix) CopyStructure(src *Matrix) {
	m.Reshape(src.NumRows, src.NumCols, src.NzLength)
	m.NzLength = src.NzLength
	copy(m.ColIdx[:src.NumCols+1], src.ColIdx[:src.NumCols+1])
	copy(m.NzRows[:src.NzLength], src.NzRows[:src.NzLength])
	m.IndicesSorted = src.IndicesSorted
}

// At retrieves the element at (row, col), returning 0 for an entry that is
// not stored. Returns ErrOutOfRange for indices outside the matrix shape.
// Complexity: O(entries in column col).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.NumRows || col < 0 || col >= m.NumCols {
		return 0, ErrOutOfRange
	}

	return m.Get(row, col), nil
}

// Get is the contract-trusting companion of At: indices must be in range.
// It scans column col for the row and returns 0 when the entry is absent.
// Complexity: O(entries in column col).
func (m *Matrix) Get(row, col int) float64 {
	idx1 := m.ColIdx[col+1]
	for i := m.ColIdx[col]; i < idx1; i++ {
		if m.NzRows[i] == row {
			return m.NzValues[i]
		}
	}

	return 0
}

// IsFull reports whether every position of the matrix is stored.
// Complexity: O(1).
func (m *Matrix) IsFull() bool {
	return m.NzLength == m.NumRows*m.NumCols
}

// ToDense materializes the matrix as a row-major Dense. Stored duplicates
// within a column, if any, overwrite earlier ones in storage order.
// Complexity: O(NumRows*NumCols + NzLength).
func (m *Matrix) ToDense() *Dense {
	d, _ := NewDense(m.NumRows, m.NumCols) // shape already validated by construction

	var col, i int // loop iterators
	for col = 0; col < m.NumCols; col++ {
		for i = m.ColIdx[col]; i < m.ColIdx[col+1]; i++ {
			d.Data[m.NzRows[i]*m.NumCols+col] = m.NzValues[i]
		}
	}

	return d
}
