// Package csc: direct CSC constructors. All of them build the column
// structure in one pass and produce index-sorted output.
package csc

// Identity returns the n×n identity matrix. Negative n is clamped to zero.
// Complexity: O(n).
func Identity(n int) *Matrix {
	return IdentityShaped(n, n)
}

// IdentityShaped returns a numRows×numCols matrix with ones on the main
// diagonal, the rectangular generalization of Identity.
// Complexity: O(numRows + numCols).
func IdentityShaped(numRows, numCols int) *Matrix {
	mn := numRows
	if numCols < mn {
		mn = numCols
	}
	m := NewMatrix(numRows, numCols, mn)
	mn = m.NumRows // clamped by NewMatrix
	if m.NumCols < mn {
		mn = m.NumCols
	}

	for i := 0; i < mn; i++ {
		m.ColIdx[i+1] = i + 1
		m.NzRows[i] = i
		m.NzValues[i] = 1
	}
	for i := mn + 1; i <= m.NumCols; i++ {
		m.ColIdx[i] = mn
	}
	m.NzLength = mn
	m.IndicesSorted = true

	return m
}

// Diag returns the square diagonal matrix with the given values on the main
// diagonal. Explicit zeros are stored, preserving the structural pattern.
// Complexity: O(len(values)).
func Diag(values ...float64) *Matrix {
	n := len(values)
	m := NewMatrix(n, n, n)

	for i := 0; i < n; i++ {
		m.ColIdx[i+1] = i + 1
		m.NzRows[i] = i
		m.NzValues[i] = values[i]
	}
	m.NzLength = n
	m.IndicesSorted = true

	return m
}

// FromDense converts a row-major Dense into CSC form, dropping every entry
// whose absolute value is <= tol. Pass tol == 0 to keep all exact non-zeros.
// The result is index-sorted. Returns ErrNilMatrix for a nil input.
// Complexity: O(rows*cols).
func FromDense(d *Dense, tol float64) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if tol < 0 {
		tol = -tol
	}

	// Pass 1: count surviving entries per column.
	m := NewMatrix(d.Rows, d.Cols, 0)
	var row, col int // loop iterators
	var v float64
	count := 0
	for col = 0; col < d.Cols; col++ {
		for row = 0; row < d.Rows; row++ {
			v = d.Data[row*d.Cols+col]
			if v > tol || v < -tol {
				count++
			}
		}
		m.ColIdx[col+1] = count
	}

	// Pass 2: place entries, column-major, rows ascending.
	m.GrowMaxLength(count, false)
	m.NzLength = count
	idx := 0
	for col = 0; col < d.Cols; col++ {
		for row = 0; row < d.Rows; row++ {
			v = d.Data[row*d.Cols+col]
			if v > tol || v < -tol {
				m.NzRows[idx] = row
				m.NzValues[idx] = v
				idx++
			}
		}
	}
	m.IndicesSorted = true

	return m, nil
}
