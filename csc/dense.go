// Package csc: Dense is the flat row-major companion of Matrix, used as the
// right-hand side and result of sparse×dense multiplication, as substitution
// staging and as the densification target in tests. Data is exported for the
// same reason Matrix fields are: the kernels index it directly.
package csc

// Dense is a row-major matrix of float64 values.
// Data holds Rows*Cols elements; element (i, j) lives at Data[i*Cols+j].
type Dense struct {
	Rows, Cols int       // shape, both non-negative
	Data       []float64 // flat backing storage, length >= Rows*Cols
}

// NewDense creates a Rows×Cols Dense initialized to zeros.
// Returns ErrBadShape when either dimension is negative; zero is valid.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return 0, ErrOutOfRange
	}

	return d.Data[row*d.Cols+col], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return ErrOutOfRange
	}
	d.Data[row*d.Cols+col] = v

	return nil
}

// Reshape resizes the receiver to rows×cols, growing Data when needed, and
// zeroes the active region. Negative dimensions are clamped to zero.
// Complexity: O(rows*cols).
func (d *Dense) Reshape(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	d.Rows, d.Cols = rows, cols
	if n := rows * cols; n > len(d.Data) {
		d.Data = make([]float64, n)
	} else {
		d.Zero()
	}
}

// Zero clears the active Rows*Cols region of Data. Complexity: O(rows*cols).
func (d *Dense) Zero() {
	n := d.Rows * d.Cols
	for i := 0; i < n; i++ {
		d.Data[i] = 0
	}
}

// Clone returns a deep copy of the Dense, independent of the original.
// Complexity: O(rows*cols).
func (d *Dense) Clone() *Dense {
	data := make([]float64, d.Rows*d.Cols)
	copy(data, d.Data[:d.Rows*d.Cols])

	return &Dense{Rows: d.Rows, Cols: d.Cols, Data: data}
}
