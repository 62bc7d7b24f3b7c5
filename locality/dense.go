// Package locality - Dense is a row-major flat-slice matrix, the benchmark's
// only storage type. The explicit index formula row*cols+col is the point:
// the measured effects are properties of this layout.
package locality

import (
	"fmt"
	"math/rand"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Zero-sized shapes are legal; they multiply cleanly to empty results.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrNegativeDimension.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeDimension
	}
	// Allocate flat slice; make() zero-fills deterministically
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// Data exposes the flat row-major backing slice for hot kernels.
// Callers must not resize it; element writes are visible in the matrix.
// Complexity: O(1).
func (m *Dense) Data() []float64 {
	return m.data
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports exact bit-level equality of shape and every element.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// FillRandom overwrites every element with an independent uniform draw from
// [0,1) using the supplied generator, walking the flat slice in order so a
// fixed seed always produces the same matrix.
// Complexity: O(r*c).
func FillRandom(m *Dense, rng *rand.Rand) error {
	if m == nil {
		return ErrNilMatrix
	}
	if rng == nil {
		return ErrNilRand
	}
	for i := range m.data {
		m.data[i] = rng.Float64()
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
