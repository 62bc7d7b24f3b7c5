// Package locality - multiplication and transpose kernels. Both multiply
// paths accumulate in identical k-ascending order, so their results are
// bit-for-bit equal; only the memory-traversal pattern differs.
package locality

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMulNaive  = "MultiplyNaive"
	opMulTrans  = "MultiplyTransposed"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel via %w.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateMul checks multiply operands: non-nil and conformable shapes.
func validateMul(op string, a, b *Dense) error {
	if a == nil || b == nil {
		return kernelErrorf(op, ErrNilMatrix)
	}
	if a.c != b.r {
		return kernelErrorf(op, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c))
	}

	return nil
}

// Transpose returns a new matrix with out[j][i] = m[i][j].
// Transposing twice returns the original matrix exactly.
// Stage 1 (Validate): reject nil input.
// Stage 2 (Execute): fixed i→j loop over the source, row-major writes stride
// down the destination columns.
// Complexity: O(r*c) time and memory.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, kernelErrorf(opTranspose, ErrNilMatrix)
	}

	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// MultiplyNaive computes res[i][j] = Σ_k a[i][k]·b[k][j] with k innermost.
// Successive k-steps read b at stride b.c, so every step of the hot loop
// lands on a different cache line of b. That stride is the benchmark's
// subject; do not reorder these loops.
// Stage 1 (Validate): validateMul.
// Stage 2 (Execute): fixed i→j→k loops on the flat slices, one write per cell.
// Complexity: O(r·c·k) time, O(r·c) memory for the result.
func MultiplyNaive(a, b *Dense) (*Dense, error) {
	if err := validateMul(opMulNaive, a, b); err != nil {
		return nil, err
	}

	n, inner := a.r, a.c
	cols := b.c
	res := &Dense{r: n, c: cols, data: make([]float64, n*cols)}
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := 0; k < inner; k++ {
				sum += a.data[i*inner+k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// MultiplyTransposed computes the same product as MultiplyNaive, but first
// builds bT (one O(r*c) pass) so the inner loop reads both operands at
// stride 1: res[i][j] = Σ_k a[i][k]·bT[j][k]. The accumulation order over k
// is unchanged, so the result equals MultiplyNaive's exactly.
// Stage 1 (Validate): validateMul.
// Stage 2 (Prepare): build the transpose of b.
// Stage 3 (Execute): fixed i→j→k loops, both reads sequential.
// Complexity: O(r·c·k) time, O(r·c) memory for result plus transpose buffer.
func MultiplyTransposed(a, b *Dense) (*Dense, error) {
	if err := validateMul(opMulTrans, a, b); err != nil {
		return nil, err
	}

	bT, err := Transpose(b)
	if err != nil {
		return nil, kernelErrorf(opMulTrans, err)
	}

	n, inner := a.r, a.c
	cols := bT.r
	res := &Dense{r: n, c: cols, data: make([]float64, n*cols)}
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := 0; k < inner; k++ {
				sum += a.data[i*inner+k] * bT.data[j*inner+k]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}
