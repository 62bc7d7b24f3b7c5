package locality_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwbench/locality"
)

// mustDense builds an r×c matrix or fails the test.
func mustDense(t testing.TB, rows, cols int) *locality.Dense {
	t.Helper()
	m, err := locality.NewDense(rows, cols)
	require.NoError(t, err)
	return m
}

// fillSeq fills m with 1, 2, 3, … in row-major order for hand-checkable cases.
func fillSeq(m *locality.Dense) {
	for i := range m.Data() {
		m.Data()[i] = float64(i + 1)
	}
}

// identity builds the n×n identity matrix.
func identity(t testing.TB, n int) *locality.Dense {
	t.Helper()
	m := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}
	return m
}

//----------------------------------------------------------------------------//
// Transpose
//----------------------------------------------------------------------------//

// TestTranspose_Correctness checks out[j][i] == in[i][j] on a rectangle.
func TestTranspose_Correctness(t *testing.T) {
	m := mustDense(t, 2, 3)
	fillSeq(m) // [1 2 3; 4 5 6]

	mt, err := locality.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			orig, _ := m.At(i, j)
			flip, _ := mt.At(j, i)
			assert.Equal(t, orig, flip, "Transpose[%d][%d]", j, i)
		}
	}
}

// TestTranspose_Involution verifies double transpose restores the original exactly.
func TestTranspose_Involution(t *testing.T) {
	m := mustDense(t, 17, 9)
	require.NoError(t, locality.FillRandom(m, rand.New(rand.NewSource(3))))

	once, err := locality.Transpose(m)
	require.NoError(t, err)
	twice, err := locality.Transpose(once)
	require.NoError(t, err)

	assert.True(t, m.Equal(twice), "transpose must be an involution")
}

// TestTranspose_Nil maps a nil input to ErrNilMatrix.
func TestTranspose_Nil(t *testing.T) {
	_, err := locality.Transpose(nil)
	assert.ErrorIs(t, err, locality.ErrNilMatrix)
}

//----------------------------------------------------------------------------//
// Multiplication paths
//----------------------------------------------------------------------------//

// TestMultiply_Validation covers nil operands and shape mismatch for both paths.
func TestMultiply_Validation(t *testing.T) {
	a := mustDense(t, 2, 3)
	bad := mustDense(t, 2, 2) // 2x3 · 2x2 does not conform

	for name, mul := range map[string]func(x, y *locality.Dense) (*locality.Dense, error){
		"Naive":      locality.MultiplyNaive,
		"Transposed": locality.MultiplyTransposed,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mul(nil, a)
			assert.ErrorIs(t, err, locality.ErrNilMatrix)
			_, err = mul(a, nil)
			assert.ErrorIs(t, err, locality.ErrNilMatrix)
			_, err = mul(a, bad)
			assert.ErrorIs(t, err, locality.ErrDimensionMismatch)
		})
	}
}

// TestMultiply_HandComputed checks a rectangular product against pen and paper.
func TestMultiply_HandComputed(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 3, 2)
	fillSeq(a) // [1 2 3; 4 5 6]
	fillSeq(b) // [1 2; 3 4; 5 6]

	// a·b = [22 28; 49 64]
	want := [][]float64{{22, 28}, {49, 64}}

	naive, err := locality.MultiplyNaive(a, b)
	require.NoError(t, err)
	trans, err := locality.MultiplyTransposed(a, b)
	require.NoError(t, err)

	for i := range want {
		for j := range want[i] {
			nv, _ := naive.At(i, j)
			tv, _ := trans.At(i, j)
			assert.Equal(t, want[i][j], nv, "naive[%d][%d]", i, j)
			assert.Equal(t, want[i][j], tv, "transposed[%d][%d]", i, j)
		}
	}
}

// TestMultiply_PathsAgreeExactly verifies both paths produce bit-identical
// results on random data: the accumulation order over k is the same, so there
// is no tolerance to allow.
func TestMultiply_PathsAgreeExactly(t *testing.T) {
	const n = 50
	rng := rand.New(rand.NewSource(89899898))
	a := mustDense(t, n, n)
	b := mustDense(t, n, n)
	require.NoError(t, locality.FillRandom(a, rng))
	require.NoError(t, locality.FillRandom(b, rng))

	naive, err := locality.MultiplyNaive(a, b)
	require.NoError(t, err)
	trans, err := locality.MultiplyTransposed(a, b)
	require.NoError(t, err)

	assert.True(t, naive.Equal(trans), "paths must agree bit-for-bit")

	nb, err := locality.Checksum(naive)
	require.NoError(t, err)
	tb, err := locality.Checksum(trans)
	require.NoError(t, err)
	assert.Equal(t, nb, tb, "checksums must match exactly")
}

// TestMultiply_IdentityPreserves checks I·M == M on both paths for n=3.
func TestMultiply_IdentityPreserves(t *testing.T) {
	id := identity(t, 3)
	m := mustDense(t, 3, 3)
	require.NoError(t, locality.FillRandom(m, rand.New(rand.NewSource(11))))

	naive, err := locality.MultiplyNaive(id, m)
	require.NoError(t, err)
	trans, err := locality.MultiplyTransposed(id, m)
	require.NoError(t, err)

	assert.True(t, naive.Equal(m), "I·M must equal M on the naive path")
	assert.True(t, trans.Equal(m), "I·M must equal M on the transposed path")
}

// TestMultiply_TrivialSizes covers n=0 and n=1, which must not crash.
func TestMultiply_TrivialSizes(t *testing.T) {
	t.Run("n=0", func(t *testing.T) {
		a := mustDense(t, 0, 0)
		b := mustDense(t, 0, 0)
		res, err := locality.MultiplyNaive(a, b)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Rows())
		res, err = locality.MultiplyTransposed(a, b)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Rows())
	})

	t.Run("n=1", func(t *testing.T) {
		a := mustDense(t, 1, 1)
		b := mustDense(t, 1, 1)
		require.NoError(t, a.Set(0, 0, 3))
		require.NoError(t, b.Set(0, 0, 7))

		res, err := locality.MultiplyNaive(a, b)
		require.NoError(t, err)
		v, _ := res.At(0, 0)
		assert.Equal(t, 21.0, v)

		res, err = locality.MultiplyTransposed(a, b)
		require.NoError(t, err)
		v, _ = res.At(0, 0)
		assert.Equal(t, 21.0, v)
	})
}

//----------------------------------------------------------------------------//
// Checksum
//----------------------------------------------------------------------------//

// TestChecksum_BitPattern pins the fingerprint to math.Float64bits semantics.
func TestChecksum_BitPattern(t *testing.T) {
	m := mustDense(t, 1, 2)
	require.NoError(t, m.Set(0, 0, 1.5))
	require.NoError(t, m.Set(0, 1, 0.25))

	bits, err := locality.Checksum(m)
	require.NoError(t, err)
	// 1.75 = 0x3FFC000000000000 as an IEEE-754 double.
	assert.Equal(t, uint64(0x3FFC000000000000), bits)
	assert.Equal(t, "3ffc000000000000", locality.ChecksumHex(bits))

	empty := mustDense(t, 0, 0)
	bits, err = locality.Checksum(empty)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bits, "empty matrix sums to +0.0")

	_, err = locality.Checksum(nil)
	assert.ErrorIs(t, err, locality.ErrNilMatrix)
}
