package locality

import (
	"fmt"
	"math"
)

// Checksum sums every entry of m into a single float64 and reinterprets its
// IEEE-754 bit pattern as a uint64 via math.Float64bits. The exact bit layout
// is preserved, so for a fixed seed the fingerprint reproduces across runs on
// the same platform. The empty matrix sums to 0.0, whose bits are 0.
// Complexity: O(r*c).
func Checksum(m *Dense) (uint64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}

	var sum float64
	for _, v := range m.data {
		sum += v
	}

	return math.Float64bits(sum), nil
}

// ChecksumHex formats a checksum the way the benchmark prints it: lowercase
// hexadecimal without leading zeros.
func ChecksumHex(bits uint64) string {
	return fmt.Sprintf("%x", bits)
}
