// Package locality measures cache-line locality effects in dense matrix
// multiplication.
//
// What:
//
//   - Dense: a row-major flat []float64 matrix addressed by row*cols+col.
//   - MultiplyNaive: result[i][j] = Σ_k a[i][k]·b[k][j] with b walked
//     column-wise — stride n between successive k, defeating cache-line reuse.
//   - MultiplyTransposed: transpose b once (O(n²)), then walk both operands
//     row-wise at stride 1. Same O(n³) arithmetic, far fewer cache misses.
//   - Run: the timed benchmark — fill from a seeded generator, evict prior
//     cache state with a scratch-buffer sweep, time the selected path, and
//     fingerprint the result.
//
// Why:
//
//	Both paths accumulate the products in identical k-ascending order, so
//	their results are bit-for-bit equal; only the traversal order relative
//	to the row-major layout differs. The runtime gap is therefore pure
//	memory-system behavior, which is the point of the demonstration.
//
// Checksum:
//
//	All result entries are summed into one float64 whose IEEE-754 bit
//	pattern is reinterpreted as a uint64 (math.Float64bits) and printed in
//	hex — a compact, reproducible fingerprint, not a cryptographic digest.
//
// Complexity:
//
//   - MultiplyNaive / MultiplyTransposed: O(n³) time, O(n²) memory.
//   - Transpose: O(n²) time and memory.
//   - FlushCache: O(bytes) time, O(bytes) transient memory.
//
// Options:
//
//   - Options.N: matrix dimension (default 2000).
//   - Options.Mode: Naive or Transposed.
//   - Options.Seed: seed for the injected generator.
//   - Options.FlushBytes / Options.Pause: cache-eviction tuning. The right
//     values are platform-dependent, so they are configuration, not
//     constants.
//
// Errors:
//
//   - ErrNilMatrix: a nil operand reached a kernel.
//   - ErrNegativeDimension: a negative row/column count (zero is legal and
//     multiplies to an empty result).
//   - ErrDimensionMismatch: non-conformable multiplicand shapes.
//   - ErrIndexOutOfBounds: At/Set outside the matrix.
//   - ErrBadMode: unknown mode value or name.
//   - ErrBadFlushSize: negative flush-buffer size.
package locality
