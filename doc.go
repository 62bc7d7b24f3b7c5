// Package hwbench is a small collection of hardware-effect micro-benchmarks:
// self-contained programs that make CPU behavior visible through timing.
//
// 🚀 What is hwbench?
//
//	Two independent measurement utilities packaged in one source tree:
//		• branch/   — branch-predictor sensitivity: the same filter-sum loop
//		              runs several times faster over sorted data, because a
//		              sorted input gives the predictor a stable pattern.
//		• locality/ — cache-line locality: naive column-strided matrix
//		              multiplication vs. transpose-then-row-multiply, same
//		              O(n³) arithmetic, very different memory traffic.
//
// ✨ Why bother?
//
//   - Deterministic by construction – every kernel takes an explicit seeded
//     generator, so checksums reproduce across runs on the same platform
//   - Honest measurement – the cache benchmark evicts prior cache state with
//     a configurable scratch-buffer sweep before the timed region
//   - Pure Go – no cgo, no assembly, the effects are visible anyway
//
// The two benchmarks share no code and no state; each is a single
// generate → time → print pipeline. Binaries live under cmd/:
//
//	cmd/branchmark — prints elapsed seconds and "sum = <integer>"
//	cmd/cachemark  — prints "<mode> ms: <integer>" and "checksum: <hex>"
//
// Timings are hardware-dependent and are not part of any contract; the
// computational semantics and checksum determinism are.
//
//	go get github.com/katalvlaran/hwbench
package hwbench
