package locality

// flushSink keeps the sweep below from being eliminated as dead code.
var flushSink uint64

// FlushCache evicts prior cache state by sequentially touching a scratch
// buffer of the given size. Any size well above the last-level cache does the
// job; zero or negative sizes are a no-op. This is measurement hygiene — it
// influences timings, never results.
// Complexity: O(bytes) time, O(bytes) transient memory.
func FlushCache(bytes int) {
	if bytes <= 0 {
		return
	}

	buf := make([]byte, bytes)
	var sum uint64
	for _, b := range buf {
		sum += uint64(b)
	}
	flushSink = sum
}
