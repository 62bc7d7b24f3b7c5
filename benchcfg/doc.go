// Package benchcfg loads tuning parameters for the hwbench binaries.
//
// What:
//
//   - Config mirrors the two benchmarks' option sets under "branch" and
//     "cache" sections.
//   - Load layers sources with Koanf, later overriding earlier:
//     defaults → YAML file → environment (HWBENCH_ prefix).
//   - Verify rejects configurations the benchmarks would refuse anyway,
//     with readable messages before any allocation happens.
//
// Why:
//
//	The cache-eviction buffer size and the settle pauses are tuned to
//	hardware, not to the program: the right values depend on the machine's
//	last-level cache. They are therefore configuration, never constants.
//
// Environment keys flatten sections with underscores:
//
//	HWBENCH_BRANCH_SIZE=65536
//	HWBENCH_CACHE_FLUSH=512
//
// Example YAML:
//
//	branch:
//	  size: 32768
//	  repetitions: 100000
//	  sorted: true
//	cache:
//	  n: 2000
//	  mode: transposed
//	  flush: 300      # MiB
//	  pause: 1s
package benchcfg
