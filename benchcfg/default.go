// Package benchcfg defines the benchmark configuration structure.
package benchcfg

import (
	"github.com/katalvlaran/hwbench/branch"
	"github.com/katalvlaran/hwbench/locality"
)

// DefaultFlushMiB is the default cache-eviction buffer size in MiB,
// matching locality.DefaultFlushBytes.
const DefaultFlushMiB = locality.DefaultFlushBytes / (1024 * 1024)

// Default returns the default configuration, mirroring each package's
// DefaultOptions so there is a single source of truth per knob.
func Default() *Config {
	b := branch.DefaultOptions()
	c := locality.DefaultOptions()

	return &Config{
		Branch: BranchSection{
			Size:        b.Size,
			Repetitions: b.Repetitions,
			Sorted:      b.Sorted,
			Seed:        b.Seed,
		},
		Cache: CacheSection{
			N:     c.N,
			Seed:  c.Seed,
			Mode:  c.Mode.String(),
			Flush: DefaultFlushMiB,
			Pause: c.Pause,
		},
	}
}
