// Package benchcfg defines the benchmark configuration structure.
package benchcfg

import (
	"time"

	"github.com/katalvlaran/hwbench/branch"
	"github.com/katalvlaran/hwbench/locality"
)

// Config is the root configuration for the hwbench binaries.
type Config struct {
	Branch BranchSection `koanf:"branch"`
	Cache  CacheSection  `koanf:"cache"`
}

// BranchSection tunes the branch-predictor benchmark.
type BranchSection struct {
	Size        int   `koanf:"size"`
	Repetitions int   `koanf:"repetitions"`
	Sorted      bool  `koanf:"sorted"`
	Seed        int64 `koanf:"seed"`
}

// CacheSection tunes the cache-locality benchmark.
// Flush is measured in MiB; Mode is a locality.ParseMode name.
type CacheSection struct {
	N     int           `koanf:"n"`
	Seed  int64         `koanf:"seed"`
	Mode  string        `koanf:"mode"`
	Flush int           `koanf:"flush"`
	Pause time.Duration `koanf:"pause"`
}

// Options converts the section into branch.Options.
func (s BranchSection) Options() branch.Options {
	return branch.Options{
		Size:        s.Size,
		Repetitions: s.Repetitions,
		Sorted:      s.Sorted,
		Seed:        s.Seed,
	}
}

// Options converts the section into locality.Options.
// The mode name is parsed; unknown names surface locality.ErrBadMode.
func (s CacheSection) Options() (locality.Options, error) {
	mode, err := locality.ParseMode(s.Mode)
	if err != nil {
		return locality.Options{}, err
	}

	return locality.Options{
		N:          s.N,
		Seed:       s.Seed,
		Mode:       mode,
		FlushBytes: s.Flush * 1024 * 1024,
		Pause:      s.Pause,
	}, nil
}
