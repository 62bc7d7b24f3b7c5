// Package benchcfg defines the benchmark configuration structure.
package benchcfg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hwbench/locality"
)

// Verify validates the configuration before any benchmark allocates.
func Verify(cfg *Config) error {
	if cfg == nil {
		return errors.New("benchcfg: nil config")
	}
	if err := verifyBranch(&cfg.Branch); err != nil {
		return err
	}

	return verifyCache(&cfg.Cache)
}

func verifyBranch(s *BranchSection) error {
	if s.Size <= 0 {
		return errors.New("branch.size must be > 0")
	}
	if s.Repetitions <= 0 {
		return errors.New("branch.repetitions must be > 0")
	}

	return nil
}

func verifyCache(s *CacheSection) error {
	if s.N < 0 {
		return errors.New("cache.n must be >= 0")
	}
	if s.Flush < 0 {
		return errors.New("cache.flush must be >= 0 (MiB)")
	}
	if s.Pause < 0 {
		return errors.New("cache.pause must be >= 0")
	}
	if _, err := locality.ParseMode(s.Mode); err != nil {
		return fmt.Errorf("cache.mode: %w", err)
	}

	return nil
}
