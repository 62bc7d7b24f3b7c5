// Package branch defines options and results for the branch-predictor benchmark.
package branch

import "time"

// Benchmark parameter defaults - single source of truth for zero-value behavior.
const (
	// Threshold is the inclusive lower bound of the filter: elements ≥ Threshold
	// contribute to the sum. 128 splits the [0,256) sample range at its midpoint,
	// so random data makes the branch maximally unpredictable.
	Threshold = 128

	// ValueRange bounds generated samples to [0, ValueRange).
	ValueRange = 256

	// DefaultSize is the default sample count per pass.
	DefaultSize = 32768

	// DefaultRepetitions is the default number of timed full passes.
	// 100000 passes over up to 32768 samples of value < 256 bound the sum by
	// ~8.4e14, which overflows int32 but not int64.
	DefaultRepetitions = 100000

	// DefaultSeed keeps runs reproducible unless the caller overrides it.
	DefaultSeed = 1
)

// Options configures a benchmark run.
//
// Fields:
//   - Size        — number of samples generated per pass.
//   - Repetitions — timed full passes over the array.
//   - Sorted      — sort the array ascending before the timed region.
//     Sorting never changes the resulting Sum, only the speed.
//   - Seed        — seed for the run's private generator. The package never
//     touches the process-global rand source.
type Options struct {
	Size        int
	Repetitions int
	Sorted      bool
	Seed        int64
}

// DefaultOptions returns the canonical unsorted configuration.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Repetitions: DefaultRepetitions,
		Sorted:      false,
		Seed:        DefaultSeed,
	}
}

// validate checks option invariants against package sentinels.
func (o Options) validate() error {
	if o.Size <= 0 {
		return ErrBadSize
	}
	if o.Repetitions <= 0 {
		return ErrBadRepetitions
	}

	return nil
}

// Result carries the outcome of one timed run.
//
// Fields:
//   - Elapsed — wall time of the timed region only (generation and the
//     optional sort are excluded, matching what the benchmark measures).
//   - Sum     — accumulated filter-sum across all repetitions; int64 because
//     the total exceeds 32-bit range at default settings.
type Result struct {
	Elapsed time.Duration
	Sum     int64
}
