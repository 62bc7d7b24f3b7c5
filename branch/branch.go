package branch

import (
	"math/rand"
	"sort"
	"time"
)

// Generate fills a fresh slice with size samples drawn uniformly from
// [0, ValueRange) using the supplied generator.
// Stage 1 (Validate): nil rng or non-positive size yields an empty slice.
// Stage 2 (Execute): one Intn draw per element, fixed ascending order.
// Complexity: O(size) time and memory.
func Generate(rng *rand.Rand, size int) []int {
	if rng == nil || size <= 0 {
		return nil
	}

	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(ValueRange)
	}

	return data
}

// FilterSum performs one full pass over data, accumulating every element
// ≥ Threshold. This is the benchmark's hot kernel: the comparison is
// data-dependent and executes exactly once per element, which is what makes
// the measured predictor effect real. Do not rewrite it branch-free.
// Complexity: O(len(data)) time, O(1) memory.
func FilterSum(data []int) int64 {
	var sum int64
	for _, v := range data {
		if v >= Threshold {
			sum += int64(v)
		}
	}

	return sum
}

// Run executes the benchmark described by opts.
// Stage 1 (Validate): check Size and Repetitions via opts.validate.
// Stage 2 (Prepare): generate samples from a private seeded generator and
// optionally sort them ascending, both outside the timed region.
// Stage 3 (Execute): time Repetitions full FilterSum passes into one sum.
// Complexity: O(Size·Repetitions) time, O(Size) memory.
func Run(opts Options) (Result, error) {
	// Validate parameters.
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Private generator: reproducible, no process-global state.
	rng := rand.New(rand.NewSource(opts.Seed))
	data := Generate(rng, opts.Size)

	if opts.Sorted {
		sort.Ints(data)
	}

	// Timed region: the passes only, never the setup.
	start := time.Now()
	var sum int64
	for rep := 0; rep < opts.Repetitions; rep++ {
		sum += FilterSum(data)
	}
	elapsed := time.Since(start)

	return Result{Elapsed: elapsed, Sum: sum}, nil
}
