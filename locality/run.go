package locality

import (
	"math/rand"
	"time"
)

// Run executes the cache-locality benchmark described by opts.
// Stage 1 (Validate): check N, Mode, and FlushBytes via opts.validate.
// Stage 2 (Prepare): allocate both inputs, fill them from one private seeded
// generator (a's draws precede b's, so seeds map to fixed matrix pairs), then
// pause, sweep the flush buffer, and pause again so the eviction settles.
// Stage 3 (Execute): time the selected path — Transposed mode times the
// transpose build plus the multiply, Naive mode the multiply alone.
// Stage 4 (Finalize): checksum the result.
// Complexity: O(N³) time, O(N²) memory plus the transient flush buffer.
func Run(opts Options) (Result, error) {
	// Validate parameters.
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Allocate inputs; N≥0 was just validated, so errors cannot occur here.
	a, _ := NewDense(opts.N, opts.N)
	b, _ := NewDense(opts.N, opts.N)

	// One private generator for both fills: reproducible, no global state.
	rng := rand.New(rand.NewSource(opts.Seed))
	if err := FillRandom(a, rng); err != nil {
		return Result{}, err
	}
	if err := FillRandom(b, rng); err != nil {
		return Result{}, err
	}

	// Evict whatever the fills left in cache before measuring.
	time.Sleep(opts.Pause)
	FlushCache(opts.FlushBytes)
	time.Sleep(opts.Pause)

	var (
		res   *Dense
		err   error
		start = time.Now()
	)
	switch opts.Mode {
	case Transposed:
		res, err = MultiplyTransposed(a, b)
	default:
		res, err = MultiplyNaive(a, b)
	}
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	bits, err := Checksum(res)
	if err != nil {
		return Result{}, err
	}

	return Result{Mode: opts.Mode, Elapsed: elapsed, Checksum: bits}, nil
}
