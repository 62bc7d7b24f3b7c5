// Package branch measures branch-predictor sensitivity to data order.
//
// What:
//
//   - Generates a fixed-size array of pseudo-random samples in [0,256).
//   - Optionally sorts it ascending before the timed region.
//   - Times many full passes of a threshold filter-sum: every element
//     ≥ Threshold (128) is added to a running int64 sum.
//
// Why:
//
//   - The conditional inside the inner loop is data-dependent. Over random
//     data the CPU mispredicts roughly half the time; over sorted data the
//     predictor locks onto the single low→high flip and the identical
//     arithmetic runs several times faster.
//
// The computed sum is order-invariant: sorting changes traversal order,
// never which elements pass the threshold. That property is the package's
// main correctness test.
//
// Complexity:
//
//   - Run: O(Size·Repetitions) time with Size·Repetitions branch
//     evaluations, O(Size) memory (plus O(Size·log Size) sort when enabled).
//
// Options:
//
//   - Options.Size: number of samples (default 32768).
//   - Options.Repetitions: timed passes over the array (default 100000).
//   - Options.Sorted: sort ascending before timing.
//   - Options.Seed: seed for the injected generator; fixed by default so
//     runs reproduce.
//
// Errors:
//
//   - ErrBadSize: Size must be > 0.
//   - ErrBadRepetitions: Repetitions must be > 0.
package branch
