// Package locality defines modes, options, and results for the cache benchmark.
package locality

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the multiplication path under measurement.
//
//   - Naive      — b is walked column-wise (stride n between successive k);
//     every k-step lands on a fresh cache line.
//   - Transposed — b is transposed once, then both operands are walked
//     row-wise at stride 1; the transpose build is inside the timed region.
type Mode int

const (
	// Naive mode: column-strided access to the second operand.
	Naive Mode = iota

	// Transposed mode: transpose-then-row-multiply.
	Transposed
)

// mode names used for flag parsing and output lines.
const (
	nameNaive      = "naive"
	nameTransposed = "transposed"
)

// String returns the mode's canonical lowercase name.
func (m Mode) String() string {
	switch m {
	case Naive:
		return nameNaive
	case Transposed:
		return nameTransposed
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name to its Mode.
// Accepts "naive", "transposed", and "transpose" (the historical spelling of
// the command-line selector). Unknown names return ErrBadMode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameNaive:
		return Naive, nil
	case nameTransposed, "transpose":
		return Transposed, nil
	default:
		return Naive, fmt.Errorf("%w: %q", ErrBadMode, name)
	}
}

// valid reports whether m is a known mode value.
func (m Mode) valid() bool {
	return m == Naive || m == Transposed
}

// Benchmark defaults - single source of truth for zero-value behavior.
const (
	// DefaultN is the default matrix dimension. Chosen so one 2000×2000
	// float64 matrix (~30.5 MiB) comfortably exceeds typical L2/L3 capacity;
	// smaller n lets both paths fit in cache and hides the effect.
	DefaultN = 2000

	// DefaultSeed keeps input matrices (and thus checksums) reproducible.
	DefaultSeed = 89899898

	// DefaultFlushBytes sizes the cache-eviction scratch buffer (300 MiB).
	// Any value well above the last-level cache works; this is measurement
	// hygiene, not part of the result's semantics.
	DefaultFlushBytes = 300 * 1024 * 1024

	// DefaultPause brackets the flush so the eviction settles before timing.
	DefaultPause = time.Second
)

// Options configures a benchmark run.
type Options struct {
	N          int           // matrix dimension (n×n), must be ≥ 0
	Seed       int64         // generator seed for both input matrices
	Mode       Mode          // Naive or Transposed
	FlushBytes int           // cache-eviction buffer size; 0 disables the flush
	Pause      time.Duration // sleep before and after the flush
}

// DefaultOptions returns the canonical naive-mode configuration.
func DefaultOptions() Options {
	return Options{
		N:          DefaultN,
		Seed:       DefaultSeed,
		Mode:       Naive,
		FlushBytes: DefaultFlushBytes,
		Pause:      DefaultPause,
	}
}

// validate checks option invariants against package sentinels.
func (o Options) validate() error {
	if o.N < 0 {
		return ErrNegativeDimension
	}
	if !o.Mode.valid() {
		return fmt.Errorf("%w: %d", ErrBadMode, int(o.Mode))
	}
	if o.FlushBytes < 0 {
		return ErrBadFlushSize
	}

	return nil
}

// Result carries the outcome of one timed run.
//
// Fields:
//   - Mode     — the path that was measured.
//   - Elapsed  — wall time of the timed region; in Transposed mode this
//     includes building the transpose, since that cost belongs to the path.
//   - Checksum — math.Float64bits of the summed result entries.
type Result struct {
	Mode     Mode
	Elapsed  time.Duration
	Checksum uint64
}
