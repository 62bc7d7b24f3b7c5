package branch

import "errors"

var (
	// ErrBadSize indicates a non-positive sample count.
	ErrBadSize = errors.New("branch: Size must be > 0")
	// ErrBadRepetitions indicates a non-positive repetition count.
	ErrBadRepetitions = errors.New("branch: Repetitions must be > 0")
)
