package locality

import "errors"

var (
	// ErrNilMatrix indicates a nil operand was passed to a kernel.
	ErrNilMatrix = errors.New("locality: matrix must be non-nil")
	// ErrNilRand indicates a nil random generator was passed to FillRandom.
	ErrNilRand = errors.New("locality: generator must be non-nil")
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = errors.New("locality: dimensions must be >= 0")
	// ErrDimensionMismatch indicates non-conformable multiplicand shapes.
	ErrDimensionMismatch = errors.New("locality: operand shapes do not conform")
	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("locality: index out of bounds")
	// ErrBadMode indicates an unknown benchmark mode value or name.
	ErrBadMode = errors.New("locality: unknown mode")
	// ErrBadFlushSize indicates a negative cache-flush buffer size.
	ErrBadFlushSize = errors.New("locality: FlushBytes must be >= 0")
)
