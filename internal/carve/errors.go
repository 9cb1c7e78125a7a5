package carve

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// functions wrap them with position or iteration context where useful.
var (
	// ErrInvalidImage indicates a nil grid or one with an empty pixel buffer.
	ErrInvalidImage = errors.New("carve: invalid image")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("carve: coordinate out of range")

	// ErrUnknownChannel indicates a channel selector outside {Red, Green, Blue}.
	ErrUnknownChannel = errors.New("carve: unknown channel")

	// ErrInvalidTable indicates a nil cost table, one without storage, or one
	// whose dimensions do not match the image it is paired with.
	ErrInvalidTable = errors.New("carve: invalid cost table")

	// ErrInvalidSeam indicates a nil seam, one whose length differs from the
	// image height, or one containing an out-of-range column.
	ErrInvalidSeam = errors.New("carve: invalid seam")

	// ErrEmptyImage indicates a removal requested on a zero-width image.
	ErrEmptyImage = errors.New("carve: image has no columns")

	// ErrSeamCount indicates a ReduceWidth request that would not leave at
	// least one column in the result.
	ErrSeamCount = errors.New("carve: seam count must leave at least one column")
)
