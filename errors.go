package vtcore

import "errors"

// Sentinel errors returned by the terminal façade and its collaborators.
var (
	// ErrClosed is returned by operations attempted after Close.
	ErrClosed = errors.New("vtcore: terminal closed")
	// ErrInvalidDimensions is returned when Resize is given non-positive cols/rows.
	ErrInvalidDimensions = errors.New("vtcore: cols and rows must be positive")
)
