package tensor

import "errors"

// Error kinds surfaced by the dense array layer. Callers match them
// with errors.Is; the concrete errors wrap these with context.
var (
	// ErrConversion reports input that cannot be interpreted as a
	// rectangular numeric array.
	ErrConversion = errors.New("cannot convert to dense numeric array")

	// ErrShapeMismatch reports operand shapes incompatible with the
	// requested elementwise or matrix operation.
	ErrShapeMismatch = errors.New("shape mismatch")
)
