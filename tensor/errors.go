package tensor

import "errors"

// Sentinel errors returned by tensor operations.
var (
	// ErrBadShape is returned when a requested dimension is not positive or
	// when a data slice does not match the requested dimensions.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch is returned when an elementwise operation receives
	// operands with different dimensions.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrNilTensor is returned when a nil tensor is passed as an operand.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrFormat is returned when a tensor file is malformed.
	ErrFormat = errors.New("tensor: malformed tensor data")
)
