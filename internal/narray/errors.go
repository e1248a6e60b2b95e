package narray

import "errors"

// Sentinel errors for contract violations. Transformation and access
// methods panic with errors wrapping one of these; callers that need to
// distinguish failures can recover and test with errors.Is.
var (
	// ErrBounds reports an axis, index, or length argument outside its
	// valid range.
	ErrBounds = errors.New("narray: out of bounds")

	// ErrInvalidSize reports a negative requested dimension, or mismatched
	// dimensions between two arrays in a combining operation.
	ErrInvalidSize = errors.New("narray: invalid size")

	// ErrShape reports that a reshape cannot factor the source layout into
	// the requested dimensions.
	ErrShape = errors.New("narray: incompatible shape")

	// ErrReadOnly reports a mutating operation on a read-only view.
	ErrReadOnly = errors.New("narray: read-only view")

	// ErrEmpty reports an operation that requires data on an empty array.
	ErrEmpty = errors.New("narray: empty array")
)
