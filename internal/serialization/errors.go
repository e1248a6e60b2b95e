package serialization

import "errors"

var (
	// ErrBadMagic reports a stream that does not start with "NARR".
	ErrBadMagic = errors.New("serialization: bad magic bytes")

	// ErrVersion reports an unsupported format version.
	ErrVersion = errors.New("serialization: unsupported format version")

	// ErrHeader reports a malformed or oversized header block.
	ErrHeader = errors.New("serialization: invalid header")

	// ErrElementType reports a stored element type that does not match
	// the requested one.
	ErrElementType = errors.New("serialization: element type mismatch")

	// ErrChecksumMismatch reports element data that fails checksum
	// validation.
	ErrChecksumMismatch = errors.New("serialization: checksum mismatch")
)
