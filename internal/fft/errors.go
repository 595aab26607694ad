package fft

import "errors"

var (
	// ErrInvalidLength is returned when a real plan is requested for a size
	// that is not even and at least 2.
	ErrInvalidLength = errors.New("fft: invalid transform length")

	// ErrUnknownBackend is returned by ParseBackend for an unrecognised name.
	ErrUnknownBackend = errors.New("fft: unknown backend")
)
