// Package errs defines sentinel errors shared across the jsonv packages.
//
// Callers can match these errors with errors.Is to distinguish type-mismatch
// failures from document blob corruption.
package errs

import "errors"

// Value accessor errors. A typed accessor called on a Value of a different
// kind returns one of these; no coercion is attempted.
var (
	ErrNotNumber = errors.New("value is not a number")
	ErrNotString = errors.New("value is not a string")
	ErrNotArray  = errors.New("value is not an array")
	ErrNotObject = errors.New("value is not an object")
)

// Document blob errors returned by blob.Decode.
var (
	ErrInvalidBlobFormat  = errors.New("invalid document blob format")
	ErrInvalidHeaderSize  = errors.New("document blob shorter than header")
	ErrUnsupportedVersion = errors.New("unsupported document blob version")
	ErrChecksumMismatch   = errors.New("document blob checksum mismatch")
	ErrLengthMismatch     = errors.New("document blob length mismatch")
)
