// Package errs defines sentinel errors shared across textcodec packages.
//
// Callers should compare errors with errors.Is, since call sites wrap these
// sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrUnsupportedEncoding is returned when an encoding identifier is not in
	// the supported set. It fires unconditionally, even for empty inputs, so
	// callers can probe encoding support with a zero-length call.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsupportedCompression is returned when a compression type is not in
	// the supported set.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrInvalidPackHeader is returned when packed buffer data is too short to
	// contain a complete header.
	ErrInvalidPackHeader = errors.New("invalid pack header size")

	// ErrInvalidPackMagic is returned when packed buffer data does not start
	// with the expected magic number.
	ErrInvalidPackMagic = errors.New("invalid pack magic number")

	// ErrChecksumMismatch is returned when the CRC32 checksum of an unpacked
	// payload does not match the checksum recorded in the pack header.
	ErrChecksumMismatch = errors.New("pack payload checksum mismatch")

	// ErrInvalidPackLength is returned when the payload length recorded in a
	// pack header does not match the decompressed payload.
	ErrInvalidPackLength = errors.New("pack payload length mismatch")
)
