package diag

import "errors"

// Error kinds shared by all decoders.
//
// Package-level sentinels in edid, cta and displayid wrap one of these, so
// callers can match either the precise condition or its kind with errors.Is.
var (
	// ErrMalformed indicates the blob violates a hard structural rule
	// (header, checksum, count or offset mismatch).
	ErrMalformed = errors.New("malformed structure")

	// ErrUnsupported indicates a well-formed blob using a version the
	// decoder does not implement.
	ErrUnsupported = errors.New("unsupported version")

	// ErrIO indicates the diagnostics report could not be written.
	ErrIO = errors.New("diagnostics report write failed")
)
