package edid

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/diag"
)

// Structural errors. All of them wrap diag.ErrMalformed.
var (
	// ErrInvalidSize indicates the blob is not a non-empty multiple of the
	// block size, or holds more than MaxBlockCount blocks.
	ErrInvalidSize = fmt.Errorf("edid: invalid blob size: %w", diag.ErrMalformed)

	// ErrInvalidHeader indicates the fixed 8-byte header does not match.
	ErrInvalidHeader = fmt.Errorf("edid: invalid header: %w", diag.ErrMalformed)

	// ErrChecksum indicates the base block bytes do not sum to zero.
	ErrChecksum = fmt.Errorf("edid: base block checksum mismatch: %w", diag.ErrMalformed)

	// ErrExtensionCount indicates the extension count byte disagrees with
	// the blob size.
	ErrExtensionCount = fmt.Errorf("edid: extension count mismatch: %w", diag.ErrMalformed)

	// ErrExtensionChecksum indicates an extension block bytes do not sum to zero.
	ErrExtensionChecksum = fmt.Errorf("edid: extension block checksum mismatch: %w", diag.ErrMalformed)

	// ErrDescriptorSize indicates a byte descriptor shorter than 18 bytes
	// was handed to the detailed timing decoder.
	ErrDescriptorSize = fmt.Errorf("edid: byte descriptor too short: %w", diag.ErrMalformed)

	// ErrStereoMode indicates a stereo flag combination outside the defined
	// table. The bit layout makes this unreachable for real input.
	ErrStereoMode = fmt.Errorf("edid: undefined stereo mode: %w", diag.ErrMalformed)
)

// Version errors. All of them wrap diag.ErrUnsupported.
var (
	// ErrUnsupportedVersion indicates an EDID structure version other than 1.
	// Later versions break the block layout, so no decoding is attempted.
	ErrUnsupportedVersion = fmt.Errorf("edid: only version 1 is supported: %w", diag.ErrUnsupported)
)
