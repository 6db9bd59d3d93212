package displayid

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/diag"
)

// Structural errors. All of them wrap diag.ErrMalformed and abort the
// section.
var (
	// ErrTooShort indicates a buffer shorter than the mandatory section
	// header and checksum.
	ErrTooShort = fmt.Errorf("displayid: section too short: %w", diag.ErrMalformed)

	// ErrInvalidSize indicates a section size above MaxSectionSize or
	// beyond the end of the buffer.
	ErrInvalidSize = fmt.Errorf("displayid: invalid section size: %w", diag.ErrMalformed)

	// ErrChecksum indicates the section bytes do not sum to zero.
	ErrChecksum = fmt.Errorf("displayid: section checksum mismatch: %w", diag.ErrMalformed)

	// ErrInvalidProductType indicates a product type outside the defined codes.
	ErrInvalidProductType = fmt.Errorf("displayid: invalid product type: %w", diag.ErrMalformed)

	// ErrTooManyDataBlocks indicates more data blocks than fit in a section.
	ErrTooManyDataBlocks = fmt.Errorf("displayid: too many data blocks: %w", diag.ErrMalformed)

	// ErrTooManyTimings indicates more timings than fit in a data block.
	ErrTooManyTimings = fmt.Errorf("displayid: too many timings: %w", diag.ErrMalformed)

	// ErrTruncated indicates a read past the end of a data block.
	ErrTruncated = fmt.Errorf("displayid: truncated data block: %w", diag.ErrMalformed)

	// ErrTimingSize indicates a timing descriptor shorter than its fixed size.
	ErrTimingSize = fmt.Errorf("displayid: timing descriptor too short: %w", diag.ErrMalformed)
)

// Version errors. All of them wrap diag.ErrUnsupported.
var (
	// ErrUnsupportedVersion indicates a DisplayID version other than 1.
	ErrUnsupportedVersion = fmt.Errorf("displayid: only version 1 is supported: %w", diag.ErrUnsupported)
)
