package cta

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/diag"
)

// Structural errors. All of them wrap diag.ErrMalformed and abort the
// extension block.
var (
	// ErrInvalidBlock indicates the input is not a 128-byte block tagged
	// as a CTA-861 extension.
	ErrInvalidBlock = fmt.Errorf("cta: not a CTA-861 extension block: %w", diag.ErrMalformed)

	// ErrInvalidDTDOffset indicates a DTD start offset inside the header
	// or past the end of the block.
	ErrInvalidDTDOffset = fmt.Errorf("cta: invalid detailed timing offset: %w", diag.ErrMalformed)

	// ErrDataBlockOverflow indicates a data block crossing the DTD start.
	ErrDataBlockOverflow = fmt.Errorf("cta: data block exceeds the data block collection: %w", diag.ErrMalformed)

	// ErrTooManyDataBlocks indicates more data blocks than fit in a block.
	ErrTooManyDataBlocks = fmt.Errorf("cta: too many data blocks: %w", diag.ErrMalformed)

	// ErrTooManyDetailedTimings indicates more detailed timing descriptors
	// than fit in a block.
	ErrTooManyDetailedTimings = fmt.Errorf("cta: too many detailed timing descriptors: %w", diag.ErrMalformed)
)
