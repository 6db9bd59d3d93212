package cta

import (
	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// ColorimetryBlock is the colorimetry data block, listing the additional
// colorimetry standards supported by the sink.
type ColorimetryBlock struct {
	XvYCC601   bool
	XvYCC709   bool
	SYCC601    bool
	OpYCC601   bool
	OpRGB      bool
	BT2020CYCC bool
	BT2020YCC  bool
	BT2020RGB  bool
	ST2113RGB  bool
	ICtCp      bool
}

// Tag returns DataBlockColorimetry.
func (b *ColorimetryBlock) Tag() DataBlockTag { return DataBlockColorimetry }

// parseColorimetryBlock returns nil if the block must be dropped.
func parseColorimetryBlock(data []byte, log *diag.Scope) DataBlock {
	if len(data) < 2 {
		log.AddFailure("Colorimetry Data Block: Empty Data Block with length %d.", len(data))
		return nil
	}

	b := &ColorimetryBlock{
		BT2020RGB:  bits.HasBit(data[0], 7),
		BT2020YCC:  bits.HasBit(data[0], 6),
		BT2020CYCC: bits.HasBit(data[0], 5),
		OpRGB:      bits.HasBit(data[0], 4),
		OpYCC601:   bits.HasBit(data[0], 3),
		SYCC601:    bits.HasBit(data[0], 2),
		XvYCC709:   bits.HasBit(data[0], 1),
		XvYCC601:   bits.HasBit(data[0], 0),

		ST2113RGB: bits.HasBit(data[1], 7),
		ICtCp:     bits.HasBit(data[1], 6),
	}

	if bits.Range(data[1], 5, 0) != 0 {
		log.AddFailureUntil(3, "Colorimetry Data Block: Reserved bits MD0-MD3 must be 0.")
	}

	return b
}
