package cta

import (
	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
	"github.com/backkem/displayinfo/pkg/displayid"
)

// typeVIIPayloadSize is the payload size of a DisplayID type VII video
// timing data block after the extended tag: one revision byte and a single
// timing descriptor.
const typeVIIPayloadSize = 1 + displayid.TypeITimingSize

// TypeVIITimingBlock is the DisplayID type VII video timing data block,
// carrying one DisplayID 2.0 detailed timing.
type TypeVIITimingBlock struct {
	Timing displayid.TypeIVIITiming
}

// Tag returns DataBlockDisplayIDTimingVII.
func (b *TypeVIITimingBlock) Tag() DataBlockTag { return DataBlockDisplayIDTimingVII }

// parseTypeVIITimingBlock returns nil if the block must be dropped.
func parseTypeVIITimingBlock(data []byte, log *diag.Scope) DataBlock {
	name := DataBlockDisplayIDTimingVII.String()

	if len(data) != typeVIIPayloadSize {
		log.AddFailure("%s: Invalid length %d, expected %d.", name, len(data), typeVIIPayloadSize)
		return nil
	}

	if revision := bits.Range(data[0], 2, 0); revision != 2 {
		log.AddFailureUntil(3, "%s: Unexpected revision (%d != 2).", name, revision)
	}

	timing, err := displayid.ParseTypeIVIITiming(data[1:], log, name, true)
	if err != nil {
		return nil
	}

	return &TypeVIITimingBlock{Timing: timing}
}
