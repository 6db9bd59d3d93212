package cta

import (
	"math"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// HDRStaticMetadataBlock is the HDR static metadata data block.
type HDRStaticMetadataBlock struct {
	// Desired content luminance in cd/m², zero when not provided.
	DesiredContentMaxLuminance         float64
	DesiredContentMaxFrameAvgLuminance float64
	DesiredContentMinLuminance         float64

	EOTFs       HDRStaticMetadataEOTFs
	Descriptors HDRStaticMetadataDescriptors
}

// Tag returns DataBlockHDRStaticMetadata.
func (b *HDRStaticMetadataBlock) Tag() DataBlockTag { return DataBlockHDRStaticMetadata }

// HDRStaticMetadataEOTFs are the supported electro-optical transfer
// functions.
type HDRStaticMetadataEOTFs struct {
	TraditionalSDR bool
	TraditionalHDR bool
	PQ             bool
	HLG            bool
}

// HDRStaticMetadataDescriptors are the supported static metadata
// descriptor types.
type HDRStaticMetadataDescriptors struct {
	Type1 bool
}

func parseMaxLuminance(raw byte) float64 {
	if raw == 0 {
		return 0
	}
	return 50 * math.Pow(2, float64(raw)/32)
}

func parseMinLuminance(raw byte, maxLuminance float64) float64 {
	if raw == 0 {
		return 0
	}
	r := float64(raw) / 255
	return maxLuminance * r * r / 100
}

// parseHDRStaticMetadataBlock returns nil if the block must be dropped.
func parseHDRStaticMetadataBlock(data []byte, log *diag.Scope) DataBlock {
	if len(data) < 2 {
		log.AddFailure("HDR Static Metadata Data Block: Empty Data Block with length %d.", len(data))
		return nil
	}

	b := &HDRStaticMetadataBlock{}

	eotfs := data[0]
	b.EOTFs = HDRStaticMetadataEOTFs{
		TraditionalSDR: bits.HasBit(eotfs, 0),
		TraditionalHDR: bits.HasBit(eotfs, 1),
		PQ:             bits.HasBit(eotfs, 2),
		HLG:            bits.HasBit(eotfs, 3),
	}
	if bits.Range(eotfs, 7, 4) != 0 {
		log.AddFailureUntil(3, "HDR Static Metadata Data Block: Unknown EOTF.")
	}

	descriptors := data[1]
	b.Descriptors.Type1 = bits.HasBit(descriptors, 0)
	if bits.Range(descriptors, 7, 1) != 0 {
		log.AddFailureUntil(3, "HDR Static Metadata Data Block: Unknown descriptor type.")
	}

	// The luminance bytes are optional and trail in a fixed order.
	if len(data) > 2 {
		b.DesiredContentMaxLuminance = parseMaxLuminance(data[2])
	}
	if len(data) > 3 {
		b.DesiredContentMaxFrameAvgLuminance = parseMaxLuminance(data[3])
	}
	if len(data) > 4 {
		if b.DesiredContentMaxLuminance == 0 {
			log.AddFailure("HDR Static Metadata Data Block: Desired content min luminance is set, but max luminance is unset.")
		} else {
			b.DesiredContentMinLuminance = parseMinLuminance(data[4], b.DesiredContentMaxLuminance)
		}
	}

	return b
}
