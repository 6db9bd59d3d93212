package displayid

import (
	"encoding/binary"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// displayParamsPayloadSize is the fixed payload size of the display
// parameters data block.
const displayParamsPayloadSize = 12

// DisplayParamsBlock is the display parameters data block (Section 4.2).
type DisplayParamsBlock struct {
	// HorizImageMM and VertImageMM are the physical image size.
	HorizImageMM, VertImageMM float64

	// HorizPixels and VertPixels are the native resolution.
	HorizPixels, VertPixels int

	Features DisplayParamsFeatures

	// Gamma is the transfer characteristic gamma, zero if unset.
	Gamma float64

	// AspectRatio is the width divided by the height.
	AspectRatio float64

	// BitsPerColorOverall and BitsPerColorNative are the color bit depths
	// of the display interface and of the native display.
	BitsPerColorOverall int
	BitsPerColorNative  int
}

// Tag returns DataBlockDisplayParams.
func (b *DisplayParamsBlock) Tag() DataBlockTag { return DataBlockDisplayParams }

// DisplayParamsFeatures are the display parameters feature support flags.
type DisplayParamsFeatures struct {
	Audio               bool
	SeparateAudioInputs bool
	AudioInputOverride  bool
	PowerManagement     bool
	FixedTiming         bool
	FixedPixelFormat    bool
	AI                  bool
	Deinterlacing       bool
}

// parseDisplayParamsBlock returns nil if the block must be dropped.
func parseDisplayParamsBlock(data []byte, log *diag.Scope) DataBlock {
	const name = "Display Parameters Data Block"

	checkDataBlockRevision(data, name, 0, log)

	payload := len(data) - DataBlockHeaderSize
	if payload != displayParamsPayloadSize {
		log.AddFailure("%s: DisplayID payload length is different than expected (%d != %d)",
			name, payload, displayParamsPayloadSize)
		return nil
	}

	p := &DisplayParamsBlock{
		HorizImageMM: float64(binary.LittleEndian.Uint16(data[0x03:])) / 10,
		VertImageMM:  float64(binary.LittleEndian.Uint16(data[0x05:])) / 10,
		HorizPixels:  int(binary.LittleEndian.Uint16(data[0x07:])),
		VertPixels:   int(binary.LittleEndian.Uint16(data[0x09:])),
	}

	raw := data[0x0B]
	p.Features = DisplayParamsFeatures{
		Audio:               bits.HasBit(raw, 7),
		SeparateAudioInputs: bits.HasBit(raw, 6),
		AudioInputOverride:  bits.HasBit(raw, 5),
		PowerManagement:     bits.HasBit(raw, 4),
		FixedTiming:         bits.HasBit(raw, 3),
		FixedPixelFormat:    bits.HasBit(raw, 2),
		AI:                  bits.HasBit(raw, 1),
		Deinterlacing:       bits.HasBit(raw, 0),
	}

	if data[0x0C] != 0xFF {
		p.Gamma = float64(data[0x0C])/100 + 1
	}
	p.AspectRatio = float64(data[0x0D])/100 + 1
	p.BitsPerColorOverall = int(bits.Range(data[0x0E], 7, 4)) + 1
	p.BitsPerColorNative = int(bits.Range(data[0x0E], 3, 0)) + 1

	return p
}
