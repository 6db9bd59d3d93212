package edid

import (
	"encoding/binary"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// StandardTiming is a 2-byte standard timing identification (Section 3.9).
type StandardTiming struct {
	// HorizVideo is the number of addressable horizontal pixels.
	HorizVideo    int
	AspectRatio   StandardTimingAspectRatio
	RefreshRateHz int
}

// VertVideo returns the number of addressable vertical lines, derived from
// the horizontal pixels and the aspect ratio.
func (t StandardTiming) VertVideo() int {
	switch t.AspectRatio {
	case AspectRatio16x10:
		return t.HorizVideo * 10 / 16
	case AspectRatio4x3:
		return t.HorizVideo * 3 / 4
	case AspectRatio5x4:
		return t.HorizVideo * 4 / 5
	case AspectRatio16x9:
		return t.HorizVideo * 9 / 16
	default:
		return 0
	}
}

// parseStandardTiming decodes one standard timing slot. It returns false
// for unused slots.
func parseStandardTiming(data []byte, log *diag.Scope) (StandardTiming, bool) {
	if data[0] == 0x01 && data[1] == 0x01 {
		// Unused
		return StandardTiming{}, false
	}
	if data[0] == 0x00 {
		log.AddFailureUntil(4,
			"Use 0x0101 as the invalid Standard Timings code, not 0x%02x%02x.",
			data[0], data[1])
		return StandardTiming{}, false
	}

	return StandardTiming{
		HorizVideo:    (int(data[0]) + 31) * 8,
		AspectRatio:   StandardTimingAspectRatio(bits.Range(data[1], 7, 6)),
		RefreshRateHz: int(bits.Range(data[1], 5, 0)) + 60,
	}, true
}

// DetailedTimingDef is an 18-byte detailed timing definition (Section 3.10.2).
// Sizes are in pixels for horizontal fields and lines for vertical fields.
type DetailedTimingDef struct {
	PixelClockHz int

	HorizVideo, VertVideo           int
	HorizBlank, VertBlank           int
	HorizFrontPorch, VertFrontPorch int
	HorizSyncPulse, VertSyncPulse   int

	// HorizImageMM and VertImageMM are zero when the descriptor encodes an
	// aspect ratio instead of an image size.
	HorizImageMM, VertImageMM int

	HorizBorder, VertBorder int

	Interlaced bool
	Stereo     StereoMode
}

// HorizBackPorch returns the horizontal back porch in pixels.
func (d DetailedTimingDef) HorizBackPorch() int {
	return d.HorizBlank - d.HorizFrontPorch - d.HorizSyncPulse
}

// VertBackPorch returns the vertical back porch in lines.
func (d DetailedTimingDef) VertBackPorch() int {
	return d.VertBlank - d.VertFrontPorch - d.VertSyncPulse
}

// ParseDetailedTimingDef decodes an 18-byte detailed timing descriptor.
// It is shared by the base block and the CTA-861 extension blocks.
func ParseDetailedTimingDef(data []byte) (DetailedTimingDef, error) {
	if len(data) < ByteDescriptorSize {
		return DetailedTimingDef{}, ErrDescriptorSize
	}

	var d DetailedTimingDef

	d.PixelClockHz = int(binary.LittleEndian.Uint16(data)) * 10 * 1000

	d.HorizVideo = int(bits.Range(data[4], 7, 4))<<8 | int(data[2])
	d.HorizBlank = int(bits.Range(data[4], 3, 0))<<8 | int(data[3])

	d.VertVideo = int(bits.Range(data[7], 7, 4))<<8 | int(data[5])
	d.VertBlank = int(bits.Range(data[7], 3, 0))<<8 | int(data[6])

	d.HorizFrontPorch = int(bits.Range(data[11], 7, 6))<<8 | int(data[8])
	d.HorizSyncPulse = int(bits.Range(data[11], 5, 4))<<8 | int(data[9])
	d.VertFrontPorch = int(bits.Range(data[11], 3, 2))<<4 | int(bits.Range(data[10], 7, 4))
	d.VertSyncPulse = int(bits.Range(data[11], 1, 0))<<4 | int(bits.Range(data[10], 3, 0))

	d.HorizImageMM = int(bits.Range(data[14], 7, 4))<<8 | int(data[12])
	d.VertImageMM = int(bits.Range(data[14], 3, 0))<<8 | int(data[13])
	if (d.HorizImageMM == 16 && d.VertImageMM == 9) ||
		(d.HorizImageMM == 4 && d.VertImageMM == 3) {
		// Table 3.21 note 18.2: these define the aspect ratio rather
		// than the size in mm.
		d.HorizImageMM, d.VertImageMM = 0, 0
	}

	d.HorizBorder = int(data[15])
	d.VertBorder = int(data[16])

	flags := data[17]
	d.Interlaced = bits.HasBit(flags, 7)

	stereo, err := decodeStereoMode(bits.Range(flags, 6, 5), bits.Range(flags, 0, 0))
	if err != nil {
		return DetailedTimingDef{}, err
	}
	d.Stereo = stereo

	return d, nil
}

// decodeStereoMode maps the stereo bits 6-5 and bit 0 of the flags byte
// (Table 3.22).
func decodeStereoMode(hi, lo byte) (StereoMode, error) {
	if hi == 0 {
		return StereoNone, nil
	}

	switch hi<<1 | lo {
	case 1<<1 | 0:
		return StereoFieldSeqRight, nil
	case 2<<1 | 0:
		return StereoFieldSeqLeft, nil
	case 1<<1 | 1:
		return StereoTwoWayInterleavedRight, nil
	case 2<<1 | 1:
		return StereoTwoWayInterleavedLeft, nil
	case 3<<1 | 0:
		return StereoFourWayInterleaved, nil
	case 3<<1 | 1:
		return StereoSideBySideInterleaved, nil
	default:
		return StereoNone, ErrStereoMode
	}
}
