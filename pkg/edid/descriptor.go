package edid

import (
	"bytes"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// descriptorStringSize is the size of the string payload of the product
// serial, data string and product name descriptors.
const descriptorStringSize = 13

// DisplayDescriptor is an 18-byte display descriptor (Section 3.10.3).
// The concrete type depends on the tag:
//   - *StringDescriptor for DescriptorProductSerial, DescriptorDataString
//     and DescriptorProductName
//   - *RangeLimitsDescriptor for DescriptorRangeLimits
//   - *TagDescriptor for every other recognized tag
type DisplayDescriptor interface {
	Tag() DisplayDescriptorTag
}

// StringDescriptor is a descriptor carrying a string of up to 13 bytes.
type StringDescriptor struct {
	tag DisplayDescriptorTag

	// Value is the raw string, cut at the first newline. It is not
	// guaranteed to be printable.
	Value string
}

// Tag returns the descriptor tag.
func (d *StringDescriptor) Tag() DisplayDescriptorTag { return d.tag }

// RangeLimitsDescriptor is the display range limits descriptor
// (Section 3.10.3.3). Rates include the EDID 1.4 offsets.
type RangeLimitsDescriptor struct {
	MinVertRateHz  int
	MaxVertRateHz  int
	MinHorizRateHz int
	MaxHorizRateHz int

	// MaxPixelClockHz is zero if unset.
	MaxPixelClockHz int
}

// Tag returns DescriptorRangeLimits.
func (d *RangeLimitsDescriptor) Tag() DisplayDescriptorTag { return DescriptorRangeLimits }

// TagDescriptor is a recognized descriptor whose payload is not decoded.
type TagDescriptor struct {
	tag DisplayDescriptorTag
}

// Tag returns the descriptor tag.
func (d *TagDescriptor) Tag() DisplayDescriptorTag { return d.tag }

// decodeDescriptorString extracts the string payload of a descriptor.
// A newline, if any, ends the string.
func decodeDescriptorString(data []byte) string {
	raw := data[5 : 5+descriptorStringSize]

	// Some displays NUL-pad instead of newline-terminating.
	if i := bytes.IndexAny(raw, "\x00\n"); i >= 0 {
		raw = raw[:i]
	}

	// Descriptor strings are 8-bit and undecoded. Callers escape them.
	return string(raw)
}

func (e *EDID) parseByteDescriptor(data []byte, log *diag.Scope) error {
	if data[0] != 0 || data[1] != 0 {
		if len(e.DisplayDescriptors) > 0 {
			// Table 3.20 note 3: no detailed timing after a display
			// descriptor.
			log.AddFailure("Invalid detailed timing descriptor ordering.")
		}

		def, err := ParseDetailedTimingDef(data)
		if err != nil {
			return err
		}
		e.DetailedTimingDefs = append(e.DetailedTimingDefs, def)
		return nil
	}

	tag := DisplayDescriptorTag(data[3])
	var desc DisplayDescriptor

	switch tag {
	case DescriptorProductSerial, DescriptorDataString, DescriptorProductName:
		desc = &StringDescriptor{tag: tag, Value: decodeDescriptorString(data)}
	case DescriptorRangeLimits:
		limits, ok := e.parseDisplayRangeLimits(data, log)
		if !ok {
			return nil
		}
		desc = limits
	case DescriptorColorPoint, DescriptorStdTimingIDs, DescriptorDCMData,
		DescriptorCVTTimingCodes, DescriptorEstablishedTimingsIII, DescriptorDummy:
		desc = &TagDescriptor{tag: tag}
	default:
		if tag > 0x0F {
			log.AddFailureUntil(4, "Unknown Type 0x%02x.", uint8(tag))
		}
		// 0x00-0x0F are manufacturer-specific.
		return nil
	}

	e.DisplayDescriptors = append(e.DisplayDescriptors, desc)
	return nil
}

// decodeRangeLimitsOffset decodes a 2-bit EDID 1.4 rate offset field.
// It returns false for reserved values.
func decodeRangeLimitsOffset(flags byte, log *diag.Scope) (maxOffset, minOffset int, ok bool) {
	switch flags {
	case 0x00:
		// No offset
	case 0x02:
		maxOffset = 255
	case 0x03:
		maxOffset = 255
		minOffset = 255
	default:
		log.AddFailureUntil(4, "Range offset flags set to reserved value 0x%02x.", flags)
		return 0, 0, false
	}
	return maxOffset, minOffset, true
}

// parseDisplayRangeLimits returns false if the descriptor is invalid and
// must be dropped.
func (e *EDID) parseDisplayRangeLimits(data []byte, log *diag.Scope) (*RangeLimitsDescriptor, bool) {
	var maxVertOffset, minVertOffset, maxHorizOffset, minHorizOffset int

	offsetFlags := data[4]
	if e.Revision >= 4 {
		var ok bool
		maxVertOffset, minVertOffset, ok = decodeRangeLimitsOffset(bits.Range(offsetFlags, 1, 0), log)
		if !ok && e.Revision <= 4 {
			return nil, false
		}
		maxHorizOffset, minHorizOffset, ok = decodeRangeLimitsOffset(bits.Range(offsetFlags, 3, 2), log)
		if !ok && e.Revision <= 4 {
			return nil, false
		}

		if e.Revision <= 4 && bits.Range(offsetFlags, 7, 4) != 0 {
			log.AddFailure("Bits 7:4 of the range offset flags are reserved.")
		}
	} else if offsetFlags != 0 {
		log.AddFailure("Range offset flags are unsupported in EDID 1.3.")
	}

	if e.Revision <= 4 && (data[5] == 0 || data[6] == 0 || data[7] == 0 || data[8] == 0) {
		log.AddFailure("Range limits set to reserved values.")
		return nil, false
	}

	r := &RangeLimitsDescriptor{
		MinVertRateHz:  int(data[5]) + minVertOffset,
		MaxVertRateHz:  int(data[6]) + maxVertOffset,
		MinHorizRateHz: (int(data[7]) + minHorizOffset) * 1000,
		MaxHorizRateHz: (int(data[8]) + maxHorizOffset) * 1000,
	}

	if r.MinVertRateHz > r.MaxVertRateHz {
		log.AddFailure("Min vertical rate > max vertical rate.")
		return nil, false
	}
	if r.MinHorizRateHz > r.MaxHorizRateHz {
		log.AddFailure("Min horizontal freq > max horizontal freq.")
		return nil, false
	}

	r.MaxPixelClockHz = int(data[9]) * 10 * 1000 * 1000
	if e.Revision == 4 && r.MaxPixelClockHz == 0 {
		log.AddFailure("EDID 1.4 block does not set max dotclock.")
	}

	// TODO: decode the video timing support flags (byte 10) and the
	// secondary GTF / CVT payload that follows them.

	return r, true
}
