// Package cta decodes CTA-861 EDID extension blocks.
//
// The block is a 4-byte header, a collection of tagged data blocks, and a
// detailed timing descriptor area starting at the offset given in the
// header. A data block that fails its own contract is dropped and reported;
// its siblings are still decoded.
package cta

import (
	"fmt"

	"github.com/asticode/go-astikit"
	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
	"github.com/backkem/displayinfo/pkg/edid"
)

// Block layout constants.
const (
	// HeaderSize is the size of the extension header: tag, revision, DTD
	// start offset and flags.
	HeaderSize = 4

	// DTDEnd is the exclusive end of the detailed timing descriptor area.
	// The checksum byte follows.
	DTDEnd = 127

	// MaxDataBlocks is the maximum number of data blocks in a block.
	MaxDataBlocks = DTDEnd - HeaderSize

	// MaxDetailedTimingDefs is the maximum number of detailed timing
	// descriptors in a block.
	MaxDetailedTimingDefs = (DTDEnd - HeaderSize) / edid.ByteDescriptorSize
)

// CTA is a decoded CTA-861 extension block.
type CTA struct {
	Revision int
	Flags    Flags

	// DataBlocks in block order. Blocks failing to decode and
	// vendor-specific blocks are omitted.
	DataBlocks []DataBlock

	DetailedTimingDefs []edid.DetailedTimingDef
}

// Flags are the miscellaneous support flags of byte 3, defined from
// revision 2 on.
type Flags struct {
	Underscan  bool
	BasicAudio bool
	YCbCr444   bool
	YCbCr422   bool

	// NativeDTDs is the number of native detailed timing descriptors.
	NativeDTDs int
}

// DataBlock is a CTA-861 data block. The concrete type depends on the tag:
//   - *ColorimetryBlock for DataBlockColorimetry
//   - *HDRStaticMetadataBlock for DataBlockHDRStaticMetadata
//   - *TypeVIITimingBlock for DataBlockDisplayIDTimingVII
//   - *TagBlock for every other recognized tag
type DataBlock interface {
	Tag() DataBlockTag
}

// TagBlock is a recognized data block whose payload is not decoded.
type TagBlock struct {
	tag DataBlockTag
}

// Tag returns the data block tag.
func (b *TagBlock) Tag() DataBlockTag { return b.tag }

// Parse decodes a 128-byte CTA-861 extension block.
// Failures are reported to log, which may be nil.
func Parse(data []byte, log *diag.Scope) (*CTA, error) {
	if len(data) != edid.BlockSize || edid.ExtensionTag(data[0]) != edid.ExtensionCEA {
		return nil, ErrInvalidBlock
	}

	c := &CTA{
		Revision: int(data[1]),
	}
	log.SetRevision(c.Revision)

	dtdStart := int(data[2])

	flags := data[3]
	if c.Revision >= 2 {
		c.Flags = Flags{
			Underscan:  bits.HasBit(flags, 7),
			BasicAudio: bits.HasBit(flags, 6),
			YCbCr444:   bits.HasBit(flags, 5),
			YCbCr422:   bits.HasBit(flags, 4),
			NativeDTDs: int(bits.Range(flags, 3, 0)),
		}
	} else if flags != 0 {
		log.AddFailure("Non-zero byte 3.")
	}

	// No data blocks and no detailed timings.
	if dtdStart == 0 {
		if err := log.Err(); err != nil {
			return nil, err
		}
		return c, nil
	}
	if dtdStart < HeaderSize || dtdStart >= edid.BlockSize {
		return nil, ErrInvalidDTDOffset
	}

	it := astikit.NewBytesIterator(data[:dtdStart])
	it.Seek(HeaderSize)
	for it.Offset() < dtdStart {
		if err := c.parseDataBlock(it, log); err != nil {
			return nil, err
		}
	}

	i := dtdStart
	for ; i+edid.ByteDescriptorSize <= DTDEnd; i += edid.ByteDescriptorSize {
		if data[i] == 0 {
			break
		}

		dtd, err := edid.ParseDetailedTimingDef(data[i : i+edid.ByteDescriptorSize])
		if err != nil {
			return nil, err
		}
		if len(c.DetailedTimingDefs) >= MaxDetailedTimingDefs {
			return nil, ErrTooManyDetailedTimings
		}
		c.DetailedTimingDefs = append(c.DetailedTimingDefs, dtd)
	}

	if !bits.AllZero(data[i:DTDEnd]) {
		log.AddFailure("Padding: Contains non-zero bytes.")
	}

	if err := log.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// parseDataBlock decodes the data block at the iterator offset and leaves
// the iterator after it.
func (c *CTA) parseDataBlock(it *astikit.BytesIterator, log *diag.Scope) error {
	header, err := it.NextByte()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataBlockOverflow, err)
	}

	rawTag := bits.Range(header, 7, 5)
	size := int(bits.Range(header, 4, 0))

	payload, err := it.NextBytesNoCopy(size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataBlockOverflow, err)
	}

	var block DataBlock
	switch rawTag {
	case tagAudio:
		block = &TagBlock{tag: DataBlockAudio}
	case tagVideo:
		block = &TagBlock{tag: DataBlockVideo}
	case tagVendorSpecific:
		return nil
	case tagSpeakerAlloc:
		block = &TagBlock{tag: DataBlockSpeakerAlloc}
	case tagVESATransfer:
		block = &TagBlock{tag: DataBlockVESATransferCharacteristic}
	case tagExtended:
		block = parseExtendedDataBlock(payload, log)
	default:
		log.AddFailureUntil(3, "Unknown CTA-861 Data Block (tag 0x%02x, length %d).", rawTag, size)
		return nil
	}

	// Skipped or dropped after a contract violation.
	if block == nil {
		return nil
	}

	if len(c.DataBlocks) >= MaxDataBlocks {
		return ErrTooManyDataBlocks
	}
	c.DataBlocks = append(c.DataBlocks, block)
	return nil
}

// parseExtendedDataBlock decodes a tag 7 data block. It returns nil if the
// block is skipped or dropped.
func parseExtendedDataBlock(payload []byte, log *diag.Scope) DataBlock {
	if len(payload) < 1 {
		log.AddFailure("Empty block with extended tag.")
		return nil
	}

	extTag := payload[0]
	payload = payload[1:]

	tag, ok := extendedTags[extTag]
	if !ok {
		if extTag != extTagVendorSpecificVideo && extTag != extTagVendorSpecificAudio {
			log.AddFailureUntil(3, "Unknown CTA-861 Data Block (extended tag 0x%02x, length %d).",
				extTag, len(payload))
		}
		return nil
	}

	switch tag {
	case DataBlockColorimetry:
		return parseColorimetryBlock(payload, log)
	case DataBlockHDRStaticMetadata:
		return parseHDRStaticMetadataBlock(payload, log)
	case DataBlockDisplayIDTimingVII:
		return parseTypeVIITimingBlock(payload, log)
	default:
		return &TagBlock{tag: tag}
	}
}
