// Package displayid decodes DisplayID 1.x sections, as carried in EDID
// extension blocks.
//
// A section is a 5-byte header, a directory of tagged data blocks and a
// trailing checksum. Structural errors abort the section; a data block that
// fails its own contract is dropped and reported, and the walk continues
// with the next one.
package displayid

import (
	"fmt"

	"github.com/asticode/go-astikit"
	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// Section layout constants.
const (
	// MinSectionSize is the size of the mandatory section fields: the
	// 4-byte header and the checksum.
	MinSectionSize = 5

	// MaxSectionSize is the maximum size of a section.
	MaxSectionSize = 256

	// DataBlockHeaderSize is the size of a data block header: tag,
	// revision and payload size.
	DataBlockHeaderSize = 3

	// MaxDataBlocks is the maximum number of data blocks in a section.
	MaxDataBlocks = (MaxSectionSize - MinSectionSize) / DataBlockHeaderSize
)

// DisplayID is a decoded DisplayID section.
type DisplayID struct {
	Version  int
	Revision int

	ProductType ProductType

	// DataBlocks in section order. Blocks failing to decode and
	// vendor-specific blocks are omitted.
	DataBlocks []DataBlock
}

// DataBlock is a DisplayID data block. The concrete type depends on the tag:
//   - *DisplayParamsBlock for DataBlockDisplayParams
//   - *TypeITimingBlock for DataBlockTypeITiming
//   - *TypeIITimingBlock for DataBlockTypeIITiming
//   - *TypeIIITimingBlock for DataBlockTypeIIITiming
//   - *TiledTopoBlock for DataBlockTiledDisplayTopo
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

// Parse decodes a DisplayID section. data may extend past the end of the
// section. Failures are reported to log, which may be nil.
func Parse(data []byte, log *diag.Scope) (*DisplayID, error) {
	if len(data) < MinSectionSize {
		return nil, ErrTooShort
	}

	d := &DisplayID{
		Version:  int(bits.Range(data[0], 7, 4)),
		Revision: int(bits.Range(data[0], 3, 0)),
	}
	if d.Version != 1 {
		return nil, ErrUnsupportedVersion
	}

	sectionSize := int(data[1]) + MinSectionSize
	if sectionSize > MaxSectionSize || sectionSize > len(data) {
		return nil, ErrInvalidSize
	}

	if bits.Checksum(data[:sectionSize]) != 0 {
		return nil, ErrChecksum
	}

	d.ProductType = ProductType(data[2])
	if !d.ProductType.IsValid() {
		return nil, ErrInvalidProductType
	}

	// The checksum byte ends the data block directory.
	end := sectionSize - 1
	it := astikit.NewBytesIterator(data[:end])
	it.Seek(MinSectionSize - 1)

	for it.Offset() < end {
		off := it.Offset()
		remaining := end - off
		if remaining < DataBlockHeaderSize || bits.AllZero(data[off:off+DataBlockHeaderSize]) {
			break
		}

		n, err := d.parseDataBlock(it, remaining, log)
		if err != nil {
			return nil, err
		}
		it.Seek(off + n)
	}

	var filler []byte
	if off := it.Offset(); off < end {
		filler = data[off:end]
	}
	if !bits.AllZero(filler) {
		if len(filler) < DataBlockHeaderSize {
			log.AddFailure("Not enough bytes remain (%d) for a DisplayID data block and the DisplayID filler is non-0.",
				len(filler))
		} else {
			log.AddFailure("Padding: Contains non-zero bytes.")
		}
	}

	if err := log.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// parseDataBlock decodes the data block at the iterator offset and returns
// its size, header included.
func (d *DisplayID) parseDataBlock(it *astikit.BytesIterator, remaining int, log *diag.Scope) (int, error) {
	start := it.Offset()
	header, err := it.NextBytesNoCopy(DataBlockHeaderSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	tag := DataBlockTag(header[0])
	size := int(header[2]) + DataBlockHeaderSize
	if size > remaining {
		log.AddFailure("The length of this DisplayID data block (%d) exceeds the number of bytes remaining (%d)",
			size, remaining)
		return size, nil
	}

	it.Seek(start)
	raw, err := it.NextBytesNoCopy(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	var block DataBlock
	switch tag {
	case DataBlockDisplayParams:
		block = parseDisplayParamsBlock(raw, log)
	case DataBlockTypeITiming:
		block, err = parseTypeITimingBlock(raw, log)
	case DataBlockTypeIITiming:
		block, err = parseTypeIITimingBlock(raw, log)
	case DataBlockTypeIIITiming:
		block, err = parseTypeIIITimingBlock(raw, log)
	case DataBlockTiledDisplayTopo:
		block = parseTiledTopoBlock(raw, log)
	case dataBlockVendorSpecific:
		return size, nil
	default:
		if !tag.IsValid() {
			log.AddFailure("Unknown DisplayID Data Block (0x%02x, length %d)",
				uint8(tag), size-DataBlockHeaderSize)
			return size, nil
		}
		block = &TagBlock{tag: tag}
	}
	if err != nil {
		return 0, err
	}

	// Dropped after a contract violation.
	if block == nil {
		return size, nil
	}

	if len(d.DataBlocks) >= MaxDataBlocks {
		return 0, ErrTooManyDataBlocks
	}
	d.DataBlocks = append(d.DataBlocks, block)
	return size, nil
}

// checkDataBlockRevision reports a data block revision above maxRevision
// and any of the reserved flag bits.
func checkDataBlockRevision(header []byte, name string, maxRevision uint8, log *diag.Scope) {
	flags := bits.Range(header[1], 7, 3)
	revision := bits.Range(header[1], 2, 0)

	if revision > maxRevision {
		log.AddFailure("%s: Unexpected revision (%d != %d).", name, revision, maxRevision)
	}
	if flags != 0 {
		log.AddFailure("%s: Unexpected flags (0x%02x).", name, flags)
	}
}
