package displayid

import (
	"encoding/binary"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// tiledTopoPayloadSize is the fixed payload size of the tiled display
// topology data block.
const tiledTopoPayloadSize = 22

// TiledTopoBlock is the tiled display topology data block (Section 4.14).
type TiledTopoBlock struct {
	Caps TiledTopoCaps

	// Tile counts and the location of this tile, both 1-based.
	TotalHorizTiles, TotalVertTiles     int
	HorizTileLocation, VertTileLocation int

	// HorizTilePixels and VertTileLines are the size of this tile.
	HorizTilePixels, VertTileLines int

	// Bezel is nil when no bezel information is provided.
	Bezel *TiledTopoBezel

	VendorID     [3]byte
	ProductCode  uint16
	SerialNumber uint32
}

// Tag returns DataBlockTiledDisplayTopo.
func (b *TiledTopoBlock) Tag() DataBlockTag { return DataBlockTiledDisplayTopo }

// TiledTopoCaps are the tiled display capabilities.
type TiledTopoCaps struct {
	// SingleEnclosure reports that all tiles are in one physical enclosure.
	SingleEnclosure     bool
	MissingRecvBehavior MissingRecvBehavior
	SingleRecvBehavior  SingleRecvBehavior
}

// TiledTopoBezel is the bezel size of a tile, in pixels.
type TiledTopoBezel struct {
	TopPx, BottomPx, RightPx, LeftPx float64
}

// tileField combines a 4-bit field with its 2 overflow bits.
func tileField(lo, hi byte) int {
	return 1 + (int(lo) | int(hi)<<4)
}

// parseTiledTopoBlock returns nil if the block must be dropped.
func parseTiledTopoBlock(data []byte, log *diag.Scope) DataBlock {
	name := DataBlockTiledDisplayTopo.String()

	checkDataBlockRevision(data, name, 0, log)

	payload := len(data) - DataBlockHeaderSize
	if payload != tiledTopoPayloadSize {
		log.AddFailure("%s: DisplayID payload length is different than expected (%d != %d)",
			name, payload, tiledTopoPayloadSize)
		return nil
	}

	t := &TiledTopoBlock{}

	caps := data[0x03]
	t.Caps.SingleEnclosure = bits.HasBit(caps, 7)
	hasBezel := bits.HasBit(caps, 6)
	if bits.HasBit(caps, 5) {
		log.AddFailure("%s: Capability bit 5 is reserved.", name)
	}

	missing := MissingRecvBehavior(bits.Range(caps, 4, 3))
	if missing.IsValid() {
		t.Caps.MissingRecvBehavior = missing
	} else {
		log.AddFailure("%s: Behavior if more than one tile and fewer than total number of tiles set to reserved value 0x%02x.",
			name, uint8(missing))
	}

	single := SingleRecvBehavior(bits.Range(caps, 2, 0))
	if single.IsValid() {
		t.Caps.SingleRecvBehavior = single
	} else {
		log.AddFailure("%s: Behavior if it is the only tile set to reserved value 0x%02x.",
			name, uint8(single))
	}

	overflow := data[0x06]
	t.TotalHorizTiles = tileField(bits.Range(data[0x04], 7, 4), bits.Range(overflow, 7, 6))
	t.TotalVertTiles = tileField(bits.Range(data[0x04], 3, 0), bits.Range(overflow, 5, 4))
	t.HorizTileLocation = tileField(bits.Range(data[0x05], 7, 4), bits.Range(overflow, 3, 2))
	t.VertTileLocation = tileField(bits.Range(data[0x05], 3, 0), bits.Range(overflow, 1, 0))

	t.HorizTilePixels = 1 + int(binary.LittleEndian.Uint16(data[0x07:]))
	t.VertTileLines = 1 + int(binary.LittleEndian.Uint16(data[0x09:]))

	pxMult := data[0x0B]
	if hasBezel && pxMult == 0 {
		log.AddFailure("%s: Bezel information bit is set, but the pixel multiplier is zero.", name)
		hasBezel = false
	}
	if hasBezel {
		bezel := func(raw byte) float64 {
			return float64(int(pxMult)*int(raw)) / 10
		}
		t.Bezel = &TiledTopoBezel{
			TopPx:    bezel(data[0x0C]),
			BottomPx: bezel(data[0x0D]),
			RightPx:  bezel(data[0x0E]),
			LeftPx:   bezel(data[0x0F]),
		}
	} else {
		if pxMult != 0 {
			log.AddFailure("%s: No bezel information, but the pixel multiplier is non-zero.", name)
		}
		if !bits.AllZero(data[0x0C:0x10]) {
			log.AddFailure("%s: No bezel information, but the bezel size is non-zero.", name)
		}
	}

	copy(t.VendorID[:], data[0x10:0x13])
	t.ProductCode = binary.LittleEndian.Uint16(data[0x13:])
	t.SerialNumber = binary.LittleEndian.Uint32(data[0x15:])

	return t
}
