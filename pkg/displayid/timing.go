package displayid

import (
	"encoding/binary"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// Timing descriptor sizes and per-block limits.
const (
	TypeITimingSize   = 20
	TypeIITimingSize  = 11
	TypeIIITimingSize = 3

	MaxTypeITimings   = (MaxSectionSize - MinSectionSize - DataBlockHeaderSize) / TypeITimingSize
	MaxTypeIITimings  = (MaxSectionSize - MinSectionSize - DataBlockHeaderSize) / TypeIITimingSize
	MaxTypeIIITimings = (MaxSectionSize - MinSectionSize - DataBlockHeaderSize) / TypeIIITimingSize
)

// TypeIVIITiming is a type I, II or VII detailed timing. Horizontal values
// are in pixels, vertical values in lines.
type TypeIVIITiming struct {
	PixelClockMHz float64

	Preferred   bool
	Stereo3D    TimingStereo3D
	Interlaced  bool
	AspectRatio TimingAspectRatio

	HorizActive, VertActive       int
	HorizBlank, VertBlank         int
	HorizOffset, VertOffset       int
	HorizSyncWidth, VertSyncWidth int

	HorizSyncPolarity, VertSyncPolarity SyncPolarity
}

// TypeIIITiming is a type III short timing, computed with a CVT formula.
type TypeIIITiming struct {
	Preferred   bool
	Algo        TypeIIIAlgo
	AspectRatio TimingAspectRatio

	HorizActive   int
	Interlaced    bool
	RefreshRateHz int
}

// TypeITimingBlock is the video timing modes type 1 data block.
type TypeITimingBlock struct {
	Timings []TypeIVIITiming
}

// Tag returns DataBlockTypeITiming.
func (b *TypeITimingBlock) Tag() DataBlockTag { return DataBlockTypeITiming }

// TypeIITimingBlock is the video timing modes type 2 data block.
type TypeIITimingBlock struct {
	Timings []TypeIVIITiming
}

// Tag returns DataBlockTypeIITiming.
func (b *TypeIITimingBlock) Tag() DataBlockTag { return DataBlockTypeIITiming }

// TypeIIITimingBlock is the video timing modes type 3 data block.
type TypeIIITimingBlock struct {
	Timings []TypeIIITiming
}

// Tag returns DataBlockTypeIIITiming.
func (b *TypeIIITimingBlock) Tag() DataBlockTag { return DataBlockTypeIIITiming }

func syncPolarity(b byte, index uint) SyncPolarity {
	if bits.HasBit(b, index) {
		return SyncPositive
	}
	return SyncNegative
}

// ParseTypeIVIITiming decodes a 20-byte type I or type VII timing
// descriptor. Type VII pixel clocks are in units of 1 kHz instead of
// 10 kHz. Failures are prefixed with the enclosing block name.
func ParseTypeIVIITiming(data []byte, log *diag.Scope, prefix string, type7 bool) (TypeIVIITiming, error) {
	if len(data) < TypeITimingSize {
		return TypeIVIITiming{}, ErrTimingSize
	}

	var t TypeIVIITiming

	rawClock := float64(1 + bits.Uint24LE(data))
	if type7 {
		t.PixelClockMHz = rawClock * 0.001
	} else {
		t.PixelClockMHz = rawClock * 0.01
	}

	t.Preferred = bits.HasBit(data[3], 7)
	t.Interlaced = bits.HasBit(data[3], 4)

	stereo := TimingStereo3D(bits.Range(data[3], 6, 5))
	if stereo.IsValid() {
		t.Stereo3D = stereo
	} else {
		log.AddFailure("%s: Reserved stereo 0x%02x.", prefix, uint8(stereo))
	}

	aspect := TimingAspectRatio(bits.Range(data[3], 3, 0))
	if aspect.IsValid() {
		t.AspectRatio = aspect
	} else {
		t.AspectRatio = TimingAspectRatioUndefined
		log.AddFailure("%s: Unknown aspect 0x%02x.", prefix, uint8(aspect))
	}

	t.HorizActive = 1 + int(binary.LittleEndian.Uint16(data[4:]))
	t.HorizBlank = 1 + int(binary.LittleEndian.Uint16(data[6:]))
	t.HorizOffset = 1 + (int(data[8]) | int(bits.Range(data[9], 6, 0))<<8)
	t.HorizSyncPolarity = syncPolarity(data[9], 7)
	t.HorizSyncWidth = 1 + int(binary.LittleEndian.Uint16(data[10:]))
	t.VertActive = 1 + int(binary.LittleEndian.Uint16(data[12:]))
	t.VertBlank = 1 + int(binary.LittleEndian.Uint16(data[14:]))
	t.VertOffset = 1 + (int(data[16]) | int(bits.Range(data[17], 6, 0))<<8)
	t.VertSyncPolarity = syncPolarity(data[17], 7)
	t.VertSyncWidth = 1 + int(binary.LittleEndian.Uint16(data[18:]))

	return t, nil
}

// timingEntries splits the payload of a timing data block into fixed-size
// entries. Trailing bytes are reported and ignored.
func timingEntries(data []byte, entrySize int, name string, log *diag.Scope) [][]byte {
	payload := data[DataBlockHeaderSize:]
	if len(payload)%entrySize != 0 {
		log.AddFailure("%s: payload size not divisible by element size.", name)
	}

	var entries [][]byte
	for i := 0; i+entrySize <= len(payload); i += entrySize {
		entries = append(entries, payload[i:i+entrySize])
	}
	return entries
}

func parseTypeITimingBlock(data []byte, log *diag.Scope) (DataBlock, error) {
	name := DataBlockTypeITiming.String()
	checkDataBlockRevision(data, name, 1, log)

	b := &TypeITimingBlock{}
	for _, entry := range timingEntries(data, TypeITimingSize, name, log) {
		t, err := ParseTypeIVIITiming(entry, log, name, false)
		if err != nil {
			return nil, err
		}
		if len(b.Timings) >= MaxTypeITimings {
			return nil, ErrTooManyTimings
		}
		b.Timings = append(b.Timings, t)
	}
	return b, nil
}

func parseTypeIITiming(data []byte, log *diag.Scope) TypeIVIITiming {
	name := DataBlockTypeIITiming.String()

	t := TypeIVIITiming{
		AspectRatio:   TimingAspectRatioUndefined,
		PixelClockMHz: float64(1+bits.Uint24LE(data)) * 0.01,
		Preferred:     bits.HasBit(data[3], 7),
		Interlaced:    bits.HasBit(data[3], 4),
	}

	stereo := TimingStereo3D(bits.Range(data[3], 6, 5))
	if stereo.IsValid() {
		t.Stereo3D = stereo
	} else {
		log.AddFailure("%s: Reserved stereo 0x%02x.", name, uint8(stereo))
	}

	t.HorizSyncPolarity = syncPolarity(data[3], 3)
	t.VertSyncPolarity = syncPolarity(data[3], 2)

	if bits.Range(data[3], 1, 0) != 0 {
		log.AddFailure("%s: Timing Options bit 1-0 are reserved.", name)
	}

	t.HorizActive = 8 + 8*(int(data[4])|int(bits.Range(data[5], 0, 0))<<8)
	t.HorizBlank = 8 + 8*int(bits.Range(data[5], 7, 1))
	t.HorizOffset = 8 + 8*int(bits.Range(data[6], 7, 4))
	t.HorizSyncWidth = 8 + 8*int(bits.Range(data[6], 3, 0))
	t.VertActive = 1 + (int(data[7]) | int(bits.Range(data[8], 3, 0))<<8)
	if bits.Range(data[8], 7, 4) != 0 {
		log.AddFailure("%s: Vertical Active Image bits 7-4 are reserved.", name)
	}
	// Byte 9 carries both the blanking and the offset and sync nibbles.
	t.VertBlank = 1 + int(data[9])
	t.VertOffset = 1 + int(bits.Range(data[9], 7, 4))
	t.VertSyncWidth = 1 + int(bits.Range(data[9], 3, 0))

	return t
}

func parseTypeIITimingBlock(data []byte, log *diag.Scope) (DataBlock, error) {
	name := DataBlockTypeIITiming.String()
	checkDataBlockRevision(data, name, 0, log)

	b := &TypeIITimingBlock{}
	for _, entry := range timingEntries(data, TypeIITimingSize, name, log) {
		if len(b.Timings) >= MaxTypeIITimings {
			return nil, ErrTooManyTimings
		}
		b.Timings = append(b.Timings, parseTypeIITiming(entry, log))
	}
	return b, nil
}

// parseTypeIIITiming returns false if the timing uses a reserved value and
// must be dropped.
func parseTypeIIITiming(data []byte, log *diag.Scope) (TypeIIITiming, bool) {
	name := DataBlockTypeIIITiming.String()

	t := TypeIIITiming{
		Preferred: bits.HasBit(data[0], 7),
	}

	algo := TypeIIIAlgo(bits.Range(data[0], 6, 4))
	if !algo.IsValid() {
		log.AddFailure("%s: Reserved algorithm 0x%02x.", name, uint8(algo))
		return TypeIIITiming{}, false
	}
	t.Algo = algo

	aspect := TimingAspectRatio(bits.Range(data[0], 3, 0))
	if !aspect.IsValid() {
		log.AddFailure("%s: Reserved aspect ratio 0x%02x.", name, uint8(aspect))
		return TypeIIITiming{}, false
	}
	t.AspectRatio = aspect

	t.HorizActive = (int(data[1]) + 1) * 8
	t.Interlaced = bits.HasBit(data[2], 7)
	t.RefreshRateHz = int(bits.Range(data[2], 6, 0)) + 1

	return t, true
}

func parseTypeIIITimingBlock(data []byte, log *diag.Scope) (DataBlock, error) {
	name := DataBlockTypeIIITiming.String()
	checkDataBlockRevision(data, name, 1, log)

	b := &TypeIIITimingBlock{}
	for _, entry := range timingEntries(data, TypeIIITimingSize, name, log) {
		t, ok := parseTypeIIITiming(entry, log)
		if !ok {
			continue
		}
		if len(b.Timings) >= MaxTypeIIITimings {
			return nil, ErrTooManyTimings
		}
		b.Timings = append(b.Timings, t)
	}
	return b, nil
}
