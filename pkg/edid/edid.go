// Package edid decodes the EDID 1.x base block and records the extension
// blocks that follow it, as defined by VESA E-EDID Release A, Revision 2
// (EDID 1.4) and its predecessor EDID 1.3.
//
// Parse validates the structural rules of the blob (header, checksums,
// extension count) and fails with an error wrapping diag.ErrMalformed or
// diag.ErrUnsupported when one is violated. Every other non-conformance is
// reported to the diagnostics scope and decoding continues.
//
// Extension payloads are not interpreted here: each Extension carries its
// tag and a private copy of the block, which the cta and displayid packages
// decode.
package edid

import (
	"bytes"
	"encoding/binary"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
	"github.com/icza/bitio"
)

// EDID layout constants.
const (
	// BlockSize is the size of every EDID block (Section 2.2).
	BlockSize = 128

	// MaxBlockCount is the maximum number of blocks in a blob: the
	// extension count is a single byte, plus the base block.
	MaxBlockCount = 256

	// MaxStandardTimings is the number of standard timing slots (Section 3.9).
	MaxStandardTimings = 8

	// ByteDescriptorCount is the number of 18-byte descriptors (Section 3.10).
	ByteDescriptorCount = 4

	// ByteDescriptorSize is the size of a byte descriptor (Section 3.10).
	ByteDescriptorSize = 18

	standardTimingSize   = 2
	standardTimingOffset = 0x26
	byteDescriptorOffset = 0x36
	extensionCountOffset = 0x7E
)

// header is the fixed EDID header (Section 3.1).
var header = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// EDID is a decoded EDID base block and its extension handles.
type EDID struct {
	// Version and Revision of the EDID structure (e.g. 1 and 4 for EDID 1.4).
	Version  int
	Revision int

	VendorProduct VendorProduct

	// IsDigital reports whether the video input is digital.
	IsDigital bool

	// VideoInputDigital is nil for analog displays. Its fields are only
	// decoded for EDID 1.4 and later.
	VideoInputDigital *VideoInputDigital

	ScreenSize ScreenSize

	// Gamma is the display transfer characteristic, zero if unset.
	Gamma float64

	DPMS DPMS

	// DisplayColorType is only meaningful for analog displays and for
	// digital displays before EDID 1.4.
	DisplayColorType DisplayColorType

	// ColorEncodingFormats is nil unless the display is digital and the
	// revision is 1.4 or later.
	ColorEncodingFormats *ColorEncodingFormats

	MiscFeatures MiscFeatures

	ChromaticityCoords ChromaticityCoords

	// StandardTimings in blob order, unused slots omitted.
	StandardTimings []StandardTiming

	// DetailedTimingDefs in blob order.
	DetailedTimingDefs []DetailedTimingDef

	// DisplayDescriptors in blob order.
	DisplayDescriptors []DisplayDescriptor

	// Extensions in blob order, unknown tags included.
	Extensions []Extension
}

// VendorProduct identifies the display product (Section 3.4).
type VendorProduct struct {
	// Manufacturer is the 3-letter PNP ID.
	Manufacturer string
	Product      uint16
	Serial       uint32

	// ManufactureWeek is zero if unset. ModelYear and ManufactureYear are
	// mutually exclusive and zero if unset.
	ManufactureWeek int
	ManufactureYear int
	ModelYear       int
}

// VideoInputDigital is the EDID 1.4 digital video input definition.
type VideoInputDigital struct {
	// ColorBitDepth per primary color, zero if undefined.
	ColorBitDepth int
	Interface     VideoInterface
}

// ScreenSize is the physical size or the aspect ratio of the screen.
// At most one of the size and the aspect ratios is set.
type ScreenSize struct {
	// WidthCM and HeightCM, zero if unset.
	WidthCM, HeightCM int

	// LandscapeAspectRatio and PortraitAspectRatio, zero if unset.
	LandscapeAspectRatio float64
	PortraitAspectRatio  float64
}

// DPMS is the VESA display power management support.
type DPMS struct {
	Standby bool
	Suspend bool
	Off     bool
}

// ColorEncodingFormats lists the supported color encodings. RGB 4:4:4 is
// always supported when the formats are specified.
type ColorEncodingFormats struct {
	RGB444   bool
	YCrCb444 bool
	YCrCb422 bool
}

// MiscFeatures are the remaining feature support flags.
type MiscFeatures struct {
	// DefaultGTF is the default GTF support flag, EDID 1.3 and earlier.
	DefaultGTF bool
	// SRGBIsPrimary reports that sRGB is the default color space.
	SRGBIsPrimary bool
	// HasPreferredTiming is always true for EDID 1.4 and later.
	HasPreferredTiming bool
	// PreferredTimingIsNative, EDID 1.4 and later.
	PreferredTimingIsNative bool
	// ContinuousFreq is the continuous frequency flag, EDID 1.4 and later.
	ContinuousFreq bool
}

// ChromaticityCoords are the CIE 1931 xy coordinates of the primaries and
// the default white point, each accurate to 10 bits.
type ChromaticityCoords struct {
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
	WhiteX, WhiteY float64
}

// Parse decodes an EDID blob: one base block followed by zero or more
// extension blocks. Failures are reported to log, which may be nil.
func Parse(data []byte, log *diag.Scope) (*EDID, error) {
	if len(data) < BlockSize || len(data) > MaxBlockCount*BlockSize ||
		len(data)%BlockSize != 0 {
		return nil, ErrInvalidSize
	}

	base := data[:BlockSize]
	if !bytes.Equal(base[:len(header)], header[:]) {
		return nil, ErrInvalidHeader
	}
	if bits.Checksum(base) != 0 {
		return nil, ErrChecksum
	}

	e := &EDID{
		Version:  int(base[0x12]),
		Revision: int(base[0x13]),
	}
	if e.Version != 1 {
		// Section 2.1.7: subsequent versions break the structure.
		return nil, ErrUnsupportedVersion
	}

	extCount := len(data)/BlockSize - 1
	if extCount != int(base[extensionCountOffset]) {
		return nil, ErrExtensionCount
	}

	log.SetRevision(e.Revision)

	e.VendorProduct = parseVendorProduct(base)
	e.parseBasicParamsFeatures(base, log)
	e.parseChromaticityCoords(base, log)

	for i := 0; i < MaxStandardTimings; i++ {
		off := standardTimingOffset + i*standardTimingSize
		if t, ok := parseStandardTiming(base[off:off+standardTimingSize], log); ok {
			e.StandardTimings = append(e.StandardTimings, t)
		}
	}

	for i := 0; i < ByteDescriptorCount; i++ {
		off := byteDescriptorOffset + i*ByteDescriptorSize
		if err := e.parseByteDescriptor(base[off:off+ByteDescriptorSize], log); err != nil {
			return nil, err
		}
	}

	for i := 1; i <= extCount; i++ {
		if err := e.parseExtension(data[i*BlockSize:(i+1)*BlockSize], log); err != nil {
			return nil, err
		}
	}

	if err := log.Err(); err != nil {
		return nil, err
	}

	return e, nil
}

func parseVendorProduct(data []byte) VendorProduct {
	var vp VendorProduct

	// The 3-letter manufacturer code is three 5-bit letters, MSB first,
	// after a reserved bit. 1 maps to 'A'.
	r := bitio.NewReader(bytes.NewReader(data[0x08:0x0A]))
	_ = r.TryReadBits(1)
	var man [3]byte
	for i := range man {
		man[i] = byte(r.TryReadBits(5)) + '@'
	}
	vp.Manufacturer = string(man[:])

	vp.Product = binary.LittleEndian.Uint16(data[0x0A:])
	vp.Serial = binary.LittleEndian.Uint32(data[0x0C:])

	year := 0
	if data[0x11] >= 0x10 {
		year = int(data[0x11]) + 1990
	}

	week := data[0x10]
	if week == 0xFF {
		// Special flag for model year
		vp.ModelYear = year
	} else {
		vp.ManufactureYear = year
		if week > 0 && week <= 54 {
			vp.ManufactureWeek = int(week)
		}
	}

	return vp
}

func (e *EDID) parseVideoInputDigital(videoInput byte, log *diag.Scope) {
	digital := &VideoInputDigital{}
	e.VideoInputDigital = digital

	// TODO: decode the EDID 1.3 DFP 1.x compatibility bit.
	if e.Revision < 4 {
		return
	}

	depth := bits.Range(videoInput, 6, 4)
	if depth == 0x07 {
		log.AddFailureUntil(4, "Color Bit Depth set to reserved value.")
	} else if depth != 0 {
		digital.ColorBitDepth = 2*int(depth) + 4
	}

	iface := VideoInterface(bits.Range(videoInput, 3, 0))
	if iface.IsValid() {
		digital.Interface = iface
	} else {
		log.AddFailureUntil(4, "Digital Video Interface Standard set to reserved value 0x%02x.",
			uint8(iface))
		digital.Interface = VideoInterfaceUndefined
	}
}

func (e *EDID) parseBasicParamsFeatures(data []byte, log *diag.Scope) {
	videoInput := data[0x14]
	e.IsDigital = bits.HasBit(videoInput, 7)
	if e.IsDigital {
		e.parseVideoInputDigital(videoInput, log)
	}

	// EDID 1.3 leaves the size undefined if either byte is zero. EDID 1.4
	// leaves both undefined if both are zero, and encodes the aspect ratio
	// if only one is zero.
	width, height := data[0x15], data[0x16]
	switch {
	case width > 0 && height > 0:
		e.ScreenSize.WidthCM = int(width)
		e.ScreenSize.HeightCM = int(height)
	case e.Revision >= 4 && width > 0:
		e.ScreenSize.LandscapeAspectRatio = (float64(width) + 99) / 100
	case e.Revision >= 4 && height > 0:
		e.ScreenSize.PortraitAspectRatio = (float64(height) + 99) / 100
	}

	if data[0x17] != 0xFF {
		e.Gamma = (float64(data[0x17]) + 100) / 100
	}

	features := data[0x18]

	e.DPMS.Standby = bits.HasBit(features, 7)
	e.DPMS.Suspend = bits.HasBit(features, 6)
	e.DPMS.Off = bits.HasBit(features, 5)

	if e.IsDigital && e.Revision >= 4 {
		e.ColorEncodingFormats = &ColorEncodingFormats{
			RGB444:   true,
			YCrCb444: bits.HasBit(features, 3),
			YCrCb422: bits.HasBit(features, 4),
		}
		e.DisplayColorType = DisplayColorUndefined
	} else {
		e.DisplayColorType = DisplayColorType(bits.Range(features, 4, 3))
	}

	if e.Revision >= 4 {
		e.MiscFeatures.HasPreferredTiming = true
		e.MiscFeatures.ContinuousFreq = bits.HasBit(features, 0)
		e.MiscFeatures.PreferredTimingIsNative = bits.HasBit(features, 1)
	} else {
		e.MiscFeatures.DefaultGTF = bits.HasBit(features, 0)
		e.MiscFeatures.HasPreferredTiming = bits.HasBit(features, 1)
	}
	e.MiscFeatures.SRGBIsPrimary = bits.HasBit(features, 2)
}

// decodeChromaticityCoord builds a 10-bit binary fraction from 8 high bits
// and 2 low bits.
func decodeChromaticityCoord(hi, lo byte) float64 {
	raw := uint16(hi)<<2 | uint16(lo)
	return float64(raw) / 1024
}

func (e *EDID) parseChromaticityCoords(data []byte, log *diag.Scope) {
	c := &e.ChromaticityCoords

	lo := data[0x19]
	c.RedX = decodeChromaticityCoord(data[0x1B], bits.Range(lo, 7, 6))
	c.RedY = decodeChromaticityCoord(data[0x1C], bits.Range(lo, 5, 4))
	c.GreenX = decodeChromaticityCoord(data[0x1D], bits.Range(lo, 3, 2))
	c.GreenY = decodeChromaticityCoord(data[0x1E], bits.Range(lo, 1, 0))

	lo = data[0x1A]
	c.BlueX = decodeChromaticityCoord(data[0x1F], bits.Range(lo, 7, 6))
	c.BlueY = decodeChromaticityCoord(data[0x20], bits.Range(lo, 5, 4))
	c.WhiteX = decodeChromaticityCoord(data[0x21], bits.Range(lo, 3, 2))
	c.WhiteY = decodeChromaticityCoord(data[0x22], bits.Range(lo, 1, 0))

	primaries := []float64{c.RedX, c.RedY, c.GreenX, c.GreenY, c.BlueX, c.BlueY}
	anySet, allSet := false, true
	for _, v := range primaries {
		if v != 0 {
			anySet = true
		} else {
			allSet = false
		}
	}
	if anySet && !allSet {
		log.AddFailure("Some but not all primaries coordinates are unset.")
	}

	if c.WhiteX == 0 || c.WhiteY == 0 {
		log.AddFailure("White-point coordinates are unset.")
	}
}
