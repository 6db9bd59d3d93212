package info

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/cta"
	"github.com/backkem/displayinfo/pkg/edid"
	"golang.org/x/text/transform"
)

// Chromaticity is a CIE 1931 xy chromaticity.
type Chromaticity struct {
	X, Y float64
}

// ColorPrimaries are the default color primaries and white point of the
// display.
type ColorPrimaries struct {
	// HasPrimaries reports whether Primaries is set.
	HasPrimaries bool
	// Primaries are red, green and blue, in that order.
	Primaries [3]Chromaticity

	// HasDefaultWhitePoint reports whether DefaultWhitePoint is set.
	HasDefaultWhitePoint bool
	DefaultWhitePoint    Chromaticity
}

// sRGB primaries and D65 white point (IEC 61966-2-1).
var srgbColorPrimaries = ColorPrimaries{
	HasPrimaries: true,
	Primaries: [3]Chromaticity{
		{X: 0.640, Y: 0.330},
		{X: 0.300, Y: 0.600},
		{X: 0.150, Y: 0.060},
	},
	HasDefaultWhitePoint: true,
	DefaultWhitePoint:    Chromaticity{X: 0.3127, Y: 0.3290},
}

// HDRStaticMetadata is the HDR capability of the display.
type HDRStaticMetadata struct {
	// Desired content luminance in cd/m², zero when unknown.
	DesiredContentMaxLuminance         float64
	DesiredContentMaxFrameAvgLuminance float64
	DesiredContentMinLuminance         float64

	// Type1 reports support for static metadata type 1.
	Type1 bool

	// Supported EOTFs.
	TraditionalSDR bool
	TraditionalHDR bool
	PQ             bool
	HLG            bool
}

// Make returns the manufacturer name, or "PNP(<id>)" when the ID is not
// registered. The result is printable ASCII.
func (i *Info) Make() string {
	id := i.edid.VendorProduct.Manufacturer
	if name, ok := i.lookup(id); ok {
		return encodeASCII(name)
	}
	return "PNP(" + encodeASCII(id) + ")"
}

// Model returns the first non-empty product name descriptor, or the
// product code in hex. The result is printable ASCII.
func (i *Info) Model() string {
	if s, ok := i.descriptorString(edid.DescriptorProductName); ok {
		return s
	}
	return fmt.Sprintf("0x%04X", i.edid.VendorProduct.Product)
}

// Serial returns the first non-empty product serial descriptor, or the
// numeric serial number in hex. It returns false when neither is set. The
// result is printable ASCII.
func (i *Info) Serial() (string, bool) {
	if s, ok := i.descriptorString(edid.DescriptorProductSerial); ok {
		return s, true
	}
	if serial := i.edid.VendorProduct.Serial; serial != 0 {
		return fmt.Sprintf("0x%08X", serial), true
	}
	return "", false
}

// DefaultColorPrimaries returns the color primaries and white point of the
// display's default color space.
func (i *Info) DefaultColorPrimaries() ColorPrimaries {
	return i.colorPrimaries
}

// HDRStaticMetadata returns the HDR static metadata of the first CTA-861
// HDR static metadata data block. Without one, only the traditional SDR
// EOTF is reported.
func (i *Info) HDRStaticMetadata() HDRStaticMetadata {
	return i.hdrStaticMetadata
}

func (i *Info) descriptorString(tag edid.DisplayDescriptorTag) (string, bool) {
	for _, desc := range i.edid.DisplayDescriptors {
		s, ok := desc.(*edid.StringDescriptor)
		if !ok || s.Tag() != tag || s.Value == "" {
			continue
		}
		return encodeASCII(s.Value), true
	}
	return "", false
}

func deriveColorPrimaries(e *edid.EDID) ColorPrimaries {
	// The sRGB flag takes precedence over the chromaticity fields.
	if e.MiscFeatures.SRGBIsPrimary {
		return srgbColorPrimaries
	}

	var cp ColorPrimaries
	c := e.ChromaticityCoords

	// Broken blobs may carry partial values: require all of them.
	if c.RedX > 0 && c.RedY > 0 && c.GreenX > 0 && c.GreenY > 0 && c.BlueX > 0 && c.BlueY > 0 {
		cp.HasPrimaries = true
		cp.Primaries = [3]Chromaticity{
			{X: c.RedX, Y: c.RedY},
			{X: c.GreenX, Y: c.GreenY},
			{X: c.BlueX, Y: c.BlueY},
		}
	}
	if c.WhiteX > 0 && c.WhiteY > 0 {
		cp.HasDefaultWhitePoint = true
		cp.DefaultWhitePoint = Chromaticity{X: c.WhiteX, Y: c.WhiteY}
	}

	return cp
}

func deriveHDRStaticMetadata(blocks []*cta.CTA) HDRStaticMetadata {
	for _, c := range blocks {
		for _, b := range c.DataBlocks {
			hdr, ok := b.(*cta.HDRStaticMetadataBlock)
			if !ok {
				continue
			}
			return HDRStaticMetadata{
				DesiredContentMaxLuminance:         hdr.DesiredContentMaxLuminance,
				DesiredContentMaxFrameAvgLuminance: hdr.DesiredContentMaxFrameAvgLuminance,
				DesiredContentMinLuminance:         hdr.DesiredContentMinLuminance,
				Type1:                              hdr.Descriptors.Type1,
				TraditionalSDR:                     hdr.EOTFs.TraditionalSDR,
				TraditionalHDR:                     hdr.EOTFs.TraditionalHDR,
				PQ:                                 hdr.EOTFs.PQ,
				HLG:                                hdr.EOTFs.HLG,
			}
		}
	}

	return HDRStaticMetadata{TraditionalSDR: true}
}

// encodeASCII escapes control codes and non-7-bit bytes as \xHH, so the
// result is printable ASCII.
func encodeASCII(s string) string {
	// asciiEscaper never fails: transform.String grows dst on ErrShortDst.
	out, _, _ := transform.String(asciiEscaper{}, s)
	return out
}

// asciiEscaper is a transform.Transformer writing bytes outside 0x20-0x7E
// as \xHH.
type asciiEscaper struct {
	transform.NopResetter
}

const hexDigits = "0123456789abcdef"

func (asciiEscaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c >= 0x20 && c < 0x7F {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		} else {
			if nDst+4 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\\'
			dst[nDst+1] = 'x'
			dst[nDst+2] = hexDigits[c>>4]
			dst[nDst+3] = hexDigits[c&0x0F]
			nDst += 4
		}
		nSrc++
	}
	return nDst, nSrc, nil
}
