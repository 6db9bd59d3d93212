package edid

import "fmt"

// VideoInterface is the digital video interface standard of an EDID 1.4
// digital display, encoded in bits 3-0 of the video input definition byte.
type VideoInterface uint8

const (
	VideoInterfaceUndefined   VideoInterface = 0x00
	VideoInterfaceDVI         VideoInterface = 0x01
	VideoInterfaceHDMIA       VideoInterface = 0x02
	VideoInterfaceHDMIB       VideoInterface = 0x03
	VideoInterfaceMDDI        VideoInterface = 0x04
	VideoInterfaceDisplayPort VideoInterface = 0x05
)

// String returns a human-readable name for the interface.
func (v VideoInterface) String() string {
	switch v {
	case VideoInterfaceUndefined:
		return "Undefined"
	case VideoInterfaceDVI:
		return "DVI"
	case VideoInterfaceHDMIA:
		return "HDMI-a"
	case VideoInterfaceHDMIB:
		return "HDMI-b"
	case VideoInterfaceMDDI:
		return "MDDI"
	case VideoInterfaceDisplayPort:
		return "DisplayPort"
	default:
		return fmt.Sprintf("Reserved(0x%02x)", uint8(v))
	}
}

// IsValid returns true if the interface is a defined value.
func (v VideoInterface) IsValid() bool {
	return v <= VideoInterfaceDisplayPort
}

// DisplayColorType is the display color type of analog or pre-1.4 displays,
// encoded in bits 4-3 of the feature support byte.
type DisplayColorType uint8

const (
	DisplayColorMonochrome DisplayColorType = 0
	DisplayColorRGB        DisplayColorType = 1
	DisplayColorNonRGB     DisplayColorType = 2
	DisplayColorUndefined  DisplayColorType = 3
)

// String returns a human-readable name for the color type.
func (c DisplayColorType) String() string {
	switch c {
	case DisplayColorMonochrome:
		return "Monochrome or grayscale"
	case DisplayColorRGB:
		return "RGB color"
	case DisplayColorNonRGB:
		return "Non-RGB color"
	default:
		return "Undefined"
	}
}

// StandardTimingAspectRatio is the image aspect ratio of a standard timing.
type StandardTimingAspectRatio uint8

const (
	AspectRatio16x10 StandardTimingAspectRatio = 0
	AspectRatio4x3   StandardTimingAspectRatio = 1
	AspectRatio5x4   StandardTimingAspectRatio = 2
	AspectRatio16x9  StandardTimingAspectRatio = 3
)

// String returns the aspect ratio as "W:H".
func (a StandardTimingAspectRatio) String() string {
	switch a {
	case AspectRatio16x10:
		return "16:10"
	case AspectRatio4x3:
		return "4:3"
	case AspectRatio5x4:
		return "5:4"
	case AspectRatio16x9:
		return "16:9"
	default:
		return "Unknown"
	}
}

// StereoMode is the stereo viewing support of a detailed timing.
type StereoMode uint8

const (
	// StereoNone is normal display, no stereo.
	StereoNone StereoMode = iota
	// StereoFieldSeqRight is field sequential stereo, right image when
	// stereo sync signal is 1.
	StereoFieldSeqRight
	// StereoFieldSeqLeft is field sequential stereo, left image when
	// stereo sync signal is 1.
	StereoFieldSeqLeft
	// StereoTwoWayInterleavedRight is 2-way interleaved stereo, right image
	// on even lines.
	StereoTwoWayInterleavedRight
	// StereoTwoWayInterleavedLeft is 2-way interleaved stereo, left image
	// on even lines.
	StereoTwoWayInterleavedLeft
	// StereoFourWayInterleaved is 4-way interleaved stereo.
	StereoFourWayInterleaved
	// StereoSideBySideInterleaved is side-by-side interleaved stereo.
	StereoSideBySideInterleaved
)

// String returns a human-readable name for the stereo mode.
func (s StereoMode) String() string {
	switch s {
	case StereoNone:
		return "None"
	case StereoFieldSeqRight:
		return "Field sequential, right during stereo sync"
	case StereoFieldSeqLeft:
		return "Field sequential, left during stereo sync"
	case StereoTwoWayInterleavedRight:
		return "2-way interleaved, right image on even lines"
	case StereoTwoWayInterleavedLeft:
		return "2-way interleaved, left image on even lines"
	case StereoFourWayInterleaved:
		return "4-way interleaved"
	case StereoSideBySideInterleaved:
		return "Side-by-Side interleaved"
	default:
		return "Unknown"
	}
}

// DisplayDescriptorTag identifies the kind of an 18-byte display descriptor.
type DisplayDescriptorTag uint8

const (
	DescriptorProductSerial         DisplayDescriptorTag = 0xFF
	DescriptorDataString            DisplayDescriptorTag = 0xFE
	DescriptorRangeLimits           DisplayDescriptorTag = 0xFD
	DescriptorProductName           DisplayDescriptorTag = 0xFC
	DescriptorColorPoint            DisplayDescriptorTag = 0xFB
	DescriptorStdTimingIDs          DisplayDescriptorTag = 0xFA
	DescriptorDCMData               DisplayDescriptorTag = 0xF9
	DescriptorCVTTimingCodes        DisplayDescriptorTag = 0xF8
	DescriptorEstablishedTimingsIII DisplayDescriptorTag = 0xF7
	DescriptorDummy                 DisplayDescriptorTag = 0x10
)

// String returns a human-readable name for the descriptor tag.
func (t DisplayDescriptorTag) String() string {
	switch t {
	case DescriptorProductSerial:
		return "Display Product Serial Number"
	case DescriptorDataString:
		return "Alphanumeric Data String"
	case DescriptorRangeLimits:
		return "Display Range Limits"
	case DescriptorProductName:
		return "Display Product Name"
	case DescriptorColorPoint:
		return "Color Point Data"
	case DescriptorStdTimingIDs:
		return "Standard Timing Identifications"
	case DescriptorDCMData:
		return "Display Color Management Data"
	case DescriptorCVTTimingCodes:
		return "CVT 3 Byte Timing Codes"
	case DescriptorEstablishedTimingsIII:
		return "Established Timings III"
	case DescriptorDummy:
		return "Dummy Descriptor"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(t))
	}
}

// ExtensionTag identifies the kind of an EDID extension block (byte 0).
type ExtensionTag uint8

const (
	ExtensionCEA       ExtensionTag = 0x02
	ExtensionVTB       ExtensionTag = 0x10
	ExtensionDI        ExtensionTag = 0x40
	ExtensionLS        ExtensionTag = 0x50
	ExtensionDPVL      ExtensionTag = 0x60
	ExtensionDisplayID ExtensionTag = 0x70
	ExtensionBlockMap  ExtensionTag = 0xF0
	ExtensionVendor    ExtensionTag = 0xFF
)

// String returns a human-readable name for the extension tag.
func (t ExtensionTag) String() string {
	switch t {
	case ExtensionCEA:
		return "CTA-861 Extension Block"
	case ExtensionVTB:
		return "Video Timing Extension Block"
	case ExtensionDI:
		return "Display Information Extension Block"
	case ExtensionLS:
		return "Localized String Extension Block"
	case ExtensionDPVL:
		return "Digital Packet Video Link Extension"
	case ExtensionDisplayID:
		return "DisplayID Extension Block"
	case ExtensionBlockMap:
		return "Block Map Extension Block"
	case ExtensionVendor:
		return "Manufacturer-Specific Extension Block"
	default:
		return fmt.Sprintf("Unknown Extension Block(0x%02x)", uint8(t))
	}
}

// IsValid returns true if the tag is a recognized extension kind.
func (t ExtensionTag) IsValid() bool {
	switch t {
	case ExtensionCEA, ExtensionVTB, ExtensionDI, ExtensionLS, ExtensionDPVL,
		ExtensionDisplayID, ExtensionBlockMap, ExtensionVendor:
		return true
	default:
		return false
	}
}
