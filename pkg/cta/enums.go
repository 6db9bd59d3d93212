package cta

import "fmt"

// DataBlockTag identifies the kind of a decoded CTA-861 data block. Standard
// and extended tags share this single space.
type DataBlockTag uint8

const (
	DataBlockAudio DataBlockTag = iota + 1
	DataBlockVideo
	DataBlockSpeakerAlloc
	DataBlockVESATransferCharacteristic

	DataBlockVideoCap
	DataBlockVESADisplayDevice
	DataBlockColorimetry
	DataBlockHDRStaticMetadata
	DataBlockHDRDynamicMetadata
	DataBlockVideoFormatPref
	DataBlockYCbCr420
	DataBlockYCbCr420CapMap
	DataBlockHDMIAudio
	DataBlockRoomConfig
	DataBlockSpeakerLocation
	DataBlockInfoFrame
	DataBlockDisplayIDTimingVII
	DataBlockDisplayIDTimingVIII
	DataBlockDisplayIDTimingX
	DataBlockHDMIEDIDExtOverride
	DataBlockHDMISinkCap
)

// String returns the data block name.
func (t DataBlockTag) String() string {
	switch t {
	case DataBlockAudio:
		return "Audio Data Block"
	case DataBlockVideo:
		return "Video Data Block"
	case DataBlockSpeakerAlloc:
		return "Speaker Allocation Data Block"
	case DataBlockVESATransferCharacteristic:
		return "VESA Display Transfer Characteristics Data Block"
	case DataBlockVideoCap:
		return "Video Capability Data Block"
	case DataBlockVESADisplayDevice:
		return "VESA Video Display Device Data Block"
	case DataBlockColorimetry:
		return "Colorimetry Data Block"
	case DataBlockHDRStaticMetadata:
		return "HDR Static Metadata Data Block"
	case DataBlockHDRDynamicMetadata:
		return "HDR Dynamic Metadata Data Block"
	case DataBlockVideoFormatPref:
		return "Video Format Preference Data Block"
	case DataBlockYCbCr420:
		return "YCbCr 4:2:0 Video Data Block"
	case DataBlockYCbCr420CapMap:
		return "YCbCr 4:2:0 Capability Map Data Block"
	case DataBlockHDMIAudio:
		return "HDMI Audio Data Block"
	case DataBlockRoomConfig:
		return "Room Configuration Data Block"
	case DataBlockSpeakerLocation:
		return "Speaker Location Data Block"
	case DataBlockInfoFrame:
		return "InfoFrame Data Block"
	case DataBlockDisplayIDTimingVII:
		return "DisplayID Type VII Video Timing Data Block"
	case DataBlockDisplayIDTimingVIII:
		return "DisplayID Type VIII Video Timing Data Block"
	case DataBlockDisplayIDTimingX:
		return "DisplayID Type X Video Timing Data Block"
	case DataBlockHDMIEDIDExtOverride:
		return "HDMI Forum EDID Extension Override Data Block"
	case DataBlockHDMISinkCap:
		return "HDMI Forum Sink Capability Data Block"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Standard data block tags, bits 7-5 of the data block header.
const (
	tagAudio          = 1
	tagVideo          = 2
	tagVendorSpecific = 3
	tagSpeakerAlloc   = 4
	tagVESATransfer   = 5
	tagExtended       = 7
)

// Extended tags of blocks that are skipped without a failure.
const (
	extTagVendorSpecificVideo = 1
	extTagVendorSpecificAudio = 17
)

// extendedTags maps the recognized extended tags, the first payload byte of
// a tag 7 block, to their data block kind.
var extendedTags = map[uint8]DataBlockTag{
	0:   DataBlockVideoCap,
	2:   DataBlockVESADisplayDevice,
	5:   DataBlockColorimetry,
	6:   DataBlockHDRStaticMetadata,
	7:   DataBlockHDRDynamicMetadata,
	13:  DataBlockVideoFormatPref,
	14:  DataBlockYCbCr420,
	15:  DataBlockYCbCr420CapMap,
	18:  DataBlockHDMIAudio,
	19:  DataBlockRoomConfig,
	20:  DataBlockSpeakerLocation,
	32:  DataBlockInfoFrame,
	34:  DataBlockDisplayIDTimingVII,
	35:  DataBlockDisplayIDTimingVIII,
	42:  DataBlockDisplayIDTimingX,
	120: DataBlockHDMIEDIDExtOverride,
	121: DataBlockHDMISinkCap,
}
