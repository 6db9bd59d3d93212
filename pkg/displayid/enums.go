package displayid

import "fmt"

// ProductType is the DisplayID product primary use case (byte 2 of the
// section header).
type ProductType uint8

const (
	ProductTypeExtension         ProductType = 0x00
	ProductTypeTest              ProductType = 0x01
	ProductTypeDisplayPanel      ProductType = 0x02
	ProductTypeStandaloneDisplay ProductType = 0x03
	ProductTypeTVReceiver        ProductType = 0x04
	ProductTypeRepeater          ProductType = 0x05
	ProductTypeDirectDrive       ProductType = 0x06
)

// String returns a human-readable name for the product type.
func (p ProductType) String() string {
	switch p {
	case ProductTypeExtension:
		return "Extension Section"
	case ProductTypeTest:
		return "Test Structure"
	case ProductTypeDisplayPanel:
		return "Display panel or other transducer, LCD or PDP module"
	case ProductTypeStandaloneDisplay:
		return "Standalone display device"
	case ProductTypeTVReceiver:
		return "Television receiver"
	case ProductTypeRepeater:
		return "Repeater/translator"
	case ProductTypeDirectDrive:
		return "DIRECT DRIVE monitor"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(p))
	}
}

// IsValid returns true if the product type is a defined code.
func (p ProductType) IsValid() bool {
	return p <= ProductTypeDirectDrive
}

// DataBlockTag identifies a DisplayID 1.x data block.
type DataBlockTag uint8

const (
	DataBlockProductID              DataBlockTag = 0x00
	DataBlockDisplayParams          DataBlockTag = 0x01
	DataBlockColorCharact           DataBlockTag = 0x02
	DataBlockTypeITiming            DataBlockTag = 0x03
	DataBlockTypeIITiming           DataBlockTag = 0x04
	DataBlockTypeIIITiming          DataBlockTag = 0x05
	DataBlockTypeIVTiming           DataBlockTag = 0x06
	DataBlockVESATiming             DataBlockTag = 0x07
	DataBlockCEATiming              DataBlockTag = 0x08
	DataBlockTimingRangeLimits      DataBlockTag = 0x09
	DataBlockProductSerial          DataBlockTag = 0x0A
	DataBlockASCIIString            DataBlockTag = 0x0B
	DataBlockDisplayDeviceData      DataBlockTag = 0x0C
	DataBlockInterfacePowerSeq      DataBlockTag = 0x0D
	DataBlockTransferCharact        DataBlockTag = 0x0E
	DataBlockDisplayInterface       DataBlockTag = 0x0F
	DataBlockStereoDisplayInterface DataBlockTag = 0x10
	DataBlockTypeVTiming            DataBlockTag = 0x11
	DataBlockTiledDisplayTopo       DataBlockTag = 0x12
	DataBlockTypeVITiming           DataBlockTag = 0x13

	// dataBlockVendorSpecific blocks are skipped.
	dataBlockVendorSpecific DataBlockTag = 0x7F
)

// String returns the data block name used in diagnostics.
func (t DataBlockTag) String() string {
	switch t {
	case DataBlockProductID:
		return "Product Identification Data Block"
	case DataBlockDisplayParams:
		return "Display Parameters Data Block"
	case DataBlockColorCharact:
		return "Color Characteristics Data Block"
	case DataBlockTypeITiming:
		return "Video Timing Modes Type 1 - Detailed Timings Data Block"
	case DataBlockTypeIITiming:
		return "Video Timing Modes Type 2 - Detailed Timings Data Block"
	case DataBlockTypeIIITiming:
		return "Video Timing Modes Type 3 - Short Timings Data Block"
	case DataBlockTypeIVTiming:
		return "Video Timing Modes Type 4 - DMT Timings Data Block"
	case DataBlockVESATiming:
		return "Supported Timing Modes Type 1 - VESA DMT Timings Data Block"
	case DataBlockCEATiming:
		return "Supported Timing Modes Type 2 - CTA-861 Timings Data Block"
	case DataBlockTimingRangeLimits:
		return "Video Timing Range Data Block"
	case DataBlockProductSerial:
		return "Product Serial Number Data Block"
	case DataBlockASCIIString:
		return "GP ASCII String Data Block"
	case DataBlockDisplayDeviceData:
		return "Display Device Data Data Block"
	case DataBlockInterfacePowerSeq:
		return "Interface Power Sequencing Data Block"
	case DataBlockTransferCharact:
		return "Transfer Characteristics Data Block"
	case DataBlockDisplayInterface:
		return "Display Interface Data Block"
	case DataBlockStereoDisplayInterface:
		return "Stereo Display Interface Data Block"
	case DataBlockTypeVTiming:
		return "Video Timing Modes Type 5 - Short Timings Data Block"
	case DataBlockTiledDisplayTopo:
		return "Tiled Display Topology Data Block"
	case DataBlockTypeVITiming:
		return "Video Timing Modes Type 6 - Detailed Timings Data Block"
	case dataBlockVendorSpecific:
		return "Vendor-Specific Data Block"
	default:
		return fmt.Sprintf("Unknown DisplayID Data Block (0x%02x)", uint8(t))
	}
}

// IsValid returns true if the tag is a recognized DisplayID 1.x data block.
// The vendor-specific tag is not.
func (t DataBlockTag) IsValid() bool {
	return t <= DataBlockTypeVITiming
}

// TimingAspectRatio is the aspect ratio of a type I, II, III or VII timing.
type TimingAspectRatio uint8

const (
	TimingAspectRatio1x1       TimingAspectRatio = 0x00
	TimingAspectRatio5x4       TimingAspectRatio = 0x01
	TimingAspectRatio4x3       TimingAspectRatio = 0x02
	TimingAspectRatio15x9      TimingAspectRatio = 0x03
	TimingAspectRatio16x9      TimingAspectRatio = 0x04
	TimingAspectRatio16x10     TimingAspectRatio = 0x05
	TimingAspectRatio64x27     TimingAspectRatio = 0x06
	TimingAspectRatio256x135   TimingAspectRatio = 0x07
	TimingAspectRatioUndefined TimingAspectRatio = 0x08
)

// String returns the aspect ratio as "W:H".
func (a TimingAspectRatio) String() string {
	switch a {
	case TimingAspectRatio1x1:
		return "1:1"
	case TimingAspectRatio5x4:
		return "5:4"
	case TimingAspectRatio4x3:
		return "4:3"
	case TimingAspectRatio15x9:
		return "15:9"
	case TimingAspectRatio16x9:
		return "16:9"
	case TimingAspectRatio16x10:
		return "16:10"
	case TimingAspectRatio64x27:
		return "64:27"
	case TimingAspectRatio256x135:
		return "256:135"
	default:
		return "undefined"
	}
}

// IsValid returns true if the aspect ratio is a defined value.
func (a TimingAspectRatio) IsValid() bool {
	return a <= TimingAspectRatioUndefined
}

// TimingStereo3D is the stereo 3D support of a type I, II or VII timing.
type TimingStereo3D uint8

const (
	// TimingStereo3DNever is a mono-only timing.
	TimingStereo3DNever TimingStereo3D = 0x00
	// TimingStereo3DAlways is a stereo-only timing.
	TimingStereo3DAlways TimingStereo3D = 0x01
	// TimingStereo3DUser means the user selects mono or stereo.
	TimingStereo3DUser TimingStereo3D = 0x02
)

// String returns a human-readable name for the stereo support.
func (s TimingStereo3D) String() string {
	switch s {
	case TimingStereo3DNever:
		return "no 3D stereo"
	case TimingStereo3DAlways:
		return "3D stereo"
	case TimingStereo3DUser:
		return "3D stereo depends on user action"
	default:
		return "reserved"
	}
}

// IsValid returns true if the stereo support is a defined value.
func (s TimingStereo3D) IsValid() bool {
	return s <= TimingStereo3DUser
}

// SyncPolarity is the polarity of a sync pulse.
type SyncPolarity uint8

const (
	SyncNegative SyncPolarity = 0x00
	SyncPositive SyncPolarity = 0x01
)

// String returns "-" or "+".
func (p SyncPolarity) String() string {
	if p == SyncPositive {
		return "+"
	}
	return "-"
}

// TypeIIIAlgo is the CVT blanking algorithm of a type III timing.
type TypeIIIAlgo uint8

const (
	TypeIIIStandardBlanking TypeIIIAlgo = 0
	TypeIIIReducedBlanking  TypeIIIAlgo = 1
)

// String returns a human-readable name for the algorithm.
func (a TypeIIIAlgo) String() string {
	switch a {
	case TypeIIIStandardBlanking:
		return "CVT"
	case TypeIIIReducedBlanking:
		return "CVT-RB"
	default:
		return fmt.Sprintf("Reserved(0x%02x)", uint8(a))
	}
}

// IsValid returns true if the algorithm is a defined value.
func (a TypeIIIAlgo) IsValid() bool {
	return a <= TypeIIIReducedBlanking
}

// MissingRecvBehavior is the tiled display behavior when more than one
// but fewer than all tiles are driven.
type MissingRecvBehavior uint8

const (
	MissingRecvUndefined MissingRecvBehavior = 0
	MissingRecvTileOnly  MissingRecvBehavior = 1
)

// IsValid returns true if the behavior is a defined value.
func (b MissingRecvBehavior) IsValid() bool {
	return b <= MissingRecvTileOnly
}

// SingleRecvBehavior is the tiled display behavior when only this tile is
// driven.
type SingleRecvBehavior uint8

const (
	SingleRecvUndefined SingleRecvBehavior = 0
	SingleRecvTileOnly  SingleRecvBehavior = 1
	SingleRecvScaled    SingleRecvBehavior = 2
	SingleRecvCloned    SingleRecvBehavior = 3
)

// IsValid returns true if the behavior is a defined value.
func (b SingleRecvBehavior) IsValid() bool {
	return b <= SingleRecvCloned
}
