package edid

import (
	"errors"
	"strings"
	"testing"

	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// Offsets of the four byte descriptors.
const (
	slot0 = byteDescriptorOffset
	slot1 = byteDescriptorOffset + ByteDescriptorSize
	slot2 = byteDescriptorOffset + 2*ByteDescriptorSize
	slot3 = byteDescriptorOffset + 3*ByteDescriptorSize
)

// dtd1080p60 is the CEA 1920x1080@60 detailed timing, 600x340 mm.
var dtd1080p60 = []byte{
	0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40, 0x58, 0x2C,
	0x45, 0x00, 0x58, 0x54, 0x21, 0x00, 0x00, 0x1E,
}

// fixChecksum sets the last byte of a block so that its bytes sum to zero.
func fixChecksum(block []byte) {
	block[len(block)-1] = 0
	block[len(block)-1] = -bits.Checksum(block)
}

// testBlock returns a conformant EDID 1.4 base block of a digital display.
func testBlock() []byte {
	b := make([]byte, BlockSize)
	copy(b, header[:])

	b[0x08], b[0x09] = 0x10, 0xAC // DEL
	b[0x0A], b[0x0B] = 0x34, 0x12
	b[0x0C], b[0x0D], b[0x0E], b[0x0F] = 0x78, 0x56, 0x34, 0x12
	b[0x10] = 12
	b[0x11] = 30
	b[0x12] = 1
	b[0x13] = 4

	b[0x14] = 0xA5 // digital, 8 bpc, DisplayPort
	b[0x15] = 60
	b[0x16] = 34
	b[0x17] = 120
	b[0x18] = 0x0A

	copy(b[0x1B:], []byte{0xA3, 0x54, 0x4C, 0x99, 0x26, 0x0F, 0x50, 0x54})

	for i := standardTimingOffset; i < byteDescriptorOffset; i++ {
		b[i] = 0x01
	}

	copy(b[slot0:], dtd1080p60)
	copy(b[slot1:], append([]byte{0, 0, 0, 0xFC, 0}, "Acme 2000\n   "...))
	copy(b[slot2:], []byte{0, 0, 0, 0xFD, 0x00, 48, 75, 30, 83, 17, 0x01, 0x0A,
		0x20, 0x20, 0x20, 0x20, 0x20, 0x20})
	copy(b[slot3:], []byte{0, 0, 0, 0x10, 0})

	fixChecksum(b)
	return b
}

// testBlob returns a conformant blob after applying mutate to its base
// block. The checksum is fixed up afterwards.
func testBlob(mutate func(b []byte)) []byte {
	b := testBlock()
	if mutate != nil {
		mutate(b)
	}
	fixChecksum(b)
	return b
}

func parseWithReport(t *testing.T, data []byte) (*EDID, *diag.Logger, *diag.Scope) {
	t.Helper()

	logger := diag.NewLogger(nil, diag.Config{})
	scope := logger.Section(0, "Base EDID")
	e, err := Parse(data, scope)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return e, logger, scope
}

func TestParseConformant(t *testing.T) {
	e, logger, _ := parseWithReport(t, testBlock())

	if got := logger.String(); got != "" {
		t.Fatalf("report = %q, want empty", got)
	}

	if e.Version != 1 || e.Revision != 4 {
		t.Errorf("version = %d.%d, want 1.4", e.Version, e.Revision)
	}

	want := VendorProduct{
		Manufacturer:    "DEL",
		Product:         0x1234,
		Serial:          0x12345678,
		ManufactureWeek: 12,
		ManufactureYear: 2020,
	}
	if e.VendorProduct != want {
		t.Errorf("VendorProduct = %+v, want %+v", e.VendorProduct, want)
	}

	if !e.IsDigital || e.VideoInputDigital == nil {
		t.Fatal("display should be digital")
	}
	if *e.VideoInputDigital != (VideoInputDigital{ColorBitDepth: 8, Interface: VideoInterfaceDisplayPort}) {
		t.Errorf("VideoInputDigital = %+v", *e.VideoInputDigital)
	}
	if e.ScreenSize != (ScreenSize{WidthCM: 60, HeightCM: 34}) {
		t.Errorf("ScreenSize = %+v", e.ScreenSize)
	}
	if e.Gamma != 2.2 {
		t.Errorf("Gamma = %v, want 2.2", e.Gamma)
	}
	if e.ColorEncodingFormats == nil ||
		*e.ColorEncodingFormats != (ColorEncodingFormats{RGB444: true, YCrCb444: true}) {
		t.Errorf("ColorEncodingFormats = %+v", e.ColorEncodingFormats)
	}
	if e.DisplayColorType != DisplayColorUndefined {
		t.Errorf("DisplayColorType = %v, want Undefined", e.DisplayColorType)
	}
	wantMisc := MiscFeatures{HasPreferredTiming: true, PreferredTimingIsNative: true}
	if e.MiscFeatures != wantMisc {
		t.Errorf("MiscFeatures = %+v, want %+v", e.MiscFeatures, wantMisc)
	}
	if e.ChromaticityCoords.RedX != float64(0xA3<<2)/1024 {
		t.Errorf("RedX = %v", e.ChromaticityCoords.RedX)
	}

	if len(e.StandardTimings) != 0 {
		t.Errorf("len(StandardTimings) = %d, want 0", len(e.StandardTimings))
	}
	if len(e.DetailedTimingDefs) != 1 {
		t.Fatalf("len(DetailedTimingDefs) = %d, want 1", len(e.DetailedTimingDefs))
	}
	if len(e.DisplayDescriptors) != 3 {
		t.Fatalf("len(DisplayDescriptors) = %d, want 3", len(e.DisplayDescriptors))
	}

	name, ok := e.DisplayDescriptors[0].(*StringDescriptor)
	if !ok || name.Tag() != DescriptorProductName || name.Value != "Acme 2000" {
		t.Errorf("DisplayDescriptors[0] = %+v, want product name \"Acme 2000\"", e.DisplayDescriptors[0])
	}

	limits, ok := e.DisplayDescriptors[1].(*RangeLimitsDescriptor)
	if !ok {
		t.Fatalf("DisplayDescriptors[1] = %T, want *RangeLimitsDescriptor", e.DisplayDescriptors[1])
	}
	wantLimits := RangeLimitsDescriptor{
		MinVertRateHz:   48,
		MaxVertRateHz:   75,
		MinHorizRateHz:  30000,
		MaxHorizRateHz:  83000,
		MaxPixelClockHz: 170000000,
	}
	if *limits != wantLimits {
		t.Errorf("range limits = %+v, want %+v", *limits, wantLimits)
	}

	if tag := e.DisplayDescriptors[2].Tag(); tag != DescriptorDummy {
		t.Errorf("DisplayDescriptors[2].Tag() = %v, want %v", tag, DescriptorDummy)
	}
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     func() []byte
		wantErr  error
		wantKind error
	}{
		{
			name:     "empty",
			data:     func() []byte { return nil },
			wantErr:  ErrInvalidSize,
			wantKind: diag.ErrMalformed,
		},
		{
			name:     "not a multiple of the block size",
			data:     func() []byte { return testBlock()[:100] },
			wantErr:  ErrInvalidSize,
			wantKind: diag.ErrMalformed,
		},
		{
			name: "invalid header",
			data: func() []byte {
				return testBlob(func(b []byte) { b[1] = 0x00 })
			},
			wantErr:  ErrInvalidHeader,
			wantKind: diag.ErrMalformed,
		},
		{
			name: "checksum",
			data: func() []byte {
				b := testBlock()
				b[0x20]++
				return b
			},
			wantErr:  ErrChecksum,
			wantKind: diag.ErrMalformed,
		},
		{
			name: "version 2",
			data: func() []byte {
				return testBlob(func(b []byte) { b[0x12] = 2 })
			},
			wantErr:  ErrUnsupportedVersion,
			wantKind: diag.ErrUnsupported,
		},
		{
			name: "extension count",
			data: func() []byte {
				return testBlob(func(b []byte) { b[extensionCountOffset] = 1 })
			},
			wantErr:  ErrExtensionCount,
			wantKind: diag.ErrMalformed,
		},
		{
			name: "extension checksum",
			data: func() []byte {
				b := testBlob(func(b []byte) { b[extensionCountOffset] = 1 })
				ext := make([]byte, BlockSize)
				ext[0] = byte(ExtensionCEA)
				ext[1] = 3
				return append(b, ext...)
			},
			wantErr:  ErrExtensionChecksum,
			wantKind: diag.ErrMalformed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Parse(tc.data(), nil)
			if e != nil {
				t.Error("Parse() returned a result with an error")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tc.wantErr)
			}
			if !errors.Is(err, tc.wantKind) {
				t.Errorf("Parse() error = %v, want kind %v", err, tc.wantKind)
			}
		})
	}
}

func TestChecksumCorruptionIsMalformed(t *testing.T) {
	for i := 0; i < BlockSize; i++ {
		for _, flip := range []byte{0x01, 0x80, 0xFF} {
			b := testBlock()
			b[i] ^= flip

			_, err := Parse(b, nil)
			if !errors.Is(err, diag.ErrMalformed) {
				t.Fatalf("byte 0x%02x ^ 0x%02x: Parse() error = %v, want ErrMalformed", i, flip, err)
			}
		}
	}
}

func TestStandardTimings(t *testing.T) {
	tests := []struct {
		name         string
		revision     byte
		slots        [][2]byte
		want         []StandardTiming
		wantFailures int
	}{
		{
			name:     "unused slots",
			revision: 4,
			slots:    [][2]byte{{0x01, 0x01}, {0x01, 0x01}},
		},
		{
			name:     "decoded slots",
			revision: 4,
			slots:    [][2]byte{{0xD1, 0xC0}, {0x01, 0x01}, {0x81, 0x40}},
			want: []StandardTiming{
				{HorizVideo: 1920, AspectRatio: AspectRatio16x9, RefreshRateHz: 60},
				{HorizVideo: 1280, AspectRatio: AspectRatio4x3, RefreshRateHz: 60},
			},
		},
		{
			name:         "zero high byte in EDID 1.4",
			revision:     4,
			slots:        [][2]byte{{0x00, 0x40}, {0x00, 0x00}},
			wantFailures: 2,
		},
		{
			name:         "zero high byte in EDID 1.3",
			revision:     3,
			slots:        [][2]byte{{0x00, 0x40}},
			wantFailures: 1,
		},
		{
			name:     "zero high byte after EDID 1.4",
			revision: 5,
			slots:    [][2]byte{{0x00, 0x40}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := testBlob(func(b []byte) {
				b[0x13] = tc.revision
				for i, slot := range tc.slots {
					copy(b[standardTimingOffset+i*standardTimingSize:], slot[:])
				}
			})

			e, logger, scope := parseWithReport(t, data)

			if scope.Len() != tc.wantFailures {
				t.Errorf("failures = %d, want %d\n%s", scope.Len(), tc.wantFailures, logger.String())
			}
			if len(e.StandardTimings) != len(tc.want) {
				t.Fatalf("len(StandardTimings) = %d, want %d", len(e.StandardTimings), len(tc.want))
			}
			for i, want := range tc.want {
				if e.StandardTimings[i] != want {
					t.Errorf("StandardTimings[%d] = %+v, want %+v", i, e.StandardTimings[i], want)
				}
			}
		})
	}
}

func TestStandardTimingInvalidCodeMessage(t *testing.T) {
	data := testBlob(func(b []byte) {
		copy(b[standardTimingOffset:], []byte{0x00, 0x40})
	})

	_, logger, _ := parseWithReport(t, data)

	want := "Block 0, Base EDID:\n" +
		"  Use 0x0101 as the invalid Standard Timings code, not 0x0040.\n"
	if got := logger.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestStandardTimingVertVideo(t *testing.T) {
	tests := []struct {
		aspect StandardTimingAspectRatio
		want   int
	}{
		{AspectRatio16x10, 1200},
		{AspectRatio4x3, 1440},
		{AspectRatio5x4, 1536},
		{AspectRatio16x9, 1080},
	}

	for _, tc := range tests {
		t.Run(tc.aspect.String(), func(t *testing.T) {
			st := StandardTiming{HorizVideo: 1920, AspectRatio: tc.aspect}
			if got := st.VertVideo(); got != tc.want {
				t.Errorf("VertVideo() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestVendorProduct(t *testing.T) {
	tests := []struct {
		name       string
		week, year byte
		want       VendorProduct
	}{
		{
			name: "manufacture week",
			week: 54, year: 0x10,
			want: VendorProduct{ManufactureWeek: 54, ManufactureYear: 2006},
		},
		{
			name: "week out of range",
			week: 55, year: 0x10,
			want: VendorProduct{ManufactureYear: 2006},
		},
		{
			name: "model year",
			week: 0xFF, year: 0x20,
			want: VendorProduct{ModelYear: 2022},
		},
		{
			name: "year unset",
			week: 1, year: 0x0F,
			want: VendorProduct{ManufactureWeek: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := testBlob(func(b []byte) {
				b[0x10] = tc.week
				b[0x11] = tc.year
			})

			e, _, _ := parseWithReport(t, data)

			got := e.VendorProduct
			if got.ManufactureWeek != tc.want.ManufactureWeek ||
				got.ManufactureYear != tc.want.ManufactureYear ||
				got.ModelYear != tc.want.ModelYear {
				t.Errorf("VendorProduct = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestScreenSize(t *testing.T) {
	tests := []struct {
		name          string
		revision      byte
		width, height byte
		want          ScreenSize
	}{
		{"size", 4, 52, 29, ScreenSize{WidthCM: 52, HeightCM: 29}},
		{"landscape aspect ratio", 4, 79, 0, ScreenSize{LandscapeAspectRatio: 1.78}},
		{"portrait aspect ratio", 4, 0, 79, ScreenSize{PortraitAspectRatio: 1.78}},
		{"unset", 4, 0, 0, ScreenSize{}},
		{"aspect ratio ignored in EDID 1.3", 3, 79, 0, ScreenSize{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := testBlob(func(b []byte) {
				b[0x13] = tc.revision
				b[0x15] = tc.width
				b[0x16] = tc.height
			})

			e, err := Parse(data, nil)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if e.ScreenSize != tc.want {
				t.Errorf("ScreenSize = %+v, want %+v", e.ScreenSize, tc.want)
			}
		})
	}
}

func TestVideoInputDigitalReserved(t *testing.T) {
	data := testBlob(func(b []byte) {
		b[0x14] = 0x80 | 0x70 | 0x07
	})

	e, logger, scope := parseWithReport(t, data)

	if scope.Len() != 2 {
		t.Errorf("failures = %d, want 2\n%s", scope.Len(), logger.String())
	}
	if *e.VideoInputDigital != (VideoInputDigital{Interface: VideoInterfaceUndefined}) {
		t.Errorf("VideoInputDigital = %+v, want zero", *e.VideoInputDigital)
	}
	if !strings.Contains(logger.String(), "Digital Video Interface Standard set to reserved value 0x07.") {
		t.Errorf("report = %q, missing interface failure", logger.String())
	}
}

func TestAnalogDisplay(t *testing.T) {
	data := testBlob(func(b []byte) {
		b[0x14] = 0x0F
		b[0x18] = 0x0A // RGB color, preferred native
	})

	e, _, _ := parseWithReport(t, data)

	if e.IsDigital || e.VideoInputDigital != nil {
		t.Error("display should be analog")
	}
	if e.ColorEncodingFormats != nil {
		t.Errorf("ColorEncodingFormats = %+v, want nil", e.ColorEncodingFormats)
	}
	if e.DisplayColorType != DisplayColorRGB {
		t.Errorf("DisplayColorType = %v, want %v", e.DisplayColorType, DisplayColorRGB)
	}
}

func TestChromaticityFailures(t *testing.T) {
	tests := []struct {
		name   string
		coords []byte
		want   []string
	}{
		{
			name:   "all unset",
			coords: []byte{0, 0, 0, 0, 0, 0, 0, 0},
			want:   []string{"White-point coordinates are unset."},
		},
		{
			name:   "partial primaries",
			coords: []byte{0xA3, 0x54, 0, 0x99, 0x26, 0x0F, 0x50, 0x54},
			want:   []string{"Some but not all primaries coordinates are unset."},
		},
		{
			name:   "partial white point",
			coords: []byte{0xA3, 0x54, 0x4C, 0x99, 0x26, 0x0F, 0x50, 0},
			want:   []string{"White-point coordinates are unset."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := testBlob(func(b []byte) {
				copy(b[0x1B:], tc.coords)
			})

			_, logger, scope := parseWithReport(t, data)

			if scope.Len() != len(tc.want) {
				t.Errorf("failures = %d, want %d\n%s", scope.Len(), len(tc.want), logger.String())
			}
			for _, msg := range tc.want {
				if !strings.Contains(logger.String(), msg) {
					t.Errorf("report = %q, missing %q", logger.String(), msg)
				}
			}
		})
	}
}

func TestByteDescriptors(t *testing.T) {
	t.Run("timing after display descriptor", func(t *testing.T) {
		data := testBlob(func(b []byte) {
			copy(b[slot3:], dtd1080p60)
		})

		e, logger, _ := parseWithReport(t, data)

		if !strings.Contains(logger.String(), "Invalid detailed timing descriptor ordering.") {
			t.Errorf("report = %q, missing ordering failure", logger.String())
		}
		if len(e.DetailedTimingDefs) != 2 {
			t.Errorf("len(DetailedTimingDefs) = %d, want 2", len(e.DetailedTimingDefs))
		}
	})

	t.Run("manufacturer-specific descriptor", func(t *testing.T) {
		data := testBlob(func(b []byte) {
			b[slot3+3] = 0x05
		})

		e, logger, _ := parseWithReport(t, data)

		if logger.Len() != 0 {
			t.Errorf("report = %q, want empty", logger.String())
		}
		if len(e.DisplayDescriptors) != 2 {
			t.Errorf("len(DisplayDescriptors) = %d, want 2", len(e.DisplayDescriptors))
		}
	})

	t.Run("unknown descriptor", func(t *testing.T) {
		data := testBlob(func(b []byte) {
			b[slot3+3] = 0x20
		})

		e, logger, _ := parseWithReport(t, data)

		if !strings.Contains(logger.String(), "Unknown Type 0x20.") {
			t.Errorf("report = %q, missing unknown type failure", logger.String())
		}
		if len(e.DisplayDescriptors) != 2 {
			t.Errorf("len(DisplayDescriptors) = %d, want 2", len(e.DisplayDescriptors))
		}
	})

	t.Run("serial string NUL padded", func(t *testing.T) {
		data := testBlob(func(b []byte) {
			copy(b[slot3:], append([]byte{0, 0, 0, 0xFF, 0}, "SN42\x00\x00\x00\x00\x00\x00\x00\x00\x00"...))
		})

		e, _, _ := parseWithReport(t, data)

		serial, ok := e.DisplayDescriptors[2].(*StringDescriptor)
		if !ok || serial.Tag() != DescriptorProductSerial || serial.Value != "SN42" {
			t.Errorf("DisplayDescriptors[2] = %+v, want serial \"SN42\"", e.DisplayDescriptors[2])
		}
	})
}

func TestDisplayRangeLimits(t *testing.T) {
	tests := []struct {
		name        string
		revision    byte
		payload     []byte // bytes 4-9
		want        *RangeLimitsDescriptor
		wantFailure string
	}{
		{
			name:     "max offsets",
			revision: 4,
			payload:  []byte{0x0A, 48, 75, 30, 83, 17},
			want: &RangeLimitsDescriptor{
				MinVertRateHz:   48,
				MaxVertRateHz:   330,
				MinHorizRateHz:  30000,
				MaxHorizRateHz:  338000,
				MaxPixelClockHz: 170000000,
			},
		},
		{
			name:     "min and max offsets",
			revision: 4,
			payload:  []byte{0x03, 10, 20, 30, 83, 17},
			want: &RangeLimitsDescriptor{
				MinVertRateHz:   265,
				MaxVertRateHz:   275,
				MinHorizRateHz:  30000,
				MaxHorizRateHz:  83000,
				MaxPixelClockHz: 170000000,
			},
		},
		{
			name:        "reserved offset flags",
			revision:    4,
			payload:     []byte{0x01, 48, 75, 30, 83, 17},
			wantFailure: "Range offset flags set to reserved value 0x01.",
		},
		{
			name:     "reserved offset flags after EDID 1.4",
			revision: 5,
			payload:  []byte{0x01, 48, 75, 30, 83, 17},
			want: &RangeLimitsDescriptor{
				MinVertRateHz:   48,
				MaxVertRateHz:   75,
				MinHorizRateHz:  30000,
				MaxHorizRateHz:  83000,
				MaxPixelClockHz: 170000000,
			},
		},
		{
			name:     "reserved high flag bits",
			revision: 4,
			payload:  []byte{0x10, 48, 75, 30, 83, 17},
			want: &RangeLimitsDescriptor{
				MinVertRateHz:   48,
				MaxVertRateHz:   75,
				MinHorizRateHz:  30000,
				MaxHorizRateHz:  83000,
				MaxPixelClockHz: 170000000,
			},
			wantFailure: "Bits 7:4 of the range offset flags are reserved.",
		},
		{
			name:        "offset flags in EDID 1.3",
			revision:    3,
			payload:     []byte{0x02, 48, 75, 30, 83, 17},
			want:        &RangeLimitsDescriptor{MinVertRateHz: 48, MaxVertRateHz: 75, MinHorizRateHz: 30000, MaxHorizRateHz: 83000, MaxPixelClockHz: 170000000},
			wantFailure: "Range offset flags are unsupported in EDID 1.3.",
		},
		{
			name:        "zero rate",
			revision:    4,
			payload:     []byte{0x00, 0, 75, 30, 83, 17},
			wantFailure: "Range limits set to reserved values.",
		},
		{
			name:        "min vertical above max",
			revision:    4,
			payload:     []byte{0x00, 76, 75, 30, 83, 17},
			wantFailure: "Min vertical rate > max vertical rate.",
		},
		{
			name:        "min horizontal above max",
			revision:    4,
			payload:     []byte{0x00, 48, 75, 84, 83, 17},
			wantFailure: "Min horizontal freq > max horizontal freq.",
		},
		{
			name:        "missing max dotclock",
			revision:    4,
			payload:     []byte{0x00, 48, 75, 30, 83, 0},
			want:        &RangeLimitsDescriptor{MinVertRateHz: 48, MaxVertRateHz: 75, MinHorizRateHz: 30000, MaxHorizRateHz: 83000},
			wantFailure: "EDID 1.4 block does not set max dotclock.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := testBlob(func(b []byte) {
				b[0x13] = tc.revision
				copy(b[slot2+4:], tc.payload)
			})

			e, logger, _ := parseWithReport(t, data)

			var got *RangeLimitsDescriptor
			for _, d := range e.DisplayDescriptors {
				if r, ok := d.(*RangeLimitsDescriptor); ok {
					got = r
				}
			}

			switch {
			case tc.want == nil && got != nil:
				t.Errorf("range limits = %+v, want dropped", *got)
			case tc.want != nil && got == nil:
				t.Errorf("range limits dropped, want %+v", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Errorf("range limits = %+v, want %+v", *got, *tc.want)
			}

			report := logger.String()
			if tc.wantFailure == "" && report != "" {
				t.Errorf("report = %q, want empty", report)
			}
			if tc.wantFailure != "" && !strings.Contains(report, tc.wantFailure) {
				t.Errorf("report = %q, missing %q", report, tc.wantFailure)
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	base := testBlob(func(b []byte) { b[extensionCountOffset] = 2 })

	cta := make([]byte, BlockSize)
	cta[0] = byte(ExtensionCEA)
	cta[1] = 3
	fixChecksum(cta)

	unknown := make([]byte, BlockSize)
	unknown[0] = 0x33
	fixChecksum(unknown)

	data := append(append(base, cta...), unknown...)

	e, logger, _ := parseWithReport(t, data)

	want := "Block 0, Base EDID:\n  Unknown Extension Block.\n"
	if got := logger.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}

	if len(e.Extensions) != 2 {
		t.Fatalf("len(Extensions) = %d, want 2", len(e.Extensions))
	}
	if got := e.Extensions[1].Tag(); got != ExtensionTag(0x33) {
		t.Errorf("Extensions[1].Tag() = %v, want 0x33", got)
	}
	ext := e.Extensions[0]
	if ext.Tag() != ExtensionCEA {
		t.Errorf("Tag() = %v, want %v", ext.Tag(), ExtensionCEA)
	}

	raw := ext.Data()
	if raw[1] != 3 {
		t.Errorf("Data()[1] = %d, want 3", raw[1])
	}

	// The returned slice is a copy.
	raw[1] = 0xAA
	data[BlockSize+1] = 0xBB
	if ext.Data()[1] != 3 {
		t.Error("Extension data aliases an external buffer")
	}
}
