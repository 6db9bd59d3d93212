package main

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/cta"
	"github.com/backkem/displayinfo/pkg/displayid"
	"github.com/backkem/displayinfo/pkg/edid"
	"github.com/backkem/displayinfo/pkg/info"
)

// document is the YAML dump of a parsed blob.
type document struct {
	Make   string `yaml:"make"`
	Model  string `yaml:"model"`
	Serial string `yaml:"serial,omitempty"`

	DefaultColorPrimaries info.ColorPrimaries    `yaml:"defaultColorPrimaries"`
	HDRStaticMetadata     info.HDRStaticMetadata `yaml:"hdrStaticMetadata"`

	EDID       edidDoc        `yaml:"edid"`
	Extensions []extensionDoc `yaml:"extensions,omitempty"`

	Failures string `yaml:"failures,omitempty"`
}

type edidDoc struct {
	Version string `yaml:"version"`

	VendorProduct        edid.VendorProduct         `yaml:"vendorProduct"`
	IsDigital            bool                       `yaml:"isDigital"`
	VideoInputDigital    *edid.VideoInputDigital    `yaml:"videoInputDigital,omitempty"`
	ScreenSize           edid.ScreenSize            `yaml:"screenSize"`
	Gamma                float64                    `yaml:"gamma,omitempty"`
	DPMS                 edid.DPMS                  `yaml:"dpms"`
	DisplayColorType     string                     `yaml:"displayColorType,omitempty"`
	ColorEncodingFormats *edid.ColorEncodingFormats `yaml:"colorEncodingFormats,omitempty"`
	MiscFeatures         edid.MiscFeatures          `yaml:"miscFeatures"`
	ChromaticityCoords   edid.ChromaticityCoords    `yaml:"chromaticityCoords"`

	StandardTimings    []edid.StandardTiming    `yaml:"standardTimings,omitempty"`
	DetailedTimingDefs []edid.DetailedTimingDef `yaml:"detailedTimingDefs,omitempty"`
	DisplayDescriptors []taggedDoc              `yaml:"displayDescriptors,omitempty"`
}

type extensionDoc struct {
	Block     int           `yaml:"block"`
	Kind      string        `yaml:"kind"`
	CTA       *ctaDoc       `yaml:"cta,omitempty"`
	DisplayID *displayIDDoc `yaml:"displayID,omitempty"`
}

type ctaDoc struct {
	Revision           int                      `yaml:"revision"`
	Flags              cta.Flags                `yaml:"flags"`
	DataBlocks         []taggedDoc              `yaml:"dataBlocks,omitempty"`
	DetailedTimingDefs []edid.DetailedTimingDef `yaml:"detailedTimingDefs,omitempty"`
}

type displayIDDoc struct {
	Version     string      `yaml:"version"`
	ProductType string      `yaml:"productType"`
	DataBlocks  []taggedDoc `yaml:"dataBlocks,omitempty"`
}

// taggedDoc is one element of a tagged union. Data is omitted for
// elements without a decoded payload.
type taggedDoc struct {
	Kind string `yaml:"kind"`
	Data any    `yaml:"data,omitempty"`
}

func newDocument(di *info.Info) document {
	e := di.EDID()

	doc := document{
		Make:                  di.Make(),
		Model:                 di.Model(),
		DefaultColorPrimaries: di.DefaultColorPrimaries(),
		HDRStaticMetadata:     di.HDRStaticMetadata(),
		EDID:                  newEDIDDoc(e),
		Failures:              di.FailureMsg(),
	}
	if serial, ok := di.Serial(); ok {
		doc.Serial = serial
	}

	// CTA() and DisplayID() hold the decoded blocks of their kind in blob
	// order.
	ctas, displayIDs := di.CTA(), di.DisplayID()
	for i := range e.Extensions {
		ext := &e.Extensions[i]
		x := extensionDoc{Block: i + 1, Kind: ext.Tag().String()}

		switch ext.Tag() {
		case edid.ExtensionCEA:
			x.CTA = newCTADoc(ctas[0])
			ctas = ctas[1:]
		case edid.ExtensionDisplayID:
			x.DisplayID = newDisplayIDDoc(displayIDs[0])
			displayIDs = displayIDs[1:]
		}

		doc.Extensions = append(doc.Extensions, x)
	}

	return doc
}

func newEDIDDoc(e *edid.EDID) edidDoc {
	doc := edidDoc{
		Version:              fmt.Sprintf("%d.%d", e.Version, e.Revision),
		VendorProduct:        e.VendorProduct,
		IsDigital:            e.IsDigital,
		VideoInputDigital:    e.VideoInputDigital,
		ScreenSize:           e.ScreenSize,
		Gamma:                e.Gamma,
		DPMS:                 e.DPMS,
		ColorEncodingFormats: e.ColorEncodingFormats,
		MiscFeatures:         e.MiscFeatures,
		ChromaticityCoords:   e.ChromaticityCoords,
		StandardTimings:      e.StandardTimings,
		DetailedTimingDefs:   e.DetailedTimingDefs,
	}
	if !e.IsDigital || e.Revision < 4 {
		doc.DisplayColorType = e.DisplayColorType.String()
	}

	for _, d := range e.DisplayDescriptors {
		t := taggedDoc{Kind: d.Tag().String()}
		if _, ok := d.(*edid.TagDescriptor); !ok {
			t.Data = d
		}
		doc.DisplayDescriptors = append(doc.DisplayDescriptors, t)
	}

	return doc
}

func newCTADoc(c *cta.CTA) *ctaDoc {
	doc := &ctaDoc{
		Revision:           c.Revision,
		Flags:              c.Flags,
		DetailedTimingDefs: c.DetailedTimingDefs,
	}

	for _, b := range c.DataBlocks {
		t := taggedDoc{Kind: b.Tag().String()}
		if _, ok := b.(*cta.TagBlock); !ok {
			t.Data = b
		}
		doc.DataBlocks = append(doc.DataBlocks, t)
	}

	return doc
}

func newDisplayIDDoc(d *displayid.DisplayID) *displayIDDoc {
	doc := &displayIDDoc{
		Version:     fmt.Sprintf("%d.%d", d.Version, d.Revision),
		ProductType: d.ProductType.String(),
	}

	for _, b := range d.DataBlocks {
		t := taggedDoc{Kind: b.Tag().String()}
		if _, ok := b.(*displayid.TagBlock); !ok {
			t.Data = b
		}
		doc.DataBlocks = append(doc.DataBlocks, t)
	}

	return doc
}
