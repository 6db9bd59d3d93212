// Package info is the high-level entry point: it parses a whole EDID blob,
// decodes the CTA-861 and DisplayID extensions it carries, and derives the
// display properties most callers need.
//
// Basic usage:
//
//	di, err := info.Parse(blob, info.Config{})
//	if err != nil {
//		return err
//	}
//	fmt.Println(di.Make(), di.Model())
//	if msg := di.FailureMsg(); msg != "" {
//		log.Print(msg)
//	}
package info

import (
	"fmt"

	"github.com/backkem/displayinfo/pkg/cta"
	"github.com/backkem/displayinfo/pkg/diag"
	"github.com/backkem/displayinfo/pkg/displayid"
	"github.com/backkem/displayinfo/pkg/edid"
	"github.com/backkem/displayinfo/pkg/pnp"
	"github.com/pion/logging"
)

// baseBlockKind is the report heading of the EDID base block.
const baseBlockKind = "Base EDID"

// VendorLookup resolves a 3-letter PNP manufacturer ID to a vendor name.
type VendorLookup func(id string) (string, bool)

// Config configures Parse.
type Config struct {
	// Lookup resolves manufacturer IDs for Make.
	// Defaults to pnp.Lookup if nil.
	Lookup VendorLookup

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Info is a parsed EDID blob with its decoded extensions and failure report.
// It is immutable and safe for concurrent reads.
type Info struct {
	edid       *edid.EDID
	cta        []*cta.CTA
	displayID  []*displayid.DisplayID
	failureMsg string

	lookup VendorLookup

	colorPrimaries    ColorPrimaries
	hdrStaticMetadata HDRStaticMetadata
}

// ParseError is returned when a blob cannot be parsed. FailureMsg holds the
// failures reported before the fatal error.
type ParseError struct {
	Err        error
	FailureMsg string
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error, so errors.Is matches the decoder
// sentinels and the diag error kinds.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes an EDID blob: the base block, then every CTA-861 and
// DisplayID extension block. A fatal error in any block fails the whole
// parse with a *ParseError.
func Parse(data []byte, config Config) (*Info, error) {
	var log logging.LeveledLogger
	if config.LoggerFactory != nil {
		log = config.LoggerFactory.NewLogger("info")
	}

	lookup := config.Lookup
	if lookup == nil {
		lookup = pnp.Lookup
	}

	report := diag.NewLogger(nil, diag.Config{LoggerFactory: config.LoggerFactory})

	fail := func(err error) (*Info, error) {
		if log != nil {
			log.Warnf("Failed to parse EDID: %v", err)
		}
		return nil, &ParseError{Err: err, FailureMsg: report.String()}
	}

	e, err := edid.Parse(data, report.Section(0, baseBlockKind))
	if err != nil {
		return fail(err)
	}

	info := &Info{
		edid:   e,
		lookup: lookup,
	}

	for i := range e.Extensions {
		ext := &e.Extensions[i]
		block := i + 1

		switch ext.Tag() {
		case edid.ExtensionCEA:
			c, err := cta.Parse(ext.Data(), report.Section(block, ext.Tag().String()))
			if err != nil {
				return fail(fmt.Errorf("block %d: %w", block, err))
			}
			info.cta = append(info.cta, c)

		case edid.ExtensionDisplayID:
			// The section starts after the extension tag.
			d, err := displayid.Parse(ext.Data()[1:], report.Section(block, ext.Tag().String()))
			if err != nil {
				return fail(fmt.Errorf("block %d: %w", block, err))
			}
			info.displayID = append(info.displayID, d)
		}
	}

	info.failureMsg = report.String()
	info.colorPrimaries = deriveColorPrimaries(e)
	info.hdrStaticMetadata = deriveHDRStaticMetadata(info.cta)

	if log != nil {
		log.Debugf("Parsed EDID %d.%d: %d extension blocks, %d failures",
			e.Version, e.Revision, len(e.Extensions), report.Len())
	}

	return info, nil
}

// EDID returns the decoded EDID.
func (i *Info) EDID() *edid.EDID {
	return i.edid
}

// CTA returns the decoded CTA-861 extension blocks, in blob order.
func (i *Info) CTA() []*cta.CTA {
	return i.cta
}

// DisplayID returns the decoded DisplayID extension blocks, in blob order.
func (i *Info) DisplayID() []*displayid.DisplayID {
	return i.displayID
}

// FailureMsg returns the failure report, one "Block N, <kind>:" heading per
// non-conformant block. It is empty for a fully conformant blob.
func (i *Info) FailureMsg() string {
	return i.failureMsg
}
