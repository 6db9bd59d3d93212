// di-edid-decode decodes an EDID blob and prints it as YAML.
//
// The decoded base block, the CTA-861 and DisplayID extension blocks and
// the derived display properties are written to stdout, followed by the
// failure report of non-conformant blocks.
//
// Usage:
//
//	di-edid-decode [options] [file]
//
// Options:
//
//	-log-level  disabled, error, warn, info, debug or trace (default: warn)
//	-strict     exit with status 3 if the EDID is not conformant
//
// The blob is read from stdin when no file is given.
//
// Example:
//
//	di-edid-decode -strict /sys/class/drm/card0-HDMI-A-1/edid
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/backkem/displayinfo/pkg/info"
	"gopkg.in/yaml.v3"
)

// Exit codes.
const (
	exitOK            = 0
	exitParseFailure  = 1
	exitUsage         = 2
	exitNonConformant = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "di-edid-decode: %v\n", err)
		return exitUsage
	}

	data, err := readBlob(opts.Path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "di-edid-decode: %v\n", err)
		return exitParseFailure
	}

	di, err := info.Parse(data, info.Config{
		LoggerFactory: newLoggerFactory(opts, stderr),
	})
	if err != nil {
		fmt.Fprintf(stderr, "di-edid-decode: failed to parse EDID: %v\n", err)
		var perr *info.ParseError
		if errors.As(err, &perr) && perr.FailureMsg != "" {
			fmt.Fprint(stderr, perr.FailureMsg)
		}
		return exitParseFailure
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(di)); err != nil {
		fmt.Fprintf(stderr, "di-edid-decode: write output: %v\n", err)
		return exitParseFailure
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(stderr, "di-edid-decode: write output: %v\n", err)
		return exitParseFailure
	}

	if opts.Strict && di.FailureMsg() != "" {
		fmt.Fprintln(stderr, "di-edid-decode: EDID conformity: FAIL")
		return exitNonConformant
	}

	return exitOK
}

func readBlob(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}
