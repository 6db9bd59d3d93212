package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"
)

// Options holds the CLI flags.
type Options struct {
	// LogLevel is the pion/logging level of the decoder logs, written to
	// stderr.
	LogLevel string

	// Strict makes a non-conformant blob exit with exitNonConformant.
	Strict bool

	// Path of the EDID blob. If empty, the blob is read from stdin.
	Path string
}

// DefaultOptions returns Options with the default flag values.
func DefaultOptions() Options {
	return Options{
		LogLevel: "warn",
	}
}

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// parseFlags parses the command line:
//
//	-log-level  disabled, error, warn, info, debug or trace (default: warn)
//	-strict     exit with status 3 if the blob is not conformant
//
// An optional positional argument names the blob file.
func parseFlags(args []string, stderr io.Writer) (Options, error) {
	o := DefaultOptions()

	fs := flag.NewFlagSet("di-edid-decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: di-edid-decode [options] [file]")
		fs.PrintDefaults()
	}

	fs.Func("log-level", fmt.Sprintf("Log level (default: %s)", o.LogLevel), func(s string) error {
		s = strings.ToLower(s)
		if _, ok := logLevels[s]; !ok {
			return fmt.Errorf("unknown log level %q", s)
		}
		o.LogLevel = s
		return nil
	})
	fs.BoolVar(&o.Strict, "strict", o.Strict, "Exit with status 3 if the EDID is not conformant")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		o.Path = fs.Arg(0)
	default:
		fs.Usage()
		return o, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	return o, nil
}

func newLoggerFactory(o Options, w io.Writer) logging.LoggerFactory {
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = w
	factory.DefaultLogLevel = logLevels[o.LogLevel]
	return factory
}
