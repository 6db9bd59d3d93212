// Package diag collects the non-fatal validation failures found while
// decoding a display identification blob.
//
// A Logger owns one report per top-level parse. Each decoded block opens a
// Scope; the scope heading ("Block N, <kind>:") is written lazily, on the
// first failure reported in that scope, so a fully conformant blob produces
// an empty report.
//
// Some rules only apply up to a given revision of the standard that
// defines the block. Scope.AddFailureUntil drops the failure when the
// scope's declared revision is newer than the rule's last revision.
package diag

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pion/logging"
)

// Config configures a Logger.
type Config struct {
	// LoggerFactory is the factory for creating loggers.
	// Every failure is mirrored to a "diag" logger at debug level.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Logger accumulates the failure report of a single parse call.
// It is not safe for concurrent use.
type Logger struct {
	w   io.Writer
	buf *bytes.Buffer
	err error
	n   int

	log logging.LeveledLogger
}

// NewLogger creates a Logger writing its report to w.
// If w is nil, the report is kept in memory and available via String.
func NewLogger(w io.Writer, config Config) *Logger {
	l := &Logger{w: w}
	if w == nil {
		l.buf = &bytes.Buffer{}
		l.w = l.buf
	}

	if config.LoggerFactory != nil {
		l.log = config.LoggerFactory.NewLogger("diag")
	}

	return l
}

// Section opens the failure scope of one block.
// Block 0 is the EDID base block, extension blocks follow in blob order.
func (l *Logger) Section(block int, kind string) *Scope {
	return &Scope{logger: l, block: block, kind: kind}
}

// String returns the report written so far.
// It is empty when the Logger writes to a caller-provided writer.
func (l *Logger) String() string {
	if l.buf == nil {
		return ""
	}
	return l.buf.String()
}

// Len returns the number of failures reported across all scopes.
func (l *Logger) Len() int {
	return l.n
}

// Err returns the first write error, wrapped in ErrIO.
func (l *Logger) Err() error {
	return l.err
}

func (l *Logger) printf(format string, args ...any) {
	if l.err != nil {
		return
	}
	if _, err := fmt.Fprintf(l.w, format, args...); err != nil {
		l.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
}

// Scope is the failure scope of a single block.
// A nil *Scope discards every failure.
type Scope struct {
	logger   *Logger
	block    int
	kind     string
	revision int
	opened   bool
	n        int
}

// SetRevision declares the standard revision of the block.
// It is set once the revision byte has been decoded.
func (s *Scope) SetRevision(revision int) {
	if s == nil {
		return
	}
	s.revision = revision
}

// Revision returns the declared revision of the block.
func (s *Scope) Revision() int {
	if s == nil {
		return 0
	}
	return s.revision
}

// Len returns the number of failures reported in this scope.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Err returns the write error of the owning Logger, if any.
func (s *Scope) Err() error {
	if s == nil {
		return nil
	}
	return s.logger.Err()
}

// AddFailure appends one failure line to the report.
func (s *Scope) AddFailure(format string, args ...any) {
	if s == nil {
		return
	}

	l := s.logger
	if !s.opened {
		l.printf("Block %d, %s:\n", s.block, s.kind)
		s.opened = true
	}

	msg := fmt.Sprintf(format, args...)
	l.printf("  %s\n", msg)
	s.n++
	l.n++

	if l.log != nil {
		l.log.Debugf("block %d (%s): %s", s.block, s.kind, msg)
	}
}

// AddFailureUntil appends one failure line unless the block revision is
// greater than maxRevision, i.e. the rule was relaxed in a later revision.
func (s *Scope) AddFailureUntil(maxRevision int, format string, args ...any) {
	if s == nil || s.revision > maxRevision {
		return
	}
	s.AddFailure(format, args...)
}
