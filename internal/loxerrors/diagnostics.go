package loxerrors

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
)

// ExitCode maps the had-error flag to a process exit status.
func ExitCode(hadError bool) int {
	if hadError {
		return ExitDataErr
	}
	return ExitOK
}

// Diagnostics accumulates line-tagged errors reported by the scanner and the
// parser of a single run.
//
// Not thread safe. Use one instance per source being processed.
type Diagnostics struct {
	errs   []LineError
	logger zerolog.Logger
}

type DiagnosticsOption func(*Diagnostics)

// WithLogger attaches a logger receiving one debug event per report.
func WithLogger(logger zerolog.Logger) DiagnosticsOption {
	return func(d *Diagnostics) {
		d.logger = logger
	}
}

func NewDiagnostics(options ...DiagnosticsOption) *Diagnostics {
	d := &Diagnostics{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Report records message against line.
func (d *Diagnostics) Report(line int, message string) {
	d.ReportError(&reportedError{line: line, message: message})
}

// ReportError records an already line-tagged error.
func (d *Diagnostics) ReportError(err LineError) {
	d.errs = append(d.errs, err)
	d.logger.Debug().Int("line", err.Line()).Err(err).Msg("diagnostic reported")
}

func (d *Diagnostics) HadError() bool {
	return len(d.errs) > 0
}

// Errors returns the recorded errors in report order.
func (d *Diagnostics) Errors() []LineError {
	return d.errs
}

// Err joins every recorded error, nil when none were reported.
func (d *Diagnostics) Err() error {
	if len(d.errs) == 0 {
		return nil
	}
	errs := make([]error, len(d.errs))
	for i, err := range d.errs {
		errs[i] = err
	}
	return errors.Join(errs...)
}

func (d *Diagnostics) ExitCode() int {
	return ExitCode(d.HadError())
}

func (d *Diagnostics) Reset() {
	d.errs = nil
}

type reportedError struct {
	line    int
	message string
}

// Error implements error.
func (e *reportedError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.line, e.message)
}

// Line implements LineError.
func (e *reportedError) Line() int {
	return e.line
}

var _ LineError = (*reportedError)(nil)
