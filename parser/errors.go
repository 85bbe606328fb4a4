package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/url"

	"github.com/geoknoesis/rdfparse/rdf"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeConstruction indicates a mutator rejected its argument.
	ErrCodeConstruction ErrorCode = "CONSTRUCTION_ERROR"
	// ErrCodeValidation indicates a Config failed validation before dispatch.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeFinalization indicates defaults could not be filled in.
	ErrCodeFinalization ErrorCode = "FINALIZATION_ERROR"
	// ErrCodeParse indicates the backend failed to interpret the source.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeIO indicates the source could not be opened or read.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeScheduler indicates the work could not be submitted.
	ErrCodeScheduler ErrorCode = "SCHEDULER_ERROR"
)

var (
	// ErrInvalidIRI indicates an IRI string could not be parsed or is not absolute.
	ErrInvalidIRI = errors.New("parser: invalid IRI")
	// ErrNoSource indicates no source has been set.
	ErrNoSource = errors.New("no source has been set")
	// ErrNoTarget indicates no target has been set.
	ErrNoTarget = errors.New("target has not been set")
	// ErrUnreadableSource indicates a source file cannot be read.
	ErrUnreadableSource = errors.New("can't read source file")
	// ErrBaseRequired indicates a stream source needs a base IRI for its syntax.
	ErrBaseRequired = errors.New("base IRI required for stream source")
	// ErrIncompatibleSyntax indicates the backend cannot parse the requested syntax.
	ErrIncompatibleSyntax = errors.New("syntax not supported by backend")
	// ErrUnsupportedSource indicates the backend cannot read this kind of source.
	ErrUnsupportedSource = errors.New("parser: unsupported source")
	// ErrPoolClosed indicates the scheduler no longer accepts work.
	ErrPoolClosed = errors.New("parser: pool closed")
	// ErrBackendPanic indicates the backend panicked during a parse.
	ErrBackendPanic = errors.New("parser: backend panic")
)

// ValidationError reports which check rejected a Config.
type ValidationError struct {
	Check string // "source", "target", "base" or "content-type"
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parser: invalid %s: %v", e.Check, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FinalizeError reports a failure to derive the base IRI of a file source.
type FinalizeError struct {
	Path string
	Err  error
}

func (e *FinalizeError) Error() string {
	return fmt.Sprintf("parser: resolve base for %s: %v", e.Path, e.Err)
}

func (e *FinalizeError) Unwrap() error { return e.Err }

// Code returns the error code for an error, or ErrCodeParse if unknown.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidIRI):
		return ErrCodeConstruction
	case errors.Is(err, ErrUnreadableSource):
		return ErrCodeIO
	case errors.Is(err, ErrPoolClosed):
		return ErrCodeScheduler
	}

	var finErr *FinalizeError
	if errors.As(err, &finErr) {
		return ErrCodeFinalization
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return ErrCodeValidation
	}
	var parseErr *rdf.ParseError
	if errors.As(err, &parseErr) {
		return ErrCodeParse
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrCodeIO
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return ErrCodeIO
	}
	return ErrCodeParse
}

func invalidIRI(value string, err error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidIRI, value, err)
}
