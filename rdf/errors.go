package rdf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("rdf: line exceeds configured limit")
	// ErrUnsupportedSyntax indicates no parser handles the requested syntax.
	ErrUnsupportedSyntax = errors.New("rdf: unsupported syntax")
)

// ParseError provides structured context for parse failures.
type ParseError struct {
	Syntax    Syntax // Syntax being parsed
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	if e.Syntax != "" {
		msg.WriteString(strings.ToLower(string(e.Syntax)))
	} else {
		msg.WriteString("rdf")
	}
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	if e.Err != nil {
		msg.WriteString(e.Err.Error())
	} else {
		msg.WriteString("parse error")
	}
	if excerpt := e.excerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

func (e *ParseError) excerpt() string {
	const maxExcerptLen = 80
	if len(e.Statement) > maxExcerptLen {
		return e.Statement[:maxExcerptLen] + "..."
	}
	return e.Statement
}

func (e *ParseError) Unwrap() error { return e.Err }

// WrapParseError adds syntax and position context to err. An existing
// ParseError keeps its position when the new one is unknown.
func WrapParseError(syntax Syntax, statement string, line, column int, err error) error {
	if err == nil {
		return nil
	}
	var inner *ParseError
	if errors.As(err, &inner) {
		if line == 0 {
			line = inner.Line
		}
		if column == 0 {
			column = inner.Column
		}
		if statement == "" {
			statement = inner.Statement
		}
		err = inner.Err
	}
	return &ParseError{Syntax: syntax, Statement: statement, Line: line, Column: column, Err: err}
}
