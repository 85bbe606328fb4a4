package ntriples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Writer serializes quads as N-Quads or N-Triples, one statement per line.
// It implements rdf.QuadHandler, so it can be a parse target directly.
// It is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	syntax rdf.Syntax
	err    error
}

// NewWriter returns a Writer for syntax, which must be rdf.SyntaxNQuads or
// rdf.SyntaxNTriples. N-Triples output drops graph names.
func NewWriter(w io.Writer, syntax rdf.Syntax) (*Writer, error) {
	if !syntax.LineBased() {
		return nil, fmt.Errorf("%w: %s", rdf.ErrUnsupportedSyntax, syntax)
	}
	return &Writer{w: bufio.NewWriter(w), syntax: syntax}, nil
}

// Handle writes q. After a write error every later call returns it.
func (w *Writer) Handle(q rdf.Quad) error {
	if q.S == nil || q.P.IsZero() || q.O == nil {
		return errors.New("ntriples: incomplete statement")
	}
	if w.syntax == rdf.SyntaxNTriples {
		q.G = nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.WriteString(q.String()); err != nil {
		w.err = err
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.err = err
	}
	return w.err
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
