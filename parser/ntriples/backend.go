// Package ntriples is a parser.Backend for the line-based RDF syntaxes
// N-Triples and N-Quads, plus a Writer that serializes quads back to them.
package ntriples

import (
	"fmt"
	"io"
	"net/http"

	"github.com/geoknoesis/rdfparse/internal/logger"
	"github.com/geoknoesis/rdfparse/parser"
	"github.com/geoknoesis/rdfparse/rdf"
)

// DefaultMaxLineBytes bounds the length of a single statement.
const DefaultMaxLineBytes = 1 << 20

// Backend parses N-Triples and N-Quads sources.
type Backend struct {
	maxLineBytes int
	client       *http.Client
	log          *logger.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithMaxLineBytes limits how long a line may be. Zero or a negative value
// removes the limit.
func WithMaxLineBytes(n int) Option {
	return func(b *Backend) {
		b.maxLineBytes = n
	}
}

// WithHTTPClient sets the client used to fetch IRI sources.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) {
		if c != nil {
			b.client = c
		}
	}
}

// WithLogger sets the backend's logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// New returns a Backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		maxLineBytes: DefaultMaxLineBytes,
		client:       http.DefaultClient,
		log:          logger.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("ntriples")
	return b
}

// CheckContentType accepts N-Triples, N-Quads and sources whose syntax is
// not known up front.
func (b *Backend) CheckContentType(c parser.Config) error {
	if s, ok := c.EffectiveSyntax(); ok {
		if !s.LineBased() {
			return fmt.Errorf("%w: %s", parser.ErrIncompatibleSyntax, s)
		}
		return nil
	}
	if ct, ok := c.ContentType(); ok {
		return fmt.Errorf("%w: content type %q", parser.ErrIncompatibleSyntax, ct)
	}
	return nil
}

// Parse reads the snapshot's source and hands every statement to its
// target. Without a configured syntax, a fetched document's media type
// decides; otherwise the input is read as N-Quads, which accepts
// N-Triples too.
func (b *Backend) Parse(s *parser.Snapshot) error {
	syntax, known := s.EffectiveSyntax()

	var r io.ReadCloser
	var err error
	if src, isIRI := s.Source().(parser.IRISource); isIRI {
		var served rdf.Syntax
		r, served, err = b.fetch(src.IRI)
		if !known {
			syntax = served
		}
	} else {
		r, err = s.Open()
	}
	if err != nil {
		return err
	}
	defer r.Close()
	if syntax == "" {
		syntax = rdf.SyntaxNQuads
	}

	dec := newDecoder(r, syntax, s.TermFactory(), b.maxLineBytes)
	target := s.Target()
	n := 0
	for {
		q, err := dec.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := target.Handle(q); err != nil {
			return err
		}
		n++
	}
	b.log.Debug("%s: %d statements from %s", syntax.Title(), n, s.Source())
	return nil
}
