package parser

import (
	"io"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Only used for turning strings into IRIs.
var internalFactory = rdf.NewSimpleFactory()

// Config describes one parse: source, target, syntax, base IRI and term
// factory. The zero value is an empty configuration.
//
// Config has value semantics. Every With method returns a new Config and
// leaves its receiver untouched, so a Config can be shared between
// goroutines and reused as a branching point for several parses.
type Config struct {
	factory     rdf.TermFactory
	syntax      rdf.Syntax
	contentType string
	base        rdf.IRI
	source      Source
	target      Target
}

// NewConfig returns an empty Config.
func NewConfig() Config {
	return Config{}
}

// WithTermFactory sets the factory used to create terms. Without one, each
// parse gets a fresh factory so blank nodes of different parses never collide.
func (c Config) WithTermFactory(f rdf.TermFactory) Config {
	c.factory = f
	return c
}

// WithSyntax sets the syntax and derives the content type from it.
// The empty syntax clears both.
func (c Config) WithSyntax(s rdf.Syntax) Config {
	c.syntax = s
	c.contentType = s.MediaType()
	return c
}

// WithContentType sets the media type and derives the syntax from it when
// the registry knows the media type; otherwise no syntax is recorded.
func (c Config) WithContentType(mediaType string) Config {
	c.contentType = mediaType
	c.syntax, _ = rdf.SyntaxByMediaType(mediaType)
	return c
}

// WithBase sets the base IRI used to resolve relative references.
// On error the receiver is returned unchanged.
func (c Config) WithBase(base string) (Config, error) {
	iri, err := internalFactory.CreateIRI(base)
	if err != nil {
		return c, invalidIRI(base, err)
	}
	return c.WithBaseIRI(iri)
}

// WithBaseIRI sets the base IRI, which must be absolute.
// The zero IRI clears the base.
func (c Config) WithBaseIRI(base rdf.IRI) (Config, error) {
	if !base.IsZero() {
		if err := rdf.CheckAbsolute(base.Value); err != nil {
			return c, invalidIRI(base.Value, err)
		}
	}
	c.base = base
	return c, nil
}

// WithSourceStream reads the document from r, replacing any other source.
// A nil reader clears the source.
func (c Config) WithSourceStream(r io.Reader) Config {
	if r == nil {
		c.source = nil
		return c
	}
	c.source = StreamSource{Reader: r}
	return c
}

// WithSourcePath reads the document from a local file, replacing any other
// source. An empty path clears the source.
func (c Config) WithSourcePath(path string) Config {
	if path == "" {
		c.source = nil
		return c
	}
	c.source = FileSource{Path: path}
	return c
}

// WithSource reads the document from an absolute IRI, replacing any other
// source. On error the receiver is returned unchanged.
func (c Config) WithSource(iri string) (Config, error) {
	parsed, err := internalFactory.CreateIRI(iri)
	if err != nil {
		return c, invalidIRI(iri, err)
	}
	return c.WithSourceIRI(parsed)
}

// WithSourceIRI reads the document from an absolute IRI, replacing any
// other source. The zero IRI clears the source.
func (c Config) WithSourceIRI(iri rdf.IRI) (Config, error) {
	if iri.IsZero() {
		c.source = nil
		return c, nil
	}
	if err := rdf.CheckAbsolute(iri.Value); err != nil {
		return c, invalidIRI(iri.Value, err)
	}
	c.source = IRISource{IRI: iri}
	return c, nil
}

// WithTarget sends every parsed quad to h, replacing any other target.
// A nil handler clears the target.
func (c Config) WithTarget(h rdf.QuadHandler) Config {
	if h == nil {
		c.target = nil
		return c
	}
	c.target = HandlerTarget{Handler: h}
	return c
}

// WithTargetFunc is WithTarget for a plain function.
func (c Config) WithTargetFunc(fn func(rdf.Quad) error) Config {
	if fn == nil {
		return c.WithTarget(nil)
	}
	return c.WithTarget(rdf.QuadHandlerFunc(fn))
}

// WithTargetGraph adds parsed triples to g, replacing any other target.
// A nil graph clears the target.
func (c Config) WithTargetGraph(g rdf.Graph) Config {
	if g == nil {
		c.target = nil
		return c
	}
	c.target = GraphTarget{Graph: g}
	return c
}

// WithTargetDataset adds parsed quads to d, replacing any other target.
// A nil dataset clears the target.
func (c Config) WithTargetDataset(d rdf.Dataset) Config {
	if d == nil {
		c.target = nil
		return c
	}
	c.target = DatasetTarget{Dataset: d}
	return c
}

// TermFactory returns the configured factory, if any.
func (c Config) TermFactory() (rdf.TermFactory, bool) {
	return c.factory, c.factory != nil
}

// Syntax returns the recognized syntax, if any. When set through
// WithContentType, it is empty for unrecognized media types.
func (c Config) Syntax() (rdf.Syntax, bool) {
	return c.syntax, c.syntax != ""
}

// ContentType returns the media type, if any.
func (c Config) ContentType() (string, bool) {
	return c.contentType, c.contentType != ""
}

// EffectiveSyntax returns the configured syntax, falling back to a guess
// from the extension of a file source.
func (c Config) EffectiveSyntax() (rdf.Syntax, bool) {
	if c.syntax != "" {
		return c.syntax, true
	}
	if c.contentType == "" {
		if fs, ok := c.source.(FileSource); ok {
			return GuessSyntax(fs.Path)
		}
	}
	return "", false
}

// Base returns the base IRI, if any.
func (c Config) Base() (rdf.IRI, bool) {
	return c.base, !c.base.IsZero()
}

// Source returns the configured source, or nil.
func (c Config) Source() Source { return c.source }

// SourceStream returns the stream source, if that is the source kind.
func (c Config) SourceStream() (io.Reader, bool) {
	s, ok := c.source.(StreamSource)
	return s.Reader, ok
}

// SourcePath returns the file source, if that is the source kind.
func (c Config) SourcePath() (string, bool) {
	s, ok := c.source.(FileSource)
	return s.Path, ok
}

// SourceIRI returns the IRI source, if that is the source kind.
func (c Config) SourceIRI() (rdf.IRI, bool) {
	s, ok := c.source.(IRISource)
	return s.IRI, ok
}

// Target returns the configured target, or nil.
func (c Config) Target() Target { return c.target }

// TargetGraph returns the graph target, if that is the target kind.
func (c Config) TargetGraph() (rdf.Graph, bool) {
	t, ok := c.target.(GraphTarget)
	return t.Graph, ok
}

// TargetDataset returns the dataset target, if that is the target kind.
func (c Config) TargetDataset() (rdf.Dataset, bool) {
	t, ok := c.target.(DatasetTarget)
	return t.Dataset, ok
}

// GuessSyntax guesses the syntax from the last extension of path; the
// extension of "archive.tar.gz" is ".gz".
func GuessSyntax(path string) (rdf.Syntax, bool) {
	return rdf.SyntaxByPath(path)
}
