// Package jsonld is a parser.Backend for JSON-LD built on json-gold.
//
// Documents are expanded and converted to RDF by json-gold, then mapped
// onto rdf terms through the parse's term factory. Remote contexts and IRI
// sources are fetched with the configured document loader, which by default
// honours HTTP caching headers.
package jsonld

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdfparse/internal/logger"
	"github.com/geoknoesis/rdfparse/parser"
	"github.com/geoknoesis/rdfparse/rdf"
)

const defaultGraph = "@default"

// Backend parses JSON-LD sources.
type Backend struct {
	loader ld.DocumentLoader
	mode   string
	log    *logger.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithDocumentLoader sets the loader used for remote contexts and IRI
// sources.
func WithDocumentLoader(l ld.DocumentLoader) Option {
	return func(b *Backend) {
		if l != nil {
			b.loader = l
		}
	}
}

// WithProcessingMode selects ld.JsonLd_1_0 or ld.JsonLd_1_1 semantics.
func WithProcessingMode(mode string) Option {
	return func(b *Backend) {
		b.mode = mode
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
		mode: ld.JsonLd_1_1,
		log:  logger.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.loader == nil {
		b.loader = ld.NewRFC7324CachingDocumentLoader(nil)
	}
	b.log = b.log.Named("jsonld")
	return b
}

// CheckContentType accepts JSON-LD and sources whose syntax is not known
// up front.
func (b *Backend) CheckContentType(c parser.Config) error {
	if s, ok := c.EffectiveSyntax(); ok {
		if s != rdf.SyntaxJSONLD {
			return fmt.Errorf("%w: %s", parser.ErrIncompatibleSyntax, s)
		}
		return nil
	}
	if ct, ok := c.ContentType(); ok && !isJSON(ct) {
		return fmt.Errorf("%w: content type %q", parser.ErrIncompatibleSyntax, ct)
	}
	return nil
}

// isJSON accepts application/json and +json media types besides
// application/ld+json.
func isJSON(ct string) bool {
	mt := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// Parse converts the source document to RDF and hands the statements to
// the target, default graph first and named graphs in name order.
func (b *Backend) Parse(s *parser.Snapshot) error {
	input, err := b.document(s)
	if err != nil {
		return err
	}

	opts := ld.NewJsonLdOptions("")
	if base, ok := s.Base(); ok {
		opts.Base = base.Value
	}
	opts.ProcessingMode = b.mode
	opts.DocumentLoader = b.loader

	out, err := ld.NewJsonLdProcessor().ToRDF(input, opts)
	if err != nil {
		return rdf.WrapParseError(rdf.SyntaxJSONLD, "", 0, 0, err)
	}
	dataset, ok := out.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("jsonld: unexpected ToRDF result %T", out)
	}
	return b.emit(s, dataset)
}

// document returns what json-gold takes as input: a decoded document for
// stream and file sources, the IRI itself for IRI sources.
func (b *Backend) document(s *parser.Snapshot) (any, error) {
	if src, ok := s.Source().(parser.IRISource); ok {
		return src.IRI.Value, nil
	}
	r, err := s.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	doc, err := ld.DocumentFromReader(r)
	if err != nil {
		return nil, rdf.WrapParseError(rdf.SyntaxJSONLD, "", 0, 0, err)
	}
	return doc, nil
}

func (b *Backend) emit(s *parser.Snapshot, dataset *ld.RDFDataset) error {
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		if name != defaultGraph {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{defaultGraph}, names...)

	m := termMapper{factory: s.TermFactory()}
	target := s.Target()
	n := 0
	for _, name := range names {
		for _, lq := range dataset.Graphs[name] {
			q, err := m.quad(lq, name)
			if err != nil {
				return rdf.WrapParseError(rdf.SyntaxJSONLD, "", 0, 0, err)
			}
			if err := target.Handle(q); err != nil {
				return err
			}
			n++
		}
	}
	b.log.Debug("%d statements in %d graph(s) from %s", n, len(dataset.Graphs), s.Source())
	return nil
}
