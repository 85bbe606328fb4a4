package parser

import (
	"fmt"
	"io"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Source is where a parse reads from. It is exactly one of StreamSource,
// FileSource or IRISource.
type Source interface {
	fmt.Stringer
	isSource()
}

// StreamSource reads from an already open byte stream. The caller owns the
// stream and closes it.
type StreamSource struct {
	Reader io.Reader
}

// FileSource reads from a local file, opened and closed by the parse.
type FileSource struct {
	Path string
}

// IRISource names a remote or logical document by absolute IRI.
type IRISource struct {
	IRI rdf.IRI
}

func (StreamSource) isSource() {}
func (FileSource) isSource()   {}
func (IRISource) isSource()    {}

func (s StreamSource) String() string { return fmt.Sprintf("stream(%T)", s.Reader) }
func (s FileSource) String() string   { return "file(" + s.Path + ")" }
func (s IRISource) String() string    { return "iri(" + s.IRI.Value + ")" }

// Target is where parsed statements go. It is exactly one of HandlerTarget,
// GraphTarget or DatasetTarget. Every target can also be driven one quad at
// a time through Handle.
type Target interface {
	rdf.QuadHandler
	isTarget()
}

// HandlerTarget passes each parsed quad to a callback, in document order, on
// the worker goroutine.
type HandlerTarget struct {
	Handler rdf.QuadHandler
}

// GraphTarget adds parsed statements to a graph, dropping graph names.
type GraphTarget struct {
	Graph rdf.Graph
}

// DatasetTarget adds parsed quads to a dataset, keeping graph names.
type DatasetTarget struct {
	Dataset rdf.Dataset
}

func (HandlerTarget) isTarget() {}
func (GraphTarget) isTarget()   {}
func (DatasetTarget) isTarget() {}

// Handle calls the callback.
func (t HandlerTarget) Handle(q rdf.Quad) error { return t.Handler.Handle(q) }

// Handle adds the triple part of q.
func (t GraphTarget) Handle(q rdf.Quad) error { return t.Graph.AddTriple(q.ToTriple()) }

// Handle adds q.
func (t DatasetTarget) Handle(q rdf.Quad) error { return t.Dataset.Add(q) }
