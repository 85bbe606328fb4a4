package jsonld

import (
	"fmt"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdfparse/rdf"
)

type termMapper struct {
	factory rdf.TermFactory
}

func (m termMapper) quad(q *ld.Quad, graph string) (rdf.Quad, error) {
	s, err := m.resource(q.Subject)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("subject: %w", err)
	}
	p, err := m.resource(q.Predicate)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("predicate: %w", err)
	}
	pred, ok := p.(rdf.IRI)
	if !ok {
		return rdf.Quad{}, fmt.Errorf("predicate %s is not an IRI", p)
	}
	o, err := m.term(q.Object)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("object: %w", err)
	}

	var g rdf.Term
	if graph != defaultGraph {
		if g, err = m.name(graph); err != nil {
			return rdf.Quad{}, fmt.Errorf("graph: %w", err)
		}
	}
	return rdf.Quad{S: s, P: pred, O: o, G: g}, nil
}

func (m termMapper) term(n ld.Node) (rdf.Term, error) {
	if lit, ok := n.(ld.Literal); ok {
		switch {
		case lit.Language != "":
			return m.factory.CreateLangLiteral(lit.Value, lit.Language), nil
		case lit.Datatype != "":
			dt, err := m.factory.CreateIRI(lit.Datatype)
			if err != nil {
				return nil, err
			}
			return m.factory.CreateTypedLiteral(lit.Value, dt), nil
		default:
			return m.factory.CreateLiteral(lit.Value), nil
		}
	}
	return m.resource(n)
}

func (m termMapper) resource(n ld.Node) (rdf.Term, error) {
	switch v := n.(type) {
	case ld.IRI:
		return m.factory.CreateIRI(v.Value)
	case ld.BlankNode:
		return m.factory.CreateBlankNode(strings.TrimPrefix(v.Attribute, "_:")), nil
	case nil:
		return nil, fmt.Errorf("missing term")
	default:
		return nil, fmt.Errorf("unexpected term %T", n)
	}
}

// name maps a graph name, which json-gold keys by IRI or "_:" label.
func (m termMapper) name(graph string) (rdf.Term, error) {
	if label, ok := strings.CutPrefix(graph, "_:"); ok {
		return m.factory.CreateBlankNode(label), nil
	}
	return m.factory.CreateIRI(graph)
}
