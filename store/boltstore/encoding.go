package boltstore

import (
	"encoding/json"
	"fmt"

	"github.com/geoknoesis/rdfparse/rdf"
)

// storedTerm is the JSON form of an rdf.Term.
type storedTerm struct {
	Kind     rdf.TermKind `json:"k"`
	Value    string       `json:"v"`
	Datatype string       `json:"dt,omitempty"`
	Lang     string       `json:"l,omitempty"`
}

type storedQuad struct {
	S storedTerm  `json:"s"`
	P string      `json:"p"`
	O storedTerm  `json:"o"`
	G *storedTerm `json:"g,omitempty"`
}

func encodeTerm(t rdf.Term) (storedTerm, error) {
	switch v := t.(type) {
	case rdf.IRI:
		return storedTerm{Kind: rdf.TermIRI, Value: v.Value}, nil
	case rdf.BlankNode:
		return storedTerm{Kind: rdf.TermBlankNode, Value: v.ID}, nil
	case rdf.Literal:
		return storedTerm{Kind: rdf.TermLiteral, Value: v.Lexical, Datatype: v.Datatype.Value, Lang: v.Lang}, nil
	default:
		return storedTerm{}, fmt.Errorf("boltstore: unsupported term %T", t)
	}
}

func (s storedTerm) term() (rdf.Term, error) {
	switch s.Kind {
	case rdf.TermIRI:
		return rdf.IRI{Value: s.Value}, nil
	case rdf.TermBlankNode:
		return rdf.BlankNode{ID: s.Value}, nil
	case rdf.TermLiteral:
		return rdf.Literal{Lexical: s.Value, Datatype: rdf.IRI{Value: s.Datatype}, Lang: s.Lang}, nil
	default:
		return nil, fmt.Errorf("boltstore: unknown term kind %d", s.Kind)
	}
}

func encodeQuad(q rdf.Quad) ([]byte, error) {
	s, err := encodeTerm(q.S)
	if err != nil {
		return nil, err
	}
	o, err := encodeTerm(q.O)
	if err != nil {
		return nil, err
	}
	sq := storedQuad{S: s, P: q.P.Value, O: o}
	if q.G != nil {
		g, err := encodeTerm(q.G)
		if err != nil {
			return nil, err
		}
		sq.G = &g
	}
	return json.Marshal(sq)
}

func decodeQuad(data []byte) (rdf.Quad, error) {
	var sq storedQuad
	if err := json.Unmarshal(data, &sq); err != nil {
		return rdf.Quad{}, fmt.Errorf("boltstore: decode: %w", err)
	}
	s, err := sq.S.term()
	if err != nil {
		return rdf.Quad{}, err
	}
	o, err := sq.O.term()
	if err != nil {
		return rdf.Quad{}, err
	}
	q := rdf.Quad{S: s, P: rdf.IRI{Value: sq.P}, O: o}
	if sq.G != nil {
		if q.G, err = sq.G.term(); err != nil {
			return rdf.Quad{}, err
		}
	}
	return q, nil
}
