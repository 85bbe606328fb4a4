package rdf

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// XSDString is the implicit datatype of simple literals.
const XSDString = "http://www.w3.org/2001/XMLSchema#string"

// RDFLangString is the datatype of language-tagged literals.
const RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI in angle brackets.
func (i IRI) String() string { return "<" + i.Value + ">" }

// IsZero reports whether the IRI is unset.
func (i IRI) IsZero() bool { return i.Value == "" }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier, unique within the factory that made it.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the literal in N-Triples notation.
func (l Literal) String() string {
	quoted := `"` + EscapeString(l.Lexical) + `"`
	if l.Lang != "" {
		return quoted + "@" + l.Lang
	}
	if l.Datatype.Value != "" && l.Datatype.Value != XSDString && l.Datatype.Value != RDFLangString {
		return quoted + "^^" + l.Datatype.String()
	}
	return quoted
}

// Triple is an RDF triple.
type Triple struct {
	S Term
	P IRI
	O Term
}

// String renders the triple as an N-Triples statement.
func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String() + " ."
}

// ToQuad converts a triple to a quad in the default graph.
func (t Triple) ToQuad() Quad {
	return Quad{S: t.S, P: t.P, O: t.O}
}

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P.Value == "" && q.O == nil && q.G == nil
}

// ToTriple extracts the triple from a quad (ignores graph).
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// String renders the quad as an N-Quads statement.
func (q Quad) String() string {
	if q.G == nil {
		return q.ToTriple().String()
	}
	return q.S.String() + " " + q.P.String() + " " + q.O.String() + " " + q.G.String() + " ."
}
