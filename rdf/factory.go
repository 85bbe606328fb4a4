package rdf

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// TermFactory creates RDF terms for a parse session.
//
// Blank nodes created from the same label by one factory are equal; the same
// label given to two different factories yields distinct blank nodes. A parse
// therefore needs its own factory unless the caller explicitly wants blank
// nodes shared across parses.
type TermFactory interface {
	// CreateIRI validates value and returns it as an IRI.
	CreateIRI(value string) (IRI, error)
	// CreateBlankNode returns the blank node for a document-scoped label.
	CreateBlankNode(label string) BlankNode
	// NewBlankNode returns a blank node that is distinct from all others.
	NewBlankNode() BlankNode
	// CreateLiteral returns a simple xsd:string literal.
	CreateLiteral(lexical string) Literal
	// CreateTypedLiteral returns a literal with an explicit datatype.
	CreateTypedLiteral(lexical string, datatype IRI) Literal
	// CreateLangLiteral returns a language-tagged literal.
	CreateLangLiteral(lexical, lang string) Literal
}

// SimpleFactory is the default TermFactory. It is safe for concurrent use.
type SimpleFactory struct {
	salt string

	mu      sync.Mutex
	counter int
	labels  map[string]BlankNode
}

// NewSimpleFactory returns a factory with a fresh blank node namespace.
func NewSimpleFactory() *SimpleFactory {
	return &SimpleFactory{
		salt:   uuid.NewString(),
		labels: make(map[string]BlankNode),
	}
}

// CreateIRI validates value and returns it as an IRI. Relative references
// are accepted here; absoluteness is the caller's policy.
func (f *SimpleFactory) CreateIRI(value string) (IRI, error) {
	if err := ValidateIRI(value); err != nil {
		return IRI{}, err
	}
	return IRI{Value: value}, nil
}

// CreateBlankNode returns the blank node for label within this factory.
func (f *SimpleFactory) CreateBlankNode(label string) BlankNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.labels[label]; ok {
		return b
	}
	b := f.next()
	f.labels[label] = b
	return b
}

// NewBlankNode returns a blank node that no label maps to.
func (f *SimpleFactory) NewBlankNode() BlankNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next()
}

func (f *SimpleFactory) next() BlankNode {
	f.counter++
	return BlankNode{ID: fmt.Sprintf("b%d-%s", f.counter, f.salt)}
}

// CreateLiteral returns a simple literal.
func (f *SimpleFactory) CreateLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: IRI{Value: XSDString}}
}

// CreateTypedLiteral returns a typed literal.
func (f *SimpleFactory) CreateTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype.IsZero() {
		return f.CreateLiteral(lexical)
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// CreateLangLiteral returns a language-tagged literal.
func (f *SimpleFactory) CreateLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Datatype: IRI{Value: RDFLangString}, Lang: lang}
}
