package rdf

import "testing"

func TestTermKindsAndStrings(t *testing.T) {
	iri := IRI{Value: "http://example.org/s"}
	if iri.Kind() != TermIRI {
		t.Fatalf("expected IRI kind")
	}
	if iri.String() != "<http://example.org/s>" {
		t.Fatalf("unexpected IRI string: %s", iri.String())
	}

	blank := BlankNode{ID: "b1"}
	if blank.Kind() != TermBlankNode {
		t.Fatalf("expected blank node kind")
	}
	if blank.String() != "_:b1" {
		t.Fatalf("unexpected blank node string: %s", blank.String())
	}

	cases := []struct {
		lit  Literal
		want string
	}{
		{Literal{Lexical: "plain"}, `"plain"`},
		{Literal{Lexical: "plain", Datatype: IRI{Value: XSDString}}, `"plain"`},
		{Literal{Lexical: "hi", Lang: "en"}, `"hi"@en`},
		{Literal{Lexical: "hi", Lang: "en", Datatype: IRI{Value: RDFLangString}}, `"hi"@en`},
		{Literal{Lexical: "1", Datatype: IRI{Value: "http://example.org/int"}}, `"1"^^<http://example.org/int>`},
		{Literal{Lexical: "say \"hi\"\n"}, `"say \"hi\"\n"`},
		{Literal{Lexical: "café"}, `"café"`},
	}
	for _, c := range cases {
		if c.lit.Kind() != TermLiteral {
			t.Fatalf("expected literal kind")
		}
		if got := c.lit.String(); got != c.want {
			t.Fatalf("literal %#v: got %s want %s", c.lit, got, c.want)
		}
	}
}

func TestQuadIsZero(t *testing.T) {
	var q Quad
	if !q.IsZero() {
		t.Fatal("expected zero quad")
	}
	q.S = IRI{Value: "http://example.org/s"}
	if q.IsZero() {
		t.Fatal("expected non-zero quad")
	}
}

func TestQuadStrings(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	o := Literal{Lexical: "o"}

	tr := Triple{S: s, P: p, O: o}
	if got := tr.String(); got != `<http://example.org/s> <http://example.org/p> "o" .` {
		t.Fatalf("unexpected triple: %s", got)
	}
	q := tr.ToQuad()
	if !q.InDefaultGraph() {
		t.Fatal("expected default graph")
	}
	if q.String() != tr.String() {
		t.Fatalf("default graph quad should render as triple: %s", q.String())
	}

	q.G = BlankNode{ID: "g"}
	if got := q.String(); got != `<http://example.org/s> <http://example.org/p> "o" _:g .` {
		t.Fatalf("unexpected quad: %s", got)
	}
	if q.ToTriple() != tr {
		t.Fatal("ToTriple should drop the graph name")
	}
}
