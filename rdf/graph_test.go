package rdf

import "testing"

func TestMemoryGraphDeduplicates(t *testing.T) {
	g := NewMemoryGraph()
	tr := Triple{S: IRI{Value: "urn:s"}, P: IRI{Value: "urn:p"}, O: Literal{Lexical: "o"}}
	for i := 0; i < 3; i++ {
		if err := g.AddTriple(tr); err != nil {
			t.Fatalf("AddTriple: %v", err)
		}
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 triple, got %d", g.Len())
	}
	got := g.Triples()
	got[0] = Triple{}
	if g.Triples()[0] != tr {
		t.Fatal("Triples should return a copy")
	}
}

func TestMemoryDatasetGraphs(t *testing.T) {
	d := NewMemoryDataset()
	s, p, o := IRI{Value: "urn:s"}, IRI{Value: "urn:p"}, IRI{Value: "urn:o"}
	g1 := IRI{Value: "urn:g1"}
	quads := []Quad{
		{S: s, P: p, O: o},
		{S: s, P: p, O: o, G: g1},
		{S: s, P: p, O: o, G: g1},
		{S: s, P: p, O: o, G: BlankNode{ID: "g2"}},
	}
	for _, q := range quads {
		if err := d.Add(q); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 quads, got %d", d.Len())
	}
	if n := len(d.Graph(nil)); n != 1 {
		t.Fatalf("default graph: %d quads", n)
	}
	if n := len(d.Graph(g1)); n != 1 {
		t.Fatalf("named graph: %d quads", n)
	}
	if n := len(d.Graph(IRI{Value: "urn:none"})); n != 0 {
		t.Fatalf("missing graph: %d quads", n)
	}
}

func TestQuadHandlerFunc(t *testing.T) {
	var got []Quad
	var h QuadHandler = QuadHandlerFunc(func(q Quad) error {
		got = append(got, q)
		return nil
	})
	q := Quad{S: IRI{Value: "urn:s"}, P: IRI{Value: "urn:p"}, O: IRI{Value: "urn:o"}}
	if err := h.Handle(q); err != nil || len(got) != 1 || got[0] != q {
		t.Fatalf("handler not called correctly: %v %v", err, got)
	}
}
