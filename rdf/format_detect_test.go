package rdf

import (
	"io"
	"strings"
	"testing"
)

func TestDetectSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Syntax
		ok    bool
	}{
		{"jsonld object", `{"@context": {}, "@id": "x"}`, SyntaxJSONLD, true},
		{"jsonld array", `  [{"@id": "x"}]`, SyntaxJSONLD, true},
		{"rdfxml", `<?xml version="1.0"?><rdf:RDF/>`, SyntaxRDFXML, true},
		{"turtle prefix", "@prefix ex: <http://example.org/> .\nex:s ex:p ex:o .", SyntaxTurtle, true},
		{"turtle sparql prefix", "PREFIX ex: <http://example.org/>\nex:s ex:p ex:o .", SyntaxTurtle, true},
		{"trig", "@prefix ex: <http://example.org/> .\nex:g { ex:s ex:p ex:o . }", SyntaxTriG, true},
		{"ntriples", "<http://a> <http://b> <http://c> .\n", SyntaxNTriples, true},
		{"ntriples literal", `<http://a> <http://b> "x y"^^<http://t> .`, SyntaxNTriples, true},
		{"ntriples lang", `_:b <http://b> "hi"@en .`, SyntaxNTriples, true},
		{"nquads", "<http://a> <http://b> \"c\" <http://g> .\n", SyntaxNQuads, true},
		{"comment first", "# header\n<http://a> <http://b> _:c _:g .", SyntaxNQuads, true},
		{"turtle without prefix", "<http://a> <http://b> [ <http://c> 1 ] .", SyntaxTurtle, true},
		{"empty", "   \n", "", false},
		{"garbage", "hello world", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, r, ok := DetectSyntax(strings.NewReader(tt.input))
			if got != tt.want || ok != tt.ok {
				t.Fatalf("DetectSyntax() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
			all, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(all) != tt.input {
				t.Fatalf("replayed input = %q, want %q", all, tt.input)
			}
		})
	}
}

func TestDetectSyntax_LongInput(t *testing.T) {
	line := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"
	input := strings.Repeat(line, 100)
	got, r, ok := DetectSyntax(strings.NewReader(input))
	if !ok || got != SyntaxNTriples {
		t.Fatalf("DetectSyntax() = %q, %v", got, ok)
	}
	all, _ := io.ReadAll(r)
	if len(all) != len(input) {
		t.Fatalf("replayed %d bytes, want %d", len(all), len(input))
	}
}
