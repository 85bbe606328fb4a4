package rdf

import (
	"path/filepath"
	"strings"
)

// Syntax identifies a recognized RDF serialization syntax.
// The zero value means no syntax was recognized.
type Syntax string

const (
	SyntaxJSONLD   Syntax = "JSONLD"
	SyntaxTurtle   Syntax = "TURTLE"
	SyntaxNQuads   Syntax = "NQUADS"
	SyntaxNTriples Syntax = "NTRIPLES"
	SyntaxRDFa     Syntax = "RDFA"
	SyntaxRDFXML   Syntax = "RDFXML"
	SyntaxTriG     Syntax = "TRIG"
)

type syntaxInfo struct {
	title      string
	mediaType  string
	extensions []string
	dataset    bool
}

// The first extension of each entry is the canonical one.
var syntaxRegistry = map[Syntax]syntaxInfo{
	SyntaxJSONLD:   {title: "JSON-LD 1.0", mediaType: "application/ld+json", extensions: []string{".jsonld"}, dataset: true},
	SyntaxTurtle:   {title: "RDF 1.1 Turtle", mediaType: "text/turtle", extensions: []string{".ttl"}},
	SyntaxNQuads:   {title: "RDF 1.1 N-Quads", mediaType: "application/n-quads", extensions: []string{".nq"}, dataset: true},
	SyntaxNTriples: {title: "RDF 1.1 N-Triples", mediaType: "application/n-triples", extensions: []string{".nt"}},
	SyntaxRDFa:     {title: "HTML+RDFa 1.1", mediaType: "text/html", extensions: []string{".html"}},
	SyntaxRDFXML:   {title: "RDF 1.1 XML Syntax", mediaType: "application/rdf+xml", extensions: []string{".rdf"}},
	SyntaxTriG:     {title: "RDF 1.1 TriG", mediaType: "application/trig", extensions: []string{".trig"}, dataset: true},
}

// Syntaxes returns every recognized syntax in a stable order.
func Syntaxes() []Syntax {
	return []Syntax{SyntaxJSONLD, SyntaxTurtle, SyntaxNQuads, SyntaxNTriples, SyntaxRDFa, SyntaxRDFXML, SyntaxTriG}
}

// Known reports whether s is a recognized syntax.
func (s Syntax) Known() bool {
	_, ok := syntaxRegistry[s]
	return ok
}

// MediaType returns the canonical IANA media type, or "" for unknown syntaxes.
func (s Syntax) MediaType() string { return syntaxRegistry[s].mediaType }

// Title returns a human readable name.
func (s Syntax) Title() string { return syntaxRegistry[s].title }

// Extensions returns the file extensions, leading dot included.
func (s Syntax) Extensions() []string {
	exts := syntaxRegistry[s].extensions
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// SupportsDataset reports whether the syntax can carry named graphs.
func (s Syntax) SupportsDataset() bool { return syntaxRegistry[s].dataset }

// LineBased reports whether the syntax is self-contained per line and
// never needs a base IRI.
func (s Syntax) LineBased() bool {
	return s == SyntaxNTriples || s == SyntaxNQuads
}

// SyntaxByMediaType looks up a syntax by media type. Parameters such as
// "; charset=utf-8" and letter case are ignored.
func SyntaxByMediaType(mediaType string) (Syntax, bool) {
	mt := strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
	if mt == "" {
		return "", false
	}
	for _, s := range Syntaxes() {
		if syntaxRegistry[s].mediaType == mt {
			return s, true
		}
	}
	return "", false
}

// SyntaxByFileExtension looks up a syntax by extension, e.g. ".ttl".
func SyntaxByFileExtension(ext string) (Syntax, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, s := range Syntaxes() {
		for _, e := range syntaxRegistry[s].extensions {
			if e == ext {
				return s, true
			}
		}
	}
	return "", false
}

// SyntaxByPath guesses the syntax from the last extension of a file name,
// so "archive.tar.gz" is looked up as ".gz".
func SyntaxByPath(path string) (Syntax, bool) {
	return SyntaxByFileExtension(filepath.Ext(filepath.Base(path)))
}

// ParseSyntax normalizes a syntax name or common alias.
func ParseSyntax(value string) (Syntax, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return SyntaxTurtle, true
	case "trig":
		return SyntaxTriG, true
	case "ntriples", "n-triples", "nt":
		return SyntaxNTriples, true
	case "nquads", "n-quads", "nq":
		return SyntaxNQuads, true
	case "rdfxml", "rdf/xml", "rdf", "xml":
		return SyntaxRDFXML, true
	case "jsonld", "json-ld", "json":
		return SyntaxJSONLD, true
	case "rdfa", "html":
		return SyntaxRDFa, true
	default:
		return "", false
	}
}
