package rdf

import (
	"bufio"
	"io"
	"strings"
)

// sniffLen is how much of the input DetectSyntax looks at.
const sniffLen = 512

// DetectSyntax guesses the syntax of r from its first bytes. The returned
// reader yields the whole input, including the bytes that were inspected,
// and must be used in place of r.
//
// Detection is heuristic: JSON-LD, RDF/XML, Turtle or TriG directives and
// the line-based syntaxes are told apart by their leading tokens.
func DetectSyntax(r io.Reader) (Syntax, io.Reader, bool) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", br, false
	}
	s, ok := sniff(string(head))
	return s, br, ok
}

func sniff(sample string) (Syntax, bool) {
	sample = strings.TrimSpace(stripComments(sample))
	if sample == "" {
		return "", false
	}

	switch sample[0] {
	case '{', '[':
		return SyntaxJSONLD, true
	}
	if strings.HasPrefix(sample, "<?xml") || strings.HasPrefix(sample, "<rdf:RDF") {
		return SyntaxRDFXML, true
	}

	upper := strings.ToUpper(sample)
	for _, d := range []string{"@PREFIX", "PREFIX", "@BASE", "BASE", "@VERSION", "VERSION"} {
		if strings.HasPrefix(upper, d) {
			if strings.Contains(sample, "{") {
				return SyntaxTriG, true
			}
			return SyntaxTurtle, true
		}
	}

	if strings.HasPrefix(sample, "<") || strings.HasPrefix(sample, "_:") {
		first, _, _ := strings.Cut(sample, "\n")
		switch statementTerms(first) {
		case 3:
			return SyntaxNTriples, true
		case 4:
			return SyntaxNQuads, true
		}
		if strings.ContainsAny(sample, "[(;") {
			return SyntaxTurtle, true
		}
	}
	return "", false
}

// stripComments drops whole-line '#' comments.
func stripComments(s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// statementTerms counts the terms of one N-Triples or N-Quads statement,
// or returns 0 if the line does not look like one.
func statementTerms(line string) int {
	line = strings.TrimSpace(line)
	if !strings.HasSuffix(line, ".") {
		return 0
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, "."))
	n := 0
	for line != "" {
		var end int
		switch {
		case line[0] == '<':
			end = strings.IndexByte(line, '>') + 1
		case strings.HasPrefix(line, "_:"):
			end = strings.IndexAny(line, " \t")
			if end < 0 {
				end = len(line)
			}
		case line[0] == '"':
			end = closingQuote(line)
			if end > 0 {
				for end < len(line) && line[end] != ' ' && line[end] != '\t' {
					if line[end] == '<' {
						end += strings.IndexByte(line[end:], '>') + 1
						break
					}
					end++
				}
			}
		default:
			return 0
		}
		if end <= 0 {
			return 0
		}
		n++
		line = strings.TrimSpace(line[end:])
	}
	return n
}

// closingQuote returns the index just past the closing quote of the
// literal at the start of s, or 0.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return 0
}
