package ntriples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geoknoesis/rdfparse/rdf"
)

type decoder struct {
	reader   *bufio.Reader
	syntax   rdf.Syntax
	factory  rdf.TermFactory
	maxBytes int
	line     int
}

func newDecoder(r io.Reader, syntax rdf.Syntax, factory rdf.TermFactory, maxBytes int) *decoder {
	return &decoder{
		reader:   bufio.NewReader(r),
		syntax:   syntax,
		factory:  factory,
		maxBytes: maxBytes,
	}
}

// next returns the next statement, or io.EOF after the last one.
func (d *decoder) next() (rdf.Quad, error) {
	for {
		raw, err := d.readLine()
		if err != nil {
			if err == io.EOF {
				return rdf.Quad{}, io.EOF
			}
			return rdf.Quad{}, rdf.WrapParseError(d.syntax, "", d.line, 0, err)
		}
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		c := &cursor{input: line, factory: d.factory, quads: d.syntax == rdf.SyntaxNQuads}
		q, err := c.statement()
		if err != nil {
			return rdf.Quad{}, rdf.WrapParseError(d.syntax, line, d.line, c.pos+1, err)
		}
		return q, nil
	}
}

func (d *decoder) readLine() (string, error) {
	d.line++
	if d.maxBytes <= 0 {
		line, err := d.reader.ReadString('\n')
		if err == io.EOF && len(line) > 0 {
			return line, nil
		}
		return line, err
	}

	var buf []byte
	for {
		part, err := d.reader.ReadSlice('\n')
		buf = append(buf, part...)
		if len(buf) > d.maxBytes {
			return "", fmt.Errorf("%w (%d bytes)", rdf.ErrLineTooLong, d.maxBytes)
		}
		switch {
		case err == nil:
			return string(buf), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF && len(buf) > 0:
			return string(buf), nil
		default:
			return "", err
		}
	}
}

// cursor parses one statement.
type cursor struct {
	input   string
	pos     int
	factory rdf.TermFactory
	quads   bool
}

func (c *cursor) statement() (rdf.Quad, error) {
	subject, err := c.subject()
	if err != nil {
		return rdf.Quad{}, err
	}
	predicate, err := c.iri()
	if err != nil {
		return rdf.Quad{}, err
	}
	object, err := c.object()
	if err != nil {
		return rdf.Quad{}, err
	}

	var graph rdf.Term
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '.' {
		if !c.quads {
			return rdf.Quad{}, errors.New("graph name not allowed in N-Triples")
		}
		if graph, err = c.subject(); err != nil {
			return rdf.Quad{}, err
		}
	}
	if !c.consume('.') {
		return rdf.Quad{}, errors.New("expected '.' at end of statement")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '#' {
		return rdf.Quad{}, errors.New("unexpected content after '.'")
	}
	return rdf.Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

func (c *cursor) skipWS() {
	for c.pos < len(c.input) && (c.input[c.pos] == ' ' || c.input[c.pos] == '\t') {
		c.pos++
	}
}

func (c *cursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) peek() byte {
	c.skipWS()
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

// subject also parses graph names: an IRI or a blank node.
func (c *cursor) subject() (rdf.Term, error) {
	switch c.peek() {
	case '<':
		return c.iri()
	case '_':
		return c.blankNode()
	case 0:
		return nil, errors.New("unexpected end of line")
	default:
		return nil, errors.New("expected IRI or blank node")
	}
}

func (c *cursor) object() (rdf.Term, error) {
	if c.peek() == '"' {
		return c.literal()
	}
	return c.subject()
}

func (c *cursor) iri() (rdf.IRI, error) {
	if !c.consume('<') {
		return rdf.IRI{}, errors.New("expected IRI")
	}
	end := strings.IndexByte(c.input[c.pos:], '>')
	if end < 0 {
		return rdf.IRI{}, errors.New("unterminated IRI")
	}
	raw := c.input[c.pos : c.pos+end]
	value, err := rdf.UnescapeString(raw)
	if err != nil {
		return rdf.IRI{}, fmt.Errorf("IRI <%s>: %w", raw, err)
	}
	iri, err := c.factory.CreateIRI(value)
	if err != nil {
		return rdf.IRI{}, err
	}
	if err := rdf.CheckAbsolute(value); err != nil {
		return rdf.IRI{}, err
	}
	c.pos += end + 1
	return iri, nil
}

func (c *cursor) blankNode() (rdf.BlankNode, error) {
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return rdf.BlankNode{}, errors.New("expected blank node")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A trailing dot belongs to the statement, not the label.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return rdf.BlankNode{}, errors.New("blank node label missing")
	}
	return c.factory.CreateBlankNode(c.input[start:c.pos]), nil
}

func (c *cursor) literal() (rdf.Literal, error) {
	if !c.consume('"') {
		return rdf.Literal{}, errors.New("expected literal")
	}
	start := c.pos
	for {
		if c.pos >= len(c.input) {
			return rdf.Literal{}, errors.New("unterminated literal")
		}
		ch := c.input[c.pos]
		if ch == '\\' {
			c.pos += 2
			continue
		}
		if ch == '"' {
			break
		}
		c.pos++
	}
	lexical, err := rdf.UnescapeString(c.input[start:c.pos])
	if err != nil {
		return rdf.Literal{}, err
	}
	c.pos++

	switch {
	case strings.HasPrefix(c.input[c.pos:], "@"):
		c.pos++
		tagStart := c.pos
		for c.pos < len(c.input) && !isDelimiter(c.input[c.pos]) && c.input[c.pos] != '.' {
			c.pos++
		}
		tag := c.input[tagStart:c.pos]
		if !validLangTag(tag) {
			return rdf.Literal{}, fmt.Errorf("invalid language tag %q", tag)
		}
		return c.factory.CreateLangLiteral(lexical, tag), nil
	case strings.HasPrefix(c.input[c.pos:], "^^"):
		c.pos += 2
		dt, err := c.iri()
		if err != nil {
			return rdf.Literal{}, err
		}
		return c.factory.CreateTypedLiteral(lexical, dt), nil
	default:
		return c.factory.CreateLiteral(lexical), nil
	}
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '<', '"':
		return true
	default:
		return false
	}
}

// validLangTag checks the N-Triples LANGTAG production:
// [a-zA-Z]+ ('-' [a-zA-Z0-9]+)*
func validLangTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, part := range strings.Split(tag, "-") {
		if part == "" {
			return false
		}
		for j := 0; j < len(part); j++ {
			ch := part[j]
			letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
			digit := ch >= '0' && ch <= '9'
			if !letter && !(digit && i > 0) {
				return false
			}
		}
	}
	return true
}
