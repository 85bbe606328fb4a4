package rdf

import (
	"errors"
	"strings"
)

const (
	surrogateHighStart = 0xD800
	surrogateHighEnd   = 0xDBFF
	surrogateLowStart  = 0xDC00
	surrogateLowEnd    = 0xDFFF
	surrogateBase      = 0x10000
)

var errInvalidEscape = errors.New("invalid escape sequence")

// EscapeString escapes s for use between double quotes in N-Triples and
// N-Quads. Only the characters the grammar requires are escaped.
func EscapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// UnescapeString decodes the escape sequences of an RDF string literal:
// \t \b \n \r \f \" \' \\, \uXXXX (including surrogate pairs) and \UXXXXXXXX.
func UnescapeString(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for pos := 0; pos < len(s); {
		ch := s[pos]
		if ch != '\\' {
			b.WriteByte(ch)
			pos++
			continue
		}
		if pos+1 >= len(s) {
			return "", errors.New("unterminated escape")
		}
		switch next := s[pos+1]; next {
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case '"', '\'', '\\':
			b.WriteByte(next)
		case 'u':
			n, err := unescapeUChar(&b, s, pos)
			if err != nil {
				return "", err
			}
			pos += n
			continue
		case 'U':
			r, ok := decodeHex(s, pos+2, 8)
			if !ok || !validCodePoint(r) {
				return "", errInvalidEscape
			}
			b.WriteRune(r)
			pos += 10
			continue
		default:
			return "", errInvalidEscape
		}
		pos += 2
	}
	return b.String(), nil
}

func unescapeUChar(b *strings.Builder, s string, pos int) (int, error) {
	r, ok := decodeHex(s, pos+2, 4)
	if !ok {
		return 0, errInvalidEscape
	}
	switch {
	case r >= surrogateHighStart && r <= surrogateHighEnd:
		if pos+12 > len(s) || s[pos+6] != '\\' || s[pos+7] != 'u' {
			return 0, errInvalidEscape
		}
		low, ok := decodeHex(s, pos+8, 4)
		if !ok || low < surrogateLowStart || low > surrogateLowEnd {
			return 0, errInvalidEscape
		}
		b.WriteRune(surrogateBase + (r-surrogateHighStart)<<10 + (low - surrogateLowStart))
		return 12, nil
	case r >= surrogateLowStart && r <= surrogateLowEnd:
		return 0, errInvalidEscape
	}
	b.WriteRune(r)
	return 6, nil
}

// decodeHex reads n hex digits of s starting at start.
func decodeHex(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	var r rune
	for i := start; i < start+n; i++ {
		ch := s[i]
		var d byte
		switch {
		case ch >= '0' && ch <= '9':
			d = ch - '0'
		case ch >= 'a' && ch <= 'f':
			d = ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			d = ch - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

func validCodePoint(r rune) bool {
	return r <= 0x10FFFF && (r < surrogateHighStart || r > surrogateLowEnd)
}
