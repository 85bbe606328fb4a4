package rdf

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrNotAbsolute is returned when an IRI has no scheme.
var ErrNotAbsolute = errors.New("rdf: IRI is not absolute")

// ValidateIRI performs a basic syntax check of an IRI string.
// Relative references are accepted; use CheckAbsolute to require a scheme.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	for i, r := range iri {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return fmt.Errorf("invalid control character at position %d in IRI: %q", i, iri)
		}
		switch r {
		case '<', '>', '"', ' ':
			return fmt.Errorf("invalid character %q at position %d in IRI (should be percent-encoded): %s", r, i, iri)
		}
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" && strings.HasPrefix(iri, "//") {
		return fmt.Errorf("relative IRI without scheme: %s", iri)
	}
	if parsed.Scheme != "" {
		first := parsed.Scheme[0]
		if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
			return fmt.Errorf("scheme must start with a letter: %s", iri)
		}
	}
	return nil
}

// IsAbsoluteIRI reports whether iri is well formed and carries a scheme.
func IsAbsoluteIRI(iri string) bool {
	return CheckAbsolute(iri) == nil
}

// CheckAbsolute validates iri and requires it to be absolute.
func CheckAbsolute(iri string) error {
	if err := ValidateIRI(iri); err != nil {
		return err
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: %s", ErrNotAbsolute, iri)
	}
	return nil
}

// FileIRI returns the file:// IRI for an absolute filesystem path.
// The path is used as given; callers resolve symlinks beforehand.
func FileIRI(path string) (IRI, error) {
	if !filepath.IsAbs(path) {
		return IRI{}, fmt.Errorf("%w: path %q is relative", ErrNotAbsolute, path)
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows volume paths such as C:/data
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return IRI{Value: u.String()}, nil
}
