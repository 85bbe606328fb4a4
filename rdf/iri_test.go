package rdf

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidateIRI(t *testing.T) {
	tests := []struct {
		name    string
		iri     string
		wantErr bool
	}{
		{name: "http", iri: "http://example.org/resource"},
		{name: "urn", iri: "urn:example:resource"},
		{name: "query and fragment", iri: "http://example.org/r?x=1#frag"},
		{name: "relative path", iri: "path/to/resource"},
		{name: "fragment only", iri: "#frag"},
		{name: "non-ascii", iri: "http://例え.jp/パス"},
		{name: "empty", iri: "", wantErr: true},
		{name: "space", iri: "http://example.org/a b", wantErr: true},
		{name: "angle bracket", iri: "http://example.org/<a>", wantErr: true},
		{name: "quote", iri: `http://example.org/"a"`, wantErr: true},
		{name: "control char", iri: "http://example.org/\x01", wantErr: true},
		{name: "network path", iri: "//example.org/a", wantErr: true},
		{name: "scheme starting with digit", iri: "1http://example.org", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIRI(tt.iri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateIRI(%q) error = %v, wantErr %v", tt.iri, err, tt.wantErr)
			}
		})
	}
}

func TestCheckAbsolute(t *testing.T) {
	if err := CheckAbsolute("mailto:someone@example.org"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := CheckAbsolute("docs/a.ttl")
	if !errors.Is(err, ErrNotAbsolute) {
		t.Fatalf("expected ErrNotAbsolute, got %v", err)
	}
	if IsAbsoluteIRI("docs/a.ttl") || !IsAbsoluteIRI("file:///tmp/a.ttl") {
		t.Fatal("IsAbsoluteIRI disagrees with CheckAbsolute")
	}
}

func TestFileIRI(t *testing.T) {
	if _, err := FileIRI("relative/x.nt"); !errors.Is(err, ErrNotAbsolute) {
		t.Fatalf("expected ErrNotAbsolute for relative path, got %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "with space", "x.nt")
	iri, err := FileIRI(path)
	if err != nil {
		t.Fatalf("FileIRI: %v", err)
	}
	if !strings.HasPrefix(iri.Value, "file:///") {
		t.Fatalf("expected file:/// prefix, got %s", iri.Value)
	}
	if !strings.HasSuffix(iri.Value, "/with%20space/x.nt") {
		t.Fatalf("expected percent-encoded path, got %s", iri.Value)
	}
	if !IsAbsoluteIRI(iri.Value) {
		t.Fatalf("file IRI should be absolute: %s", iri.Value)
	}
	if runtime.GOOS != "windows" {
		iri, _ = FileIRI("/tmp/data.nt")
		if iri.Value != "file:///tmp/data.nt" {
			t.Fatalf("unexpected file IRI: %s", iri.Value)
		}
	}
}
