package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfparse/rdf"
)

func discard(rdf.Quad) error { return nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireValidationError(t *testing.T, err error, check string, target error) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "want *ValidationError, got %T: %v", err, err)
	assert.Equal(t, check, ve.Check)
	assert.ErrorIs(t, err, target)
}

func TestValidate_NoSource(t *testing.T) {
	err := NewConfig().WithTargetFunc(discard).Validate()
	requireValidationError(t, err, "source", ErrNoSource)
	assert.Equal(t, ErrCodeValidation, Code(err))
}

func TestValidate_SourceCheckedBeforeTarget(t *testing.T) {
	err := NewConfig().Validate()
	requireValidationError(t, err, "source", ErrNoSource)
}

func TestValidate_UnreadableFile(t *testing.T) {
	dir := t.TempDir()

	err := NewConfig().
		WithSourcePath(filepath.Join(dir, "missing.nt")).
		WithTargetFunc(discard).
		Validate()
	requireValidationError(t, err, "source", ErrUnreadableSource)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, ErrCodeIO, Code(err))

	err = NewConfig().WithSourcePath(dir).WithTargetFunc(discard).Validate()
	requireValidationError(t, err, "source", ErrUnreadableSource)
}

func TestValidate_ReadableFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.ttl", "")
	err := NewConfig().WithSourcePath(path).WithTargetFunc(discard).Validate()
	assert.NoError(t, err, "file sources never need an explicit base")
}

func TestValidate_NoTarget(t *testing.T) {
	err := NewConfig().WithSourceStream(strings.NewReader("")).WithSyntax(rdf.SyntaxNTriples).Validate()
	requireValidationError(t, err, "target", ErrNoTarget)
}

func TestValidate_BaseRequirement(t *testing.T) {
	stream := NewConfig().WithSourceStream(strings.NewReader("")).WithTargetFunc(discard)
	withBase, err := stream.WithBase("http://example.org/")
	require.NoError(t, err)
	iriSource, err := NewConfig().WithTargetFunc(discard).WithSource("http://example.org/doc.ttl")
	require.NoError(t, err)

	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"stream without syntax", stream, true},
		{"stream turtle", stream.WithSyntax(rdf.SyntaxTurtle), true},
		{"stream jsonld", stream.WithSyntax(rdf.SyntaxJSONLD), true},
		{"stream unknown content type", stream.WithContentType("text/plain"), true},
		{"stream ntriples", stream.WithSyntax(rdf.SyntaxNTriples), false},
		{"stream nquads via content type", stream.WithContentType("application/n-quads"), false},
		{"stream turtle with base", withBase.WithSyntax(rdf.SyntaxTurtle), false},
		{"iri source", iriSource.WithSyntax(rdf.SyntaxTurtle), false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr {
				requireValidationError(t, err, "base", ErrBaseRequired)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type rejectAll struct{ BackendFunc }

func (rejectAll) CheckContentType(Config) error { return errors.New("needs a seekable source") }

func TestValidate_ContentTypeHookRunsLast(t *testing.T) {
	b := rejectAll{BackendFunc(func(*Snapshot) error { return nil })}
	stream := NewConfig().WithSourceStream(strings.NewReader("")).WithSyntax(rdf.SyntaxNTriples)

	err := validate(stream, b)
	requireValidationError(t, err, "target", ErrNoTarget)

	err = validate(stream.WithTargetFunc(discard), b)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content-type", ve.Check)
	assert.Contains(t, err.Error(), "seekable")

	assert.NoError(t, stream.WithTargetFunc(discard).Validate(), "Validate has no backend hook")
}
