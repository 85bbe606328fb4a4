package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfparse/rdf"
)

func TestConfig_SettingSourceReplacesPrevious(t *testing.T) {
	r := strings.NewReader("")

	c := NewConfig().WithSourceStream(r).WithSourcePath("/tmp/data.nt")
	_, hasStream := c.SourceStream()
	path, hasPath := c.SourcePath()
	_, hasIRI := c.SourceIRI()
	assert.False(t, hasStream)
	assert.True(t, hasPath)
	assert.False(t, hasIRI)
	assert.Equal(t, "/tmp/data.nt", path)

	c, err := c.WithSource("http://example.org/doc")
	require.NoError(t, err)
	_, hasPath = c.SourcePath()
	iri, hasIRI := c.SourceIRI()
	assert.False(t, hasPath)
	assert.True(t, hasIRI)
	assert.Equal(t, "http://example.org/doc", iri.Value)

	c = c.WithSourceStream(r)
	_, hasIRI = c.SourceIRI()
	stream, hasStream := c.SourceStream()
	assert.False(t, hasIRI)
	assert.True(t, hasStream)
	assert.Same(t, r, stream)
}

func TestConfig_SettingTargetReplacesPrevious(t *testing.T) {
	g := rdf.NewMemoryGraph()
	d := rdf.NewMemoryDataset()

	c := NewConfig().WithTargetGraph(g).WithTargetDataset(d)
	_, hasGraph := c.TargetGraph()
	got, hasDataset := c.TargetDataset()
	assert.False(t, hasGraph)
	assert.True(t, hasDataset)
	assert.Same(t, d, got)

	c = c.WithTargetFunc(func(rdf.Quad) error { return nil })
	_, hasDataset = c.TargetDataset()
	assert.False(t, hasDataset)
	assert.IsType(t, HandlerTarget{}, c.Target())

	c = c.WithTargetGraph(g)
	_, isHandler := c.Target().(HandlerTarget)
	assert.False(t, isHandler)
	_, hasGraph = c.TargetGraph()
	assert.True(t, hasGraph)
}

func TestConfig_NilValuesClearGroup(t *testing.T) {
	c := NewConfig().
		WithSourcePath("a.nt").
		WithSourceStream(nil).
		WithTargetGraph(rdf.NewMemoryGraph()).
		WithTargetDataset(nil)
	assert.Nil(t, c.Source())
	assert.Nil(t, c.Target())

	c, err := c.WithSourceIRI(rdf.IRI{})
	require.NoError(t, err)
	assert.Nil(t, c.Source())
	assert.Nil(t, c.WithTargetFunc(nil).Target())
}

func TestConfig_MutatorsLeaveReceiverUnchanged(t *testing.T) {
	root := NewConfig().WithSourceStream(strings.NewReader("")).WithSyntax(rdf.SyntaxTurtle)
	before := root.Validate()

	_ = root.WithSourcePath("/nope")
	_ = root.WithSyntax(rdf.SyntaxNTriples)
	_ = root.WithContentType("application/ld+json")
	_ = root.WithTargetGraph(rdf.NewMemoryGraph())
	_ = root.WithTermFactory(rdf.NewSimpleFactory())
	_, _ = root.WithBase("http://example.org/")

	assert.Equal(t, before, root.Validate())
	s, _ := root.Syntax()
	assert.Equal(t, rdf.SyntaxTurtle, s)
	_, hasBase := root.Base()
	assert.False(t, hasBase)
	assert.Nil(t, root.Target())
	_, hasFactory := root.TermFactory()
	assert.False(t, hasFactory)
}

func TestConfig_BranchesAreIndependent(t *testing.T) {
	root := NewConfig().WithSyntax(rdf.SyntaxNQuads)
	a := root.WithTargetGraph(rdf.NewMemoryGraph())
	b := root.WithTargetDataset(rdf.NewMemoryDataset())

	_, aGraph := a.TargetGraph()
	_, bDataset := b.TargetDataset()
	_, bGraph := b.TargetGraph()
	assert.True(t, aGraph)
	assert.True(t, bDataset)
	assert.False(t, bGraph)
	assert.Nil(t, root.Target())
}

func TestConfig_WithBase(t *testing.T) {
	c, err := NewConfig().WithBase("http://example.org/base/")
	require.NoError(t, err)
	base, ok := c.Base()
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/base/", base.Value)

	cases := []string{"", "relative/path", "//example.org/x", "http://exa mple.org/", "http://example.org/<x>"}
	for _, in := range cases {
		got, err := c.WithBase(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrInvalidIRI, in)
		assert.Equal(t, ErrCodeConstruction, Code(err), in)
		kept, _ := got.Base()
		assert.Equal(t, base, kept, "receiver returned unchanged for %q", in)
	}

	_, err = NewConfig().WithBaseIRI(rdf.IRI{Value: "../up"})
	assert.ErrorIs(t, err, ErrInvalidIRI)

	cleared, err := c.WithBaseIRI(rdf.IRI{})
	require.NoError(t, err)
	_, ok = cleared.Base()
	assert.False(t, ok)
}

func TestConfig_WithSourceRejectsRelativeIRI(t *testing.T) {
	c := NewConfig().WithSourcePath("keep.nt")
	got, err := c.WithSource("docs/data.ttl")
	assert.ErrorIs(t, err, ErrInvalidIRI)
	path, ok := got.SourcePath()
	assert.True(t, ok)
	assert.Equal(t, "keep.nt", path)

	_, err = c.WithSourceIRI(rdf.IRI{Value: "no-scheme"})
	assert.ErrorIs(t, err, ErrInvalidIRI)
}

func TestConfig_SyntaxAndContentTypeRoundTrip(t *testing.T) {
	for _, s := range rdf.Syntaxes() {
		c := NewConfig().WithSyntax(s)
		ct, ok := c.ContentType()
		require.True(t, ok, s)
		assert.Equal(t, s.MediaType(), ct, s)

		back, ok := NewConfig().WithContentType(s.MediaType()).Syntax()
		require.True(t, ok, s)
		assert.Equal(t, s, back)
	}
}

func TestConfig_ContentTypeLastWriteWins(t *testing.T) {
	c := NewConfig().WithSyntax(rdf.SyntaxTurtle).WithContentType("application/x-unknown")
	ct, ok := c.ContentType()
	assert.True(t, ok)
	assert.Equal(t, "application/x-unknown", ct)
	_, ok = c.Syntax()
	assert.False(t, ok)

	c = c.WithContentType("Text/Turtle; charset=UTF-8")
	s, ok := c.Syntax()
	assert.True(t, ok)
	assert.Equal(t, rdf.SyntaxTurtle, s)
	ct, _ = c.ContentType()
	assert.Equal(t, "Text/Turtle; charset=UTF-8", ct)

	c = c.WithSyntax("")
	_, ok = c.ContentType()
	assert.False(t, ok)
	_, ok = c.Syntax()
	assert.False(t, ok)
}

func TestConfig_EffectiveSyntax(t *testing.T) {
	s, ok := NewConfig().WithSourcePath("dir/data.nq").EffectiveSyntax()
	assert.True(t, ok)
	assert.Equal(t, rdf.SyntaxNQuads, s)

	s, ok = NewConfig().WithSourcePath("data.nq").WithSyntax(rdf.SyntaxNTriples).EffectiveSyntax()
	assert.True(t, ok)
	assert.Equal(t, rdf.SyntaxNTriples, s)

	_, ok = NewConfig().WithSourcePath("data.nq").WithContentType("application/x-unknown").EffectiveSyntax()
	assert.False(t, ok, "an explicit unknown content type is not overridden by the extension")

	_, ok = NewConfig().WithSourcePath("archive.nt.gz").EffectiveSyntax()
	assert.False(t, ok)

	_, ok = NewConfig().WithSourceStream(strings.NewReader("")).EffectiveSyntax()
	assert.False(t, ok)
}

func TestGuessSyntax(t *testing.T) {
	cases := []struct {
		path string
		want rdf.Syntax
		ok   bool
	}{
		{"a.ttl", rdf.SyntaxTurtle, true},
		{"/x/y/B.JSONLD", rdf.SyntaxJSONLD, true},
		{"graph.trig", rdf.SyntaxTriG, true},
		{"archive.tar.gz", "", false},
		{"noext", "", false},
		{"dir.nt/file", "", false},
	}
	for _, c := range cases {
		got, ok := GuessSyntax(c.path)
		assert.Equal(t, c.ok, ok, c.path)
		assert.Equal(t, c.want, got, c.path)
	}
}
