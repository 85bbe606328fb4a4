package parser

import (
	"fmt"
	"sort"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Backend turns the source of a finalized Snapshot into statements for its
// target. Parse runs synchronously on a pool worker, once per Execute call,
// and reports parse and I/O failures through its error.
type Backend interface {
	Parse(s *Snapshot) error
}

// BackendFunc adapts a function to a Backend.
type BackendFunc func(s *Snapshot) error

// Parse calls the underlying function.
func (f BackendFunc) Parse(s *Snapshot) error { return f(s) }

// ContentTypeChecker is implemented by backends with extra rules about the
// configured syntax or content type. CheckContentType runs last during
// validation, before any work is submitted.
type ContentTypeChecker interface {
	CheckContentType(c Config) error
}

// TermFactoryProvider is implemented by backends that want their own kind
// of term factory when the Config has none. NewTermFactory must return a
// new instance on every call.
type TermFactoryProvider interface {
	NewTermFactory() rdf.TermFactory
}

// Mux routes each parse to the backend registered for its effective syntax.
type Mux struct {
	backends map[rdf.Syntax]Backend
	fallback Backend
}

// MuxOption configures a Mux.
type MuxOption func(*Mux)

// WithFallback routes IRI sources that have neither a syntax nor a content
// type to b, which then decides from what the server returns.
func WithFallback(b Backend) MuxOption {
	return func(m *Mux) {
		m.fallback = b
	}
}

// NewMux returns a Mux over a copy of backends.
func NewMux(backends map[rdf.Syntax]Backend, opts ...MuxOption) *Mux {
	m := &Mux{backends: make(map[rdf.Syntax]Backend, len(backends))}
	for s, b := range backends {
		if b != nil {
			m.backends[s] = b
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Syntaxes returns the routed syntaxes in registry order.
func (m *Mux) Syntaxes() []rdf.Syntax {
	out := make([]rdf.Syntax, 0, len(m.backends))
	for s := range m.backends {
		out = append(out, s)
	}
	order := make(map[rdf.Syntax]int)
	for i, s := range rdf.Syntaxes() {
		order[s] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

// CheckContentType requires a known syntax with a registered backend, then
// defers to that backend's own check.
func (m *Mux) CheckContentType(c Config) error {
	b, err := m.route(c)
	if err != nil {
		return err
	}
	if checker, ok := b.(ContentTypeChecker); ok {
		return checker.CheckContentType(c)
	}
	return nil
}

// Parse hands s to the routed backend.
func (m *Mux) Parse(s *Snapshot) error {
	b, err := m.route(s.cfg)
	if err != nil {
		return err
	}
	return b.Parse(s)
}

func (m *Mux) route(c Config) (Backend, error) {
	s, ok := c.EffectiveSyntax()
	if !ok {
		if ct, ok := c.ContentType(); ok {
			return nil, fmt.Errorf("%w: content type %q", ErrIncompatibleSyntax, ct)
		}
		if _, isIRI := c.source.(IRISource); isIRI && m.fallback != nil {
			return m.fallback, nil
		}
		return nil, fmt.Errorf("%w: syntax unknown", ErrIncompatibleSyntax)
	}
	b, ok := m.backends[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIncompatibleSyntax, s)
	}
	return b, nil
}
