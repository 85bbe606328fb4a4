package rdf

import "sync"

// QuadHandler processes quads in push mode.
type QuadHandler interface {
	Handle(Quad) error
}

// QuadHandlerFunc adapts a function to a QuadHandler.
type QuadHandlerFunc func(Quad) error

// Handle calls the underlying function.
func (h QuadHandlerFunc) Handle(q Quad) error { return h(q) }

// Graph accepts parsed triples directly.
type Graph interface {
	AddTriple(Triple) error
}

// Dataset accepts parsed quads, keeping their graph names.
type Dataset interface {
	Add(Quad) error
}

// MemoryGraph is an in-memory Graph that keeps insertion order and
// drops duplicate triples. It is safe for concurrent use.
type MemoryGraph struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	triples []Triple
}

// NewMemoryGraph returns an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{seen: make(map[string]struct{})}
}

// AddTriple adds t unless an equal triple is already present.
func (g *MemoryGraph) AddTriple(t Triple) error {
	key := t.String()
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.seen[key]; ok {
		return nil
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
	return nil
}

// Len returns the number of triples.
func (g *MemoryGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.triples)
}

// Triples returns a copy of the triples in insertion order.
func (g *MemoryGraph) Triples() []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// MemoryDataset is an in-memory Dataset. It is safe for concurrent use.
type MemoryDataset struct {
	mu    sync.RWMutex
	seen  map[string]struct{}
	quads []Quad
}

// NewMemoryDataset returns an empty dataset.
func NewMemoryDataset() *MemoryDataset {
	return &MemoryDataset{seen: make(map[string]struct{})}
}

// Add adds q unless an equal quad is already present.
func (d *MemoryDataset) Add(q Quad) error {
	key := q.String()
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return nil
	}
	d.seen[key] = struct{}{}
	d.quads = append(d.quads, q)
	return nil
}

// Len returns the number of quads.
func (d *MemoryDataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.quads)
}

// Quads returns a copy of the quads in insertion order.
func (d *MemoryDataset) Quads() []Quad {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Quad, len(d.quads))
	copy(out, d.quads)
	return out
}

// Graph returns the quads whose graph name equals name; nil selects the
// default graph.
func (d *MemoryDataset) Graph(name Term) []Quad {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Quad
	for _, q := range d.quads {
		switch {
		case name == nil && q.G == nil:
			out = append(out, q)
		case name != nil && q.G != nil && q.G.String() == name.String():
			out = append(out, q)
		}
	}
	return out
}
