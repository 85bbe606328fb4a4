package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Snapshot is a validated Config with its runtime defaults filled in.
// It always has a term factory and a target, and a base IRI whenever the
// source is a file.
//
// A Snapshot belongs to a single parse. Backends read it; nothing writes it.
type Snapshot struct {
	cfg Config

	mu     sync.Mutex
	opened []*trackedFile
}

// Prepare validates c and finalizes a private copy of it for backend b.
// The checks run in order and the first failure is returned: source,
// target, base requirement, then the backend's ContentTypeChecker hook.
//
// Finalizing installs a fresh term factory when none was set (asking b
// first if it is a TermFactoryProvider) and, for a file source without base,
// derives a file:// base IRI from the file's symlink-resolved absolute path.
func Prepare(c Config, b Backend) (*Snapshot, error) {
	if err := validate(c, b); err != nil {
		return nil, err
	}

	s := &Snapshot{cfg: c}
	if s.cfg.factory == nil {
		s.cfg.factory = newTermFactory(b)
	}
	if src, ok := s.cfg.source.(FileSource); ok && s.cfg.base.IsZero() {
		base, err := fileBase(src.Path)
		if err != nil {
			return nil, &FinalizeError{Path: src.Path, Err: err}
		}
		s.cfg.base = base
	}
	return s, nil
}

func newTermFactory(b Backend) rdf.TermFactory {
	if p, ok := b.(TermFactoryProvider); ok {
		if f := p.NewTermFactory(); f != nil {
			return f
		}
	}
	return rdf.NewSimpleFactory()
}

func fileBase(path string) (rdf.IRI, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return rdf.IRI{}, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return rdf.IRI{}, err
	}
	return rdf.FileIRI(resolved)
}

// Config returns a copy of the finalized configuration.
func (s *Snapshot) Config() Config { return s.cfg }

// Source returns the source; never nil.
func (s *Snapshot) Source() Source { return s.cfg.source }

// Target returns the target; never nil.
func (s *Snapshot) Target() Target { return s.cfg.target }

// TermFactory returns the factory for this parse; never nil.
func (s *Snapshot) TermFactory() rdf.TermFactory { return s.cfg.factory }

// Base returns the base IRI, if any.
func (s *Snapshot) Base() (rdf.IRI, bool) { return s.cfg.Base() }

// ContentType returns the media type, if any.
func (s *Snapshot) ContentType() (string, bool) { return s.cfg.ContentType() }

// Syntax returns the explicitly configured syntax, if any.
func (s *Snapshot) Syntax() (rdf.Syntax, bool) { return s.cfg.Syntax() }

// EffectiveSyntax returns the configured syntax or one guessed from a file
// source's extension.
func (s *Snapshot) EffectiveSyntax() (rdf.Syntax, bool) { return s.cfg.EffectiveSyntax() }

// Open returns a reader over a stream or file source. Closing the reader of
// a stream source does not close the caller's stream. Files opened here are
// also closed when the parse ends, whatever the backend does.
// IRI sources are not opened by the core; backends fetch them.
func (s *Snapshot) Open() (io.ReadCloser, error) {
	switch src := s.cfg.source.(type) {
	case StreamSource:
		return io.NopCloser(src.Reader), nil
	case FileSource:
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, err
		}
		tf := &trackedFile{File: f}
		s.mu.Lock()
		s.opened = append(s.opened, tf)
		s.mu.Unlock()
		return tf, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, s.cfg.source)
	}
}

// release closes every file opened through Open and reports how many were
// still open.
func (s *Snapshot) release() int {
	s.mu.Lock()
	opened := s.opened
	s.opened = nil
	s.mu.Unlock()

	leaked := 0
	for _, f := range opened {
		if f.closeOnce() {
			leaked++
		}
	}
	return leaked
}

type trackedFile struct {
	*os.File
	once sync.Once
	err  error
}

func (f *trackedFile) Close() error {
	f.closeOnce()
	return f.err
}

// closeOnce closes the file and reports whether this call did the closing.
func (f *trackedFile) closeOnce() bool {
	closed := false
	f.once.Do(func() {
		f.err = f.File.Close()
		closed = true
	})
	return closed
}
