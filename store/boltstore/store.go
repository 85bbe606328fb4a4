// Package boltstore persists parsed quads in a bbolt database so they can be
// used as a parse target. Each graph gets its own bucket under a top-level
// "graphs" bucket; the default graph's bucket is named "@default". Within a
// graph, quads are keyed by their N-Triples form, so adding a statement
// twice stores it once.
package boltstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/geoknoesis/rdfparse/rdf"
)

// DefaultBatchSize is how many quads are buffered before a write transaction.
const DefaultBatchSize = 512

var (
	bucketGraphs = []byte("graphs")
	keyDefault   = []byte("@default")
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("boltstore: store closed")

// Store is an rdf.Dataset and rdf.Graph backed by bbolt. Adds are buffered
// and committed in batches; reads see everything added before them. It is
// safe for concurrent use.
type Store struct {
	db        *bolt.DB
	batchSize int

	mu      sync.Mutex
	pending []rdf.Quad
	closed  bool
}

// Option configures a Store.
type Option func(*Store)

// WithBatchSize sets how many quads are buffered per write transaction.
func WithBatchSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// Open opens (or creates) a store at path.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketGraphs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{db: db, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Add stores q.
func (s *Store) Add(q rdf.Quad) error {
	if q.S == nil || q.P.IsZero() || q.O == nil {
		return errors.New("boltstore: incomplete statement")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.pending = append(s.pending, q)
	if len(s.pending) >= s.batchSize {
		return s.flushLocked()
	}
	return nil
}

// AddTriple stores t in the default graph.
func (s *Store) AddTriple(t rdf.Triple) error {
	return s.Add(t.ToQuad())
}

// Flush commits buffered quads.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if len(s.pending) == 0 {
		return nil
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		graphs := tx.Bucket(bucketGraphs)
		for _, q := range s.pending {
			b, err := graphs.CreateBucketIfNotExists(graphKey(q.G))
			if err != nil {
				return err
			}
			v, err := encodeQuad(q)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(q.ToTriple().String()), v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.pending = s.pending[:0]
	return nil
}

func graphKey(g rdf.Term) []byte {
	if g == nil {
		return keyDefault
	}
	return []byte(g.String())
}

// view flushes pending writes and runs fn in a read transaction over the
// graphs bucket.
func (s *Store) view(fn func(graphs *bolt.Bucket) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.flushLocked(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketGraphs))
	})
}

// Len returns the number of stored quads across all graphs.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.view(func(graphs *bolt.Bucket) error {
		return graphs.ForEachBucket(func(k []byte) error {
			n += graphs.Bucket(k).Stats().KeyN
			return nil
		})
	})
	return n, err
}

// Contains reports whether q is stored.
func (s *Store) Contains(q rdf.Quad) (bool, error) {
	found := false
	err := s.view(func(graphs *bolt.Bucket) error {
		if b := graphs.Bucket(graphKey(q.G)); b != nil {
			found = b.Get([]byte(q.ToTriple().String())) != nil
		}
		return nil
	})
	return found, err
}

// Quads returns every stored quad, default graph first, then named graphs
// in key order.
func (s *Store) Quads() ([]rdf.Quad, error) {
	var out []rdf.Quad
	err := s.view(func(graphs *bolt.Bucket) error {
		collect := func(b *bolt.Bucket) error {
			return b.ForEach(func(_, v []byte) error {
				q, err := decodeQuad(v)
				if err != nil {
					return err
				}
				out = append(out, q)
				return nil
			})
		}
		if b := graphs.Bucket(keyDefault); b != nil {
			if err := collect(b); err != nil {
				return err
			}
		}
		return graphs.ForEachBucket(func(k []byte) error {
			if string(k) == string(keyDefault) {
				return nil
			}
			return collect(graphs.Bucket(k))
		})
	})
	return out, err
}

// Close commits buffered quads and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.flushLocked()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}
