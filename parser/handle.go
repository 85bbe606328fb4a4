package parser

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfparse/rdf"
)

// Outcome describes a finished parse.
type Outcome struct {
	ID       uuid.UUID
	Source   Source
	Syntax   rdf.Syntax // effective syntax, empty if unknown
	Base     rdf.IRI    // base IRI used, zero if none
	Started  time.Time
	Finished time.Time
}

// Duration returns how long the backend ran.
func (o Outcome) Duration() time.Duration {
	return o.Finished.Sub(o.Started)
}

// Handle is the pending result of one Execute call. It is resolved exactly
// once, by the worker, with an Outcome and possibly an error.
type Handle struct {
	id      uuid.UUID
	done    chan struct{}
	outcome Outcome
	err     error
}

func newHandle() *Handle {
	return &Handle{id: uuid.New(), done: make(chan struct{})}
}

func (h *Handle) resolve(o Outcome, err error) {
	h.outcome = o
	h.err = err
	close(h.done)
}

// ID identifies the Execute call.
func (h *Handle) ID() uuid.UUID { return h.id }

// Done is closed when the parse has finished.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Result blocks until the parse has finished.
func (h *Handle) Result() (Outcome, error) {
	<-h.done
	return h.outcome, h.err
}

// Wait blocks until the parse has finished or ctx is done. Giving up on
// the wait does not stop the parse.
func (h *Handle) Wait(ctx context.Context) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-h.done:
		return h.outcome, h.err
	case <-ctx.Done():
		return Outcome{ID: h.id}, ctx.Err()
	}
}

// Poll returns the result without blocking; ok is false while the parse
// is still running.
func (h *Handle) Poll() (o Outcome, ok bool, err error) {
	select {
	case <-h.done:
		return h.outcome, true, h.err
	default:
		return Outcome{}, false, nil
	}
}
