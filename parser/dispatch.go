package parser

import (
	"errors"
	"fmt"
	"time"

	"github.com/geoknoesis/rdfparse/internal/logger"
)

// Dispatcher validates configurations and runs them through a Backend on a
// Scheduler. It holds no per-parse state; one Dispatcher serves any number
// of concurrent Execute calls.
type Dispatcher struct {
	backend Backend
	sched   Scheduler
	log     *logger.Logger
}

var errNotConfigured = errors.New("parser: dispatcher needs a backend and a scheduler")

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher's logger.
func WithLogger(l *logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDispatcher returns a dispatcher running backend b on sched.
// Entry points that have no scheduler of their own pass DefaultPool().
func NewDispatcher(b Backend, sched Scheduler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		backend: b,
		sched:   sched,
		log:     logger.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.Named("dispatch")
	return d
}

// Execute validates and finalizes c, submits the parse and returns without
// waiting for it. Validation, finalization and submission errors are
// returned directly and no work is started. Everything that goes wrong
// during the parse, including a backend panic, is reported by the Handle.
//
// The parse works on a private Snapshot; c itself stays valid and can be
// passed to Execute again.
func (d *Dispatcher) Execute(c Config) (*Handle, error) {
	if d.backend == nil || d.sched == nil {
		return nil, errNotConfigured
	}
	snap, err := Prepare(c, d.backend)
	if err != nil {
		return nil, err
	}

	h := newHandle()
	if err := d.sched.Submit(func() { d.run(h, snap) }); err != nil {
		return nil, err
	}
	d.log.Debug("submitted %s from %s", h.id, snap.Source())
	return h, nil
}

func (d *Dispatcher) run(h *Handle, snap *Snapshot) {
	o := Outcome{ID: h.id, Source: snap.Source(), Started: time.Now()}
	o.Syntax, _ = snap.EffectiveSyntax()
	o.Base, _ = snap.Base()

	var err error
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("backend panic in %s: %v", h.id, r)
			err = fmt.Errorf("%w: %v", ErrBackendPanic, r)
		}
		if n := snap.release(); n > 0 {
			d.log.Debug("closed %d source file(s) left open by backend in %s", n, h.id)
		}
		o.Finished = time.Now()
		if err != nil {
			d.log.Debug("parse %s failed after %s: %v", h.id, o.Duration(), err)
		} else {
			d.log.Debug("parse %s done in %s", h.id, o.Duration())
		}
		h.resolve(o, err)
	}()

	err = d.backend.Parse(snap)
}
