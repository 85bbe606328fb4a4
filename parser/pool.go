package parser

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/geoknoesis/rdfparse/internal/logger"
)

// DefaultIdleTimeout is how long an idle worker waits for work before it exits.
const DefaultIdleTimeout = 60 * time.Second

// Scheduler runs tasks off the caller's goroutine. Submit must not block and
// must be safe for concurrent use.
type Scheduler interface {
	Submit(task func()) error
}

// Pool is a growable pool of reusable worker goroutines. Workers are
// started on demand, reused across tasks, and exit after idling for the
// idle timeout. A submitted task goes straight to an idle worker or to a
// new one; it never waits behind a running task unless the worker limit
// is reached, in which case it waits in an unbounded queue. Submit never
// blocks.
type Pool struct {
	idleTimeout time.Duration
	maxWorkers  int
	log         *logger.Logger

	mu      sync.Mutex
	queue   []func()
	running int
	idle    []*idleWorker
	closed  atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup

	submitted atomic.Uint64
	completed atomic.Uint64
}

// idleWorker is the hand-off slot of one parked worker. A task is sent at
// most once per parking, under Pool.mu, so the send never blocks.
type idleWorker struct {
	tasks chan func()
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithIdleTimeout sets how long idle workers are kept. Non-positive values
// keep the default.
func WithIdleTimeout(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.idleTimeout = d
		}
	}
}

// WithMaxWorkers caps the number of concurrent workers. Zero or negative
// means no cap.
func WithMaxWorkers(n int) PoolOption {
	return func(p *Pool) {
		p.maxWorkers = n
	}
}

// WithPoolLogger sets the pool's logger.
func WithPoolLogger(l *logger.Logger) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPool creates a pool. No worker is started until the first Submit.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		idleTimeout: DefaultIdleTimeout,
		log:         logger.Default(),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("pool")
	return p
}

var defaultPool = sync.OnceValue(func() *Pool { return NewPool() })

// DefaultPool returns the process-wide pool, creating it on first use.
// It is never closed.
func DefaultPool() *Pool {
	return defaultPool()
}

// Submit hands task to an idle worker, starts a new worker for it, or
// queues it when the worker limit is reached. It returns ErrPoolClosed
// after Close.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed.Load() {
		return ErrPoolClosed
	}
	p.submitted.Add(1)

	if n := len(p.idle); n > 0 {
		w := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		w.tasks <- task
		return nil
	}
	if p.maxWorkers <= 0 || p.running < p.maxWorkers {
		p.running++
		p.wg.Add(1)
		go p.worker(task)
		return nil
	}
	p.queue = append(p.queue, task)
	return nil
}

func (p *Pool) worker(task func()) {
	defer p.wg.Done()
	p.log.Debug("worker started")

	self := &idleWorker{tasks: make(chan func(), 1)}
	timer := time.NewTimer(p.idleTimeout)
	defer timer.Stop()

	for {
		if task != nil {
			p.run(task)
			task = nil
		}

		p.mu.Lock()
		if len(p.queue) > 0 {
			task = p.queue[0]
			p.queue[0] = nil
			p.queue = p.queue[1:]
			p.mu.Unlock()
			continue
		}
		if p.closed.Load() {
			p.running--
			p.mu.Unlock()
			p.log.Debug("worker stopped")
			return
		}
		p.idle = append(p.idle, self)
		p.mu.Unlock()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(p.idleTimeout)

		select {
		case task = <-self.tasks:
		case <-p.done:
			task = p.unpark(self)
		case <-timer.C:
			p.mu.Lock()
			if !p.removeIdle(self) {
				// A task was handed over as the timer fired.
				p.mu.Unlock()
				task = <-self.tasks
				continue
			}
			p.running--
			p.mu.Unlock()
			p.log.Debug("worker retired after %s idle", p.idleTimeout)
			return
		}
	}
}

// unpark takes w off the idle list, or returns the task that was handed to
// it before it could be removed.
func (p *Pool) unpark(w *idleWorker) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.removeIdle(w) {
		return nil
	}
	return <-w.tasks
}

// removeIdle reports whether w was still parked. Callers hold p.mu.
func (p *Pool) removeIdle(w *idleWorker) bool {
	for i, x := range p.idle {
		if x == w {
			p.idle = append(p.idle[:i], p.idle[i+1:]...)
			return true
		}
	}
	return false
}

// run keeps the worker alive when a task panics.
func (p *Pool) run(task func()) {
	defer func() {
		p.completed.Add(1)
		if r := recover(); r != nil {
			p.log.Error("task panicked: %v", r)
		}
	}()
	task()
}

// Close stops accepting tasks, lets workers finish the queued and
// handed-over ones and waits for them to exit. Only pools created with NewPool should be closed.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed.Swap(true) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers   int
	Idle      int
	Queued    int
	Submitted uint64
	Completed uint64
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolStats{
		Workers:   p.running,
		Idle:      len(p.idle),
		Queued:    len(p.queue),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
	}
}
