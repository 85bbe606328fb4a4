// Package watch reports changes to individual files using fsnotify.
// The parent directory is watched rather than the file itself, so editors
// that save by writing a new file and renaming it over the old one are
// still seen. Bursts of events are debounced into one callback.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/geoknoesis/rdfparse/internal/logger"
)

// DefaultDebounce is how long a file must be quiet before onChange fires.
const DefaultDebounce = 100 * time.Millisecond

// ErrStopped is returned by Watch after Stop.
var ErrStopped = errors.New("watch: watcher stopped")

// Watcher watches files for changes.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	files   map[string]func(string)
	timers  map[string]*time.Timer
	dirs    map[string]bool
	done    chan struct{}
	stopped bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(l *logger.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a Watcher and starts its event loop.
func New(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		debounce: DefaultDebounce,
		log:      logger.Default(),
		files:    make(map[string]func(string)),
		timers:   make(map[string]*time.Timer),
		dirs:     make(map[string]bool),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.Named("watch")
	go w.loop()
	return w, nil
}

// Watch calls onChange with the absolute path of path each time the file
// is written, created or replaced. Removal alone is not reported.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	if !w.dirs[dir] {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = onChange
	w.log.Debug("watching %s", abs)
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("fsnotify: %v", err)
		case <-w.done:
			return
		}
	}
}

// schedule (re)starts the debounce timer for path if it is watched.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	onChange, ok := w.files[path]
	if !ok || w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			onChange(path)
		}
	})
}

// Stop ends monitoring and releases all resources. Pending callbacks are
// dropped. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	for _, t := range w.timers {
		t.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
