// Package watcher reports changes to individual files.
//
// Files are watched through their parent directory, so editors that save
// by writing a temp file and renaming it over the original keep being
// tracked, and a file that does not exist yet is reported when it appears.
// When fsnotify is unavailable the watcher falls back to polling.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when operations are called on a closed Watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// DefaultPollInterval is used when falling back to polling.
const DefaultPollInterval = time.Second

// Op is the kind of change observed on a file.
type Op uint8

const (
	Created Op = iota + 1
	Modified
	Removed
)

func (o Op) String() string {
	switch o {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is one observed change to a watched file.
type Change struct {
	Path string // absolute
	Op   Op
}

// Handler receives the changes coalesced within one debounce window.
type Handler func(changes []Change)

// fileState is what polling compares between scans.
type fileState struct {
	exists  bool
	modTime time.Time
	size    int64
}

// Watcher watches a set of files for changes.
type Watcher struct {
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	handler   Handler
	onError   func(error)

	forcePoll bool
	polling   bool
	pollEvery time.Duration
	done      chan struct{}

	mu      sync.Mutex
	files   map[string]fileState
	dirs    map[string]int // parent dir -> number of watched files in it
	pending []Change
	closed  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the window in which changes are coalesced.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debouncer = NewDebouncer(d)
		}
	}
}

// WithErrorHandler receives watch errors, including the fsnotify fallback.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithPollInterval sets how often files are scanned in polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.pollEvery = d
		}
	}
}

// WithPolling forces polling mode.
func WithPolling(force bool) Option {
	return func(w *Watcher) {
		w.forcePoll = force
	}
}

// New creates a Watcher that calls handler with each batch of changes.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		debouncer: NewDebouncer(DefaultDebounceDuration),
		handler:   handler,
		pollEvery: DefaultPollInterval,
		done:      make(chan struct{}),
		files:     make(map[string]fileState),
		dirs:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(w)
	}

	if !w.forcePoll {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			w.fs = fsw
			go w.run()
			return w, nil
		}
		w.reportError(fmt.Errorf("fsnotify unavailable, polling instead: %w", err))
	}

	w.polling = true
	go w.poll()
	return w, nil
}

// Polling reports whether the watcher is polling instead of using fsnotify.
func (w *Watcher) Polling() bool {
	return w.polling
}

// Add starts watching the file at path. The file may not exist yet, but its
// directory must.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}

	dir := filepath.Dir(abs)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	if !w.polling && w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = stat(abs)
	return nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Close stops the watcher. Pending changes are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.debouncer.Cancel()
	close(w.done)
	if w.fs != nil {
		return w.fs.Close()
	}
	return nil
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		case <-w.done:
			return
		}
	}
}

func opOf(ev fsnotify.Op) (Op, bool) {
	switch {
	case ev.Has(fsnotify.Create):
		return Created, true
	case ev.Has(fsnotify.Write):
		return Modified, true
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return Removed, true
	}
	// chmod only
	return 0, false
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	op, ok := opOf(ev.Op)
	if !ok {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	if _, watched := w.files[path]; !watched || w.closed {
		w.mu.Unlock()
		return
	}
	w.files[path] = stat(path)
	w.pending = append(w.pending, Change{Path: path, Op: op})
	w.mu.Unlock()

	w.debouncer.Trigger(w.flush)
}

func (w *Watcher) poll() {
	ticker := time.NewTicker(w.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.scan()
		case <-w.done:
			return
		}
	}
}

// scan compares every watched file with its last known state.
func (w *Watcher) scan() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	var changed bool
	for path, prev := range w.files {
		cur := stat(path)
		w.files[path] = cur

		var op Op
		switch {
		case !prev.exists && cur.exists:
			op = Created
		case prev.exists && !cur.exists:
			op = Removed
		case cur.exists && (!cur.modTime.Equal(prev.modTime) || cur.size != prev.size):
			op = Modified
		default:
			continue
		}
		w.pending = append(w.pending, Change{Path: path, Op: op})
		changed = true
	}

	if changed {
		w.debouncer.Trigger(w.flush)
	}
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) > 0 && w.handler != nil {
		w.handler(batch)
	}
}

func stat(path string) fileState {
	fi, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, modTime: fi.ModTime(), size: fi.Size()}
}
