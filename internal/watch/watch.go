// Package watch reports on-disk changes to the file a buffer was
// loaded from, so the viewer can reload it. The parent directory is
// watched rather than the file itself: editors that save by rename
// (write temp file, rename over target) would otherwise detach the
// watch on every save.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("watch: watcher closed")

// Event reports a change to the watched file.
type Event struct {
	Path      string
	Timestamp time.Time
}

// Watcher observes a single file for writes, creates, and renames.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher

	// base name of the watched file; events for siblings in the same
	// directory are filtered out
	target string

	events chan Event
	errs   chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher. Call Watch to attach it to a file.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		events:  make(chan Event, 16),
		errs:    make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch attaches the watcher to path. The file itself does not need
// to exist yet; its directory does.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.target = filepath.Base(absPath)
	return w.watcher.Add(filepath.Dir(absPath))
}

// Events returns the change event channel. It closes on Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the watch error channel. It closes on Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()

	close(w.events)
	close(w.errs)
	return err
}

// processLoop filters raw fsnotify events down to changes of the
// target file.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	if !fsEvent.Op.Has(fsnotify.Write) &&
		!fsEvent.Op.Has(fsnotify.Create) &&
		!fsEvent.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	target := w.target
	w.mu.Unlock()

	if target == "" || filepath.Base(fsEvent.Name) != target {
		return
	}

	event := Event{Path: fsEvent.Name, Timestamp: time.Now()}
	select {
	case w.events <- event:
	default:
		// Channel full. The reader reloads the whole file on any
		// event, so dropping a coalesced duplicate is harmless.
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
