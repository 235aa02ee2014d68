// Package watch notifies the terminal UI when the usage export changes on
// disk so a refreshed report can be aggregated.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/avilla-dev/cursor-wrapped/internal/logger"
)

const debounceInterval = 250 * time.Millisecond

// Watcher debounces filesystem events for a single file and emits a signal
// per settled change.
type Watcher struct {
	mu            sync.Mutex
	path          string
	fsw           *fsnotify.Watcher
	changes       chan struct{}
	errs          chan error
	stop          chan struct{}
	debounceTimer *time.Timer
}

// New starts watching the file at path. The parent directory is watched so
// editors that replace the file via rename are still caught.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one signal per settled change to the watched file.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	close(w.stop)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleChange()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case <-w.stop:
			return
		}
	}
}

// scheduleChange debounces rapid event bursts into a single signal.
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounceInterval, func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
}
