package scene

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a scene file must be quiet before a change is emitted.
const Debounce = 100 * time.Millisecond

// Change is a detected change to the watched scene file.
type Change struct {
	File    string
	Removed bool
}

// Watcher monitors one scene file using fsnotify. It watches the file's
// directory so editors that save by rename are still seen.
type Watcher struct {
	File    string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a new watcher for the scene file at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		File:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending bool
		removed bool
		last    time.Time
	)
	ticker := time.NewTicker(Debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.emit(removed)
				}
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending, removed, last = true, false, time.Now()
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending, removed, last = true, true, time.Now()
			}

		case <-ticker.C:
			if pending && time.Since(last) >= Debounce {
				w.emit(removed)
				pending = false
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(removed bool) {
	// A save by rename reports Remove then Create; check what is there now.
	if removed {
		if _, err := os.Stat(w.File); err == nil {
			removed = false
		}
	}
	select {
	case w.changes <- Change{File: w.File, Removed: removed}:
	default:
		// A reload is already queued.
	}
}
