package explorer

import (
	"github.com/fsnotify/fsnotify"
)

// Watcher surfaces external changes to the current directory so the
// view can refresh without polling. Events are coalesced into a
// 1-buffered channel; the event loop drains it between renders, so a
// burst of writes costs one refresh.
type Watcher struct {
	fw      *fsnotify.Watcher
	watched string
	Events  chan struct{}
	done    chan struct{}
}

// NewWatcher starts the underlying fsnotify watcher and its pump
// goroutine. Close must be called on shutdown.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:     fw,
		Events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

// Watch retargets the watcher at dir, dropping the previous directory.
func (w *Watcher) Watch(dir string) error {
	if w.watched == dir {
		return nil
	}
	if w.watched != "" {
		// Ignore: the old directory may already be gone.
		w.fw.Remove(w.watched)
	}
	if err := w.fw.Add(dir); err != nil {
		w.watched = ""
		return err
	}
	w.watched = dir
	return nil
}

// Close stops the pump and releases the OS watch handles.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) pump() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.Events <- struct{}{}:
			default: // already pending, coalesce
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}
