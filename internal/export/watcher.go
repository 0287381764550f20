package export

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// debounceDelay coalesces the burst of write events an export tool produces
// while rewriting result.json.
const debounceDelay = 2 * time.Second

// Watcher re-triggers analysis whenever the export file is rewritten.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onWrite func()
	done    chan struct{}
}

// NewWatcher watches the directory containing path and calls onWrite
// (debounced) after the file changes. Watching the directory instead of the
// file survives rename-replace writes.
func NewWatcher(path string, onWrite func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fw,
		onWrite: onWrite,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	target := filepath.Clean(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("export file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, w.onWrite)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Err(err).Msg("export watcher error")
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
