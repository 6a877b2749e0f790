// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/cligen/errors"
	"github.com/teranos/cligen/logger"
)

// ChangeFunc is called after a debounced burst of changes. changed is the
// last file that triggered it.
type ChangeFunc func(ctx context.Context, changed string) error

// Watcher watches files for changes and triggers a debounced callback.
// Parent directories are watched so editors that replace files on save are
// still seen.
type Watcher struct {
	files    map[string]bool
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer
	lastChanged   string
}

// New creates a watcher for the given files.
func New(files []string, debounce time.Duration) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.NewInvalidInputError("nothing to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		watcher:  fw,
		debounce: debounce,
		log:      logger.ComponentLogger("watch"),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling onChange after each debounced
// burst of writes to a watched file. Callback errors are logged, not returned.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	defer w.stop()

	fire := make(chan string, 1)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("Watched file changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule(event.Name, fire)

		case changed := <-fire:
			if err := onChange(ctx, changed); err != nil {
				w.log.Warnw("Regeneration failed",
					logger.FieldFile, changed,
					logger.FieldError, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// schedule debounces rapid file changes into one send on fire.
func (w *Watcher) schedule(name string, fire chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastChanged = name
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		changed := w.lastChanged
		w.mu.Unlock()

		select {
		case fire <- changed:
		default:
		}
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		w.log.Debugw("Closing watcher", logger.FieldError, err)
	}
}
