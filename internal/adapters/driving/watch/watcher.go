package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/quizbank/internal/logger"
)

// DefaultDebounce is the quiet period before a change triggers a run.
const DefaultDebounce = 300 * time.Millisecond

// Action is run after every debounced change.
type Action func(ctx context.Context) error

// Watcher watches one file.
type Watcher struct {
	path     string
	debounce time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for path.
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled, calling action after each change.
// Action errors are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, action Action) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	logger.Debug("Watching %s", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.handleFsEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer.C:
			if err := action(ctx); err != nil {
				logger.Warn("re-run failed: %v", err)
			}
		}
	}
}

// handleFsEvent reports whether event is a content change of the watched file.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
