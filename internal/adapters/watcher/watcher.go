// Package watcher propagates filesystem changes in the repository store to
// the project cache, so externally modified projects are evicted without
// waiting for the freshness window.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
)

// skipDirectories are directory names never watched.
var skipDirectories = map[string]bool{
	".git": true,
	".jj":  true,
}

// ProjectCache is the slice of the cache the watcher drives.
type ProjectCache interface {
	Evict(name domain.ProjectName)
	Remove(name domain.ProjectName)
	OnCreate(name domain.ProjectName)
}

// Watcher maps fsnotify events under the store root onto cache operations.
// Events are coalesced per project through a debounce window before they
// reach the cache.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  *Debouncer
	window    time.Duration
	logger    ports.Logger
}

// Option configures the Watcher.
type Option func(*Watcher)

// WithDebounceWindow sets the quiet window used to coalesce event bursts.
func WithDebounceWindow(window time.Duration) Option {
	return func(w *Watcher) { w.window = window }
}

// New creates a watcher over the store rooted at root.
func New(root string, cache ProjectCache, logger ports.Logger, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		root:      root,
		window:    DefaultDebounceWindow,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debounce = NewDebouncer(w.window, cache)
	return w, nil
}

// Start watches the store tree and processes events until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, not fatal.
			return nil //nolint:nilerr
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirectories[d.Name()] {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
	if err != nil {
		return err
	}

	go w.processEvents(ctx)
	return nil
}

// Stop dispatches any coalesced events still pending and releases the
// underlying filesystem watcher.
func (w *Watcher) Stop() error {
	w.debounce.Flush()
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("store watcher error: %v", err))
		}
	}
}

// handle translates one filesystem event into a debounced cache operation.
// New directories are added to the watch set; changes to a project's
// configuration object evict, create or remove the project once the
// debounce window expires.
func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !skipDirectories[filepath.Base(event.Name)] {
				_ = w.fsWatcher.Add(event.Name)
			}
			return
		}
	}

	if filepath.Base(event.Name) != domain.ProjectFileName {
		return
	}
	name, ok := w.projectFor(event.Name)
	if !ok {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		w.logger.Debug(fmt.Sprintf("project %q appeared in store", name))
		w.debounce.Observe(name, EventCreated)
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		w.logger.Debug(fmt.Sprintf("project %q disappeared from store", name))
		w.debounce.Observe(name, EventRemoved)
	case event.Op.Has(fsnotify.Write):
		w.debounce.Observe(name, EventWritten)
	}
}

// projectFor derives the project name from a configuration object path.
func (w *Watcher) projectFor(path string) (domain.ProjectName, bool) {
	rel, err := filepath.Rel(w.root, filepath.Dir(path))
	if err != nil || rel == "." {
		return "", false
	}
	return domain.ProjectName(filepath.ToSlash(rel)), true
}
