// Package app implements the application layer for revet.
package app

import (
	"context"
	"fmt"
	"slices"

	"go.revet.dev/revet/internal/adapters/watcher"
	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
	"go.revet.dev/revet/internal/engine/projectcache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache   *projectcache.Cache
	watcher *watcher.Watcher
	logger  ports.Logger
}

// New creates a new App instance.
func New(cache *projectcache.Cache, w *watcher.Watcher, log ports.Logger) *App {
	return &App{
		cache:   cache,
		watcher: w,
		logger:  log,
	}
}

// ListProjects returns the names of all known projects, optionally narrowed
// to those starting with prefix. The result is sorted.
func (a *App) ListProjects(_ context.Context, prefix string) []string {
	var set domain.NameSet
	if prefix == "" {
		set = a.cache.All()
	} else {
		set = a.cache.ByPrefix(prefix)
	}
	names := set.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// ShowProject returns the cached state for the named project.
func (a *App) ShowProject(_ context.Context, name string) (*domain.ProjectState, error) {
	state, err := a.cache.Get(domain.ProjectName(name))
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, zerr.With(domain.ErrProjectNotFound, "project", name)
	}
	return state, nil
}

// RelevantGroups returns the sorted group UUIDs referenced by the projects
// currently resident in the cache.
func (a *App) RelevantGroups(_ context.Context) []string {
	uuids := a.cache.RelevantGroupUUIDs()
	out := make([]string, 0, len(uuids))
	for id := range uuids {
		out = append(out, id.String())
	}
	slices.Sort(out)
	return out
}

// Watch warms the project list, then mirrors store changes into the cache
// until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	all := a.cache.All()
	a.logger.Info(fmt.Sprintf("watching store (%d projects known)", all.Len()))

	if err := a.watcher.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start store watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	<-ctx.Done()
	return nil
}
