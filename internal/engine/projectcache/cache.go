// Package projectcache implements the in-memory cache of project metadata:
// a per-name cache with single-flight loading and read-time staleness
// revalidation, plus the cached enumeration of all known projects.
package projectcache

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
	"go.trai.ch/zerr"
)

// guessRelevantGroupsMetric names the latency measurement recorded around
// the relevant-group scan.
const guessRelevantGroupsMetric = "cache/projects/guess_relevant_groups"

// Options configures the cache.
type Options struct {
	// RefreshWindow is the freshness window in clock ticks. Zero means every
	// read revalidates; domain.NeverRefresh disables revalidation.
	RefreshWindow uint64

	// RootProject is the well-known project holding the site-wide
	// configuration every other project inherits from.
	RootProject domain.ProjectName

	// UsersProject is the well-known project holding the user registry.
	UsersProject domain.ProjectName
}

// Cache is the process-local project metadata cache. All methods are safe
// for concurrent use.
type Cache struct {
	byName   *nameCache
	list     *listCache
	listLock fairLock
	clock    ports.Clock
	indexer  ports.ProjectIndexer
	metrics  ports.Metrics
	logger   ports.Logger
	opts     Options
}

// New builds a cache over the given repository store. The clock drives
// staleness; the indexer receives a reindex request for every eviction and
// creation.
func New(
	store ports.RepositoryStore,
	clk ports.Clock,
	indexer ports.ProjectIndexer,
	metrics ports.Metrics,
	logger ports.Logger,
	opts Options,
) *Cache {
	loader := &stateLoader{store: store}
	return &Cache{
		byName:  newNameCache(loader.loadState, clk),
		list:    newListCache(loader.loadList),
		clock:   clk,
		indexer: indexer,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
	}
}

// Get returns the cached state for name, loading it on a miss and reloading
// it when the entry has fallen out of the freshness window. It returns
// (nil, nil) for the empty name and for projects the store does not know;
// any other load failure is returned as a storage error naming the project.
func (c *Cache) Get(name domain.ProjectName) (*domain.ProjectState, error) {
	if name == "" {
		return nil, nil
	}

	e, err := c.byName.get(name)
	if err == nil && !domain.Fresh(c.clock.Read(), e.stamp, c.opts.RefreshWindow) {
		c.byName.invalidate(name)
		e, err = c.byName.get(name)
	}
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.logger.Debug(fmt.Sprintf("project %q not found", name))
			return nil, nil
		}
		return nil, err
	}
	return e.state, nil
}

// Root returns the state of the well-known root configuration project.
// Its absence means the installation is corrupted; the returned error wraps
// domain.ErrWellKnownProjectMissing and must abort the calling operation.
func (c *Cache) Root() (*domain.ProjectState, error) {
	return c.wellKnown(c.opts.RootProject)
}

// Users returns the state of the well-known user registry project, with the
// same failure contract as Root.
func (c *Cache) Users() (*domain.ProjectState, error) {
	return c.wellKnown(c.opts.UsersProject)
}

func (c *Cache) wellKnown(name domain.ProjectName) (*domain.ProjectState, error) {
	state, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, zerr.With(domain.ErrWellKnownProjectMissing, "project", string(name))
	}
	return state, nil
}

// Evict drops the cached entry for name and requests a reindex. The reindex
// is issued even when nothing was cached: the index may be stale
// independently of the cache.
func (c *Cache) Evict(name domain.ProjectName) {
	if name != "" {
		c.logger.Debug(fmt.Sprintf("evict project %q", name))
		c.byName.invalidate(name)
	}
	c.indexer.Index(name)
}

// Remove takes name out of the all-projects set and evicts it. The list
// update runs under the fair lock; a failure to read the current list is
// logged and does not prevent the eviction and reindex.
func (c *Cache) Remove(name domain.ProjectName) {
	c.listLock.Lock()
	if set, err := c.list.get(); err != nil {
		c.logger.Warn(fmt.Sprintf("cannot list available projects: %v", err))
	} else {
		c.list.put(set.Difference(name))
	}
	c.listLock.Unlock()
	c.Evict(name)
}

// OnCreate adds the newly created project to the all-projects set and
// requests that it be indexed. There is no cache entry to evict yet.
func (c *Cache) OnCreate(name domain.ProjectName) {
	c.listLock.Lock()
	if set, err := c.list.get(); err != nil {
		c.logger.Warn(fmt.Sprintf("cannot list available projects: %v", err))
	} else {
		c.list.put(set.Union(name))
	}
	c.listLock.Unlock()
	c.indexer.Index(name)
}

// All returns the cached enumeration of every known project. Enumeration is
// best effort: a load failure is logged and the empty set returned.
func (c *Cache) All() domain.NameSet {
	set, err := c.list.get()
	if err != nil {
		c.logger.Warn(fmt.Sprintf("cannot list available projects: %v", err))
		return domain.NameSet{}
	}
	return set
}

// ByPrefix returns every known project whose name starts with prefix, in
// ascending order. Like All, it degrades to the empty set on enumeration
// failure.
func (c *Cache) ByPrefix(prefix string) domain.NameSet {
	set, err := c.list.get()
	if err != nil {
		c.logger.Warn(fmt.Sprintf("cannot look up projects for prefix %q: %v", prefix, err))
		return domain.NameSet{}
	}
	return set.Prefix(prefix)
}

// RelevantGroupUUIDs collects the group references of every project already
// resident in the cache. Absent projects are not loaded: the result is a
// cheap approximation, not an exhaustive answer. Malformed references are
// skipped.
func (c *Cache) RelevantGroupUUIDs() map[uuid.UUID]struct{} {
	start := time.Now()
	defer func() {
		c.metrics.RecordLatency(guessRelevantGroupsMetric, time.Since(start))
	}()

	groups := make(map[uuid.UUID]struct{})
	for _, name := range c.All().Names() {
		e := c.byName.getIfPresent(name)
		if e == nil {
			continue
		}
		for _, ref := range e.state.Config().GroupRefs() {
			if id, ok := ref.ParseUUID(); ok {
				groups[id] = struct{}{}
			}
		}
	}
	return groups
}

// EvictAll clears every per-name entry and the cached project list. Intended
// for administrative reset and tests; no index requests are issued.
func (c *Cache) EvictAll() {
	c.byName.invalidateAll()
	c.list.invalidate()
}

// SizeByName returns the number of resident per-name entries.
func (c *Cache) SizeByName() int {
	return c.byName.size()
}
