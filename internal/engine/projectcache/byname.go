package projectcache

import (
	"sync"

	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// entry pairs a loaded project state with the clock reading taken when its
// load started.
type entry struct {
	state *domain.ProjectState
	stamp uint64
}

// loadFunc loads one project's state from the backing store.
type loadFunc func(name domain.ProjectName) (*domain.ProjectState, error)

// nameCache maps project names to loaded state. Loads for the same name
// collapse into one flight; loads for distinct names never block each other.
type nameCache struct {
	mu      sync.RWMutex
	entries map[domain.ProjectName]*entry
	gens    map[domain.ProjectName]uint64
	epoch   uint64
	flight  singleflight.Group
	load    loadFunc
	clock   ports.Clock
}

func newNameCache(load loadFunc, clock ports.Clock) *nameCache {
	return &nameCache{
		entries: make(map[domain.ProjectName]*entry),
		gens:    make(map[domain.ProjectName]uint64),
		load:    load,
		clock:   clock,
	}
}

// get returns the cached entry for name, loading it on a miss. Under
// concurrent callers the loader runs at most once per name; every caller
// observes the same entry or the same failure. Failures are not cached.
func (c *nameCache) get(name domain.ProjectName) (*entry, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	v, err, _ := c.flight.Do(string(name), func() (any, error) {
		// A previous flight may have stored the entry between the read
		// above and joining this flight.
		c.mu.RLock()
		e, ok := c.entries[name]
		gen := c.gens[name]
		epoch := c.epoch
		c.mu.RUnlock()
		if ok {
			return e, nil
		}

		stamp := c.clock.Read()
		state, err := c.load(name)
		if err != nil {
			return nil, err
		}

		e = &entry{state: state, stamp: stamp}
		c.mu.Lock()
		// An invalidation that landed while the load was running wins:
		// the result is returned to the waiting callers but not stored,
		// so the next get reloads.
		if c.gens[name] == gen && c.epoch == epoch {
			c.entries[name] = e
		}
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entry), nil
}

// getIfPresent returns the cached entry or nil without triggering a load.
func (c *nameCache) getIfPresent(name domain.ProjectName) *entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[name]
}

// invalidate removes the entry for name. Invalidating an absent name is a
// no-op. An in-flight load for the name is forgotten so the next get starts
// a fresh one.
func (c *nameCache) invalidate(name domain.ProjectName) {
	c.mu.Lock()
	delete(c.entries, name)
	c.gens[name]++
	c.mu.Unlock()
	c.flight.Forget(string(name))
}

// invalidateAll clears every entry and discards any in-flight loads.
func (c *nameCache) invalidateAll() {
	c.mu.Lock()
	c.entries = make(map[domain.ProjectName]*entry)
	c.gens = make(map[domain.ProjectName]uint64)
	c.epoch++
	c.mu.Unlock()
}

// size returns the number of cached entries.
func (c *nameCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
