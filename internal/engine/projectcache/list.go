package projectcache

import (
	"sync"

	"go.revet.dev/revet/internal/core/domain"
)

// listFunc enumerates every project in the backing store.
type listFunc func() (domain.NameSet, error)

// listCache holds the single cached enumeration of all known projects: a
// mutex-guarded optional value populated lazily and replaced wholesale via
// put. Holding one value, its load is trivially single-flight.
type listCache struct {
	mu     sync.Mutex
	set    domain.NameSet
	loaded bool
	load   listFunc
}

func newListCache(load listFunc) *listCache {
	return &listCache{load: load}
}

// get returns the cached set, enumerating the store on first access or after
// invalidation. Failures are not cached.
func (c *listCache) get() (domain.NameSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.set, nil
	}
	set, err := c.load()
	if err != nil {
		return domain.NameSet{}, err
	}
	c.set = set
	c.loaded = true
	return set, nil
}

// put unconditionally replaces the cached set.
func (c *listCache) put(set domain.NameSet) {
	c.mu.Lock()
	c.set = set
	c.loaded = true
	c.mu.Unlock()
}

// invalidate drops the cached set; the next get enumerates the store again.
func (c *listCache) invalidate() {
	c.mu.Lock()
	c.set = domain.NameSet{}
	c.loaded = false
	c.mu.Unlock()
}
