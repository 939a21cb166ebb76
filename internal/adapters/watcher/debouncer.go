package watcher

import (
	"sync"
	"time"

	"go.revet.dev/revet/internal/core/domain"
)

// DefaultDebounceWindow is the default quiet window used to coalesce bursts
// of store events.
const DefaultDebounceWindow = 50 * time.Millisecond

// EventKind classifies one filesystem event affecting a project's
// configuration object.
type EventKind int

const (
	// EventWritten marks a modification of an existing configuration object.
	EventWritten EventKind = iota + 1
	// EventCreated marks a configuration object appearing in the store.
	EventCreated
	// EventRemoved marks a configuration object disappearing from the store.
	EventRemoved
)

// change accumulates the events observed for one project within a window.
// kind holds the last structural event, zero when only writes were seen;
// written remembers that the resident entry needs an eviction on top of it.
type change struct {
	kind    EventKind
	written bool
}

// Debouncer coalesces rapid store events for the same project into one
// round of cache operations. An editor save typically emits create and
// write in quick succession; without coalescing each event would trigger
// its own evict and reindex.
type Debouncer struct {
	mu      sync.Mutex
	pending map[domain.ProjectName]change
	timer   *time.Timer
	window  time.Duration
	cache   ProjectCache
}

// NewDebouncer creates a debouncer dispatching into cache once window has
// elapsed without further events.
func NewDebouncer(window time.Duration, cache ProjectCache) *Debouncer {
	return &Debouncer{
		pending: make(map[domain.ProjectName]change),
		window:  window,
		cache:   cache,
	}
}

// Observe records one event for name and restarts the quiet window.
func (d *Debouncer) Observe(name domain.ProjectName, kind EventKind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.pending[name]
	switch kind {
	case EventWritten:
		c.written = true
	case EventCreated:
		c.kind = EventCreated
	case EventRemoved:
		// A removal evicts whatever was resident, even when the object
		// reappears before the window expires.
		c.kind = EventRemoved
		c.written = true
	}
	d.pending[name] = c

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the quiet window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	pending := d.pending
	d.pending = make(map[domain.ProjectName]change)
	d.timer = nil
	d.mu.Unlock()

	d.dispatch(pending)
}

// Flush immediately dispatches all pending operations. It blocks until the
// cache calls complete, which makes it suitable for shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// The timer already fired; let that dispatch run instead of
			// dispatching twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	pending := d.pending
	d.pending = make(map[domain.ProjectName]change)
	d.mu.Unlock()

	d.dispatch(pending)
}

func (d *Debouncer) dispatch(pending map[domain.ProjectName]change) {
	for name, c := range pending {
		switch c.kind {
		case EventRemoved:
			d.cache.Remove(name)
		case EventCreated:
			d.cache.OnCreate(name)
			if c.written {
				d.cache.Evict(name)
			}
		default:
			if c.written {
				d.cache.Evict(name)
			}
		}
	}
}
