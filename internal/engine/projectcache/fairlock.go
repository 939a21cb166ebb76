package projectcache

import "sync"

// fairLock is a mutual-exclusion lock with first-in-first-out acquisition
// order. sync.Mutex makes no ordering promise among waiters, so waiters queue
// explicitly and Unlock hands the lock to the oldest one directly.
type fairLock struct {
	mu     sync.Mutex
	locked bool
	queue  []chan struct{}
}

// Lock acquires the lock, blocking behind earlier waiters.
func (l *fairLock) Lock() {
	l.mu.Lock()
	if !l.locked {
		l.locked = true
		l.mu.Unlock()
		return
	}
	wait := make(chan struct{})
	l.queue = append(l.queue, wait)
	l.mu.Unlock()
	<-wait
}

// Unlock releases the lock. If waiters are queued, ownership passes to the
// head of the queue without the lock ever becoming free, so later arrivals
// cannot barge ahead.
func (l *fairLock) Unlock() {
	l.mu.Lock()
	if len(l.queue) > 0 {
		head := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()
		close(head)
		return
	}
	l.locked = false
	l.mu.Unlock()
}
