// Package indexer delivers reindex requests to the search index service.
package indexer

import (
	"fmt"
	"sync"

	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
)

// DefaultQueueSize is the request buffer used when none is configured.
const DefaultQueueSize = 256

// DeliverFunc hands one reindex request to the index backend. Delivery is
// at-least-once from the caller's perspective; the backend must tolerate
// duplicates.
type DeliverFunc func(name domain.ProjectName) error

// Service implements ports.ProjectIndexer with an asynchronous delivery
// queue, keeping Index non-blocking for cache operations.
type Service struct {
	logger  ports.Logger
	deliver DeliverFunc
	queue   chan domain.ProjectName
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

// Option configures the Service.
type Option func(*Service)

// WithDeliver sets the delivery backend. Without it, requests are logged at
// debug level and dropped, which is the degraded mode for installations
// running without a search index.
func WithDeliver(fn DeliverFunc) Option {
	return func(s *Service) { s.deliver = fn }
}

// WithQueueSize sets the request buffer size.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queue = make(chan domain.ProjectName, n)
		}
	}
}

// New creates a running indexer service.
func New(logger ports.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		queue:  make(chan domain.ProjectName, DefaultQueueSize),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deliver == nil {
		s.deliver = func(name domain.ProjectName) error {
			logger.Debug(fmt.Sprintf("no index backend configured, dropping reindex of %q", name))
			return nil
		}
	}
	go s.run()
	return s
}

// Index enqueues a reindex request. It never blocks: when the queue is full
// the request is dropped with a warning, relying on the index tolerating
// missed updates until the next full reindex. Requests arriving after Close
// are dropped.
func (s *Service) Index(name domain.ProjectName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.logger.Debug(fmt.Sprintf("indexer stopped, dropping reindex of %q", name))
		return
	}
	select {
	case s.queue <- name:
	default:
		s.logger.Warn(fmt.Sprintf("index queue full, dropping reindex of %q", name))
	}
}

// Close drains the queue and stops the worker. Close is idempotent, and
// Index remains safe to call afterwards.
func (s *Service) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *Service) run() {
	defer close(s.done)
	for name := range s.queue {
		if err := s.deliver(name); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to reindex %q: %v", name, err))
		}
	}
}
