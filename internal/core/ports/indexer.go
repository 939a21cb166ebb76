package ports

import "go.revet.dev/revet/internal/core/domain"

// ProjectIndexer accepts reindex requests for the external search index.
// Requests are fire-and-forget and idempotent; the index tolerates duplicate
// and out-of-order requests.
//
//go:generate mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type ProjectIndexer interface {
	// Index requests that the named project be (re)indexed.
	Index(name domain.ProjectName)
}
