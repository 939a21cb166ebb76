// Package ports defines the interfaces between the cache core and its
// collaborators.
package ports

import "go.revet.dev/revet/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// RepositoryStore is the versioned backing store holding project
// configuration objects. Its operations may block on I/O.
type RepositoryStore interface {
	// Open opens the repository for the named project. It returns
	// domain.ErrRepositoryNotFound when no such repository exists; any other
	// failure is a storage fault.
	Open(name domain.ProjectName) (Repository, error)

	// List enumerates every project known to the store.
	List() ([]domain.ProjectName, error)
}

// Repository is an open handle to one project's repository.
type Repository interface {
	// LoadConfig reads and parses the project's configuration object.
	LoadConfig() (*domain.ProjectConfig, error)

	// Close releases the handle.
	Close() error
}
