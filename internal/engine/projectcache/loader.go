package projectcache

import (
	"errors"

	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
	"go.trai.ch/zerr"
)

// stateLoader loads project state and the project list from the repository
// store, mapping store failures onto the cache's error taxonomy.
type stateLoader struct {
	store ports.RepositoryStore
}

// loadState opens the project's repository and parses its configuration.
// A missing repository maps to domain.ErrProjectNotFound; everything else is
// a storage fault carrying the project name.
func (l *stateLoader) loadState(name domain.ProjectName) (*domain.ProjectState, error) {
	repo, err := l.store.Open(name)
	if err != nil {
		if errors.Is(err, domain.ErrRepositoryNotFound) {
			return nil, zerr.With(domain.ErrProjectNotFound, "project", string(name))
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectUnavailable.Error()), "project", string(name))
	}
	defer func() { _ = repo.Close() }()

	cfg, err := repo.LoadConfig()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectUnavailable.Error()), "project", string(name))
	}
	return domain.NewProjectState(cfg), nil
}

// loadList enumerates every project known to the store.
func (l *stateLoader) loadList() (domain.NameSet, error) {
	names, err := l.store.List()
	if err != nil {
		return domain.NameSet{}, zerr.Wrap(err, domain.ErrProjectListUnavailable.Error())
	}
	return domain.NewNameSet(names...), nil
}
