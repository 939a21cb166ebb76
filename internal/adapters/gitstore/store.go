// Package gitstore implements the repository store over a directory tree:
// every project is a directory (nested for hierarchical names) holding a
// project.yaml configuration object.
package gitstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.revet.dev/revet/internal/core/domain"
	"go.revet.dev/revet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// skipDirectories are directory names never scanned for projects.
var skipDirectories = map[string]bool{
	".git": true,
	".jj":  true,
}

// Store implements ports.RepositoryStore over the directory at root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory, creating it when
// absent.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create repository store root")
	}
	return &Store{root: root}, nil
}

// Open returns a handle to the named project's repository.
func (s *Store) Open(name domain.ProjectName) (ports.Repository, error) {
	if !validName(name) {
		return nil, zerr.With(domain.ErrRepositoryNotFound, "project", string(name))
	}

	path := filepath.Join(s.root, filepath.FromSlash(string(name)), domain.ProjectFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrRepositoryNotFound, "project", string(name))
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open repository"), "project", string(name))
	}
	return &repository{name: name, path: path}, nil
}

// List walks the store and returns every project that has a configuration
// object, as store-relative slash-separated names.
func (s *Store) List() ([]domain.ProjectName, error) {
	var names []domain.ProjectName
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != domain.ProjectFileName {
			return nil
		}
		rel, err := filepath.Rel(s.root, filepath.Dir(path))
		if err != nil {
			return err
		}
		if rel == "." {
			// A config directly under the root has no project name.
			return nil
		}
		names = append(names, domain.ProjectName(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan repository store")
	}
	slices.Sort(names)
	return names, nil
}

// validName rejects names that would escape the store root.
func validName(name domain.ProjectName) bool {
	s := string(name)
	if s == "" || strings.HasPrefix(s, "/") {
		return false
	}
	for seg := range strings.SplitSeq(s, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}

// repository is an open handle to one project directory.
type repository struct {
	name domain.ProjectName
	path string
}

// LoadConfig reads and parses the project's configuration object. The
// returned config carries a content hash of the raw bytes as its revision.
func (r *repository) LoadConfig() (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project configuration"), "project", string(r.name))
	}

	var doc projectFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectConfigInvalid.Error()), "project", string(r.name))
	}

	cfg := &domain.ProjectConfig{
		Name:       r.name,
		Parent:     domain.ProjectName(doc.Parent),
		Properties: doc.Properties,
		Revision:   xxhash.Sum64(data),
	}
	for _, g := range doc.Groups {
		cfg.Groups = append(cfg.Groups, domain.GroupRef{UUID: g.UUID, Name: g.Name})
	}
	for _, a := range doc.Access {
		cfg.AccessRules = append(cfg.AccessRules, domain.AccessRule{
			Ref:    a.Ref,
			Action: a.Action,
			Group:  domain.GroupRef{UUID: a.Group.UUID, Name: a.Group.Name},
		})
	}
	return cfg, nil
}

// Close releases the handle. Directory-backed repositories hold no
// resources, but the store contract requires handles to be closed.
func (r *repository) Close() error {
	return nil
}
