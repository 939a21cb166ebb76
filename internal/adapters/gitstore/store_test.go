package gitstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.revet.dev/revet/internal/adapters/gitstore"
	"go.revet.dev/revet/internal/core/domain"
)

// writeProject creates a project directory with the given configuration.
func writeProject(t *testing.T, root string, name string, content string) {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), 0o644))
}

func newStore(t *testing.T) (*gitstore.Store, string) {
	t.Helper()
	root := t.TempDir()
	store, err := gitstore.NewStore(root)
	require.NoError(t, err)
	return store, root
}

func TestNewStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "projects")

	_, err := gitstore.NewStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_Open_LoadConfig(t *testing.T) {
	store, root := newStore(t)
	writeProject(t, root, "demo", `
parent: root
access:
  - ref: refs/heads/*
    action: read
    group:
      uuid: c2f1a9b0-6d2e-4b3a-9c8d-1e2f3a4b5c6d
      name: readers
groups:
  - uuid: 0d9e8f7a-6b5c-4d3e-2f1a-0b9c8d7e6f5a
    name: admins
properties:
  state: active
`)

	repo, err := store.Open("demo")
	require.NoError(t, err)
	defer func() { require.NoError(t, repo.Close()) }()

	cfg, err := repo.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectName("demo"), cfg.Name)
	assert.Equal(t, domain.ProjectName("root"), cfg.Parent)
	assert.Equal(t, "active", cfg.Properties["state"])
	assert.NotZero(t, cfg.Revision)

	require.Len(t, cfg.AccessRules, 1)
	assert.Equal(t, "refs/heads/*", cfg.AccessRules[0].Ref)
	assert.Equal(t, "read", cfg.AccessRules[0].Action)
	assert.Equal(t, "readers", cfg.AccessRules[0].Group.Name)

	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, "admins", cfg.Groups[0].Name)
}

func TestStore_Open_Missing(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Open("ghost")
	require.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestStore_Open_InvalidNames(t *testing.T) {
	store, root := newStore(t)
	writeProject(t, root, "demo", "parent: root\n")

	for _, name := range []domain.ProjectName{
		"",
		"/demo",
		"demo/",
		"../demo",
		"a//b",
		"a/./b",
		"a/../b",
	} {
		t.Run(string(name), func(t *testing.T) {
			_, err := store.Open(name)
			require.ErrorIs(t, err, domain.ErrRepositoryNotFound)
		})
	}
}

func TestStore_LoadConfig_Revision(t *testing.T) {
	store, root := newStore(t)
	writeProject(t, root, "a", "parent: root\n")
	writeProject(t, root, "b", "parent: root\n")
	writeProject(t, root, "c", "parent: other\n")

	load := func(name domain.ProjectName) *domain.ProjectConfig {
		repo, err := store.Open(name)
		require.NoError(t, err)
		cfg, err := repo.LoadConfig()
		require.NoError(t, err)
		return cfg
	}

	// The revision hashes the raw bytes: identical content yields identical
	// revisions, different content different ones.
	assert.Equal(t, load("a").Revision, load("b").Revision)
	assert.NotEqual(t, load("a").Revision, load("c").Revision)
}

func TestStore_LoadConfig_Invalid(t *testing.T) {
	store, root := newStore(t)
	writeProject(t, root, "broken", "parent: [not\n")

	repo, err := store.Open("broken")
	require.NoError(t, err)

	_, err = repo.LoadConfig()
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrProjectConfigInvalid.Error())
}

func TestStore_List(t *testing.T) {
	store, root := newStore(t)
	writeProject(t, root, "tools", "parent: root\n")
	writeProject(t, root, "infra/ci", "parent: root\n")
	writeProject(t, root, "infra/ci/images", "parent: infra/ci\n")

	// Directories without a configuration object are not projects.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o750))
	// Version control metadata is skipped.
	writeProject(t, root, ".git/hooks", "parent: root\n")

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.ProjectName{"infra/ci", "infra/ci/images", "tools"}, names)
}

func TestStore_List_Empty(t *testing.T) {
	store, _ := newStore(t)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
