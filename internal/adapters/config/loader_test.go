package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.revet.dev/revet/internal/adapters/config"
	"go.revet.dev/revet/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ServerConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultStorePath, cfg.StorePath)
	assert.Equal(t, config.DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, config.DefaultRefreshTicks, cfg.RefreshTicks)
	assert.Equal(t, config.DefaultRootProject, cfg.RootProject)
	assert.Equal(t, config.DefaultUsersProject, cfg.UsersProject)
	assert.Zero(t, cfg.IndexQueueSize)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
store:
  path: /srv/revet/projects
cache:
  tickInterval: 30s
  refreshTicks: 4
projects:
  root: all-projects
  users: all-users
index:
  queueSize: 1024
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/revet/projects", cfg.StorePath)
	assert.Equal(t, 30*time.Second, cfg.TickInterval)
	assert.Equal(t, uint64(4), cfg.RefreshTicks)
	assert.Equal(t, domain.ProjectName("all-projects"), cfg.RootProject)
	assert.Equal(t, domain.ProjectName("all-users"), cfg.UsersProject)
	assert.Equal(t, 1024, cfg.IndexQueueSize)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "store:\n  path: data\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.StorePath)
	assert.Equal(t, config.DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, config.DefaultRootProject, cfg.RootProject)
}

func TestLoad_RefreshTicks(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected uint64
	}{
		{
			name:     "zero revalidates every read",
			value:    "0",
			expected: 0,
		},
		{
			name:     "positive window",
			value:    "12",
			expected: 12,
		},
		{
			name:     "negative disables revalidation",
			value:    "-1",
			expected: domain.NeverRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "cache:\n  refreshTicks: "+tt.value+"\n")

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.RefreshTicks)
		})
	}
}

func TestLoad_InvalidTickInterval(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a duration", value: "soon"},
		{name: "zero", value: "0s"},
		{name: "negative", value: "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "cache:\n  tickInterval: "+tt.value+"\n")

			_, err := config.Load(path)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrServerConfigInvalid)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "store: [\n")

	_, err := config.Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrServerConfigInvalid.Error())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "store:\n  path: from-env\n")
	t.Setenv(config.EnvConfigPath, path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.StorePath)
}
