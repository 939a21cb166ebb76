// Package config loads the server configuration from revet.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.revet.dev/revet/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable overriding the configuration
// file location.
const EnvConfigPath = "REVET_CONFIG"

// Defaults applied when revet.yaml is absent or leaves fields unset.
const (
	DefaultStorePath    = "projects"
	DefaultTickInterval = 5 * time.Minute
	DefaultRefreshTicks = uint64(1)
	DefaultRootProject  = domain.ProjectName("root")
	DefaultUsersProject = domain.ProjectName("users")
)

// Config is the resolved server configuration.
type Config struct {
	// StorePath is the repository store root directory.
	StorePath string

	// TickInterval is the wall-time period between logical clock ticks.
	TickInterval time.Duration

	// RefreshTicks is the cache freshness window in clock ticks.
	RefreshTicks uint64

	// RootProject and UsersProject are the well-known project names.
	RootProject  domain.ProjectName
	UsersProject domain.ProjectName

	// IndexQueueSize bounds the reindex request buffer; zero keeps the
	// indexer default.
	IndexQueueSize int
}

// Load reads the configuration file at path. An empty path falls back to
// $REVET_CONFIG, then to revet.yaml in the working directory. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = domain.ServerConfigFileName
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read server configuration"), "path", path)
	}

	var doc serverFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServerConfigInvalid.Error()), "path", path)
	}

	if doc.Store.Path != "" {
		cfg.StorePath = doc.Store.Path
	}
	if doc.Cache.TickInterval != "" {
		interval, err := time.ParseDuration(doc.Cache.TickInterval)
		if err != nil || interval <= 0 {
			return nil, zerr.With(domain.ErrServerConfigInvalid, "tickInterval", doc.Cache.TickInterval)
		}
		cfg.TickInterval = interval
	}
	if doc.Cache.RefreshTicks != nil {
		switch ticks := *doc.Cache.RefreshTicks; {
		case ticks < 0:
			cfg.RefreshTicks = domain.NeverRefresh
		default:
			cfg.RefreshTicks = uint64(ticks)
		}
	}
	if doc.Projects.Root != "" {
		cfg.RootProject = domain.ProjectName(doc.Projects.Root)
	}
	if doc.Projects.Users != "" {
		cfg.UsersProject = domain.ProjectName(doc.Projects.Users)
	}
	if doc.Index.QueueSize > 0 {
		cfg.IndexQueueSize = doc.Index.QueueSize
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		StorePath:    DefaultStorePath,
		TickInterval: DefaultTickInterval,
		RefreshTicks: DefaultRefreshTicks,
		RootProject:  DefaultRootProject,
		UsersProject: DefaultUsersProject,
	}
}
