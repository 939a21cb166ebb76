package projectcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/clock"
	"go.revet.dev/revet/internal/adapters/config"
	"go.revet.dev/revet/internal/adapters/gitstore"
	"go.revet.dev/revet/internal/adapters/indexer"
	"go.revet.dev/revet/internal/adapters/logger"
	"go.revet.dev/revet/internal/adapters/telemetry"
	"go.revet.dev/revet/internal/core/ports"
)

// NodeID is the unique identifier for the project cache Graft node.
const NodeID graft.ID = "engine.projectcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gitstore.NodeID,
			clock.NodeID,
			indexer.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.RepositoryStore](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[*clock.Ticking](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[*indexer.Service](ctx)
			if err != nil {
				return nil, err
			}
			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, clk, idx, metrics, log, Options{
				RefreshWindow: cfg.RefreshTicks,
				RootProject:   cfg.RootProject,
				UsersProject:  cfg.UsersProject,
			}), nil
		},
	})
}
