package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/config"
	"go.revet.dev/revet/internal/adapters/logger"
	"go.revet.dev/revet/internal/core/ports"
	"go.revet.dev/revet/internal/engine/projectcache"
)

// NodeID is the unique identifier for the store watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[*Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, projectcache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Watcher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[*projectcache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.StorePath, cache, log)
		},
	})
}
