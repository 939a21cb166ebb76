package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/config"
	"go.revet.dev/revet/internal/adapters/logger"
	"go.revet.dev/revet/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "adapter.indexer"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Service, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			opts := []Option{}
			if cfg.IndexQueueSize > 0 {
				opts = append(opts, WithQueueSize(cfg.IndexQueueSize))
			}
			return New(log, opts...), nil
		},
	})
}
