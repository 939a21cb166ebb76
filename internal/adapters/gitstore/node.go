package gitstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/config"
	"go.revet.dev/revet/internal/core/ports"
)

// NodeID is the unique identifier for the repository store Graft node.
const NodeID graft.ID = "adapter.repository_store"

func init() {
	graft.Register(graft.Node[ports.RepositoryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RepositoryStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.StorePath)
		},
	})
}
