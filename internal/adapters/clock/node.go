package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/config"
)

// NodeID is the unique identifier for the logical clock Graft node.
const NodeID graft.ID = "adapter.clock"

func init() {
	graft.Register(graft.Node[*Ticking]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Ticking, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			c := NewTicking(cfg.TickInterval)
			c.Start()
			return c, nil
		},
	})
}
