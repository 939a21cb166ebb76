package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.revet.dev/revet/internal/adapters/clock"
	"go.revet.dev/revet/internal/adapters/indexer"
	"go.revet.dev/revet/internal/adapters/logger"
	"go.revet.dev/revet/internal/adapters/watcher"
	"go.revet.dev/revet/internal/core/ports"
	"go.revet.dev/revet/internal/engine/projectcache"
)

// Graft node identifiers for the application layer.
const (
	NodeID           graft.ID = "app.main"
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application with the adapters the entry
// point needs to shut down cleanly.
type Components struct {
	App     *App
	Logger  ports.Logger
	Cache   *projectcache.Cache
	Clock   *clock.Ticking
	Indexer *indexer.Service
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{projectcache.NodeID, watcher.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			cache, err := graft.Dep[*projectcache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[*watcher.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, projectcache.NodeID, clock.NodeID, indexer.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[*projectcache.Cache](ctx)
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
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:     a,
				Logger:  log,
				Cache:   cache,
				Clock:   clk,
				Indexer: idx,
			}, nil
		},
	})
}
