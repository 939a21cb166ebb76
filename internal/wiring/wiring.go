// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.revet.dev/revet/internal/adapters/clock"
	_ "go.revet.dev/revet/internal/adapters/config"
	_ "go.revet.dev/revet/internal/adapters/gitstore"
	_ "go.revet.dev/revet/internal/adapters/indexer"
	_ "go.revet.dev/revet/internal/adapters/logger"
	_ "go.revet.dev/revet/internal/adapters/telemetry"
	_ "go.revet.dev/revet/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.revet.dev/revet/internal/app"
	_ "go.revet.dev/revet/internal/engine/projectcache"
)
