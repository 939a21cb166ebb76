// Package build holds build-time metadata injected via ldflags.
package build

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
