// export_test.go exports private methods for white-box testing.
package watcher

import "github.com/fsnotify/fsnotify"

// Handle exposes the event translation for tests, bypassing the fsnotify
// event loop.
func (w *Watcher) Handle(event fsnotify.Event) {
	w.handle(event)
}

// Flush forces dispatch of coalesced events without waiting for the
// debounce window.
func (w *Watcher) Flush() {
	w.debounce.Flush()
}
