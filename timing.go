// FILE: lixenwraith/appconfig/timing.go
package appconfig

import "time"

// Timing constants for the file watcher.
const (
	MinDebounce     = 10 * time.Millisecond  // Floor applied to WatchOptions.Debounce
	DefaultDebounce = 200 * time.Millisecond // Editor save bursts coalesce within this window
)
