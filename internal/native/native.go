// Package native queries the host platform for display properties the
// pure-Go layers cannot know, via dynamic library loading. Every probe
// is best effort: failures return zero values and callers fall back.
package native

import "sync"

var (
	refreshOnce sync.Once
	refreshRate float64
)

// PrimaryRefreshRate returns the refresh rate of the primary display in
// Hz. It returns 0 when the platform offers no query or the query
// fails; some displays (notably built-in laptop panels on macOS) report
// 0 themselves. The result is cached for the process lifetime.
func PrimaryRefreshRate() float64 {
	refreshOnce.Do(func() {
		refreshRate = primaryRefreshRate()
	})
	return refreshRate
}
