//go:build !windows && (!darwin || ios)

package native

// primaryRefreshRate has no portable implementation here. On Linux the
// rate depends on the active output and compositor (RandR vs Wayland),
// so the query is left to the windowing backend.
func primaryRefreshRate() float64 {
	return 0
}
