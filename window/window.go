// Package window provides the windowing subsystem configuration surface:
// the primary window specification, the swapchain present mode, and the
// event-loop settings resource read by the backend at initialisation.
package window

import (
	"github.com/agiangrant/quickresponse/app"
	"github.com/agiangrant/quickresponse/internal/native"
)

// Window describes the primary window. Zero values mean host defaults.
type Window struct {
	Title  string
	Width  uint32
	Height uint32

	// PresentMode selects the swapchain presentation policy.
	PresentMode PresentMode

	// Focused tracks whether the window currently has input focus. The
	// backend flips this on focus events; it starts focused.
	Focused bool
}

// DefaultWindow returns the host's default window specification.
func DefaultWindow() *Window {
	return &Window{
		Title:   "App",
		Width:   1280,
		Height:  720,
		Focused: true,
	}
}

// Plugin installs the windowing subsystem: the primary window resource,
// the event-loop settings (unless already present), and the app runner
// that drives updates at the configured cadence.
type Plugin struct {
	// PrimaryWindow overrides the default window specification.
	// Nil means host defaults for every field.
	PrimaryWindow *Window
}

// Build registers the window resources and the event-loop runner.
func (p Plugin) Build(a *app.App) {
	win := p.PrimaryWindow
	if win == nil {
		win = DefaultWindow()
	} else {
		w := *win // the plugin value stays inert after build
		win = &w
		if win.Title == "" {
			win.Title = DefaultWindow().Title
		}
		if win.Width == 0 || win.Height == 0 {
			d := DefaultWindow()
			win.Width, win.Height = d.Width, d.Height
		}
		win.Focused = true
	}
	app.InsertResource(a, win)

	// Settings inserted by the user (or the quickresponse plugin) before
	// this point win; the backend must see them at initialisation.
	if !app.HasResource[EventLoopSettings](a) {
		app.InsertResource(a, DefaultEventLoopSettings())
	}

	a.SetRunner(runEventLoop)
}

// DefaultPlugins is the host's standard subsystem bundle, configured
// with the given window plugin.
func DefaultPlugins(w Plugin) []app.Plugin {
	return []app.Plugin{
		app.TimePlugin{},
		w,
	}
}

// PrimaryRefreshRate returns the refresh rate of the primary display in
// Hz, or 0 when the platform offers no way to query it.
func PrimaryRefreshRate() float64 {
	return native.PrimaryRefreshRate()
}
