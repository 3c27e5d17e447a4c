// Package quickresponse configures an app for quick response: the
// window wakes promptly on input, presents without perceptible tearing
// where the platform allows, and caps its frame rate while active,
// dropping to a lower update cadence when idle or unfocused.
//
// Add the plugin before running the app:
//
//	a := app.New()
//	a.AddPlugins(quickresponse.Default())
//	a.Run()
//
// By default the plugin also installs the host's default subsystems
// with the recommended window configuration. Disable that with
// WithNoDefaultPlugins and apply WindowPlugin() yourself.
package quickresponse

import (
	"github.com/agiangrant/quickresponse/app"
	"github.com/agiangrant/quickresponse/framepace"
	"github.com/agiangrant/quickresponse/window"
)

// Plugin maps the selected response mode onto the windowing, event-loop
// and frame-pacing subsystems at build time.
type Plugin struct {
	mode Mode
}

// New wraps a mode in a plugin.
func New(mode Mode) *Plugin {
	return &Plugin{mode: mode}
}

// Default is fast vsync with the stock timing knobs.
func Default() *Plugin {
	return New(DefaultMode())
}

// FastVsync builds a fast-vsync plugin with the given rate caps.
func FastVsync(baseFPS, maxFPS float64) *Plugin {
	return New(ModeFastVsync(Params{
		BaseFPS:                baseFPS,
		MaxFPS:                 maxFPS,
		AutoInitDefaultPlugins: true,
	}))
}

// Immediate builds an immediate-presentation plugin with the given rate
// caps.
func Immediate(baseFPS, maxFPS float64) *Plugin {
	return New(ModeImmediate(Params{
		BaseFPS:                baseFPS,
		MaxFPS:                 maxFPS,
		AutoInitDefaultPlugins: true,
	}))
}

// AutoNoVsync builds a best-effort no-vsync plugin with the given rate
// caps.
func AutoNoVsync(baseFPS, maxFPS float64) *Plugin {
	return New(ModeAutoNoVsync(Params{
		BaseFPS:                baseFPS,
		MaxFPS:                 maxFPS,
		AutoInitDefaultPlugins: true,
	}))
}

// PowerSaving builds a power-saving plugin capped at maxFPS.
func PowerSaving(maxFPS float64) *Plugin {
	return New(ModePowerSaving(PowerSavingParams{
		MaxFPS:                 maxFPS,
		AutoInitDefaultPlugins: true,
	}))
}

// None builds a passthrough plugin. With installDefaults the host's
// default subsystems are still installed; without it the build is a
// no-op and the caller owns all setup.
func None(installDefaults bool) *Plugin {
	return New(ModeNone(installDefaults))
}

// Mode returns the mode this plugin was built with.
func (p *Plugin) Mode() Mode {
	return p.mode
}

// WithNoDefaultPlugins returns a copy that skips installing the host's
// default subsystems. Retrieve the recommended window configuration
// with WindowPlugin() and install it yourself.
func (p *Plugin) WithNoDefaultPlugins() *Plugin {
	return New(p.mode.WithNoDefaultPlugins())
}

// withNoFramepace returns a copy that skips limiter registration. Test
// use only.
func (p *Plugin) withNoFramepace() *Plugin {
	return New(p.mode.withNoFramepace())
}

// WindowPlugin returns the window configuration for the current mode on
// the current platform: the primary window carries the resolved present
// mode, every other field keeps its host default. For None it is the
// zero (fully default) configuration.
func (p *Plugin) WindowPlugin() window.Plugin {
	return p.windowPluginFor(CurrentPlatform())
}

func (p *Plugin) windowPluginFor(platform Platform) window.Plugin {
	if p.mode.kind == modeNone {
		return window.Plugin{}
	}
	return window.Plugin{
		PrimaryWindow: &window.Window{
			PresentMode: presentModeFor(p.mode, platform),
		},
	}
}

// Build applies the resolved policy to the app. See the package
// documentation for the defaults involved.
func (p *Plugin) Build(a *app.App) {
	if p.mode.kind == modeNone {
		if !p.mode.installDefaults {
			return
		}
		a.AddPlugins(window.DefaultPlugins(p.WindowPlugin())...)
		return
	}

	pol := resolvePolicy(p.mode, CurrentPlatform())

	// The windowing backend reads the event-loop settings at
	// initialisation, so they must land before the default plugins.
	app.InsertResource(a, window.EventLoopSettings{
		FocusedMode:   pol.focusedMode,
		UnfocusedMode: pol.unfocusedMode,
	})

	if pol.installDefaults {
		a.AddPlugins(window.DefaultPlugins(p.WindowPlugin())...)
	}

	// The limiter may already be registered by the caller; at most one
	// instance per app.
	if pol.engageLimiter && !p.mode.noFramepace && !app.PluginAdded[framepace.Plugin](a) {
		a.AddPlugins(framepace.Plugin{})
	}

	maxFPS := pol.framerateCap
	a.AddSystems(app.Startup, func(a *app.App) {
		if settings, ok := app.Resource[*framepace.Settings](a); ok {
			settings.Limiter = framepace.FromFramerate(maxFPS)
		}
	})
}
