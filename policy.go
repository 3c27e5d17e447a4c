package quickresponse

import (
	"time"

	"github.com/agiangrant/quickresponse/window"
)

// policy is the configuration a mode resolves to on a given platform.
// It exists only for the duration of the build step.
type policy struct {
	presentMode   window.PresentMode
	focusedMode   window.UpdateMode
	unfocusedMode window.UpdateMode
	framerateCap  float64

	installDefaults bool
	engageLimiter   bool
}

// resolvePolicy maps a mode to its concrete policy. Pure: the same mode
// and platform always produce the same policy.
func resolvePolicy(m Mode, p Platform) policy {
	switch m.kind {
	case modeFastVsync, modeImmediate, modeAutoNoVsync:
		// The event loop idles but wakes on input or timed expiry,
		// clamping the no-input update rate to BaseFPS.
		cadence := window.Continuous()
		if m.params.BaseFPS > 0 {
			cadence = window.Reactive(time.Duration(float64(time.Second) / m.params.BaseFPS))
		}
		return policy{
			presentMode:     presentModeFor(m, p),
			focusedMode:     cadence,
			unfocusedMode:   cadence,
			framerateCap:    m.params.MaxFPS,
			installDefaults: m.params.AutoInitDefaultPlugins,
			engageLimiter:   true,
		}

	case modePowerSaving:
		settings := window.DesktopApplication()
		return policy{
			presentMode:     presentModeFor(m, p),
			focusedMode:     settings.FocusedMode,
			unfocusedMode:   settings.UnfocusedMode,
			framerateCap:    m.powerSaving.MaxFPS,
			installDefaults: m.powerSaving.AutoInitDefaultPlugins,
			engageLimiter:   true,
		}

	case modeNone:
		return policy{
			presentMode:     window.PresentModeAuto,
			focusedMode:     window.Continuous(),
			unfocusedMode:   window.Continuous(),
			installDefaults: m.installDefaults,
		}
	}

	panic("quickresponse: unknown mode variant")
}

// presentModeFor is the (mode, platform) half of the policy. Mailbox is
// tear-free and low-latency but unreliable on Metal, where AutoNoVsync
// substitutes.
func presentModeFor(m Mode, p Platform) window.PresentMode {
	switch m.kind {
	case modeFastVsync, modePowerSaving:
		switch p {
		case PlatformWindows, PlatformLinux:
			return window.PresentModeMailbox
		default:
			return window.PresentModeAutoNoVsync
		}
	case modeImmediate:
		return window.PresentModeImmediate
	case modeAutoNoVsync:
		return window.PresentModeAutoNoVsync
	case modeNone:
		return window.PresentModeAuto
	}

	panic("quickresponse: unknown mode variant")
}
