package quickresponse

type modeKind uint8

const (
	modeFastVsync modeKind = iota
	modeImmediate
	modeAutoNoVsync
	modePowerSaving
	modeNone
)

// Params are the timing knobs for the vsync-replacing modes.
type Params struct {
	// BaseFPS caps the no-input update rate, for example while the
	// window sits unfocused. Default 60.
	BaseFPS float64

	// MaxFPS caps the active frame rate, for example while the mouse
	// moves over the window. Default 120. A MaxFPS below BaseFPS is not
	// rejected; the limiter simply caps below the idle cadence.
	MaxFPS float64

	// AutoInitDefaultPlugins installs the host's default subsystems
	// (window, input, render bundle) during build. Disable it to install
	// them yourself, together with WindowPlugin().
	AutoInitDefaultPlugins bool
}

// DefaultParams returns the stock timing knobs.
func DefaultParams() Params {
	return Params{
		BaseFPS:                60.0,
		MaxFPS:                 120.0,
		AutoInitDefaultPlugins: true,
	}
}

// PowerSavingParams are the knobs for the power-saving mode, which has
// no base rate of its own: the idle cadence comes from the host's
// desktop-application preset.
type PowerSavingParams struct {
	// MaxFPS caps the active frame rate.
	MaxFPS float64

	// AutoInitDefaultPlugins installs the host's default subsystems
	// during build.
	AutoInitDefaultPlugins bool
}

// Mode is the user's response intent: exactly one variant is active,
// carrying that variant's parameters. Modes compare structurally with
// == and copy by value.
type Mode struct {
	kind        modeKind
	params      Params
	powerSaving PowerSavingParams

	// installDefaults is the None variant's only payload.
	installDefaults bool

	// noFramepace suppresses limiter registration; set only by the
	// test-only modifier to keep unit tests hermetic.
	noFramepace bool
}

// ModeFastVsync presents with Mailbox where drivers support it (DX11,
// DX12, Vulkan) and falls back to AutoNoVsync on Metal, where Mailbox
// is unreliable. Flickering may occur on the fallback path.
func ModeFastVsync(p Params) Mode {
	return Mode{kind: modeFastVsync, params: p}
}

// ModeImmediate presents with no synchronisation at all. Lowest
// latency, but older DX12 and Wayland may reject the mode and fail
// window creation; it is therefore opt-in.
func ModeImmediate(p Params) Mode {
	return Mode{kind: modeImmediate, params: p}
}

// ModeAutoNoVsync asks the backend for its best-effort no-vsync mode on
// every platform. Recommended for multi-platform work; may flicker.
func ModeAutoNoVsync(p Params) Mode {
	return Mode{kind: modeAutoNoVsync, params: p}
}

// ModePowerSaving combines the fast-vsync presentation with the host's
// desktop-application update cadence: react to input, otherwise wake
// rarely.
func ModePowerSaving(p PowerSavingParams) Mode {
	return Mode{kind: modePowerSaving, powerSaving: p}
}

// ModeNone leaves the app at host defaults (typically continuous
// vsync). installDefaults decides whether the host's default subsystems
// are still installed on behalf of the caller.
func ModeNone(installDefaults bool) Mode {
	return Mode{kind: modeNone, installDefaults: installDefaults}
}

// DefaultMode is fast vsync with the stock timing knobs.
func DefaultMode() Mode {
	return ModeFastVsync(DefaultParams())
}

// WithNoDefaultPlugins returns a copy of the mode with automatic
// default-plugin installation disabled, whatever the active variant.
func (m Mode) WithNoDefaultPlugins() Mode {
	switch m.kind {
	case modePowerSaving:
		m.powerSaving.AutoInitDefaultPlugins = false
	case modeNone:
		m.installDefaults = false
	default:
		m.params.AutoInitDefaultPlugins = false
	}
	return m
}

// withNoFramepace returns a copy that skips limiter registration, so
// tests can build the plugin without installing the pacing system.
func (m Mode) withNoFramepace() Mode {
	m.noFramepace = true
	return m
}

// String returns the active variant's name.
func (m Mode) String() string {
	switch m.kind {
	case modeFastVsync:
		return "FastVsync"
	case modeImmediate:
		return "Immediate"
	case modeAutoNoVsync:
		return "AutoNoVsync"
	case modePowerSaving:
		return "PowerSaving"
	case modeNone:
		return "None"
	default:
		return "Unknown"
	}
}
