package quickresponse

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ModeConfig is the declarative TOML form of a response mode, for apps
// that want the mode chosen by a config file rather than code:
//
//	mode = "fast_vsync"
//	base_fps = 60.0
//	max_fps = 144.0
//
// Zero rates fall back to the defaults. The boolean fields are
// pointers so "absent" and "false" stay distinguishable.
type ModeConfig struct {
	// Mode is one of "fast_vsync", "immediate", "auto_no_vsync",
	// "power_saving", "none". Empty selects fast_vsync.
	Mode string `toml:"mode"`

	BaseFPS float64 `toml:"base_fps"`
	MaxFPS  float64 `toml:"max_fps"`

	AutoInitDefaultPlugins *bool `toml:"auto_init_default_plugins"`

	// InstallDefaultPlugins is the payload of mode = "none".
	InstallDefaultPlugins *bool `toml:"install_default_plugins"`
}

// ResponseMode converts the config into a mode value.
func (c ModeConfig) ResponseMode() (Mode, error) {
	params := DefaultParams()
	if c.BaseFPS > 0 {
		params.BaseFPS = c.BaseFPS
	}
	if c.MaxFPS > 0 {
		params.MaxFPS = c.MaxFPS
	}
	if c.AutoInitDefaultPlugins != nil {
		params.AutoInitDefaultPlugins = *c.AutoInitDefaultPlugins
	}

	switch c.Mode {
	case "", "fast_vsync":
		return ModeFastVsync(params), nil
	case "immediate":
		return ModeImmediate(params), nil
	case "auto_no_vsync":
		return ModeAutoNoVsync(params), nil
	case "power_saving":
		return ModePowerSaving(PowerSavingParams{
			MaxFPS:                 params.MaxFPS,
			AutoInitDefaultPlugins: params.AutoInitDefaultPlugins,
		}), nil
	case "none":
		install := true
		if c.InstallDefaultPlugins != nil {
			install = *c.InstallDefaultPlugins
		}
		return ModeNone(install), nil
	default:
		return Mode{}, fmt.Errorf("quickresponse: unknown mode %q", c.Mode)
	}
}

// FromConfigFile builds a plugin from a TOML mode description.
func FromConfigFile(path string) (*Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mode config: %w", err)
	}

	var cfg ModeConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mode config: %w", err)
	}

	mode, err := cfg.ResponseMode()
	if err != nil {
		return nil, err
	}
	return New(mode), nil
}
