package quickresponse

import (
	"testing"
	"time"

	"github.com/agiangrant/quickresponse/app"
	"github.com/agiangrant/quickresponse/framepace"
	"github.com/agiangrant/quickresponse/window"
)

func TestBuildNoneFalseIsNoOp(t *testing.T) {
	a := app.New()
	a.AddPlugins(None(false))

	if app.HasResource[window.EventLoopSettings](a) {
		t.Error("event-loop settings inserted")
	}
	if app.HasResource[*window.Window](a) {
		t.Error("window resource inserted")
	}
	if app.PluginAdded[window.Plugin](a) {
		t.Error("window plugin installed")
	}
	if app.PluginAdded[framepace.Plugin](a) {
		t.Error("framepace plugin installed")
	}

	a.Update()
	if app.HasResource[*framepace.Settings](a) {
		t.Error("framepace settings appeared after update")
	}
}

func TestBuildNoneTrueInstallsDefaultsOnly(t *testing.T) {
	a := app.New()
	a.AddPlugins(None(true))

	if !app.PluginAdded[window.Plugin](a) {
		t.Error("window plugin not installed")
	}
	if !app.HasResource[*window.Window](a) {
		t.Error("window resource missing")
	}
	if !app.HasResource[*app.Time](a) {
		t.Error("time resource missing")
	}
	if app.PluginAdded[framepace.Plugin](a) {
		t.Error("framepace plugin installed for None mode")
	}

	// The settings come from the window plugin's default, not from a
	// quickresponse cadence policy.
	settings, ok := app.Resource[window.EventLoopSettings](a)
	if !ok {
		t.Fatal("event-loop settings missing")
	}
	if settings != window.DefaultEventLoopSettings() {
		t.Errorf("settings = %+v, want host default", settings)
	}

	a.Update()
	if app.HasResource[*framepace.Settings](a) {
		t.Error("framepace settings appeared after update")
	}
}

func TestBuildInsertsReactiveSettings(t *testing.T) {
	a := app.New()
	a.AddPlugins(Default())

	settings, ok := app.Resource[window.EventLoopSettings](a)
	if !ok {
		t.Fatal("event-loop settings missing")
	}

	sec := float64(time.Second)
	want := time.Duration(sec / 60.0)
	for _, m := range []window.UpdateMode{settings.FocusedMode, settings.UnfocusedMode} {
		wait, reactive := m.Wait()
		if !reactive {
			t.Fatalf("update mode %+v not reactive", m)
		}
		if wait != want {
			t.Errorf("wait = %v, want %v", wait, want)
		}
	}
}

func TestBuildWindowCarriesPresentMode(t *testing.T) {
	a := app.New()
	a.AddPlugins(Immediate(60, 60))

	win, ok := app.Resource[*window.Window](a)
	if !ok {
		t.Fatal("window resource missing")
	}
	if win.PresentMode != window.PresentModeImmediate {
		t.Errorf("PresentMode = %s, want Immediate", win.PresentMode)
	}
	// Unset fields were filled from host defaults.
	if win.Title == "" || win.Width == 0 || win.Height == 0 {
		t.Errorf("host defaults not applied: %+v", win)
	}
}

func TestLimiterRegistration(t *testing.T) {
	tests := []struct {
		name   string
		plugin *Plugin
		want   bool
	}{
		{"default", Default(), true},
		{"power saving", PowerSaving(60), true},
		{"suppressed", Default().withNoFramepace(), false},
		{"none true", None(true), false},
		{"none false", None(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := app.New()
			a.AddPlugins(tt.plugin)
			if got := app.PluginAdded[framepace.Plugin](a); got != tt.want {
				t.Errorf("framepace registered = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartupWritesFramerateCap(t *testing.T) {
	a := app.New()
	a.AddPlugins(Default())

	a.Update() // runs Startup

	settings, ok := app.Resource[*framepace.Settings](a)
	if !ok {
		t.Fatal("framepace settings missing")
	}
	if want := framepace.FromFramerate(120.0); settings.Limiter != want {
		t.Errorf("Limiter = %s, want %s", settings.Limiter, want)
	}
}

func TestStartupWithSuppressedLimiterIsHarmless(t *testing.T) {
	a := app.New()
	a.AddPlugins(Default().withNoFramepace())

	// The startup hook still runs; without the settings resource it
	// must do nothing.
	a.Update()
	if app.HasResource[*framepace.Settings](a) {
		t.Error("framepace settings appeared despite suppression")
	}
}

func TestBuildTwiceRegistersLimiterOnce(t *testing.T) {
	a := app.New()
	a.AddPlugins(Default())

	// A second build against the same app must notice the limiter is
	// already registered and skip it; a duplicate registration would
	// panic in the kernel.
	Default().WithNoDefaultPlugins().Build(a)

	if !app.PluginAdded[framepace.Plugin](a) {
		t.Error("framepace plugin missing")
	}
}

func TestCallerInstalledLimiterIsRespected(t *testing.T) {
	a := app.New()
	a.AddPlugins(framepace.Plugin{})
	a.AddPlugins(Default().WithNoDefaultPlugins())

	a.Update()

	settings, ok := app.Resource[*framepace.Settings](a)
	if !ok {
		t.Fatal("framepace settings missing")
	}
	if want := framepace.FromFramerate(120.0); settings.Limiter != want {
		t.Errorf("Limiter = %s, want %s", settings.Limiter, want)
	}
}
