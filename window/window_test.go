package window

import (
	"testing"
	"time"

	"github.com/agiangrant/quickresponse/app"
)

func TestUpdateModes(t *testing.T) {
	if Continuous().IsReactive() {
		t.Error("Continuous() reports reactive")
	}

	m := Reactive(16 * time.Millisecond)
	wait, ok := m.Wait()
	if !ok || wait != 16*time.Millisecond {
		t.Errorf("Wait() = %v, %v, want 16ms, true", wait, ok)
	}

	// Non-positive waits degrade to continuous updates.
	for _, bad := range []time.Duration{0, -time.Second} {
		if Reactive(bad).IsReactive() {
			t.Errorf("Reactive(%v) should be continuous", bad)
		}
	}
}

func TestDesktopApplicationPreset(t *testing.T) {
	s := DesktopApplication()

	focused, ok := s.FocusedMode.Wait()
	if !ok || focused != 5*time.Second {
		t.Errorf("focused wait = %v, %v, want 5s, true", focused, ok)
	}
	unfocused, ok := s.UnfocusedMode.Wait()
	if !ok || unfocused != 60*time.Second {
		t.Errorf("unfocused wait = %v, %v, want 60s, true", unfocused, ok)
	}
}

func TestDefaultEventLoopSettings(t *testing.T) {
	s := DefaultEventLoopSettings()
	if s.FocusedMode.IsReactive() || s.UnfocusedMode.IsReactive() {
		t.Errorf("default settings not continuous: %+v", s)
	}
}

func TestPresentModeString(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want string
	}{
		{PresentModeAuto, "Auto"},
		{PresentModeFifo, "Fifo"},
		{PresentModeMailbox, "Mailbox"},
		{PresentModeImmediate, "Immediate"},
		{PresentModeAutoNoVsync, "AutoNoVsync"},
		{PresentMode(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPluginInstallsDefaults(t *testing.T) {
	a := app.New()
	a.AddPlugins(Plugin{})

	win, ok := app.Resource[*Window](a)
	if !ok {
		t.Fatal("window resource missing")
	}
	if *win != *DefaultWindow() {
		t.Errorf("window = %+v, want defaults %+v", win, DefaultWindow())
	}

	settings, ok := app.Resource[EventLoopSettings](a)
	if !ok {
		t.Fatal("event-loop settings missing")
	}
	if settings != DefaultEventLoopSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestPluginFillsUnsetWindowFields(t *testing.T) {
	a := app.New()
	a.AddPlugins(Plugin{PrimaryWindow: &Window{PresentMode: PresentModeMailbox}})

	win, ok := app.Resource[*Window](a)
	if !ok {
		t.Fatal("window resource missing")
	}
	if win.PresentMode != PresentModeMailbox {
		t.Errorf("PresentMode = %s, want Mailbox", win.PresentMode)
	}
	d := DefaultWindow()
	if win.Title != d.Title || win.Width != d.Width || win.Height != d.Height {
		t.Errorf("defaults not filled: %+v", win)
	}
	if !win.Focused {
		t.Error("window should start focused")
	}
}

func TestPluginPreservesExistingSettings(t *testing.T) {
	a := app.New()
	custom := EventLoopSettings{
		FocusedMode:   Reactive(time.Second / 30),
		UnfocusedMode: Reactive(time.Second / 10),
	}
	app.InsertResource(a, custom)

	a.AddPlugins(Plugin{})

	settings, _ := app.Resource[EventLoopSettings](a)
	if settings != custom {
		t.Errorf("settings = %+v, want pre-inserted %+v", settings, custom)
	}
}

func TestDefaultPluginsBundle(t *testing.T) {
	a := app.New()
	a.AddPlugins(DefaultPlugins(Plugin{})...)

	if !app.PluginAdded[app.TimePlugin](a) {
		t.Error("time plugin missing from bundle")
	}
	if !app.PluginAdded[Plugin](a) {
		t.Error("window plugin missing from bundle")
	}
	if !app.HasResource[*app.Time](a) {
		t.Error("time resource missing")
	}
}

func TestCurrentUpdateModeFollowsFocus(t *testing.T) {
	a := app.New()
	app.InsertResource(a, DesktopApplication())
	a.AddPlugins(Plugin{})

	win, _ := app.Resource[*Window](a)

	mode := currentUpdateMode(a)
	if wait, _ := mode.Wait(); wait != 5*time.Second {
		t.Errorf("focused wait = %v, want 5s", wait)
	}

	win.Focused = false
	mode = currentUpdateMode(a)
	if wait, _ := mode.Wait(); wait != 60*time.Second {
		t.Errorf("unfocused wait = %v, want 60s", wait)
	}
}
