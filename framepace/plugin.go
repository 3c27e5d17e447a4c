package framepace

import (
	"time"

	"github.com/agiangrant/quickresponse/app"
)

// Plugin installs the Settings resource (unless one exists) and the
// end-of-frame pacer. Register it once per application.
type Plugin struct{}

// Build wires the limiter into the update schedule. The pacer runs
// after the systems registered before it, which is why callers add this
// plugin after the host defaults.
func (Plugin) Build(a *app.App) {
	if !app.HasResource[*Settings](a) {
		app.InsertResource(a, &Settings{Limiter: Auto()})
	}

	p := &pacer{}
	a.AddSystems(app.Update, p.pace)
}

// pacer sleeps away the remainder of each frame budget. Plain sleeping
// is deliberately coarse: oversleep shows up as a slightly lower
// realised rate, never as a busy CPU.
type pacer struct {
	frameStart time.Time
}

func (p *pacer) pace(a *app.App) {
	now := time.Now()
	if p.frameStart.IsZero() {
		// First frame has no budget to measure against.
		p.frameStart = now
		return
	}

	settings, ok := app.Resource[*Settings](a)
	if !ok || !settings.Limiter.Enabled() {
		p.frameStart = now
		return
	}

	target := settings.Limiter.Frametime()
	if target <= 0 {
		p.frameStart = now
		return
	}

	if remaining := target - now.Sub(p.frameStart); remaining > 0 {
		time.Sleep(remaining)
	}
	p.frameStart = time.Now()
}
