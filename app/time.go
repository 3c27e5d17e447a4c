package app

import "time"

// Time is the frame-timing resource updated once per update cycle.
type Time struct {
	// Startup is when the time plugin was built.
	Startup time.Time

	// Delta is the duration since the previous update.
	Delta time.Duration

	// Elapsed is the duration since Startup.
	Elapsed time.Duration

	// FrameCount is the number of completed updates.
	FrameCount uint64

	last time.Time
}

// DeltaSeconds returns Delta as seconds.
func (t *Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// TimePlugin inserts the Time resource and keeps it current.
type TimePlugin struct{}

// Build registers the Time resource and its per-frame updater.
func (TimePlugin) Build(a *App) {
	now := time.Now()
	InsertResource(a, &Time{Startup: now, last: now})

	a.AddSystems(Update, func(a *App) {
		t, ok := Resource[*Time](a)
		if !ok {
			return
		}
		now := time.Now()
		t.Delta = now.Sub(t.last)
		t.Elapsed = now.Sub(t.Startup)
		t.FrameCount++
		t.last = now
	})
}
