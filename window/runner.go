package window

import (
	"time"

	"github.com/agiangrant/quickresponse/app"
)

// runEventLoop drives updates until the app exits, honouring the
// event-loop settings: continuous modes update back to back (frame
// pacing, if any, happens inside the update), reactive modes sleep for
// the configured wait between updates.
//
// Input wakeups are delivered by the platform backend; this loop only
// owns the timed-expiry half of the reactive contract.
func runEventLoop(a *app.App) {
	for !a.Exiting() {
		start := time.Now()
		a.Update()

		mode := currentUpdateMode(a)
		wait, reactive := mode.Wait()
		if !reactive {
			continue
		}
		// The update itself, frame pacing included, counts against the
		// wait budget.
		if remaining := wait - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// currentUpdateMode picks the focused or unfocused cadence from the
// settings resource based on the primary window's focus state.
func currentUpdateMode(a *app.App) UpdateMode {
	settings, ok := app.Resource[EventLoopSettings](a)
	if !ok {
		settings = DefaultEventLoopSettings()
	}

	focused := true
	if win, ok := app.Resource[*Window](a); ok {
		focused = win.Focused
	}

	if focused {
		return settings.FocusedMode
	}
	return settings.UnfocusedMode
}
