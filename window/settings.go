package window

import "time"

type updateModeKind uint8

const (
	updateModeContinuous updateModeKind = iota
	updateModeReactive
)

// UpdateMode describes how often the event loop wakes when no input
// arrives.
type UpdateMode struct {
	kind updateModeKind
	wait time.Duration
}

// Continuous updates every frame regardless of input.
func Continuous() UpdateMode {
	return UpdateMode{kind: updateModeContinuous}
}

// Reactive idles until input arrives or wait elapses, capping the
// no-input update rate. A non-positive wait falls back to Continuous.
func Reactive(wait time.Duration) UpdateMode {
	if wait <= 0 {
		return Continuous()
	}
	return UpdateMode{kind: updateModeReactive, wait: wait}
}

// IsReactive reports whether the mode idles between updates.
func (m UpdateMode) IsReactive() bool {
	return m.kind == updateModeReactive
}

// Wait returns the reactive wait interval. ok is false for Continuous.
func (m UpdateMode) Wait() (wait time.Duration, ok bool) {
	return m.wait, m.kind == updateModeReactive
}

// EventLoopSettings is the resource the windowing backend reads at
// initialisation to decide its update cadence. Insert it before the
// window plugin builds to override the default.
type EventLoopSettings struct {
	FocusedMode   UpdateMode
	UnfocusedMode UpdateMode
}

// DefaultEventLoopSettings updates continuously in both states, which is
// what a game wants by default.
func DefaultEventLoopSettings() EventLoopSettings {
	return EventLoopSettings{
		FocusedMode:   Continuous(),
		UnfocusedMode: Continuous(),
	}
}

// DesktopApplication is the preset for ordinary desktop applications:
// react to input, otherwise wake rarely. Focused windows refresh at
// least every 5 seconds, unfocused ones every minute.
func DesktopApplication() EventLoopSettings {
	return EventLoopSettings{
		FocusedMode:   Reactive(5 * time.Second),
		UnfocusedMode: Reactive(60 * time.Second),
	}
}
