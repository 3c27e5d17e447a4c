// Package framepace caps the realised frame rate by sleeping at the end
// of each update, so the app never renders faster than its configured
// ceiling. The ceiling lives in the shared Settings resource and can be
// changed at any time.
package framepace

import (
	"fmt"
	"time"

	"github.com/agiangrant/quickresponse/internal/native"
)

type limiterKind uint8

const (
	limiterAuto limiterKind = iota
	limiterManual
	limiterOff
)

// Limiter selects the frame-pacing target.
type Limiter struct {
	kind      limiterKind
	frametime time.Duration
}

// Auto paces to the primary display's refresh rate when it can be
// queried, and is disabled otherwise.
func Auto() Limiter {
	return Limiter{kind: limiterAuto}
}

// Off disables frame pacing.
func Off() Limiter {
	return Limiter{kind: limiterOff}
}

// Manual paces to an explicit frametime. Non-positive frametimes
// disable pacing.
func Manual(frametime time.Duration) Limiter {
	if frametime <= 0 {
		return Off()
	}
	return Limiter{kind: limiterManual, frametime: frametime}
}

// FromFramerate builds a manual limiter targeting the given frame rate.
// Non-positive rates disable pacing.
func FromFramerate(fps float64) Limiter {
	if fps <= 0 {
		return Off()
	}
	return Manual(time.Duration(float64(time.Second) / fps))
}

// Enabled reports whether the limiter paces at all.
func (l Limiter) Enabled() bool {
	return l.kind != limiterOff
}

// Frametime returns the pacing target for this limiter. Auto resolves
// against the display refresh rate; Off and unresolvable Auto return 0.
func (l Limiter) Frametime() time.Duration {
	switch l.kind {
	case limiterManual:
		return l.frametime
	case limiterAuto:
		if hz := native.PrimaryRefreshRate(); hz > 0 {
			return time.Duration(float64(time.Second) / hz)
		}
		return 0
	default:
		return 0
	}
}

// String describes the limiter for logs.
func (l Limiter) String() string {
	switch l.kind {
	case limiterAuto:
		return "Auto"
	case limiterManual:
		return fmt.Sprintf("Manual(%s)", l.frametime)
	default:
		return "Off"
	}
}

// Settings is the shared limiter configuration resource. It is owned by
// the app; systems adjust the ceiling by mutating Limiter.
type Settings struct {
	Limiter Limiter
}
