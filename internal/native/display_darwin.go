//go:build darwin && !ios

package native

import (
	"github.com/ebitengine/purego"
)

const coreGraphicsPath = "/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics"

var (
	cgMainDisplayID             func() uint32
	cgDisplayCopyDisplayMode    func(display uint32) uintptr
	cgDisplayModeGetRefreshRate func(mode uintptr) float64
	cgDisplayModeRelease        func(mode uintptr)
)

// primaryRefreshRate asks CoreGraphics for the current display mode of
// the main display. CGDisplayModeGetRefreshRate returns 0 for displays
// that do not expose a fixed rate; we pass that through.
func primaryRefreshRate() float64 {
	handle, err := openLibrary(coreGraphicsPath)
	if err != nil {
		return 0
	}

	purego.RegisterLibFunc(&cgMainDisplayID, handle, "CGMainDisplayID")
	purego.RegisterLibFunc(&cgDisplayCopyDisplayMode, handle, "CGDisplayCopyDisplayMode")
	purego.RegisterLibFunc(&cgDisplayModeGetRefreshRate, handle, "CGDisplayModeGetRefreshRate")
	purego.RegisterLibFunc(&cgDisplayModeRelease, handle, "CGDisplayModeRelease")

	mode := cgDisplayCopyDisplayMode(cgMainDisplayID())
	if mode == 0 {
		return 0
	}
	defer cgDisplayModeRelease(mode)

	return cgDisplayModeGetRefreshRate(mode)
}
