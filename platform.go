package quickresponse

import "runtime"

// Platform represents the operating system the app presents on. The
// policy resolver takes it as a parameter so every row of the
// present-mode table is exercisable on any build host.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the app is running on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		// Legacy gomobile iOS builds use GOOS=darwin with the ios build
		// tag, so darwin needs a build-tag level check.
		return detectDarwinPlatform()
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}
