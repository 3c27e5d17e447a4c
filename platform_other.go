//go:build !darwin

package quickresponse

// detectDarwinPlatform is never reached off darwin; it exists so every
// GOOS links.
func detectDarwinPlatform() Platform {
	return PlatformUnknown
}
