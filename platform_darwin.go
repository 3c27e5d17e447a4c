//go:build darwin && !ios

package quickresponse

// detectDarwinPlatform returns macOS on non-iOS darwin builds
func detectDarwinPlatform() Platform {
	return PlatformMacOS
}
