//go:build darwin && ios

package quickresponse

// detectDarwinPlatform returns iOS on ios-tagged darwin builds
func detectDarwinPlatform() Platform {
	return PlatformIOS
}
