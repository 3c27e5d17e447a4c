//go:build windows

package native

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettingsW = user32.NewProc("EnumDisplaySettingsW")
)

// enumCurrentSettings is ENUM_CURRENT_SETTINGS from winuser.h.
const enumCurrentSettings = 0xFFFFFFFF

// devMode mirrors the display half of the Win32 DEVMODEW structure, up
// to and including dmDisplayFrequency.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
}

// primaryRefreshRate reads dmDisplayFrequency for the primary display.
// A frequency of 0 or 1 means "hardware default" per the Win32 docs and
// is treated as unknown.
func primaryRefreshRate() float64 {
	var dm devMode
	dm.Size = uint16(unsafe.Sizeof(dm))

	ret, _, _ := procEnumDisplaySettingsW.Call(
		0, // nil device name selects the primary display
		enumCurrentSettings,
		uintptr(unsafe.Pointer(&dm)),
	)
	if ret == 0 {
		return 0
	}
	if dm.DisplayFrequency <= 1 {
		return 0
	}
	return float64(dm.DisplayFrequency)
}
