package window

// PresentMode controls how finished frames are handed to the compositor.
type PresentMode int

const (
	// PresentModeAuto lets the backend pick; on desktop this resolves to
	// vsync (Fifo). This is the host default.
	PresentModeAuto PresentMode = iota

	// PresentModeFifo waits for the next vertical blank before presenting,
	// capping the frame rate to the display refresh rate. Eliminates tearing.
	PresentModeFifo

	// PresentModeMailbox presents the newest finished frame at the next
	// vertical blank, discarding older queued frames. Tear-free and
	// low-latency, but not supported by every driver (notably Metal).
	PresentModeMailbox

	// PresentModeImmediate presents without any synchronisation. Lowest
	// latency; may tear, and older DX12 drivers and Wayland can reject it
	// outright.
	PresentModeImmediate

	// PresentModeAutoNoVsync asks the backend for its best-effort
	// no-vsync mode. The portable low-latency compromise.
	PresentModeAutoNoVsync
)

// String returns the mode name as used in window configuration.
func (m PresentMode) String() string {
	switch m {
	case PresentModeAuto:
		return "Auto"
	case PresentModeFifo:
		return "Fifo"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeAutoNoVsync:
		return "AutoNoVsync"
	default:
		return "Unknown"
	}
}
