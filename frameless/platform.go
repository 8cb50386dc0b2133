package frameless

// Platform is the window system surface the interceptor calls into.
// Every call is made from the thread that dispatches the window's messages.
type Platform interface {
	// DefWindowProc runs the default processing for a message.
	DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr
	CursorPos() Point
	ScreenToClient(hwnd Handle, p Point) Point
	ClientToScreen(hwnd Handle, p Point) Point
	SetWindowPos(hwnd Handle, x, y, cx, cy int32, flags uint32)
	// SetCapture may deliver WM_CAPTURECHANGED synchronously.
	SetCapture(hwnd Handle)
	ReleaseCapture()
	SystemMetric(index int32) int32
	// ClientRect returns the proposed client rectangle carried by a
	// WM_NCCALCSIZE lParam. Writes through the pointer are seen by the system.
	ClientRect(lParam uintptr) *Rect
}
