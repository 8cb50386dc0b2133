package frameless

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	u32               = windows.NewLazySystemDLL("User32.dll")
	pDefWindowProc    = u32.NewProc("DefWindowProcW")
	pGetCursorPos     = u32.NewProc("GetCursorPos")
	pScreenToClient   = u32.NewProc("ScreenToClient")
	pClientToScreen   = u32.NewProc("ClientToScreen")
	pSetWindowPos     = u32.NewProc("SetWindowPos")
	pSetCapture       = u32.NewProc("SetCapture")
	pReleaseCapture   = u32.NewProc("ReleaseCapture")
	pGetSystemMetrics = u32.NewProc("GetSystemMetrics")
)

// NCCALCSIZE_PARAMS
// https://docs.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-nccalcsize_params
// When wParam is FALSE lParam points to a single RECT, which is laid out
// like the first element of Rgrc.
type ncCalcSizeParams struct {
	Rgrc  [3]Rect
	Lppos uintptr
}

// Win32 is the Platform backed by user32.
type Win32 struct{}

var _ Platform = Win32{}

func (Win32) DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := pDefWindowProc.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

func (Win32) CursorPos() Point {
	var pt Point
	pGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	return pt
}

func (Win32) ScreenToClient(hwnd Handle, p Point) Point {
	pScreenToClient.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&p)))
	return p
}

func (Win32) ClientToScreen(hwnd Handle, p Point) Point {
	pClientToScreen.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&p)))
	return p
}

func (Win32) SetWindowPos(hwnd Handle, x, y, cx, cy int32, flags uint32) {
	pSetWindowPos.Call(
		uintptr(hwnd),
		0,
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(flags),
	)
}

func (Win32) SetCapture(hwnd Handle) {
	pSetCapture.Call(uintptr(hwnd))
}

func (Win32) ReleaseCapture() {
	pReleaseCapture.Call()
}

func (Win32) SystemMetric(index int32) int32 {
	r, _, _ := pGetSystemMetrics.Call(uintptr(index))
	return int32(r)
}

func (Win32) ClientRect(lParam uintptr) *Rect {
	if lParam == 0 {
		return nil
	}
	return &(*ncCalcSizeParams)(unsafe.Pointer(lParam)).Rgrc[0]
}
