package frameless

import "fmt"

// fakePlatform emulates the parts of the window manager the interceptor
// relies on: a single window at a screen origin, a cursor, system-wide
// capture ownership and the default window procedure.
type fakePlatform struct {
	hwnd   Handle
	origin Point
	cursor Point

	captureOwner Handle
	// deliver routes WM_CAPTURECHANGED back to the window losing capture.
	deliver func(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr

	hitTest  HitTest
	proposed Rect
	metrics  map[int32]int32

	calls []string
}

func newFakePlatform(hwnd Handle) *fakePlatform {
	return &fakePlatform{
		hwnd:    hwnd,
		origin:  Point{X: 100, Y: 100},
		hitTest: HTCLIENT,
		metrics: map[int32]int32{
			SM_CYCAPTION:      23,
			SM_CYMENU:         20,
			SM_CXPADDEDBORDER: 4,
		},
	}
}

func (f *fakePlatform) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakePlatform) reset() {
	f.calls = nil
}

func (f *fakePlatform) DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	f.record("DefWindowProc(%#x, %#x, %#x, %#x)", hwnd, msg, wParam, lParam)
	switch msg {
	case WM_NCHITTEST:
		return f.hitTest.result()
	case WM_NCCALCSIZE:
		if rc := f.ClientRect(lParam); rc != nil {
			*rc = f.proposed
		}
	}
	return 0
}

func (f *fakePlatform) CursorPos() Point {
	return f.cursor
}

func (f *fakePlatform) ScreenToClient(hwnd Handle, p Point) Point {
	f.record("ScreenToClient(%#x)", hwnd)
	return Point{X: p.X - f.origin.X, Y: p.Y - f.origin.Y}
}

func (f *fakePlatform) ClientToScreen(hwnd Handle, p Point) Point {
	f.record("ClientToScreen(%#x)", hwnd)
	return Point{X: p.X + f.origin.X, Y: p.Y + f.origin.Y}
}

func (f *fakePlatform) SetWindowPos(hwnd Handle, x, y, cx, cy int32, flags uint32) {
	f.record("SetWindowPos(%#x, %d, %d, %d, %d, %#x)", hwnd, x, y, cx, cy, flags)
	if flags&SWP_NOMOVE == 0 {
		f.origin = Point{X: x, Y: y}
	}
}

// SetCapture sends WM_CAPTURECHANGED to the previous owner, which includes
// the window itself when it already holds capture.
func (f *fakePlatform) SetCapture(hwnd Handle) {
	f.record("SetCapture(%#x)", hwnd)
	prev := f.captureOwner
	f.captureOwner = hwnd
	if prev == f.hwnd && f.deliver != nil {
		f.deliver(prev, WM_CAPTURECHANGED, 0, uintptr(hwnd))
	}
}

func (f *fakePlatform) ReleaseCapture() {
	f.record("ReleaseCapture()")
	prev := f.captureOwner
	f.captureOwner = 0
	if prev == f.hwnd && f.deliver != nil {
		f.deliver(prev, WM_CAPTURECHANGED, 0, 0)
	}
}

// stealCapture hands capture to another window, as a system dialog would.
func (f *fakePlatform) stealCapture(other Handle) {
	prev := f.captureOwner
	f.captureOwner = other
	if prev == f.hwnd && f.deliver != nil {
		f.deliver(prev, WM_CAPTURECHANGED, 0, uintptr(other))
	}
}

func (f *fakePlatform) SystemMetric(index int32) int32 {
	return f.metrics[index]
}

func (f *fakePlatform) ClientRect(lParam uintptr) *Rect {
	if lParam == 0 {
		return nil
	}
	return calcSizeRects[lParam]
}

// calcSizeRects stands in for the memory a WM_NCCALCSIZE lParam points to.
var calcSizeRects = map[uintptr]*Rect{}

func calcSizeParam(rc *Rect) uintptr {
	key := uintptr(len(calcSizeRects) + 1)
	calcSizeRects[key] = rc
	return key
}
