package frameless

import "strconv"

// Handle identifies a native window. It is borrowed, never owned.
type Handle uintptr

type Point struct {
	X, Y int32
}

// Rect matches the Win32 RECT layout.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Window messages
// https://docs.microsoft.com/en-us/windows/win32/winmsg/about-messages-and-message-queues
const (
	WM_CREATE         = 0x0001
	WM_DESTROY        = 0x0002
	WM_SIZE           = 0x0005
	WM_CLOSE          = 0x0010
	WM_NCCALCSIZE     = 0x0083
	WM_NCHITTEST      = 0x0084
	WM_NCPAINT        = 0x0085
	WM_NCACTIVATE     = 0x0086
	WM_MOUSEMOVE      = 0x0200
	WM_LBUTTONDOWN    = 0x0201
	WM_LBUTTONUP      = 0x0202
	WM_CAPTURECHANGED = 0x0215
	WM_APP            = 0x8000
)

// WM_SIZE wParam values
const (
	SIZE_RESTORED  = 0
	SIZE_MINIMIZED = 1
	SIZE_MAXIMIZED = 2
	SIZE_MAXSHOW   = 3
	SIZE_MAXHIDE   = 4
)

// SetWindowPos flags
const (
	SWP_NOSIZE        = 0x0001
	SWP_NOMOVE        = 0x0002
	SWP_NOZORDER      = 0x0004
	SWP_NOREDRAW      = 0x0008
	SWP_NOACTIVATE    = 0x0010
	SWP_FRAMECHANGED  = 0x0020
	SWP_NOOWNERZORDER = 0x0200
)

// GetSystemMetrics indexes
const (
	SM_CYCAPTION      = 4
	SM_CYMENU         = 15
	SM_CXPADDEDBORDER = 92
)

// HitTest is a WM_NCHITTEST classification.
type HitTest int32

const (
	HTERROR       HitTest = -2
	HTTRANSPARENT HitTest = -1
	HTNOWHERE     HitTest = 0
	HTCLIENT      HitTest = 1
	HTCAPTION     HitTest = 2
	HTSYSMENU     HitTest = 3
	HTGROWBOX     HitTest = 4
	HTMENU        HitTest = 5
	HTHSCROLL     HitTest = 6
	HTVSCROLL     HitTest = 7
	HTMINBUTTON   HitTest = 8
	HTMAXBUTTON   HitTest = 9
	HTLEFT        HitTest = 10
	HTRIGHT       HitTest = 11
	HTTOP         HitTest = 12
	HTTOPLEFT     HitTest = 13
	HTTOPRIGHT    HitTest = 14
	HTBOTTOM      HitTest = 15
	HTBOTTOMLEFT  HitTest = 16
	HTBOTTOMRIGHT HitTest = 17
	HTBORDER      HitTest = 18
	HTOBJECT      HitTest = 19
	HTCLOSE       HitTest = 20
	HTHELP        HitTest = 21
)

var hitTestNames = map[HitTest]string{
	HTERROR:       "HTERROR",
	HTTRANSPARENT: "HTTRANSPARENT",
	HTNOWHERE:     "HTNOWHERE",
	HTCLIENT:      "HTCLIENT",
	HTCAPTION:     "HTCAPTION",
	HTSYSMENU:     "HTSYSMENU",
	HTGROWBOX:     "HTGROWBOX",
	HTMENU:        "HTMENU",
	HTHSCROLL:     "HTHSCROLL",
	HTVSCROLL:     "HTVSCROLL",
	HTMINBUTTON:   "HTMINBUTTON",
	HTMAXBUTTON:   "HTMAXBUTTON",
	HTLEFT:        "HTLEFT",
	HTRIGHT:       "HTRIGHT",
	HTTOP:         "HTTOP",
	HTTOPLEFT:     "HTTOPLEFT",
	HTTOPRIGHT:    "HTTOPRIGHT",
	HTBOTTOM:      "HTBOTTOM",
	HTBOTTOMLEFT:  "HTBOTTOMLEFT",
	HTBOTTOMRIGHT: "HTBOTTOMRIGHT",
	HTBORDER:      "HTBORDER",
	HTOBJECT:      "HTOBJECT",
	HTCLOSE:       "HTCLOSE",
	HTHELP:        "HTHELP",
}

func (h HitTest) String() string {
	if name, ok := hitTestNames[h]; ok {
		return name
	}
	return "HitTest(" + strconv.Itoa(int(h)) + ")"
}

// hitTestFromResult converts a window procedure result to a classification.
// Results are sign-extended so HTERROR and HTTRANSPARENT survive the round trip.
func hitTestFromResult(r uintptr) HitTest {
	return HitTest(int32(r))
}

func (h HitTest) result() uintptr {
	return uintptr(int(h))
}

// PointFromLParam decodes the packed client coordinates of a mouse message.
// Both halves are signed: positions left of or above the client origin are
// negative on multi-monitor setups and while the pointer is captured.
func PointFromLParam(lParam uintptr) Point {
	return Point{
		X: int32(int16(uint16(lParam))),
		Y: int32(int16(uint16(lParam >> 16))),
	}
}

// MakeLParam packs x and y the way the system does for mouse messages.
func MakeLParam(x, y int32) uintptr {
	return uintptr(uint32(uint16(int16(x))) | uint32(uint16(int16(y)))<<16)
}
