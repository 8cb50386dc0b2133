package frameless

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Mode is the interaction state of a frameless window.
// A maximized window can never be dragging.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDragging
	ModeMaximized
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDragging:
		return "dragging"
	case ModeMaximized:
		return "maximized"
	}
	return "unknown"
}

// DefaultCaptureRequests is how many times SetCapture is issued when a drag
// starts. A single request does not reliably make the window receive its own
// WM_CAPTURECHANGED, which is what switches it into dragging.
const DefaultCaptureRequests = 2

// resizeBorders keep their native resize behavior. The top edge is left out:
// resizing from it glitches.
var resizeBorders = map[HitTest]bool{
	HTBOTTOM:      true,
	HTBOTTOMLEFT:  true,
	HTBOTTOMRIGHT: true,
	HTLEFT:        true,
	HTRIGHT:       true,
	HTBORDER:      true,
}

// IsResizeBorder reports whether h keeps native resize behavior.
func IsResizeBorder(h HitTest) bool {
	return resizeBorders[h]
}

// Interceptor is the window procedure of a frameless window. It removes the
// native caption and borders while keeping native resizing, and moves the
// window itself when it is dragged by any non-border pixel.
//
// An Interceptor is owned by the thread dispatching the window's messages and
// is not safe for concurrent use.
type Interceptor struct {
	platform        Platform
	log             logrus.FieldLogger
	captureRequests int

	hwnd   Handle
	mode   Mode
	anchor Point
}

type Option func(*Interceptor)

// WithLogger sets the logger used for state transitions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(i *Interceptor) {
		i.log = log
	}
}

// WithCaptureRequests overrides DefaultCaptureRequests. Values below one are ignored.
func WithCaptureRequests(n int) Option {
	return func(i *Interceptor) {
		if n > 0 {
			i.captureRequests = n
		}
	}
}

func NewInterceptor(p Platform, opts ...Option) *Interceptor {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	i := &Interceptor{
		platform:        p,
		log:             discard,
		captureRequests: DefaultCaptureRequests,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Handle returns the window handle recorded from WM_CREATE.
func (i *Interceptor) Handle() Handle {
	return i.hwnd
}

func (i *Interceptor) Mode() Mode {
	return i.mode
}

func (i *Interceptor) Maximized() bool {
	return i.mode == ModeMaximized
}

func (i *Interceptor) Dragging() bool {
	return i.mode == ModeDragging
}

// Anchor returns the client position the current drag started at.
func (i *Interceptor) Anchor() (Point, bool) {
	if i.mode != ModeDragging {
		return Point{}, false
	}
	return i.anchor, true
}

// WndProc handles one window message. Messages it does not fully own are
// passed on to the platform's default window procedure.
func (i *Interceptor) WndProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case WM_LBUTTONDOWN:
		i.beginDrag(hwnd)
	case WM_CAPTURECHANGED:
		i.captureChanged(hwnd, Handle(lParam))
	case WM_MOUSEMOVE:
		i.dragTo(hwnd, PointFromLParam(lParam))
	case WM_LBUTTONUP:
		i.endDrag()
	case WM_CREATE:
		i.hwnd = hwnd
		i.log.WithField("hwnd", hwnd).Debug("window created")
	case WM_NCPAINT:
		return 0
	case WM_NCACTIVATE:
		// lParam -1 keeps DefWindowProc from repainting the non-client area.
		return i.platform.DefWindowProc(hwnd, msg, wParam, ^uintptr(0))
	case WM_SIZE:
		i.sizeChanged(wParam)
		ForceFrameRedraw(i.platform, hwnd)
	case WM_NCCALCSIZE:
		return i.calcSize(hwnd, msg, wParam, lParam)
	case WM_NCHITTEST:
		return i.hitTest(hwnd, msg, wParam, lParam)
	}
	return i.platform.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (i *Interceptor) sizeChanged(flag uintptr) {
	maximized := flag == SIZE_MAXIMIZED || flag == SIZE_MAXSHOW
	switch {
	case maximized && i.mode == ModeDragging:
		i.setMode(ModeMaximized)
		i.platform.ReleaseCapture()
	case maximized && i.mode != ModeMaximized:
		i.setMode(ModeMaximized)
	case !maximized && i.mode == ModeMaximized:
		i.setMode(ModeNormal)
	}
}

// FrameInset is the height of the caption the system would have reserved.
func (i *Interceptor) FrameInset() int32 {
	caption := i.platform.SystemMetric(SM_CYCAPTION)
	menu := i.platform.SystemMetric(SM_CYMENU)
	padded := i.platform.SystemMetric(SM_CXPADDEDBORDER)
	return caption - menu + padded
}

func (i *Interceptor) calcSize(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	inset := i.FrameInset()
	result := i.platform.DefWindowProc(hwnd, msg, wParam, lParam)
	if i.mode != ModeMaximized {
		if rc := i.platform.ClientRect(lParam); rc != nil {
			rc.Top -= inset
		}
	}
	return result
}

func (i *Interceptor) hitTest(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	result := i.platform.DefWindowProc(hwnd, msg, wParam, lParam)
	if IsResizeBorder(hitTestFromResult(result)) {
		return result
	}
	return HTCAPTION.result()
}

func (i *Interceptor) setMode(m Mode) {
	if m == i.mode {
		return
	}
	i.log.WithFields(logrus.Fields{
		"hwnd": i.hwnd,
		"from": i.mode,
		"to":   m,
	}).Debug("mode changed")
	i.mode = m
}
