package utils

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/buptczq/WinFramelessHost/frameless"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

const classPrefix = "WinFramelessHost"

// Private messages the host posts to its own window.
const (
	wmHostCommand = frameless.WM_APP + 1
	wmHostStatus  = frameless.WM_APP + 2
)

type hostCommand uintptr

const (
	cmdShow hostCommand = iota
	cmdMaximize
	cmdMinimize
	cmdRestore
)

var ErrWindowClosed = errors.New("window is closed")

type WindowOptions struct {
	Title           string
	Width, Height   int32
	State           frameless.WindowState
	CaptureRequests int
	Log             logrus.FieldLogger
}

type createWindow struct {
	handle uintptr
	err    error
}

// FramelessWindow is a top-level window without native chrome. It runs its
// own message loop on a dedicated OS thread; its methods are safe to call
// from any goroutine.
type FramelessWindow struct {
	class       *wndClassEx
	window      windows.Handle
	interceptor *frameless.Interceptor
	log         logrus.FieldLogger
	done        chan struct{}
}

func NewFramelessWindow(opts WindowOptions) (*FramelessWindow, error) {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	titlePtr, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return nil, err
	}

	win := &FramelessWindow{
		log:  opts.Log,
		done: make(chan struct{}),
	}
	win.interceptor = frameless.NewInterceptor(frameless.Win32{},
		frameless.WithLogger(opts.Log),
		frameless.WithCaptureRequests(opts.CaptureRequests),
	)

	wcex, err := newWndClass(classPrefix+"."+RandomString(8), windows.NewCallback(win.wndProc))
	if err != nil {
		return nil, err
	}
	if err := wcex.register(); err != nil {
		return nil, fmt.Errorf("register window class: %w", err)
	}
	win.class = wcex

	styles := frameless.FramelessStyles(opts.State, frameless.DefaultStyles(opts.State))
	ch := make(chan createWindow)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(win.done)
		windowHandle, _, err := pCreateWindowEx.Call(
			uintptr(styles.ExStyle),
			uintptr(unsafe.Pointer(wcex.ClassName)),
			uintptr(unsafe.Pointer(titlePtr)),
			uintptr(styles.Style),
			cwUseDefault,
			cwUseDefault,
			uintptr(opts.Width),
			uintptr(opts.Height),
			0,
			0,
			uintptr(wcex.Instance),
			0,
		)
		ch <- createWindow{windowHandle, err}
		if windowHandle == 0 {
			return
		}
		pShowWindow.Call(windowHandle, uintptr(styles.ShowCmd))
		pUpdateWindow.Call(windowHandle)
		eventLoop()
		wcex.unregister()
	}()
	result := <-ch
	if result.handle == 0 {
		wcex.unregister()
		return nil, fmt.Errorf("create window: %w", result.err)
	}
	win.window = windows.Handle(result.handle)
	win.log.WithFields(logrus.Fields{
		"hwnd":  result.handle,
		"state": opts.State,
		"style": fmt.Sprintf("%#x", styles.Style),
	}).Info("frameless window created")
	return win, nil
}

// eventLoop pumps messages for the calling thread until WM_QUIT.
func eventLoop() {
	m := &msg{}
	for {
		ret, _, _ := pGetMessage.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0)

		// If the function retrieves a message other than WM_QUIT, the return value is nonzero.
		// If the function retrieves the WM_QUIT message, the return value is zero.
		// If there is an error, the return value is -1
		// https://msdn.microsoft.com/en-us/library/windows/desktop/ms644936(v=vs.85).aspx
		switch int32(ret) {
		case -1:
			return
		case 0:
			return
		default:
			pTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
			pDispatchMessage.Call(uintptr(unsafe.Pointer(m)))
		}
	}
}

// WindowProc callback function that processes messages sent to a window.
// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633573(v=vs.85).aspx
func (s *FramelessWindow) wndProc(hWnd windows.Handle, message uint32, wParam, lParam uintptr) (lResult uintptr) {
	switch message {
	case wmHostCommand:
		s.runCommand(hWnd, hostCommand(wParam))
		return 0
	case wmHostStatus:
		st := s.interceptor.Status()
		if iconic, _, _ := pIsIconic.Call(uintptr(hWnd)); iconic != 0 {
			st.State = frameless.StateMinimized
		}
		*(*frameless.Status)(unsafe.Pointer(lParam)) = st
		return 1
	case frameless.WM_DESTROY:
		s.log.WithField("hwnd", uintptr(hWnd)).Info("frameless window destroyed")
		pPostQuitMessage.Call(0)
	}
	return s.interceptor.WndProc(frameless.Handle(hWnd), message, wParam, lParam)
}

func (s *FramelessWindow) runCommand(hWnd windows.Handle, cmd hostCommand) {
	switch cmd {
	case cmdShow:
		if iconic, _, _ := pIsIconic.Call(uintptr(hWnd)); iconic != 0 {
			pShowWindow.Call(uintptr(hWnd), frameless.SW_RESTORE)
		}
		pSetForegroundWindow.Call(uintptr(hWnd))
	case cmdMaximize:
		pShowWindow.Call(uintptr(hWnd), frameless.SW_SHOWMAXIMIZED)
	case cmdMinimize:
		pShowWindow.Call(uintptr(hWnd), frameless.SW_MINIMIZE)
	case cmdRestore:
		pShowWindow.Call(uintptr(hWnd), frameless.SW_RESTORE)
	}
}

func (s *FramelessWindow) post(message uint32, wParam, lParam uintptr) error {
	select {
	case <-s.done:
		return ErrWindowClosed
	default:
	}
	res, _, err := pPostMessage.Call(uintptr(s.window), uintptr(message), wParam, lParam)
	if res == 0 {
		return err
	}
	return nil
}

func (s *FramelessWindow) Show() error {
	return s.post(wmHostCommand, uintptr(cmdShow), 0)
}

func (s *FramelessWindow) Maximize() error {
	return s.post(wmHostCommand, uintptr(cmdMaximize), 0)
}

func (s *FramelessWindow) Minimize() error {
	return s.post(wmHostCommand, uintptr(cmdMinimize), 0)
}

func (s *FramelessWindow) Restore() error {
	return s.post(wmHostCommand, uintptr(cmdRestore), 0)
}

// Close asks the window to close; Done is closed once it is gone.
func (s *FramelessWindow) Close() error {
	return s.post(frameless.WM_CLOSE, 0, 0)
}

// Status is read on the window thread, so it never races with a drag.
func (s *FramelessWindow) Status() (frameless.Status, error) {
	select {
	case <-s.done:
		return frameless.Status{}, ErrWindowClosed
	default:
	}
	var st frameless.Status
	res, _, _ := pSendMessage.Call(uintptr(s.window), wmHostStatus, 0, uintptr(unsafe.Pointer(&st)))
	if res == 0 {
		return frameless.Status{}, ErrWindowClosed
	}
	return st, nil
}

func (s *FramelessWindow) Handle() windows.Handle {
	return s.window
}

func (s *FramelessWindow) Done() <-chan struct{} {
	return s.done
}

// Destroy closes the window if it is still open and waits for its thread.
func (s *FramelessWindow) Destroy() {
	if err := s.Close(); err == nil {
		<-s.done
	}
}
