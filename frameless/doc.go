// Package frameless turns a regular top-level window into a borderless one
// by intercepting its window procedure.
//
// The native caption and borders are never painted and the client area is
// extended over the space the caption would have taken. The left, right and
// bottom borders keep native resizing. Every other pixel reports itself as
// caption, and a press there drags the window by hand:
//
//	i := frameless.NewInterceptor(frameless.Win32{})
//	// in the window procedure
//	return i.WndProc(frameless.Handle(hwnd), msg, wParam, lParam)
//
// Create the window with FramelessStyles so snapping and the taskbar keep
// treating it as sizable and maximizable.
package frameless
