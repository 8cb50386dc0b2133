package frameless

// beginDrag records where in the client area the primary button went down
// and asks for pointer capture. The window only starts dragging once the
// system confirms the capture through WM_CAPTURECHANGED.
func (i *Interceptor) beginDrag(hwnd Handle) {
	if i.mode == ModeMaximized {
		return
	}
	i.anchor = i.platform.ScreenToClient(hwnd, i.platform.CursorPos())
	for n := 0; n < i.captureRequests; n++ {
		i.platform.SetCapture(hwnd)
	}
}

// captureChanged tracks capture ownership. Losing capture to any other
// window cancels a drag.
func (i *Interceptor) captureChanged(hwnd, owner Handle) {
	switch {
	case i.mode == ModeMaximized:
	case owner == hwnd:
		i.setMode(ModeDragging)
		i.log.WithField("anchor", i.anchor).Debug("drag started")
	default:
		i.setMode(ModeNormal)
	}
}

// dragTo keeps the anchor under the pointer.
func (i *Interceptor) dragTo(hwnd Handle, client Point) {
	if i.mode != ModeDragging {
		return
	}
	screen := i.platform.ClientToScreen(hwnd, client)
	i.platform.SetWindowPos(hwnd,
		screen.X-i.anchor.X, screen.Y-i.anchor.Y, 0, 0,
		SWP_NOACTIVATE|SWP_NOZORDER|SWP_NOOWNERZORDER|SWP_NOSIZE)
}

// endDrag gives capture back; the resulting WM_CAPTURECHANGED ends the drag.
func (i *Interceptor) endDrag() {
	if i.mode != ModeDragging {
		return
	}
	i.platform.ReleaseCapture()
}
