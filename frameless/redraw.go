package frameless

// ForceFrameRedraw makes the system send WM_NCCALCSIZE again without moving,
// sizing, reordering or repainting the window.
func ForceFrameRedraw(p Platform, hwnd Handle) {
	p.SetWindowPos(hwnd, 0, 0, 0, 0,
		SWP_FRAMECHANGED|SWP_NOSIZE|SWP_NOMOVE|SWP_NOREDRAW|SWP_NOZORDER|SWP_NOOWNERZORDER)
}
