package utils

import "golang.org/x/sys/windows"

var (
	shcore                         = windows.NewLazySystemDLL("Shcore.dll")
	pSetProcessDpiAwareness        = shcore.NewProc("SetProcessDpiAwareness")
	pSetProcessDpiAwarenessCtx     = u32.NewProc("SetProcessDpiAwarenessContext")
	pSetProcessDPIAware            = u32.NewProc("SetProcessDPIAware")
	dpiAwarenessContextSystemAware = ^uintptr(1) // (HANDLE)-2
)

// SetProcessSystemDpiAware opts the process into system DPI awareness so
// GetSystemMetrics reports the caption and border sizes the frame is drawn
// with. It walks down from the newest API the system offers.
func SetProcessSystemDpiAware() error {
	if pSetProcessDpiAwarenessCtx.Find() == nil {
		r0, _, _ := pSetProcessDpiAwarenessCtx.Call(dpiAwarenessContextSystemAware)
		if r0 == 1 {
			return nil
		}
	}
	if pSetProcessDpiAwareness.Find() == nil {
		// PROCESS_SYSTEM_DPI_AWARE
		r0, _, err := pSetProcessDpiAwareness.Call(uintptr(1))
		if r0 == 0 {
			return nil
		}
		return err
	}
	if pSetProcessDPIAware.Find() == nil {
		r0, _, err := pSetProcessDPIAware.Call()
		if r0 == 1 {
			return nil
		}
		return err
	}
	return nil
}
