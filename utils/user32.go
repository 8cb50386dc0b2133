package utils

import "golang.org/x/sys/windows"

var (
	k32                  = windows.NewLazySystemDLL("Kernel32.dll")
	u32                  = windows.NewLazySystemDLL("User32.dll")
	pCreateWindowEx      = u32.NewProc("CreateWindowExW")
	pRegisterClass       = u32.NewProc("RegisterClassExW")
	pUnregisterClass     = u32.NewProc("UnregisterClassW")
	pDispatchMessage     = u32.NewProc("DispatchMessageW")
	pTranslateMessage    = u32.NewProc("TranslateMessage")
	pGetMessage          = u32.NewProc("GetMessageW")
	pPostMessage         = u32.NewProc("PostMessageW")
	pSendMessage         = u32.NewProc("SendMessageW")
	pPostQuitMessage     = u32.NewProc("PostQuitMessage")
	pShowWindow          = u32.NewProc("ShowWindow")
	pUpdateWindow        = u32.NewProc("UpdateWindow")
	pIsIconic            = u32.NewProc("IsIconic")
	pSetForegroundWindow = u32.NewProc("SetForegroundWindow")
	pLoadCursor          = u32.NewProc("LoadCursorW")
	pGetModuleHandle     = k32.NewProc("GetModuleHandleW")
)

const (
	cwUseDefault = 0x80000000
	idcArrow     = 32512
	colorWindow  = 5
)
