package utils

import (
	"github.com/hattya/go.notify"
	"golang.org/x/sys/windows"
)

var notifier notify.Notifier

const (
	MB_OK              = 0x00000000
	MB_OKCANCEL        = 0x00000001
	MB_YESNO           = 0x00000004
	MB_ICONHAND        = 0x00000010
	MB_ICONQUESTION    = 0x00000020
	MB_ICONEXCLAMATION = 0x00000030
	MB_ICONASTERISK    = 0x00000040
	MB_ICONWARNING     = MB_ICONEXCLAMATION
	MB_ICONERROR       = MB_ICONHAND
	MB_ICONINFORMATION = MB_ICONASTERISK
	MB_SETFOREGROUND   = 0x00010000
	MB_TOPMOST         = 0x00040000

	IDOK     = 1
	IDCANCEL = 2
	IDYES    = 6
	IDNO     = 7
)

// MessageBox shows a modal message box owned by no window and returns the
// button pressed, or -1 if it could not be shown.
func MessageBox(title, text string, style uint32) int {
	pText, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return -1
	}
	pTitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return -1
	}
	ret, err := windows.MessageBox(0, pText, pTitle, style|MB_SETFOREGROUND)
	if err != nil && ret == 0 {
		return -1
	}
	return int(ret)
}

func Notify(title, message string) {
	if notifier == nil {
		return
	}
	notifier.Notify("info", title, message)
}

func RegisterNotifier(n notify.Notifier) {
	notifier = n
}
