package utils

// https://github.com/atotto/clipboard/blob/master/clipboard_windows.go

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfUnicodetext = 13
	gmemMoveable  = 0x0002
)

var (
	pOpenClipboard    = u32.NewProc("OpenClipboard")
	pCloseClipboard   = u32.NewProc("CloseClipboard")
	pEmptyClipboard   = u32.NewProc("EmptyClipboard")
	pSetClipboardData = u32.NewProc("SetClipboardData")
	pGlobalAlloc      = k32.NewProc("GlobalAlloc")
	pGlobalFree       = k32.NewProc("GlobalFree")
	pGlobalLock       = k32.NewProc("GlobalLock")
	pGlobalUnlock     = k32.NewProc("GlobalUnlock")
)

// openClipboard retries for up to a second; another process may hold it.
func openClipboard() error {
	deadline := time.Now().Add(time.Second)
	for {
		r, _, err := pOpenClipboard.Call(0)
		if r != 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Millisecond)
	}
}

// SetClipBoard replaces the clipboard contents with text.
func SetClipBoard(text string) error {
	data, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	if err := openClipboard(); err != nil {
		return err
	}
	defer pCloseClipboard.Call()

	if r, _, err := pEmptyClipboard.Call(); r == 0 {
		return err
	}

	// "If the hMem parameter identifies a memory object, the object must have
	// been allocated using the function with the GMEM_MOVEABLE flag."
	size := uintptr(len(data)) * unsafe.Sizeof(data[0])
	h, _, err := pGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return err
	}
	owned := false
	defer func() {
		if !owned {
			pGlobalFree.Call(h)
		}
	}()

	p, _, err := pGlobalLock.Call(h)
	if p == 0 {
		return err
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(data)), data)
	pGlobalUnlock.Call(h)

	if r, _, err := pSetClipboardData.Call(cfUnicodetext, h); r == 0 {
		return err
	}
	owned = true
	return nil
}
