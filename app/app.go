package app

import (
	"context"

	"github.com/buptczq/WinFramelessHost/frameless"
)

const (
	APP_WINDOW = iota
	APP_CONTROL
	APP_SYSINFO
	MENU_MAXIMIZE
	MENU_RESTORE
	MENU_MINIMIZE
	MENU_QUIT
)

// Window is the part of a frameless window applications can drive. All
// methods may be called from any goroutine.
type Window interface {
	Show() error
	Maximize() error
	Minimize() error
	Restore() error
	Close() error
	Status() (frameless.Status, error)
}

// Application runs next to the window for the lifetime of the process and
// may add entries to the tray menu.
type Application interface {
	AppId() AppId
	Run(ctx context.Context, w Window) error
	Menu(func(id AppId, name string, handler func()))
}

type AppId int

var appIdToName = map[AppId]string{
	APP_WINDOW:    "Window",
	APP_CONTROL:   "Control",
	APP_SYSINFO:   "About",
	MENU_MAXIMIZE: "Maximize",
	MENU_RESTORE:  "Restore",
	MENU_MINIMIZE: "Minimize",
	MENU_QUIT:     "Quit",
}

var appIdToFullName = map[AppId]string{
	APP_WINDOW:  "Window Commands",
	APP_CONTROL: "Control Pipe",
	APP_SYSINFO: "System Information",
}

func (id AppId) String() string {
	return appIdToName[id]
}

func (id AppId) FullName() string {
	if name, ok := appIdToFullName[id]; ok {
		return name
	}
	return id.String()
}
