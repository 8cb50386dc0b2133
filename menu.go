package main

import (
	"sync"

	"github.com/buptczq/WinFramelessHost/app"
	notification "github.com/hattya/go.notify/windows"
)

type Menu struct {
	menu *notification.Menu
	icon *notification.NotifyIcon

	mu       sync.Mutex
	handlers map[app.AppId]func()
}

func NewMenu(icon *notification.NotifyIcon) *Menu {
	return &Menu{
		menu:     icon.CreateMenu(),
		icon:     icon,
		handlers: make(map[app.AppId]func()),
	}
}

// Register adds a tray menu item; handler runs on the tray event loop.
func (m *Menu) Register(id app.AppId, name string, handler func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menu.Item(name, uint(id))
	m.handlers[id] = handler
}

func (m *Menu) Handle(id app.AppId) {
	m.mu.Lock()
	handler, ok := m.handlers[id]
	m.mu.Unlock()
	if ok {
		handler()
	}
}
