package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// WindowMenu puts the window commands into the tray menu.
type WindowMenu struct {
	Log logrus.FieldLogger

	mu     sync.Mutex
	window Window
}

func (*WindowMenu) AppId() AppId {
	return APP_WINDOW
}

func (s *WindowMenu) Run(ctx context.Context, w Window) error {
	s.mu.Lock()
	s.window = w
	s.mu.Unlock()
	<-ctx.Done()
	return nil
}

func (s *WindowMenu) Menu(register func(id AppId, name string, handler func())) {
	for _, item := range []struct {
		id  AppId
		cmd Command
	}{
		{MENU_MAXIMIZE, CmdMaximize},
		{MENU_RESTORE, CmdRestore},
		{MENU_MINIMIZE, CmdMinimize},
	} {
		register(item.id, item.id.String(), s.command(item.cmd))
	}
}

func (s *WindowMenu) command(cmd Command) func() {
	return func() {
		s.mu.Lock()
		w := s.window
		s.mu.Unlock()
		if w == nil {
			return
		}
		if _, err := Execute(w, cmd); err != nil && s.Log != nil {
			s.Log.WithError(err).WithField("command", cmd).Warn("menu command failed")
		}
	}
}
