package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/buptczq/WinFramelessHost/utils"
	"github.com/sirupsen/logrus"
)

// SystemInfo logs the OS at startup and shows it from the tray together
// with the window's current state.
type SystemInfo struct {
	Log logrus.FieldLogger

	mu     sync.Mutex
	info   *utils.OSInfo
	window Window
}

func (*SystemInfo) AppId() AppId {
	return APP_SYSINFO
}

func (s *SystemInfo) Run(ctx context.Context, w Window) error {
	info, err := utils.QueryOSInfo()
	if err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{
		"os":       info.Caption,
		"version":  info.Version,
		"build":    info.BuildNumber,
		"elevated": info.Elevated,
	}).Info("system information")

	s.mu.Lock()
	s.info = info
	s.window = w
	s.mu.Unlock()
	<-ctx.Done()
	return nil
}

func (s *SystemInfo) Menu(register func(id AppId, name string, handler func())) {
	register(s.AppId(), s.AppId().String(), s.onClick)
}

func (s *SystemInfo) onClick() {
	s.mu.Lock()
	info, w := s.info, s.window
	s.mu.Unlock()
	if info == nil || w == nil {
		utils.MessageBox("Error:", s.AppId().FullName()+" is not available yet!", utils.MB_ICONWARNING)
		return
	}
	state := "unknown"
	if st, err := w.Status(); err == nil {
		state = st.String()
	}
	text := fmt.Sprintf("%s\nWindow: %s", info, state)
	if utils.MessageBox(s.AppId().FullName()+" (OK to copy):", text, utils.MB_OKCANCEL|utils.MB_ICONINFORMATION) == utils.IDOK {
		if err := utils.SetClipBoard(text); err != nil {
			s.Log.WithError(err).Warn("copy to clipboard failed")
			return
		}
		utils.Notify(s.AppId().FullName(), "Copied to clipboard")
	}
}
