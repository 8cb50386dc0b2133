package main

//go:generate goversioninfo -icon=assets/icon.ico

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/buptczq/WinFramelessHost/app"
	"github.com/buptczq/WinFramelessHost/config"
	"github.com/buptczq/WinFramelessHost/utils"
	"github.com/hattya/go.notify"
	notification "github.com/hattya/go.notify/windows"
	"github.com/urfave/cli/v2"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		if errors.Is(err, app.ErrAlreadyRunning) {
			return
		}
		utils.MessageBox("Error:", err.Error(), utils.MB_ICONERROR)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "WinFramelessHost",
		Usage:   "Frameless window host",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config.yaml"},
			&cli.BoolFlag{Name: "debug", Usage: "Log at debug level"},
		},
		Action: runCmd,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Open the window (default)",
				Action: runCmd,
			},
			{
				Name:      "ctl",
				Usage:     "Send a command to the running instance",
				ArgsUsage: "<" + commandList() + ">",
				Action:    ctlCmd,
			},
		},
	}
}

func commandList() string {
	names := make([]string, len(app.Commands))
	for i, c := range app.Commands {
		names[i] = string(c)
	}
	return strings.Join(names, "|")
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}

func ctlCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cmd, err := app.ParseCommand(c.Args().First())
	if err != nil {
		return err
	}
	detail, err := app.SendCommand(c.Context, cfg.Control.Pipe, cmd)
	if err != nil {
		return err
	}
	if detail != "" {
		fmt.Println(detail)
	}
	return nil
}

func runCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Control.Enabled {
		if err := app.HandOff(c.Context, cfg.Control.Pipe); err != nil {
			log.Info("handed off to the running instance")
			return err
		}
	}

	if err := utils.SetProcessSystemDpiAware(); err != nil {
		log.WithError(err).Warn("failed to set DPI awareness")
	}

	// window
	win, err := utils.NewFramelessWindow(utils.WindowOptions{
		Title:           cfg.Window.Title,
		Width:           int32(cfg.Window.Width),
		Height:          int32(cfg.Window.Height),
		State:           cfg.WindowState(),
		CaptureRequests: cfg.Window.CaptureRequests,
		Log:             log,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	// systray
	notifier, err := initSystray(cfg.Window.Title)
	if err != nil {
		return err
	}
	sysTray := notifier.Sys().(*notification.NotifyIcon)
	menu := NewMenu(sysTray)

	// context
	ctx, cancel := context.WithCancel(c.Context)

	// application
	applications := []app.Application{
		&app.WindowMenu{Log: log},
		&app.SystemInfo{Log: log},
	}
	if cfg.Control.Enabled {
		applications = append(applications, &app.ControlPipe{Path: cfg.Control.Pipe, Log: log})
	}
	wg := new(sync.WaitGroup)
	for _, v := range applications {
		v.Menu(menu.Register)
		wg.Add(1)
		go func(application app.Application) {
			defer wg.Done()
			err := application.Run(ctx, win)
			if err != nil {
				log.WithError(err).WithField("app", application.AppId().String()).Warn("application stopped")
				utils.MessageBox(application.AppId().FullName()+" Error:", err.Error(), utils.MB_ICONWARNING)
			}
		}(v)
	}

	// interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	// show systray
	menu.menu.Sep()
	menu.menu.Item(app.AppId(app.MENU_QUIT).String(), app.MENU_QUIT)
	if err := sysTray.Add(); err != nil {
		log.WithError(err).Warn("failed to add tray icon")
	}

	// event
loop:
	for {
		select {
		case clicked := <-sysTray.Menu:
			if clicked.ID == app.MENU_QUIT {
				break loop
			}
			menu.Handle(app.AppId(clicked.ID))
		case <-sysTray.Balloon:
			continue
		case <-win.Done():
			break loop
		case <-quit:
			break loop
		}
	}

	sysTray.Close()
	cancel()
	win.Destroy()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-time.NewTimer(time.Second * 10).C:
		log.Warn("applications did not stop in time")
	case <-done:
	}
	return nil
}

func initSystray(title string) (notify.Notifier, error) {
	icon, err := notification.LoadIcon(1)
	if err != nil {
		return nil, err
	}
	n, err := notification.NewNotifier(title, icon)
	if err != nil {
		return nil, err
	}
	n.Register("info", notification.IconInfo, map[string]interface{}{
		"windows:sound": false,
	})
	utils.RegisterNotifier(n)
	return n, nil
}
