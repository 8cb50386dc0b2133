package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buptczq/WinFramelessHost/frameless"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	AppName      = "WinFramelessHost"
	DefaultPipe  = "\\\\.\\pipe\\win-frameless-host"
	fileName     = "config.yaml"
	maxCaptureRq = 4
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Control ControlConfig `yaml:"control"`
	Log     LogConfig     `yaml:"log"`
	Debug   bool          `yaml:"debug"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// State is normal, minimized or maximized.
	State string `yaml:"state"`
	// CaptureRequests is how many SetCapture calls start a drag.
	CaptureRequests int `yaml:"capture_requests"`
}

type ControlConfig struct {
	Enabled bool   `yaml:"enabled"`
	Pipe    string `yaml:"pipe"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File is appended to; empty means stderr.
	File string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:           AppName,
			Width:           1024,
			Height:          768,
			State:           frameless.StateNormal.String(),
			CaptureRequests: frameless.DefaultCaptureRequests,
		},
		Control: ControlConfig{
			Enabled: true,
			Pipe:    DefaultPipe,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName, fileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, ok := frameless.ParseWindowState(c.Window.State); !ok {
		return fmt.Errorf("%w: window state %q", ErrInvalidConfig, c.Window.State)
	}
	if c.Window.CaptureRequests < 1 || c.Window.CaptureRequests > maxCaptureRq {
		return fmt.Errorf("%w: capture_requests must be between 1 and %d", ErrInvalidConfig, maxCaptureRq)
	}
	if c.Control.Enabled && strings.TrimSpace(c.Control.Pipe) == "" {
		return fmt.Errorf("%w: control pipe name is empty", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// WindowState returns the validated initial window state.
func (c *Config) WindowState() frameless.WindowState {
	state, _ := frameless.ParseWindowState(c.Window.State)
	return state
}
