package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Microsoft/go-winio"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyRunning is returned when another instance owns the control pipe.
var ErrAlreadyRunning = errors.New("another instance is already running")

// ControlPipe serves the control protocol on a named pipe.
type ControlPipe struct {
	Path string
	Log  logrus.FieldLogger

	mu      sync.Mutex
	running bool
}

func (s *ControlPipe) Run(ctx context.Context, w Window) error {
	// Only the current user may connect.
	var cfg = &winio.PipeConfig{
		SecurityDescriptor: "D:P(A;;GA;;;OW)",
	}
	pipe, err := winio.ListenPipe(s.Path, cfg)
	if err != nil {
		return err
	}
	s.setRunning(true)
	defer s.setRunning(false)
	defer pipe.Close()
	s.Log.WithField("pipe", s.Path).Info("control pipe listening")

	wg := new(sync.WaitGroup)
	// context cancelled
	go func() {
		<-ctx.Done()
		pipe.Close()
	}()
	// loop
	for {
		conn, err := pipe.Accept()
		if err != nil {
			wg.Wait()
			if err != winio.ErrPipeListenerClosed {
				return err
			}
			return nil
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := Serve(ctx, conn, w, s.Log); err != nil {
				s.Log.WithError(err).Debug("control connection ended")
			}
		}()
	}
}

func (*ControlPipe) AppId() AppId {
	return APP_CONTROL
}

func (*ControlPipe) Menu(func(id AppId, name string, handler func())) {}

func (s *ControlPipe) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *ControlPipe) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// SendCommand connects to the instance serving path and runs one command.
func SendCommand(ctx context.Context, path string, cmd Command) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	conn, err := winio.DialPipeContext(ctx, path)
	if err != nil {
		return "", fmt.Errorf("connect %s: %w", path, err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(2 * time.Second))
	return Send(conn, cmd)
}

// HandOff asks a running instance to show its window. It returns
// ErrAlreadyRunning when one answered, nil when none is listening.
func HandOff(ctx context.Context, path string) error {
	if _, err := SendCommand(ctx, path, CmdShow); err != nil {
		return nil
	}
	return ErrAlreadyRunning
}
