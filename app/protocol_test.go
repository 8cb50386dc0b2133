package app

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/buptczq/WinFramelessHost/frameless"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	mu     sync.Mutex
	calls  []string
	status frameless.Status
	err    error
}

func (w *fakeWindow) call(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, name)
	return w.err
}

func (w *fakeWindow) Show() error     { return w.call("show") }
func (w *fakeWindow) Maximize() error { return w.call("maximize") }
func (w *fakeWindow) Minimize() error { return w.call("minimize") }
func (w *fakeWindow) Restore() error  { return w.call("restore") }
func (w *fakeWindow) Close() error    { return w.call("close") }

func (w *fakeWindow) Status() (frameless.Status, error) {
	if err := w.call("status"); err != nil {
		return frameless.Status{}, err
	}
	return w.status, nil
}

func (w *fakeWindow) Calls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.calls...)
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func serve(t *testing.T, w Window) (net.Conn, <-chan error) {
	t.Helper()
	client, server := net.Pipe()
	errc := make(chan error, 1)
	go func() {
		errc <- Serve(context.Background(), server, w, quietLogger())
	}()
	t.Cleanup(func() { client.Close() })
	return client, errc
}

func TestParseCommand(t *testing.T) {
	for _, c := range Commands {
		got, err := ParseCommand(" " + string(c) + "\r\n")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCommand("MAXIMIZE")
	require.NoError(t, err)
	assert.Equal(t, CmdMaximize, got)

	_, err = ParseCommand("fullscreen")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = ParseCommand("")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExecute(t *testing.T) {
	w := &fakeWindow{status: frameless.Status{State: frameless.StateMaximized}}
	for _, c := range []Command{CmdShow, CmdMaximize, CmdRestore, CmdMinimize, CmdClose} {
		detail, err := Execute(w, c)
		require.NoError(t, err)
		assert.Empty(t, detail)
	}
	detail, err := Execute(w, CmdState)
	require.NoError(t, err)
	assert.Equal(t, "maximized", detail)
	assert.Equal(t, []string{"show", "maximize", "restore", "minimize", "close", "status"}, w.Calls())

	_, err = Execute(w, Command("bogus"))
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestServeAndSend(t *testing.T) {
	w := &fakeWindow{status: frameless.Status{State: frameless.StateNormal, Dragging: true}}
	conn, _ := serve(t, w)

	detail, err := Send(conn, CmdMaximize)
	require.NoError(t, err)
	assert.Empty(t, detail)

	detail, err = Send(conn, CmdState)
	require.NoError(t, err)
	assert.Equal(t, "normal dragging", detail)

	assert.Equal(t, []string{"maximize", "status"}, w.Calls())
}

func TestServeReportsErrors(t *testing.T) {
	w := &fakeWindow{err: errors.New("window is closed")}
	conn, _ := serve(t, w)

	_, err := Send(conn, Command("spin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	_, err = Send(conn, CmdShow)
	require.Error(t, err)
	assert.Equal(t, "window is closed", err.Error())
}

func TestServeStopsAfterClose(t *testing.T) {
	w := &fakeWindow{}
	conn, errc := serve(t, w)

	_, err := Send(conn, CmdClose)
	require.NoError(t, err)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after close")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Serve(ctx, server, &fakeWindow{}, quietLogger())
	}()

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestSendBadResponse(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	go func() {
		defer server.Close()
		buf := make([]byte, 64)
		server.Read(buf)
		io.WriteString(server, "maybe\n")
	}()

	_, err := Send(client, CmdShow)
	assert.ErrorIs(t, err, ErrBadResponse)
}
