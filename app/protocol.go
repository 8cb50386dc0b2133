package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Command is one request on the control channel. Requests and responses
// are single lines: "<command>\n" is answered by "ok [detail]\n" or
// "error <message>\n".
type Command string

const (
	CmdShow     Command = "show"
	CmdMaximize Command = "maximize"
	CmdRestore  Command = "restore"
	CmdMinimize Command = "minimize"
	CmdState    Command = "state"
	CmdClose    Command = "close"
)

var Commands = []Command{CmdShow, CmdMaximize, CmdRestore, CmdMinimize, CmdState, CmdClose}

const maxLine = 256

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadResponse    = errors.New("malformed response")
)

func ParseCommand(line string) (Command, error) {
	cmd := Command(strings.ToLower(strings.TrimSpace(line)))
	for _, c := range Commands {
		if c == cmd {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(line))
}

// Execute runs cmd against w and returns the response detail.
func Execute(w Window, cmd Command) (string, error) {
	switch cmd {
	case CmdShow:
		return "", w.Show()
	case CmdMaximize:
		return "", w.Maximize()
	case CmdRestore:
		return "", w.Restore()
	case CmdMinimize:
		return "", w.Minimize()
	case CmdClose:
		return "", w.Close()
	case CmdState:
		st, err := w.Status()
		if err != nil {
			return "", err
		}
		return st.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd))
}

// Serve answers requests on conn until the peer hangs up, ctx is done or
// a close command has been answered. conn is closed on return.
func Serve(ctx context.Context, conn io.ReadWriteCloser, w Window, log logrus.FieldLogger) error {
	done := make(chan struct{})
	defer close(done)
	defer conn.Close()
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, maxLine), maxLine)
	for scanner.Scan() {
		cmd, err := ParseCommand(scanner.Text())
		var detail string
		if err == nil {
			detail, err = Execute(w, cmd)
		}
		entry := log.WithField("command", scanner.Text())
		if err != nil {
			entry.WithError(err).Warn("control request failed")
			if _, werr := fmt.Fprintf(conn, "error %s\n", err); werr != nil {
				return werr
			}
			continue
		}
		entry.Debug("control request")
		if _, err := io.WriteString(conn, strings.TrimSpace("ok "+detail)+"\n"); err != nil {
			return err
		}
		if cmd == CmdClose {
			return nil
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return scanner.Err()
}

// Send issues one request on conn and returns the response detail.
func Send(conn io.ReadWriter, cmd Command) (string, error) {
	if _, err := io.WriteString(conn, string(cmd)+"\n"); err != nil {
		return "", err
	}
	line, err := bufio.NewReaderSize(conn, maxLine).ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	switch {
	case line == "ok":
		return "", nil
	case strings.HasPrefix(line, "ok "):
		return strings.TrimPrefix(line, "ok "), nil
	case strings.HasPrefix(line, "error "):
		return "", errors.New(strings.TrimPrefix(line, "error "))
	}
	return "", fmt.Errorf("%w: %q", ErrBadResponse, line)
}
