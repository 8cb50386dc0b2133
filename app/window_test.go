package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowMenu(t *testing.T) {
	menu := &WindowMenu{Log: quietLogger()}
	handlers := map[AppId]func(){}
	names := map[AppId]string{}
	menu.Menu(func(id AppId, name string, handler func()) {
		handlers[id] = handler
		names[id] = name
	})
	require.Len(t, handlers, 3)
	assert.Equal(t, "Maximize", names[MENU_MAXIMIZE])
	assert.Equal(t, "Restore", names[MENU_RESTORE])
	assert.Equal(t, "Minimize", names[MENU_MINIMIZE])

	// clicks before the window exists are dropped
	handlers[MENU_MAXIMIZE]()

	w := &fakeWindow{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx, w) }()

	require.Eventually(t, func() bool {
		handlers[MENU_MINIMIZE]()
		return len(w.Calls()) > 0
	}, time.Second, 10*time.Millisecond)

	handlers[MENU_RESTORE]()
	handlers[MENU_MAXIMIZE]()
	calls := w.Calls()
	assert.Equal(t, []string{"restore", "maximize"}, calls[len(calls)-2:])

	cancel()
	assert.NoError(t, <-done)
}

func TestAppIdNames(t *testing.T) {
	assert.Equal(t, "Control Pipe", AppId(APP_CONTROL).FullName())
	assert.Equal(t, "Quit", AppId(MENU_QUIT).FullName())
	assert.Equal(t, "About", AppId(APP_SYSINFO).String())
}
