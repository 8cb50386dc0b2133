package frameless

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFramelessStyles(t *testing.T) {
	const want = WS_POPUP | WS_BORDER | WS_SYSMENU | WS_CLIPCHILDREN | WS_CLIPSIBLINGS |
		WS_SIZEBOX | WS_MINIMIZEBOX | WS_MAXIMIZEBOX

	for _, state := range []WindowState{StateNormal, StateMinimized, StateMaximized} {
		base := DefaultStyles(state)
		got := FramelessStyles(state, base)
		assert.Equal(t, uint32(want), got.Style, state.String())
		assert.Equal(t, base.ExStyle, got.ExStyle, state.String())
		assert.Equal(t, base.ShowCmd, got.ShowCmd, state.String())
		assert.Zero(t, got.Style&WS_CAPTION&^WS_BORDER, "no title bar")
	}
}

func TestFramelessStylesKeepsCustomBase(t *testing.T) {
	base := Styles{Style: 0x1, ExStyle: 0x00000008, ShowCmd: SW_HIDE}
	got := FramelessStyles(StateNormal, base)
	assert.Equal(t, uint32(0x00000008), got.ExStyle)
	assert.Equal(t, int32(SW_HIDE), got.ShowCmd)
	assert.NotEqual(t, base.Style, got.Style)
}

func TestDefaultStylesShowCommand(t *testing.T) {
	assert.Equal(t, int32(SW_SHOWNORMAL), DefaultStyles(StateNormal).ShowCmd)
	assert.Equal(t, int32(SW_SHOWMINIMIZED), DefaultStyles(StateMinimized).ShowCmd)
	assert.Equal(t, int32(SW_SHOWMAXIMIZED), DefaultStyles(StateMaximized).ShowCmd)
}

func TestParseWindowState(t *testing.T) {
	for _, state := range []WindowState{StateNormal, StateMinimized, StateMaximized} {
		got, ok := ParseWindowState(state.String())
		assert.True(t, ok)
		assert.Equal(t, state, got)
	}
	_, ok := ParseWindowState("fullscreen")
	assert.False(t, ok)
}
