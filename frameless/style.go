package frameless

// WindowState is the state a window is created in or switched to.
type WindowState int

const (
	StateNormal WindowState = iota
	StateMinimized
	StateMaximized
)

var windowStateNames = map[WindowState]string{
	StateNormal:    "normal",
	StateMinimized: "minimized",
	StateMaximized: "maximized",
}

func (s WindowState) String() string {
	if name, ok := windowStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseWindowState is the inverse of WindowState.String.
func ParseWindowState(name string) (WindowState, bool) {
	for state, n := range windowStateNames {
		if n == name {
			return state, true
		}
	}
	return StateNormal, false
}

// Window styles
const (
	WS_POPUP            = 0x80000000
	WS_BORDER           = 0x00800000
	WS_SYSMENU          = 0x00080000
	WS_CAPTION          = 0x00C00000
	WS_SIZEBOX          = 0x00040000
	WS_MINIMIZEBOX      = 0x00020000
	WS_MAXIMIZEBOX      = 0x00010000
	WS_CLIPSIBLINGS     = 0x04000000
	WS_CLIPCHILDREN     = 0x02000000
	WS_POPUPWINDOW      = WS_POPUP | WS_BORDER | WS_SYSMENU
	WS_OVERLAPPEDWINDOW = WS_CAPTION | WS_SYSMENU | WS_SIZEBOX | WS_MINIMIZEBOX | WS_MAXIMIZEBOX

	WS_EX_APPWINDOW = 0x00040000
)

// ShowWindow commands
const (
	SW_HIDE          = 0
	SW_SHOWNORMAL    = 1
	SW_SHOWMINIMIZED = 2
	SW_SHOWMAXIMIZED = 3
	SW_MINIMIZE      = 6
	SW_RESTORE       = 9
)

// Styles is the style triple a window is created with.
type Styles struct {
	Style   uint32
	ExStyle uint32
	ShowCmd int32
}

// DefaultStyles is the style triple of a regular captioned application window.
func DefaultStyles(state WindowState) Styles {
	s := Styles{
		Style:   WS_OVERLAPPEDWINDOW | WS_CLIPCHILDREN | WS_CLIPSIBLINGS,
		ExStyle: WS_EX_APPWINDOW,
		ShowCmd: SW_SHOWNORMAL,
	}
	switch state {
	case StateMaximized:
		s.ShowCmd = SW_SHOWMAXIMIZED
	case StateMinimized:
		s.ShowCmd = SW_SHOWMINIMIZED
	}
	return s
}

// FramelessStyles replaces the window style of base with a borderless popup
// that keeps the sizing border and the minimize/maximize capabilities, so
// snapping and taskbar gestures still work. ExStyle and ShowCmd are kept.
func FramelessStyles(state WindowState, base Styles) Styles {
	return Styles{
		Style: WS_POPUPWINDOW | WS_CLIPCHILDREN | WS_CLIPSIBLINGS |
			WS_SIZEBOX | WS_MINIMIZEBOX | WS_MAXIMIZEBOX,
		ExStyle: base.ExStyle,
		ShowCmd: base.ShowCmd,
	}
}
