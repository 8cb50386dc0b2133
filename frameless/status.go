package frameless

// Status is a snapshot of a window taken on its message thread.
type Status struct {
	State    WindowState
	Dragging bool
}

func (s Status) String() string {
	if s.Dragging {
		return s.State.String() + " dragging"
	}
	return s.State.String()
}

// Status reports the interceptor's view of the window. Minimized windows
// are reported as normal; only the host can tell them apart.
func (i *Interceptor) Status() Status {
	st := Status{State: StateNormal}
	switch i.mode {
	case ModeMaximized:
		st.State = StateMaximized
	case ModeDragging:
		st.Dragging = true
	}
	return st
}
