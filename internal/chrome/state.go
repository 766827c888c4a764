package chrome

// ClosePhase is the position of the close gate.
type ClosePhase int

const (
	CloseIdle ClosePhase = iota
	CloseConfirmPending
)

func (p ClosePhase) String() string {
	switch p {
	case CloseIdle:
		return "idle"
	case CloseConfirmPending:
		return "confirm_pending"
	default:
		return "unknown"
	}
}

// CloseGate defers a close request until the user confirms it. The zero
// value is an idle gate that has not been confirmed.
type CloseGate struct {
	phase   ClosePhase
	allowed bool
}

// RequestClose registers a close request. It returns closeNow when the
// window may close immediately and prompt when a confirmation must be shown.
// A request made while a confirmation is already pending returns neither.
func (g *CloseGate) RequestClose(confirmRequired bool) (closeNow, prompt bool) {
	if !confirmRequired || g.allowed {
		g.phase = CloseIdle
		return true, false
	}
	if g.phase == CloseConfirmPending {
		return false, false
	}
	g.phase = CloseConfirmPending
	return false, true
}

// Confirm accepts a pending request. It reports whether there was one.
func (g *CloseGate) Confirm() bool {
	if g.phase != CloseConfirmPending {
		return false
	}
	g.phase = CloseIdle
	g.allowed = true
	return true
}

// Cancel drops a pending request. It reports whether there was one.
func (g *CloseGate) Cancel() bool {
	if g.phase != CloseConfirmPending {
		return false
	}
	g.phase = CloseIdle
	return true
}

func (g CloseGate) Phase() ClosePhase { return g.phase }

// Allowed reports whether a confirmation has been given.
func (g CloseGate) Allowed() bool { return g.allowed }

// State is the window state the chrome controller reads and mutates each
// frame. Maximized and Minimized are independent; the host decides what it
// means for both to be set.
type State struct {
	Maximized bool
	Minimized bool
	Decorated bool
	Close     CloseGate
}

// Observe copies flags reported by the host window manager into s.
func (s *State) Observe(maximized, minimized bool) {
	s.Maximized = maximized
	s.Minimized = minimized
}
