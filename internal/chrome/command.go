package chrome

import "fmt"

// Command is an instruction for the host window manager. Commands are fire
// and forget: the controller never waits for or inspects their outcome.
type Command interface {
	fmt.Stringer
	command()
}

// Move translates the window by the pointer delta of one frame.
type Move struct {
	DX, DY float32
}

// SetMaximized maximizes or restores the window.
type SetMaximized struct {
	Maximized bool
}

// Minimize iconifies the window.
type Minimize struct{}

// Close closes the window.
type Close struct{}

// ConfirmClose asks the user to confirm a pending close.
type ConfirmClose struct{}

func (Move) command()         {}
func (SetMaximized) command() {}
func (Minimize) command()     {}
func (Close) command()        {}
func (ConfirmClose) command() {}

func (c Move) String() string { return fmt.Sprintf("move(%g,%g)", c.DX, c.DY) }

func (c SetMaximized) String() string {
	if c.Maximized {
		return "maximize"
	}
	return "restore"
}

func (Minimize) String() string     { return "minimize" }
func (Close) String() string        { return "close" }
func (ConfirmClose) String() string { return "confirm_close" }
