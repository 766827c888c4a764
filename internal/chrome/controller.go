// Package chrome gives a borderless window the affordances of a native title
// bar: drag to move, double click to maximize and the close, maximize and
// minimize buttons. It is free of any GUI toolkit; the widget layer feeds it
// Input snapshots and executes the Commands it returns.
package chrome

const (
	TitleBarHeight  float32 = 24
	TitleTextSize   float32 = 20
	ButtonGlyphSize float32 = 12
	ButtonWidth     float32 = 24
	ButtonMargin    float32 = 8
	SeparatorInset  float32 = 1
	SeparatorWidth  float32 = 1
)

// Button identifies a control button in the title bar.
type Button int

const (
	ButtonNone Button = iota
	ButtonClose
	ButtonMaximize
	ButtonMinimize
)

func (b Button) String() string {
	switch b {
	case ButtonClose:
		return "close"
	case ButtonMaximize:
		return "maximize"
	case ButtonMinimize:
		return "minimize"
	default:
		return "none"
	}
}

// Hint returns the tooltip for b given the current maximized flag.
func (b Button) Hint(maximized bool) string {
	switch b {
	case ButtonClose:
		return "Close the window"
	case ButtonMaximize:
		if maximized {
			return "Restore window"
		}
		return "Maximize window"
	case ButtonMinimize:
		return "Minimize the window"
	default:
		return ""
	}
}

// Buttons lists the control buttons in the order they are laid out, from
// the right edge of the title bar towards the left.
var Buttons = [...]Button{ButtonClose, ButtonMaximize, ButtonMinimize}

// Layout is the title bar geometry for one frame.
type Layout struct {
	Bar     Rect
	buttons [len(Buttons)]Rect
}

// NewLayout carves the title bar of the given height out of content and
// places the control buttons right to left inside it.
func NewLayout(content Rect, height float32) Layout {
	l := Layout{Bar: content.TopStrip(height)}
	right := l.Bar.X + l.Bar.Width - ButtonMargin
	for i := range Buttons {
		right -= ButtonWidth
		l.buttons[i] = Rect{X: right, Y: l.Bar.Y, Width: ButtonWidth, Height: l.Bar.Height}
	}
	return l
}

// ButtonRect returns the hit rectangle of b.
func (l Layout) ButtonRect(b Button) Rect {
	for i, candidate := range Buttons {
		if candidate == b {
			return l.buttons[i]
		}
	}
	return Rect{}
}

// ButtonAt returns the control button under p, or ButtonNone.
func (l Layout) ButtonAt(p Point) Button {
	if !l.Bar.Contains(p) {
		return ButtonNone
	}
	for i, b := range Buttons {
		if l.buttons[i].Contains(p) {
			return b
		}
	}
	return ButtonNone
}

// Draggable reports whether p is on the title bar but not on a button.
func (l Layout) Draggable(p Point) bool {
	return l.Bar.Contains(p) && l.ButtonAt(p) == ButtonNone
}

// Options are runtime settings consulted on every frame.
type Options interface {
	ConfirmClose() bool
}

// StaticOptions is an Options value that never changes.
type StaticOptions struct {
	Confirm bool
}

func (o StaticOptions) ConfirmClose() bool { return o.Confirm }

// Controller turns Input snapshots into Commands. It holds no per-frame
// state of its own; everything that persists between frames lives in State.
type Controller struct {
	Title   string
	Height  float32
	Options Options
}

func NewController(title string, height float32, options Options) *Controller {
	if height <= 0 {
		height = TitleBarHeight
	}
	if options == nil {
		options = StaticOptions{}
	}
	return &Controller{Title: title, Height: height, Options: options}
}

// Layout returns the title bar geometry for content.
func (c *Controller) Layout(content Rect) Layout {
	return NewLayout(content, c.Height)
}

// Update applies one frame of input to state and returns the commands the
// host must execute. A double click is checked before a drag, so a frame
// carrying both only toggles the maximized flag.
func (c *Controller) Update(state *State, in Input) []Command {
	l := c.Layout(in.Content)

	if in.Clicked || in.DoubleClicked {
		if b := l.ButtonAt(in.Pointer); b != ButtonNone {
			return c.Press(state, b)
		}
	}

	if in.DoubleClicked && l.Draggable(in.Pointer) {
		state.Maximized = !state.Maximized
		return []Command{SetMaximized{Maximized: state.Maximized}}
	}

	if in.PrimaryDown && l.Draggable(in.PressOrigin) && !in.Delta.IsZero() {
		return []Command{Move{DX: in.Delta.DX, DY: in.Delta.DY}}
	}

	return nil
}

// Press executes a click on control button b.
func (c *Controller) Press(state *State, b Button) []Command {
	switch b {
	case ButtonClose:
		return c.RequestClose(state)
	case ButtonMaximize:
		state.Maximized = !state.Maximized
		return []Command{SetMaximized{Maximized: state.Maximized}}
	case ButtonMinimize:
		state.Minimized = true
		return []Command{Minimize{}}
	default:
		return nil
	}
}

// RequestClose routes a close request through the close gate. Native close
// requests from the window manager use the same path as the close button.
func (c *Controller) RequestClose(state *State) []Command {
	closeNow, prompt := state.Close.RequestClose(c.Options.ConfirmClose())
	switch {
	case closeNow:
		return []Command{Close{}}
	case prompt:
		return []Command{ConfirmClose{}}
	default:
		return nil
	}
}

// Confirm resolves a pending confirmation. Accepting yields the close
// command; declining returns the gate to idle and yields nothing.
func (c *Controller) Confirm(state *State, accepted bool) []Command {
	if !accepted {
		state.Close.Cancel()
		return nil
	}
	if !state.Close.Confirm() {
		return nil
	}
	return []Command{Close{}}
}
