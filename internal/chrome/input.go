package chrome

// Input is the pointer state sampled once per frame. Values are captured by
// the widget layer and never modified by the controller.
type Input struct {
	// Content is the drawable rectangle the title bar is carved from.
	Content Rect

	// Pointer is the current pointer position.
	Pointer Point

	// PrimaryDown is true while the primary button is held.
	PrimaryDown bool

	// Pressed is set only on the frame the primary button goes down.
	Pressed bool

	// PressOrigin is where the primary button went down. Only meaningful
	// while PrimaryDown is set.
	PressOrigin Point

	// Delta is the pointer movement since the previous frame.
	Delta Vec

	// Clicked is set on the frame a click (press and release) completes.
	Clicked bool

	// DoubleClicked is set on the frame a double click completes.
	DoubleClicked bool
}

// Hover returns a snapshot that only carries a pointer position.
func Hover(content Rect, p Point) Input {
	return Input{Content: content, Pointer: p}
}

// Click returns a snapshot for a completed primary click at p.
func Click(content Rect, p Point) Input {
	return Input{Content: content, Pointer: p, Clicked: true}
}

// DoubleClick returns a snapshot for a completed double click at p.
func DoubleClick(content Rect, p Point) Input {
	return Input{Content: content, Pointer: p, DoubleClicked: true}
}

// Press returns a snapshot for the primary button going down at p.
func Press(content Rect, p Point) Input {
	return Input{
		Content:     content,
		Pointer:     p,
		PrimaryDown: true,
		Pressed:     true,
		PressOrigin: p,
	}
}

// Drag returns a snapshot for a held primary button that started at origin
// and moved by delta to reach p.
func Drag(content Rect, origin, p Point, delta Vec) Input {
	return Input{
		Content:     content,
		Pointer:     p,
		PrimaryDown: true,
		PressOrigin: origin,
		Delta:       delta,
	}
}

// Anchored replaces Delta with the offset of the pointer from the press
// origin. Pointer positions sampled relative to a window that follows the
// drag report only the distance the window still has to travel; that offset
// is the move to make, whatever part of earlier moves has been applied.
func (in Input) Anchored() Input {
	if in.PrimaryDown && !in.Pressed {
		in.Delta = Vec{DX: in.Pointer.X - in.PressOrigin.X, DY: in.Pointer.Y - in.PressOrigin.Y}
	}
	return in
}
